package types

// InstallerConfig is the top-level installer configuration document. Every
// key is optional; a missing section is simply skipped during extraction.
// Unknown keys are ignored.
type InstallerConfig struct {
	WelcomePage        *WelcomePage   `yaml:"welcome_page,omitempty"`
	Desktop            []DesktopEntry `yaml:"desktop,omitempty"`
	AdditionalSoftware []Choice       `yaml:"additional_software,omitempty"`
	AdditionalFeatures []Choice       `yaml:"additional_features,omitempty"`
}

// WelcomePage holds the greeting shown on the installer's first page.
type WelcomePage struct {
	Text *string `yaml:"text,omitempty"`
}

// DesktopEntry describes one desktop environment the user can pick.
// Name is semantically required; an entry without one is reported as
// invalid during extraction but does not stop processing.
type DesktopEntry struct {
	Name        *string `yaml:"name,omitempty"`
	Description *string `yaml:"description,omitempty"`
}

// Choice is a user-selectable software package or feature with optional
// nested sub-options.
type Choice struct {
	Name        *string  `yaml:"name,omitempty"`
	Description *string  `yaml:"description,omitempty"`
	Options     []Option `yaml:"options,omitempty"`
}

// Option is one sub-option of a Choice. Only Name is ever emitted. The
// `option` key is never read for output, but its presence suppresses the
// invalid-option report when name is absent; some shipped configs carry it.
// TODO(schema): confirm with the config schema owner whether `option` is
// vestigial and can be dropped.
type Option struct {
	Name *string `yaml:"name,omitempty"`
	Opt  *string `yaml:"option,omitempty"`
}
