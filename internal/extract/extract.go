// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract walks an installer configuration document and collects
// its translatable strings into a gettext template.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/osinstaller/config-to-pot/internal/config"
	"github.com/osinstaller/config-to-pot/internal/pot"
	"github.com/osinstaller/config-to-pot/pkg/types"
)

const (
	// poDir is the output directory created next to the config file.
	poDir = "po"

	// potName is the template filename, fully overwritten each run.
	potName = "config.pot"
)

// Generate loads the config at configPath and writes its translatable
// strings as a template. outDir and outFile override the output location;
// empty values keep the default contract of <config dir>/po/config.pot.
// Advisory diagnostics for malformed entries go to diag and never affect
// the returned error.
func Generate(configPath, outDir, outFile string, diag io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(configPath), poDir)
	}
	if outFile == "" {
		outFile = potName
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	f, err := os.Create(filepath.Join(outDir, outFile))
	if err != nil {
		return fmt.Errorf("creating template file: %w", err)
	}
	defer f.Close()

	w := pot.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	return Extract(cfg, w, diag)
}

// Extract emits template entries for every translatable string in cfg, in
// document order: the welcome text, then desktops, then additional
// software, then additional features. Entries missing a required name are
// reported to diag and skipped; their remaining fields are still emitted.
func Extract(cfg *types.InstallerConfig, w *pot.Writer, diag io.Writer) error {
	if cfg.WelcomePage != nil && cfg.WelcomePage.Text != nil {
		if err := w.WriteEntry(*cfg.WelcomePage.Text); err != nil {
			return err
		}
	}

	if err := handleDesktops(cfg.Desktop, w, diag); err != nil {
		return err
	}

	if err := handleChoices(cfg.AdditionalSoftware, w, diag); err != nil {
		return err
	}
	return handleChoices(cfg.AdditionalFeatures, w, diag)
}

// handleDesktops emits name then description for each desktop, in sequence
// order.
func handleDesktops(desktops []types.DesktopEntry, w *pot.Writer, diag io.Writer) error {
	for _, desktop := range desktops {
		if desktop.Name != nil {
			if err := w.WriteEntry(*desktop.Name); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(diag, "Invalid desktop: %s\n", inline(desktop))
		}
		if desktop.Description != nil {
			if err := w.WriteEntry(*desktop.Description); err != nil {
				return err
			}
		}
	}
	return nil
}

// handleChoices emits name, description, then each option name for every
// choice, keeping options nested immediately after their parent. Shared by
// the additional_software and additional_features sections, which have the
// same shape.
func handleChoices(choices []types.Choice, w *pot.Writer, diag io.Writer) error {
	for _, choice := range choices {
		if choice.Name != nil {
			if err := w.WriteEntry(*choice.Name); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(diag, "Invalid choice: %s\n", inline(choice))
		}
		if choice.Description != nil {
			if err := w.WriteEntry(*choice.Description); err != nil {
				return err
			}
		}
		for _, option := range choice.Options {
			if option.Name != nil {
				if err := w.WriteEntry(*option.Name); err != nil {
					return err
				}
			} else if option.Opt == nil {
				// The bare `option` key silences this report even though
				// it is never emitted; see the Option type.
				fmt.Fprintf(diag, "Invalid option: %s\n", inline(option))
			}
		}
	}
	return nil
}

// inline renders an entry as single-line flow-style YAML for advisory
// messages, so the reader sees which entry was malformed.
func inline(v any) string {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	setFlowStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(string(out))
}

func setFlowStyle(n *yaml.Node) {
	n.Style = yaml.FlowStyle
	for _, c := range n.Content {
		setFlowStyle(c)
	}
}
