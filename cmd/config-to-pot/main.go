// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the config-to-pot CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osinstaller/config-to-pot/internal/extract"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the config-to-pot CLI.
var rootCmd = &cobra.Command{
	Use:   "config-to-pot <config-path>",
	Short: "Create a .pot file for an os-installer config",
	Long: `config-to-pot extracts the translatable strings of an os-installer
configuration (welcome text, desktop choices, additional software and
features) and writes them as a gettext template to po/config.pot next to
the config file, overwriting any previous template.

Malformed entries inside recognized sections are reported but do not stop
extraction or change the exit status.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := viper.GetString("output_dir")
		outFile := viper.GetString("output_file")

		if err := extract.Generate(args[0], outDir, outFile, os.Stdout); err != nil {
			// All load, parse, and write failures collapse into one
			// diagnostic; the wrapped cause is not user-facing.
			cmd.SilenceUsage = true
			fmt.Println("Could not find or parse provided config")
			return err
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config-to-pot.yaml or ~/.config/config-to-pot/config.yaml)")
	rootCmd.Flags().String("output-dir", "", "directory for the generated template (default: <config dir>/po)")
	rootCmd.Flags().String("output-file", "", "filename for the generated template (default: config.pot)")

	viper.BindPFlag("output_dir", rootCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("output_file", rootCmd.Flags().Lookup("output-file"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config-to-pot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "config-to-pot"))
		}
	}

	viper.SetEnvPrefix("CONFIG_TO_POT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
