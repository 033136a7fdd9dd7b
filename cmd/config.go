package cmd

import (
	"fmt"

	"github.com/inovacc/countries/internal/cli"
	"github.com/inovacc/countries/internal/core"
	"github.com/inovacc/countries/internal/model"
	"github.com/spf13/cobra"
)

var runConfigure = cli.RunConfigure

var (
	showConfig  bool
	editConfig  bool
	resetConfig bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the configuration",
	Long: `Print the effective configuration: the config file with any global flags
applied on top. Use --edit to change the file interactively or --reset to
write the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if editConfig && resetConfig {
			return fmt.Errorf("--edit and --reset cannot be combined")
		}

		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		switch {
		case resetConfig:
			if err := core.SaveConfig(s.path, model.DefaultConfig()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "Configuration reset: %s\n", s.path)

			return nil

		case editConfig:
			if !isTerminal(out) {
				return fmt.Errorf("config --edit needs a terminal")
			}

			// the form edits the file, not the flag overrides of this run
			onDisk, err := core.LoadConfig(s.path)
			if err != nil {
				return err
			}

			saved, err := runConfigure(s.path, onDisk)
			if err != nil {
				return err
			}

			if !saved {
				_, _ = fmt.Fprintln(out, "Configuration unchanged.")
			}

			return nil
		}

		core.ShowConfig(out, s.path, s.config)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&showConfig, "show", "s", false, "Show current configuration (default)")
	configCmd.Flags().BoolVarP(&editConfig, "edit", "e", false, "Edit the configuration interactively")
	configCmd.Flags().BoolVarP(&resetConfig, "reset", "r", false, "Reset configuration to defaults")
}
