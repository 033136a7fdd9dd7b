package cmd

import (
	"fmt"

	"github.com/inovacc/countries/internal/core"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Print the details of one country",
	Long:  `Fetch one country by its alpha-3 code (for example IDN or ISL) and print every detail field.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer env.close()

		c, err := env.source.GetCountry(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch country %s: %w", args[0], err)
		}

		if showJSON {
			return writeJSON(cmd.OutOrStdout(), c)
		}

		core.PrintDetail(cmd.OutOrStdout(), env.formatter.Detail(c))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}
