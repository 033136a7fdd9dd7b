package cmd

import (
	"fmt"

	"github.com/inovacc/countries/internal/core"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listPage   int
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of countries",
	Long: `Print one page of the country listing, twelve countries per page.
The search matches country names case-insensitively, exactly as the
interactive listing does.`,
	Example: `  countries list
  countries list --search land
  countries list --page 3 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listPage < 1 {
			return fmt.Errorf("page must be 1 or greater, got %d", listPage)
		}

		env, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer env.close()

		res, err := core.ListPage(cmd.Context(), env.source, core.ListOptions{
			Search: listSearch,
			Page:   listPage,
		})
		if err != nil {
			return err
		}

		if listJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}

		core.PrintListing(cmd.OutOrStdout(), env.formatter, res)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show countries whose name contains this text")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page to show; out of range pages are clipped")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}
