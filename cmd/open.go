package cmd

import (
	"strings"

	"github.com/inovacc/countries/internal/cli"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [path|code]",
	Short: "Open the interactive browser at a route",
	Long: `Open the interactive browser at "/" (the listing) or "/country/{code}".
A bare alpha-3 code such as IDN is shorthand for /country/IDN.`,
	Example: `  countries open
  countries open /country/ISL
  countries open idn`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cli.RootPath
		if len(args) == 1 {
			path = routeArg(args[0])
		}

		return runTUI(cmd, path)
	},
}

// routeArg turns a bare country code into its detail path.
func routeArg(arg string) string {
	arg = strings.TrimSpace(arg)
	if arg == "" || strings.HasPrefix(arg, "/") {
		return arg
	}

	return cli.CountryPath(strings.ToUpper(arg))
}

func init() {
	rootCmd.AddCommand(openCmd)
}
