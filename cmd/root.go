package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/inovacc/countries/internal/application"
	"github.com/inovacc/countries/internal/cli"
	"github.com/spf13/cobra"
)

// Global flags; each one overrides the matching config file value when set.
var (
	cfgFile    string
	apiURL     string
	locale     string
	nativeLang string
	timeout    time.Duration
	logFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Browse countries of the world from the terminal",
	Long: `Countries is a terminal browser for the REST Countries API.

Run it without arguments to open the interactive listing: search by name,
page through the results and open any country for its full details.
The list and show commands print the same data as plain text or JSON.`,
	Version:       application.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, cli.RootPath)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/countries/config.ini)")
	flags.StringVar(&apiURL, "api-url", "", "REST Countries API root URL")
	flags.StringVar(&locale, "locale", "", "locale for number formatting, e.g. en or id")
	flags.StringVar(&nativeLang, "native-lang", "", "language code of the native name shown in details")
	flags.DurationVar(&timeout, "timeout", 0, "timeout for each API request, 0 waits indefinitely")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
