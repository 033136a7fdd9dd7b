package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/inovacc/countries/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the interactive browser needs a terminal; use 'countries list' or 'countries show' instead")

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// runTUI opens the interactive browser at path.
func runTUI(cmd *cobra.Command, path string) error {
	if _, err := cli.ParseRoute(path); err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return errNoTerminal
	}

	env, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer env.close()

	return cli.Run(cmd.Context(), cli.Options{
		Source:    env.source,
		Formatter: env.formatter,
		Logger:    env.logger,
	}, path)
}
