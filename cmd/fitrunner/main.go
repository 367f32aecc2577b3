// Command fitrunner runs wiki decision tables against the calculator, either in
// process or against a running server.
//
//	fitrunner run acceptance/*.wiki
//	fitrunner remote --url http://localhost:8080 acceptance/*.wiki
//	fitrunner eval 10 0 divide
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errFailed marks a run whose tables reported wrong cells or exceptions.
var errFailed = errors.New("tables failed")

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "fitrunner",
		Short:         "Run calculator decision tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(&level),
		newRemoteCmd(),
		newEvalCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "fitrunner:", err)
		}
		os.Exit(1)
	}
}
