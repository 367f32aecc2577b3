package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/klagrida/fitnesse-calculator-demo/internal/fixture"
	"github.com/klagrida/fitnesse-calculator-demo/internal/pkg/logger"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

func newRunCmd(level *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run <page...>",
		Short: "Run wiki pages in process",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := expandPages(args)
			if err != nil {
				return err
			}
			reg := table.NewRegistry()
			fixture.Register(reg)
			runner := table.NewRunner(reg, logger.FromConfig(logger.Config{Level: *level}))
			return runPages(cmd.Context(), cmd.OutOrStdout(), runner, pages)
		},
	}
}

// expandPages resolves glob patterns; plain paths pass through unchanged.
func expandPages(args []string) ([]string, error) {
	var pages []string
	for _, a := range args {
		matches, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", a, err)
		}
		if len(matches) == 0 {
			pages = append(pages, a)
			continue
		}
		pages = append(pages, matches...)
	}
	return pages, nil
}

func runPages(ctx context.Context, out io.Writer, runner *table.Runner, pages []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	total := &table.Report{}
	for _, p := range pages {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rep, err := runner.RunPage(ctx, string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		fmt.Fprintln(out, p)
		if err := rep.Write(out); err != nil {
			return err
		}
		total.Merge(rep)
	}
	if len(pages) > 1 {
		fmt.Fprintf(out, "total: %s\n", total.Counts)
	}
	if !total.Passed() {
		return errFailed
	}
	return nil
}
