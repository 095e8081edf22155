package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/lintsum/internal/loader"
	"github.com/farcloser/lintsum/internal/report"
	"github.com/farcloser/lintsum/version"
)

// defaultReportPath is where `eslint -f json -o lint_json.txt` leaves the report.
const defaultReportPath = "lint_json.txt"

var errTooManyArgs = errors.New("expected at most one argument: path to the lint report")

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:      version.Name(),
		Usage:     "Print the errors found in an ESLint JSON report",
		ArgsUsage: "[report]",
		Version:   version.Version() + " " + version.Commit(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 1 {
				return fmt.Errorf("%w: got %d", errTooManyArgs, cmd.NArg())
			}

			reportPath := defaultReportPath
			if cmd.NArg() == 1 {
				reportPath = cmd.Args().First()
			}

			return run(os.Stdout, reportPath)
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}

// run only fails when the report cannot be read. Malformed content is reported on out.
func run(out io.Writer, reportPath string) error {
	data, err := loader.Load(reportPath, loader.DefaultAttempts())
	if err != nil {
		return err
	}

	report.Summarize(out, data)

	return nil
}
