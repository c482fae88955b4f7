package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"rollcall/internal/batch"
	"rollcall/internal/directory"
	"rollcall/internal/ledger"
	"rollcall/internal/preflight"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "process <path>",
		Short: "Fold event registration exports into the contact directory",
		Long: "Process a CSV export file or a directory of exports. Files are " +
			"ordered by event date, merged into the master directory, and " +
			"recorded in the processing history so re-runs are no-ops.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			mapping, err := ctx.ensureMapping()
			if err != nil {
				return err
			}

			checks := preflight.RunAll(cfg)
			if !preflight.Passed(checks) {
				for _, check := range checks {
					if !check.Passed {
						fmt.Fprintf(cmd.ErrOrStderr(), "preflight: %s: %s\n", check.Name, check.Detail)
					}
				}
				return fmt.Errorf("preflight checks failed")
			}

			inputs, err := batch.CollectInputs(args[0])
			if err != nil {
				return err
			}

			// One batch at a time; two runs interleaving directory and
			// ledger writes would corrupt both.
			lock := flock.New(cfg.Paths.LockFile)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire batch lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another rollcall batch is already running (lock %s)", cfg.Paths.LockFile)
			}
			defer lock.Unlock()

			dir, err := directory.Load(cfg.Paths.DirectoryFile, logger)
			if err != nil {
				return err
			}
			led := ledger.Open(cfg.Paths.HistoryFile, logger)

			runner := batch.NewRunner(cfg, mapping, dir, led, logger)
			report, err := runner.Run(cmd.Context(), inputs)
			if report != nil {
				renderReport(cmd, report)
			}
			return err
		},
	}
}

func renderReport(cmd *cobra.Command, report *batch.Report) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		detail := result.Reason
		if result.Status == batch.FileProcessed {
			parts := []string{
				fmt.Sprintf("%d rows", result.Rows),
				fmt.Sprintf("%d new", result.NewContacts),
				fmt.Sprintf("%d merged", result.Merged),
			}
			if result.Sidelined > 0 {
				parts = append(parts, fmt.Sprintf("%d sidelined", result.Sidelined))
			}
			if result.SkippedRows > 0 {
				parts = append(parts, fmt.Sprintf("%d rows skipped", result.SkippedRows))
			}
			detail = strings.Join(parts, ", ")
		}
		rows = append(rows, []string{result.File, result.Event, string(result.Status), detail})
	}

	fmt.Fprintln(out, renderTable(
		[]string{"File", "Event", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		shouldStyle(out),
	))
	fmt.Fprintf(out, "Run %s: %s files processed, %s skipped, %s contacts in directory\n",
		report.RunID,
		strconv.Itoa(report.Processed()),
		strconv.Itoa(report.Skipped()),
		strconv.Itoa(report.Contacts))
}
