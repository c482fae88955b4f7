package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/internal/ledger"
	"rollcall/internal/logging"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show which exports have already been processed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			led := ledger.Open(cfg.Paths.HistoryFile, logging.NewNop())
			out := cmd.OutOrStdout()

			files := led.Files()
			if len(files) == 0 {
				fmt.Fprintln(out, "No exports processed yet")
				return nil
			}

			rows := make([][]string, 0, len(files))
			for _, file := range files {
				rows = append(rows, []string{file})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Processed export"},
				rows,
				[]columnAlignment{alignLeft},
				shouldStyle(out),
			))
			fmt.Fprintf(out, "%d exports, %d event snapshots, last update %s\n",
				len(files), len(led.Snapshots()), led.LastUpdate().Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
