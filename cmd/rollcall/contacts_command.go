package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rollcall/internal/directory"
	"rollcall/internal/logging"
)

func newContactsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "List the contacts in the master directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := directory.Load(cfg.Paths.DirectoryFile, logging.NewNop())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dir.Len() == 0 {
				fmt.Fprintln(out, "Directory is empty")
				return nil
			}

			rows := make([][]string, 0, dir.Len())
			for _, identity := range dir.Identities() {
				rows = append(rows, []string{
					identity.Name,
					identity.Email,
					identity.Phone,
					strings.Join(identity.Events(), ", "),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Email", "Phone", "Events"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				shouldStyle(out),
			))
			fmt.Fprintln(out, strconv.Itoa(dir.Len())+" contacts")
			return nil
		},
	}
}
