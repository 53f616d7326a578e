package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listDone    bool
	listPending bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries",
	Long: `List entries in their stored order.

Examples:
  shelf list
  shelf list --pending
  shelf list --done`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		out := cmd.OutOrStdout()
		shown := 0
		for _, e := range app.col.Records() {
			if listDone && !e.Done {
				continue
			}
			if listPending && e.Done {
				continue
			}
			mark := " "
			if e.Done {
				mark = "x"
			}
			fmt.Fprintf(out, "[%s] %s  %s", mark, shortID(e.ID), e.Title)
			if e.Note != "" {
				fmt.Fprintf(out, "  (%s)", e.Note)
			}
			fmt.Fprintln(out)
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(out, "No entries.")
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "Show only completed entries")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Show only pending entries")
}
