package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle an entry's done flag",
	Long: `Toggle the done flag of an entry. The id may be abbreviated to any
unique prefix, as shown by "shelf list".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		id, err := app.resolve(args[0])
		if err != nil {
			return err
		}

		var nowDone bool
		if err := app.col.Update(ctx, id, func(e *Entry) {
			e.Done = !e.Done
			nowDone = e.Done
		}); err != nil {
			return fmt.Errorf("update entry: %w", err)
		}

		state := "pending"
		if nowDone {
			state = "done"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s\n", shortID(id), state)
		return nil
	},
}
