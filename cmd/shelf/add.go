package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/shelf"
)

var addNote string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an entry",
	Long: `Add an entry to the end of the list.

Examples:
  shelf add "Buy groceries"
  shelf add --note "gate B22" "Pack for trip"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		entry := Entry{
			ID:        shelf.NewID(),
			Title:     args[0],
			Note:      addNote,
			CreatedAt: time.Now(),
		}
		if err := app.col.Add(ctx, entry); err != nil {
			return fmt.Errorf("add entry: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", entry.Title, shortID(entry.ID))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addNote, "note", "n", "", "Optional note attached to the entry")
}
