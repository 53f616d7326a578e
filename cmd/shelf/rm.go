package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove entries",
	Long: `Remove one or more entries by id. Ids may be abbreviated to any
unique prefix, as shown by "shelf list".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		ids := make([]string, 0, len(args))
		for _, arg := range args {
			id, err := app.resolve(arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		removed, err := app.col.Remove(ctx, ids...)
		if err != nil {
			return fmt.Errorf("remove entries: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", removed)
		return nil
	},
}
