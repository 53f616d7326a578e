package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/shelf/codec"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection to stdout",
	Long: `Write every entry to stdout, by default in the store's configured
encoding.

Examples:
  shelf export
  shelf export --format yaml > entries.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		enc := app.enc
		if exportFormat != "" {
			enc, err = codec.ByName(exportFormat)
			if err != nil {
				return err
			}
		}

		blob, err := enc.Marshal(app.col.Records())
		if err != nil {
			return fmt.Errorf("encode entries: %w", err)
		}
		out := cmd.OutOrStdout()
		if _, err := out.Write(blob); err != nil {
			return err
		}
		if !bytes.HasSuffix(blob, []byte("\n")) {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output encoding: json or yaml (default: the store codec)")
}
