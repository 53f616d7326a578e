package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Keep a small persisted list of entries",
	Long: `Shelf manages an ordered list of entries persisted as a single blob
in a local data directory. Every mutation rewrites the whole blob, which
keeps the format trivial to inspect and back up.

Entries live under one fixed key; the substrate (plain files or a bbolt
database) and the encoding (json or yaml) are configurable per data
directory.

Examples:
  shelf add "Buy groceries"
  shelf add --note "gate B22" "Pack for trip"
  shelf list
  shelf done 4f1c
  shelf rm 4f1c
  shelf export --format yaml`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("data", "d", defaultDataDir(), "Directory the collection is stored in")
	rootCmd.PersistentFlags().String("backend", "dir", "Persistence substrate: dir or bolt")
	rootCmd.PersistentFlags().String("codec", "json", "Blob encoding: json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log store diagnostics to stderr")

	rootCmd.AddCommand(addCmd, listCmd, doneCmd, rmCmd, exportCmd)
}
