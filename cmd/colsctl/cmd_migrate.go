package main

import (
	"fmt"

	"github.com/MKhiriev/go-cols/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, log, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err = db.Migrate(); err != nil {
			return err
		}
		log.Info().Msg("schema is up to date")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "migrations",
	Short: "List the embedded migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		files, err := migrations.Status()
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}
