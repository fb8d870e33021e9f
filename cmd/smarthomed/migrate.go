package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"smarthome-backend/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed the catalog, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gormDB, err := db.Init(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.SeedCatalog(cmd.Context(), gormDB, &cfg.Catalog); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Info().Msg("schema migrated and catalog seeded")
		return nil
	},
}
