package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"aura/internal/repository/pgstore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the Postgres users table and the Mongo indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrate(cmd.Context())
	},
}

func migrate(ctx context.Context) error {
	log := slog.Default()
	if cfg.Store.Driver != "mongo" {
		return errors.New("migrate requires STORE_DRIVER=mongo")
	}
	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.close(context.Background())

	if err := pgstore.Migrate(ctx, b.pg); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	if err := b.mongo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}
	log.Info("migration complete")
	return nil
}
