package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"aura/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories, demo accounts and products; safe to rerun",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixtures YAML (defaults to the embedded set)")
}

func runSeed(ctx context.Context) error {
	log := slog.Default()
	fx := seed.Default()
	if seedFile != "" {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			return err
		}
		if fx, err = seed.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", seedFile, err)
		}
	}
	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.close(context.Background())

	rep, err := seed.New(b.stores, log).Run(ctx, fx)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d categories, %d users, %d seller profiles, %d products\n",
		rep.Categories, rep.Users, rep.Sellers, rep.Products)
	return nil
}
