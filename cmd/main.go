package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"aura/internal/config"

	_ "aura/docs"
)

var (
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:           "aura",
		Short:         "AppleAura marketplace backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			slog.SetDefault(newLogger(cfg.Log))
			return nil
		},
	}
)

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(c config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
