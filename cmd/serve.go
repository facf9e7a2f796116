package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aura/internal/auth"
	"aura/internal/catalog"
	httpapi "aura/internal/http"
	"aura/internal/observability"
	"aura/internal/service"
)

const serviceName = "aura"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	log := slog.Default()

	tokens, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:  serviceName,
		Exporter:     cfg.Tracing.Exporter,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}

	st := b.stores
	engine := catalog.NewEngine(st, catalog.WithLogger(log))
	cart := service.NewCartService(st, engine, log)
	srv := httpapi.NewServer(httpapi.Services{
		Auth:       service.NewAuthService(st, tokens, log),
		Products:   service.NewProductService(st, engine, b.images, log),
		Cart:       cart,
		Orders:     service.NewOrderService(st, cart, log),
		Reviews:    service.NewReviewService(st),
		Sellers:    service.NewSellerService(st, log),
		Reports:    service.NewReportService(st),
		Categories: st.Categories,
		Images:     b.images,
	}, httpapi.Options{
		Logger:        log,
		ServiceName:   serviceName,
		AuthRateLimit: cfg.Auth.RateLimit,
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      srv.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	case err = <-serveErr:
		log.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if serr := httpServer.Shutdown(shutdownCtx); serr != nil {
		log.Error("shutdown error", "error", serr)
	}
	if cerr := b.close(shutdownCtx); cerr != nil {
		log.Error("close stores", "error", cerr)
	}
	if terr := shutdownTracing(shutdownCtx); terr != nil {
		log.Error("flush traces", "error", terr)
	}
	return err
}
