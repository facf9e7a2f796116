package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"aura/internal/blob"
	"aura/internal/config"
	"aura/internal/repository"
	"aura/internal/repository/mongostore"
	"aura/internal/repository/pgstore"
)

// backends the opened stores; close releases them in reverse order
type backends struct {
	stores  repository.Stores
	images  blob.Store
	mongo   *mongostore.Store
	pg      *sql.DB
	closers []func(context.Context) error
}

func (b *backends) close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i](ctx))
	}
	return errors.Join(errs...)
}

func openBackends(ctx context.Context, c *config.Config, log *slog.Logger) (*backends, error) {
	b := &backends{}
	if err := b.openStores(ctx, c, log); err != nil {
		_ = b.close(ctx)
		return nil, err
	}
	if err := b.openImages(ctx, c, log); err != nil {
		_ = b.close(ctx)
		return nil, err
	}
	return b, nil
}

func (b *backends) openStores(ctx context.Context, c *config.Config, log *slog.Logger) error {
	if c.Store.Driver == "memory" {
		log.Warn("using in-memory store; data is lost on exit")
		b.stores = repository.NewMemoryStore().Stores()
		return nil
	}
	ms, err := mongostore.Open(ctx, c.Mongo.URI, c.Mongo.Database, log)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	b.mongo = ms
	b.closers = append(b.closers, ms.Close)

	db, err := pgstore.Open(ctx, c.Postgres.URL, pgstore.PoolConfig{
		MaxOpenConns:    c.Postgres.MaxOpenConns,
		MaxIdleConns:    c.Postgres.MaxIdleConns,
		ConnMaxLifetime: c.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	b.pg = db
	b.closers = append(b.closers, func(context.Context) error { return db.Close() })

	b.stores = ms.Stores(pgstore.NewUsers(db))
	log.Info("stores opened", "mongo_database", c.Mongo.Database)
	return nil
}

func (b *backends) openImages(ctx context.Context, c *config.Config, log *slog.Logger) error {
	switch c.Blob.Driver {
	case "badger":
		bs, err := blob.OpenBadger(blob.BadgerConfig{Path: c.Blob.BadgerPath, Logger: log})
		if err != nil {
			return err
		}
		b.images = bs
		b.closers = append(b.closers, func(context.Context) error { return bs.Close() })
	case "gcs":
		gs, err := blob.OpenGCS(ctx, c.Blob.GCSBucket, c.Blob.GCSCredentialsFile)
		if err != nil {
			return err
		}
		b.images = gs
		b.closers = append(b.closers, func(context.Context) error { return gs.Close() })
	case "mongo":
		if b.mongo == nil {
			return errors.New("BLOB_DRIVER=mongo requires STORE_DRIVER=mongo")
		}
		b.images = b.mongo.Images()
	default:
		b.images = blob.NewMemory()
	}
	log.Info("image store ready", "driver", c.Blob.Driver)
	return nil
}
