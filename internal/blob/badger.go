package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"aura/internal/domain"
	"aura/internal/repository"
)

// BadgerConfig local blob database options
type BadgerConfig struct {
	Path     string
	InMemory bool
	Logger   *slog.Logger
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Badger stores each image under two keys: metadata as JSON and the raw bytes
type Badger struct {
	db *badger.DB
}

var _ Store = (*Badger)(nil)

type imageMeta struct {
	ID        string `json:"id"`
	MimeType  string `json:"mimeType"`
	CreatedAt int64  `json:"createdAt"`
}

func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent blob store")
	}
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create blob directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Close() error { return b.db.Close() }

func metaKey(id string) []byte { return []byte("img:meta:" + id) }
func dataKey(id string) []byte { return []byte("img:data:" + id) }

func (b *Badger) Put(ctx context.Context, img domain.Image) (domain.Image, error) {
	img = prepare(img)
	meta, err := json.Marshal(imageMeta{ID: img.ID, MimeType: img.MimeType, CreatedAt: img.CreatedAt.UnixMilli()})
	if err != nil {
		return domain.Image{}, err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(metaKey(img.ID), meta); err != nil {
			return err
		}
		return txn.Set(dataKey(img.ID), img.Data)
	})
	if err != nil {
		return domain.Image{}, fmt.Errorf("store image: %w", err)
	}
	return img, nil
}

func (b *Badger) Get(ctx context.Context, id string) (domain.Image, error) {
	var (
		meta imageMeta
		data []byte
	)
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(id))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &meta) }); err != nil {
			return err
		}
		item, err = txn.Get(dataKey(id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Image{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.Image{}, fmt.Errorf("load image: %w", err)
	}
	return domain.Image{ID: meta.ID, MimeType: meta.MimeType, Data: data, CreatedAt: time.UnixMilli(meta.CreatedAt).UTC()}, nil
}

func (b *Badger) Delete(ctx context.Context, id string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(metaKey(id)); err != nil {
			return err
		}
		if err := txn.Delete(metaKey(id)); err != nil {
			return err
		}
		return txn.Delete(dataKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return repository.ErrNotFound
	}
	return err
}
