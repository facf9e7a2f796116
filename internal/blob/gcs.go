package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"aura/internal/domain"
	"aura/internal/repository"
)

// GCS stores images as objects in one bucket, keyed by id
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ Store = (*GCS)(nil)

// OpenGCS connects with the given service account key, or application default
// credentials when credentialsFile is empty.
func OpenGCS(ctx context.Context, bucket, credentialsFile string) (*GCS, error) {
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account key not found at path: %s", credentialsFile)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket, prefix: "images/"}, nil
}

func (g *GCS) Close() error { return g.client.Close() }

func (g *GCS) object(id string) *storage.ObjectHandle {
	return g.client.Bucket(g.bucket).Object(g.prefix + id)
}

func (g *GCS) Put(ctx context.Context, img domain.Image) (domain.Image, error) {
	img = prepare(img)
	w := g.object(img.ID).NewWriter(ctx)
	w.ContentType = img.MimeType
	w.CacheControl = "public, max-age=86400"
	if _, err := w.Write(img.Data); err != nil {
		_ = w.Close()
		return domain.Image{}, fmt.Errorf("write object %s: %w", img.ID, err)
	}
	if err := w.Close(); err != nil {
		return domain.Image{}, fmt.Errorf("close writer for %s: %w", img.ID, err)
	}
	return img, nil
}

func (g *GCS) Get(ctx context.Context, id string) (domain.Image, error) {
	r, err := g.object(id).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return domain.Image{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.Image{}, fmt.Errorf("open object %s: %w", id, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Image{}, fmt.Errorf("read object %s: %w", id, err)
	}
	created := r.Attrs.LastModified
	if created.IsZero() {
		created = time.Now()
	}
	return domain.Image{ID: id, MimeType: r.Attrs.ContentType, Data: data, CreatedAt: created.UTC()}, nil
}

func (g *GCS) Delete(ctx context.Context, id string) error {
	err := g.object(id).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return repository.ErrNotFound
	}
	return err
}
