// Package blob stores uploaded images. Backends: in-process memory, a local
// badger database, and a Cloud Storage bucket.
package blob

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"aura/internal/domain"
	"aura/internal/repository"
)

// MaxImageSize upload limit in bytes
const MaxImageSize = 10 << 20

var (
	// ErrNotImage rejected content type
	ErrNotImage  = errors.New("only image uploads are allowed")
	ErrImageSize = errors.New("image size out of range")
)

//go:generate mockgen -source=blob.go -destination=blobmock/store.go -package=blobmock Store

// Store keeps image binaries addressed by id. Get and Delete return
// repository.ErrNotFound for unknown ids.
type Store interface {
	Put(ctx context.Context, img domain.Image) (domain.Image, error)
	Get(ctx context.Context, id string) (domain.Image, error)
	Delete(ctx context.Context, id string) error
}

// Validate checks an upload before it is stored
func Validate(mimeType string, size int) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return ErrNotImage
	}
	if size <= 0 || size > MaxImageSize {
		return ErrImageSize
	}
	return nil
}

// prepare assigns id and timestamp
func prepare(img domain.Image) domain.Image {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}
	return img
}

// URL path under which the HTTP layer serves an image
func URL(id string) string { return "/api/images/" + id }

// IDFromURL extracts the id from a URL produced by URL; ok is false for
// external URLs.
func IDFromURL(u string) (string, bool) {
	id, ok := strings.CutPrefix(u, "/api/images/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// Memory keeps images in a map
type Memory struct {
	mu     sync.RWMutex
	images map[string]domain.Image
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{images: make(map[string]domain.Image)}
}

func (m *Memory) Put(ctx context.Context, img domain.Image) (domain.Image, error) {
	img = prepare(img)
	img.Data = append([]byte(nil), img.Data...)
	m.mu.Lock()
	m.images[img.ID] = img
	m.mu.Unlock()
	return img, nil
}

func (m *Memory) Get(ctx context.Context, id string) (domain.Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.images[id]
	if !ok {
		return domain.Image{}, repository.ErrNotFound
	}
	return img, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.images[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.images, id)
	return nil
}
