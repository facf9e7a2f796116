package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"aura/internal/domain"
	"aura/internal/query"
)

// MemoryStore shared in-memory document and identity store with a simple id generator.
// Slices keep insertion order, which the catalog relies on for the representative variant.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64

	users      []domain.User
	nextUserID int64
	categories []domain.Category
	products   []domain.Product
	variants   []domain.ProductVariant
	sellers    []domain.SellerProfile
	reviews    []domain.Review
	cart       []domain.CartItem
	orders     []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, nextUserID: 1}
}

// Stores returns repository views over the shared state
func (m *MemoryStore) Stores() Stores {
	return Stores{
		Users:      &MemoryUsers{m},
		Categories: &MemoryCategories{m},
		Products:   &MemoryProducts{m},
		Variants:   &MemoryVariants{m},
		Sellers:    &MemorySellers{m},
		Reviews:    &MemoryReviews{m},
		Carts:      &MemoryCarts{m},
		Orders:     &MemoryOrders{m},
	}
}

// newID mimics the 24-hex-digit shape of storage-native ids. Caller holds the write lock.
func (m *MemoryStore) newID() string {
	id := fmt.Sprintf("%024x", m.nextID)
	m.nextID++
	return id
}

func now() time.Time { return time.Now().UTC() }

// Products

type MemoryProducts struct{ store *MemoryStore }

var _ ProductRepository = (*MemoryProducts)(nil)

func (r *MemoryProducts) Find(ctx context.Context, p query.Predicate) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if p == nil {
		p = query.All()
	}
	out := make([]domain.Product, 0)
	for i := range r.store.products {
		if p.Match(query.ProductRecord{P: &r.store.products[i]}) {
			out = append(out, cloneProduct(r.store.products[i]))
		}
	}
	return out, nil
}

// Insert stores a product document as-is, including legacy fields. Used by seeding and tests.
func (r *MemoryProducts) Insert(p domain.Product) domain.Product {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.insertLocked(p)
}

// InsertProduct stores a raw product document, legacy pricing included
func (m *MemoryStore) InsertProduct(p domain.Product) domain.Product {
	return (&MemoryProducts{m}).Insert(p)
}

func (r *MemoryProducts) insertLocked(p domain.Product) domain.Product {
	if p.StorageID == "" {
		p.StorageID = r.store.newID()
	}
	if p.ID == "" {
		p.ID = p.StorageID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	r.store.products = append(r.store.products, cloneProduct(p))
	return p
}

func (r *MemoryProducts) Create(ctx context.Context, p *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.products {
		if existing.Slug == p.Slug {
			return ErrConflict
		}
	}
	*p = r.insertLocked(*p)
	return nil
}

func (r *MemoryProducts) indexOf(id string) int {
	for i, p := range r.store.products {
		if p.ID == id || p.StorageID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryProducts) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	p := &r.store.products[i]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Images != nil {
		p.Images = slices.Clone(*patch.Images)
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Specs != nil {
		p.Specs = maps.Clone(patch.Specs)
	}
	return nil
}

func (r *MemoryProducts) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.store.products = slices.Delete(r.store.products, i, i+1)
	return nil
}

func (r *MemoryProducts) SlugExists(ctx context.Context, slug string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryProducts) Count(ctx context.Context, sellerID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var n int64
	for _, p := range r.store.products {
		if sellerID == "" || p.SellerID == sellerID {
			n++
		}
	}
	return n, nil
}

func (r *MemoryProducts) CountByCategory(ctx context.Context) (map[string]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]int64)
	for _, p := range r.store.products {
		out[p.CategoryID]++
	}
	return out, nil
}

func cloneProduct(p domain.Product) domain.Product {
	p.Images = slices.Clone(p.Images)
	p.Specs = maps.Clone(p.Specs)
	return p
}

// Variants

type MemoryVariants struct{ store *MemoryStore }

var _ VariantRepository = (*MemoryVariants)(nil)

func (r *MemoryVariants) ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string][]domain.ProductVariant, len(productIDs))
	for _, v := range r.store.variants {
		if slices.Contains(productIDs, v.ProductID) {
			v.Attributes = maps.Clone(v.Attributes)
			out[v.ProductID] = append(out[v.ProductID], v)
		}
	}
	return out, nil
}

func (r *MemoryVariants) GetByID(ctx context.Context, id string) (*domain.ProductVariant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, v := range r.store.variants {
		if v.ID == id {
			cp := v
			cp.Attributes = maps.Clone(v.Attributes)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryVariants) Create(ctx context.Context, v *domain.ProductVariant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if v.ID == "" {
		v.ID = r.store.newID()
	}
	cp := *v
	cp.Attributes = maps.Clone(v.Attributes)
	r.store.variants = append(r.store.variants, cp)
	return nil
}

func (r *MemoryVariants) Update(ctx context.Context, id string, patch domain.VariantPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.variants {
		v := &r.store.variants[i]
		if v.ID != id {
			continue
		}
		if patch.SKU != nil {
			v.SKU = *patch.SKU
		}
		if patch.PriceCents != nil {
			v.PriceCents = *patch.PriceCents
		}
		if patch.Stock != nil {
			v.Stock = *patch.Stock
		}
		if patch.DiscountPercentage != nil {
			v.DiscountPercentage = *patch.DiscountPercentage
		}
		if patch.ShippingCostCents != nil {
			v.ShippingCostCents = *patch.ShippingCostCents
		}
		if patch.IsFreeShipping != nil {
			v.IsFreeShipping = *patch.IsFreeShipping
		}
		return nil
	}
	return ErrNotFound
}

func (r *MemoryVariants) DeleteByProductID(ctx context.Context, productID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.variants = slices.DeleteFunc(r.store.variants, func(v domain.ProductVariant) bool {
		return v.ProductID == productID
	})
	return nil
}

// Categories

type MemoryCategories struct{ store *MemoryStore }

var _ CategoryRepository = (*MemoryCategories)(nil)

func (r *MemoryCategories) List(ctx context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.categories), nil
}

func (r *MemoryCategories) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.categories {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCategories) Create(ctx context.Context, c *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c.ID == "" {
		c.ID = r.store.newID()
	}
	r.store.categories = append(r.store.categories, *c)
	return nil
}
