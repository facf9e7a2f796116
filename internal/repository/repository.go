package repository

import (
	"context"
	"errors"
	"time"

	"aura/internal/domain"
	"aura/internal/query"
)

// ErrNotFound entity lookup yielded nothing
var ErrNotFound = errors.New("not found")

// ErrConflict unique constraint violated
var ErrConflict = errors.New("already exists")

// UserRepository identity store
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByIDs returns found users keyed by id; missing ids are absent from the map.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository reference data
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
}

// ProductRepository product documents
type ProductRepository interface {
	// Find returns products matching p in insertion order.
	Find(ctx context.Context, p query.Predicate) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	// Update and Delete address the product by canonical or storage id.
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	// Count counts products of a seller; empty sellerID counts all.
	Count(ctx context.Context, sellerID string) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

// VariantRepository product variants
type VariantRepository interface {
	// ListByProductIDs groups variants by product id, each group in insertion order.
	ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error)
	GetByID(ctx context.Context, id string) (*domain.ProductVariant, error)
	Create(ctx context.Context, v *domain.ProductVariant) error
	Update(ctx context.Context, id string, patch domain.VariantPatch) error
	DeleteByProductID(ctx context.Context, productID string) error
}

// SellerRepository seller profiles
type SellerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.SellerProfile, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.SellerProfile, error)
	Create(ctx context.Context, p *domain.SellerProfile) error
	UpdateByUserID(ctx context.Context, userID int64, patch domain.SellerProfilePatch) (*domain.SellerProfile, error)
	// SetStatus addresses the profile by canonical or storage id.
	SetStatus(ctx context.Context, id string, status domain.SellerStatus) (*domain.SellerProfile, error)
	GetByID(ctx context.Context, id string) (*domain.SellerProfile, error)
	ListByStatus(ctx context.Context, status domain.SellerStatus) ([]domain.SellerProfile, error)
}

// ReviewRepository product reviews
type ReviewRepository interface {
	ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	DeleteByProductID(ctx context.Context, productID string) error
}

// CartRepository cart rows keyed by (user, variant)
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error)
	// Increment atomically adds qty to the row, inserting it when absent.
	Increment(ctx context.Context, userID int64, variantID string, qty int) error
	SetQuantity(ctx context.Context, userID int64, variantID string, qty int) error
	Remove(ctx context.Context, userID int64, variantID string) error
	Clear(ctx context.Context, userID int64) error
}

// OrderFilter selects orders; zero values mean no constraint
type OrderFilter struct {
	UserID   int64
	SellerID string
	Statuses []domain.OrderStatus
	Since    time.Time
}

// Matches evaluates the filter in memory
func (f OrderFilter) Matches(o domain.Order) bool {
	if f.UserID != 0 && o.UserID != f.UserID {
		return false
	}
	if f.SellerID != "" && !o.HasSeller(f.SellerID) {
		return false
	}
	if len(f.Statuses) > 0 {
		ok := false
		for _, s := range f.Statuses {
			if o.Status == s {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if !f.Since.IsZero() && o.CreatedAt.Before(f.Since) {
		return false
	}
	return true
}

// OrderRepository orders with embedded line items
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
	Count(ctx context.Context, f OrderFilter) (int64, error)
}

// Stores bundles every repository the services depend on
type Stores struct {
	Users      UserRepository
	Categories CategoryRepository
	Products   ProductRepository
	Variants   VariantRepository
	Sellers    SellerRepository
	Reviews    ReviewRepository
	Carts      CartRepository
	Orders     OrderRepository
}
