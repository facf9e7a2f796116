package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aura/internal/catalog"
	"aura/internal/domain"
	"aura/internal/observability"
	"aura/internal/repository"
)

const (
	// UnavailableProductName labels cart lines whose target no longer resolves
	UnavailableProductName = "Producto no disponible"
	PlaceholderImage       = "placeholder.jpg"
)

// CartService hydrates and mutates buyer carts
type CartService struct {
	carts    repository.CartRepository
	variants repository.VariantRepository
	engine   *catalog.Engine
	log      *slog.Logger
}

func NewCartService(st repository.Stores, engine *catalog.Engine, log *slog.Logger) *CartService {
	if log == nil {
		log = slog.Default()
	}
	return &CartService{carts: st.Carts, variants: st.Variants, engine: engine, log: log}
}

// target is what a cart row resolves to
type target struct {
	product domain.Product
	variant domain.ProductVariant
}

// resolve walks variant then product. Legacy carts stored a product id in the
// variantId column, so a missing variant is retried as a product id whose
// representative variant stands in. ok is false when neither resolves.
func (s *CartService) resolve(ctx context.Context, variantID string) (target, bool, error) {
	v, err := s.variants.GetByID(ctx, variantID)
	switch {
	case err == nil:
		p, _, err := s.engine.Resolve(ctx, v.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			return target{variant: *v}, false, nil
		}
		if err != nil {
			return target{}, false, err
		}
		return target{product: p, variant: *v}, true, nil
	case !errors.Is(err, repository.ErrNotFound):
		return target{}, false, fmt.Errorf("get variant: %w", err)
	}

	p, variants, err := s.engine.Resolve(ctx, variantID)
	if errors.Is(err, repository.ErrNotFound) {
		return target{}, false, nil
	}
	if err != nil {
		return target{}, false, err
	}
	observability.CartProductFallback()
	s.log.Warn("cart variant id resolved as product id", "variant_id", variantID, "product_id", p.ID)
	return target{product: p, variant: variants[0]}, true, nil
}

// Lines returns every cart row hydrated. Unresolvable rows are kept and
// marked unavailable with a zero price.
func (s *CartService) Lines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	lines := make([]domain.CartLine, 0, len(items))
	for _, it := range items {
		t, ok, err := s.resolve(ctx, it.VariantID)
		if err != nil {
			return nil, err
		}
		line := domain.CartLine{CartItem: it, ProductImage: PlaceholderImage}
		if !ok {
			observability.CartLineUnavailable()
			line.ProductName = UnavailableProductName
			line.SKU = it.VariantID
			line.ProductCurrency = catalog.DefaultCurrency
			lines = append(lines, line)
			continue
		}
		line.Available = true
		line.ProductID = t.product.ID
		line.SellerID = t.product.SellerID
		line.ProductName = t.product.Title
		line.SKU = t.variant.SKU
		line.ProductPrice = t.variant.PriceCents
		line.ProductCurrency = t.variant.Currency
		if line.ProductCurrency == "" {
			line.ProductCurrency = catalog.DefaultCurrency
		}
		if len(t.product.Images) > 0 {
			line.ProductImage = t.product.Images[0]
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Add increments the row for (user, variant), creating it when absent
func (s *CartService) Add(ctx context.Context, userID int64, variantID string, qty int) error {
	if variantID == "" || qty <= 0 {
		return ErrInvalidInput
	}
	if _, ok, err := s.resolve(ctx, variantID); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, variantID)
	}
	return s.carts.Increment(ctx, userID, variantID, qty)
}

// Update sets an absolute quantity. Zero is stored as is; deletion is Remove.
func (s *CartService) Update(ctx context.Context, userID int64, variantID string, qty int) error {
	if variantID == "" || qty < 0 {
		return ErrInvalidInput
	}
	return s.carts.SetQuantity(ctx, userID, variantID, qty)
}

func (s *CartService) Remove(ctx context.Context, userID int64, variantID string) error {
	if variantID == "" {
		return ErrInvalidInput
	}
	return s.carts.Remove(ctx, userID, variantID)
}

func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.carts.Clear(ctx, userID)
}
