package catalog

import (
	"context"
	"fmt"
	"strings"

	"aura/internal/domain"
	"aura/internal/observability"
	"aura/internal/query"
	"aura/internal/repository"
)

// DefaultCurrency applies to documents that carry no currency code
const DefaultCurrency = "CLP"

// VirtualVariant synthesizes the representative variant of a product that has
// no persisted variants, from its legacy flat fields. Absent fields default to zero.
// The result is read-path only and must never be written back.
func VirtualVariant(p domain.Product) domain.ProductVariant {
	sku := p.Legacy.SKU
	if sku == "" {
		sku = strings.ToUpper(p.Slug) + "-LEGACY"
	}
	currency := p.Legacy.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return domain.ProductVariant{
		ID:                 p.ID,
		ProductID:          p.ID,
		SKU:                sku,
		PriceCents:         p.Legacy.PriceCents,
		Currency:           currency,
		Stock:              p.Legacy.Stock,
		DiscountPercentage: p.Legacy.DiscountPercentage,
		ShippingCostCents:  p.Legacy.ShippingCostCents,
		IsFreeShipping:     p.Legacy.IsFreeShipping,
		Virtual:            true,
	}
}

// resolveVariants returns persisted variants in insertion order, or the single
// virtual variant when there are none. The result is never empty.
func (e *Engine) resolveVariants(p domain.Product, persisted []domain.ProductVariant) []domain.ProductVariant {
	if len(persisted) > 0 {
		for i := range persisted {
			if persisted[i].Currency == "" {
				persisted[i].Currency = DefaultCurrency
			}
		}
		return persisted
	}
	observability.VirtualVariantSynthesized()
	e.log.Debug("synthesized legacy variant", "product_id", p.ID, "price_cents", p.Legacy.PriceCents)
	return []domain.ProductVariant{VirtualVariant(p)}
}

// Variants lists the variants of one product with the same legacy fallback as Query.
// productID may be the canonical or the storage-native id.
func (e *Engine) Variants(ctx context.Context, productID string) ([]domain.ProductVariant, error) {
	_, variants, err := e.Resolve(ctx, productID)
	return variants, err
}

// Resolve loads one product and its resolved variants. An unknown product
// yields repository.ErrNotFound.
func (e *Engine) Resolve(ctx context.Context, productID string) (domain.Product, []domain.ProductVariant, error) {
	ctx, span := observability.StartSpan(ctx, tracerName, "catalog.Resolve")
	defer span.End()

	products, err := e.products.Find(ctx, query.IDMatch(productID))
	if err != nil {
		observability.RecordError(span, err)
		return domain.Product{}, nil, fmt.Errorf("find product: %w", err)
	}
	if len(products) == 0 {
		return domain.Product{}, nil, repository.ErrNotFound
	}
	p := products[0]
	byProduct, err := e.variants.ListByProductIDs(ctx, []string{p.ID})
	if err != nil {
		observability.RecordError(span, err)
		return domain.Product{}, nil, fmt.Errorf("list variants: %w", err)
	}
	return p, e.resolveVariants(p, byProduct[p.ID]), nil
}
