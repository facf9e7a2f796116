package service

import (
	"context"
	"errors"
	"testing"

	"aura/internal/domain"
	"aura/internal/repository"
)

func TestCart_AddIncrements(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p := f.product(t, seller, "AirPods", 24990)

	if err := f.cart.Add(ctx, buyer.ID, p.VariantID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.cart.Add(ctx, buyer.ID, p.VariantID, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := f.cart.Lines(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("lines = %+v, want one row of 5", lines)
	}
	l := lines[0]
	if !l.Available || l.ProductName != "AirPods" || l.ProductPrice != 24990 || l.ProductImage != PlaceholderImage {
		t.Fatalf("hydration = %+v", l)
	}
}

func TestCart_UpdateKeepsZero(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	p := f.product(t, seller, "Watch", 100)

	if err := f.cart.Add(ctx, 1, p.VariantID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.cart.Update(ctx, 1, p.VariantID, 0); err != nil {
		t.Fatalf("update: %v", err)
	}
	lines, _ := f.cart.Lines(ctx, 1)
	if len(lines) != 1 || lines[0].Quantity != 0 {
		t.Fatalf("lines = %+v, want zero-quantity row", lines)
	}
	if err := f.cart.Update(ctx, 1, p.VariantID, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative: %v", err)
	}
	if err := f.cart.Remove(ctx, 1, p.VariantID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := f.cart.Remove(ctx, 1, p.VariantID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second remove: %v", err)
	}
}

func TestCart_LegacyProductIDFallback(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, profile := f.seller(t, "carlos")
	legacy := f.store.InsertProduct(domain.Product{
		SellerID: profile.ID,
		Title:    "Legacy phone",
		Slug:     "legacy-phone",
		Images:   []string{"/images/products/iphone.svg"},
		Legacy:   domain.LegacyPricing{PriceCents: 5000, SKU: "OLD-1"},
	})
	// carts written before variants stored the product id
	if err := f.st.Carts.Increment(ctx, 9, legacy.ID, 1); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	lines, err := f.cart.Lines(ctx, 9)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	l := lines[0]
	if !l.Available || l.ProductID != legacy.ID || l.SKU != "OLD-1" || l.ProductPrice != 5000 {
		t.Fatalf("fallback line = %+v", l)
	}
	if l.ProductImage != "/images/products/iphone.svg" {
		t.Fatalf("image = %q", l.ProductImage)
	}
}

func TestCart_UnavailableLine(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	if err := f.st.Carts.Increment(ctx, 9, "ghost", 2); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	lines, err := f.cart.Lines(ctx, 9)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	l := lines[0]
	if l.Available || l.ProductName != UnavailableProductName || l.SKU != "ghost" || l.ProductPrice != 0 {
		t.Fatalf("unavailable line = %+v", l)
	}
	if err := f.cart.Add(ctx, 9, "ghost", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("add unknown: %v", err)
	}
}
