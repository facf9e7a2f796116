package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"aura/internal/blob"
	"aura/internal/blob/blobmock"
	"aura/internal/catalog"
	"aura/internal/domain"
	"aura/internal/repository"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"iPhone 15 Pro Max":         "iphone-15-pro-max",
		"  AirPods Pro (2da gen)  ": "airpods-pro-2da-gen",
		"Watch / Series 9":          "watch--series-9",
		"already-slugged":           "already-slugged",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateProduct_RoundTripPrice(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, profile := f.seller(t, "carlos")

	created, err := f.products.Create(ctx, seller, ProductInput{Title: "MacBook Pro 14", PriceCents: 129990, Stock: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := f.products.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PriceCents != 129990 || got.Representative().PriceCents != 129990 {
		t.Fatalf("price = %d, want 129990", got.PriceCents)
	}
	if got.SellerID != profile.ID {
		t.Fatalf("seller = %q, want profile id %q", got.SellerID, profile.ID)
	}
	if got.Slug != "macbook-pro-14" || got.Status != domain.ProductDraft {
		t.Fatalf("slug/status = %q/%q", got.Slug, got.Status)
	}
	if got.SKU != DefaultSKU || got.Currency != "CLP" {
		t.Fatalf("variant defaults = %q/%q", got.SKU, got.Currency)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	admin := f.user(t, "ana", domain.RoleAdmin)
	buyer := f.user(t, "maria", domain.RoleBuyer)
	f.product(t, seller, "Taken", 100)

	tests := []struct {
		name  string
		actor *domain.User
		in    ProductInput
		want  error
	}{
		{"buyer", buyer, ProductInput{Title: "x"}, ErrAccessDenied},
		{"admin without seller", admin, ProductInput{Title: "x"}, ErrInvalidInput},
		{"empty title", seller, ProductInput{Title: "  "}, ErrInvalidInput},
		{"negative price", seller, ProductInput{Title: "x", PriceCents: -1}, ErrInvalidInput},
		{"discount over 100", seller, ProductInput{Title: "x", DiscountPercentage: 101}, ErrInvalidInput},
		{"bad status", seller, ProductInput{Title: "x", Status: "sold"}, ErrInvalidInput},
		{"slug taken", seller, ProductInput{Title: "Taken"}, ErrInvalidInput},
		{"unknown category", seller, ProductInput{Title: "y", CategoryID: "nope"}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.products.Create(ctx, tt.actor, tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateProduct_SellerWithoutProfile(t *testing.T) {
	f := setup(t)
	u := f.user(t, "nobody", domain.RoleSeller)
	_, err := f.products.Create(context.Background(), u, ProductInput{Title: "x"})
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("err = %v, want access denied", err)
	}
}

func TestCreateProduct_AdminForSeller(t *testing.T) {
	f := setup(t)
	_, profile := f.seller(t, "carlos")
	admin := f.user(t, "ana", domain.RoleAdmin)
	v, err := f.products.Create(context.Background(), admin, ProductInput{SellerID: profile.ID, Title: "Admin made"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.SellerID != profile.ID {
		t.Fatalf("seller = %q", v.SellerID)
	}
}

func TestUpdateProduct_SplitsFields(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	p := f.product(t, seller, "iPad Pro", 90000)

	title := "iPad Pro 12.9"
	price := int64(99990)
	stock := int64(7)
	got, err := f.products.Update(ctx, seller, p.ID, ProductUpdate{
		Product: domain.ProductPatch{Title: &title},
		Variant: domain.VariantPatch{PriceCents: &price, Stock: &stock},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != title || got.PriceCents != price || got.Stock != stock {
		t.Fatalf("got %q %d %d", got.Title, got.PriceCents, got.Stock)
	}
	if len(got.Variants) != 1 || got.Variants[0].ID != p.VariantID {
		t.Fatalf("representative variant replaced: %+v", got.Variants)
	}
}

func TestUpdateProduct_MaterializesLegacyVariant(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, profile := f.seller(t, "carlos")
	legacy := f.store.InsertProduct(domain.Product{
		SellerID: profile.ID,
		Title:    "Old",
		Slug:     "old",
		Status:   domain.ProductActive,
		Legacy:   domain.LegacyPricing{PriceCents: 5000, Stock: 2},
	})

	price := int64(6000)
	got, err := f.products.Update(ctx, seller, legacy.ID, ProductUpdate{Variant: domain.VariantPatch{PriceCents: &price}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	rep := got.Representative()
	if rep.Virtual || rep.ID == legacy.ID {
		t.Fatalf("expected a persisted variant, got %+v", rep)
	}
	if rep.PriceCents != 6000 || rep.SKU != DefaultSKU || rep.Stock != 0 {
		t.Fatalf("variant = %+v", rep)
	}
}

func TestUpdateProduct_Ownership(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	owner, _ := f.seller(t, "carlos")
	other, _ := f.seller(t, "diego")
	admin := f.user(t, "ana", domain.RoleAdmin)
	p := f.product(t, owner, "Mine", 100)

	title := "Stolen"
	if _, err := f.products.Update(ctx, other, p.ID, ProductUpdate{Product: domain.ProductPatch{Title: &title}}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("other seller: %v", err)
	}
	title = "Moderated"
	if _, err := f.products.Update(ctx, admin, p.ID, ProductUpdate{Product: domain.ProductPatch{Title: &title}}); err != nil {
		t.Fatalf("admin: %v", err)
	}
	if _, err := f.products.Update(ctx, admin, "missing", ProductUpdate{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing: %v", err)
	}
}

func TestDeleteProduct_Cascades(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)

	img, err := f.images.Put(ctx, domain.Image{MimeType: "image/png", Data: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("put image: %v", err)
	}
	p, err := f.products.Create(ctx, seller, ProductInput{Title: "Gone", PriceCents: 100, Images: []string{blob.URL(img.ID), "https://cdn.example.com/x.png"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.reviews.Create(ctx, buyer, p.ID, 5, "great"); err != nil {
		t.Fatalf("review: %v", err)
	}

	if err := f.products.Delete(ctx, seller, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.products.GetByID(ctx, p.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("product still readable: %v", err)
	}
	variants, _ := f.st.Variants.ListByProductIDs(ctx, []string{p.ID})
	reviews, _ := f.st.Reviews.ListByProductIDs(ctx, []string{p.ID})
	if len(variants[p.ID]) != 0 || len(reviews[p.ID]) != 0 {
		t.Fatalf("orphans left: %d variants, %d reviews", len(variants[p.ID]), len(reviews[p.ID]))
	}
	if _, err := f.images.Get(ctx, img.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("image not deleted: %v", err)
	}
}

func TestDeleteProduct_ImageStoreFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")

	ctrl := gomock.NewController(t)
	images := blobmock.NewMockStore(ctrl)
	products := NewProductService(f.st, catalog.NewEngine(f.st), images, nil)

	p, err := products.Create(ctx, seller, ProductInput{
		Title:  "Flaky",
		Images: []string{blob.URL("a"), "https://cdn.example.com/x.png", blob.URL("b")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	images.EXPECT().Delete(gomock.Any(), "a").Return(errors.New("bucket unavailable"))
	images.EXPECT().Delete(gomock.Any(), "b").Return(repository.ErrNotFound)

	if err := products.Delete(ctx, seller, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := products.GetByID(ctx, p.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("product still readable: %v", err)
	}
}
