package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/domain"
	"aura/internal/repository"
)

type fixture struct {
	store  *repository.MemoryStore
	stores repository.Stores
	engine *Engine
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	stores := store.Stores()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{store: store, stores: stores, engine: NewEngine(stores, WithLogger(logger))}
}

func (f *fixture) product(t *testing.T, p domain.Product, variants ...domain.ProductVariant) domain.Product {
	t.Helper()
	p = f.store.InsertProduct(p)
	for _, v := range variants {
		v.ProductID = p.ID
		require.NoError(t, f.stores.Variants.Create(context.Background(), &v))
	}
	return p
}

// seedABC: A (10000, 20% off), B (10000, no discount), C (legacy flat price 5000, no variant)
func seedABC(t *testing.T, f *fixture) (a, b, c domain.Product) {
	a = f.product(t, domain.Product{Title: "A", Slug: "a"}, domain.ProductVariant{SKU: "A-1", PriceCents: 10000, DiscountPercentage: 20})
	b = f.product(t, domain.Product{Title: "B", Slug: "b"}, domain.ProductVariant{SKU: "B-1", PriceCents: 10000})
	c = f.product(t, domain.Product{Title: "C", Slug: "c", Legacy: domain.LegacyPricing{PriceCents: 5000, Stock: 3}})
	return a, b, c
}

func titles(views []domain.ProductView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Title
	}
	return out
}

func TestQuery_HasDiscount(t *testing.T) {
	f := setup(t)
	seedABC(t, f)

	views, err := f.engine.Query(context.Background(), domain.ProductFilter{HasDiscount: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, titles(views))
}

func TestQuery_NoFiltersOneVariantEach(t *testing.T) {
	f := setup(t)
	seedABC(t, f)

	views, err := f.engine.Query(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, titles(views))
	for _, v := range views {
		assert.Len(t, v.Variants, 1, v.Title)
	}
	c := views[2]
	assert.True(t, c.Variants[0].Virtual)
	assert.Equal(t, int64(5000), c.PriceCents)
	assert.Equal(t, int64(3), c.Stock)
	assert.Equal(t, "C-LEGACY", c.SKU)
	assert.Equal(t, DefaultCurrency, c.Currency)
	assert.Equal(t, c.ID, c.VariantID)
}

func TestQuery_PriceAscLegacyFirst(t *testing.T) {
	f := setup(t)
	seedABC(t, f)

	views, err := f.engine.Query(context.Background(), domain.ProductFilter{Sort: domain.SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "C", views[0].Title)
	assert.ElementsMatch(t, []string{"A", "B"}, titles(views[1:]))
}

func TestQuery_RepresentativeIsFirstVariant(t *testing.T) {
	f := setup(t)
	f.product(t, domain.Product{Title: "multi", Slug: "multi"},
		domain.ProductVariant{SKU: "first", PriceCents: 300},
		domain.ProductVariant{SKU: "second", PriceCents: 100},
		domain.ProductVariant{SKU: "third", PriceCents: 200},
	)
	views, err := f.engine.Query(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	v := views[0]
	assert.Len(t, v.Variants, 3)
	assert.Equal(t, "first", v.SKU)
	assert.Equal(t, v.Variants[0].ID, v.VariantID)
	assert.Equal(t, v.Variants[0], v.Representative())
	assert.Equal(t, int64(300), v.Price)
}

func TestQuery_PriceBoundsUseRepresentativeOnly(t *testing.T) {
	f := setup(t)
	f.product(t, domain.Product{Title: "pricey", Slug: "pricey"},
		domain.ProductVariant{SKU: "big", PriceCents: 50000},
		domain.ProductVariant{SKU: "small", PriceCents: 1000},
	)
	f.product(t, domain.Product{Title: "mid", Slug: "mid"}, domain.ProductVariant{SKU: "m", PriceCents: 2000})

	lo, hi := int64(500), int64(2000)
	views, err := f.engine.Query(context.Background(), domain.ProductFilter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	assert.Equal(t, []string{"mid"}, titles(views))

	exact := int64(2000)
	views, err = f.engine.Query(context.Background(), domain.ProductFilter{MinPrice: &exact, MaxPrice: &exact})
	require.NoError(t, err)
	assert.Equal(t, []string{"mid"}, titles(views), "bounds are inclusive")
}

func TestQuery_FreeShipping(t *testing.T) {
	f := setup(t)
	f.product(t, domain.Product{Title: "free", Slug: "free"}, domain.ProductVariant{IsFreeShipping: true})
	f.product(t, domain.Product{Title: "paid", Slug: "paid"}, domain.ProductVariant{ShippingCostCents: 250})
	f.product(t, domain.Product{Title: "legacy-free", Slug: "lf", Legacy: domain.LegacyPricing{IsFreeShipping: true}})

	views, err := f.engine.Query(context.Background(), domain.ProductFilter{FreeShipping: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"free", "legacy-free"}, titles(views))

	all, _ := f.engine.Query(context.Background(), domain.ProductFilter{})
	assert.Equal(t, 2.5, all[1].ShippingCost)
	assert.True(t, all[0].FreeShipping)
}

func TestQuery_VirtualVariantNeverPersisted(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, _, c := seedABC(t, f)

	_, err := f.engine.Query(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	variants, err := f.engine.Variants(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, int64(5000), variants[0].PriceCents)
	assert.True(t, variants[0].Virtual)

	stored, err := f.stores.Variants.ListByProductIDs(ctx, []string{c.ID})
	require.NoError(t, err)
	assert.Empty(t, stored[c.ID])
	_, err = f.stores.Variants.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVariants_ConsistentWithView(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	a, _, c := seedABC(t, f)

	for _, p := range []domain.Product{a, c} {
		view, ok, err := f.engine.ProductByID(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, ok)
		variants, err := f.engine.Variants(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, view.Variants, variants)
	}

	_, err := f.engine.Variants(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuery_Rating(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	a, b, _ := seedABC(t, f)
	for _, r := range []int{5, 4, 4} {
		require.NoError(t, f.stores.Reviews.Create(ctx, &domain.Review{ProductID: a.ID, UserID: 1, Rating: r}))
	}
	require.NoError(t, f.stores.Reviews.Create(ctx, &domain.Review{ProductID: b.ID, UserID: 1, Rating: 5}))

	views, err := f.engine.Query(ctx, domain.ProductFilter{Sort: domain.SortRating})
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A", "C"}, titles(views))
	assert.InDelta(t, 13.0/3.0, views[1].Rating, 1e-9)
	assert.Equal(t, 3, views[1].ReviewCount)
	assert.Equal(t, 0.0, views[2].Rating)
	assert.Equal(t, 0, views[2].ReviewCount)

	views, err = f.engine.Query(ctx, domain.ProductFilter{Sort: domain.SortPopular})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(views))
}

func TestQuery_Newest(t *testing.T) {
	f := setup(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.product(t, domain.Product{Title: "old", Slug: "old", CreatedAt: base})
	f.product(t, domain.Product{Title: "new", Slug: "new", CreatedAt: base.Add(48 * time.Hour)})
	f.product(t, domain.Product{Title: "mid", Slug: "mid", CreatedAt: base.Add(24 * time.Hour)})

	views, err := f.engine.Query(context.Background(), domain.ProductFilter{Sort: domain.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, titles(views))
}

func TestQuery_SellerName(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	jane := domain.User{Email: "jane@example.com", Name: "Jane", Role: domain.RoleSeller}
	require.NoError(t, f.stores.Users.Create(ctx, &jane))

	unnamed := domain.SellerProfile{UserID: jane.ID, Status: domain.SellerVerified}
	require.NoError(t, f.stores.Sellers.Create(ctx, &unnamed))
	orphan := domain.SellerProfile{UserID: 999}
	require.NoError(t, f.stores.Sellers.Create(ctx, &orphan))
	named := domain.SellerProfile{UserID: jane.ID + 1, DisplayName: "Tienda"}
	require.NoError(t, f.stores.Sellers.Create(ctx, &named))

	f.product(t, domain.Product{Title: "by-jane", Slug: "j", SellerID: unnamed.ID})
	f.product(t, domain.Product{Title: "by-orphan", Slug: "o", SellerID: orphan.ID})
	f.product(t, domain.Product{Title: "by-shop", Slug: "s", SellerID: named.ID})
	f.product(t, domain.Product{Title: "no-profile", Slug: "n", SellerID: "ghost"})

	views, err := f.engine.Query(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, views, 4)

	want := []string{"Jane", SellerFallbackName, "Tienda", SellerFallbackName}
	for i, v := range views {
		assert.Equal(t, want[i], v.SellerName, v.Title)
		assert.Equal(t, want[i], v.Seller.DisplayName, v.Title)
		assert.Equal(t, want[i], v.Seller.Name, v.Title)
	}
	assert.Equal(t, jane.ID, views[0].Seller.UserID)
	assert.Equal(t, domain.SellerVerified, views[0].Seller.Status)
}

func TestQuery_SingleLookup(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	a, _, _ := seedABC(t, f)
	legacy := f.store.InsertProduct(domain.Product{ID: "legacy-id", Title: "L", Slug: "l"})

	_, ok, err := f.engine.ProductByID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := f.engine.ProductBySlug(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a.ID, v.ID)

	v, ok, err = f.engine.ProductByID(ctx, legacy.StorageID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "legacy-id", v.ID)

	views, err := f.engine.Query(ctx, domain.ProductFilter{Slug: "b", Offset: 10, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, views, 1, "pagination ignored on single lookup")
}

func TestQuery_Pagination(t *testing.T) {
	f := setup(t)
	seedABC(t, f)
	ctx := context.Background()

	views, err := f.engine.Query(ctx, domain.ProductFilter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, titles(views))

	views, err = f.engine.Query(ctx, domain.ProductFilter{Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NotNil(t, views)

	views, err = f.engine.Query(ctx, domain.ProductFilter{Limit: 0})
	require.NoError(t, err)
	assert.Len(t, views, 3)
}

func TestQuery_RoundTripPrice(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	p := domain.Product{Title: "MacBook", Slug: "macbook"}
	require.NoError(t, f.stores.Products.Create(ctx, &p))
	require.NoError(t, f.stores.Variants.Create(ctx, &domain.ProductVariant{ProductID: p.ID, SKU: "MB", PriceCents: 129990}))

	v, ok, err := f.engine.ProductByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(129990), v.Representative().PriceCents)
	assert.Equal(t, int64(129990), v.PriceCents)
}

type failingReviews struct{ repository.ReviewRepository }

var errStore = errors.New("store unavailable")

func (failingReviews) ListByProductIDs(context.Context, []string) (map[string][]domain.Review, error) {
	return nil, errStore
}

func TestQuery_StoreErrorPropagates(t *testing.T) {
	f := setup(t)
	seedABC(t, f)
	stores := f.stores
	stores.Reviews = failingReviews{}
	engine := NewEngine(stores)

	for _, s := range []domain.SortOrder{domain.SortNone, domain.SortRating} {
		_, err := engine.Query(context.Background(), domain.ProductFilter{Sort: s})
		assert.ErrorIs(t, err, errStore, string(s))
	}
}

func TestVirtualVariant_Defaults(t *testing.T) {
	v := VirtualVariant(domain.Product{ID: "p1", Slug: "iphone-15"})
	assert.Equal(t, domain.ProductVariant{
		ID: "p1", ProductID: "p1", SKU: "IPHONE-15-LEGACY", Currency: DefaultCurrency, Virtual: true,
	}, v)

	v = VirtualVariant(domain.Product{ID: "p2", Legacy: domain.LegacyPricing{SKU: "OLD", Currency: "USD", DiscountPercentage: 15}})
	assert.Equal(t, "OLD", v.SKU)
	assert.Equal(t, "USD", v.Currency)
	assert.Equal(t, 15, v.DiscountPercentage)
}
