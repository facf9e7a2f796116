// Package catalog builds denormalized product views: product, representative
// variant, seller and review aggregates, filtered, sorted and paged.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"aura/internal/domain"
	"aura/internal/observability"
	"aura/internal/query"
	"aura/internal/repository"
)

const tracerName = "aura.catalog"

// SellerFallbackName is shown when neither the profile nor its user has a name
const SellerFallbackName = "Vendedor"

// Engine runs product aggregation over the injected stores
type Engine struct {
	products repository.ProductRepository
	variants repository.VariantRepository
	sellers  repository.SellerRepository
	users    repository.UserRepository
	reviews  repository.ReviewRepository
	log      *slog.Logger
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func NewEngine(st repository.Stores, opts ...Option) *Engine {
	e := &Engine{
		products: st.Products,
		variants: st.Variants,
		sellers:  st.Sellers,
		users:    st.Users,
		reviews:  st.Reviews,
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Query returns the page of hydrated views selected by f. An unresolvable id or
// slug yields an empty slice, not an error. Store errors are returned as is.
func (e *Engine) Query(ctx context.Context, f domain.ProductFilter) ([]domain.ProductView, error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, tracerName, "catalog.Query", trace.WithAttributes(
		attribute.String("sort", string(f.Sort)),
		attribute.Int("limit", f.Limit),
		attribute.Int("offset", f.Offset),
		attribute.Bool("single", f.SingleLookup()),
	))
	defer span.End()

	views, err := e.query(ctx, f)
	observability.ObserveCatalogQuery(time.Since(start), len(views), err)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("results", len(views)))
	return views, nil
}

// ProductByID is Query{ID: id, Limit: 1}
func (e *Engine) ProductByID(ctx context.Context, id string) (domain.ProductView, bool, error) {
	return e.first(ctx, domain.ProductFilter{ID: id, Limit: 1})
}

// ProductBySlug is Query{Slug: slug, Limit: 1}
func (e *Engine) ProductBySlug(ctx context.Context, slug string) (domain.ProductView, bool, error) {
	return e.first(ctx, domain.ProductFilter{Slug: slug, Limit: 1})
}

func (e *Engine) first(ctx context.Context, f domain.ProductFilter) (domain.ProductView, bool, error) {
	views, err := e.Query(ctx, f)
	if err != nil || len(views) == 0 {
		return domain.ProductView{}, false, err
	}
	return views[0], true, nil
}

func (e *Engine) query(ctx context.Context, f domain.ProductFilter) ([]domain.ProductView, error) {
	if f.SingleLookup() {
		f.Limit, f.Offset = 1, 0
	}

	// stage 1: product-only fields
	products, err := e.products.Find(ctx, query.ProductMatch(f))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	if len(products) == 0 {
		return []domain.ProductView{}, nil
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	byProduct, err := e.variants.ListByProductIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}

	// stage 2: representative variant fields
	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		v := newView(p, e.resolveVariants(p, byProduct[p.ID]))
		if matchesVariant(f, v) {
			views = append(views, v)
		}
	}
	if len(views) == 0 {
		return views, nil
	}

	// review aggregates feed the rating and popular orders, so they are
	// resolved over the whole survivor set; otherwise only over the page.
	if needsReviews(f.Sort) {
		reviews, err := e.reviewsFor(ctx, views)
		if err != nil {
			return nil, err
		}
		applyReviews(views, reviews)
		sortViews(views, f.Sort)
		views = paginate(views, f.Offset, f.Limit)
		sellers, err := e.sellersFor(ctx, views)
		if err != nil {
			return nil, err
		}
		applySellers(views, sellers)
		return views, nil
	}

	sortViews(views, f.Sort)
	views = paginate(views, f.Offset, f.Limit)

	var (
		reviews map[string][]domain.Review
		sellers map[string]domain.SellerView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = e.reviewsFor(gctx, views)
		return err
	})
	g.Go(func() error {
		var err error
		sellers, err = e.sellersFor(gctx, views)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	applyReviews(views, reviews)
	applySellers(views, sellers)
	return views, nil
}

func newView(p domain.Product, variants []domain.ProductVariant) domain.ProductView {
	rep := variants[0]
	return domain.ProductView{
		Product:            p,
		Variants:           variants,
		VariantID:          rep.ID,
		Price:              rep.PriceCents,
		PriceCents:         rep.PriceCents,
		Stock:              rep.Stock,
		SKU:                rep.SKU,
		Currency:           rep.Currency,
		DiscountPercentage: rep.DiscountPercentage,
		IsFreeShipping:     rep.IsFreeShipping,
		FreeShipping:       rep.IsFreeShipping,
		ShippingCostCents:  rep.ShippingCostCents,
		ShippingCost:       float64(rep.ShippingCostCents) / 100,
	}
}

// matchesVariant applies the filters evaluated against the representative variant only
func matchesVariant(f domain.ProductFilter, v domain.ProductView) bool {
	if f.MinPrice != nil && v.PriceCents < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.PriceCents > *f.MaxPrice {
		return false
	}
	if f.HasDiscount && v.DiscountPercentage <= 0 {
		return false
	}
	if f.FreeShipping && !v.IsFreeShipping {
		return false
	}
	return true
}

func needsReviews(s domain.SortOrder) bool {
	return s == domain.SortRating || s == domain.SortPopular
}

func (e *Engine) reviewsFor(ctx context.Context, views []domain.ProductView) (map[string][]domain.Review, error) {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	reviews, err := e.reviews.ListByProductIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func applyReviews(views []domain.ProductView, reviews map[string][]domain.Review) {
	for i := range views {
		set := reviews[views[i].ID]
		views[i].ReviewCount = len(set)
		views[i].Rating = meanRating(set)
	}
}

// meanRating is 0 for an empty set
func meanRating(set []domain.Review) float64 {
	if len(set) == 0 {
		return 0
	}
	var sum int
	for _, r := range set {
		sum += r.Rating
	}
	return float64(sum) / float64(len(set))
}

// sellersFor resolves one SellerView per distinct seller id on the page, with
// a single profile lookup and a single identity lookup.
func (e *Engine) sellersFor(ctx context.Context, views []domain.ProductView) (map[string]domain.SellerView, error) {
	seen := make(map[string]struct{}, len(views))
	ids := make([]string, 0, len(views))
	for _, v := range views {
		if v.SellerID == "" {
			continue
		}
		if _, ok := seen[v.SellerID]; !ok {
			seen[v.SellerID] = struct{}{}
			ids = append(ids, v.SellerID)
		}
	}
	out := make(map[string]domain.SellerView, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	profiles, err := e.sellers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get seller profiles: %w", err)
	}

	var userIDs []int64
	for _, p := range profiles {
		if p.DisplayName == "" && p.UserID != 0 {
			userIDs = append(userIDs, p.UserID)
		}
	}
	users := map[int64]domain.User{}
	if len(userIDs) > 0 {
		users, err = e.users.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("get seller users: %w", err)
		}
	}

	for _, id := range ids {
		p, ok := profiles[id]
		if !ok {
			out[id] = domain.SellerView{ID: id, DisplayName: SellerFallbackName, Name: SellerFallbackName}
			continue
		}
		name := sellerName(p, users)
		out[id] = domain.SellerView{
			ID:          p.ID,
			UserID:      p.UserID,
			DisplayName: name,
			Name:        name,
			Description: p.Description,
			Status:      p.Status,
			Location:    p.Location,
		}
	}
	return out, nil
}

// sellerName: profile display name, then the owning user's name, then the fallback label
func sellerName(p domain.SellerProfile, users map[int64]domain.User) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if u, ok := users[p.UserID]; ok && u.Name != "" {
		return u.Name
	}
	return SellerFallbackName
}

func applySellers(views []domain.ProductView, sellers map[string]domain.SellerView) {
	for i := range views {
		s, ok := sellers[views[i].SellerID]
		if !ok {
			s = domain.SellerView{ID: views[i].SellerID, DisplayName: SellerFallbackName, Name: SellerFallbackName}
		}
		views[i].Seller = s
		views[i].SellerName = s.DisplayName
	}
}

// sortViews is stable; SortNone keeps insertion order
func sortViews(views []domain.ProductView, s domain.SortOrder) {
	var less func(a, b domain.ProductView) bool
	switch s {
	case domain.SortNewest:
		less = func(a, b domain.ProductView) bool { return a.CreatedAt.After(b.CreatedAt) }
	case domain.SortPriceAsc:
		less = func(a, b domain.ProductView) bool { return a.PriceCents < b.PriceCents }
	case domain.SortPriceDesc:
		less = func(a, b domain.ProductView) bool { return a.PriceCents > b.PriceCents }
	case domain.SortRating:
		less = func(a, b domain.ProductView) bool { return a.Rating > b.Rating }
	case domain.SortPopular:
		less = func(a, b domain.ProductView) bool { return a.ReviewCount > b.ReviewCount }
	default:
		return
	}
	sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })
}

// paginate applies offset then limit; limit <= 0 means unlimited
func paginate(views []domain.ProductView, offset, limit int) []domain.ProductView {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(views) {
		return []domain.ProductView{}
	}
	views = views[offset:]
	if limit > 0 && limit < len(views) {
		views = views[:limit]
	}
	return views
}
