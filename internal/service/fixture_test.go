package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"aura/internal/auth"
	"aura/internal/blob"
	"aura/internal/catalog"
	"aura/internal/domain"
	"aura/internal/repository"
)

type fixture struct {
	store    *repository.MemoryStore
	st       repository.Stores
	images   *blob.Memory
	products *ProductService
	cart     *CartService
	orders   *OrderService
	reviews  *ReviewService
	sellers  *SellerService
	reports  *ReportService
	auth     *AuthService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewMemoryStore()
	st := store.Stores()
	engine := catalog.NewEngine(st, catalog.WithLogger(log))
	images := blob.NewMemory()
	tokens, err := auth.NewIssuer("test-secret", 0)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	cart := NewCartService(st, engine, log)
	return &fixture{
		store:    store,
		st:       st,
		images:   images,
		products: NewProductService(st, engine, images, log),
		cart:     cart,
		orders:   NewOrderService(st, cart, log),
		reviews:  NewReviewService(st),
		sellers:  NewSellerService(st, log),
		reports:  NewReportService(st),
		auth:     NewAuthService(st, tokens, log),
	}
}

func (f *fixture) user(t *testing.T, name string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{Email: name + "@example.com", Name: name, Role: role}
	if err := f.st.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

// seller creates a seller-role user with a verified profile
func (f *fixture) seller(t *testing.T, name string) (*domain.User, *domain.SellerProfile) {
	t.Helper()
	u := f.user(t, name, domain.RoleSeller)
	p := &domain.SellerProfile{UserID: u.ID, DisplayName: name + " Store", Status: domain.SellerVerified}
	if err := f.st.Sellers.Create(context.Background(), p); err != nil {
		t.Fatalf("create profile %s: %v", name, err)
	}
	return u, p
}

func (f *fixture) product(t *testing.T, actor *domain.User, title string, price int64) *domain.ProductView {
	t.Helper()
	v, err := f.products.Create(context.Background(), actor, ProductInput{
		Title:      title,
		PriceCents: price,
		Stock:      10,
		Status:     domain.ProductActive,
	})
	if err != nil {
		t.Fatalf("create product %s: %v", title, err)
	}
	return v
}
