package service

import (
	"context"
	"errors"
	"testing"

	"aura/internal/domain"
	"aura/internal/repository"
)

func TestReviews(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p := f.product(t, seller, "iPhone", 100)

	if _, err := f.reviews.Create(ctx, buyer, p.ID, 6, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("rating 6: %v", err)
	}
	if _, err := f.reviews.Create(ctx, buyer, "missing", 4, ""); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing product: %v", err)
	}
	r, err := f.reviews.Create(ctx, buyer, p.ID, 4, " Muy bueno ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.UserName != "maria" || r.Comment != "Muy bueno" {
		t.Fatalf("review = %+v", r)
	}
	// author that no longer resolves
	if err := f.st.Reviews.Create(ctx, &domain.Review{UserID: 999, ProductID: p.ID, Rating: 2}); err != nil {
		t.Fatalf("seed review: %v", err)
	}

	list, err := f.reviews.List(ctx, p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].UserName != "maria" || list[1].UserName != ReviewerFallbackName {
		t.Fatalf("list = %+v", list)
	}

	view, _ := f.products.GetByID(ctx, p.ID)
	if view.ReviewCount != 2 || view.Rating != 3 {
		t.Fatalf("aggregate = %d/%v", view.ReviewCount, view.Rating)
	}

	empty, err := f.reviews.List(ctx, "unknown")
	if err != nil || len(empty) != 0 {
		t.Fatalf("unknown product: %v %v", empty, err)
	}
}
