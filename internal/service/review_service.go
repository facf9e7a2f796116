package service

import (
	"context"
	"fmt"
	"strings"

	"aura/internal/domain"
	"aura/internal/query"
	"aura/internal/repository"
)

// ReviewerFallbackName is shown when the author cannot be resolved
const ReviewerFallbackName = "Usuario"

type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewReviewService(st repository.Stores) *ReviewService {
	return &ReviewService{reviews: st.Reviews, products: st.Products, users: st.Users}
}

// canonical maps a canonical or storage id to the product's canonical id
func (s *ReviewService) canonical(ctx context.Context, productID string) (string, bool, error) {
	found, err := s.products.Find(ctx, query.IDMatch(productID))
	if err != nil {
		return "", false, fmt.Errorf("find product: %w", err)
	}
	if len(found) == 0 {
		return productID, false, nil
	}
	return found[0].ID, true, nil
}

// List reviews of a product with author names; unknown products have none
func (s *ReviewService) List(ctx context.Context, productID string) ([]domain.ReviewView, error) {
	id, _, err := s.canonical(ctx, productID)
	if err != nil {
		return nil, err
	}
	byProduct, err := s.reviews.ListByProductIDs(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	set := byProduct[id]
	ids := make([]int64, 0, len(set))
	for _, r := range set {
		ids = append(ids, r.UserID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get review authors: %w", err)
	}
	out := make([]domain.ReviewView, 0, len(set))
	for _, r := range set {
		out = append(out, domain.ReviewView{Review: r, UserName: reviewerName(users[r.UserID])})
	}
	return out, nil
}

func reviewerName(u domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return ReviewerFallbackName
}

func (s *ReviewService) Create(ctx context.Context, author *domain.User, productID string, rating int, comment string) (*domain.ReviewView, error) {
	if author == nil {
		return nil, ErrAccessDenied
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	id, ok, err := s.canonical(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	r := domain.Review{
		UserID:    author.ID,
		ProductID: id,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	if err := s.reviews.Create(ctx, &r); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &domain.ReviewView{Review: r, UserName: reviewerName(*author)}, nil
}
