package repository

import (
	"context"
	"slices"
	"strings"

	"aura/internal/domain"
)

// Users

type MemoryUsers struct{ store *MemoryStore }

var _ UserRepository = (*MemoryUsers)(nil)

func (r *MemoryUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUsers) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[int64]domain.User, len(ids))
	for _, u := range r.store.users {
		if slices.Contains(ids, u.ID) {
			out[u.ID] = u
		}
	}
	return out, nil
}

func (r *MemoryUsers) Create(ctx context.Context, u *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrConflict
		}
	}
	u.ID = r.store.nextUserID
	r.store.nextUserID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now()
	}
	r.store.users = append(r.store.users, *u)
	return nil
}

func (r *MemoryUsers) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		u := &r.store.users[i]
		if u.ID != id {
			continue
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		cp := *u
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryUsers) List(ctx context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.users), nil
}

func (r *MemoryUsers) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.users)), nil
}

// Seller profiles

type MemorySellers struct{ store *MemoryStore }

var _ SellerRepository = (*MemorySellers)(nil)

func (r *MemorySellers) find(match func(domain.SellerProfile) bool) *domain.SellerProfile {
	for i := range r.store.sellers {
		if match(r.store.sellers[i]) {
			return &r.store.sellers[i]
		}
	}
	return nil
}

func (r *MemorySellers) GetByUserID(ctx context.Context, userID int64) (*domain.SellerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p := r.find(func(p domain.SellerProfile) bool { return p.UserID == userID })
	if p == nil {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemorySellers) GetByID(ctx context.Context, id string) (*domain.SellerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p := r.find(func(p domain.SellerProfile) bool { return p.ID == id })
	if p == nil {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemorySellers) GetByIDs(ctx context.Context, ids []string) (map[string]domain.SellerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]domain.SellerProfile, len(ids))
	for _, p := range r.store.sellers {
		if slices.Contains(ids, p.ID) {
			out[p.ID] = p
		}
	}
	return out, nil
}

func (r *MemorySellers) Create(ctx context.Context, p *domain.SellerProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.find(func(e domain.SellerProfile) bool { return e.UserID == p.UserID }) != nil {
		return ErrConflict
	}
	if p.ID == "" {
		p.ID = r.store.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	r.store.sellers = append(r.store.sellers, *p)
	return nil
}

func (r *MemorySellers) UpdateByUserID(ctx context.Context, userID int64, patch domain.SellerProfilePatch) (*domain.SellerProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := r.find(func(p domain.SellerProfile) bool { return p.UserID == userID })
	if p == nil {
		return nil, ErrNotFound
	}
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	cp := *p
	return &cp, nil
}

func (r *MemorySellers) SetStatus(ctx context.Context, id string, status domain.SellerStatus) (*domain.SellerProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := r.find(func(p domain.SellerProfile) bool { return p.ID == id })
	if p == nil {
		return nil, ErrNotFound
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

func (r *MemorySellers) ListByStatus(ctx context.Context, status domain.SellerStatus) ([]domain.SellerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.SellerProfile, 0)
	for _, p := range r.store.sellers {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

// Reviews

type MemoryReviews struct{ store *MemoryStore }

var _ ReviewRepository = (*MemoryReviews)(nil)

func (r *MemoryReviews) ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string][]domain.Review, len(productIDs))
	for _, rv := range r.store.reviews {
		if slices.Contains(productIDs, rv.ProductID) {
			out[rv.ProductID] = append(out[rv.ProductID], rv)
		}
	}
	return out, nil
}

func (r *MemoryReviews) Create(ctx context.Context, rv *domain.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rv.ID == "" {
		rv.ID = r.store.newID()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = now()
	}
	r.store.reviews = append(r.store.reviews, *rv)
	return nil
}

func (r *MemoryReviews) DeleteByProductID(ctx context.Context, productID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reviews = slices.DeleteFunc(r.store.reviews, func(rv domain.Review) bool {
		return rv.ProductID == productID
	})
	return nil
}
