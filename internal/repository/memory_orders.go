package repository

import (
	"context"
	"slices"
	"sort"

	"aura/internal/domain"
)

// Cart

type MemoryCarts struct{ store *MemoryStore }

var _ CartRepository = (*MemoryCarts)(nil)

func (r *MemoryCarts) ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.CartItem, 0)
	for _, it := range r.store.cart {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Increment holds the write lock across lookup and write, the in-memory
// equivalent of an upsert with $inc.
func (r *MemoryCarts) Increment(ctx context.Context, userID int64, variantID string, qty int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.cart {
		it := &r.store.cart[i]
		if it.UserID == userID && it.VariantID == variantID {
			it.Quantity += qty
			return nil
		}
	}
	r.store.cart = append(r.store.cart, domain.CartItem{
		ID:        r.store.newID(),
		UserID:    userID,
		VariantID: variantID,
		Quantity:  qty,
	})
	return nil
}

func (r *MemoryCarts) SetQuantity(ctx context.Context, userID int64, variantID string, qty int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.cart {
		it := &r.store.cart[i]
		if it.UserID == userID && it.VariantID == variantID {
			it.Quantity = qty
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryCarts) Remove(ctx context.Context, userID int64, variantID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n := len(r.store.cart)
	r.store.cart = slices.DeleteFunc(r.store.cart, func(it domain.CartItem) bool {
		return it.UserID == userID && it.VariantID == variantID
	})
	if len(r.store.cart) == n {
		return ErrNotFound
	}
	return nil
}

func (r *MemoryCarts) Clear(ctx context.Context, userID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.cart = slices.DeleteFunc(r.store.cart, func(it domain.CartItem) bool {
		return it.UserID == userID
	})
	return nil
}

// Orders

type MemoryOrders struct{ store *MemoryStore }

var _ OrderRepository = (*MemoryOrders)(nil)

func (r *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if o.ID == "" {
		o.ID = r.store.newID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now()
	}
	cp := *o
	cp.Items = slices.Clone(o.Items)
	r.store.orders = append(r.store.orders, cp)
	return nil
}

func (r *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, o := range r.store.orders {
		if o.ID == id {
			cp := o
			cp.Items = slices.Clone(o.Items)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryOrders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.orders {
		if r.store.orders[i].ID == id {
			r.store.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// List returns matching orders, newest first
func (r *MemoryOrders) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, o := range r.store.orders {
		if f.Matches(o) {
			o.Items = slices.Clone(o.Items)
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryOrders) Count(ctx context.Context, f OrderFilter) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var n int64
	for _, o := range r.store.orders {
		if f.Matches(o) {
			n++
		}
	}
	return n, nil
}
