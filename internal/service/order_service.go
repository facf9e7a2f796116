package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aura/internal/domain"
	"aura/internal/repository"
)

var ErrInvalidState = errors.New("invalid state")

// transitions allowed order status changes
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderPending:   {domain.OrderPaid, domain.OrderCancelled},
	domain.OrderPaid:      {domain.OrderPreparing, domain.OrderCancelled},
	domain.OrderPreparing: {domain.OrderShipped, domain.OrderCancelled},
	domain.OrderShipped:   {domain.OrderDelivered},
}

func CanTransition(from, to domain.OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderService places orders and drives their status lifecycle
type OrderService struct {
	orders  repository.OrderRepository
	sellers repository.SellerRepository
	cart    *CartService
	log     *slog.Logger
}

func NewOrderService(st repository.Stores, cart *CartService, log *slog.Logger) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{orders: st.Orders, sellers: st.Sellers, cart: cart, log: log}
}

// OrderItemInput requested line
type OrderItemInput struct {
	VariantID string
	Quantity  int
}

// CreateOrder prices items through the cart resolver. With no items the
// buyer's cart is ordered and cleared afterwards.
func (s *OrderService) CreateOrder(ctx context.Context, buyer *domain.User, items []OrderItemInput, shippingAddressID string) (*domain.Order, error) {
	if buyer == nil {
		return nil, ErrAccessDenied
	}
	fromCart := len(items) == 0
	if fromCart {
		lines, err := s.cart.Lines(ctx, buyer.ID)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			if l.Quantity <= 0 {
				continue
			}
			if !l.Available {
				return nil, fmt.Errorf("%w: cart item %q is unavailable", ErrInvalidInput, l.VariantID)
			}
			items = append(items, OrderItemInput{VariantID: l.VariantID, Quantity: l.Quantity})
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
		}
	}

	o := domain.Order{
		UserID:            buyer.ID,
		Status:            domain.OrderPending,
		ShippingAddressID: shippingAddressID,
		Items:             make([]domain.OrderItem, 0, len(items)),
	}
	for _, it := range items {
		if it.VariantID == "" || it.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
		t, ok, err := s.cart.resolve(ctx, it.VariantID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, it.VariantID)
		}
		if o.Currency == "" {
			o.Currency = t.variant.Currency
		} else if t.variant.Currency != "" && t.variant.Currency != o.Currency {
			return nil, fmt.Errorf("%w: mixed currencies", ErrInvalidInput)
		}
		o.Items = append(o.Items, domain.OrderItem{
			VariantID:      it.VariantID,
			ProductID:      t.product.ID,
			SellerID:       t.product.SellerID,
			Title:          t.product.Title,
			UnitPriceCents: t.variant.PriceCents,
			Quantity:       it.Quantity,
		})
		o.TotalCents += t.variant.PriceCents * int64(it.Quantity)
	}

	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if fromCart {
		if err := s.cart.Clear(ctx, buyer.ID); err != nil {
			s.log.Warn("clear cart after order", "order_id", o.ID, "user_id", buyer.ID, "error", err)
		}
	}
	s.log.Info("order created", "order_id", o.ID, "user_id", buyer.ID, "total_cents", o.TotalCents, "items", len(o.Items))
	return &o, nil
}

// visible reports whether the actor may see the order
func (s *OrderService) visible(ctx context.Context, actor *domain.User, o *domain.Order) (bool, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return true, nil
	case domain.RoleSeller:
		if o.UserID == actor.ID {
			return true, nil
		}
		return s.sellsInto(ctx, actor, o)
	}
	return o.UserID == actor.ID, nil
}

// GetOrder returns the order if the actor may see it
func (s *OrderService) GetOrder(ctx context.Context, actor *domain.User, id string) (*domain.Order, error) {
	if id == "" || actor == nil {
		return nil, ErrInvalidInput
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.visible(ctx, actor, o)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAccessDenied
	}
	return o, nil
}

// SetStatus moves the order along the transition table. Buyers may only
// cancel their own orders; sellers act on orders holding their items.
func (s *OrderService) SetStatus(ctx context.Context, actor *domain.User, id string, to domain.OrderStatus) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleSeller:
		if to != domain.OrderCancelled || o.UserID != actor.ID {
			ok, err := s.sellsInto(ctx, actor, o)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrAccessDenied
			}
		}
	default:
		if to != domain.OrderCancelled {
			return nil, ErrAccessDenied
		}
	}
	if !CanTransition(o.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, o.Status, to)
	}
	if err := s.orders.UpdateStatus(ctx, o.ID, to); err != nil {
		return nil, err
	}
	s.log.Info("order status changed", "order_id", o.ID, "from", o.Status, "to", to, "by", actor.ID)
	o.Status = to
	return o, nil
}

func (s *OrderService) sellsInto(ctx context.Context, actor *domain.User, o *domain.Order) (bool, error) {
	p, err := s.sellers.GetByUserID(ctx, actor.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return o.HasSeller(p.ID), nil
}

// CancelOrder is SetStatus(cancelled)
func (s *OrderService) CancelOrder(ctx context.Context, actor *domain.User, id string) (*domain.Order, error) {
	return s.SetStatus(ctx, actor, id, domain.OrderCancelled)
}

func (s *OrderService) ListForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.List(ctx, repository.OrderFilter{UserID: userID})
}

// ListForSeller orders containing the calling seller's items
func (s *OrderService) ListForSeller(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	p, err := ownProfile(ctx, s.sellers, actor)
	if err != nil {
		return nil, err
	}
	return s.orders.List(ctx, repository.OrderFilter{SellerID: p.ID})
}

// ListAll every order, unfiltered
func (s *OrderService) ListAll(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.orders.List(ctx, repository.OrderFilter{})
}
