package service

import (
	"context"
	"errors"
	"testing"

	"aura/internal/domain"
)

func TestCreateOrder_FromCart(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, profile := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p1 := f.product(t, seller, "A", 1000)
	p2 := f.product(t, seller, "B", 2500)

	if err := f.cart.Add(ctx, buyer.ID, p1.VariantID, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.cart.Add(ctx, buyer.ID, p2.VariantID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	o, err := f.orders.CreateOrder(ctx, buyer, nil, "")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if o.Status != domain.OrderPending {
		t.Fatalf("status = %s", o.Status)
	}
	if o.TotalCents != 3*1000+2*2500 {
		t.Fatalf("total = %d", o.TotalCents)
	}
	if len(o.Items) != 2 || o.Items[0].SellerID != profile.ID || o.Currency != "CLP" {
		t.Fatalf("items = %+v", o.Items)
	}
	lines, _ := f.cart.Lines(ctx, buyer.ID)
	if len(lines) != 0 {
		t.Fatalf("cart not cleared: %+v", lines)
	}
}

func TestCreateOrder_Rejects(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p := f.product(t, seller, "A", 1000)

	if _, err := f.orders.CreateOrder(ctx, buyer, nil, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty cart: %v", err)
	}
	if _, err := f.orders.CreateOrder(ctx, buyer, []OrderItemInput{{VariantID: p.VariantID, Quantity: 0}}, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero quantity: %v", err)
	}
	if _, err := f.orders.CreateOrder(ctx, buyer, []OrderItemInput{{VariantID: "ghost", Quantity: 1}}, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown variant: %v", err)
	}
}

func TestOrderStatus_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	other, _ := f.seller(t, "diego")
	buyer := f.user(t, "maria", domain.RoleBuyer)
	stranger := f.user(t, "pedro", domain.RoleBuyer)
	p := f.product(t, seller, "A", 1000)

	o, err := f.orders.CreateOrder(ctx, buyer, []OrderItemInput{{VariantID: p.VariantID, Quantity: 1}}, "addr-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.orders.GetOrder(ctx, stranger, o.ID); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("stranger read: %v", err)
	}
	if _, err := f.orders.SetStatus(ctx, buyer, o.ID, domain.OrderPaid); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("buyer pay: %v", err)
	}
	if _, err := f.orders.SetStatus(ctx, other, o.ID, domain.OrderPaid); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("foreign seller: %v", err)
	}
	for _, to := range []domain.OrderStatus{domain.OrderPaid, domain.OrderPreparing, domain.OrderShipped} {
		if _, err := f.orders.SetStatus(ctx, seller, o.ID, to); err != nil {
			t.Fatalf("seller -> %s: %v", to, err)
		}
	}
	if _, err := f.orders.CancelOrder(ctx, buyer, o.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("cancel shipped: %v", err)
	}
	got, err := f.orders.SetStatus(ctx, seller, o.ID, domain.OrderDelivered)
	if err != nil || got.Status != domain.OrderDelivered {
		t.Fatalf("deliver: %v %v", got, err)
	}
}

func TestCancelOrder_ByBuyer(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p := f.product(t, seller, "A", 1000)
	o, _ := f.orders.CreateOrder(ctx, buyer, []OrderItemInput{{VariantID: p.VariantID, Quantity: 1}}, "")

	got, err := f.orders.CancelOrder(ctx, buyer, o.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != domain.OrderCancelled {
		t.Fatalf("status = %s", got.Status)
	}
	if _, err := f.orders.CancelOrder(ctx, buyer, o.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("double cancel: %v", err)
	}
}

func TestListOrders_Scopes(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	s1, _ := f.seller(t, "carlos")
	s2, _ := f.seller(t, "diego")
	admin := f.user(t, "ana", domain.RoleAdmin)
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p1 := f.product(t, s1, "A", 1000)
	p2 := f.product(t, s2, "B", 1000)

	if _, err := f.orders.CreateOrder(ctx, buyer, []OrderItemInput{{VariantID: p1.VariantID, Quantity: 1}}, ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.orders.CreateOrder(ctx, buyer, []OrderItemInput{{VariantID: p2.VariantID, Quantity: 1}}, ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, _ := f.orders.ListForUser(ctx, buyer.ID)
	sold, _ := f.orders.ListForSeller(ctx, s1)
	all, _ := f.orders.ListAll(ctx, admin)
	if len(mine) != 2 || len(sold) != 1 || len(all) != 2 {
		t.Fatalf("buyer %d, seller %d, admin %d", len(mine), len(sold), len(all))
	}
	if _, err := f.orders.ListAll(ctx, s1); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("seller list all: %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(domain.OrderPending, domain.OrderCancelled) {
		t.Fatal("pending -> cancelled")
	}
	if CanTransition(domain.OrderDelivered, domain.OrderCancelled) {
		t.Fatal("delivered is terminal")
	}
	if CanTransition(domain.OrderPending, domain.OrderShipped) {
		t.Fatal("pending cannot skip to shipped")
	}
}
