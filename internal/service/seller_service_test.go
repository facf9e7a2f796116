package service

import (
	"context"
	"errors"
	"testing"

	"aura/internal/domain"
	"aura/internal/repository"
)

func TestCreateProfile_PromotesBuyer(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	buyer := f.user(t, "maria", domain.RoleBuyer)

	p, u, err := f.sellers.CreateProfile(ctx, buyer, ProfileInput{DisplayName: " Maria Tech ", Location: "Santiago"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if p.Status != domain.SellerPending || p.DisplayName != "Maria Tech" || p.UserID != buyer.ID {
		t.Fatalf("profile = %+v", p)
	}
	if u.Role != domain.RoleSeller {
		t.Fatalf("role = %s", u.Role)
	}
	stored, _ := f.st.Users.GetByID(ctx, buyer.ID)
	if stored.Role != domain.RoleSeller {
		t.Fatalf("stored role = %s", stored.Role)
	}

	if _, _, err := f.sellers.CreateProfile(ctx, u, ProfileInput{DisplayName: "again"}); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("second create: %v", err)
	}
}

func TestCreateProfile_RetryAfterPartialPromotion(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	buyer := f.user(t, "maria", domain.RoleBuyer)
	// profile written, role write lost
	existing := &domain.SellerProfile{UserID: buyer.ID, DisplayName: "First", Status: domain.SellerPending}
	if err := f.st.Sellers.Create(ctx, existing); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	p, u, err := f.sellers.CreateProfile(ctx, buyer, ProfileInput{DisplayName: "Second"})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if p.ID != existing.ID || p.DisplayName != "First" {
		t.Fatalf("profile = %+v, want existing", p)
	}
	if u.Role != domain.RoleSeller {
		t.Fatalf("role = %s", u.Role)
	}
}

func TestCreateProfile_AdminRejected(t *testing.T) {
	f := setup(t)
	admin := f.user(t, "ana", domain.RoleAdmin)
	if _, _, err := f.sellers.CreateProfile(context.Background(), admin, ProfileInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	seller, _ := f.seller(t, "carlos")
	buyer := f.user(t, "maria", domain.RoleBuyer)

	name := "TechStore Chile"
	got, err := f.sellers.UpdateProfile(ctx, seller, domain.SellerProfilePatch{DisplayName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DisplayName != name || got.Status != domain.SellerVerified {
		t.Fatalf("profile = %+v", got)
	}
	empty := " "
	if _, err := f.sellers.UpdateProfile(ctx, seller, domain.SellerProfilePatch{DisplayName: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: %v", err)
	}
	if _, err := f.sellers.UpdateProfile(ctx, buyer, domain.SellerProfilePatch{DisplayName: &name}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("buyer: %v", err)
	}
}

func TestDecide(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	admin := f.user(t, "ana", domain.RoleAdmin)
	buyer := f.user(t, "maria", domain.RoleBuyer)
	p, u, err := f.sellers.CreateProfile(ctx, buyer, ProfileInput{DisplayName: "Maria"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.sellers.Pending(ctx, u); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("seller pending: %v", err)
	}
	pending, err := f.sellers.Pending(ctx, admin)
	if err != nil || len(pending) != 1 {
		t.Fatalf("pending = %v %v", pending, err)
	}

	got, err := f.sellers.Decide(ctx, admin, p.ID, domain.SellerVerified)
	if err != nil || got.Status != domain.SellerVerified {
		t.Fatalf("approve: %v %v", got, err)
	}
	if _, err := f.sellers.Decide(ctx, admin, p.ID, domain.SellerRejected); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("reject verified: %v", err)
	}
	if _, err := f.sellers.Decide(ctx, admin, "missing", domain.SellerRejected); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing: %v", err)
	}
}
