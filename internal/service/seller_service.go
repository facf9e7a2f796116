package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"aura/internal/domain"
	"aura/internal/repository"
)

// SellerService manages seller profiles and buyer to seller promotion
type SellerService struct {
	sellers repository.SellerRepository
	users   repository.UserRepository
	log     *slog.Logger
}

func NewSellerService(st repository.Stores, log *slog.Logger) *SellerService {
	if log == nil {
		log = slog.Default()
	}
	return &SellerService{sellers: st.Sellers, users: st.Users, log: log}
}

// ProfileInput fields supplied when opening a shop
type ProfileInput struct {
	DisplayName string
	Description string
	Location    string
}

func (s *SellerService) Profile(ctx context.Context, u *domain.User) (*domain.SellerProfile, error) {
	if u == nil {
		return nil, ErrAccessDenied
	}
	return s.sellers.GetByUserID(ctx, u.ID)
}

// CreateProfile opens a pending profile and promotes a buyer to seller. The two
// writes hit different stores; when a previous attempt stopped between them
// the retry only completes the role change and returns the existing profile.
func (s *SellerService) CreateProfile(ctx context.Context, u *domain.User, in ProfileInput) (*domain.SellerProfile, *domain.User, error) {
	if u == nil {
		return nil, nil, ErrAccessDenied
	}
	if u.Role != domain.RoleBuyer && u.Role != domain.RoleSeller {
		return nil, nil, fmt.Errorf("%w: role %q cannot open a seller profile", ErrInvalidInput, u.Role)
	}

	profile, err := s.sellers.GetByUserID(ctx, u.ID)
	switch {
	case err == nil:
		if u.Role == domain.RoleSeller {
			return nil, nil, fmt.Errorf("%w: seller profile", repository.ErrConflict)
		}
		s.log.Info("completing interrupted seller promotion", "user_id", u.ID, "seller_id", profile.ID)
	case errors.Is(err, repository.ErrNotFound):
		profile = &domain.SellerProfile{
			UserID:      u.ID,
			DisplayName: strings.TrimSpace(in.DisplayName),
			Description: in.Description,
			Location:    in.Location,
			Status:      domain.SellerPending,
		}
		if err := s.sellers.Create(ctx, profile); err != nil {
			return nil, nil, fmt.Errorf("create seller profile: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("get seller profile: %w", err)
	}

	user := u
	if u.Role == domain.RoleBuyer {
		role := domain.RoleSeller
		user, err = s.users.Update(ctx, u.ID, domain.UserPatch{Role: &role})
		if err != nil {
			return nil, nil, fmt.Errorf("promote user: %w", err)
		}
		s.log.Info("user promoted to seller", "user_id", u.ID, "seller_id", profile.ID)
	}
	return profile, user, nil
}

// UpdateProfile owner edits of displayName, description and location
func (s *SellerService) UpdateProfile(ctx context.Context, u *domain.User, patch domain.SellerProfilePatch) (*domain.SellerProfile, error) {
	if _, err := ownProfile(ctx, s.sellers, u); err != nil {
		return nil, err
	}
	if patch.DisplayName != nil && strings.TrimSpace(*patch.DisplayName) == "" {
		return nil, fmt.Errorf("%w: displayName is empty", ErrInvalidInput)
	}
	return s.sellers.UpdateByUserID(ctx, u.ID, patch)
}

func (s *SellerService) Pending(ctx context.Context, admin *domain.User) ([]domain.SellerProfile, error) {
	if err := requireRole(admin, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.sellers.ListByStatus(ctx, domain.SellerPending)
}

// Decide approves or rejects a pending profile
func (s *SellerService) Decide(ctx context.Context, admin *domain.User, id string, status domain.SellerStatus) (*domain.SellerProfile, error) {
	if err := requireRole(admin, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if status != domain.SellerVerified && status != domain.SellerRejected {
		return nil, ErrInvalidInput
	}
	p, err := s.sellers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.SellerPending {
		return nil, fmt.Errorf("%w: seller is %s", ErrInvalidState, p.Status)
	}
	updated, err := s.sellers.SetStatus(ctx, p.ID, status)
	if err != nil {
		return nil, err
	}
	s.log.Info("seller reviewed", "seller_id", p.ID, "status", status, "by", admin.ID)
	return updated, nil
}
