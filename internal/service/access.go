package service

import (
	"context"
	"errors"
	"fmt"

	"aura/internal/domain"
	"aura/internal/repository"
)

var ErrAccessDenied = errors.New("access denied")

func requireRole(u *domain.User, roles ...domain.Role) error {
	if u == nil {
		return ErrAccessDenied
	}
	for _, r := range roles {
		if u.Role == r {
			return nil
		}
	}
	return ErrAccessDenied
}

// ownProfile resolves the seller profile of a seller-role user
func ownProfile(ctx context.Context, sellers repository.SellerRepository, u *domain.User) (*domain.SellerProfile, error) {
	if err := requireRole(u, domain.RoleSeller); err != nil {
		return nil, err
	}
	p, err := sellers.GetByUserID(ctx, u.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get seller profile: %w", err)
	}
	return p, nil
}
