package services

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// UserSvcFacade defines the operations the login flow needs.
type UserSvcFacade interface {
	// Authenticate verifies a username/password pair and returns the
	// user on success, apperrors.ErrUnauthorized otherwise.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
