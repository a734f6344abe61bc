package repositories

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// UserReader defines the read operations the login flow needs.
type UserReader interface {
	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
