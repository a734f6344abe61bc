package services

import (
	"context"
	"fmt"

	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserService provides the login flow's user lookup and password check.
type UserService struct {
	BaseService
	userRepo portsrepo.UserReader
}

func NewUserService(userRepo portsrepo.UserReader) *UserService {
	return &UserService{userRepo: userRepo}
}

// Authenticate verifies a username/password pair. Unknown users and
// wrong passwords both map to apperrors.ErrUnauthorized so callers
// cannot distinguish the two.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		s.LogDebug(ctx, "user lookup failed during login", "username", username)
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return user, nil
}
