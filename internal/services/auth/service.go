package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials distinguishes a bad email/password pair from store
// failures. Callers map it to an auth rejection, everything else to a
// generic failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users *repository.UserRepository
	log   *zap.Logger
}

func New(users *repository.UserRepository, log *zap.Logger) *Service {
	return &Service{users: users, log: log}
}

// Authenticate verifies a credential pair against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error("fetch user", zap.Error(err))
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
