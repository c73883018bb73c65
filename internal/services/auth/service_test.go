package auth

import (
	"context"
	"testing"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), 10)
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&models.User{
		ID:       uuid.New(),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: string(hashed),
	}).Error)

	return New(repository.NewUserRepository(gdb), zap.NewNop())
}

func TestAuthenticate(t *testing.T) {
	svc := setupService(t)

	user, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "User", user.Name)
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Authenticate(context.Background(), "  User@NextMail.com ", "123456")
	assert.NoError(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Authenticate(context.Background(), "user@nextmail.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
