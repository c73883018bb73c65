package repository

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerUpsertByEmailIsIdempotent(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewCustomerRepository(gdb)

	first := models.Customer{ID: uuid.New(), Name: "Evil Rabbit", Email: "evil@rabbit.com"}
	require.NoError(t, repo.UpsertByEmail(ctx, &first))

	// Same email again: no new row, original fields untouched.
	second := models.Customer{ID: uuid.New(), Name: "Renamed Rabbit", Email: "evil@rabbit.com"}
	require.NoError(t, repo.UpsertByEmail(ctx, &second))

	customers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, first.ID, customers[0].ID)
	assert.Equal(t, "Evil Rabbit", customers[0].Name)
}

func TestCustomerFindFilteredPreloadsInvoices(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewCustomerRepository(gdb)
	customer := storeCustomer(t, gdb, "Delba de Oliveira", "delba@oliveira.com")
	storeInvoice(t, gdb, customer.ID, 20348, models.InvoiceStatusPending, time.Now().UTC())

	rows, err := repo.FindFiltered(ctx, "DELBA")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Invoices, 1)
	assert.Equal(t, int64(20348), rows[0].Invoices[0].Amount)

	none, err := repo.FindFiltered(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCustomerExists(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewCustomerRepository(gdb)
	customer := storeCustomer(t, gdb, "Amy Burns", "amy@burns.com")

	ok, err := repo.Exists(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevenueUpsertByMonthIsIdempotent(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewRevenueRepository(gdb)

	require.NoError(t, repo.UpsertByMonth(ctx, &models.Revenue{Month: "Jan", Revenue: 2000}))
	require.NoError(t, repo.UpsertByMonth(ctx, &models.Revenue{Month: "Jan", Revenue: 9999}))

	rows, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2000), rows[0].Revenue)
}

func TestUserUpsertByEmailIsIdempotent(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)

	require.NoError(t, repo.UpsertByEmail(ctx, &models.User{ID: uuid.New(), Name: "User", Email: "user@nextmail.com", Password: "hash-a"}))
	require.NoError(t, repo.UpsertByEmail(ctx, &models.User{ID: uuid.New(), Name: "User", Email: "user@nextmail.com", Password: "hash-b"}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	user, err := repo.GetByEmail(ctx, "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-a", user.Password)
}

func TestUserGetByEmailMissing(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)

	_, err := repo.GetByEmail(ctx, "absent@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
