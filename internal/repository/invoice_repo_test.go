package repository

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.SeedRun{},
	))
	return gdb
}

func storeCustomer(t *testing.T, gdb *gorm.DB, name, email string) models.Customer {
	t.Helper()
	customer := models.Customer{ID: uuid.New(), Name: name, Email: email, ImageURL: "/customers/" + name + ".png"}
	require.NoError(t, gdb.Create(&customer).Error)
	return customer
}

func storeInvoice(t *testing.T, gdb *gorm.DB, customerID uuid.UUID, amount int64, status string, date time.Time) models.Invoice {
	t.Helper()
	invoice := models.Invoice{ID: uuid.New(), CustomerID: customerID, Amount: amount, Status: status, Date: date}
	require.NoError(t, gdb.Create(&invoice).Error)
	return invoice
}

func TestInvoiceCreateRequiresExistingCustomer(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)

	err := repo.Create(ctx, &models.Invoice{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Amount:     500,
		Status:     models.InvoiceStatusPending,
		Date:       time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	var count int64
	require.NoError(t, gdb.Model(&models.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestInvoiceCreateAndGet(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	customer := storeCustomer(t, gdb, "Evil Rabbit", "evil@rabbit.com")

	invoice := models.Invoice{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		Amount:     1599,
		Status:     models.InvoiceStatusPending,
		Date:       time.Date(2023, 6, 27, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, &invoice))

	got, err := repo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1599), got.Amount)
	assert.Equal(t, customer.ID, got.CustomerID)
}

func TestInvoiceDeleteMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)

	err := repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceDelete(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	customer := storeCustomer(t, gdb, "Amy Burns", "amy@burns.com")
	invoice := storeInvoice(t, gdb, customer.ID, 3040, models.InvoiceStatusPaid, time.Now().UTC())

	require.NoError(t, repo.Delete(ctx, invoice.ID))

	_, err := repo.GetByID(ctx, invoice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceUpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	customer := storeCustomer(t, gdb, "Lee Robinson", "lee@robinson.com")

	err := repo.Update(ctx, uuid.New(), customer.ID, 1000, models.InvoiceStatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceUpdateRequiresExistingCustomer(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	customer := storeCustomer(t, gdb, "Lee Robinson", "lee@robinson.com")
	invoice := storeInvoice(t, gdb, customer.ID, 1000, models.InvoiceStatusPending, time.Now().UTC())

	err := repo.Update(ctx, invoice.ID, uuid.New(), 2000, models.InvoiceStatusPaid)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestInvoiceFindByAmountPreloadsCustomer(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	customer := storeCustomer(t, gdb, "Evil Rabbit", "evil@rabbit.com")
	storeInvoice(t, gdb, customer.ID, 666, models.InvoiceStatusPending, time.Now().UTC())
	storeInvoice(t, gdb, customer.ID, 1250, models.InvoiceStatusPaid, time.Now().UTC())

	invoices, err := repo.FindByAmount(ctx, 666)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "Evil Rabbit", invoices[0].Customer.Name)
}

func TestInvoiceFindFilteredByCustomerName(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	rabbit := storeCustomer(t, gdb, "Evil Rabbit", "evil@rabbit.com")
	amy := storeCustomer(t, gdb, "Amy Burns", "amy@burns.com")
	storeInvoice(t, gdb, rabbit.ID, 666, models.InvoiceStatusPending, time.Now().UTC())
	storeInvoice(t, gdb, amy.ID, 1250, models.InvoiceStatusPaid, time.Now().UTC())

	invoices, err := repo.FindFiltered(ctx, "rabbit", 6, 0)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, rabbit.ID, invoices[0].CustomerID)

	count, err := repo.CountFiltered(ctx, "rabbit")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInvoiceSumAmountByStatus(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := NewInvoiceRepository(gdb)
	customer := storeCustomer(t, gdb, "Balazs Orban", "balazs@orban.com")
	storeInvoice(t, gdb, customer.ID, 1000, models.InvoiceStatusPaid, time.Now().UTC())
	storeInvoice(t, gdb, customer.ID, 2500, models.InvoiceStatusPaid, time.Now().UTC())
	storeInvoice(t, gdb, customer.ID, 666, models.InvoiceStatusPending, time.Now().UTC())

	paid, err := repo.SumAmountByStatus(ctx, models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), paid)

	pending, err := repo.SumAmountByStatus(ctx, models.InvoiceStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(666), pending)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("c1"))
	assert.False(t, ValidID("5f8f8c44b54764421b7156c3")) // foreign store id format
}
