package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// Create inserts an invoice linked to an existing customer. The link is a
// connect-by-id operation: it fails with ErrCustomerNotFound if the target
// customer is absent.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", invoice.CustomerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCustomerNotFound
	}
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update rewrites customer link, amount and status for an existing invoice.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCustomerNotFound
	}

	res := r.db.WithContext(ctx).Model(&models.Invoice{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an invoice. Deleting an absent id is reported as
// ErrNotFound, not silent success.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindByAmount returns all invoices with the exact amount in cents, with
// the customer preloaded.
func (r *InvoiceRepository) FindByAmount(ctx context.Context, cents int64) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).Where("amount = ?", cents).
		Preload("Customer").Find(&invoices).Error
	return invoices, err
}

// FindLatest returns the n most recent invoices with their customers.
func (r *InvoiceRepository) FindLatest(ctx context.Context, n int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).Order("date DESC").Limit(n).
		Preload("Customer").Find(&invoices).Error
	return invoices, err
}

// FindFiltered searches invoices by customer name/email, amount, date or
// status, case-insensitively, newest first.
func (r *InvoiceRepository) FindFiltered(ctx context.Context, query string, limit, offset int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.filtered(ctx, query).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Preload("Customer").
		Find(&invoices).Error
	return invoices, err
}

// CountFiltered counts invoices matching the same filter as FindFiltered.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.filtered(ctx, query).Count(&count).Error
	return count, err
}

func (r *InvoiceRepository) filtered(ctx context.Context, query string) *gorm.DB {
	like := "%" + strings.ToLower(query) + "%"

	customers := r.db.Model(&models.Customer{}).Select("id").
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)

	cond := r.db.Where("customer_id IN (?)", customers).
		Or("LOWER(status) LIKE ?", like)
	if cents, err := strconv.ParseInt(strings.TrimSpace(query), 10, 64); err == nil {
		cond = cond.Or("amount = ?", cents)
	}
	if date, err := time.Parse("2006-01-02", strings.TrimSpace(query)); err == nil {
		cond = cond.Or("date = ?", date)
	}

	return r.db.WithContext(ctx).Model(&models.Invoice{}).Where(cond)
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

// SumAmountByStatus returns the total amount in cents for one status.
func (r *InvoiceRepository) SumAmountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// ExistsDuplicate reports whether an invoice with the same customer, amount
// and date already exists. The seeding pipeline uses this for its
// skip-duplicate insert semantics.
func (r *InvoiceRepository) ExistsDuplicate(ctx context.Context, customerID uuid.UUID, amount int64, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("customer_id = ? AND amount = ? AND date = ?", customerID, amount, date).
		Count(&count).Error
	return count > 0, err
}
