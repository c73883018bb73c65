package repository

import (
	"context"
	"strings"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// UpsertByEmail inserts the customer if the email is absent, no-op otherwise.
func (r *CustomerRepository) UpsertByEmail(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(customer).Error
}

// FindAll returns every customer, ordered by name.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error
	return customers, err
}

// FindFiltered returns customers whose name or email matches the query,
// case-insensitively, with their invoices preloaded.
func (r *CustomerRepository) FindFiltered(ctx context.Context, query string) ([]models.Customer, error) {
	like := "%" + strings.ToLower(query) + "%"
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like).
		Preload("Invoices").
		Order("name ASC").
		Find(&customers).Error
	return customers, err
}

// Exists reports whether a customer with the given id is present.
func (r *CustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}
