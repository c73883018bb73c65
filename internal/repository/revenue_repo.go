package repository

import (
	"context"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// UpsertByMonth inserts the revenue row if the month is absent, no-op
// otherwise.
func (r *RevenueRepository) UpsertByMonth(ctx context.Context, rev *models.Revenue) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoNothing: true,
	}).Create(rev).Error
}

func (r *RevenueRepository) FindAll(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := r.db.WithContext(ctx).Find(&revenue).Error
	return revenue, err
}

func (r *RevenueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Revenue{}).Count(&count).Error
	return count, err
}
