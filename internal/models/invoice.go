package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Customer   Customer
	Amount     int64  `gorm:"index"` // integer cents
	Status     string `gorm:"index"`
	Date       time.Time
	CreatedAt  time.Time
}
