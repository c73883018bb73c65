package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedRun records one invocation of the seeding pipeline, success or failure.
type SeedRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      string    `gorm:"index"`
	Counts      datatypes.JSON
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}
