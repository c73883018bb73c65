package models

import "time"

type Revenue struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Month     string `gorm:"uniqueIndex"`
	Revenue   int64
	CreatedAt time.Time
}
