package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	AuthProvider string    `gorm:"type:varchar(50);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	IsActive     bool      `gorm:"not null"`
	LastLogin    *time.Time
	CreatedAt    time.Time
}
