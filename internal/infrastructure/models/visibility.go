package models

import (
	"time"

	"github.com/google/uuid"
)

type VisibilityCheckRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckType   string    `gorm:"type:varchar(50);not null"`
	InputData   *string   `gorm:"type:text"`
	RequestedAt time.Time `gorm:"not null"`
}

func (VisibilityCheckRequest) TableName() string {
	return "visibility_check_request"
}

type VisibilityCheckResult struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RequestID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VisibilityScore float64   `gorm:"type:decimal(5,2)"`
	IssuesFound     string    `gorm:"type:text"`
	Recommendations string    `gorm:"type:text"`
	OutputSnapshot  *string   `gorm:"type:text"`
	CompletedAt     time.Time `gorm:"not null"`
}

func (VisibilityCheckResult) TableName() string {
	return "visibility_check_result"
}

type VisibilitySuggestion struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SuggestionType string    `gorm:"type:varchar(50);not null"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	SuggestedAt    time.Time `gorm:"not null"`
	ResolvedAt     *time.Time
}
