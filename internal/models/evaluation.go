package models

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

type Evaluation struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProblemStatement    string           `gorm:"type:text;not null" json:"problem_statement"`
	DocumentID          uuid.UUID        `gorm:"type:uuid;not null" json:"document_id"`
	Status              EvaluationStatus `gorm:"not null;default:'queued'" json:"status"`
	ReportJSON          *string          `gorm:"type:text" json:"-"`
	PresentationSummary *string          `gorm:"type:text" json:"presentation_summary,omitempty"`
	ErrorMessage        *string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt           time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
