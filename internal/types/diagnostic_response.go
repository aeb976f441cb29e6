package types

import (
	"time"

	"github.com/google/uuid"
)

// DiagnosticResponse is one answered question, created exactly once per
// question per diagnostic and never updated. AnswerValue carries the ordinal
// 1-5 value used by scoring; free-text answers keep AnswerValue nil and are
// excluded from scoring.
type DiagnosticResponse struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DiagnosticID uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_response_diag_key" json:"diagnostic_id"`
	Diagnostic   *Diagnostic `gorm:"constraint:OnDelete:CASCADE;foreignKey:DiagnosticID;references:ID" json:"diagnostic,omitempty"`
	Category     string      `gorm:"not null;column:category;index" json:"category"`
	QuestionKey  string      `gorm:"not null;column:question_key;uniqueIndex:idx_response_diag_key" json:"question_key"`
	QuestionText string      `gorm:"not null;column:question_text" json:"question_text"`
	AnswerText   *string     `gorm:"column:answer_text" json:"answer_text,omitempty"`
	AnswerValue  *float64    `gorm:"column:answer_value" json:"answer_value,omitempty"`
	Weight       float64     `gorm:"not null;column:weight;default:1" json:"weight"`
	CreatedAt    time.Time   `gorm:"not null;default:now()" json:"created_at"`
}

func (DiagnosticResponse) TableName() string { return "diagnostic_response" }
