package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DiagnosticStatusInProgress = "in_progress"
	DiagnosticStatusCompleted  = "completed"
	DiagnosticStatusCancelled  = "cancelled"
)

const (
	MaturityBronze  = "bronze"
	MaturitySilver  = "silver"
	MaturityGold    = "gold"
	MaturityDiamond = "diamond"
)

// Diagnostic is the aggregate root of one assessment run. It is created
// in_progress at submission time and mutated exactly once, by the completion
// update; score columns and maturity_level stay NULL until then.
type Diagnostic struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrganizationID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	Organization       *Organization  `gorm:"constraint:OnDelete:CASCADE;foreignKey:OrganizationID;references:ID" json:"organization,omitempty"`
	Title              string         `gorm:"not null;column:title" json:"title"`
	Status             string         `gorm:"not null;column:status;default:in_progress" json:"status"`
	GovernanceScore    *float64       `gorm:"column:governance_score" json:"governance_score,omitempty"`
	FinanceScore       *float64       `gorm:"column:finance_score" json:"finance_score,omitempty"`
	CommunicationScore *float64       `gorm:"column:communication_score" json:"communication_score,omitempty"`
	ImpactScore        *float64       `gorm:"column:impact_score" json:"impact_score,omitempty"`
	TransparencyScore  *float64       `gorm:"column:transparency_score" json:"transparency_score,omitempty"`
	FundraisingScore   *float64       `gorm:"column:fundraising_score" json:"fundraising_score,omitempty"`
	OverallScore       *float64       `gorm:"column:overall_score" json:"overall_score,omitempty"`
	MaturityLevel      *string        `gorm:"column:maturity_level" json:"maturity_level,omitempty"`
	SwotAnalysis       datatypes.JSON `gorm:"column:swot_analysis;type:jsonb" json:"swot_analysis,omitempty"`
	ActionPlan         datatypes.JSON `gorm:"column:action_plan;type:jsonb" json:"action_plan,omitempty"`
	AISummary          string         `gorm:"column:ai_summary" json:"ai_summary,omitempty"`
	ReportURL          *string        `gorm:"column:report_url" json:"report_url,omitempty"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	CompletedAt        *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (Diagnostic) TableName() string { return "diagnostic" }
