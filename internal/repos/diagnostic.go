package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

// CompletionUpdate carries everything the pipeline persists when a diagnostic
// finishes. Score pointers left nil stay NULL in the row.
type CompletionUpdate struct {
	CategoryScores map[string]*float64
	OverallScore   float64
	MaturityLevel  string
	SwotAnalysis   datatypes.JSON
	ActionPlan     datatypes.JSON
	AISummary      string
}

type DiagnosticRepo interface {
	Create(ctx context.Context, tx *gorm.DB, diag *types.Diagnostic) (*types.Diagnostic, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Diagnostic, error)
	GetWithOrganization(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Diagnostic, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uuid.UUID) ([]*types.Diagnostic, error)
	Complete(ctx context.Context, tx *gorm.DB, id uuid.UUID, update CompletionUpdate) error
	SetReportURL(ctx context.Context, tx *gorm.DB, id uuid.UUID, reportURL string) error
}

type diagnosticRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiagnosticRepo(db *gorm.DB, baseLog *logger.Logger) DiagnosticRepo {
	return &diagnosticRepo{db: db, log: baseLog.With("repo", "DiagnosticRepo")}
}

func (dr *diagnosticRepo) Create(ctx context.Context, tx *gorm.DB, diag *types.Diagnostic) (*types.Diagnostic, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if err := transaction.WithContext(ctx).Create(diag).Error; err != nil {
		return nil, err
	}
	return diag, nil
}

func (dr *diagnosticRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Diagnostic, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result types.Diagnostic
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (dr *diagnosticRepo) GetWithOrganization(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Diagnostic, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result types.Diagnostic
	if err := transaction.WithContext(ctx).
		Preload("Organization").
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (dr *diagnosticRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uuid.UUID) ([]*types.Diagnostic, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Diagnostic
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Complete applies the single completion write. All result columns, the
// status flip and completed_at land in one UPDATE so a reader never observes
// a completed diagnostic with missing scores.
func (dr *diagnosticRepo) Complete(ctx context.Context, tx *gorm.DB, id uuid.UUID, update CompletionUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	now := time.Now().UTC()
	values := map[string]interface{}{
		"status":         types.DiagnosticStatusCompleted,
		"overall_score":  update.OverallScore,
		"maturity_level": update.MaturityLevel,
		"swot_analysis":  update.SwotAnalysis,
		"action_plan":    update.ActionPlan,
		"ai_summary":     update.AISummary,
		"completed_at":   now,
		"updated_at":     now,
	}
	for category, score := range update.CategoryScores {
		column, ok := categoryColumns[category]
		if !ok {
			continue
		}
		if score != nil {
			values[column] = *score
		}
	}

	result := transaction.WithContext(ctx).
		Model(&types.Diagnostic{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complete diagnostic %s: %w", id, ErrNotFound)
	}
	return nil
}

func (dr *diagnosticRepo) SetReportURL(ctx context.Context, tx *gorm.DB, id uuid.UUID, reportURL string) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.Diagnostic{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"report_url": reportURL,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("set report url for diagnostic %s: %w", id, ErrNotFound)
	}
	return nil
}

var categoryColumns = map[string]string{
	"governance":    "governance_score",
	"finance":       "finance_score",
	"communication": "communication_score",
	"impact":        "impact_score",
	"transparency":  "transparency_score",
	"fundraising":   "fundraising_score",
}
