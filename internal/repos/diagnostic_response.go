package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

// ErrDuplicateResponse reports a second write for the same
// (diagnostic_id, question_key) pair. Responses are insert-once.
var ErrDuplicateResponse = errors.New("response already recorded for question")

type DiagnosticResponseRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, responses []*types.DiagnosticResponse) ([]*types.DiagnosticResponse, error)
	ListByDiagnostic(ctx context.Context, tx *gorm.DB, diagnosticID uuid.UUID) ([]*types.DiagnosticResponse, error)
}

type diagnosticResponseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiagnosticResponseRepo(db *gorm.DB, baseLog *logger.Logger) DiagnosticResponseRepo {
	return &diagnosticResponseRepo{db: db, log: baseLog.With("repo", "DiagnosticResponseRepo")}
}

func (rr *diagnosticResponseRepo) CreateBatch(ctx context.Context, tx *gorm.DB, responses []*types.DiagnosticResponse) ([]*types.DiagnosticResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(responses) == 0 {
		return []*types.DiagnosticResponse{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&responses).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateResponse
		}
		return nil, err
	}
	return responses, nil
}

func (rr *diagnosticResponseRepo) ListByDiagnostic(ctx context.Context, tx *gorm.DB, diagnosticID uuid.UUID) ([]*types.DiagnosticResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.DiagnosticResponse
	if err := transaction.WithContext(ctx).
		Where("diagnostic_id = ?", diagnosticID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
