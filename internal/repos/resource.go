package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

type ResourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, resource *types.Resource) (*types.Resource, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error)
	ListByCategories(ctx context.Context, tx *gorm.DB, categories []string) ([]*types.Resource, error)
}

type resourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return &resourceRepo{db: db, log: baseLog.With("repo", "ResourceRepo")}
}

func (rr *resourceRepo) Create(ctx context.Context, tx *gorm.DB, resource *types.Resource) (*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).Create(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

func (rr *resourceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.Resource
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

func (rr *resourceRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.Resource
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *resourceRepo) ListByCategories(ctx context.Context, tx *gorm.DB, categories []string) ([]*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.Resource
	if len(categories) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("is_active = ? AND category IN ?", true, categories).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
