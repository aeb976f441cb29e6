package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

var ErrNotFound = errors.New("record not found")

type OrganizationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, org *types.Organization) (*types.Organization, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Organization, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Organization, error)
	Update(ctx context.Context, tx *gorm.DB, org *types.Organization) (*types.Organization, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Organization, error)
}

type organizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	return &organizationRepo{db: db, log: baseLog.With("repo", "OrganizationRepo")}
}

func (or *organizationRepo) Create(ctx context.Context, tx *gorm.DB, org *types.Organization) (*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if err := transaction.WithContext(ctx).Create(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

func (or *organizationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var result types.Organization
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

func (or *organizationRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var result types.Organization
	if err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (or *organizationRepo) Update(ctx context.Context, tx *gorm.DB, org *types.Organization) (*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if err := transaction.WithContext(ctx).Save(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

func (or *organizationRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var results []*types.Organization
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
