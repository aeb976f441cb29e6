package services

import (
	"context"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

type ResourceService interface {
	ListActive(ctx context.Context, category string) ([]*types.Resource, error)
}

type resourceService struct {
	log          *logger.Logger
	resourceRepo repos.ResourceRepo
}

func NewResourceService(log *logger.Logger, resourceRepo repos.ResourceRepo) ResourceService {
	return &resourceService{
		log:          log.With("service", "ResourceService"),
		resourceRepo: resourceRepo,
	}
}

func (rs *resourceService) ListActive(ctx context.Context, category string) ([]*types.Resource, error) {
	if category != "" {
		return rs.resourceRepo.ListByCategories(ctx, nil, []string{category})
	}
	return rs.resourceRepo.ListActive(ctx, nil)
}
