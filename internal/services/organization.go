package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

var (
	ErrInvalidOrganization = errors.New("invalid organization")
	ErrEmailTaken          = errors.New("email already registered")
)

var validOrgTypes = map[string]bool{
	types.OrgTypeONG:         true,
	types.OrgTypeAssociacao:  true,
	types.OrgTypeFundacao:    true,
	types.OrgTypeCooperativa: true,
	types.OrgTypeOutra:       true,
}

type OrganizationService interface {
	Create(ctx context.Context, org *types.Organization) (*types.Organization, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Organization, error)
	List(ctx context.Context, limit, offset int) ([]*types.Organization, error)
}

type organizationService struct {
	log     *logger.Logger
	orgRepo repos.OrganizationRepo
}

func NewOrganizationService(log *logger.Logger, orgRepo repos.OrganizationRepo) OrganizationService {
	return &organizationService{
		log:     log.With("service", "OrganizationService"),
		orgRepo: orgRepo,
	}
}

func (os *organizationService) Create(ctx context.Context, org *types.Organization) (*types.Organization, error) {
	org.Name = strings.TrimSpace(org.Name)
	org.Email = strings.ToLower(strings.TrimSpace(org.Email))
	org.OrganizationType = strings.TrimSpace(org.OrganizationType)

	if org.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidOrganization)
	}
	if org.Email == "" || !strings.Contains(org.Email, "@") {
		return nil, fmt.Errorf("%w: valid email required", ErrInvalidOrganization)
	}
	if !validOrgTypes[org.OrganizationType] {
		return nil, fmt.Errorf("%w: unknown organization type %q", ErrInvalidOrganization, org.OrganizationType)
	}

	if _, err := os.orgRepo.GetByEmail(ctx, nil, org.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repos.ErrNotFound) {
		return nil, err
	}

	created, err := os.orgRepo.Create(ctx, nil, org)
	if err != nil {
		return nil, err
	}
	os.log.Info("Organization created", "organization_id", created.ID)
	return created, nil
}

func (os *organizationService) Get(ctx context.Context, id uuid.UUID) (*types.Organization, error) {
	return os.orgRepo.GetByID(ctx, nil, id)
}

func (os *organizationService) List(ctx context.Context, limit, offset int) ([]*types.Organization, error) {
	return os.orgRepo.List(ctx, nil, limit, offset)
}
