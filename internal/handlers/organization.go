package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/services"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

type OrganizationHandler struct {
	orgService  services.OrganizationService
	diagService services.DiagnosticService
}

func NewOrganizationHandler(orgService services.OrganizationService, diagService services.DiagnosticService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService, diagService: diagService}
}

type createOrganizationRequest struct {
	Name             string `json:"name" binding:"required"`
	OrganizationType string `json:"organization_type" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Phone            string `json:"phone"`
	Whatsapp         string `json:"whatsapp"`
	CNPJ             string `json:"cnpj"`
	Description      string `json:"description"`
	Website          string `json:"website"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	ZipCode          string `json:"zip_code"`
	FoundationYear   *int   `json:"foundation_year"`
	EmployeesCount   *int   `json:"employees_count"`
}

func (oh *OrganizationHandler) Create(c *gin.Context) {
	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	org, err := oh.orgService.Create(c.Request.Context(), &types.Organization{
		Name:             req.Name,
		OrganizationType: req.OrganizationType,
		Email:            req.Email,
		Phone:            req.Phone,
		Whatsapp:         req.Whatsapp,
		CNPJ:             req.CNPJ,
		Description:      req.Description,
		Website:          req.Website,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		FoundationYear:   req.FoundationYear,
		EmployeesCount:   req.EmployeesCount,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrganization):
			RespondError(c, http.StatusBadRequest, "invalid_organization", err)
		case errors.Is(err, services.ErrEmailTaken):
			RespondError(c, http.StatusConflict, "email_taken", err)
		default:
			RespondError(c, http.StatusInternalServerError, "create_failed", err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

func (oh *OrganizationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	org, err := oh.orgService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	RespondOK(c, gin.H{"organization": org})
}

func (oh *OrganizationHandler) ListDiagnostics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	diagnostics, err := oh.diagService.ListByOrganization(c.Request.Context(), id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"diagnostics": diagnostics})
}
