package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/services"
)

type DiagnosticHandler struct {
	diagService services.DiagnosticService
}

func NewDiagnosticHandler(diagService services.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{diagService: diagService}
}

func (dh *DiagnosticHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	diag, responses, err := dh.diagService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	RespondOK(c, gin.H{"diagnostic": diag, "responses": responses})
}

// Process is the submission entry point: it scores, analyzes and completes
// the diagnostic synchronously, then returns the headline result.
func (dh *DiagnosticHandler) Process(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	result, err := dh.diagService.Process(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repos.ErrNotFound):
			RespondError(c, http.StatusNotFound, "not_found", err)
		case errors.Is(err, services.ErrNoScoreableResponses):
			RespondError(c, http.StatusUnprocessableEntity, "no_scoreable_responses", err)
		default:
			RespondError(c, http.StatusInternalServerError, "process_failed", err)
		}
		return
	}
	RespondOK(c, result)
}
