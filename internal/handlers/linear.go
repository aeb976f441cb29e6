package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/services"
)

type LinearHandler struct {
	flow services.LinearFlowService
}

func NewLinearHandler(flow services.LinearFlowService) *LinearHandler {
	return &LinearHandler{flow: flow}
}

type startSessionRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" binding:"required"`
}

func (lh *LinearHandler) Start(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	session, err := lh.flow.Start(c.Request.Context(), req.OrganizationID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "organization_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "start_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

func (lh *LinearHandler) Get(c *gin.Context) {
	session, err := lh.flow.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, gin.H{"session": session})
}

type answerRequest struct {
	QuestionKey string  `json:"question_key" binding:"required"`
	Value       float64 `json:"value" binding:"required"`
}

func (lh *LinearHandler) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	session, err := lh.flow.Answer(c.Request.Context(), c.Param("id"), req.QuestionKey, req.Value)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, gin.H{"session": session})
}

func (lh *LinearHandler) Next(c *gin.Context) {
	session, err := lh.flow.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, gin.H{"session": session})
}

func (lh *LinearHandler) Previous(c *gin.Context) {
	session, err := lh.flow.Previous(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, gin.H{"session": session})
}

func (lh *LinearHandler) Submit(c *gin.Context) {
	result, err := lh.flow.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, result)
}

func respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "session_not_found", err)
	case errors.Is(err, services.ErrUnknownQuestion):
		RespondError(c, http.StatusBadRequest, "unknown_question", err)
	case errors.Is(err, services.ErrInvalidAnswer):
		RespondError(c, http.StatusBadRequest, "invalid_answer", err)
	case errors.Is(err, services.ErrIncomplete):
		RespondError(c, http.StatusConflict, "incomplete", err)
	case errors.Is(err, services.ErrNotLastCategory):
		RespondError(c, http.StatusConflict, "not_last_category", err)
	case errors.Is(err, services.ErrSessionCompleted):
		RespondError(c, http.StatusConflict, "session_completed", err)
	default:
		RespondError(c, http.StatusInternalServerError, "flow_failed", err)
	}
}
