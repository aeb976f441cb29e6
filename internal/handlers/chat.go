package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/services"
)

type ChatHandler struct {
	flow services.ChatFlowService
}

func NewChatHandler(flow services.ChatFlowService) *ChatHandler {
	return &ChatHandler{flow: flow}
}

func (ch *ChatHandler) Start(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	reply, err := ch.flow.Start(c.Request.Context(), req.OrganizationID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "organization_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "start_failed", err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

func (ch *ChatHandler) Get(c *gin.Context) {
	reply, err := ch.flow.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, reply)
}

type chatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (ch *ChatHandler) Message(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	reply, err := ch.flow.HandleMessage(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	RespondOK(c, reply)
}
