package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dialogics/diagnostics-backend/internal/services"
)

type ResourceHandler struct {
	resourceService services.ResourceService
}

func NewResourceHandler(resourceService services.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

func (rh *ResourceHandler) List(c *gin.Context) {
	resources, err := rh.resourceService.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"resources": resources})
}
