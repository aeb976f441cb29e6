package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/dialogics/diagnostics-backend/internal/handlers"
)

type RouterConfig struct {
	ServiceName         string
	AllowedOrigins      []string
	OrganizationHandler *handlers.OrganizationHandler
	DiagnosticHandler   *handlers.DiagnosticHandler
	LinearHandler       *handlers.LinearHandler
	ChatHandler         *handlers.ChatHandler
	ResourceHandler     *handlers.ResourceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "diagnostics-backend"
	}
	router.Use(otelgin.Middleware(serviceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Organizations
		api.POST("/organizations", cfg.OrganizationHandler.Create)
		api.GET("/organizations/:id", cfg.OrganizationHandler.Get)
		api.GET("/organizations/:id/diagnostics", cfg.OrganizationHandler.ListDiagnostics)

		// Diagnostics
		api.GET("/diagnostics/:id", cfg.DiagnosticHandler.Get)
		api.POST("/diagnostics/:id/process", cfg.DiagnosticHandler.Process)

		// Linear intake
		api.POST("/linear/sessions", cfg.LinearHandler.Start)
		api.GET("/linear/sessions/:id", cfg.LinearHandler.Get)
		api.POST("/linear/sessions/:id/answers", cfg.LinearHandler.Answer)
		api.POST("/linear/sessions/:id/next", cfg.LinearHandler.Next)
		api.POST("/linear/sessions/:id/previous", cfg.LinearHandler.Previous)
		api.POST("/linear/sessions/:id/submit", cfg.LinearHandler.Submit)

		// Chat intake
		api.POST("/chat/sessions", cfg.ChatHandler.Start)
		api.GET("/chat/sessions/:id", cfg.ChatHandler.Get)
		api.POST("/chat/sessions/:id/messages", cfg.ChatHandler.Message)

		// Resources
		api.GET("/resources", cfg.ResourceHandler.List)
	}

	return router
}
