package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dialogics/diagnostics-backend/internal/clients/gemini"
	"github.com/dialogics/diagnostics-backend/internal/clients/sendgrid"
	"github.com/dialogics/diagnostics-backend/internal/clients/twilio"
	"github.com/dialogics/diagnostics-backend/internal/db"
	"github.com/dialogics/diagnostics-backend/internal/handlers"
	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/observability"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/server"
	"github.com/dialogics/diagnostics-backend/internal/services"
	"github.com/dialogics/diagnostics-backend/internal/sessions"
	"github.com/dialogics/diagnostics-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "diagnostics-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8080", log)
	dashboardURL := utils.GetEnv("DASHBOARD_URL", "https://dialogics.com.br/dashboard", log)
	dispatchTimeout := utils.GetEnvAsInt("DISPATCH_TIMEOUT_SECONDS", 120, log)
	allowedOrigins := strings.Split(utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log), ",")
	if len(allowedOrigins) == 1 && strings.TrimSpace(allowedOrigins[0]) == "" {
		allowedOrigins = nil
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	orgRepo := repos.NewOrganizationRepo(thePG, log)
	diagRepo := repos.NewDiagnosticRepo(thePG, log)
	responseRepo := repos.NewDiagnosticResponseRepo(thePG, log)
	resourceRepo := repos.NewResourceRepo(thePG, log)

	// Session store
	var store sessions.Store
	if os.Getenv("REDIS_ADDR") != "" {
		store, err = sessions.NewRedisStore(log)
		if err != nil {
			log.Fatal("Redis init failed", "error", err)
		}
	} else {
		log.Warn("REDIS_ADDR not set, using in-memory session store")
		store = sessions.NewMemoryStore()
	}

	// Clients
	log.Info("Setting up Clients from main...")
	geminiClient, err := gemini.NewFromEnv(log)
	if err != nil {
		log.Warn("Gemini client unavailable, analysis will use the fallback", "error", err)
		geminiClient = nil
	}
	sendgridClient, err := sendgrid.NewFromEnv(log)
	if err != nil {
		log.Warn("SendGrid client unavailable, email notifications disabled", "error", err)
		sendgridClient = nil
	}
	twilioClient, err := twilio.NewFromEnv(log)
	if err != nil {
		log.Warn("Twilio client unavailable, WhatsApp notifications disabled", "error", err)
		twilioClient = nil
	}
	bucketService, err := services.NewBucketService(log)
	if err != nil {
		log.Warn("Bucket unavailable, report publishing disabled", "error", err)
		bucketService = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	dispatcher := services.NewDispatcher(log, time.Duration(dispatchTimeout)*time.Second)
	analysisService := services.NewAnalysisService(log, geminiClient)
	reportService := services.NewReportService(log, diagRepo, bucketService)
	notificationService := services.NewNotificationService(log, diagRepo, sendgridClient, twilioClient, dashboardURL)
	diagnosticService := services.NewDiagnosticService(log, diagRepo, responseRepo, analysisService, dispatcher, reportService, notificationService)
	organizationService := services.NewOrganizationService(log, orgRepo)
	resourceService := services.NewResourceService(log, resourceRepo)
	linearFlow := services.NewLinearFlowService(log, thePG, store, orgRepo, diagRepo, responseRepo, diagnosticService)
	chatFlow := services.NewChatFlowService(log, thePG, store, orgRepo, diagRepo, responseRepo, diagnosticService)

	// Handlers
	log.Info("Setting up Handlers from main...")
	organizationHandler := handlers.NewOrganizationHandler(organizationService, diagnosticService)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService)
	linearHandler := handlers.NewLinearHandler(linearFlow)
	chatHandler := handlers.NewChatHandler(chatFlow)
	resourceHandler := handlers.NewResourceHandler(resourceService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ServiceName:         "diagnostics-backend",
		AllowedOrigins:      allowedOrigins,
		OrganizationHandler: organizationHandler,
		DiagnosticHandler:   diagnosticHandler,
		LinearHandler:       linearHandler,
		ChatHandler:         chatHandler,
		ResourceHandler:     resourceHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
