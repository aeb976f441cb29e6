package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/scoring"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

// ErrNoScoreableResponses means no recorded answer carried a 1-5 value, so
// there is nothing to score and the diagnostic cannot be completed.
var ErrNoScoreableResponses = errors.New("diagnostic has no scoreable responses")

// ProcessResult is the caller-facing outcome of a completed run.
type ProcessResult struct {
	Success       bool      `json:"success"`
	DiagnosticID  uuid.UUID `json:"diagnosticId"`
	OverallScore  float64   `json:"overallScore"`
	MaturityLevel string    `json:"maturityLevel"`
}

type DiagnosticService interface {
	Process(ctx context.Context, diagnosticID uuid.UUID) (*ProcessResult, error)
	Get(ctx context.Context, diagnosticID uuid.UUID) (*types.Diagnostic, []*types.DiagnosticResponse, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*types.Diagnostic, error)
}

type diagnosticService struct {
	log          *logger.Logger
	diagRepo     repos.DiagnosticRepo
	responseRepo repos.DiagnosticResponseRepo
	analysis     AnalysisService
	dispatcher   Dispatcher
	report       ReportService
	notification NotificationService
}

func NewDiagnosticService(
	log *logger.Logger,
	diagRepo repos.DiagnosticRepo,
	responseRepo repos.DiagnosticResponseRepo,
	analysis AnalysisService,
	dispatcher Dispatcher,
	report ReportService,
	notification NotificationService,
) DiagnosticService {
	return &diagnosticService{
		log:          log.With("service", "DiagnosticService"),
		diagRepo:     diagRepo,
		responseRepo: responseRepo,
		analysis:     analysis,
		dispatcher:   dispatcher,
		report:       report,
		notification: notification,
	}
}

// Process runs the whole pipeline for one submitted diagnostic: score the
// stored responses, obtain the qualitative analysis, persist everything in
// one completion write, then hand report and notifications to the
// dispatcher. Only the steps up to and including the persist can fail;
// when they do the diagnostic stays in_progress and the call is safe to
// repeat.
func (ds *diagnosticService) Process(ctx context.Context, diagnosticID uuid.UUID) (*ProcessResult, error) {
	log := ds.log.With("diagnostic_id", diagnosticID)
	log.Info("Processing diagnostic")

	responses, err := ds.responseRepo.ListByDiagnostic(ctx, nil, diagnosticID)
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}

	scoringInput := make([]scoring.Response, 0, len(responses))
	for _, r := range responses {
		scoringInput = append(scoringInput, scoring.Response{
			Category: r.Category,
			Value:    r.AnswerValue,
			Weight:   r.Weight,
		})
	}

	result := scoring.Score(scoringInput)
	if !result.Scored {
		return nil, ErrNoScoreableResponses
	}

	analysis := ds.analysis.Analyze(ctx, AnalysisInput{
		CategoryScores: result.CategoryScores,
		OverallScore:   result.OverallScore,
		MaturityLevel:  result.MaturityLevel,
		Responses:      responses,
	})

	swotJSON, err := json.Marshal(analysis.Swot)
	if err != nil {
		return nil, fmt.Errorf("marshal swot: %w", err)
	}
	planJSON, err := json.Marshal(analysis.ActionPlan)
	if err != nil {
		return nil, fmt.Errorf("marshal action plan: %w", err)
	}

	categoryScores := make(map[string]*float64, len(result.CategoryScores))
	for cat, score := range result.CategoryScores {
		s := score
		categoryScores[cat] = &s
	}

	update := repos.CompletionUpdate{
		CategoryScores: categoryScores,
		OverallScore:   result.OverallScore,
		MaturityLevel:  result.MaturityLevel,
		SwotAnalysis:   datatypes.JSON(swotJSON),
		ActionPlan:     datatypes.JSON(planJSON),
		AISummary:      analysis.Summary,
	}
	if err := ds.diagRepo.Complete(ctx, nil, diagnosticID, update); err != nil {
		return nil, fmt.Errorf("persist completion: %w", err)
	}

	log.Info("Diagnostic completed",
		"overall_score", result.OverallScore,
		"maturity_level", result.MaturityLevel,
	)

	ds.dispatcher.Dispatch("generate-report", func(taskCtx context.Context) error {
		return ds.report.Generate(taskCtx, diagnosticID)
	})
	ds.dispatcher.Dispatch("send-notifications", func(taskCtx context.Context) error {
		return ds.notification.Send(taskCtx, diagnosticID)
	})

	return &ProcessResult{
		Success:       true,
		DiagnosticID:  diagnosticID,
		OverallScore:  result.OverallScore,
		MaturityLevel: result.MaturityLevel,
	}, nil
}

func (ds *diagnosticService) Get(ctx context.Context, diagnosticID uuid.UUID) (*types.Diagnostic, []*types.DiagnosticResponse, error) {
	diag, err := ds.diagRepo.GetWithOrganization(ctx, nil, diagnosticID)
	if err != nil {
		return nil, nil, err
	}
	responses, err := ds.responseRepo.ListByDiagnostic(ctx, nil, diagnosticID)
	if err != nil {
		return nil, nil, err
	}
	return diag, responses, nil
}

func (ds *diagnosticService) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*types.Diagnostic, error) {
	return ds.diagRepo.ListByOrganization(ctx, nil, orgID)
}
