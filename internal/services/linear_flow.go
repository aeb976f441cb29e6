package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/catalog"
	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/sessions"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownQuestion  = errors.New("unknown question key")
	ErrInvalidAnswer    = errors.New("answer out of range")
	ErrIncomplete       = errors.New("current category has unanswered questions")
	ErrNotLastCategory  = errors.New("submission only allowed from the last category")
	ErrSessionCompleted = errors.New("session already completed")
)

// linearState is the JSON blob held in the session store for one linear
// intake run. Answers are keyed by question key so backward navigation never
// loses anything.
type linearState struct {
	OrganizationID uuid.UUID          `json:"organization_id"`
	CategoryIndex  int                `json:"category_index"`
	Answers        map[string]float64 `json:"answers"`
	CreatedAt      time.Time          `json:"created_at"`
}

// LinearSessionView is the client-facing snapshot of a linear session.
type LinearSessionView struct {
	SessionID       string             `json:"session_id"`
	OrganizationID  uuid.UUID          `json:"organization_id"`
	CategoryIndex   int                `json:"category_index"`
	CategoryID      string             `json:"category_id"`
	CategoryName    string             `json:"category_name"`
	TotalCategories int                `json:"total_categories"`
	Answers         map[string]float64 `json:"answers"`
	AnsweredCount   int                `json:"answered_count"`
	TotalQuestions  int                `json:"total_questions"`
}

// LinearFlowService drives the form-style intake: answer freely within a
// category, move forward only when the category is complete, move backward
// without losing answers, submit only when everything is answered.
type LinearFlowService interface {
	Start(ctx context.Context, orgID uuid.UUID) (*LinearSessionView, error)
	Get(ctx context.Context, sessionID string) (*LinearSessionView, error)
	Answer(ctx context.Context, sessionID, questionKey string, value float64) (*LinearSessionView, error)
	Next(ctx context.Context, sessionID string) (*LinearSessionView, error)
	Previous(ctx context.Context, sessionID string) (*LinearSessionView, error)
	Submit(ctx context.Context, sessionID string) (*ProcessResult, error)
}

type linearFlowService struct {
	log          *logger.Logger
	db           *gorm.DB
	store        sessions.Store
	orgRepo      repos.OrganizationRepo
	diagRepo     repos.DiagnosticRepo
	responseRepo repos.DiagnosticResponseRepo
	pipeline     DiagnosticService
}

func NewLinearFlowService(
	log *logger.Logger,
	db *gorm.DB,
	store sessions.Store,
	orgRepo repos.OrganizationRepo,
	diagRepo repos.DiagnosticRepo,
	responseRepo repos.DiagnosticResponseRepo,
	pipeline DiagnosticService,
) LinearFlowService {
	return &linearFlowService{
		log:          log.With("service", "LinearFlowService"),
		db:           db,
		store:        store,
		orgRepo:      orgRepo,
		diagRepo:     diagRepo,
		responseRepo: responseRepo,
		pipeline:     pipeline,
	}
}

func (ls *linearFlowService) Start(ctx context.Context, orgID uuid.UUID) (*LinearSessionView, error) {
	if _, err := ls.orgRepo.GetByID(ctx, nil, orgID); err != nil {
		return nil, fmt.Errorf("load organization: %w", err)
	}

	sessionID := uuid.NewString()
	state := linearState{
		OrganizationID: orgID,
		CategoryIndex:  0,
		Answers:        map[string]float64{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := ls.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	ls.log.Info("Linear session started", "session_id", sessionID, "organization_id", orgID)
	return ls.view(sessionID, state), nil
}

func (ls *linearFlowService) Get(ctx context.Context, sessionID string) (*LinearSessionView, error) {
	state, err := ls.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ls.view(sessionID, *state), nil
}

func (ls *linearFlowService) Answer(ctx context.Context, sessionID, questionKey string, value float64) (*LinearSessionView, error) {
	state, err := ls.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, _, ok := catalog.LinearQuestion(questionKey); !ok {
		return nil, ErrUnknownQuestion
	}
	if value < 1 || value > 5 {
		return nil, ErrInvalidAnswer
	}

	state.Answers[questionKey] = value
	if err := ls.save(ctx, sessionID, *state); err != nil {
		return nil, err
	}
	return ls.view(sessionID, *state), nil
}

func (ls *linearFlowService) Next(ctx context.Context, sessionID string) (*LinearSessionView, error) {
	state, err := ls.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	categories := catalog.Categories()
	if !categoryComplete(categories[state.CategoryIndex], state.Answers) {
		return nil, ErrIncomplete
	}
	if state.CategoryIndex < len(categories)-1 {
		state.CategoryIndex++
	}

	if err := ls.save(ctx, sessionID, *state); err != nil {
		return nil, err
	}
	return ls.view(sessionID, *state), nil
}

func (ls *linearFlowService) Previous(ctx context.Context, sessionID string) (*LinearSessionView, error) {
	state, err := ls.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.CategoryIndex > 0 {
		state.CategoryIndex--
	}

	if err := ls.save(ctx, sessionID, *state); err != nil {
		return nil, err
	}
	return ls.view(sessionID, *state), nil
}

// Submit persists the whole session as one diagnostic and runs the pipeline.
// It refuses to persist anything while a single question anywhere lacks an
// answer.
func (ls *linearFlowService) Submit(ctx context.Context, sessionID string) (*ProcessResult, error) {
	state, err := ls.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	categories := catalog.Categories()
	if state.CategoryIndex != len(categories)-1 {
		return nil, ErrNotLastCategory
	}
	for _, cat := range categories {
		if !categoryComplete(cat, state.Answers) {
			return nil, ErrIncomplete
		}
	}

	diag := &types.Diagnostic{
		OrganizationID: state.OrganizationID,
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	}

	err = inTransaction(ls.db, func(tx *gorm.DB) error {
		if _, err := ls.diagRepo.Create(ctx, tx, diag); err != nil {
			return fmt.Errorf("create diagnostic: %w", err)
		}

		var responses []*types.DiagnosticResponse
		for _, cat := range categories {
			for _, q := range cat.Questions {
				value := state.Answers[q.Key]
				v := value
				responses = append(responses, &types.DiagnosticResponse{
					DiagnosticID: diag.ID,
					Category:     cat.ID,
					QuestionKey:  q.Key,
					QuestionText: q.Text,
					AnswerValue:  &v,
					Weight:       q.Weight,
				})
			}
		}
		if _, err := ls.responseRepo.CreateBatch(ctx, tx, responses); err != nil {
			return fmt.Errorf("create responses: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := ls.store.Delete(ctx, linearKey(sessionID)); err != nil {
		ls.log.Warn("Failed to delete linear session", "session_id", sessionID, "error", err)
	}

	ls.log.Info("Linear session submitted", "session_id", sessionID, "diagnostic_id", diag.ID)
	return ls.pipeline.Process(ctx, diag.ID)
}

func categoryComplete(cat catalog.Category, answers map[string]float64) bool {
	for _, q := range cat.Questions {
		if _, ok := answers[q.Key]; !ok {
			return false
		}
	}
	return true
}

func (ls *linearFlowService) view(sessionID string, state linearState) *LinearSessionView {
	categories := catalog.Categories()
	cat := categories[state.CategoryIndex]
	answers := make(map[string]float64, len(state.Answers))
	for k, v := range state.Answers {
		answers[k] = v
	}
	return &LinearSessionView{
		SessionID:       sessionID,
		OrganizationID:  state.OrganizationID,
		CategoryIndex:   state.CategoryIndex,
		CategoryID:      cat.ID,
		CategoryName:    cat.Name,
		TotalCategories: len(categories),
		Answers:         answers,
		AnsweredCount:   len(state.Answers),
		TotalQuestions:  catalog.TotalLinearQuestions(),
	}
}

func (ls *linearFlowService) load(ctx context.Context, sessionID string) (*linearState, error) {
	raw, err := ls.store.Get(ctx, linearKey(sessionID))
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var state linearState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if state.Answers == nil {
		state.Answers = map[string]float64{}
	}
	return &state, nil
}

func (ls *linearFlowService) save(ctx context.Context, sessionID string, state linearState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := ls.store.Put(ctx, linearKey(sessionID), raw, sessions.DefaultTTL); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func linearKey(sessionID string) string { return "linear:" + sessionID }
