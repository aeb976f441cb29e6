package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/catalog"
	"github.com/dialogics/diagnostics-backend/internal/sessions"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

type linearFixture struct {
	orgID        uuid.UUID
	diagRepo     *fakeDiagRepo
	responseRepo *fakeResponseRepo
	pipeline     *fakePipeline
	svc          LinearFlowService
}

func newLinearFixture(t *testing.T) *linearFixture {
	t.Helper()
	orgRepo := newFakeOrgRepo()
	org := orgRepo.add(&types.Organization{Name: "Instituto Teste", Email: "teste@ong.org"})
	f := &linearFixture{
		orgID:        org.ID,
		diagRepo:     newFakeDiagRepo(),
		responseRepo: newFakeResponseRepo(),
		pipeline:     &fakePipeline{},
	}
	f.svc = NewLinearFlowService(
		testLogger(t),
		nil,
		sessions.NewMemoryStore(),
		orgRepo,
		f.diagRepo,
		f.responseRepo,
		f.pipeline,
	)
	return f
}

func (f *linearFixture) answerCategory(t *testing.T, sessionID string, cat catalog.Category, value float64) {
	t.Helper()
	for _, q := range cat.Questions {
		if _, err := f.svc.Answer(context.Background(), sessionID, q.Key, value); err != nil {
			t.Fatalf("Answer(%s): %v", q.Key, err)
		}
	}
}

func TestLinearStartUnknownOrganization(t *testing.T) {
	f := newLinearFixture(t)
	if _, err := f.svc.Start(context.Background(), uuid.New()); err == nil {
		t.Fatal("Start accepted an unknown organization")
	}
}

func TestLinearAnswerValidation(t *testing.T) {
	f := newLinearFixture(t)
	session, err := f.svc.Start(context.Background(), f.orgID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	key := catalog.Categories()[0].Questions[0].Key

	if _, err := f.svc.Answer(context.Background(), session.SessionID, "nope", 3); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown key: err = %v", err)
	}
	if _, err := f.svc.Answer(context.Background(), session.SessionID, key, 0); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("value 0: err = %v", err)
	}
	if _, err := f.svc.Answer(context.Background(), session.SessionID, key, 6); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("value 6: err = %v", err)
	}
	if _, err := f.svc.Answer(context.Background(), "missing", key, 3); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("missing session: err = %v", err)
	}
}

func TestLinearNextRequiresCompleteCategory(t *testing.T) {
	f := newLinearFixture(t)
	session, err := f.svc.Start(context.Background(), f.orgID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := f.svc.Next(context.Background(), session.SessionID); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("Next on empty category: err = %v", err)
	}

	f.answerCategory(t, session.SessionID, catalog.Categories()[0], 4)
	view, err := f.svc.Next(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if view.CategoryIndex != 1 {
		t.Errorf("CategoryIndex = %d, want 1", view.CategoryIndex)
	}
}

func TestLinearPreviousKeepsAnswers(t *testing.T) {
	f := newLinearFixture(t)
	session, err := f.svc.Start(context.Background(), f.orgID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	first := catalog.Categories()[0]
	f.answerCategory(t, session.SessionID, first, 5)
	if _, err := f.svc.Next(context.Background(), session.SessionID); err != nil {
		t.Fatalf("Next: %v", err)
	}

	view, err := f.svc.Previous(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if view.CategoryIndex != 0 {
		t.Errorf("CategoryIndex = %d, want 0", view.CategoryIndex)
	}
	for _, q := range first.Questions {
		if view.Answers[q.Key] != 5 {
			t.Errorf("answer %s = %v, want 5", q.Key, view.Answers[q.Key])
		}
	}

	// Previous at the first category stays put.
	view, err = f.svc.Previous(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("Previous at start: %v", err)
	}
	if view.CategoryIndex != 0 {
		t.Errorf("CategoryIndex = %d, want 0", view.CategoryIndex)
	}
}

func TestLinearSubmitPreconditions(t *testing.T) {
	f := newLinearFixture(t)
	session, err := f.svc.Start(context.Background(), f.orgID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := f.svc.Submit(context.Background(), session.SessionID); !errors.Is(err, ErrNotLastCategory) {
		t.Fatalf("Submit from first category: err = %v", err)
	}

	// Walk to the last category, answering everything except the final
	// question.
	categories := catalog.Categories()
	for i, cat := range categories {
		for j, q := range cat.Questions {
			if i == len(categories)-1 && j == len(cat.Questions)-1 {
				continue
			}
			if _, err := f.svc.Answer(context.Background(), session.SessionID, q.Key, 3); err != nil {
				t.Fatalf("Answer(%s): %v", q.Key, err)
			}
		}
		if i < len(categories)-1 {
			if _, err := f.svc.Next(context.Background(), session.SessionID); err != nil {
				t.Fatalf("Next: %v", err)
			}
		}
	}

	if _, err := f.svc.Submit(context.Background(), session.SessionID); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("Submit with missing answer: err = %v", err)
	}
	if len(f.pipeline.processed) != 0 {
		t.Error("pipeline ran despite incomplete session")
	}
}

func TestLinearSubmit(t *testing.T) {
	f := newLinearFixture(t)
	session, err := f.svc.Start(context.Background(), f.orgID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	categories := catalog.Categories()
	for i, cat := range categories {
		f.answerCategory(t, session.SessionID, cat, 4)
		if i < len(categories)-1 {
			if _, err := f.svc.Next(context.Background(), session.SessionID); err != nil {
				t.Fatalf("Next: %v", err)
			}
		}
	}

	result, err := f.svc.Submit(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.Success {
		t.Fatalf("result = %+v", result)
	}

	if len(f.pipeline.processed) != 1 {
		t.Fatalf("pipeline runs = %d, want 1", len(f.pipeline.processed))
	}
	diagID := f.pipeline.processed[0]
	diag, ok := f.diagRepo.diags[diagID]
	if !ok {
		t.Fatal("diagnostic not created")
	}
	if diag.OrganizationID != f.orgID {
		t.Errorf("organization_id = %s, want %s", diag.OrganizationID, f.orgID)
	}

	responses := f.responseRepo.byDiag[diagID]
	if len(responses) != catalog.TotalLinearQuestions() {
		t.Fatalf("responses = %d, want %d", len(responses), catalog.TotalLinearQuestions())
	}
	for _, r := range responses {
		if r.AnswerValue == nil || *r.AnswerValue != 4 {
			t.Errorf("response %s value = %v, want 4", r.QuestionKey, r.AnswerValue)
		}
	}

	// Session is gone after submit.
	if _, err := f.svc.Get(context.Background(), session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after submit: err = %v", err)
	}
}
