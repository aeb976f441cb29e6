package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/types"
)

type pipelineFixture struct {
	diagRepo     *fakeDiagRepo
	responseRepo *fakeResponseRepo
	gemini       *fakeGemini
	dispatcher   *syncDispatcher
	report       *fakeReport
	notification *fakeNotification
	svc          DiagnosticService
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	log := testLogger(t)
	f := &pipelineFixture{
		diagRepo:     newFakeDiagRepo(),
		responseRepo: newFakeResponseRepo(),
		gemini:       &fakeGemini{out: validAnalysisJSON},
		dispatcher:   &syncDispatcher{},
		report:       &fakeReport{},
		notification: &fakeNotification{},
	}
	f.svc = NewDiagnosticService(
		log,
		f.diagRepo,
		f.responseRepo,
		NewAnalysisService(log, f.gemini),
		f.dispatcher,
		f.report,
		f.notification,
	)
	return f
}

func (f *pipelineFixture) seedDiagnostic(t *testing.T, responses []*types.DiagnosticResponse) uuid.UUID {
	t.Helper()
	diag := &types.Diagnostic{
		OrganizationID: uuid.New(),
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	}
	if _, err := f.diagRepo.Create(context.Background(), nil, diag); err != nil {
		t.Fatalf("seed diagnostic: %v", err)
	}
	for _, r := range responses {
		r.DiagnosticID = diag.ID
	}
	if _, err := f.responseRepo.CreateBatch(context.Background(), nil, responses); err != nil {
		t.Fatalf("seed responses: %v", err)
	}
	return diag.ID
}

func scaleResponse(key, category string, value, weight float64) *types.DiagnosticResponse {
	v := value
	return &types.DiagnosticResponse{
		QuestionKey:  key,
		Category:     category,
		QuestionText: key,
		AnswerValue:  &v,
		Weight:       weight,
	}
}

func TestProcessHappyPath(t *testing.T) {
	f := newPipelineFixture(t)
	id := f.seedDiagnostic(t, []*types.DiagnosticResponse{
		scaleResponse("g1", "governance", 5, 2),
		scaleResponse("g2", "governance", 4, 1),
		scaleResponse("f1", "finance", 2, 1),
	})

	result, err := f.svc.Process(context.Background(), id)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !result.Success || result.DiagnosticID != id {
		t.Fatalf("result = %+v", result)
	}

	// governance: (5*2+4*1)/3 = 14/3 -> 93.33; finance: 40; overall 66.67.
	update, ok := f.diagRepo.completed[id]
	if !ok {
		t.Fatal("completion update not persisted")
	}
	gov := update.CategoryScores["governance"]
	if gov == nil || math.Abs(*gov-93.3333333333) > 1e-6 {
		t.Errorf("governance score = %v", gov)
	}
	fin := update.CategoryScores["finance"]
	if fin == nil || *fin != 40 {
		t.Errorf("finance score = %v", fin)
	}
	if math.Abs(result.OverallScore-66.6666666666) > 1e-6 {
		t.Errorf("overall = %v", result.OverallScore)
	}
	if result.MaturityLevel != types.MaturitySilver {
		t.Errorf("maturity = %q, want silver", result.MaturityLevel)
	}

	var swot types.SwotAnalysis
	if err := json.Unmarshal(update.SwotAnalysis, &swot); err != nil {
		t.Fatalf("stored swot not JSON: %v", err)
	}
	if len(swot.Strengths) != 1 {
		t.Errorf("stored swot = %+v", swot)
	}

	if len(f.report.calls) != 1 || f.report.calls[0] != id {
		t.Errorf("report calls = %v", f.report.calls)
	}
	if len(f.notification.calls) != 1 || f.notification.calls[0] != id {
		t.Errorf("notification calls = %v", f.notification.calls)
	}
}

func TestProcessStoreFailureKeepsInProgress(t *testing.T) {
	f := newPipelineFixture(t)
	id := f.seedDiagnostic(t, []*types.DiagnosticResponse{
		scaleResponse("g1", "governance", 5, 1),
	})
	f.responseRepo.listErr = errors.New("connection refused")

	if _, err := f.svc.Process(context.Background(), id); err == nil {
		t.Fatal("Process succeeded despite store failure")
	}
	if f.diagRepo.diags[id].Status != types.DiagnosticStatusInProgress {
		t.Errorf("status = %q, want in_progress", f.diagRepo.diags[id].Status)
	}
	if len(f.dispatcher.names) != 0 {
		t.Errorf("fan-out dispatched despite failure: %v", f.dispatcher.names)
	}
}

func TestProcessPersistFailureSkipsFanOut(t *testing.T) {
	f := newPipelineFixture(t)
	id := f.seedDiagnostic(t, []*types.DiagnosticResponse{
		scaleResponse("g1", "governance", 3, 1),
	})
	f.diagRepo.completeErr = errors.New("deadlock")

	if _, err := f.svc.Process(context.Background(), id); err == nil {
		t.Fatal("Process succeeded despite persist failure")
	}
	if len(f.report.calls) != 0 || len(f.notification.calls) != 0 {
		t.Error("fan-out ran despite persist failure")
	}
}

func TestProcessNoScoreableResponses(t *testing.T) {
	f := newPipelineFixture(t)
	text := "resposta livre"
	id := f.seedDiagnostic(t, []*types.DiagnosticResponse{
		{QuestionKey: "t1", Category: "identificacao", QuestionText: "t1", AnswerText: &text, Weight: 1},
	})

	_, err := f.svc.Process(context.Background(), id)
	if !errors.Is(err, ErrNoScoreableResponses) {
		t.Fatalf("err = %v, want ErrNoScoreableResponses", err)
	}
	if f.diagRepo.diags[id].Status != types.DiagnosticStatusInProgress {
		t.Error("diagnostic completed without scores")
	}
}

func TestProcessFanOutFailureDoesNotAffectResult(t *testing.T) {
	f := newPipelineFixture(t)
	id := f.seedDiagnostic(t, []*types.DiagnosticResponse{
		scaleResponse("g1", "governance", 5, 1),
	})
	f.report.err = errors.New("bucket down")
	f.notification.err = errors.New("smtp down")

	result, err := f.svc.Process(context.Background(), id)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !result.Success {
		t.Error("fan-out failure leaked into result")
	}
	if len(f.dispatcher.names) != 2 {
		t.Errorf("dispatched tasks = %v, want 2", f.dispatcher.names)
	}
}

func TestProcessAnalysisFailureStillCompletes(t *testing.T) {
	f := newPipelineFixture(t)
	f.gemini.err = errors.New("quota exceeded")
	id := f.seedDiagnostic(t, []*types.DiagnosticResponse{
		scaleResponse("g1", "governance", 4, 1),
	})

	result, err := f.svc.Process(context.Background(), id)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !result.Success {
		t.Fatal("result not successful")
	}

	update := f.diagRepo.completed[id]
	var swot types.SwotAnalysis
	if err := json.Unmarshal(update.SwotAnalysis, &swot); err != nil {
		t.Fatalf("stored swot not JSON: %v", err)
	}
	if len(swot.Strengths) == 0 {
		t.Error("fallback swot missing")
	}
	if update.AISummary == "" {
		t.Error("fallback summary missing")
	}
}
