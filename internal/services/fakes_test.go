package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

func fp(v float64) *float64 { return &v }

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

// --- gemini ---

type fakeGemini struct {
	out       string
	err       error
	gotPrompt string
	calls     int
}

func (f *fakeGemini) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.gotPrompt = prompt
	return f.out, f.err
}

// --- repos ---

type fakeOrgRepo struct {
	orgs map[uuid.UUID]*types.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: map[uuid.UUID]*types.Organization{}}
}

func (f *fakeOrgRepo) add(org *types.Organization) *types.Organization {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	f.orgs[org.ID] = org
	return org
}

func (f *fakeOrgRepo) Create(ctx context.Context, tx *gorm.DB, org *types.Organization) (*types.Organization, error) {
	return f.add(org), nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, repos.ErrNotFound
	}
	return org, nil
}

func (f *fakeOrgRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Organization, error) {
	for _, org := range f.orgs {
		if org.Email == email {
			return org, nil
		}
	}
	return nil, repos.ErrNotFound
}

func (f *fakeOrgRepo) Update(ctx context.Context, tx *gorm.DB, org *types.Organization) (*types.Organization, error) {
	f.orgs[org.ID] = org
	return org, nil
}

func (f *fakeOrgRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Organization, error) {
	var out []*types.Organization
	for _, org := range f.orgs {
		out = append(out, org)
	}
	return out, nil
}

type fakeDiagRepo struct {
	diags       map[uuid.UUID]*types.Diagnostic
	completed   map[uuid.UUID]repos.CompletionUpdate
	reportURLs  map[uuid.UUID]string
	completeErr error
}

func newFakeDiagRepo() *fakeDiagRepo {
	return &fakeDiagRepo{
		diags:      map[uuid.UUID]*types.Diagnostic{},
		completed:  map[uuid.UUID]repos.CompletionUpdate{},
		reportURLs: map[uuid.UUID]string{},
	}
}

func (f *fakeDiagRepo) Create(ctx context.Context, tx *gorm.DB, diag *types.Diagnostic) (*types.Diagnostic, error) {
	if diag.ID == uuid.Nil {
		diag.ID = uuid.New()
	}
	f.diags[diag.ID] = diag
	return diag, nil
}

func (f *fakeDiagRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Diagnostic, error) {
	diag, ok := f.diags[id]
	if !ok {
		return nil, repos.ErrNotFound
	}
	return diag, nil
}

func (f *fakeDiagRepo) GetWithOrganization(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Diagnostic, error) {
	return f.GetByID(ctx, tx, id)
}

func (f *fakeDiagRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uuid.UUID) ([]*types.Diagnostic, error) {
	var out []*types.Diagnostic
	for _, diag := range f.diags {
		if diag.OrganizationID == orgID {
			out = append(out, diag)
		}
	}
	return out, nil
}

func (f *fakeDiagRepo) Complete(ctx context.Context, tx *gorm.DB, id uuid.UUID, update repos.CompletionUpdate) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	diag, ok := f.diags[id]
	if !ok {
		return repos.ErrNotFound
	}
	f.completed[id] = update
	diag.Status = types.DiagnosticStatusCompleted
	overall := update.OverallScore
	diag.OverallScore = &overall
	level := update.MaturityLevel
	diag.MaturityLevel = &level
	return nil
}

func (f *fakeDiagRepo) SetReportURL(ctx context.Context, tx *gorm.DB, id uuid.UUID, reportURL string) error {
	if _, ok := f.diags[id]; !ok {
		return repos.ErrNotFound
	}
	f.reportURLs[id] = reportURL
	return nil
}

type fakeResponseRepo struct {
	byDiag  map[uuid.UUID][]*types.DiagnosticResponse
	listErr error
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{byDiag: map[uuid.UUID][]*types.DiagnosticResponse{}}
}

func (f *fakeResponseRepo) CreateBatch(ctx context.Context, tx *gorm.DB, responses []*types.DiagnosticResponse) ([]*types.DiagnosticResponse, error) {
	for _, r := range responses {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		for _, existing := range f.byDiag[r.DiagnosticID] {
			if existing.QuestionKey == r.QuestionKey {
				return nil, repos.ErrDuplicateResponse
			}
		}
		f.byDiag[r.DiagnosticID] = append(f.byDiag[r.DiagnosticID], r)
	}
	return responses, nil
}

func (f *fakeResponseRepo) ListByDiagnostic(ctx context.Context, tx *gorm.DB, diagnosticID uuid.UUID) ([]*types.DiagnosticResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byDiag[diagnosticID], nil
}

// --- fan-out collaborators ---

// syncDispatcher runs tasks inline so tests observe their effects.
type syncDispatcher struct {
	names []string
}

func (d *syncDispatcher) Dispatch(name string, task func(ctx context.Context) error) {
	d.names = append(d.names, name)
	_ = task(context.Background())
}

type fakeReport struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeReport) Generate(ctx context.Context, diagnosticID uuid.UUID) error {
	f.calls = append(f.calls, diagnosticID)
	return f.err
}

type fakeNotification struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeNotification) Send(ctx context.Context, diagnosticID uuid.UUID) error {
	f.calls = append(f.calls, diagnosticID)
	return f.err
}

// fakePipeline stands in for the full DiagnosticService behind the intake
// flows.
type fakePipeline struct {
	processed []uuid.UUID
	err       error
}

func (f *fakePipeline) Process(ctx context.Context, diagnosticID uuid.UUID) (*ProcessResult, error) {
	f.processed = append(f.processed, diagnosticID)
	if f.err != nil {
		return nil, f.err
	}
	return &ProcessResult{
		Success:       true,
		DiagnosticID:  diagnosticID,
		OverallScore:  72.5,
		MaturityLevel: types.MaturityGold,
	}, nil
}

func (f *fakePipeline) Get(ctx context.Context, diagnosticID uuid.UUID) (*types.Diagnostic, []*types.DiagnosticResponse, error) {
	return nil, nil, fmt.Errorf("not implemented")
}

func (f *fakePipeline) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*types.Diagnostic, error) {
	return nil, nil
}
