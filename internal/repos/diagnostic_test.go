package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/repos/testutil"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

func seedOrganization(t *testing.T, tx *gorm.DB) *types.Organization {
	t.Helper()
	repo := NewOrganizationRepo(tx, testutil.Logger(t))
	org, err := repo.Create(context.Background(), tx, &types.Organization{
		Name:             "Instituto Esperança",
		OrganizationType: types.OrgTypeONG,
		Email:            uuid.NewString() + "@example.org",
	})
	if err != nil {
		t.Fatalf("seed organization: %v", err)
	}
	return org
}

func TestDiagnosticRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDiagnosticRepo(db, testutil.Logger(t))
	ctx := context.Background()
	org := seedOrganization(t, tx)

	created, err := repo.Create(ctx, tx, &types.Diagnostic{
		OrganizationID: org.ID,
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != types.DiagnosticStatusInProgress {
		t.Fatalf("GetByID: status = %q", got.Status)
	}
	if got.OverallScore != nil || got.MaturityLevel != nil || got.CompletedAt != nil {
		t.Fatalf("GetByID: result columns set before completion: %+v", got)
	}

	withOrg, err := repo.GetWithOrganization(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetWithOrganization: %v", err)
	}
	if withOrg.Organization == nil || withOrg.Organization.ID != org.ID {
		t.Fatalf("GetWithOrganization: organization not loaded: %+v", withOrg.Organization)
	}

	list, err := repo.ListByOrganization(ctx, tx, org.ID)
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("ListByOrganization: unexpected result: %+v", list)
	}
}

func TestDiagnosticRepoComplete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDiagnosticRepo(db, testutil.Logger(t))
	ctx := context.Background()
	org := seedOrganization(t, tx)

	created, err := repo.Create(ctx, tx, &types.Diagnostic{
		OrganizationID: org.ID,
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	gov := 80.0
	fin := 55.5
	update := CompletionUpdate{
		CategoryScores: map[string]*float64{
			"governance": &gov,
			"finance":    &fin,
			// Not a score column; must be skipped, not fail the write.
			"identificacao": &gov,
		},
		OverallScore:  67.75,
		MaturityLevel: types.MaturitySilver,
		SwotAnalysis:  datatypes.JSON(`{"strengths":["equipe"]}`),
		ActionPlan:    datatypes.JSON(`{"days30":[]}`),
		AISummary:     "resumo",
	}
	if err := repo.Complete(ctx, tx, created.ID, update); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != types.DiagnosticStatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.GovernanceScore == nil || *got.GovernanceScore != gov {
		t.Errorf("governance_score = %v", got.GovernanceScore)
	}
	if got.FinanceScore == nil || *got.FinanceScore != fin {
		t.Errorf("finance_score = %v", got.FinanceScore)
	}
	if got.CommunicationScore != nil {
		t.Errorf("communication_score = %v, want NULL", *got.CommunicationScore)
	}
	if got.OverallScore == nil || *got.OverallScore != 67.75 {
		t.Errorf("overall_score = %v", got.OverallScore)
	}
	if got.MaturityLevel == nil || *got.MaturityLevel != types.MaturitySilver {
		t.Errorf("maturity_level = %v", got.MaturityLevel)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if got.AISummary != "resumo" {
		t.Errorf("ai_summary = %q", got.AISummary)
	}

	if err := repo.Complete(ctx, tx, uuid.New(), update); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Complete (missing): err = %v", err)
	}
}

func TestDiagnosticRepoSetReportURL(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDiagnosticRepo(db, testutil.Logger(t))
	ctx := context.Background()
	org := seedOrganization(t, tx)

	created, err := repo.Create(ctx, tx, &types.Diagnostic{
		OrganizationID: org.ID,
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	url := "https://cdn.example.org/reports/diagnostic-" + created.ID.String() + ".html"
	if err := repo.SetReportURL(ctx, tx, created.ID, url); err != nil {
		t.Fatalf("SetReportURL: %v", err)
	}
	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ReportURL == nil || *got.ReportURL != url {
		t.Fatalf("report_url = %v", got.ReportURL)
	}

	if err := repo.SetReportURL(ctx, tx, uuid.New(), url); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetReportURL (missing): err = %v", err)
	}
}
