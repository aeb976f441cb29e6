package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/repos/testutil"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

func seedDiagnostic(t *testing.T, tx *gorm.DB) *types.Diagnostic {
	t.Helper()
	org := seedOrganization(t, tx)
	repo := NewDiagnosticRepo(tx, testutil.Logger(t))
	diag, err := repo.Create(context.Background(), tx, &types.Diagnostic{
		OrganizationID: org.ID,
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	})
	if err != nil {
		t.Fatalf("seed diagnostic: %v", err)
	}
	return diag
}

func TestDiagnosticResponseRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDiagnosticResponseRepo(db, testutil.Logger(t))
	ctx := context.Background()
	diag := seedDiagnostic(t, tx)

	v1 := 4.0
	text := "resposta livre"
	created, err := repo.CreateBatch(ctx, tx, []*types.DiagnosticResponse{
		{
			DiagnosticID: diag.ID,
			Category:     "governance",
			QuestionKey:  "governance_board",
			QuestionText: "A diretoria se reúne?",
			AnswerValue:  &v1,
			Weight:       2,
		},
		{
			DiagnosticID: diag.ID,
			Category:     "identificacao",
			QuestionKey:  "ident_mission",
			QuestionText: "Qual a missão?",
			AnswerText:   &text,
			Weight:       1,
		},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("CreateBatch: expected 2 responses, got %d", len(created))
	}

	list, err := repo.ListByDiagnostic(ctx, tx, diag.ID)
	if err != nil {
		t.Fatalf("ListByDiagnostic: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByDiagnostic: expected 2 responses, got %d", len(list))
	}
	if list[0].AnswerValue == nil || *list[0].AnswerValue != v1 {
		t.Fatalf("ListByDiagnostic: unexpected first response: %+v", list[0])
	}
	if list[1].AnswerText == nil || *list[1].AnswerText != text {
		t.Fatalf("ListByDiagnostic: unexpected second response: %+v", list[1])
	}

	_, err = repo.CreateBatch(ctx, tx, []*types.DiagnosticResponse{
		{
			DiagnosticID: diag.ID,
			Category:     "governance",
			QuestionKey:  "governance_board",
			QuestionText: "A diretoria se reúne?",
			AnswerValue:  &v1,
			Weight:       2,
		},
	})
	if !errors.Is(err, ErrDuplicateResponse) {
		t.Fatalf("CreateBatch (duplicate): err = %v", err)
	}
}

func TestDiagnosticResponseRepoEmptyBatch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDiagnosticResponseRepo(db, testutil.Logger(t))
	created, err := repo.CreateBatch(context.Background(), tx, nil)
	if err != nil {
		t.Fatalf("CreateBatch(nil): %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("CreateBatch(nil): expected empty result, got %d", len(created))
	}
}
