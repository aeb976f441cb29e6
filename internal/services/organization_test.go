package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dialogics/diagnostics-backend/internal/types"
)

func TestOrganizationCreate(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	svc := NewOrganizationService(testLogger(t), orgRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &types.Organization{
		Name:             "  Instituto Esperança  ",
		OrganizationType: "ong",
		Email:            " Contato@Esperanca.ORG ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "Instituto Esperança" {
		t.Errorf("name = %q", created.Name)
	}
	if created.Email != "contato@esperanca.org" {
		t.Errorf("email = %q", created.Email)
	}
}

func TestOrganizationCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		org  types.Organization
	}{
		{"missing name", types.Organization{OrganizationType: "ong", Email: "a@b.org"}},
		{"missing email", types.Organization{Name: "X", OrganizationType: "ong"}},
		{"malformed email", types.Organization{Name: "X", OrganizationType: "ong", Email: "not-an-email"}},
		{"unknown type", types.Organization{Name: "X", OrganizationType: "empresa", Email: "a@b.org"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrganizationService(testLogger(t), newFakeOrgRepo())
			org := tt.org
			if _, err := svc.Create(context.Background(), &org); !errors.Is(err, ErrInvalidOrganization) {
				t.Errorf("err = %v, want ErrInvalidOrganization", err)
			}
		})
	}
}

func TestOrganizationCreateEmailTaken(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgRepo.add(&types.Organization{Name: "Primeira", OrganizationType: "ong", Email: "contato@esperanca.org"})
	svc := NewOrganizationService(testLogger(t), orgRepo)

	_, err := svc.Create(context.Background(), &types.Organization{
		Name:             "Segunda",
		OrganizationType: "ong",
		Email:            "CONTATO@esperanca.org",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}
