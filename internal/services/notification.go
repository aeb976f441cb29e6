package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dialogics/diagnostics-backend/internal/clients/sendgrid"
	"github.com/dialogics/diagnostics-backend/internal/clients/twilio"
	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

// NotificationService tells the organization its results are ready. Email is
// always attempted; WhatsApp only when the organization registered a handle.
// The channels run concurrently and fail independently: a channel error is
// logged and swallowed, never propagated.
type NotificationService interface {
	Send(ctx context.Context, diagnosticID uuid.UUID) error
}

type notificationService struct {
	log          *logger.Logger
	diagRepo     repos.DiagnosticRepo
	email        sendgrid.Client
	whatsapp     twilio.Client
	dashboardURL string
	emailTmpl    *template.Template
}

func NewNotificationService(
	log *logger.Logger,
	diagRepo repos.DiagnosticRepo,
	email sendgrid.Client,
	whatsapp twilio.Client,
	dashboardURL string,
) NotificationService {
	if strings.TrimSpace(dashboardURL) == "" {
		dashboardURL = "https://dialogics.com.br/dashboard"
	}
	return &notificationService{
		log:          log.With("service", "NotificationService"),
		diagRepo:     diagRepo,
		email:        email,
		whatsapp:     whatsapp,
		dashboardURL: dashboardURL,
		emailTmpl:    template.Must(template.New("email").Parse(emailTemplate)),
	}
}

func (ns *notificationService) Send(ctx context.Context, diagnosticID uuid.UUID) error {
	log := ns.log.With("diagnostic_id", diagnosticID)

	diag, err := ns.diagRepo.GetWithOrganization(ctx, nil, diagnosticID)
	if err != nil {
		return fmt.Errorf("load diagnostic: %w", err)
	}
	if diag.Organization == nil {
		return fmt.Errorf("diagnostic %s has no organization", diagnosticID)
	}
	org := diag.Organization

	var g errgroup.Group

	g.Go(func() error {
		if err := ns.sendEmail(ctx, diag, org); err != nil {
			log.Error("Email notification failed", "error", err)
			return nil
		}
		log.Info("Email notification sent")
		return nil
	})

	if strings.TrimSpace(org.Whatsapp) != "" {
		g.Go(func() error {
			if err := ns.sendWhatsApp(ctx, diag, org); err != nil {
				log.Error("WhatsApp notification failed", "error", err)
				return nil
			}
			log.Info("WhatsApp notification sent")
			return nil
		})
	}

	return g.Wait()
}

func (ns *notificationService) sendEmail(ctx context.Context, diag *types.Diagnostic, org *types.Organization) error {
	if ns.email == nil {
		ns.log.Warn("No email client configured, skipping email notification")
		return nil
	}

	data := emailData{
		OrgName:       org.Name,
		OverallScore:  formatScore(diag.OverallScore),
		MaturityLabel: strings.ToUpper(maturityLabel(diag.MaturityLevel)),
		Scores: []reportScoreCard{
			{formatScore(diag.GovernanceScore), "Governança"},
			{formatScore(diag.FinanceScore), "Finanças"},
			{formatScore(diag.CommunicationScore), "Comunicação"},
			{formatScore(diag.ImpactScore), "Impacto"},
			{formatScore(diag.TransparencyScore), "Transparência"},
			{formatScore(diag.FundraisingScore), "Captação"},
		},
		DashboardURL: ns.dashboardURL,
	}

	var buf bytes.Buffer
	if err := ns.emailTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	return ns.email.Send(ctx, sendgrid.SendEmailRequest{
		To:      []sendgrid.EmailAddress{{Email: org.Email, Name: org.Name}},
		Subject: "🎉 Seu Diagnóstico Organizacional está pronto!",
		HTML:    buf.String(),
	})
}

func (ns *notificationService) sendWhatsApp(ctx context.Context, diag *types.Diagnostic, org *types.Organization) error {
	if ns.whatsapp == nil {
		ns.log.Warn("No WhatsApp client configured, skipping WhatsApp notification")
		return nil
	}

	message := fmt.Sprintf(`🎉 *Diagnóstico Concluído - %s*

Sua pontuação: *%s*
Nível: *%s*

📊 *Pontuações por área:*
• Governança: %s
• Finanças: %s
• Comunicação: %s
• Impacto: %s
• Transparência: %s
• Captação: %s

📋 Acesse seu dashboard para:
• Ver relatório completo
• Baixar PDF com análise SWOT
• Explorar recursos personalizados
• Obter seu selo digital

🔗 %s

_Parabéns pelo diagnóstico! Sua organização está no caminho certo para o crescimento._`,
		org.Name,
		formatScore(diag.OverallScore),
		strings.ToUpper(maturityLabel(diag.MaturityLevel)),
		formatScore(diag.GovernanceScore),
		formatScore(diag.FinanceScore),
		formatScore(diag.CommunicationScore),
		formatScore(diag.ImpactScore),
		formatScore(diag.TransparencyScore),
		formatScore(diag.FundraisingScore),
		ns.dashboardURL,
	)

	_, err := ns.whatsapp.SendWhatsApp(ctx, org.Whatsapp, message)
	return err
}

type emailData struct {
	OrgName       string
	OverallScore  string
	MaturityLabel string
	Scores        []reportScoreCard
	DashboardURL  string
}

const emailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #2563eb; margin-bottom: 10px;">Dialogics</h1>
    <h2 style="color: #64748b;">Diagnóstico Concluído!</h2>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h3>Olá, {{.OrgName}}!</h3>
    <p>Seu diagnóstico organizacional foi processado com sucesso. Aqui estão os resultados:</p>
  </div>

  <div style="background: white; border: 2px solid #e2e8f0; border-radius: 8px; padding: 20px; margin-bottom: 20px;">
    <div style="text-align: center;">
      <div style="font-size: 48px; font-weight: bold; color: #2563eb; margin-bottom: 10px;">{{.OverallScore}}</div>
      <div style="color: #64748b; margin-bottom: 15px;">Pontuação Final</div>
      <div style="display: inline-block; padding: 8px 16px; border-radius: 20px; font-weight: bold; text-transform: uppercase; background: #2563eb; color: white;">{{.MaturityLabel}}</div>
    </div>
  </div>

  <div style="display: grid; grid-template-columns: repeat(2, 1fr); gap: 15px; margin-bottom: 30px;">
    {{range .Scores}}
    <div style="background: #f8fafc; padding: 15px; border-radius: 8px; text-align: center;">
      <div style="font-size: 24px; font-weight: bold; color: #2563eb;">{{.Value}}</div>
      <div style="color: #64748b; font-size: 14px;">{{.Label}}</div>
    </div>
    {{end}}
  </div>

  <div style="background: #fff; border: 1px solid #e2e8f0; border-radius: 8px; padding: 20px; margin-bottom: 20px;">
    <h4 style="color: #2563eb; margin-bottom: 15px;">Próximos Passos:</h4>
    <p>• Acesse seu dashboard para ver o relatório completo</p>
    <p>• Baixe o PDF com análise SWOT e plano de ação</p>
    <p>• Explore nossa biblioteca de recursos personalizados</p>
    <p>• Compartilhe seu selo de maturidade</p>
  </div>

  <div style="text-align: center; margin-top: 30px;">
    <a href="{{.DashboardURL}}" style="background: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: bold; display: inline-block;">Acessar Dashboard</a>
  </div>

  <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #64748b; font-size: 14px;">
    <p>Este é um e-mail automático. Para dúvidas, entre em contato conosco.</p>
    <p>© 2024 Dialogics - Diagnóstico Organizacional</p>
  </div>
</div>
`
