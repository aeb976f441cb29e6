package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

// ReportService renders the HTML result report and publishes it. It runs on
// the fan-out path only: a failure is logged by the dispatcher and never
// reaches the submitting caller.
type ReportService interface {
	Generate(ctx context.Context, diagnosticID uuid.UUID) error
}

type reportService struct {
	log      *logger.Logger
	diagRepo repos.DiagnosticRepo
	bucket   BucketService
	tmpl     *template.Template
}

func NewReportService(log *logger.Logger, diagRepo repos.DiagnosticRepo, bucket BucketService) ReportService {
	return &reportService{
		log:      log.With("service", "ReportService"),
		diagRepo: diagRepo,
		bucket:   bucket,
		tmpl:     template.Must(template.New("report").Parse(reportTemplate)),
	}
}

type reportScoreCard struct {
	Value string
	Label string
}

type reportAction struct {
	Title         string
	Description   string
	DeadlineDays  int
	PriorityLabel string
	PriorityClass string
	Category      string
}

type reportData struct {
	OrgName        string
	OrgType        string
	DiagnosticDate string
	OverallScore   string
	MaturityLabel  string
	MaturityClass  string
	Scores         []reportScoreCard
	Swot           *types.SwotAnalysis
	Actions        []reportAction
	Summary        string
	GeneratedAt    string
}

func (rs *reportService) Generate(ctx context.Context, diagnosticID uuid.UUID) error {
	log := rs.log.With("diagnostic_id", diagnosticID)

	if rs.bucket == nil {
		log.Warn("No bucket configured, skipping report generation")
		return nil
	}

	diag, err := rs.diagRepo.GetWithOrganization(ctx, nil, diagnosticID)
	if err != nil {
		return fmt.Errorf("load diagnostic: %w", err)
	}

	html, err := rs.render(diag)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	key := fmt.Sprintf("reports/diagnostic-%s.html", diagnosticID)
	if err := rs.bucket.UploadFile(ctx, key, "text/html; charset=utf-8", bytes.NewReader(html)); err != nil {
		return fmt.Errorf("upload report: %w", err)
	}

	reportURL := rs.bucket.GetPublicURL(key)
	if err := rs.diagRepo.SetReportURL(ctx, nil, diagnosticID, reportURL); err != nil {
		return fmt.Errorf("save report url: %w", err)
	}

	log.Info("Report published", "report_url", reportURL)
	return nil
}

var priorityDisplay = map[string]struct{ label, class string }{
	types.ActionPriorityHigh:   {"ALTA", "priority-alta"},
	types.ActionPriorityMedium: {"MÉDIA", "priority-media"},
	types.ActionPriorityLow:    {"BAIXA", "priority-baixa"},
}

func (rs *reportService) render(diag *types.Diagnostic) ([]byte, error) {
	orgName := ""
	orgType := ""
	if diag.Organization != nil {
		orgName = diag.Organization.Name
		orgType = diag.Organization.OrganizationType
	}

	data := reportData{
		OrgName:        orgName,
		OrgType:        orgType,
		DiagnosticDate: diag.CreatedAt.Format("02/01/2006"),
		OverallScore:   formatScore(diag.OverallScore),
		MaturityLabel:  strings.ToUpper(maturityLabel(diag.MaturityLevel)),
		MaturityClass:  maturityLabel(diag.MaturityLevel),
		Scores: []reportScoreCard{
			{formatScore(diag.GovernanceScore), "Governança"},
			{formatScore(diag.FinanceScore), "Finanças"},
			{formatScore(diag.CommunicationScore), "Comunicação"},
			{formatScore(diag.ImpactScore), "Impacto"},
			{formatScore(diag.TransparencyScore), "Transparência"},
			{formatScore(diag.FundraisingScore), "Captação"},
		},
		Summary:     diag.AISummary,
		GeneratedAt: time.Now().Format("02/01/2006"),
	}

	if len(diag.SwotAnalysis) > 0 {
		var swot types.SwotAnalysis
		if err := json.Unmarshal(diag.SwotAnalysis, &swot); err == nil {
			data.Swot = &swot
		}
	}
	if len(diag.ActionPlan) > 0 {
		var plan types.ActionPlan
		if err := json.Unmarshal(diag.ActionPlan, &plan); err == nil {
			for _, action := range plan.Actions {
				display, ok := priorityDisplay[action.Priority]
				if !ok {
					display.label = strings.ToUpper(action.Priority)
					display.class = "priority-media"
				}
				data.Actions = append(data.Actions, reportAction{
					Title:         action.Title,
					Description:   action.Description,
					DeadlineDays:  action.DeadlineDays,
					PriorityLabel: display.label,
					PriorityClass: display.class,
					Category:      action.Category,
				})
			}
		}
	}

	var buf bytes.Buffer
	if err := rs.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Relatório de Diagnóstico - {{.OrgName}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; background: #fff; }
        .container { max-width: 800px; margin: 0 auto; padding: 40px 20px; }
        .header { text-align: center; border-bottom: 3px solid #2563eb; padding-bottom: 30px; margin-bottom: 40px; }
        .logo { color: #2563eb; font-size: 28px; font-weight: bold; margin-bottom: 10px; }
        .subtitle { color: #64748b; font-size: 16px; }
        .org-info { background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 30px; }
        .score-section { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 40px; }
        .score-card { background: #fff; border: 2px solid #e2e8f0; border-radius: 8px; padding: 20px; text-align: center; }
        .score-value { font-size: 36px; font-weight: bold; color: #2563eb; margin-bottom: 5px; }
        .score-label { color: #64748b; font-size: 14px; text-transform: uppercase; }
        .maturity-badge { display: inline-block; padding: 8px 16px; border-radius: 20px; font-weight: bold; text-transform: uppercase; margin: 20px 0; }
        .bronze { background: #cd7f32; color: white; }
        .prata { background: #c0c0c0; color: #333; }
        .ouro { background: #ffd700; color: #333; }
        .diamante { background: #b9f2ff; color: #333; }
        .section { margin-bottom: 40px; }
        .section-title { font-size: 24px; color: #2563eb; border-bottom: 2px solid #e2e8f0; padding-bottom: 10px; margin-bottom: 20px; }
        .swot-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 20px; }
        .swot-item { background: #f8fafc; padding: 20px; border-radius: 8px; border-left: 4px solid #2563eb; }
        .swot-title { font-weight: bold; margin-bottom: 10px; color: #2563eb; }
        .swot-list { list-style: none; }
        .swot-list li { padding: 5px 0; border-bottom: 1px solid #e2e8f0; }
        .swot-list li:last-child { border-bottom: none; }
        .action-item { background: #fff; border: 1px solid #e2e8f0; border-radius: 8px; padding: 20px; margin-bottom: 15px; }
        .action-title { font-weight: bold; color: #2563eb; margin-bottom: 10px; }
        .action-meta { display: flex; gap: 20px; margin-top: 10px; font-size: 14px; color: #64748b; }
        .priority-alta { color: #dc2626; font-weight: bold; }
        .priority-media { color: #ea580c; font-weight: bold; }
        .priority-baixa { color: #16a34a; font-weight: bold; }
        .footer { text-align: center; margin-top: 60px; padding-top: 30px; border-top: 1px solid #e2e8f0; color: #64748b; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Dialogics</div>
            <div class="subtitle">Diagnóstico Organizacional</div>
        </div>

        <div class="org-info">
            <h2>{{.OrgName}}</h2>
            <p><strong>Tipo:</strong> {{.OrgType}}</p>
            <p><strong>Data do Diagnóstico:</strong> {{.DiagnosticDate}}</p>
        </div>

        <div class="section">
            <div class="section-title">Pontuação Geral</div>
            <div style="text-align: center;">
                <div class="score-value" style="font-size: 48px;">{{.OverallScore}}</div>
                <div class="score-label">Pontuação Final</div>
                <div class="maturity-badge {{.MaturityClass}}">{{.MaturityLabel}}</div>
            </div>
        </div>

        <div class="section">
            <div class="section-title">Pontuação por Categoria</div>
            <div class="score-section">
                {{range .Scores}}
                <div class="score-card">
                    <div class="score-value">{{.Value}}</div>
                    <div class="score-label">{{.Label}}</div>
                </div>
                {{end}}
            </div>
        </div>

        {{if .Swot}}
        <div class="section">
            <div class="section-title">Análise SWOT</div>
            <div class="swot-grid">
                <div class="swot-item">
                    <div class="swot-title">Forças</div>
                    <ul class="swot-list">
                        {{range .Swot.Strengths}}<li>{{.}}</li>{{else}}<li>Não identificadas</li>{{end}}
                    </ul>
                </div>
                <div class="swot-item">
                    <div class="swot-title">Fraquezas</div>
                    <ul class="swot-list">
                        {{range .Swot.Weaknesses}}<li>{{.}}</li>{{else}}<li>Não identificadas</li>{{end}}
                    </ul>
                </div>
                <div class="swot-item">
                    <div class="swot-title">Oportunidades</div>
                    <ul class="swot-list">
                        {{range .Swot.Opportunities}}<li>{{.}}</li>{{else}}<li>Não identificadas</li>{{end}}
                    </ul>
                </div>
                <div class="swot-item">
                    <div class="swot-title">Ameaças</div>
                    <ul class="swot-list">
                        {{range .Swot.Threats}}<li>{{.}}</li>{{else}}<li>Não identificadas</li>{{end}}
                    </ul>
                </div>
            </div>
        </div>
        {{end}}

        {{if .Actions}}
        <div class="section">
            <div class="section-title">Plano de Ação</div>
            {{range .Actions}}
            <div class="action-item">
                <div class="action-title">{{.Title}}</div>
                <p>{{.Description}}</p>
                <div class="action-meta">
                    <span>Prazo: {{.DeadlineDays}} dias</span>
                    <span class="{{.PriorityClass}}">Prioridade: {{.PriorityLabel}}</span>
                    <span>Categoria: {{.Category}}</span>
                </div>
            </div>
            {{end}}
        </div>
        {{end}}

        {{if .Summary}}
        <div class="section">
            <div class="section-title">Resumo da Análise</div>
            <p style="text-align: justify; line-height: 1.8;">{{.Summary}}</p>
        </div>
        {{end}}

        <div class="footer">
            <p>Relatório gerado pelo Dialogics em {{.GeneratedAt}}</p>
            <p>www.dialogics.com.br</p>
        </div>
    </div>
</body>
</html>
`
