package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dialogics/diagnostics-backend/internal/clients/gemini"
	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

// AnalysisInput is everything the qualitative analysis sees: the computed
// figures plus the raw responses they came from.
type AnalysisInput struct {
	CategoryScores map[string]float64
	OverallScore   float64
	MaturityLevel  string
	Responses      []*types.DiagnosticResponse
}

// AnalysisService produces the SWOT, action plan and summary for a scored
// diagnostic. Analyze cannot fail: when the model is unreachable or returns
// something unusable, the fixed fallback analysis is returned instead.
type AnalysisService interface {
	Analyze(ctx context.Context, input AnalysisInput) *types.Analysis
}

type analysisService struct {
	log    *logger.Logger
	gemini gemini.Client
}

func NewAnalysisService(log *logger.Logger, geminiClient gemini.Client) AnalysisService {
	return &analysisService{
		log:    log.With("service", "AnalysisService"),
		gemini: geminiClient,
	}
}

func (as *analysisService) Analyze(ctx context.Context, input AnalysisInput) *types.Analysis {
	if as.gemini == nil {
		as.log.Warn("No generative client configured, using fallback analysis")
		return FallbackAnalysis()
	}

	prompt := BuildPrompt(input)

	raw, err := as.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		as.log.Error("Model call failed, using fallback analysis", "error", err)
		return FallbackAnalysis()
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		as.log.Error("Model response unusable, using fallback analysis", "error", err)
		return FallbackAnalysis()
	}
	return analysis
}

// BuildPrompt renders the analysis prompt: category scores to one decimal,
// the overall figure and tier, then every response on its own line.
func BuildPrompt(input AnalysisInput) string {
	categories := make([]string, 0, len(input.CategoryScores))
	for cat := range input.CategoryScores {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var scoreLines strings.Builder
	for _, cat := range categories {
		fmt.Fprintf(&scoreLines, "- %s: %.1f\n", cat, input.CategoryScores[cat])
	}

	var responseLines strings.Builder
	for _, r := range input.Responses {
		if r.AnswerValue != nil {
			fmt.Fprintf(&responseLines, "%s - %s: %g/5\n", r.Category, r.QuestionText, *r.AnswerValue)
			continue
		}
		answer := ""
		if r.AnswerText != nil {
			answer = *r.AnswerText
		}
		fmt.Fprintf(&responseLines, "%s - %s: %s\n", r.Category, r.QuestionText, answer)
	}

	return fmt.Sprintf(`Analise os seguintes resultados de diagnóstico organizacional de uma ONG:

Pontuações por categoria (0-100):
%s
Pontuação geral: %.1f
Nível de maturidade: %s

Respostas detalhadas:
%s
Por favor, forneça:

1. ANÁLISE SWOT (formato JSON):
{
  "strengths": ["força 1", "força 2", ...],
  "weaknesses": ["fraqueza 1", "fraqueza 2", ...],
  "opportunities": ["oportunidade 1", "oportunidade 2", ...],
  "threats": ["ameaça 1", "ameaça 2", ...]
}

2. PLANO DE AÇÃO (formato JSON):
{
  "actions": [
    {
      "title": "Título da ação",
      "description": "Descrição detalhada",
      "priority": "high|medium|low",
      "deadline_days": 60,
      "category": "categoria relacionada"
    }
  ]
}

3. RESUMO DA ANÁLISE (texto corrido de 2-3 parágrafos sobre os principais achados e recomendações)

Responda APENAS com JSON válido no formato:
{
  "swot": { ... },
  "actionPlan": { ... },
  "summary": "texto do resumo"
}
`, scoreLines.String(), input.OverallScore, input.MaturityLevel, responseLines.String())
}

// extractJSON cuts the window from the first { to the last } so that prose
// around the JSON object does not break decoding.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func parseAnalysis(raw string) (*types.Analysis, error) {
	window, ok := extractJSON(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var analysis types.Analysis
	if err := json.Unmarshal([]byte(window), &analysis); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	// Missing sub-keys degrade to empty lists rather than nil.
	if analysis.Swot.Strengths == nil {
		analysis.Swot.Strengths = []string{}
	}
	if analysis.Swot.Weaknesses == nil {
		analysis.Swot.Weaknesses = []string{}
	}
	if analysis.Swot.Opportunities == nil {
		analysis.Swot.Opportunities = []string{}
	}
	if analysis.Swot.Threats == nil {
		analysis.Swot.Threats = []string{}
	}
	if analysis.ActionPlan.Actions == nil {
		analysis.ActionPlan.Actions = []types.ActionItem{}
	}
	return &analysis, nil
}

// FallbackAnalysis is the fixed analysis used whenever the model path fails.
func FallbackAnalysis() *types.Analysis {
	return &types.Analysis{
		Swot: types.SwotAnalysis{
			Strengths:     []string{"Organização comprometida com sua missão"},
			Weaknesses:    []string{"Necessita melhorias em alguns processos"},
			Opportunities: []string{"Potencial de crescimento e impacto"},
			Threats:       []string{"Desafios do setor social"},
		},
		ActionPlan: types.ActionPlan{
			Actions: []types.ActionItem{
				{
					Title:        "Revisar processos internos",
					Description:  "Avaliar e otimizar processos organizacionais",
					Priority:     types.ActionPriorityHigh,
					DeadlineDays: 60,
					Category:     "governance",
				},
			},
		},
		Summary: "A organização demonstra potencial significativo, com oportunidades claras de melhoria em áreas específicas identificadas no diagnóstico.",
	}
}
