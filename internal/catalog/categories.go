package catalog

// Categories returns the linear questionnaire: six categories, each answered
// on the fixed 1-5 scale. Weights are per question and pool per category.
func Categories() []Category {
	return linearCategories
}

var linearCategories = []Category{
	{
		ID:          "governance",
		Name:        "Governança",
		Description: "Estrutura organizacional, estatuto e gestão",
		Questions: []Question{
			{Key: "governance_statute", Text: "A organização possui estatuto atualizado e registrado?", Type: QuestionScale, Weight: 1.5},
			{Key: "governance_board", Text: "Existe um conselho administrativo ativo e participativo?", Type: QuestionScale, Weight: 1.3},
			{Key: "governance_meetings", Text: "São realizadas reuniões periódicas com atas documentadas?", Type: QuestionScale, Weight: 1.0},
			{Key: "governance_policies", Text: "A organização possui políticas internas claras?", Type: QuestionScale, Weight: 1.2},
			{Key: "governance_compliance", Text: "Há cumprimento das obrigações legais e regulamentares?", Type: QuestionScale, Weight: 1.4},
		},
	},
	{
		ID:          "finance",
		Name:        "Finanças",
		Description: "Gestão financeira, captação e prestação de contas",
		Questions: []Question{
			{Key: "finance_accounting", Text: "A organização mantém contabilidade formal atualizada?", Type: QuestionScale, Weight: 1.5},
			{Key: "finance_budget", Text: "Existe planejamento orçamentário anual?", Type: QuestionScale, Weight: 1.3},
			{Key: "finance_controls", Text: "Há controles internos para movimentação financeira?", Type: QuestionScale, Weight: 1.4},
			{Key: "finance_fundraising", Text: "A organização possui estratégias de captação de recursos?", Type: QuestionScale, Weight: 1.2},
			{Key: "finance_reporting", Text: "São produzidos relatórios financeiros periódicos?", Type: QuestionScale, Weight: 1.3},
		},
	},
	{
		ID:          "communication",
		Name:        "Comunicação",
		Description: "Comunicação externa, marketing e relacionamento",
		Questions: []Question{
			{Key: "communication_website", Text: "A organização possui site ou página oficial atualizada?", Type: QuestionScale, Weight: 1.2},
			{Key: "communication_social", Text: "Há presença ativa nas redes sociais?", Type: QuestionScale, Weight: 1.0},
			{Key: "communication_materials", Text: "Existem materiais de comunicação profissionais?", Type: QuestionScale, Weight: 1.1},
			{Key: "communication_strategy", Text: "A organização possui estratégia de comunicação definida?", Type: QuestionScale, Weight: 1.3},
			{Key: "communication_stakeholders", Text: "Há comunicação regular com stakeholders?", Type: QuestionScale, Weight: 1.2},
		},
	},
	{
		ID:          "impact",
		Name:        "Impacto",
		Description: "Medição de resultados e impacto social",
		Questions: []Question{
			{Key: "impact_mission", Text: "A missão e objetivos estão claramente definidos?", Type: QuestionScale, Weight: 1.4},
			{Key: "impact_indicators", Text: "Existem indicadores para medir o impacto?", Type: QuestionScale, Weight: 1.3},
			{Key: "impact_monitoring", Text: "Há monitoramento regular das atividades?", Type: QuestionScale, Weight: 1.2},
			{Key: "impact_beneficiaries", Text: "O perfil dos beneficiários é bem definido?", Type: QuestionScale, Weight: 1.1},
			{Key: "impact_evaluation", Text: "São realizadas avaliações de impacto?", Type: QuestionScale, Weight: 1.5},
		},
	},
	{
		ID:          "transparency",
		Name:        "Transparência",
		Description: "Prestação de contas e transparência das ações",
		Questions: []Question{
			{Key: "transparency_reports", Text: "A organização publica relatórios de atividades?", Type: QuestionScale, Weight: 1.3},
			{Key: "transparency_financial", Text: "As informações financeiras são transparentes?", Type: QuestionScale, Weight: 1.4},
			{Key: "transparency_governance", Text: "A estrutura de governança é pública?", Type: QuestionScale, Weight: 1.2},
			{Key: "transparency_projects", Text: "Os projetos e resultados são divulgados?", Type: QuestionScale, Weight: 1.1},
			{Key: "transparency_stakeholders", Text: "Há canais para feedback dos stakeholders?", Type: QuestionScale, Weight: 1.2},
		},
	},
	{
		ID:          "fundraising",
		Name:        "Captação de Recursos",
		Description: "Estratégias e processos de captação",
		Questions: []Question{
			{Key: "fundraising_strategy", Text: "Existe uma estratégia estruturada de captação?", Type: QuestionScale, Weight: 1.4},
			{Key: "fundraising_diversification", Text: "As fontes de recursos são diversificadas?", Type: QuestionScale, Weight: 1.3},
			{Key: "fundraising_projects", Text: "Há elaboração profissional de projetos?", Type: QuestionScale, Weight: 1.2},
			{Key: "fundraising_relationships", Text: "Existe relacionamento com doadores/financiadores?", Type: QuestionScale, Weight: 1.3},
			{Key: "fundraising_sustainability", Text: "A captação garante sustentabilidade financeira?", Type: QuestionScale, Weight: 1.5},
		},
	},
}
