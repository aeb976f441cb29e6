package catalog

// Modules returns the conversational questionnaire: seven modules asked in
// order, one question per turn. The module id is the persisted category.
func Modules() []Module {
	return chatModules
}

var chatModules = []Module{
	{
		ID:          "identificacao",
		Name:        "Identificação Básica",
		Description: "Vamos conhecer sua organização",
		Questions: []Question{
			{Key: "org_name", Text: "Qual é o nome completo da sua organização?", Type: QuestionText, Weight: 1},
			{Key: "org_mission", Text: "Em poucas palavras, qual é a missão ou propósito da organização?", Type: QuestionText, Weight: 1},
			{Key: "org_segment", Text: "Em quais segmentos sua organização atua?", Type: QuestionMultiSelect,
				Options: []string{"Saúde", "Educação", "Cultura", "Meio ambiente", "Direitos", "Esporte", "Assistência social", "Outro"}, Weight: 2},
			{Key: "org_digital_presence", Text: "Sua organização tem presença digital?", Type: QuestionSelect,
				Options: []string{"Sim, site e redes sociais", "Apenas redes sociais", "Apenas site", "Não tem presença digital"}, Weight: 2},
			{Key: "org_legal_representative", Text: "Você é o representante legal da organização?", Type: QuestionSelect,
				Options: []string{"Sim", "Não, sou colaborador", "Não, sou voluntário", "Não, sou conselheiro"}, Weight: 1},
		},
	},
	{
		ID:          "legal",
		Name:        "Legal & Regulatória",
		Description: "Situação jurídica e conformidade",
		Questions: []Question{
			{Key: "legal_cnpj", Text: "A organização possui CNPJ ativo?", Type: QuestionSelect,
				Options: []string{"Sim", "Não"}, Weight: 5},
			{Key: "legal_statute", Text: "A organização possui estatuto social?", Type: QuestionSelect,
				Options: []string{"Sim, atualizado", "Sim, mas desatualizado", "Não possui"}, Weight: 5},
			{Key: "legal_certificates", Text: "A OSC mantém todas as licenças e certidões necessárias em dia?", Type: QuestionSelect,
				Options: []string{"Sim", "Parcialmente", "Não"}, Weight: 5},
			{Key: "legal_fiscal_situation", Text: "Como está a situação fiscal e tributária?", Type: QuestionSelect,
				Options: []string{"Regular, sem pendências", "Parcialmente regular", "Com pendências relevantes"}, Weight: 5},
			{Key: "legal_transparency", Text: "A organização publica relatórios?", Type: QuestionSelect,
				Options: []string{"Sim, financeiros e de atividades", "Apenas financeiros", "Apenas de atividades", "Não publica"}, Weight: 4},
			{Key: "legal_lgpd", Text: "A organização atende à LGPD no tratamento de dados?", Type: QuestionSelect,
				Options: []string{"Sim, plenamente", "Parcialmente", "Não"}, Weight: 4},
			{Key: "legal_juridical_security", Text: "Como a OSC garante sua segurança jurídica?", Type: QuestionSelect,
				Options: []string{"Advogado permanente", "Consultas preventivas", "Atua apenas reativamente", "Não possui suporte jurídico"}, Weight: 3},
			{Key: "legal_accounting_security", Text: "Como a OSC garante sua segurança contábil e fiscal?", Type: QuestionSelect,
				Options: []string{"Contador/assessoria permanente", "Consultas preventivas", "Atua apenas reativamente", "Não possui suporte"}, Weight: 4},
		},
	},
	{
		ID:          "modelo_negocio",
		Name:        "Modelo de Negócio & Impacto",
		Description: "Atividades e impacto social",
		Questions: []Question{
			{Key: "business_activities", Text: "Quais são as principais atividades realizadas pela OSC?", Type: QuestionText, Weight: 3},
			{Key: "business_direct_impact", Text: "Aproximadamente quantas pessoas são impactadas diretamente?", Type: QuestionNumber, Weight: 3},
			{Key: "business_beneficiaries", Text: "Qual o perfil dos beneficiários atendidos?", Type: QuestionMultiSelect,
				Options: []string{"Crianças/adolescentes", "Jovens", "Adultos", "Idosos", "Mulheres", "Pessoas com deficiência", "Comunidades tradicionais", "Outro"}, Weight: 2},
			{Key: "business_problems", Text: "Quais os principais problemas que a OSC busca resolver?", Type: QuestionText, Weight: 3},
			{Key: "business_stakeholders", Text: "Com quais públicos a OSC se relaciona?", Type: QuestionMultiSelect,
				Options: []string{"Beneficiários", "Doadores PF", "Doadores PJ", "Setor público", "Investidores", "Imprensa", "Voluntários", "Parceiros OSC"}, Weight: 2},
			{Key: "business_partnerships", Text: "A OSC possui parcerias com:", Type: QuestionMultiSelect,
				Options: []string{"Setor Público", "Setor Privado", "Outras OSCs", "Não possui"}, Weight: 4},
			{Key: "business_social_benefits", Text: "Benefícios oferecidos à sociedade em geral:", Type: QuestionMultiSelect,
				Options: []string{"Redução de desigualdades", "Inovação social", "Proteção ambiental", "Direitos garantidos", "Equilíbrio socioeconômico", "Outro"}, Weight: 4},
		},
	},
	{
		ID:          "gestao_governanca",
		Name:        "Gestão & Governança",
		Description: "Planejamento e estrutura organizacional",
		Questions: []Question{
			{Key: "governance_strategic_planning", Text: "A OSC realiza planejamento estratégico?", Type: QuestionSelect,
				Options: []string{"Sim, todos conhecem", "Sim, mas parcialmente divulgado", "Sim, mas pouco conhecido", "Não realiza"}, Weight: 6},
			{Key: "governance_planning_construction", Text: "Como o planejamento é construído?", Type: QuestionSelect,
				Options: []string{"De forma coletiva, com colaboradores/voluntários", "Apenas pelas lideranças"}, Weight: 4},
			{Key: "governance_mission_vision", Text: "A OSC possui missão, visão e valores definidos?", Type: QuestionSelect,
				Options: []string{"Sim, todos conhecem", "Sim, mas parcialmente divulgados", "Sim, mas não conhecidos", "Não possui"}, Weight: 5},
			{Key: "governance_leadership", Text: "Como você descreveria a liderança da OSC?", Type: QuestionMultiSelect,
				Options: []string{"Participativa", "Autoritária", "Democrática", "Técnica", "Carismática", "Outro"}, Weight: 4},
			{Key: "governance_culture", Text: "Como você descreveria a cultura organizacional?", Type: QuestionMultiSelect,
				Options: []string{"Inovadora", "Colaborativa", "Conservadora", "Ágil", "Assistencialista", "De diversidade e equidade", "Outro"}, Weight: 4},
			{Key: "governance_team_participation", Text: "A equipe participa da criação de soluções?", Type: QuestionSelect,
				Options: []string{"Sempre", "Frequentemente", "Raramente", "Nunca"}, Weight: 3},
			{Key: "governance_decision_communication", Text: "Como as decisões são compartilhadas com a equipe?", Type: QuestionMultiSelect,
				Options: []string{"Reuniões", "Comunicados digitais", "Relatórios impressos", "Não são compartilhadas", "Outro"}, Weight: 3},
			{Key: "governance_processes", Text: "A OSC possui processos internos documentados?", Type: QuestionSelect,
				Options: []string{"Sim, todos documentados", "Parcialmente documentados", "Poucos documentados", "Não possui"}, Weight: 6},
		},
	},
	{
		ID:          "sustentabilidade",
		Name:        "Sustentabilidade Financeira & Comunicação",
		Description: "Recursos financeiros e comunicação",
		Questions: []Question{
			{Key: "sustainability_funding_sources", Text: "Quais são as principais fontes de recursos da OSC?", Type: QuestionMultiSelect,
				Options: []string{"Doações individuais", "Editais públicos", "Editais privados", "Venda de produtos/serviços", "Eventos", "Parcerias", "Outro"}, Weight: 4},
			{Key: "sustainability_financial_planning", Text: "A OSC realiza planejamento financeiro?", Type: QuestionSelect,
				Options: []string{"Sim, anual detalhado", "Sim, básico", "Parcialmente", "Não realiza"}, Weight: 3},
			{Key: "sustainability_communication_strategy", Text: "A organização possui estratégia de comunicação definida?", Type: QuestionSelect,
				Options: []string{"Sim, formal e estruturada", "Sim, informal", "Parcialmente", "Não possui"}, Weight: 3},
			{Key: "sustainability_social_media", Text: "Como está a presença da OSC nas redes sociais?", Type: QuestionSelect,
				Options: []string{"Muito ativa e engajada", "Ativa regularmente", "Pouco ativa", "Não tem presença"}, Weight: 2},
			{Key: "sustainability_stakeholder_communication", Text: "Há comunicação regular com stakeholders?", Type: QuestionSelect,
				Options: []string{"Sim, sistemática", "Sim, eventual", "Raramente", "Não há"}, Weight: 2},
		},
	},
	{
		ID:          "performance",
		Name:        "Performance & Monitoramento",
		Description: "Medição de resultados e monitoramento",
		Questions: []Question{
			{Key: "performance_indicators", Text: "Existem indicadores para medir o impacto?", Type: QuestionSelect,
				Options: []string{"Sim, bem definidos", "Sim, básicos", "Poucos indicadores", "Não existem"}, Weight: 4},
			{Key: "performance_monitoring", Text: "Há monitoramento regular das atividades?", Type: QuestionSelect,
				Options: []string{"Sim, sistemático", "Sim, eventual", "Raramente", "Não há"}, Weight: 3},
			{Key: "performance_evaluation", Text: "São realizadas avaliações de impacto?", Type: QuestionSelect,
				Options: []string{"Sim, regularmente", "Sim, eventualmente", "Raramente", "Nunca"}, Weight: 4},
			{Key: "performance_beneficiary_feedback", Text: "A OSC coleta feedback dos beneficiários?", Type: QuestionSelect,
				Options: []string{"Sim, sistematicamente", "Sim, eventualmente", "Raramente", "Não coleta"}, Weight: 3},
		},
	},
	{
		ID:          "futuro",
		Name:        "Futuro & Escalabilidade",
		Description: "Inovação e crescimento sustentável",
		Questions: []Question{
			{Key: "future_innovation", Text: "A OSC desenvolve projetos inovadores?", Type: QuestionSelect,
				Options: []string{"Sim, constantemente", "Sim, eventualmente", "Raramente", "Não desenvolve"}, Weight: 4},
			{Key: "future_scalability", Text: "A OSC tem capacidade de expandir suas atividades?", Type: QuestionSelect,
				Options: []string{"Sim, alta capacidade", "Sim, média capacidade", "Baixa capacidade", "Não tem capacidade"}, Weight: 4},
			{Key: "future_sustainability_plan", Text: "Existe um plano de sustentabilidade de longo prazo?", Type: QuestionSelect,
				Options: []string{"Sim, bem estruturado", "Sim, básico", "Em desenvolvimento", "Não existe"}, Weight: 3},
			{Key: "future_partnerships_growth", Text: "A OSC busca ativamente novas parcerias?", Type: QuestionSelect,
				Options: []string{"Sim, constantemente", "Sim, eventualmente", "Raramente", "Não busca"}, Weight: 3},
		},
	},
}
