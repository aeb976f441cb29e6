package types

const (
	ActionPriorityHigh   = "high"
	ActionPriorityMedium = "medium"
	ActionPriorityLow    = "low"
)

// SwotAnalysis and ActionPlan are the structured halves of the model's
// qualitative analysis; they are stored on the diagnostic as jsonb.
type SwotAnalysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

type ActionItem struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	DeadlineDays int    `json:"deadline_days"`
	Category     string `json:"category"`
}

type ActionPlan struct {
	Actions []ActionItem `json:"actions"`
}

type Analysis struct {
	Swot       SwotAnalysis `json:"swot"`
	ActionPlan ActionPlan   `json:"actionPlan"`
	Summary    string       `json:"summary"`
}
