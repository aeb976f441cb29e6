package services

import (
	"fmt"

	"github.com/dialogics/diagnostics-backend/internal/types"
)

// formatScore renders a nullable score the way the report and notifications
// display it: one decimal, "0.0" when the column is NULL.
func formatScore(v *float64) string {
	if v == nil {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", *v)
}

// maturityDisplay maps the stored tier onto its Portuguese display name.
var maturityDisplay = map[string]string{
	types.MaturityBronze:  "bronze",
	types.MaturitySilver:  "prata",
	types.MaturityGold:    "ouro",
	types.MaturityDiamond: "diamante",
}

func maturityLabel(level *string) string {
	if level == nil {
		return "bronze"
	}
	if display, ok := maturityDisplay[*level]; ok {
		return display
	}
	return *level
}
