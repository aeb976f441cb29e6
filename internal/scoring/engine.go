// Package scoring turns a diagnostic's normalized response set into category
// scores, an overall score and a maturity level. It is pure: no storage, no
// clock, no external calls, and recomputing over the same input always yields
// the same result.
package scoring

// Response is the slice of a stored diagnostic response that scoring needs.
// Value is nil for answers that do not map onto the 1-5 scale (free text,
// raw numbers); those rows are persisted but never scored.
type Response struct {
	Category string
	Value    *float64
	Weight   float64
}

// Result holds every computed figure. Scored is false when no response in
// the set carried a usable value, in which case the other fields are zero.
type Result struct {
	CategoryScores map[string]float64
	OverallScore   float64
	MaturityLevel  string
	Scored         bool
}

// Score computes, per category, 20 * (Σ value*weight) / (Σ weight) over the
// scoreable responses of that category, rescaling the 1-5 ordinal average to
// 0-100. Categories without a scoreable response are absent from the map and
// do not drag the overall average down; the overall score is the unweighted
// mean of the category scores that exist.
func Score(responses []Response) Result {
	type acc struct {
		weighted float64
		weight   float64
	}
	byCategory := map[string]*acc{}
	for _, r := range responses {
		if r.Value == nil || r.Weight <= 0 {
			continue
		}
		a := byCategory[r.Category]
		if a == nil {
			a = &acc{}
			byCategory[r.Category] = a
		}
		a.weighted += *r.Value * r.Weight
		a.weight += r.Weight
	}

	scores := make(map[string]float64, len(byCategory))
	total := 0.0
	for cat, a := range byCategory {
		if a.weight <= 0 {
			continue
		}
		s := 20 * a.weighted / a.weight
		scores[cat] = s
		total += s
	}
	if len(scores) == 0 {
		return Result{}
	}

	overall := total / float64(len(scores))
	return Result{
		CategoryScores: scores,
		OverallScore:   overall,
		MaturityLevel:  MaturityLevel(overall),
		Scored:         true,
	}
}

// MaturityLevel maps an overall score onto the four ordered tiers. Checked
// top-down so the inclusive lower bounds cannot overlap.
func MaturityLevel(overall float64) string {
	switch {
	case overall >= 85:
		return "diamond"
	case overall >= 70:
		return "gold"
	case overall >= 55:
		return "silver"
	default:
		return "bronze"
	}
}
