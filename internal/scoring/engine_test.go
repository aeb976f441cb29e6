package scoring

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestScoreSingleCategory(t *testing.T) {
	cases := []struct {
		name        string
		responses   []Response
		wantScore   float64
		wantOverall float64
	}{
		{
			name: "all_fives_is_100",
			responses: []Response{
				{Category: "governance", Value: fp(5), Weight: 1},
				{Category: "governance", Value: fp(5), Weight: 3},
				{Category: "governance", Value: fp(5), Weight: 2},
			},
			wantScore:   100,
			wantOverall: 100,
		},
		{
			name: "all_ones_is_20",
			responses: []Response{
				{Category: "finance", Value: fp(1), Weight: 2},
				{Category: "finance", Value: fp(1), Weight: 5},
			},
			wantScore:   20,
			wantOverall: 20,
		},
		{
			name: "weighted_mean",
			// (5*3 + 1*1) / 4 = 4 -> 80
			responses: []Response{
				{Category: "impact", Value: fp(5), Weight: 3},
				{Category: "impact", Value: fp(1), Weight: 1},
			},
			wantScore:   80,
			wantOverall: 80,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Score(tc.responses)
			if !result.Scored {
				t.Fatalf("Score() not scored, want scored")
			}
			if len(result.CategoryScores) != 1 {
				t.Fatalf("got %d categories, want 1", len(result.CategoryScores))
			}
			for cat, got := range result.CategoryScores {
				if math.Abs(got-tc.wantScore) > 1e-9 {
					t.Fatalf("category %s score = %v, want %v", cat, got, tc.wantScore)
				}
			}
			if math.Abs(result.OverallScore-tc.wantOverall) > 1e-9 {
				t.Fatalf("overall = %v, want %v", result.OverallScore, tc.wantOverall)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	responses := []Response{
		{Category: "governance", Value: fp(3), Weight: 2},
		{Category: "governance", Value: fp(4), Weight: 5},
		{Category: "finance", Value: fp(1), Weight: 1},
		{Category: "finance", Value: fp(2), Weight: 4},
		{Category: "impact", Value: fp(5), Weight: 3},
	}
	result := Score(responses)
	if !result.Scored {
		t.Fatal("expected scored result")
	}
	for cat, score := range result.CategoryScores {
		if score < 20 || score > 100 {
			t.Errorf("category %s score %v outside [20,100]", cat, score)
		}
	}
	if result.OverallScore < 20 || result.OverallScore > 100 {
		t.Errorf("overall %v outside [20,100]", result.OverallScore)
	}
}

func TestScoreSkipsUnusableResponses(t *testing.T) {
	responses := []Response{
		{Category: "governance", Value: nil, Weight: 3},
		{Category: "governance", Value: fp(4), Weight: 0},
		{Category: "finance", Value: fp(2), Weight: 2},
	}
	result := Score(responses)
	if !result.Scored {
		t.Fatal("expected scored result")
	}
	if _, ok := result.CategoryScores["governance"]; ok {
		t.Error("governance had no scoreable response, should be absent")
	}
	if got := result.CategoryScores["finance"]; math.Abs(got-40) > 1e-9 {
		t.Errorf("finance = %v, want 40", got)
	}
	// Absent categories do not drag the overall average down.
	if math.Abs(result.OverallScore-40) > 1e-9 {
		t.Errorf("overall = %v, want 40", result.OverallScore)
	}
}

func TestScoreEmptySet(t *testing.T) {
	for _, responses := range [][]Response{
		nil,
		{},
		{{Category: "governance", Value: nil, Weight: 1}},
	} {
		result := Score(responses)
		if result.Scored {
			t.Errorf("Score(%v) scored, want unscored", responses)
		}
		if result.OverallScore != 0 || result.MaturityLevel != "" {
			t.Errorf("unscored result carries values: %+v", result)
		}
	}
}

func TestScoreIdempotent(t *testing.T) {
	responses := []Response{
		{Category: "governance", Value: fp(3), Weight: 2},
		{Category: "finance", Value: fp(4), Weight: 3},
		{Category: "transparency", Value: fp(2), Weight: 5},
	}
	first := Score(responses)
	second := Score(responses)
	if first.OverallScore != second.OverallScore || first.MaturityLevel != second.MaturityLevel {
		t.Fatalf("recomputation differs: %+v vs %+v", first, second)
	}
	for cat, score := range first.CategoryScores {
		if second.CategoryScores[cat] != score {
			t.Fatalf("category %s differs: %v vs %v", cat, score, second.CategoryScores[cat])
		}
	}
}

func TestMaturityLevelThresholds(t *testing.T) {
	cases := []struct {
		overall float64
		want    string
	}{
		{0, "bronze"},
		{20, "bronze"},
		{54.9, "bronze"},
		{55, "silver"},
		{69.9, "silver"},
		{70, "gold"},
		{84.9, "gold"},
		{85, "diamond"},
		{100, "diamond"},
	}
	for _, tc := range cases {
		if got := MaturityLevel(tc.overall); got != tc.want {
			t.Errorf("MaturityLevel(%v) = %q, want %q", tc.overall, got, tc.want)
		}
	}
}

func TestScoreTierEndToEnd(t *testing.T) {
	// All fives everywhere: 100 overall, top tier.
	var responses []Response
	for _, cat := range []string{"governance", "finance", "communication", "impact", "transparency", "fundraising"} {
		responses = append(responses, Response{Category: cat, Value: fp(5), Weight: 3})
	}
	result := Score(responses)
	if result.OverallScore != 100 || result.MaturityLevel != "diamond" {
		t.Fatalf("all fives: got %v/%s, want 100/diamond", result.OverallScore, result.MaturityLevel)
	}

	// All ones everywhere: 20 overall, bottom tier.
	for i := range responses {
		responses[i].Value = fp(1)
	}
	result = Score(responses)
	if result.OverallScore != 20 || result.MaturityLevel != "bronze" {
		t.Fatalf("all ones: got %v/%s, want 20/bronze", result.OverallScore, result.MaturityLevel)
	}
}
