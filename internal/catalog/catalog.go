package catalog

import "math"

const (
	QuestionScale       = "scale"
	QuestionText        = "text"
	QuestionSelect      = "select"
	QuestionMultiSelect = "multiselect"
	QuestionNumber      = "number"
)

// Question is one catalog entry. Linear questions are all scale-typed and
// answered 1-5 directly; chat questions carry a type and, for choice types,
// an option list ordered best-first.
type Question struct {
	Key     string
	Text    string
	Type    string
	Options []string
	Weight  float64
}

// Category groups the linear flow's questions under one scored category id.
type Category struct {
	ID          string
	Name        string
	Description string
	Questions   []Question
}

// Module groups the conversational flow's questions; the module id doubles as
// the persisted category string.
type Module struct {
	ID          string
	Name        string
	Description string
	Questions   []Question
}

// ScoreCategories are the six category ids with dedicated score columns on
// the diagnostic record.
func ScoreCategories() []string {
	return []string{"governance", "finance", "communication", "impact", "transparency", "fundraising"}
}

// OptionValue maps a choice at index idx of an n-option list onto the 1-5
// ordinal scale. Options are authored best-first, so index 0 is always 5 and
// the last index is always 1.
func OptionValue(idx, n int) float64 {
	if n <= 1 || idx <= 0 {
		return 5
	}
	if idx >= n {
		idx = n - 1
	}
	return 5 - math.Round(4*float64(idx)/float64(n-1))
}

// MultiSelectValue maps the number of selected options onto the 1-5 scale by
// selected fraction. Zero selections score 1.
func MultiSelectValue(selected, total int) float64 {
	if total <= 0 || selected <= 0 {
		return 1
	}
	if selected > total {
		selected = total
	}
	v := 1 + math.Round(4*float64(selected)/float64(total))
	if v > 5 {
		v = 5
	}
	return v
}

// OptionIndex resolves an answer string against a question's option list.
func OptionIndex(q Question, answer string) (int, bool) {
	for i, opt := range q.Options {
		if opt == answer {
			return i, true
		}
	}
	return 0, false
}

func (c Category) Question(key string) (Question, bool) {
	return findQuestion(c.Questions, key)
}

func (m Module) Question(key string) (Question, bool) {
	return findQuestion(m.Questions, key)
}

func findQuestion(qs []Question, key string) (Question, bool) {
	for _, q := range qs {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// LinearQuestion looks a question up across every linear category, returning
// the owning category id.
func LinearQuestion(key string) (Question, string, bool) {
	for _, cat := range Categories() {
		if q, ok := cat.Question(key); ok {
			return q, cat.ID, true
		}
	}
	return Question{}, "", false
}

func TotalLinearQuestions() int {
	n := 0
	for _, cat := range Categories() {
		n += len(cat.Questions)
	}
	return n
}

func TotalChatQuestions() int {
	n := 0
	for _, m := range Modules() {
		n += len(m.Questions)
	}
	return n
}
