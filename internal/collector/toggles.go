package collector

import "github.com/jonathan/site-signoff/internal/types"

// Toggles records checkbox state as the user interacts with the form.
type Toggles struct {
	state map[string]bool
}

// NewToggles returns an empty toggle set where every question is unanswered.
func NewToggles() *Toggles {
	return &Toggles{state: make(map[string]bool)}
}

// Set records an explicit answer.
func (t *Toggles) Set(question string, checked bool) {
	t.state[question] = checked
}

// Toggle flips the answer for question and returns the new value.
func (t *Toggles) Toggle(question string) bool {
	t.state[question] = !t.state[question]
	return t.state[question]
}

// Checked reports the current value, false when never toggled.
func (t *Toggles) Checked(question string) bool {
	return t.state[question]
}

// Lookup implements Source.
func (t *Toggles) Lookup(question string) (bool, bool) {
	v, ok := t.state[question]
	return v, ok
}

// FromAnswers builds a Source from answers read from a request file.
// When a question appears more than once the last answer wins.
func FromAnswers(answers []types.Answer) Source {
	t := NewToggles()
	for _, a := range answers {
		t.Set(a.Question, a.Checked)
	}
	return t
}
