package types

// Answer is the recorded state of a single checklist question.
type Answer struct {
	Question string `json:"question"`
	Checked  bool   `json:"checked"`
}

// AnswerSet is the ordered list of answers for one checklist, in catalog order.
type AnswerSet []Answer

// Lookup finds the answer for a question by exact text match.
func (s AnswerSet) Lookup(question string) (checked bool, ok bool) {
	for _, a := range s {
		if a.Question == question {
			return a.Checked, true
		}
	}
	return false, false
}

// Passed counts the checked answers.
func (s AnswerSet) Passed() int {
	n := 0
	for _, a := range s {
		if a.Checked {
			n++
		}
	}
	return n
}

// Questions returns the question texts in order.
func (s AnswerSet) Questions() []string {
	out := make([]string, len(s))
	for i, a := range s {
		out[i] = a.Question
	}
	return out
}
