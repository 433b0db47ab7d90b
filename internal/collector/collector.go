// Package collector turns user answers into a catalog-ordered answer set.
package collector

import (
	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/types"
)

// Source reports the user's answer for a question.
// ok is false when the question was never answered.
type Source interface {
	Lookup(question string) (checked bool, ok bool)
}

// Collect walks sections in catalog order and records one answer per question.
// Questions the source never answered are recorded as unchecked, so the result
// always has exactly one entry per catalog question regardless of the order
// in which the user answered them.
func Collect(sections []checklist.Section, src Source) types.AnswerSet {
	questions := checklist.Flatten(sections)
	set := make(types.AnswerSet, 0, len(questions))
	for _, q := range questions {
		checked := false
		if src != nil {
			checked, _ = src.Lookup(q)
		}
		set = append(set, types.Answer{Question: q, Checked: checked})
	}
	return set
}

// Unanswered lists the questions of sections that src has no answer for.
func Unanswered(sections []checklist.Section, src Source) []string {
	var missing []string
	for _, q := range checklist.Flatten(sections) {
		if src == nil {
			missing = append(missing, q)
			continue
		}
		if _, ok := src.Lookup(q); !ok {
			missing = append(missing, q)
		}
	}
	return missing
}

// Extraneous lists answers whose question does not belong to sections.
func Extraneous(sections []checklist.Section, answers []types.Answer) []string {
	known := make(map[string]bool)
	for _, q := range checklist.Flatten(sections) {
		known[q] = true
	}
	var extra []string
	for _, a := range answers {
		if !known[a.Question] {
			extra = append(extra, a.Question)
		}
	}
	return extra
}
