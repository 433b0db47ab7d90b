package collector

import (
	"testing"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_CatalogOrderRegardlessOfToggleOrder(t *testing.T) {
	c := checklist.MustDefault()
	for _, name := range c.Types() {
		t.Run(name, func(t *testing.T) {
			sections, err := c.Sections(name)
			require.NoError(t, err)
			questions := checklist.Flatten(sections)

			// Toggle in reverse order.
			toggles := NewToggles()
			for i := len(questions) - 1; i >= 0; i-- {
				toggles.Toggle(questions[i])
			}

			set := Collect(sections, toggles)
			assert.Equal(t, questions, set.Questions())
			assert.Equal(t, len(questions), set.Passed())
		})
	}
}

func TestCollect_PartialCompletionDefaultsFalse(t *testing.T) {
	sections := []checklist.Section{
		{Title: "A", Questions: []string{"q1", "q2"}},
		{Title: "B", Questions: []string{"q3"}},
	}

	toggles := NewToggles()
	toggles.Set("q2", true)

	set := Collect(sections, toggles)
	assert.Equal(t, types.AnswerSet{
		{Question: "q1", Checked: false},
		{Question: "q2", Checked: true},
		{Question: "q3", Checked: false},
	}, set)

	assert.Equal(t, []string{"q1", "q3"}, Unanswered(sections, toggles))
}

func TestCollect_NilSource(t *testing.T) {
	sections := []checklist.Section{{Title: "A", Questions: []string{"q1", "q2"}}}

	set := Collect(sections, nil)
	require.Len(t, set, 2)
	assert.Equal(t, 0, set.Passed())
	assert.Equal(t, []string{"q1", "q2"}, Unanswered(sections, nil))
}

func TestToggles(t *testing.T) {
	toggles := NewToggles()

	_, ok := toggles.Lookup("q")
	assert.False(t, ok)
	assert.False(t, toggles.Checked("q"))

	assert.True(t, toggles.Toggle("q"))
	assert.False(t, toggles.Toggle("q"))

	v, ok := toggles.Lookup("q")
	assert.True(t, ok)
	assert.False(t, v)
}

func TestFromAnswers_DropsExtraneousAndDuplicates(t *testing.T) {
	sections := []checklist.Section{{Title: "A", Questions: []string{"q1", "q2"}}}
	answers := []types.Answer{
		{Question: "bogus", Checked: true},
		{Question: "q2", Checked: true},
		{Question: "q1", Checked: true},
		{Question: "q1", Checked: false},
	}

	set := Collect(sections, FromAnswers(answers))
	assert.Equal(t, types.AnswerSet{
		{Question: "q1", Checked: false},
		{Question: "q2", Checked: true},
	}, set)

	assert.Equal(t, []string{"bogus"}, Extraneous(sections, answers))
}
