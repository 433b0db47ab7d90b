// Package session drives one sign-off from checklist selection to the saved document.
package session

import "fmt"

// State is a stage of the sign-off flow.
type State int

const (
	SelectingType State = iota
	CollectingAnswers
	Rendering
	Done
)

func (s State) String() string {
	switch s {
	case SelectingType:
		return "selecting type"
	case CollectingAnswers:
		return "collecting answers"
	case Rendering:
		return "rendering"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TransitionError is returned when an action is not allowed in the current state.
type TransitionError struct {
	Action string
	From   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Action, e.From)
}
