// Package editor holds the entry form state machine: a draft edited through
// tagged updates, a validation pass on submit and a reset after acceptance.
package editor

import (
	"expenses/internal/core"
)

// Draft is the in-progress form. Amount stays raw text until submit.
type Draft struct {
	Description string
	Amount      string
	Category    core.Category
	Date        string
}

// NewDraft returns the default draft for the given day.
func NewDraft(today string) Draft {
	return Draft{
		Category: core.DefaultCategory,
		Date:     today,
	}
}

// State is everything the editor owns.
type State struct {
	Draft  Draft
	Errors FieldErrors
}

// Valid reports whether no field currently has an error.
func (s State) Valid() bool {
	return len(s.Errors) == 0
}

// Reduce applies u to s and clears the error of the edited field only. s is
// not modified.
func Reduce(s State, u Update) State {
	next := State{Draft: s.Draft, Errors: s.Errors.clone()}
	u.apply(&next.Draft)
	delete(next.Errors, u.Field())
	return next
}

// SubmitFunc receives the normalized payload of an accepted submission.
type SubmitFunc func(core.ExpenseInput)

// Option configures an Editor.
type Option func(*Editor)

// WithClock overrides how the default date is computed.
func WithClock(today func() string) Option {
	return func(e *Editor) {
		e.today = today
	}
}

// Editor is the stateful form. It is not safe for concurrent use; the owner
// serializes access.
type Editor struct {
	state    State
	today    func() string
	onSubmit SubmitFunc
}

// New returns an editor with a default draft.
func New(onSubmit SubmitFunc, opts ...Option) *Editor {
	e := &Editor{
		today:    core.Today,
		onSubmit: onSubmit,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset()
	return e
}

// State returns a copy of the current draft and errors.
func (e *Editor) State() State {
	return State{Draft: e.state.Draft, Errors: e.state.Errors.clone()}
}

// Apply runs one field update through Reduce.
func (e *Editor) Apply(u Update) {
	e.state = Reduce(e.state, u)
}

// Submit validates a snapshot of the draft. On failure the full error map is
// kept, the draft is left untouched and false is returned. On success the
// callback fires once with the normalized payload and the draft resets.
func (e *Editor) Submit() bool {
	payload, errs := normalize(e.state.Draft)
	if len(errs) > 0 {
		e.state.Errors = errs
		return false
	}
	if e.onSubmit != nil {
		e.onSubmit(payload)
	}
	e.reset()
	return true
}

func (e *Editor) reset() {
	e.state = State{Draft: NewDraft(e.today()), Errors: FieldErrors{}}
}
