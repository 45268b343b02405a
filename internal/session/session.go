// Package session owns the per-browser state: the authoritative expense
// collection, the list filter selection and the entry editor. All mutations of
// one session are serialized under its mutex and applied in arrival order.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"expenses/internal/core"
	"expenses/internal/editor"
)

var ErrNotFound = errors.New("expense not found")

// Session is one browser's in-memory workspace.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	expenses    []core.Expense
	nextID      int64
	filter      core.Filter
	editor      *editor.Editor
	lastCreated core.Expense
}

func newSession(id string, now time.Time, editorOpts ...editor.Option) *Session {
	s := &Session{ID: id, CreatedAt: now, nextID: 1}
	s.editor = editor.New(func(in core.ExpenseInput) {
		s.lastCreated = s.appendLocked(in)
	}, editorOpts...)
	return s
}

// Expenses returns a copy of the collection in insertion order.
func (s *Session) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...)
}

// Len returns the collection size.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

// Append validates in, assigns the next ID and appends it.
func (s *Session) Append(in core.ExpenseInput) (core.Expense, error) {
	if err := in.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("append expense: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(in), nil
}

func (s *Session) appendLocked(in core.ExpenseInput) core.Expense {
	e := in.WithID(s.nextID)
	s.nextID++
	s.expenses = append(s.expenses, e)
	return e
}

// Delete removes the expense with the given id, keeping the order of the rest.
func (s *Session) Delete(id int64) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i:i], s.expenses[i+1:]...)
			return e, nil
		}
	}
	return core.Expense{}, fmt.Errorf("delete expense %d: %w", id, ErrNotFound)
}

// Filter returns the current list selection.
func (s *Session) Filter() core.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter changes the list selection. The collection is untouched.
func (s *Session) SetFilter(f core.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Summary derives the visible subset and total for the current selection.
func (s *Session) Summary() core.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Summarize(s.expenses, s.filter)
}

// EditorState returns a copy of the draft and its errors.
func (s *Session) EditorState() editor.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.State()
}

// ApplyUpdate runs one field edit through the editor.
func (s *Session) ApplyUpdate(u editor.Update) editor.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.Apply(u)
	return s.editor.State()
}

// View is a consistent snapshot of everything the page renders.
type View struct {
	Expenses []core.Expense
	Filter   core.Filter
	Editor   editor.State
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Expenses: append([]core.Expense(nil), s.expenses...),
		Filter:   s.filter,
		Editor:   s.editor.State(),
	}
}

// SubmitResult reports the outcome of an editor submission.
type SubmitResult struct {
	Accepted bool
	Created  core.Expense
	State    editor.State
}

// Submit replaces the draft with the given updates, then runs the editor's
// submit. Accepted payloads are appended to the collection before Submit
// returns.
func (s *Session) Submit(updates ...editor.Update) SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range updates {
		s.editor.Apply(u)
	}
	res := SubmitResult{Accepted: s.editor.Submit()}
	if res.Accepted {
		res.Created = s.lastCreated
	}
	res.State = s.editor.State()
	return res
}
