package session

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"expenses/internal/core"
	"expenses/internal/editor"
)

func clock() string { return "2024-01-05" }

func input(desc string, c core.Category, amount string) core.ExpenseInput {
	return core.ExpenseInput{
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    c,
		Date:        "2024-01-05",
	}
}

func TestAppendAssignsUniqueIDsInOrder(t *testing.T) {
	s := newSession("s1", clockTime(), editor.WithClock(clock))
	for _, d := range []string{"a", "b", "c"} {
		if _, err := s.Append(input(d, core.Food, "1")); err != nil {
			t.Fatalf("append %s: %v", d, err)
		}
	}
	got := s.Expenses()
	for i, e := range got {
		if e.ID != int64(i+1) {
			t.Fatalf("expense %d has id %d", i, e.ID)
		}
	}
	if got[0].Description != "a" || got[2].Description != "c" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	s := newSession("s1", clockTime())
	_, err := s.Append(input("", core.Food, "1"))
	if !errors.Is(err, core.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("invalid expense stored")
	}
}

func TestDeleteKeepsOrderAndIDs(t *testing.T) {
	s := newSession("s1", clockTime())
	for _, d := range []string{"a", "b", "c"} {
		_, _ = s.Append(input(d, core.Food, "1"))
	}
	before := s.Expenses()

	if _, err := s.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := s.Expenses()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected collection after delete: %+v", got)
	}
	if len(before) != 3 || before[1].ID != 2 {
		t.Fatalf("earlier snapshot changed: %+v", before)
	}

	if _, err := s.Delete(2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	e, _ := s.Append(input("d", core.Other, "1"))
	if e.ID != 4 {
		t.Fatalf("id reused after delete: %d", e.ID)
	}
}

func TestFilterDoesNotTouchCollection(t *testing.T) {
	s := newSession("s1", clockTime())
	_, _ = s.Append(input("lunch", core.Food, "12.50"))
	_, _ = s.Append(input("misc", core.Other, "7.25"))

	s.SetFilter(core.FilterBy(core.Food))
	sum := s.Summary()
	if sum.Count != 1 || sum.TotalString() != "12.50" || sum.Visible[0].ID != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if s.Len() != 2 {
		t.Fatalf("collection changed by filter")
	}

	s.SetFilter(core.FilterAll)
	if sum := s.Summary(); sum.Count != 2 || sum.TotalString() != "19.75" {
		t.Fatalf("unexpected All summary %+v", sum)
	}
}

func TestSubmitAppendsAcceptedPayload(t *testing.T) {
	s := newSession("s1", clockTime(), editor.WithClock(clock))

	res := s.Submit(
		editor.DescriptionChanged{Text: " Coffee "},
		editor.AmountChanged{Text: "-3"},
	)
	if res.Accepted || !res.State.Errors.Has(editor.FieldAmount) || s.Len() != 0 {
		t.Fatalf("expected rejection, got %+v", res)
	}

	res = s.Submit(editor.AmountChanged{Text: "3"})
	if !res.Accepted {
		t.Fatalf("expected acceptance, got %+v", res)
	}
	if res.Created.ID != 1 || res.Created.Description != "Coffee" {
		t.Fatalf("unexpected created expense %+v", res.Created)
	}
	if res.State.Draft != editor.NewDraft("2024-01-05") {
		t.Fatalf("draft not reset: %+v", res.State.Draft)
	}
	if s.Len() != 1 {
		t.Fatalf("collection len = %d, want 1", s.Len())
	}
}

func TestApplyUpdateClearsFieldError(t *testing.T) {
	s := newSession("s1", clockTime(), editor.WithClock(clock))
	s.Submit(editor.DescriptionChanged{Text: ""}, editor.AmountChanged{Text: ""})

	st := s.ApplyUpdate(editor.AmountChanged{Text: "4"})
	if st.Errors.Has(editor.FieldAmount) || !st.Errors.Has(editor.FieldDescription) {
		t.Fatalf("unexpected errors %v", st.Errors)
	}
	if s.EditorState().Draft.Amount != "4" {
		t.Fatalf("draft amount not updated")
	}
}

func TestViewIsSnapshot(t *testing.T) {
	s := newSession("s1", clockTime(), editor.WithClock(clock))
	_, _ = s.Append(input("lunch", core.Food, "12.50"))
	s.SetFilter(core.FilterBy(core.Food))

	v := s.View()
	_, _ = s.Append(input("bus", core.Transportation, "2"))
	v.Expenses[0].Description = "changed"

	if len(v.Expenses) != 1 || v.Filter != core.FilterBy(core.Food) {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.Editor.Draft.Date != "2024-01-05" {
		t.Fatalf("editor state missing from view")
	}
	if s.Expenses()[0].Description != "lunch" {
		t.Fatalf("view aliases the collection")
	}
}
