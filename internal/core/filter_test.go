package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func exp(id int64, c Category, amount string) Expense {
	return Expense{
		ID:          id,
		Description: "item",
		Amount:      decimal.RequireFromString(amount),
		Category:    c,
		Date:        "2024-01-05",
	}
}

func ids(items []Expense) []int64 {
	out := make([]int64, 0, len(items))
	for _, e := range items {
		out = append(out, e.ID)
	}
	return out
}

func TestSummarizeFoodFilter(t *testing.T) {
	items := []Expense{exp(1, Food, "12.50"), exp(2, Other, "7.25")}
	s := Summarize(items, FilterBy(Food))
	if got := ids(s.Visible); len(got) != 1 || got[0] != 1 {
		t.Fatalf("visible = %v, want [1]", got)
	}
	if s.TotalString() != "12.50" {
		t.Fatalf("total = %q, want 12.50", s.TotalString())
	}
	if s.Count != 1 {
		t.Fatalf("count = %d, want 1", s.Count)
	}
}

func TestSummarizeEmptyCollection(t *testing.T) {
	s := Summarize(nil, FilterAll)
	if !s.Empty() || s.Count != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
	if s.TotalString() != "0.00" {
		t.Fatalf("total = %q, want 0.00", s.TotalString())
	}
}

func TestVisiblePreservesOrderAndInput(t *testing.T) {
	items := []Expense{
		exp(5, Shopping, "1"),
		exp(3, Food, "2"),
		exp(9, Shopping, "3"),
		exp(1, Other, "4"),
		exp(7, Shopping, "5"),
	}
	before := ids(items)

	all := Visible(items, FilterAll)
	if got := ids(all); !equalIDs(got, before) {
		t.Fatalf("All visible = %v, want %v", got, before)
	}

	shop := Visible(items, FilterBy(Shopping))
	if got := ids(shop); !equalIDs(got, []int64{5, 9, 7}) {
		t.Fatalf("Shopping visible = %v", got)
	}
	if len(shop) > 0 {
		shop[0].ID = 100
	}
	if got := ids(items); !equalIDs(got, before) {
		t.Fatalf("input mutated: %v", got)
	}
}

func TestVisibleCountMatchesCategoryCount(t *testing.T) {
	items := []Expense{
		exp(1, Food, "1.10"), exp(2, Food, "2.20"), exp(3, Transportation, "3.30"),
		exp(4, Entertainment, "4.40"), exp(5, Other, "5.50"), exp(6, Food, "6.60"),
	}
	for _, c := range Categories() {
		want := 0
		wantTotal := decimal.Zero
		for _, e := range items {
			if e.Category == c {
				want++
				wantTotal = wantTotal.Add(e.Amount)
			}
		}
		s := Summarize(items, FilterBy(c))
		if s.Count != want || len(s.Visible) != want {
			t.Errorf("%s: count = %d, want %d", c, s.Count, want)
		}
		if !s.Total.Equal(wantTotal) {
			t.Errorf("%s: total = %s, want %s", c, s.Total, wantTotal)
		}
	}
	if s := Summarize(items, FilterAll); s.Count != len(items) || s.TotalString() != "23.10" {
		t.Fatalf("All: count=%d total=%s", s.Count, s.TotalString())
	}
}

func TestParseFilter(t *testing.T) {
	for _, in := range []string{"", "All", "all", " ALL "} {
		f, err := ParseFilter(in)
		if err != nil || !f.IsAll() {
			t.Fatalf("ParseFilter(%q) = %v, %v", in, f, err)
		}
	}
	f, err := ParseFilter("Shopping")
	if err != nil || f.Category() != Shopping || f.String() != "Shopping" {
		t.Fatalf("ParseFilter(Shopping) = %v, %v", f, err)
	}
	if _, err := ParseFilter("Bills"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if FilterAll.String() != FilterAllLabel {
		t.Fatalf("FilterAll.String() = %q", FilterAll.String())
	}
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
