package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilterAllLabel names the selection that shows every entry.
const FilterAllLabel = "All"

// Filter is the Collection View selection: All (zero value) or one category.
type Filter struct {
	category Category
}

// FilterAll is the default selection.
var FilterAll = Filter{}

// FilterBy selects a single category.
func FilterBy(c Category) Filter {
	return Filter{category: c}
}

// ParseFilter accepts "All", the empty string or a category name.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FilterAllLabel) {
		return FilterAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return FilterAll, fmt.Errorf("parse filter: %w", err)
	}
	return FilterBy(c), nil
}

// IsAll reports whether the selection shows every entry.
func (f Filter) IsAll() bool {
	return f.category == ""
}

// Category returns the selected category, or "" for All.
func (f Filter) Category() Category {
	return f.category
}

func (f Filter) String() string {
	if f.IsAll() {
		return FilterAllLabel
	}
	return string(f.category)
}

// Matches reports whether e belongs to the visible subset.
func (f Filter) Matches(e Expense) bool {
	return f.IsAll() || e.Category == f.category
}

// Visible returns the entries matching f in the order supplied. The input
// slice is never modified or reordered.
func Visible(items []Expense, f Filter) []Expense {
	out := make([]Expense, 0, len(items))
	for _, e := range items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Sum adds up the amounts of items.
func Sum(items []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range items {
		total = total.Add(e.Amount)
	}
	return total
}

// Summary is the derived state of the Collection View for one render.
type Summary struct {
	Filter  Filter
	Visible []Expense
	Total   decimal.Decimal
	Count   int
}

// Summarize derives the visible subset and its total. It is recomputed from
// scratch on every call.
func Summarize(items []Expense, f Filter) Summary {
	visible := Visible(items, f)
	return Summary{
		Filter:  f,
		Visible: visible,
		Total:   Sum(visible),
		Count:   len(visible),
	}
}

// TotalString formats the total with exactly two decimal places.
func (s Summary) TotalString() string {
	return FormatFixed2(s.Total)
}

// Empty reports whether the card area should show the placeholder.
func (s Summary) Empty() bool {
	return s.Count == 0
}
