package ui

import (
	"fmt"

	"expenses/internal/core"
)

const (
	ListID       = "expense-list"
	EmptyMessage = "No expenses found."
)

// ListProps configures the collection view. Filtering and totals are derived
// on every render; nothing is cached between calls.
type ListProps struct {
	Expenses []core.Expense
	Filter   core.Filter
	OnDelete DeleteAction
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type listView struct {
	Theme        Theme
	ID           string
	RefreshURL   string
	Options      []optionView
	Total        string
	TotalFixed   string
	Count        int
	CountLabel   string
	Cards        []cardView
	Empty        bool
	EmptyMessage string
}

// FilterOptions lists "All" followed by every category.
func FilterOptions(selected core.Filter) []optionView {
	opts := make([]optionView, 0, len(core.Categories())+1)
	opts = append(opts, optionView{
		Value:    core.FilterAllLabel,
		Label:    core.FilterAllLabel,
		Selected: selected.IsAll(),
	})
	for _, c := range core.Categories() {
		opts = append(opts, optionView{
			Value:    c.String(),
			Label:    c.String(),
			Selected: !selected.IsAll() && selected.Category() == c,
		})
	}
	return opts
}

func newListView(theme Theme, p ListProps) listView {
	summary := core.Summarize(p.Expenses, p.Filter)
	v := listView{
		Theme:        theme,
		ID:           ListID,
		RefreshURL:   ListPath,
		Options:      FilterOptions(p.Filter),
		Total:        core.FormatUSD(summary.Total),
		TotalFixed:   summary.TotalString(),
		Count:        summary.Count,
		CountLabel:   countLabel(summary.Count),
		Empty:        summary.Empty(),
		EmptyMessage: EmptyMessage,
	}
	v.Cards = make([]cardView, 0, len(summary.Visible))
	for _, e := range summary.Visible {
		v.Cards = append(v.Cards, newCardView(theme, NewCardProps(e, WithDelete(p.OnDelete))))
	}
	return v
}

func countLabel(n int) string {
	if n == 1 {
		return "1 expense"
	}
	return fmt.Sprintf("%d expenses", n)
}
