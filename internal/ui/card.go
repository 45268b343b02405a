package ui

import (
	"fmt"

	"expenses/internal/core"
)

// DeleteAction returns the endpoint that deletes the expense with the given id.
type DeleteAction func(id int64) string

// CardProps configures one expense card.
type CardProps struct {
	Expense      core.Expense
	Highlighted  bool
	ShowCategory bool
	OnDelete     DeleteAction
}

type CardOption func(*CardProps)

func Highlighted() CardOption {
	return func(p *CardProps) { p.Highlighted = true }
}

func HideCategory() CardOption {
	return func(p *CardProps) { p.ShowCategory = false }
}

func WithDelete(fn DeleteAction) CardOption {
	return func(p *CardProps) { p.OnDelete = fn }
}

// NewCardProps returns props with the default flags: not highlighted, category shown.
func NewCardProps(e core.Expense, opts ...CardOption) CardProps {
	p := CardProps{Expense: e, ShowCategory: true}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CardKey is the stable DOM id of an expense card.
func CardKey(id int64) string {
	return fmt.Sprintf("expense-%d", id)
}

type cardView struct {
	Theme         Theme
	ID            int64
	Key           string
	Class         string
	Description   string
	Category      string
	ShowCategory  bool
	ISODate       string
	DisplayDate   string
	RawAmount     string
	DisplayAmount string
	DeleteURL     string
}

func newCardView(theme Theme, p CardProps) cardView {
	e := p.Expense
	v := cardView{
		Theme:         theme,
		ID:            e.ID,
		Key:           CardKey(e.ID),
		Class:         theme.Card,
		Description:   e.Description,
		Category:      e.Category.String(),
		ShowCategory:  p.ShowCategory,
		ISODate:       e.Date,
		DisplayDate:   core.FormatDisplayDate(e.Date),
		RawAmount:     e.Amount.String(),
		DisplayAmount: core.FormatUSD(e.Amount),
	}
	if p.Highlighted {
		v.Class = theme.CardHighlighted
	}
	if p.OnDelete != nil {
		v.DeleteURL = p.OnDelete(e.ID)
	}
	return v
}
