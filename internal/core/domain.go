package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// Expense is one entry of a caller-owned collection. Every Expense held in a
	// collection has already passed Validate.
	Expense struct {
		ID          int64
		Description string
		Amount      decimal.Decimal
		Category    Category
		Date        string // ISO-8601 calendar date, kept verbatim
	}

	// ExpenseInput is the normalized payload emitted by the editor before the
	// owning collection assigns it an ID.
	ExpenseInput struct {
		Description string
		Amount      decimal.Decimal
		Category    Category
		Date        string
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrEmptyDate        = errors.New("empty date")
)

// WithID attaches an owner-assigned ID.
func (in ExpenseInput) WithID(id int64) Expense {
	return Expense{
		ID:          id,
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        in.Date,
	}
}

func (in ExpenseInput) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(in.Date) == "" {
		return ErrEmptyDate
	}
	return nil
}

func (e Expense) Validate() error {
	return e.Input().Validate()
}

// Input returns the expense without its ID.
func (e Expense) Input() ExpenseInput {
	return ExpenseInput{
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
	}
}
