package editor

import (
	"errors"
	"fmt"
	"strings"

	"expenses/internal/core"
)

// Field names one input of the entry form.
type Field string

const (
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldCategory    Field = "category"
	FieldDate        Field = "date"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldDescription, FieldAmount, FieldCategory, FieldDate}

var ErrUnknownField = errors.New("unknown field")

// Update is a single field edit. The set of implementations is closed.
type Update interface {
	Field() Field
	apply(d *Draft)
}

type (
	DescriptionChanged struct{ Text string }
	AmountChanged      struct{ Text string }
	CategoryChanged    struct{ Category core.Category }
	DateChanged        struct{ Date string }
)

func (DescriptionChanged) Field() Field { return FieldDescription }
func (AmountChanged) Field() Field      { return FieldAmount }
func (CategoryChanged) Field() Field    { return FieldCategory }
func (DateChanged) Field() Field        { return FieldDate }

func (u DescriptionChanged) apply(d *Draft) { d.Description = u.Text }
func (u AmountChanged) apply(d *Draft)      { d.Amount = u.Text }
func (u CategoryChanged) apply(d *Draft)    { d.Category = u.Category }
func (u DateChanged) apply(d *Draft)        { d.Date = u.Date }

// ParseField maps a form input name to a Field.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, v := range Fields {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseUpdate builds the tagged update for a raw form value. A category that
// is not in the enumeration becomes an empty category so the category rule
// rejects it on submit.
func ParseUpdate(name, value string) (Update, error) {
	field, err := ParseField(name)
	if err != nil {
		return nil, err
	}
	switch field {
	case FieldDescription:
		return DescriptionChanged{Text: value}, nil
	case FieldAmount:
		return AmountChanged{Text: value}, nil
	case FieldCategory:
		c, err := core.ParseCategory(value)
		if err != nil {
			c = ""
		}
		return CategoryChanged{Category: c}, nil
	default:
		return DateChanged{Date: strings.TrimSpace(value)}, nil
	}
}
