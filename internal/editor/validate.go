package editor

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"expenses/internal/core"
)

// Messages shown next to an invalid field.
const (
	MsgDescriptionRequired = "Description is required"
	MsgAmountPositive      = "Amount must be a positive number"
	MsgCategoryRequired    = "Category is required"
	MsgDateRequired        = "Date is required"
)

// FieldErrors maps a field to its message. An empty map means the draft is valid.
type FieldErrors map[Field]string

// Has reports whether f currently has an error.
func (fe FieldErrors) Has(f Field) bool {
	_, ok := fe[f]
	return ok
}

func (fe FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// snapshot is the struct-tag view of a draft fed to the validator. Description
// is already trimmed.
type snapshot struct {
	Description string        `validate:"required"`
	Category    core.Category `validate:"required,category"`
	Date        string        `validate:"required"`
}

var (
	validate = newValidator()

	snapshotFields = map[string]Field{
		"Description": FieldDescription,
		"Category":    FieldCategory,
		"Date":        FieldDate,
	}

	fieldMessages = map[Field]string{
		FieldDescription: MsgDescriptionRequired,
		FieldAmount:      MsgAmountPositive,
		FieldCategory:    MsgCategoryRequired,
		FieldDate:        MsgDateRequired,
	}
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return core.Category(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks every rule against d and reports all failures at once.
func Validate(d Draft) FieldErrors {
	_, errs := normalize(d)
	return errs
}

func normalize(d Draft) (core.ExpenseInput, FieldErrors) {
	errs := FieldErrors{}
	snap := snapshot{
		Description: strings.TrimSpace(d.Description),
		Category:    d.Category,
		Date:        strings.TrimSpace(d.Date),
	}
	if err := validate.Struct(snap); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if f, ok := snapshotFields[fe.StructField()]; ok {
					errs[f] = fieldMessages[f]
				}
			}
		}
	}

	amount, err := core.ParseAmount(d.Amount)
	if err != nil {
		errs[FieldAmount] = fieldMessages[FieldAmount]
	}

	return core.ExpenseInput{
		Description: snap.Description,
		Amount:      amount,
		Category:    d.Category,
		Date:        d.Date,
	}, errs
}
