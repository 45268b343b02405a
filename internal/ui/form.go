package ui

import (
	"net/url"

	"expenses/internal/core"
	"expenses/internal/editor"
)

const FormID = "expense-form"

// FormProps configures the entry editor form.
type FormProps struct {
	State editor.State
}

type fieldView struct {
	Theme       Theme
	Name        string
	GroupID     string
	Label       string
	Type        string
	InputMode   string
	Placeholder string
	Value       string
	Error       string
	GroupClass  string
	InputClass  string
	UpdateURL   string
	Options     []optionView
}

func (f fieldView) Invalid() bool { return f.Error != "" }

type formView struct {
	Theme  Theme
	ID     string
	Action string
	Fields []fieldView
}

var fieldLabels = map[editor.Field]string{
	editor.FieldDescription: "Description",
	editor.FieldAmount:      "Amount",
	editor.FieldCategory:    "Category",
	editor.FieldDate:        "Date",
}

// FieldGroupID is the DOM id of the wrapper around one form field.
func FieldGroupID(f editor.Field) string {
	return "field-" + string(f)
}

func newFormView(theme Theme, p FormProps) formView {
	v := formView{Theme: theme, ID: FormID, Action: SubmitPath}
	for _, f := range editor.Fields {
		v.Fields = append(v.Fields, newFieldView(theme, p.State, f))
	}
	return v
}

func newFieldView(theme Theme, s editor.State, f editor.Field) fieldView {
	v := fieldView{
		Theme:      theme,
		Name:       string(f),
		GroupID:    FieldGroupID(f),
		Label:      fieldLabels[f],
		Type:       "text",
		Error:      s.Errors[f],
		GroupClass: theme.FieldGroup,
		InputClass: theme.Input,
		UpdateURL:  FieldPath + "?" + url.Values{"field": {string(f)}}.Encode(),
	}
	if v.Invalid() {
		v.GroupClass = theme.FieldGroupInvalid
		v.InputClass = theme.InputInvalid
	}

	d := s.Draft
	switch f {
	case editor.FieldDescription:
		v.Value = d.Description
		v.Placeholder = "What did you spend on?"
	case editor.FieldAmount:
		v.Value = d.Amount
		v.InputMode = "decimal"
		v.Placeholder = "0.00"
	case editor.FieldCategory:
		for _, c := range core.Categories() {
			v.Options = append(v.Options, optionView{
				Value:    c.String(),
				Label:    c.String(),
				Selected: d.Category == c,
			})
		}
	case editor.FieldDate:
		v.Type = "date"
		v.Value = d.Date
	}
	return v
}
