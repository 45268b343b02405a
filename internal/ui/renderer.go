// Package ui renders the expense tracker's HTML. Components turn props into
// view models; the look comes entirely from the active Theme.
package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"expenses/internal/editor"
	appweb "expenses/web"
)

// Endpoints referenced by the rendered markup.
const (
	IndexPath  = "/"
	ListPath   = "/ui/expenses"
	FieldPath  = "/ui/editor/field"
	SubmitPath = "/expenses"
)

const (
	tmplPage  = "page"
	tmplCard  = "expense_card"
	tmplList  = "expense_list"
	tmplForm  = "expense_form"
	tmplField = "expense_field"
)

// PageProps configures the full document.
type PageProps struct {
	Title string
	Form  FormProps
	List  ListProps
}

type pageView struct {
	Theme Theme
	Title string
	Form  formView
	List  listView
}

// Renderer executes the embedded templates with a theme.
type Renderer struct {
	tmpl  *template.Template
	theme Theme
}

func NewRenderer(theme Theme) (*Renderer, error) {
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: t, theme: theme}, nil
}

func (r *Renderer) Theme() Theme { return r.theme }

func (r *Renderer) Page(w io.Writer, p PageProps) error {
	if p.Title == "" {
		p.Title = "Expenses"
	}
	return r.execute(w, tmplPage, pageView{
		Theme: r.theme,
		Title: p.Title,
		Form:  newFormView(r.theme, p.Form),
		List:  newListView(r.theme, p.List),
	})
}

func (r *Renderer) Card(w io.Writer, p CardProps) error {
	return r.execute(w, tmplCard, newCardView(r.theme, p))
}

func (r *Renderer) List(w io.Writer, p ListProps) error {
	return r.execute(w, tmplList, newListView(r.theme, p))
}

func (r *Renderer) Form(w io.Writer, p FormProps) error {
	return r.execute(w, tmplForm, newFormView(r.theme, p))
}

// Field renders a single field group of the form.
func (r *Renderer) Field(w io.Writer, s editor.State, f editor.Field) error {
	return r.execute(w, tmplField, newFieldView(r.theme, s, f))
}

// execute renders into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
