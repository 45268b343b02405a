package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Theme maps every styled element to its class list. Components only read
// class names from here, so swapping the theme swaps the whole look.
type Theme struct {
	Name       string `toml:"name"`
	Extends    string `toml:"extends,omitempty"`
	Stylesheet string `toml:"stylesheet"`

	Page   string `toml:"page"`
	Header string `toml:"header"`

	Form              string `toml:"form"`
	FieldGroup        string `toml:"field_group"`
	FieldGroupInvalid string `toml:"field_group_invalid"`
	Label             string `toml:"label"`
	Input             string `toml:"input"`
	InputInvalid      string `toml:"input_invalid"`
	FieldError        string `toml:"field_error"`
	SubmitButton      string `toml:"submit_button"`

	List      string `toml:"list"`
	FilterBar string `toml:"filter_bar"`
	Select    string `toml:"select"`
	Summary   string `toml:"summary"`
	Total     string `toml:"total"`
	Count     string `toml:"count"`
	Cards     string `toml:"cards"`
	Empty     string `toml:"empty"`

	Card            string `toml:"card"`
	CardHighlighted string `toml:"card_highlighted"`
	CardBody        string `toml:"card_body"`
	CardTitle       string `toml:"card_title"`
	CardCategory    string `toml:"card_category"`
	CardDate        string `toml:"card_date"`
	CardActions     string `toml:"card_actions"`
	CardAmount      string `toml:"card_amount"`
	DeleteButton    string `toml:"delete_button"`
}

// StylesheetTheme uses the semantic classes defined in static/app.css.
var StylesheetTheme = Theme{
	Name:       "stylesheet",
	Stylesheet: "/static/app.css",

	Page:   "page",
	Header: "page__header",

	Form:              "expense-form",
	FieldGroup:        "expense-form__group",
	FieldGroupInvalid: "expense-form__group expense-form__group--invalid",
	Label:             "expense-form__label",
	Input:             "expense-form__input",
	InputInvalid:      "expense-form__input expense-form__input--invalid",
	FieldError:        "expense-form__error",
	SubmitButton:      "expense-form__submit",

	List:      "expense-list",
	FilterBar: "expense-list__filter",
	Select:    "expense-list__select",
	Summary:   "expense-list__summary",
	Total:     "expense-list__total",
	Count:     "expense-list__count",
	Cards:     "expense-list__cards",
	Empty:     "expense-list__empty",

	Card:            "expense-card",
	CardHighlighted: "expense-card expense-card--highlighted",
	CardBody:        "expense-card__body",
	CardTitle:       "expense-card__title",
	CardCategory:    "expense-card__category",
	CardDate:        "expense-card__date",
	CardActions:     "expense-card__actions",
	CardAmount:      "expense-card__amount",
	DeleteButton:    "expense-card__delete",
}

// UtilityTheme composes small single-purpose classes from static/utility.css.
var UtilityTheme = Theme{
	Name:       "utility",
	Stylesheet: "/static/utility.css",

	Page:   "bg-gray-100 min-h-screen p-4",
	Header: "mb-4 text-xl font-bold",

	Form:              "bg-white rounded shadow p-4 mb-4",
	FieldGroup:        "mb-3",
	FieldGroupInvalid: "mb-3",
	Label:             "block text-sm font-bold mb-1",
	Input:             "w-full border rounded p-2",
	InputInvalid:      "w-full border border-red rounded p-2",
	FieldError:        "text-red text-sm mt-1",
	SubmitButton:      "bg-blue text-white rounded p-2 w-full",

	List:      "bg-white rounded shadow p-4",
	FilterBar: "flex items-center gap-2 mb-3",
	Select:    "border rounded p-2",
	Summary:   "flex justify-between mb-3",
	Total:     "font-bold",
	Count:     "text-sm text-gray",
	Cards:     "list-none p-0",
	Empty:     "text-center text-gray p-4",

	Card:            "flex justify-between border rounded p-3 mb-2",
	CardHighlighted: "flex justify-between border border-blue bg-blue-light rounded p-3 mb-2",
	CardBody:        "flex flex-col",
	CardTitle:       "font-bold m-0",
	CardCategory:    "text-sm text-gray",
	CardDate:        "text-sm text-gray",
	CardActions:     "flex items-center gap-2",
	CardAmount:      "font-bold",
	DeleteButton:    "text-red text-sm",
}

var builtinThemes = map[string]Theme{
	StylesheetTheme.Name: StylesheetTheme,
	UtilityTheme.Name:    UtilityTheme,
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{StylesheetTheme.Name, UtilityTheme.Name}
}

// ThemeByName returns a built-in theme.
func ThemeByName(name string) (Theme, error) {
	t, ok := builtinThemes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// LoadTheme reads a TOML theme file. Keys left out of the file keep the value
// of the theme named by `extends` (default: stylesheet).
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme: %w", err)
	}
	return ParseTheme(string(data))
}

// ParseTheme decodes a TOML theme document.
func ParseTheme(doc string) (Theme, error) {
	var head struct {
		Extends string `toml:"extends"`
	}
	if _, err := toml.Decode(doc, &head); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	baseName := head.Extends
	if baseName == "" {
		baseName = StylesheetTheme.Name
	}
	t, err := ThemeByName(baseName)
	if err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	if _, err := toml.Decode(doc, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	if t.Name == "" || t.Name == baseName {
		t.Name = baseName + "-custom"
	}
	return t, nil
}
