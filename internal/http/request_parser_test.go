package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"expenses/internal/core"
	"expenses/internal/editor"
)

func TestParseFilterParam(t *testing.T) {
	tests := []struct {
		query   string
		want    core.Filter
		ok      bool
		wantErr bool
	}{
		{"", core.FilterAll, false, false},
		{"filter=All", core.FilterAll, true, false},
		{"filter=", core.FilterAll, true, false},
		{"filter=food", core.FilterBy(core.Food), true, false},
		{"filter=Shopping", core.FilterBy(core.Shopping), true, false},
		{"filter=Rent", core.FilterAll, false, true},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		got, ok, err := ParseFilterParam(q)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: err=%v, wantErr=%v", tt.query, err, tt.wantErr)
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("%q: got (%v, %v), want (%v, %v)", tt.query, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFieldUpdate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ui/editor/field?field=category", strings.NewReader("category=Shopping&amount=9"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	u, err := ParseFieldUpdate(req)
	if err != nil {
		t.Fatalf("ParseFieldUpdate: %v", err)
	}
	if u != (editor.CategoryChanged{Category: core.Shopping}) {
		t.Errorf("update = %#v", u)
	}

	req = httptest.NewRequest(http.MethodPost, "/ui/editor/field?field=Description", strings.NewReader("description=Taxi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	u, err = ParseFieldUpdate(req)
	if err != nil {
		t.Fatalf("ParseFieldUpdate mixed case: %v", err)
	}
	if u != (editor.DescriptionChanged{Text: "Taxi"}) {
		t.Errorf("mixed-case field name: update = %#v", u)
	}

	req = httptest.NewRequest(http.MethodPost, "/ui/editor/field?field=nope", strings.NewReader("nope=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := ParseFieldUpdate(req); !errors.Is(err, editor.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseSubmission(t *testing.T) {
	form := url.Values{"description": {"Lunch\x00"}, "amount": {"3"}}
	updates, err := ParseSubmission(form)
	if err != nil {
		t.Fatalf("ParseSubmission: %v", err)
	}
	if len(updates) != len(editor.Fields) {
		t.Fatalf("got %d updates, want %d", len(updates), len(editor.Fields))
	}
	if updates[0] != (editor.DescriptionChanged{Text: "Lunch"}) {
		t.Errorf("control characters kept: %#v", updates[0])
	}
	if updates[3] != (editor.DateChanged{Date: ""}) {
		t.Errorf("missing date not blanked: %#v", updates[3])
	}
}

func TestParseExpenseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodDelete, "/expenses/"+tt.raw, nil)
		req.SetPathValue("id", tt.raw)
		got, err := ParseExpenseID(req)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: err=%v", tt.raw, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidID) {
			t.Errorf("%q: error not ErrInvalidID: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMX(req) {
		t.Errorf("plain request reported as htmx")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMX(req) {
		t.Errorf("htmx request not detected")
	}
}
