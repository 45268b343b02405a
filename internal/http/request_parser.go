// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing request data into domain
// values: filter selections, editor updates and expense ids.

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"expenses/internal/core"
	"expenses/internal/editor"
)

var ErrInvalidID = errors.New("invalid expense id")

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// ParseFilterParam reads the optional "filter" query parameter. ok is false
// when the parameter is absent, in which case the current selection stays.
func ParseFilterParam(query url.Values) (f core.Filter, ok bool, err error) {
	if !query.Has("filter") {
		return core.FilterAll, false, nil
	}
	f, err = core.ParseFilter(sanitizeInput(query.Get("filter")))
	if err != nil {
		return core.FilterAll, false, err
	}
	return f, true, nil
}

// ParseFieldUpdate builds the tagged update for a single-field edit. The
// field name comes from the query string and its value from the form body.
func ParseFieldUpdate(r *http.Request) (editor.Update, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parsing form: %w", err)
	}
	name := strings.TrimSpace(r.URL.Query().Get("field"))
	if name == "" {
		name = strings.TrimSpace(r.PostForm.Get("field"))
	}
	field, err := editor.ParseField(name)
	if err != nil {
		return nil, err
	}
	return editor.ParseUpdate(string(field), sanitizeInput(r.PostForm.Get(string(field))))
}

// ParseSubmission turns a full form post into one update per editor field.
// Missing fields become empty values so stale draft text never leaks into a
// submission.
func ParseSubmission(form url.Values) ([]editor.Update, error) {
	updates := make([]editor.Update, 0, len(editor.Fields))
	for _, f := range editor.Fields {
		u, err := editor.ParseUpdate(string(f), sanitizeInput(form.Get(string(f))))
		if err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, nil
}

// ParseExpenseID reads the {id} path value.
func ParseExpenseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
