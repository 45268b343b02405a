package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"expenses/internal/core"
	applog "expenses/internal/log"
	"expenses/internal/session"
	"expenses/internal/ui"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.renderer == nil || s.sessions == nil {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleIndex renders the full page. A "filter" query parameter updates the
// selection first so the list's no-script form works.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.applyFilter(w, r, sess) {
		return
	}
	s.writePage(w, r, sess.View(), http.StatusOK)
}

// handleList renders the collection view partial.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.applyFilter(w, r, sess) {
		return
	}
	v := sess.View()
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.renderer.List(out, s.listProps(v))
	}, nil)
}

// handleFieldUpdate applies one field edit and re-renders that field group.
func (s *Server) handleFieldUpdate(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	u, err := ParseFieldUpdate(r)
	if err != nil {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Rejected field update",
			applog.FieldError, err,
			applog.FieldField, r.URL.Query().Get("field"),
			applog.FieldOperation, applog.OpUpdate)
		BadRequestError("Unknown form field").Write(w)
		return
	}

	state := sess.ApplyUpdate(u)
	s.metrics.FieldUpdated(string(u.Field()))
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Field(out, state, u.Field())
	}, nil)
}

// handleSubmit runs the editor's submit with the posted form values.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := r.ParseForm(); err != nil {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Parse form error",
			applog.FieldError, err, applog.FieldOperation, applog.OpParse)
		BadRequestError("Invalid request format").Write(w)
		return
	}
	updates, err := ParseSubmission(r.PostForm)
	if err != nil {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Invalid submission",
			applog.FieldError, err, applog.FieldOperation, applog.OpSubmit)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	res := sess.Submit(updates...)
	if !res.Accepted {
		fields := invalidFields(res.State.Errors)
		s.metrics.SubmissionRejected(fields)
		s.sl.LogSubmissionRejected(r.Context(), sess.ID, fields)

		if !IsHTMX(r) {
			s.writePage(w, r, sess.View(), http.StatusUnprocessableEntity)
			return
		}
		// htmx only swaps 2xx responses, so the form with its errors goes back as 200.
		s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
			return s.renderer.Form(out, ui.FormProps{State: res.State})
		}, func(b *HTMXResponseBuilder) {
			b.TriggerErrorNotification("Please fix the highlighted fields.")
		})
		return
	}

	e := res.Created
	s.metrics.ExpenseCreated()
	s.sl.LogExpenseCreated(r.Context(), sess.ID, e.ID, e.Description, e.Amount.String(), e.Category.String())

	if !IsHTMX(r) {
		SeeOther(ui.IndexPath).Write(w)
		return
	}
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Form(out, ui.FormProps{State: res.State})
	}, func(b *HTMXResponseBuilder) {
		b.TriggerExpenseCreated(e.ID).
			TriggerFormReset().
			TriggerSuccessNotification(fmt.Sprintf("Added %s (%s)", e.Description, core.FormatUSD(e.Amount)))
	})
}

// handleDelete removes an expense. htmx callers get an expense:deleted event
// and the list refreshes itself; plain form posts are redirected home.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	id, err := ParseExpenseID(r)
	if err != nil {
		BadRequestError("Invalid expense id").Write(w)
		return
	}

	if _, err := sess.Delete(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			applog.FromContext(r.Context()).InfoContext(r.Context(), "Expense to delete not found",
				applog.FieldExpenseID, id,
				applog.FieldOperation, applog.OpDelete,
				applog.FieldErrorType, applog.ErrorTypeNotFound)
			NotFoundError("Expense not found").Write(w)
			return
		}
		s.sl.LogError(r.Context(), "Failed to delete expense", err, applog.ComponentExpense, applog.OpDelete,
			applog.NewFields().WithSession(sess.ID))
		InternalServerError("Could not delete expense").Write(w)
		return
	}

	s.metrics.ExpenseDeleted()
	s.sl.LogExpenseDeleted(r.Context(), sess.ID, id)

	if !IsHTMX(r) {
		SeeOther(ui.IndexPath).Write(w)
		return
	}
	NewHTMXResponse().TriggerExpenseDeleted(id).Write(w)
}

// applyFilter stores a filter from the query string. It writes a 400 and
// returns false when the value is not a known selection.
func (s *Server) applyFilter(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	f, ok, err := ParseFilterParam(r.URL.Query())
	if err != nil {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Rejected filter",
			applog.FieldError, err,
			applog.FieldFilter, r.URL.Query().Get("filter"),
			applog.FieldOperation, applog.OpFilter)
		BadRequestError("Unknown category filter").Write(w)
		return false
	}
	if ok {
		sess.SetFilter(f)
		s.metrics.FilterChanged(f.String())
		applog.FromContext(r.Context()).DebugContext(r.Context(), "Filter changed",
			applog.FieldFilter, f.String(), applog.FieldOperation, applog.OpFilter)
	}
	return true
}

func (s *Server) listProps(v session.View) ui.ListProps {
	return ui.ListProps{
		Expenses: v.Expenses,
		Filter:   v.Filter,
		OnDelete: deletePath,
	}
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, v session.View, status int) {
	s.writeHTML(w, r, status, func(out io.Writer) error {
		return s.renderer.Page(out, ui.PageProps{
			Form: ui.FormProps{State: v.Editor},
			List: s.listProps(v),
		})
	}, nil)
}

// writeHTML renders into memory and writes the result, or a 500 if the
// template failed. decorate may add triggers to the response.
func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error, decorate func(*HTMXResponseBuilder)) {
	body, err := renderToBytes(render)
	if err != nil {
		s.sl.LogError(r.Context(), "Template render failed", err, applog.ComponentTemplate, applog.OpRender, nil)
		InternalServerError("Something went wrong").Write(w)
		return
	}
	b := NewHTMXResponse().Status(status).BodyHTML(body)
	if decorate != nil {
		decorate(b)
	}
	b.Write(w)
}
