package http

import (
	"context"
	"net/http"

	applog "expenses/internal/log"
	"expenses/internal/session"
)

// SessionCookie names the cookie holding the session id.
const SessionCookie = "expenses_session"

type sessionKey struct{}

// withSession resolves the caller's session, starting a new one (and
// setting its cookie) when the cookie is missing or the session expired.
func (s *Server) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}

		sess, created := s.sessions.Resolve(id)
		if created {
			s.metrics.SessionStarted()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
		}

		logger := applog.FromContext(r.Context()).With(applog.FieldSessionID, sess.ID)
		ctx := applog.WithLogger(r.Context(), logger)
		ctx = context.WithValue(ctx, sessionKey{}, sess)
		next(w, r.WithContext(ctx))
	}
}

// sessionFrom returns the session placed in the context by withSession.
func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey{}).(*session.Session)
	return sess
}
