// Package handlers implements the REST route layer. It is the storage
// interface's sole consumer: handlers validate input at the boundary, call
// one storage operation, and translate empty results and medium failures
// into status codes.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"wastenot/internal/domain"
	"wastenot/internal/middleware"
	"wastenot/internal/session"
)

// App is the handler container. The storage instance is injected at startup;
// there is no process-wide singleton.
type App struct {
	Store    domain.Storage
	Sessions session.Store
	Logger   zerolog.Logger

	// SecureCookies marks session cookies Secure; enabled outside development.
	SecureCookies bool

	// SessionTTL drives the cookie MaxAge. It must match the session
	// store's TTL or cookies outlive (or undercut) their sessions.
	SessionTTL time.Duration
}

// NewApp wires the handler container.
func NewApp(store domain.Storage, sessions session.Store, logger zerolog.Logger, secureCookies bool) *App {
	return &App{
		Store:         store,
		Sessions:      sessions,
		Logger:        logger,
		SecureCookies: secureCookies,
		SessionTTL:    7 * 24 * time.Hour,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// storageError logs the failure and answers 500. Storage has no error
// taxonomy of its own: anything non-nil is the medium failing.
func (a *App) storageError(w http.ResponseWriter, r *http.Request, err error, op string) {
	a.Logger.Error().Err(err).
		Str("op", op).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("storage operation failed")
	a.error(w, http.StatusInternalServerError, "internal", "storage unavailable")
}

func (a *App) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   a.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *App) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
