package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// withSession is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, resolves the opaque token to an active
// session via the auth service, and — on success — stores the session in
// the request context under [utils.SessionCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The cookie is present but its value is empty ([ErrEmptySessionToken]).
//   - The token does not resolve to an active session (unknown or revoked).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := h.getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ResolveSession(ctx, token)
		if err != nil {
			log.Err(err).Msg("session resolution failed")
			utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
			return
		}

		// Store the resolved session in the context so that downstream
		// handlers can retrieve the owner without touching the cookie again.
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the opaque session token from the request's
// session cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the request carries no cookie with the
//     configured name.
//   - [ErrEmptySessionToken] — if the cookie exists but its value is an
//     empty string.
func (h *Handler) getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoSessionCookie
		}
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}

	return cookie.Value, nil
}
