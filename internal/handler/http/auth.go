package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Missing username or password"}, http.StatusUnprocessableEntity)
		return
	}

	registeredUser, session, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	h.setSessionCookie(w, session.Token)
	utils.WriteJSON(w, models.MessageResponse{Message: "User created successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Missing username or password"}, http.StatusUnprocessableEntity)
		return
	}

	loggedInUser, session, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		// an unknown username and a wrong password are indistinguishable
		// to the client
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("username", creds.Username).Msg("login with unknown username")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid credentials"}, http.StatusUnauthorized)
			return
		}

		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", loggedInUser.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, session.Token)
	utils.WriteJSON(w, models.MessageResponse{Message: "Login successful"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("logout reached without a resolved session")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, session.Token); err != nil {
		log.Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("check_session reached without a resolved session")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		ID:       foundUser.UserID,
		Username: foundUser.Username,
		ImageURL: foundUser.ImageURL,
		Bio:      foundUser.Bio,
	}, http.StatusOK)
}

// setSessionCookie attaches the opaque session token to the response.
// HttpOnly keeps the token out of reach of page scripts; SameSite=Lax
// stops it from riding along on cross-site POSTs.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
// The server-side session is already revoked by that point; this only
// cleans up the client state.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
