package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Metrics     *metrics.Metrics
}

// setSessionCookie mirrors the token into an httpOnly cookie. Max-age comes
// from the session expiry the service computed, never from the token itself.
func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleRegister godoc
//
//	@Summary		Register a new agency
//	@Description	Creates the agency tenant and its owner account, then returns a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		agencysdk.RegisterAgencyRequest	true	"Registration request"
//	@Success		201		{object}	agencysdk.SessionResponse
//	@Failure		400		{object}	agencysdk.ErrorResponse
//	@Router			/auth/register-agency [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req agencysdk.RegisterAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	session, err := h.AuthService.RegisterAgency(r.Context(), req.AgencyName, req.FullName, req.Email, req.Password)
	if err != nil {
		// Unlike invite acceptance, a duplicate email here is a plain
		// validation failure.
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.IncAgencyRegistered()
	setSessionCookie(w, session.Token, session.ExpiresAt)
	httpx.WriteJSON(w, http.StatusCreated, renderSession(session))
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials for staff or portal users and returns a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		agencysdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	agencysdk.SessionResponse
//	@Failure		401		{object}	agencysdk.ErrorResponse
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req agencysdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	session, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Metrics.IncLoginFailure()
		}
		writeServiceError(w, r, err)
		return
	}

	setSessionCookie(w, session.Token, session.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, renderSession(session))
}

// HandleMe godoc
//
//	@Summary	Current user profile
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	agencysdk.ProfileResponse
//	@Failure	401	{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	user, agency, err := h.AuthService.Profile(r.Context(), actor.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, agencysdk.ProfileResponse{
		User:   renderUser(user),
		Agency: renderAgency(agency),
	})
}
