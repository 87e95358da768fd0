package http

import (
	"errors"
	"net/http"

	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

// writeServiceError maps the service layer's sentinel errors onto HTTP
// statuses; anything unrecognised is a logged 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidClient),
		errors.Is(err, service.ErrInvalidProject),
		errors.Is(err, service.ErrInvalidReport),
		errors.Is(err, service.ErrInvalidInvite),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrBadInviteToken),
		errors.Is(err, service.ErrUnknownFormat),
		errors.Is(err, service.ErrClientHasProjects),
		errors.Is(err, service.ErrProjectHasReports):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrNoPortalUser),
		errors.Is(err, service.ErrNoPublicLink),
		errors.Is(err, service.ErrLinkNotFound),
		errors.Is(err, service.ErrInviteNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrInviteUsed):
		httpx.WriteError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteError(w, http.StatusGone, err.Error())

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeBadJSON is the shared complaint for undecodable request bodies.
func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
}
