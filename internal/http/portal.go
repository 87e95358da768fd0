package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
)

// PortalHandler serves the client-facing surface: invite redemption and the
// published-report views.
type PortalHandler struct {
	InviteService *service.InviteService
	PortalService *service.PortalService
	Metrics       *metrics.Metrics
}

// HandleInviteDetails godoc
//
//	@Summary		Preview an invite
//	@Description	Resolves a raw invite token to the client/agency names it was minted for.
//	@Tags			Portal
//	@Produce		json
//	@Param			token	path		string	true	"Raw invite token"
//	@Success		200		{object}	agencysdk.InvitePreviewResponse
//	@Failure		404		{object}	agencysdk.ErrorResponse	"Unknown token"
//	@Failure		409		{object}	agencysdk.ErrorResponse	"Already used"
//	@Failure		410		{object}	agencysdk.ErrorResponse	"Expired"
//	@Router			/client/invites/{token} [get].
func (h *PortalHandler) HandleInviteDetails(w http.ResponseWriter, r *http.Request) {
	preview, err := h.InviteService.InviteDetails(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, agencysdk.InvitePreviewResponse{
		Email:      preview.Email,
		ClientName: preview.ClientName,
		AgencyName: preview.AgencyName,
		ExpiresAt:  preview.ExpiresAt,
	})
}

// HandleAcceptInvite godoc
//
//	@Summary		Accept an invite
//	@Description	Creates the portal account bound to the invite's client and returns its first session. Succeeds at most once per invite.
//	@Tags			Portal
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string						true	"Raw invite token"
//	@Param			request	body		agencysdk.AcceptInviteRequest	true	"Account details"
//	@Success		201		{object}	agencysdk.SessionResponse
//	@Failure		404		{object}	agencysdk.ErrorResponse	"Unknown token"
//	@Failure		409		{object}	agencysdk.ErrorResponse	"Already used or email taken"
//	@Failure		410		{object}	agencysdk.ErrorResponse	"Expired"
//	@Router			/client/invites/{token}/accept [post].
func (h *PortalHandler) HandleAcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req agencysdk.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	session, err := h.InviteService.AcceptInvite(r.Context(), r.PathValue("token"), req.Password, req.FullName)
	if err != nil {
		// A duplicate email on acceptance is a state conflict, not a
		// validation error: the invite was fine when minted.
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.IncInviteAccepted()
	setSessionCookie(w, session.Token, session.ExpiresAt)
	httpx.WriteJSON(w, http.StatusCreated, renderSession(session))
}

func parsePortalRequest(r *http.Request) service.PortalListRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	return service.PortalListRequest{
		FromPeriod: q.Get("fromPeriod"),
		ToPeriod:   q.Get("toPeriod"),
		Page:       page,
		PageSize:   pageSize,
	}
}

// HandleReports godoc
//
//	@Summary	List the caller's published reports
//	@Tags		Portal
//	@Produce	json
//	@Param		fromPeriod	query		string	false	"Inclusive lower period bound (YYYY-MM)"
//	@Param		toPeriod	query		string	false	"Inclusive upper period bound (YYYY-MM)"
//	@Param		page		query		int		false	"Page number, starting at 1"
//	@Param		pageSize	query		int		false	"Page size, clamped to [1,100], default 20"
//	@Success	200			{object}	agencysdk.ReportListResponse
//	@Security	BearerAuth
//	@Router		/client/reports [get].
func (h *PortalHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	page, err := h.PortalService.Reports(r.Context(), actor.ClientID, parsePortalRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderReportPage(page))
}

// HandleSummary godoc
//
//	@Summary	Aggregate the caller's published KPIs
//	@Tags		Portal
//	@Produce	json
//	@Param		fromPeriod	query		string	false	"Inclusive lower period bound (YYYY-MM)"
//	@Param		toPeriod	query		string	false	"Inclusive upper period bound (YYYY-MM)"
//	@Success	200			{object}	agencysdk.SummaryResponse
//	@Security	BearerAuth
//	@Router		/client/reports/summary [get].
func (h *PortalHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	q := r.URL.Query()
	summary, err := h.PortalService.Summary(r.Context(), actor.ClientID, q.Get("fromPeriod"), q.Get("toPeriod"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderSummary(summary))
}

// HandleReport godoc
//
//	@Summary		Get one of the caller's published reports
//	@Description	Drafts and other clients' reports are indistinguishable from missing ones.
//	@Tags			Portal
//	@Produce		json
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	agencysdk.Report
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/client/reports/{id} [get].
func (h *PortalHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	detail, err := h.PortalService.Report(r.Context(), r.PathValue("id"), actor.ClientID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderReport(detail))
}
