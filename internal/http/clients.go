package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
)

type ClientsHandler struct {
	ClientService *service.ClientService
	InviteService *service.InviteService
	Metrics       *metrics.Metrics
}

// HandleCreate godoc
//
//	@Summary	Create a client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		request	body		agencysdk.CreateClientRequest	true	"Client"
//	@Success	201		{object}	agencysdk.Client
//	@Failure	400		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	client, err := h.ClientService.CreateClient(r.Context(), actor.AgencyID, req.Name, req.Company, req.ContactEmail, req.ContactPhone)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, renderClient(client))
}

// HandleList godoc
//
//	@Summary	List the agency's clients
//	@Tags		Clients
//	@Produce	json
//	@Success	200	{array}	agencysdk.Client
//	@Security	BearerAuth
//	@Router		/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	clients, err := h.ClientService.ListClients(r.Context(), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]agencysdk.Client, 0, len(clients))
	for _, c := range clients {
		out = append(out, renderClient(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get one client
//	@Tags		Clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	agencysdk.Client
//	@Failure	404	{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	client, err := h.ClientService.GetClient(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderClient(client))
}

// HandleUpdate godoc
//
//	@Summary	Patch a client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Client ID"
//	@Param		request	body		agencysdk.UpdateClientRequest	true	"Fields to change"
//	@Success	200		{object}	agencysdk.Client
//	@Failure	404		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/clients/{id} [patch].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	client, err := h.ClientService.UpdateClient(r.Context(), r.PathValue("id"), actor.AgencyID, service.ClientUpdate{
		Name:         req.Name,
		Company:      req.Company,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderClient(client))
}

// HandleDelete godoc
//
//	@Summary		Delete a client
//	@Description	Fails with 400 while the client still has projects.
//	@Tags			Clients
//	@Param			id	path	string	true	"Client ID"
//	@Success		204
//	@Failure		400	{object}	agencysdk.ErrorResponse
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	if err := h.ClientService.DeleteClient(r.Context(), r.PathValue("id"), actor.AgencyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleInvite godoc
//
//	@Summary		Invite the client to the portal
//	@Description	Mints a one-time invite token; only its fingerprint is stored server-side.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Client ID"
//	@Param			request	body		agencysdk.CreateInviteRequest	true	"Invite"
//	@Success		201		{object}	agencysdk.InviteResponse
//	@Failure		404		{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/clients/{id}/invite [post].
func (h *ClientsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	minted, err := h.InviteService.CreateInvite(r.Context(), r.PathValue("id"), actor.AgencyID, actor.UserID, req.Email, req.ExpiresInDays)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.IncInviteCreated()
	httpx.WriteJSON(w, http.StatusCreated, agencysdk.InviteResponse{
		ID:        minted.Invite.ID,
		Token:     minted.Token,
		URL:       minted.URL,
		Email:     minted.Invite.Email,
		ExpiresAt: minted.Invite.ExpiresAt,
	})
}

// HandleResetPassword godoc
//
//	@Summary		Reset the client's portal password
//	@Description	Regenerates the portal user's password; the plaintext is returned exactly once.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string	true	"Client ID"
//	@Success		200	{object}	agencysdk.ResetPasswordResponse
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/clients/{id}/reset-password [post].
func (h *ClientsHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	password, err := h.ClientService.ResetClientPassword(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, agencysdk.ResetPasswordResponse{Password: password})
}
