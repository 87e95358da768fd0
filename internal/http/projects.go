package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleCreate godoc
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		request	body		agencysdk.CreateProjectRequest	true	"Project"
//	@Success	201		{object}	agencysdk.Project
//	@Failure	400		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	detail, err := h.ProjectService.CreateProject(r.Context(), actor.AgencyID, req.ClientID, req.Name, domain.ProjectStatus(req.Status), req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, renderProject(detail))
}

// HandleList godoc
//
//	@Summary	List projects
//	@Tags		Projects
//	@Produce	json
//	@Param		clientId	query	string	false	"Filter to one client"
//	@Success	200	{array}	agencysdk.Project
//	@Security	BearerAuth
//	@Router		/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	details, err := h.ProjectService.ListProjects(r.Context(), actor.AgencyID, r.URL.Query().Get("clientId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]agencysdk.Project, 0, len(details))
	for _, d := range details {
		out = append(out, renderProject(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get one project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	agencysdk.Project
//	@Failure	404	{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	detail, err := h.ProjectService.GetProject(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderProject(detail))
}

// HandleUpdate godoc
//
//	@Summary	Patch a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Project ID"
//	@Param		request	body		agencysdk.UpdateProjectRequest	true	"Fields to change"
//	@Success	200		{object}	agencysdk.Project
//	@Failure	404		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/projects/{id} [patch].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	upd := service.ProjectUpdate{Name: req.Name, Notes: req.Notes}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		upd.Status = &status
	}

	detail, err := h.ProjectService.UpdateProject(r.Context(), r.PathValue("id"), actor.AgencyID, upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderProject(detail))
}

// HandleDelete godoc
//
//	@Summary		Delete a project
//	@Description	Fails with 400 while the project still has reports.
//	@Tags			Projects
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		400	{object}	agencysdk.ErrorResponse
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	if err := h.ProjectService.DeleteProject(r.Context(), r.PathValue("id"), actor.AgencyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
