package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
)

type ReportsHandler struct {
	ReportService *service.ReportService
	Metrics       *metrics.Metrics
}

func parseListRequest(r *http.Request) service.ReportListRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	return service.ReportListRequest{
		ProjectID:     q.Get("projectId"),
		ClientID:      q.Get("clientId"),
		PublishedOnly: q.Get("publishedOnly") == "true",
		FromPeriod:    q.Get("fromPeriod"),
		ToPeriod:      q.Get("toPeriod"),
		Page:          page,
		PageSize:      pageSize,
	}
}

// HandleCreate godoc
//
//	@Summary	Create a draft report
//	@Tags		Reports
//	@Accept		json
//	@Produce	json
//	@Param		request	body		agencysdk.CreateReportRequest	true	"Report"
//	@Success	201		{object}	agencysdk.Report
//	@Failure	400		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports [post].
func (h *ReportsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	kpis := domain.KPIRow{
		Spend:   req.Spend,
		Revenue: req.Revenue,
		Leads:   req.Leads,
		CPA:     req.CPA,
		ROAS:    req.ROAS,
	}
	detail, err := h.ReportService.CreateReport(r.Context(), actor.AgencyID, req.ProjectID, req.Period, req.Summary, kpis, req.WhatWasDone, req.NextPlan)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, renderReport(detail))
}

// HandleList godoc
//
//	@Summary	List reports, paginated
//	@Tags		Reports
//	@Produce	json
//	@Param		projectId		query		string	false	"Filter by project"
//	@Param		clientId		query		string	false	"Filter by client"
//	@Param		publishedOnly	query		bool	false	"Only published reports"
//	@Param		fromPeriod		query		string	false	"Inclusive lower period bound (YYYY-MM)"
//	@Param		toPeriod		query		string	false	"Inclusive upper period bound (YYYY-MM)"
//	@Param		page			query		int		false	"Page number, starting at 1"
//	@Param		pageSize		query		int		false	"Page size, clamped to [1,100], default 20"
//	@Success	200				{object}	agencysdk.ReportListResponse
//	@Security	BearerAuth
//	@Router		/reports [get].
func (h *ReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	page, err := h.ReportService.ListReports(r.Context(), actor.AgencyID, parseListRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderReportPage(page))
}

// HandleSummary godoc
//
//	@Summary	Aggregate KPIs over the filtered report set
//	@Tags		Reports
//	@Produce	json
//	@Param		projectId	query		string	false	"Filter by project"
//	@Param		clientId	query		string	false	"Filter by client"
//	@Param		fromPeriod	query		string	false	"Inclusive lower period bound (YYYY-MM)"
//	@Param		toPeriod	query		string	false	"Inclusive upper period bound (YYYY-MM)"
//	@Success	200			{object}	agencysdk.SummaryResponse
//	@Security	BearerAuth
//	@Router		/reports/summary [get].
func (h *ReportsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	summary, err := h.ReportService.Summary(r.Context(), actor.AgencyID, parseListRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderSummary(summary))
}

// HandleGet godoc
//
//	@Summary	Get one report
//	@Tags		Reports
//	@Produce	json
//	@Param		id	path		string	true	"Report ID"
//	@Success	200	{object}	agencysdk.Report
//	@Failure	404	{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/{id} [get].
func (h *ReportsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	detail, err := h.ReportService.GetReport(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderReport(detail))
}

// HandleUpdate godoc
//
//	@Summary	Patch a report
//	@Tags		Reports
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Report ID"
//	@Param		request	body		agencysdk.UpdateReportRequest	true	"Fields to change"
//	@Success	200		{object}	agencysdk.Report
//	@Failure	404		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/{id} [patch].
func (h *ReportsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	var req agencysdk.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	detail, err := h.ReportService.UpdateReport(r.Context(), r.PathValue("id"), actor.AgencyID, service.ReportUpdate{
		Period:      req.Period,
		Summary:     req.Summary,
		Spend:       req.Spend,
		Revenue:     req.Revenue,
		Leads:       req.Leads,
		CPA:         req.CPA,
		ROAS:        req.ROAS,
		WhatWasDone: req.WhatWasDone,
		NextPlan:    req.NextPlan,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderReport(detail))
}

// HandleDelete godoc
//
//	@Summary	Delete a report
//	@Tags		Reports
//	@Param		id	path	string	true	"Report ID"
//	@Success	204
//	@Failure	404	{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/{id} [delete].
func (h *ReportsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	if err := h.ReportService.DeleteReport(r.Context(), r.PathValue("id"), actor.AgencyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePublish godoc
//
//	@Summary		Publish a report
//	@Description	Makes the report visible to the client portal. Re-publishing refreshes the publish timestamp.
//	@Tags			Reports
//	@Produce		json
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	agencysdk.Report
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/{id}/publish [post].
func (h *ReportsHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	detail, err := h.ReportService.Publish(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.IncReportPublished()
	httpx.WriteJSON(w, http.StatusOK, renderReport(detail))
}

// HandleUnpublish godoc
//
//	@Summary	Revert a report to draft
//	@Tags		Reports
//	@Produce	json
//	@Param		id	path		string	true	"Report ID"
//	@Success	200	{object}	agencysdk.Report
//	@Failure	404	{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/{id}/unpublish [post].
func (h *ReportsHandler) HandleUnpublish(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	detail, err := h.ReportService.Unpublish(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderReport(detail))
}

// HandleEnableLink godoc
//
//	@Summary		Enable the report's public link
//	@Description	Creates the link on first use; re-enabling reuses the original public identifier.
//	@Tags			Reports
//	@Produce		json
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	agencysdk.PublicLinkResponse
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/{id}/public-link [post].
func (h *ReportsHandler) HandleEnableLink(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	link, err := h.ReportService.EnablePublicLink(r.Context(), r.PathValue("id"), actor.AgencyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, agencysdk.PublicLinkResponse{
		PublicID: link.PublicID,
		IsActive: link.IsActive,
	})
}

// HandleDisableLink godoc
//
//	@Summary		Disable the report's public link
//	@Description	The public identifier is retained and resumes working on re-enable.
//	@Tags			Reports
//	@Param			id	path	string	true	"Report ID"
//	@Success		204
//	@Failure		404	{object}	agencysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/{id}/public-link [delete].
func (h *ReportsHandler) HandleDisableLink(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	if err := h.ReportService.DisablePublicLink(r.Context(), r.PathValue("id"), actor.AgencyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport godoc
//
//	@Summary	Export a report as a document
//	@Tags		Reports
//	@Produce	application/pdf
//	@Param		id		path	string	true	"Report ID"
//	@Param		format	query	string	true	"pdf or docx"
//	@Success	200		{file}	binary
//	@Failure	400		{object}	agencysdk.ErrorResponse
//	@Failure	404		{object}	agencysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/{id}/export [get].
func (h *ReportsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	actor, _ := httpx.ActorFromContext(r.Context())

	format := r.URL.Query().Get("format")
	result, err := h.ReportService.Export(r.Context(), r.PathValue("id"), actor.AgencyID, format)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.IncExport(format)
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
