package http

import (
	"net/http"

	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
)

type PublicHandler struct {
	ReportService *service.ReportService
	Metrics       *metrics.Metrics
}

// HandleReport godoc
//
//	@Summary		Read a report through its public link
//	@Description	Anonymous, token-gated snapshot of a published report. Disabled links and drafts return 404.
//	@Tags			Public
//	@Produce		json
//	@Param			publicId	path		string	true	"Public link identifier"
//	@Success		200			{object}	agencysdk.PublicReportResponse
//	@Failure		404			{object}	agencysdk.ErrorResponse
//	@Router			/public/reports/{publicId} [get].
func (h *PublicHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	view, err := h.ReportService.FindPublic(r.Context(), r.PathValue("publicId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.IncPublicLinkView()
	httpx.WriteJSON(w, http.StatusOK, renderPublicReport(view))
}
