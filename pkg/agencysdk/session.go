package agencysdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Session is an authenticated handle on the API. It is safe for concurrent
// use; the token is immutable once issued.
type Session struct {
	client *SDKClient
	token  string

	// User and Agency are the identities returned when the session was issued.
	User   User
	Agency Agency
}

func newSession(c *SDKClient, resp SessionResponse) *Session {
	return &Session{client: c, token: resp.Token, User: resp.User, Agency: resp.Agency}
}

// Token exposes the raw bearer token, e.g. for persistence across restarts.
func (s *Session) Token() string { return s.token }

// Me fetches the caller's profile.
func (s *Session) Me(ctx context.Context) (ProfileResponse, error) {
	var resp ProfileResponse
	err := s.client.do(ctx, http.MethodGet, "/auth/me", s.token, nil, &resp)
	return resp, err
}

// ============================================================================
// Clients
// ============================================================================

func (s *Session) CreateClient(ctx context.Context, req CreateClientRequest) (Client, error) {
	var resp Client
	err := s.client.do(ctx, http.MethodPost, "/clients", s.token, req, &resp)
	return resp, err
}

func (s *Session) ListClients(ctx context.Context) ([]Client, error) {
	var resp []Client
	err := s.client.do(ctx, http.MethodGet, "/clients", s.token, nil, &resp)
	return resp, err
}

func (s *Session) GetClient(ctx context.Context, id string) (Client, error) {
	var resp Client
	err := s.client.do(ctx, http.MethodGet, "/clients/"+id, s.token, nil, &resp)
	return resp, err
}

func (s *Session) UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (Client, error) {
	var resp Client
	err := s.client.do(ctx, http.MethodPatch, "/clients/"+id, s.token, req, &resp)
	return resp, err
}

func (s *Session) DeleteClient(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/clients/"+id, s.token, nil, nil)
}

func (s *Session) CreateInvite(ctx context.Context, clientID string, req CreateInviteRequest) (InviteResponse, error) {
	var resp InviteResponse
	err := s.client.do(ctx, http.MethodPost, "/clients/"+clientID+"/invite", s.token, req, &resp)
	return resp, err
}

func (s *Session) ResetClientPassword(ctx context.Context, clientID string) (ResetPasswordResponse, error) {
	var resp ResetPasswordResponse
	err := s.client.do(ctx, http.MethodPost, "/clients/"+clientID+"/reset-password", s.token, nil, &resp)
	return resp, err
}

// ============================================================================
// Projects
// ============================================================================

func (s *Session) CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error) {
	var resp Project
	err := s.client.do(ctx, http.MethodPost, "/projects", s.token, req, &resp)
	return resp, err
}

// ListProjects lists the agency's projects; clientID narrows to one client
// when non-empty.
func (s *Session) ListProjects(ctx context.Context, clientID string) ([]Project, error) {
	path := "/projects"
	if clientID != "" {
		path += "?clientId=" + url.QueryEscape(clientID)
	}
	var resp []Project
	err := s.client.do(ctx, http.MethodGet, path, s.token, nil, &resp)
	return resp, err
}

func (s *Session) GetProject(ctx context.Context, id string) (Project, error) {
	var resp Project
	err := s.client.do(ctx, http.MethodGet, "/projects/"+id, s.token, nil, &resp)
	return resp, err
}

func (s *Session) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (Project, error) {
	var resp Project
	err := s.client.do(ctx, http.MethodPatch, "/projects/"+id, s.token, req, &resp)
	return resp, err
}

func (s *Session) DeleteProject(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/projects/"+id, s.token, nil, nil)
}

// ============================================================================
// Reports
// ============================================================================

// ReportListQuery mirrors the query parameters of the report listing.
type ReportListQuery struct {
	ProjectID     string
	ClientID      string
	PublishedOnly bool
	FromPeriod    string
	ToPeriod      string
	Page          int
	PageSize      int
}

func (q ReportListQuery) encode() string {
	v := url.Values{}
	if q.ProjectID != "" {
		v.Set("projectId", q.ProjectID)
	}
	if q.ClientID != "" {
		v.Set("clientId", q.ClientID)
	}
	if q.PublishedOnly {
		v.Set("publishedOnly", "true")
	}
	if q.FromPeriod != "" {
		v.Set("fromPeriod", q.FromPeriod)
	}
	if q.ToPeriod != "" {
		v.Set("toPeriod", q.ToPeriod)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Session) CreateReport(ctx context.Context, req CreateReportRequest) (Report, error) {
	var resp Report
	err := s.client.do(ctx, http.MethodPost, "/reports", s.token, req, &resp)
	return resp, err
}

func (s *Session) ListReports(ctx context.Context, q ReportListQuery) (ReportListResponse, error) {
	var resp ReportListResponse
	err := s.client.do(ctx, http.MethodGet, "/reports"+q.encode(), s.token, nil, &resp)
	return resp, err
}

func (s *Session) ReportsSummary(ctx context.Context, q ReportListQuery) (SummaryResponse, error) {
	var resp SummaryResponse
	err := s.client.do(ctx, http.MethodGet, "/reports/summary"+q.encode(), s.token, nil, &resp)
	return resp, err
}

func (s *Session) GetReport(ctx context.Context, id string) (Report, error) {
	var resp Report
	err := s.client.do(ctx, http.MethodGet, "/reports/"+id, s.token, nil, &resp)
	return resp, err
}

func (s *Session) UpdateReport(ctx context.Context, id string, req UpdateReportRequest) (Report, error) {
	var resp Report
	err := s.client.do(ctx, http.MethodPatch, "/reports/"+id, s.token, req, &resp)
	return resp, err
}

func (s *Session) DeleteReport(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/reports/"+id, s.token, nil, nil)
}

func (s *Session) PublishReport(ctx context.Context, id string) (Report, error) {
	var resp Report
	err := s.client.do(ctx, http.MethodPost, "/reports/"+id+"/publish", s.token, nil, &resp)
	return resp, err
}

func (s *Session) UnpublishReport(ctx context.Context, id string) (Report, error) {
	var resp Report
	err := s.client.do(ctx, http.MethodPost, "/reports/"+id+"/unpublish", s.token, nil, &resp)
	return resp, err
}

func (s *Session) EnablePublicLink(ctx context.Context, reportID string) (PublicLinkResponse, error) {
	var resp PublicLinkResponse
	err := s.client.do(ctx, http.MethodPost, "/reports/"+reportID+"/public-link", s.token, nil, &resp)
	return resp, err
}

func (s *Session) DisablePublicLink(ctx context.Context, reportID string) error {
	return s.client.do(ctx, http.MethodDelete, "/reports/"+reportID+"/public-link", s.token, nil, nil)
}

// ExportReport downloads the report rendered as "pdf" or "docx", returning
// the raw bytes and the response content type.
func (s *Session) ExportReport(ctx context.Context, id, format string) ([]byte, string, error) {
	return s.client.doRaw(ctx, http.MethodGet, "/reports/"+id+"/export?format="+url.QueryEscape(format), s.token)
}

// ============================================================================
// Client portal
// ============================================================================

// PortalQuery mirrors the portal listing query parameters.
type PortalQuery struct {
	FromPeriod string
	ToPeriod   string
	Page       int
	PageSize   int
}

func (q PortalQuery) encode() string {
	v := url.Values{}
	if q.FromPeriod != "" {
		v.Set("fromPeriod", q.FromPeriod)
	}
	if q.ToPeriod != "" {
		v.Set("toPeriod", q.ToPeriod)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Session) PortalReports(ctx context.Context, q PortalQuery) (ReportListResponse, error) {
	var resp ReportListResponse
	err := s.client.do(ctx, http.MethodGet, "/client/reports"+q.encode(), s.token, nil, &resp)
	return resp, err
}

func (s *Session) PortalReport(ctx context.Context, id string) (Report, error) {
	var resp Report
	err := s.client.do(ctx, http.MethodGet, "/client/reports/"+id, s.token, nil, &resp)
	return resp, err
}

func (s *Session) PortalSummary(ctx context.Context, fromPeriod, toPeriod string) (SummaryResponse, error) {
	var resp SummaryResponse
	err := s.client.do(ctx, http.MethodGet, "/client/reports/summary"+PortalQuery{FromPeriod: fromPeriod, ToPeriod: toPeriod}.encode(), s.token, nil, &resp)
	return resp, err
}
