package agencysdk

import "time"

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterAgencyRequest struct {
	AgencyName string `json:"agencyName"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by register, login and invite acceptance. The
// same token is also set as an httpOnly cookie.
type SessionResponse struct {
	Token  string `json:"token"`
	User   User   `json:"user"`
	Agency Agency `json:"agency"`
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	AgencyID string `json:"agencyId"`
	ClientID string `json:"clientId,omitempty"`
}

type Agency struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	PrimaryEmail string    `json:"primaryEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	User   User   `json:"user"`
	Agency Agency `json:"agency"`
}

// ============================================================================
// Clients
// ============================================================================

type Client struct {
	ID           string    `json:"id"`
	AgencyID     string    `json:"agencyId"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateClientRequest struct {
	Name         string `json:"name"`
	Company      string `json:"company,omitempty"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// UpdateClientRequest patches a client; nil fields are left unchanged.
type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	Company      *string `json:"company,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
}

// ResetPasswordResponse carries the regenerated portal password; it is shown
// exactly once and never stored in plaintext.
type ResetPasswordResponse struct {
	Password string `json:"password"`
}

// ============================================================================
// Invites
// ============================================================================

type CreateInviteRequest struct {
	Email         string `json:"email"`
	ExpiresInDays int    `json:"expiresInDays,omitempty"`
}

// InviteResponse is the mint result. Token appears only here; the server
// keeps just its fingerprint.
type InviteResponse struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type InvitePreviewResponse struct {
	Email      string    `json:"email"`
	ClientName string    `json:"clientName"`
	AgencyName string    `json:"agencyName"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type AcceptInviteRequest struct {
	FullName string `json:"fullName,omitempty"`
	Password string `json:"password"`
}

// ============================================================================
// Projects
// ============================================================================

type Project struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Client *Client `json:"client,omitempty"`
}

type CreateProjectRequest struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type UpdateProjectRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ============================================================================
// Reports
// ============================================================================

type Report struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Period      string     `json:"period"`
	Summary     string     `json:"summary"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	Spend   *float64 `json:"spend,omitempty"`
	Revenue *float64 `json:"revenue,omitempty"`
	Leads   *int64   `json:"leads,omitempty"`
	CPA     *float64 `json:"cpa,omitempty"`
	ROAS    *float64 `json:"roas,omitempty"`

	WhatWasDone []string `json:"whatWasDone,omitempty"`
	NextPlan    []string `json:"nextPlan,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Project *Project `json:"project,omitempty"`
	Client  *Client  `json:"client,omitempty"`
}

type CreateReportRequest struct {
	ProjectID string `json:"projectId"`
	Period    string `json:"period"`
	Summary   string `json:"summary"`

	Spend   *float64 `json:"spend,omitempty"`
	Revenue *float64 `json:"revenue,omitempty"`
	Leads   *int64   `json:"leads,omitempty"`
	CPA     *float64 `json:"cpa,omitempty"`
	ROAS    *float64 `json:"roas,omitempty"`

	WhatWasDone []string `json:"whatWasDone,omitempty"`
	NextPlan    []string `json:"nextPlan,omitempty"`
}

type UpdateReportRequest struct {
	Period  *string `json:"period,omitempty"`
	Summary *string `json:"summary,omitempty"`

	Spend   *float64 `json:"spend,omitempty"`
	Revenue *float64 `json:"revenue,omitempty"`
	Leads   *int64   `json:"leads,omitempty"`
	CPA     *float64 `json:"cpa,omitempty"`
	ROAS    *float64 `json:"roas,omitempty"`

	WhatWasDone *[]string `json:"whatWasDone,omitempty"`
	NextPlan    *[]string `json:"nextPlan,omitempty"`
}

// ReportListResponse is one page of reports plus the filter's total count.
type ReportListResponse struct {
	Items    []Report `json:"items"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

// SummaryResponse is the KPI aggregation over a report set. Averages are null
// when no in-range report carries the metric.
type SummaryResponse struct {
	TotalSpend   float64  `json:"totalSpend"`
	TotalRevenue float64  `json:"totalRevenue"`
	TotalLeads   int64    `json:"totalLeads"`
	AvgCPA       *float64 `json:"avgCpa"`
	AvgROAS      *float64 `json:"avgRoas"`
	CountReports int      `json:"countReports"`
}

// ============================================================================
// Public links
// ============================================================================

type PublicLinkResponse struct {
	PublicID string `json:"publicId"`
	IsActive bool   `json:"isActive"`
}

// PublicReportResponse is the anonymous snapshot behind an active link. It
// deliberately omits internal identifiers.
type PublicReportResponse struct {
	AgencyName  string     `json:"agencyName"`
	ClientName  string     `json:"clientName"`
	ProjectName string     `json:"projectName"`
	Period      string     `json:"period"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	Spend   *float64 `json:"spend,omitempty"`
	Revenue *float64 `json:"revenue,omitempty"`
	Leads   *int64   `json:"leads,omitempty"`
	CPA     *float64 `json:"cpa,omitempty"`
	ROAS    *float64 `json:"roas,omitempty"`

	WhatWasDone []string `json:"whatWasDone,omitempty"`
	NextPlan    []string `json:"nextPlan,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
