package store

import (
	"context"
	"errors"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories to keep concerns tidy and testable. Tenant scoping
// is part of the repository contracts: reads that take an agencyID (or
// clientID for the portal path) must return ErrNotFound for rows owned by a
// different tenant, so the service layer can never leak across agencies by
// forgetting a check.
type Store interface {
	Agencies() Agencies
	Users() Users
	Clients() Clients
	Projects() Projects
	Reports() Reports
	PublicLinks() PublicLinks
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rollback when fn errors,
	// commit otherwise. This is the recommended way to run the multi-step
	// operations that must be atomic (invite acceptance in particular).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Agencies interface {
	// CreateAgency inserts a new agency (id provided by the app via ULID).
	CreateAgency(ctx context.Context, a domain.Agency) error

	GetAgencyByID(ctx context.Context, id string) (domain.Agency, error)

	// GetAgencyBySlug is used for slug de-duplication at registration.
	GetAgencyBySlug(ctx context.Context, slug string) (domain.Agency, error)
}

type Users interface {
	// CreateUser inserts a new user. The email column is unique; drivers
	// return ErrAlreadyExists on a duplicate.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the login lookup. Emails are stored lowercased.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByClientID returns the portal user bound to a client, if any.
	GetUserByClientID(ctx context.Context, clientID string) (domain.User, error)

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error
}

type Clients interface {
	CreateClient(ctx context.Context, c domain.Client) error

	// ListClients returns an agency's clients, newest first.
	ListClients(ctx context.Context, agencyID string) ([]domain.Client, error)

	// GetClient is agency-scoped; rows of other tenants are ErrNotFound.
	GetClient(ctx context.Context, id, agencyID string) (domain.Client, error)

	UpdateClient(ctx context.Context, c domain.Client) error

	DeleteClient(ctx context.Context, id string) error
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error

	// ListProjects returns an agency's projects joined with their clients,
	// newest first, optionally filtered to one client.
	ListProjects(ctx context.Context, agencyID, clientID string) ([]domain.ProjectDetail, error)

	// GetProject is agency-scoped (transitively via the owning client).
	GetProject(ctx context.Context, id, agencyID string) (domain.ProjectDetail, error)

	UpdateProject(ctx context.Context, p domain.Project) error

	DeleteProject(ctx context.Context, id string) error

	// CountProjectsByClient backs the client delete guard.
	CountProjectsByClient(ctx context.Context, clientID string) (int64, error)
}

// ReportFilter narrows report queries. Zero values mean "don't filter".
// Period bounds are inclusive lexical comparisons on the "YYYY-MM" key.
type ReportFilter struct {
	AgencyID      string
	ProjectID     string
	ClientID      string
	PublishedOnly bool
	FromPeriod    string
	ToPeriod      string

	// Pagination; only honoured by ListReports. Callers clamp.
	Page     int
	PageSize int
}

type Reports interface {
	CreateReport(ctx context.Context, r domain.Report) error

	// GetReport is agency-scoped via project -> client -> agency.
	GetReport(ctx context.Context, id, agencyID string) (domain.ReportDetail, error)

	// GetReportByID is unscoped; only the public-link read path uses it
	// after the link itself has been resolved.
	GetReportByID(ctx context.Context, id string) (domain.ReportDetail, error)

	// GetPublishedReportForClient backs the portal single-report fetch:
	// the row must be published AND belong to the given client.
	GetPublishedReportForClient(ctx context.Context, id, clientID string) (domain.ReportDetail, error)

	// ListReports returns a page ordered by created_at DESC plus the total
	// row count for the filter.
	ListReports(ctx context.Context, f ReportFilter) ([]domain.ReportDetail, int64, error)

	// ListKPIs projects the numeric columns for summary aggregation.
	ListKPIs(ctx context.Context, f ReportFilter) ([]domain.KPIRow, error)

	UpdateReport(ctx context.Context, r domain.Report) error

	// DeleteReport cascades to the report's public link (per schema).
	DeleteReport(ctx context.Context, id string) error

	// SetPublishState flips status and published_at together so the
	// status <=> timestamp invariant can't be violated halfway.
	SetPublishState(ctx context.Context, id string, status domain.ReportStatus, publishedAt *time.Time) error

	// CountReportsByProject backs the project delete guard.
	CountReportsByProject(ctx context.Context, projectID string) (int64, error)
}

type PublicLinks interface {
	CreateLink(ctx context.Context, l domain.PublicReportLink) error

	// GetLinkByReportID returns the (at most one) link row for a report.
	GetLinkByReportID(ctx context.Context, reportID string) (domain.PublicReportLink, error)

	// GetActiveLinkByPublicID resolves the anonymous read path; inactive
	// links are ErrNotFound.
	GetActiveLinkByPublicID(ctx context.Context, publicID string) (domain.PublicReportLink, error)

	// SetLinkActive toggles is_active and bumps updated_at.
	SetLinkActive(ctx context.Context, reportID string, active bool) error
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is sha256 of the raw token).
	CreateInvite(ctx context.Context, inv domain.ClientInvite) error

	// GetInviteByTokenHash returns the invite regardless of used/expired
	// state; the service distinguishes NotFound, Conflict and Gone.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.ClientInvite, error)

	// GetInviteByID re-reads an invite inside the accept transaction.
	GetInviteByID(ctx context.Context, id string) (domain.ClientInvite, error)

	// MarkInviteUsed stamps used_at (transaction-friendly).
	MarkInviteUsed(ctx context.Context, id string, usedAt time.Time) error

	// DeleteExpiredInvites removes lapsed, never-used invites (housekeeping).
	DeleteExpiredInvites(ctx context.Context) error
}
