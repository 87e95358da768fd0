// Package metrics exposes the Prometheus collectors for the product's key
// flows. A nil *Metrics is safe to call, which keeps tests free of registry
// bookkeeping.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors.
type Metrics struct {
	AgenciesRegistered prometheus.Counter
	LoginFailures      prometheus.Counter
	InvitesCreated     prometheus.Counter
	InvitesAccepted    prometheus.Counter
	ReportsPublished   prometheus.Counter
	PublicLinkViews    prometheus.Counter
	ExportsRendered    *prometheus.CounterVec
}

// New registers and returns the collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		AgenciesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agencyroom_agencies_registered_total",
			Help: "Total number of agencies registered",
		}),
		LoginFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agencyroom_login_failures_total",
			Help: "Total number of failed login attempts",
		}),
		InvitesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agencyroom_invites_created_total",
			Help: "Total number of client invites minted",
		}),
		InvitesAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agencyroom_invites_accepted_total",
			Help: "Total number of client invites accepted",
		}),
		ReportsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agencyroom_reports_published_total",
			Help: "Total number of report publish operations",
		}),
		PublicLinkViews: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agencyroom_public_link_views_total",
			Help: "Total number of public report link resolutions",
		}),
		ExportsRendered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agencyroom_exports_rendered_total",
			Help: "Total number of report exports, by format",
		}, []string{"format"}),
	}
}

func (m *Metrics) IncAgencyRegistered() {
	if m != nil {
		m.AgenciesRegistered.Inc()
	}
}

func (m *Metrics) IncLoginFailure() {
	if m != nil {
		m.LoginFailures.Inc()
	}
}

func (m *Metrics) IncInviteCreated() {
	if m != nil {
		m.InvitesCreated.Inc()
	}
}

func (m *Metrics) IncInviteAccepted() {
	if m != nil {
		m.InvitesAccepted.Inc()
	}
}

func (m *Metrics) IncReportPublished() {
	if m != nil {
		m.ReportsPublished.Inc()
	}
}

func (m *Metrics) IncPublicLinkView() {
	if m != nil {
		m.PublicLinkViews.Inc()
	}
}

func (m *Metrics) IncExport(format string) {
	if m != nil {
		m.ExportsRendered.WithLabelValues(format).Inc()
	}
}
