package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/internal/store"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
	"github.com/Ivannn15/agencyroom/pkg/jwtx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"

	_ "github.com/Ivannn15/agencyroom/api" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	Metrics        *metrics.Metrics
	AuthService    *service.AuthService
	ClientService  *service.ClientService
	InviteService  *service.InviteService
	ProjectService *service.ProjectService
	ReportService  *service.ReportService
	PortalService  *service.PortalService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerClients()
	r.registerProjects()
	r.registerReports()
	r.registerPortal()
	r.registerPublic()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AgencyRoom API
//	@version		0.1.0
//	@description	Multi-tenant reporting backend for marketing agencies. Agencies manage
//	@description	clients, projects and monthly reports; clients read published reports
//	@description	through an invite-based portal; anyone with a share link can view a
//	@description	single published report anonymously.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Metrics:     r.Metrics,
	}

	// Registration and login are unauthenticated and brute-forceable,
	// so both get the strict IP limit.
	r.Mux.Handle("POST /auth/register-agency",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{
		ClientService: r.ClientService,
		InviteService: r.InviteService,
		Metrics:       r.Metrics,
	}

	staffWrite := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		)
	}
	staffRead := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /clients", staffWrite(h.HandleCreate))
	r.Mux.Handle("GET /clients", staffRead(h.HandleList))
	r.Mux.Handle("GET /clients/{id}", staffRead(h.HandleGet))
	r.Mux.Handle("PATCH /clients/{id}", staffWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /clients/{id}", staffWrite(h.HandleDelete))
	r.Mux.Handle("POST /clients/{id}/invite", staffWrite(h.HandleInvite))
	r.Mux.Handle("POST /clients/{id}/reset-password", staffWrite(h.HandleResetPassword))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	staffWrite := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		)
	}
	staffRead := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /projects", staffWrite(h.HandleCreate))
	r.Mux.Handle("GET /projects", staffRead(h.HandleList))
	r.Mux.Handle("GET /projects/{id}", staffRead(h.HandleGet))
	r.Mux.Handle("PATCH /projects/{id}", staffWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /projects/{id}", staffWrite(h.HandleDelete))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{
		ReportService: r.ReportService,
		Metrics:       r.Metrics,
	}

	staffWrite := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		)
	}
	staffRead := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /reports", staffWrite(h.HandleCreate))
	r.Mux.Handle("GET /reports", staffRead(h.HandleList))
	// Registered alongside "GET /reports/{id}"; the literal segment wins.
	r.Mux.Handle("GET /reports/summary", staffRead(h.HandleSummary))
	r.Mux.Handle("GET /reports/{id}", staffRead(h.HandleGet))
	r.Mux.Handle("PATCH /reports/{id}", staffWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /reports/{id}", staffWrite(h.HandleDelete))
	r.Mux.Handle("POST /reports/{id}/publish", staffWrite(h.HandlePublish))
	r.Mux.Handle("POST /reports/{id}/unpublish", staffWrite(h.HandleUnpublish))
	r.Mux.Handle("POST /reports/{id}/public-link", staffWrite(h.HandleEnableLink))
	r.Mux.Handle("DELETE /reports/{id}/public-link", staffWrite(h.HandleDisableLink))
	// Export renders a document per call, so it gets the moderate limit
	// even though it is a read.
	r.Mux.Handle("GET /reports/{id}/export",
		httpx.Chain(http.HandlerFunc(h.HandleExport),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireStaff(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPortal() {
	h := &PortalHandler{
		InviteService: r.InviteService,
		PortalService: r.PortalService,
		Metrics:       r.Metrics,
	}

	// Invite lookup and acceptance are unauthenticated token-guessing
	// surfaces; strict IP limits on both.
	r.Mux.Handle("GET /client/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleInviteDetails),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /client/invites/{token}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAcceptInvite),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	portal := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePortal(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /client/reports", portal(h.HandleReports))
	r.Mux.Handle("GET /client/reports/summary", portal(h.HandleSummary))
	r.Mux.Handle("GET /client/reports/{id}", portal(h.HandleReport))
}

func (r *Router) registerPublic() {
	h := &PublicHandler{
		ReportService: r.ReportService,
		Metrics:       r.Metrics,
	}

	// Anonymous share links; high-volume but harmless reads.
	r.Mux.Handle("GET /public/reports/{publicId}",
		httpx.Chain(http.HandlerFunc(h.HandleReport),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
