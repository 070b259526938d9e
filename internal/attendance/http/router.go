package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/httpx"
	"github.com/andeanops/rollcall/pkg/jwtx"
	"github.com/andeanops/rollcall/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	RosterService     *service.RosterService
	AttendanceService *service.AttendanceService
	BootstrapService  *service.BootstrapService
	ProvisionService  *service.ProvisionService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRoster()
	r.registerAttendance()
	r.registerProvisioning()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rollcall Attendance Service API
//	@version		0.1.0
//	@description	City-scoped personnel attendance registration. Supervisors log in, read their city's roster, and register one attendance entry per person per day. Session tokens are EdDSA-signed JWTs verifiable against the JWKS endpoint.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRoster() {
	h := &PersonnelHandler{
		RosterService:    r.RosterService,
		ProvisionService: r.ProvisionService,
	}

	r.Mux.Handle("GET /v1/personnel",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Roster writes are an administrator-only provisioning concern.
	r.Mux.Handle("POST /v1/personnel",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleAdministrator)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService}

	r.Mux.Handle("POST /v1/attendance",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/attendance",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProvisioning() {
	h := &CredentialsHandler{ProvisionService: r.ProvisionService}

	r.Mux.Handle("POST /v1/credentials",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleAdministrator)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	// Public by necessity; the strict IP limit and the token keep it tame.
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
}
