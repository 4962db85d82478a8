package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aussiebroadwan/partsdash/internal/settings/metrics"
	"github.com/aussiebroadwan/partsdash/pkg/httpx"
	"github.com/aussiebroadwan/partsdash/pkg/jwtx"
	"github.com/aussiebroadwan/partsdash/pkg/slogx"

	_ "github.com/aussiebroadwan/partsdash/api/settings" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes accepted by the settings endpoints.
const (
	ScopeSettingsRead  = "settings:read"
	ScopeSettingsWrite = "settings:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	db       Pinger
	gatherer prometheus.Gatherer

	Settings SettingsManager
	Metrics  *metrics.Metrics
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	db Pinger,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		db:           db,
		gatherer:     gatherer,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSettings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Partsdash Settings API
//	@version		0.1.0
//	@description	Per-user dashboard settings. Every settings response is wrapped in a {success, data, message} envelope.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/partsdash
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
//	@description				HS256 access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{Settings: r.Settings}

	read := httpx.Chain(http.HandlerFunc(h.HandleGet),
		r.observe("get_settings"),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeSettingsRead, ScopeSettingsWrite),
		httpx.RateLimitByUser(httpx.ReadLimit),
	)

	update := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		r.observe("update_settings"),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeSettingsWrite),
		httpx.RateLimitByUser(httpx.WriteLimit),
	)

	reset := httpx.Chain(http.HandlerFunc(h.HandleReset),
		r.observe("reset_settings"),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeSettingsWrite),
		httpx.RateLimitByUser(httpx.WriteLimit),
	)

	r.Mux.Handle("GET /v1/settings", read)
	r.Mux.Handle("PUT /v1/settings", update)
	r.Mux.Handle("POST /v1/settings/reset", reset)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.db),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	}
}

// observe records endpoint latency, including time spent rejecting
// unauthenticated or rate limited requests.
func (r *Router) observe(endpoint string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			r.Metrics.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
		})
	}
}
