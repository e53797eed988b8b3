package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"campaignfinance/internal/http/handlers"
	"campaignfinance/internal/middleware"
)

// NewRouter wires the read-only API. lookup may be nil when no GeoIP
// database is configured.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	if app.Config.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.RequestID,
		middleware.Trace,
		middleware.AccessLog(app.Logger, lookup),
		chimw.Recoverer,
		middleware.CORS(app.Config.CORSAllowedOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)
	r.NotFound(app.NotFound)
	r.MethodNotAllowed(app.MethodNotAllowed)

	r.Get("/status", app.Status)

	r.Route("/api", func(r chi.Router) {
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Get("/search/contributors/{name}", app.SearchContributors)
		r.Get("/search/candidates/{name}", app.SearchCandidates)

		r.Get("/candidate/{ncsbeID}", app.CommitteeContributions)
		r.Get("/candidates/{year}", app.CandidatesForYear)

		r.Route("/committees/{ncsbeID}", func(r chi.Router) {
			r.Get("/", app.Committee)
			r.Get("/contributions", app.CommitteeContributions)
			r.Get("/expenditures", app.CommitteeExpenditures)
		})

		r.Route("/contributors/{contributorID}", func(r chi.Router) {
			r.Get("/", app.Contributor)
			r.Get("/contributions", app.ContributorContributions)
		})
	})

	return r
}
