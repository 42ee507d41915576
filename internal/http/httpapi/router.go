package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"wastenot/internal/http/handlers"
	"wastenot/internal/middleware"
	"wastenot/internal/session"
)

// Options carries the router's cross-cutting configuration.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	Logger          func(http.Handler) http.Handler
}

// NewRouter wires all routes. Mutation routes sit behind the session gate;
// reads and donations are public.
func NewRouter(app *handlers.App, sessions session.Store, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Locale(opts.DefaultLocale, opts.CountryLookup),
	)
	if opts.Logger != nil {
		r.Use(opts.Logger)
	}
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}
	r.Use(middleware.CORS(opts.AllowedOrigins))

	requireSession := middleware.RequireSession(sessions)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)
		r.Post("/logout", app.Logout)
		r.With(requireSession).Get("/me", app.Me)
	})

	r.Route("/v1/products", func(r chi.Router) {
		r.Get("/", app.ProductsList)
		r.Get("/{id}", app.ProductsGet)
		r.Get("/category/{category}", app.ProductsByCategory)
		r.With(requireSession).Post("/", app.ProductsCreate)
		r.With(requireSession).Patch("/{id}", app.ProductsUpdate)
		r.With(requireSession).Delete("/{id}", app.ProductsDelete)
	})

	r.Route("/v1/agents", func(r chi.Router) {
		r.Get("/", app.AgentsList)
		r.Get("/{id}", app.AgentsGet)
		r.With(requireSession).Post("/", app.AgentsCreate)
	})

	r.Route("/v1/donations", func(r chi.Router) {
		r.Get("/", app.DonationsList)
		r.Post("/", app.DonationsCreate)
	})

	return r
}
