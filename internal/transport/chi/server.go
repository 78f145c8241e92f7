package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/redrelief/internal/identity"
	"github.com/kailas-cloud/redrelief/internal/metrics"
	bankuc "github.com/kailas-cloud/redrelief/internal/usecase/bank"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
	healthuc "github.com/kailas-cloud/redrelief/internal/usecase/health"
	inventoryuc "github.com/kailas-cloud/redrelief/internal/usecase/inventory"
	requestuc "github.com/kailas-cloud/redrelief/internal/usecase/request"
	searchuc "github.com/kailas-cloud/redrelief/internal/usecase/search"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Search    *searchuc.Service
	Campaigns *campaignuc.Service
	Inventory *inventoryuc.Service
	Banks     *bankuc.Service
	Requests  *requestuc.Service
	Health    *healthuc.Service
}

// Options configures the cross-cutting middleware.
type Options struct {
	// Verifier enables bearer token verification. Nil disables auth entirely.
	Verifier *identity.Verifier
	// AdminRole is the role required by admin-gated routes.
	AdminRole string
	// RequireAdminForStatus gates campaign status changes on AdminRole.
	RequireAdminForStatus bool
	// Limiter enables per-IP rate limiting on /api. Nil disables it.
	Limiter Limiter
	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string
}

// Server is the RedRelief HTTP API.
type Server struct {
	Services
	opts          Options
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(services Services, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Services:      services,
		opts:          opts,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Routes builds the router with the full middleware chain.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())
	r.Use(securityHeaders()...)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(s.opts.Limiter))

		r.Get("/health", s.healthCheck)
		r.Get("/docs", s.docs)

		r.Group(func(r chi.Router) {
			r.Use(OptionalAuth(s.opts.Verifier))

			r.Route("/blood-inventory", func(r chi.Router) {
				r.Get("/", s.listInventory)
				r.Post("/", s.createInventory)
				r.Get("/{id}", s.getInventory)
				r.Put("/{id}", s.updateInventory)
				r.Delete("/{id}", s.deleteInventory)
			})

			r.Route("/blood-banks", func(r chi.Router) {
				r.Get("/", s.listBanks)
				r.Post("/", s.createBank)
				r.Get("/{id}", s.getBank)
				r.Put("/{id}", s.updateBank)
				r.Delete("/{id}", s.deleteBank)
				r.Get("/{id}/inventory", s.bankInventory)
			})

			r.Route("/blood-requests", func(r chi.Router) {
				r.Get("/", s.listRequests)
				r.Post("/", s.createRequest)
				r.Get("/{id}", s.getRequest)
				r.Put("/{id}", s.updateRequest)
				r.Patch("/{id}/status", s.updateRequestStatus)
				r.Delete("/{id}", s.deleteRequest)
			})

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", s.listCampaigns)
				r.Post("/", s.createCampaign)
				r.Get("/blood-bank/{bloodBankId}", s.campaignsByBloodBank)
				r.Get("/city/{city}", s.campaignsByCity)
				r.Get("/{id}", s.getCampaign)
				r.Put("/{id}", s.updateCampaign)
				r.Delete("/{id}", s.deleteCampaign)
				r.With(s.statusGate()...).Patch("/{id}/status", s.updateCampaignStatus)
			})

			r.Route("/search", func(r chi.Router) {
				r.Get("/", s.search)
				r.Get("/blood-type/{type}", s.searchByBloodType)
				r.Get("/city/{city}", s.searchByCity)
				r.Get("/available-types", s.availableTypes)
				r.Get("/cities", s.cities)
			})
		})
	})

	return r
}

// statusGate returns the middleware guarding campaign status changes.
func (s *Server) statusGate() []func(http.Handler) http.Handler {
	if !s.opts.RequireAdminForStatus {
		return nil
	}
	return []func(http.Handler) http.Handler{RequireRole(s.opts.AdminRole)}
}
