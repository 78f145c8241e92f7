package chi

import (
	"net/http"
	"time"

	healthuc "github.com/kailas-cloud/redrelief/internal/usecase/health"
	"github.com/kailas-cloud/redrelief/internal/version"
)

const apiVersion = "1.0.0"

var availableEndpoints = []string{
	"/api/health",
	"/api/docs",
	"/api/blood-inventory",
	"/api/blood-banks",
	"/api/blood-requests",
	"/api/campaigns",
	"/api/search",
}

// healthCheck handles GET /api/health. Anything but a healthy report is a 503.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.Health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status":    string(report.Status),
		"message":   "RedRelief API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"version":   apiVersion,
		"build":     version.Version,
		"checks":    checks,
	})
}

// docs handles GET /api/docs.
func (s *Server) docs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "RedRelief API Documentation",
		"version": apiVersion,
		"endpoints": map[string]any{
			"health": "GET /api/health",
			"bloodInventory": map[string]string{
				"getAll":  "GET /api/blood-inventory",
				"getById": "GET /api/blood-inventory/:id",
				"create":  "POST /api/blood-inventory",
				"update":  "PUT /api/blood-inventory/:id",
				"delete":  "DELETE /api/blood-inventory/:id",
			},
			"bloodBanks": map[string]string{
				"getAll":       "GET /api/blood-banks",
				"getById":      "GET /api/blood-banks/:id",
				"create":       "POST /api/blood-banks",
				"update":       "PUT /api/blood-banks/:id",
				"delete":       "DELETE /api/blood-banks/:id",
				"getInventory": "GET /api/blood-banks/:id/inventory",
			},
			"bloodRequests": map[string]string{
				"getAll":       "GET /api/blood-requests",
				"getById":      "GET /api/blood-requests/:id",
				"create":       "POST /api/blood-requests",
				"update":       "PUT /api/blood-requests/:id",
				"updateStatus": "PATCH /api/blood-requests/:id/status",
				"delete":       "DELETE /api/blood-requests/:id",
			},
			"campaigns": map[string]string{
				"getAll":         "GET /api/campaigns",
				"getById":        "GET /api/campaigns/:id",
				"create":         "POST /api/campaigns",
				"update":         "PUT /api/campaigns/:id",
				"updateStatus":   "PATCH /api/campaigns/:id/status",
				"delete":         "DELETE /api/campaigns/:id",
				"getByBloodBank": "GET /api/campaigns/blood-bank/:bloodBankId",
				"getByCity":      "GET /api/campaigns/city/:city",
			},
			"search": map[string]string{
				"combined":       "GET /api/search",
				"byBloodType":    "GET /api/search/blood-type/:type",
				"byCity":         "GET /api/search/city/:city",
				"availableTypes": "GET /api/search/available-types",
				"cities":         "GET /api/search/cities",
			},
		},
		"authentication": map[string]string{
			"required": "Bearer token in Authorization header",
			"example":  "Authorization: Bearer <id_token>",
		},
	})
}

func (s *Server) notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success":            false,
		"error":              "API endpoint not found",
		"availableEndpoints": availableEndpoints,
	})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
