package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/redrelief/internal/domain"
	"github.com/kailas-cloud/redrelief/internal/logger"
)

// operation names the client-facing messages of one endpoint.
type operation struct {
	failure  string // 500 message
	notFound string // 404 message, empty when the endpoint has no single-record lookup
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, op operation) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		validationHandler,
		notFoundHandler,
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, "Access token required"),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, "Insufficient permissions"),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, rateLimitMessage),
	}
}

// validationHandler surfaces the validation message verbatim.
func validationHandler(w http.ResponseWriter, err error, _ operation) bool {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	writeError(w, http.StatusBadRequest, ve.Message)
	return true
}

func notFoundHandler(w http.ResponseWriter, err error, op operation) bool {
	if !errors.Is(err, domain.ErrNotFound) {
		return false
	}
	msg := op.notFound
	if msg == "" {
		msg = "Not found"
	}
	writeError(w, http.StatusNotFound, msg)
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, msg string) errorHandler {
	return func(w http.ResponseWriter, err error, _ operation) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

// handleError maps err through the handler chain; unmatched errors become a 500
// carrying the raw error text in details.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error, op operation) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err, op) {
			log.Debug("request rejected", zap.Error(err))
			return
		}
	}
	log.Error(op.failure, zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   op.failure,
		"details": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// writeOK writes a success envelope: {"success": true} plus fields.
func writeOK(w http.ResponseWriter, status int, fields map[string]any) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	writeJSON(w, status, body)
}

// writeList writes {"success": true, "data": data, "count": count} plus extra.
func writeList[T any](w http.ResponseWriter, data []T, extra map[string]any) {
	if data == nil {
		data = []T{}
	}
	fields := map[string]any{"data": data, "count": len(data)}
	for k, v := range extra {
		fields[k] = v
	}
	writeOK(w, http.StatusOK, fields)
}

// decodeBody reads a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
