// Package api - thin HTTP layer over the proforma engine.
// The API is only responsible for input ingestion, engine orchestration
// and output serialization; it never performs tariff logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"port-proforma/internal/errors"
	"port-proforma/internal/logging"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string, handler *Handler) *Server {
	s := &Server{
		handler: handler,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /proforma", s.handleProforma)
	s.mux.HandleFunc("GET /ratecard", s.handleRateCard)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleProforma handles POST /proforma
func (s *Server) handleProforma(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.handler.execute(requestID, &req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "ENGINE_ERROR"
		if errors.IsType(err, errors.TypeInput) {
			status = http.StatusBadRequest
			code = "VALIDATION_ERROR"
		}
		s.writeError(w, requestID, code, err.Error(), status)
		return
	}

	resp.DurationMs = time.Since(start).Milliseconds()

	for _, warning := range resp.Proforma.Warnings {
		logging.Warn("proforma warning",
			zap.String("request_id", requestID),
			zap.String("warning", warning))
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleRateCard handles GET /ratecard
func (s *Server) handleRateCard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.handler.Card().Version,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":   s.version,
		"rate_card": s.handler.Card().Version,
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	}, status)
}
