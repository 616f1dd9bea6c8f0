package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rajasatyajit/ReputationCheck/internal/checker"
	apperrors "github.com/rajasatyajit/ReputationCheck/internal/errors"
	"github.com/rajasatyajit/ReputationCheck/internal/logger"
)

// Handler handles HTTP requests for the API
type Handler struct {
	checker   *checker.Checker
	version   string
	buildTime string
	gitCommit string
	startTime time.Time
}

// NewHandler creates a new API handler
func NewHandler(c *checker.Checker, version, buildTime, gitCommit string) *Handler {
	return &Handler{
		checker:   c,
		version:   version,
		buildTime: buildTime,
		gitCommit: gitCommit,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/background-check", h.backgroundCheckHandler)

	// Health check endpoints
	r.Get("/health", h.healthHandler)
	r.Get("/health/ready", h.readinessHandler)
	r.Get("/health/live", h.livenessHandler)

	// System info
	r.Get("/version", h.versionHandler)
}

// checkRequest is the background-check request body
type checkRequest struct {
	Name string `json:"name"`
}

// backgroundCheckHandler handles POST /api/background-check
func (h *Handler) backgroundCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}

	result, err := h.checker.Run(ctx, req.Name)
	if err != nil {
		var verr apperrors.ValidationError
		if errors.As(err, &verr) {
			h.writeErrorResponse(w, http.StatusBadRequest, "Name is required")
			return
		}
		logger.WithContext(ctx).Error("Background check failed", "error", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

// healthHandler provides basic health check
func (h *Handler) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   h.version,
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// readinessHandler checks if the application is ready to serve traffic.
// Evidence sources degrade per-request, so readiness has no hard
// dependencies to verify.
func (h *Handler) readinessHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// livenessHandler checks if the application is alive
func (h *Handler) livenessHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startTime).String(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// versionHandler returns version information
func (h *Handler) versionHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"version":    h.version,
		"build_time": h.buildTime,
		"git_commit": h.gitCommit,
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// writeJSONResponse writes a JSON response
func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse writes the fixed error body {"error": <message>}
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSONResponse(w, statusCode, map[string]string{"error": message})
}
