package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/brandkitai/brandkit/internal/pkg/utils"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db      *sql.DB
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *sql.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Healthz reports process liveness
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Readyz reports readiness, checking database connectivity
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, "NOT_READY", "Database unreachable")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
