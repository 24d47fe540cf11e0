package handlers

import (
	"net/http"

	"github.com/brandkitai/brandkit/internal/api/dto"
	"github.com/brandkitai/brandkit/internal/api/middleware"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/utils"
)

// UserHandler handles identity sync and profile endpoints
type UserHandler struct {
	service user.Service
	logger  *logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service user.Service, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, logger: log}
}

// Sync upserts the caller's user record from the verified identity. The
// call is idempotent and reports success even when persistence fails, so
// a flaky database never blocks sign-in; the next sync repairs the row.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	if _, err := h.service.SyncIdentity(r.Context(), identity); err != nil {
		h.logger.WithFields(map[string]interface{}{
			"subject": identity.Subject,
		}).WithError(err).Error("Identity sync failed")
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Identity synced", nil)
}

// Me returns the caller's profile
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	u, err := h.service.GetByIdentity(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err, "Failed to load profile")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.UserFromModel(u))
}
