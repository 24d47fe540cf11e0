package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brandkitai/brandkit/internal/api/dto"
	"github.com/brandkitai/brandkit/internal/api/middleware"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/utils"
	"github.com/brandkitai/brandkit/internal/pkg/validator"
	"github.com/brandkitai/brandkit/internal/services"
)

// BillingHandler handles plan and subscription endpoints
type BillingHandler struct {
	service   *services.BillingService
	logger    *logger.Logger
	validator *validator.Validator
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(service *services.BillingService, log *logger.Logger, val *validator.Validator) *BillingHandler {
	return &BillingHandler{service: service, logger: log, validator: val}
}

// ListPlans returns the purchasable plan tiers
func (h *BillingHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, h.service.ListPlans(r.Context()))
}

// GetInfo returns the caller's plan and subscription record
func (h *BillingHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	info, err := h.service.GetInfo(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err, "Failed to load billing info")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, info)
}

// UpdateSubscription moves the caller to a plan tier
func (h *BillingHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	var req dto.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	if err := h.service.ChangePlan(r.Context(), identity, req.Plan); err != nil {
		writeServiceError(w, err, "Failed to update subscription")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Subscription updated", nil)
}
