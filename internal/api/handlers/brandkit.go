package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brandkitai/brandkit/internal/api/dto"
	"github.com/brandkitai/brandkit/internal/api/middleware"
	"github.com/brandkitai/brandkit/internal/domain/brandkit"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/utils"
	"github.com/brandkitai/brandkit/internal/pkg/validator"
)

// BrandKitHandler handles brand kit CRUD and generation endpoints
type BrandKitHandler struct {
	service   brandkit.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewBrandKitHandler creates a new BrandKitHandler
func NewBrandKitHandler(service brandkit.Service, log *logger.Logger, val *validator.Validator) *BrandKitHandler {
	return &BrandKitHandler{service: service, logger: log, validator: val}
}

// Create creates a brand kit owned by the caller
func (h *BrandKitHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	var req dto.CreateBrandKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	id, err := h.service.Create(r.Context(), identity, req.ToInput())
	if err != nil {
		writeServiceError(w, err, "Failed to create brand kit")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.CreateBrandKitResponse{ID: id})
}

// List returns the caller's brand kits, newest first
func (h *BrandKitHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	kits, err := h.service.List(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err, "Failed to list brand kits")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, kits)
}

// Get returns one brand kit the caller owns
func (h *BrandKitHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	id, err := kitIDFromURL(r)
	if err != nil {
		writeServiceError(w, err, "Invalid request")
		return
	}

	kit, err := h.service.Get(r.Context(), identity, id)
	if err != nil {
		writeServiceError(w, err, "Failed to get brand kit")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, kit)
}

// Patch merges generated fields onto a kit the caller owns
func (h *BrandKitHandler) Patch(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	id, err := kitIDFromURL(r)
	if err != nil {
		writeServiceError(w, err, "Invalid request")
		return
	}

	var req dto.PatchBrandKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	if err := h.service.Patch(r.Context(), identity, id, req.ToPatch()); err != nil {
		writeServiceError(w, err, "Failed to update brand kit")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Brand kit updated", nil)
}

// Generate produces one narrative field for a kit the caller owns
func (h *BrandKitHandler) Generate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthenticated("Missing identity"))
		return
	}

	id, err := kitIDFromURL(r)
	if err != nil {
		writeServiceError(w, err, "Invalid request")
		return
	}

	var req dto.GenerateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	text, err := h.service.GenerateField(r.Context(), identity, id, brandkit.GeneratableField(req.Field))
	if err != nil {
		writeServiceError(w, err, "Failed to generate field")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.GenerateFieldResponse{Field: req.Field, Text: text})
}
