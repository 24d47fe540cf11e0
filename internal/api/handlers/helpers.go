package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/utils"
)

// kitIDFromURL parses the {id} route param
func kitIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest("Invalid brand kit id")
	}
	return id, nil
}

// writeServiceError maps a service error onto the wire, falling back to 500
// for anything that is not an AppError.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal(fallback, err))
}
