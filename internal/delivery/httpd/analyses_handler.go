package httpd

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/service"
)

func (h *Handler) GetUserAnalyses(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	analyses, err := h.analysisService.ListUserAnalyses(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch user analyses")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analyses": analyses,
	})
}
