package httpd

import (
	"errors"
	"io"
	"net/http"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/service"
)

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}

	profile, err := service.ValidateAnalyzeRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, docID, err := h.analysisService.Analyze(r.Context(), profile)
	if err != nil {
		h.handleGenerationError(w, err)
		return
	}

	// document_id is null when persistence is disabled or the write failed.
	var documentID interface{}
	if docID != "" {
		documentID = docID
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"analysis":    report,
		"document_id": documentID,
	})
}

func (h *Handler) handleGenerationError(w http.ResponseWriter, err error) {
	var genErr *service.GenerationError
	if !errors.As(err, &genErr) {
		h.logger.Error().Err(err).Msg("Analysis failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch genErr.Kind {
	case service.ErrKindQuota, service.ErrKindRateLimit:
		writeError(w, http.StatusTooManyRequests, genErr.Message)
	case service.ErrKindNotConfigured, service.ErrKindAuth:
		writeError(w, http.StatusServiceUnavailable, genErr.Message)
	default:
		h.logger.Error().Err(err).Str("kind", genErr.Kind.String()).Msg("Analysis failed")
		writeError(w, http.StatusInternalServerError, genErr.Message)
	}
}
