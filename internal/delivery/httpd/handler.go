package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/service"
)

type Handler struct {
	analysisService service.AnalysisService
	logger          zerolog.Logger
}

func NewHandler(analysisService service.AnalysisService, logger zerolog.Logger) *Handler {
	return &Handler{
		analysisService: analysisService,
		logger:          logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)
	router.Post("/analyze", h.Analyze)
	router.Get("/user/{user_id}/analyses", h.GetUserAnalyses)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
