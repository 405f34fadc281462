package httpd

import "net/http"

// HealthCheck reports whether the two external collaborators are wired up,
// not whether they are currently reachable.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":              "healthy",
		"gemini_configured":   h.analysisService.GeminiConfigured(),
		"firebase_configured": h.analysisService.StoreConfigured(),
	})
}
