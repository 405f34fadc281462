package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

// maxUserAnalyses caps the history read path.
const maxUserAnalyses = 50

// docData builds the stored document for one analysis. The readiness score
// and level are duplicated at the top level for query convenience.
func docData(profile *models.StudentProfile, report models.ReadinessReport, now time.Time) map[string]any {
	return map[string]any{
		"user_id":         profile.UserID,
		"student_profile": profileDoc(profile),
		"analysis":        map[string]any(report),
		"timestamp":       now.Format(time.RFC3339),
		"readiness_score": report.Score(),
		"readiness_level": report.Level(),
	}
}

// profileDoc stores the profile under its wire field names.
func profileDoc(p *models.StudentProfile) map[string]any {
	raw, err := json.Marshal(p)
	if err != nil {
		return map[string]any{}
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string]any{}
	}
	return doc
}

// summaryFromDoc rebuilds a history entry from a stored document, coercing
// the score to an integer and the timestamp to an ISO-8601 string whatever
// the stored representation. An absent timestamp gets the current time.
func summaryFromDoc(id string, doc map[string]any, now time.Time) models.AnalysisSummary {
	summary := models.AnalysisSummary{
		ID:             id,
		Timestamp:      coerceTimestamp(doc["timestamp"], now),
		ReadinessScore: coerceScore(doc["readiness_score"]),
		ReadinessLevel: "Low",
		StudentProfile: map[string]any{},
	}

	if level, ok := doc["readiness_level"].(string); ok && level != "" {
		summary.ReadinessLevel = level
	}
	if analysis, ok := doc["analysis"].(map[string]any); ok {
		summary.Analysis = models.ReadinessReport(analysis)
	}
	if profile, ok := doc["student_profile"].(map[string]any); ok {
		summary.StudentProfile = profile
	}

	return summary
}

func coerceScore(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

func coerceTimestamp(v any, now time.Time) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case nil:
		return now.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// sortNewestFirst orders summaries by timestamp descending. Timestamps are
// compared as plain strings, so empty values sort last.
func sortNewestFirst(summaries []models.AnalysisSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Timestamp > summaries[j].Timestamp
	})
}
