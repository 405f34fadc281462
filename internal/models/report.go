package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RequiredReportFields are the top-level keys every generated report must
// carry. The "30_day_plan" key is part of the model output contract and is
// kept in its original spelling.
var RequiredReportFields = []string{
	"readiness_score",
	"readiness_level",
	"summary",
	"strengths",
	"weak_areas",
	"risk_factors",
	"recommendations",
	"30_day_plan",
}

// ReadinessReport is the model-produced analysis, passed through verbatim.
// Only top-level key presence is enforced; the content itself is trusted
// as returned by the model.
type ReadinessReport map[string]any

// Score returns the readiness score coerced to an integer, whatever the
// stored representation.
func (r ReadinessReport) Score() int {
	switch v := r["readiness_score"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

func (r ReadinessReport) Level() string {
	if s, ok := r["readiness_level"].(string); ok {
		return s
	}
	return ""
}

// AnalysisSummary is one element of a user's analysis history. Timestamp is
// always an ISO-8601 string and ReadinessScore always an integer, regardless
// of how the store represents them.
type AnalysisSummary struct {
	ID             string          `json:"id"`
	Timestamp      string          `json:"timestamp"`
	ReadinessScore int             `json:"readiness_score"`
	ReadinessLevel string          `json:"readiness_level"`
	Analysis       ReadinessReport `json:"analysis"`
	StudentProfile map[string]any  `json:"student_profile"`
}
