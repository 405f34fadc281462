package service

import (
	"encoding/json"
	"strings"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

var requiredProfileFields = []string{
	"name", "location", "college", "college_tier", "qualification",
	"department", "cgpa", "attendance", "hackathons", "technologies",
	"certifications", "projects", "dsa_practice_frequency", "internships",
	"mock_interview_score", "resume_score",
}

var validDSAFrequencies = map[string]bool{
	"Daily":   true,
	"Weekly":  true,
	"Monthly": true,
}

var validInternshipDurations = map[string]bool{
	"1 month":  true,
	"3 months": true,
	"6 months": true,
	"1 year":   true,
}

// ValidationError is a client input error; handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateAnalyzeRequest checks the raw analyze payload and returns the
// decoded profile. Missing required fields are reported all at once; every
// other violation short-circuits with the first failed rule.
func ValidateAnalyzeRequest(body []byte) (*models.StudentProfile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ValidationError{Message: "Request must be JSON"}
	}

	var missing []string
	for _, field := range requiredProfileFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: "Missing required fields: " + strings.Join(missing, ", ")}
	}

	if out := numberField(raw, "attendance"); out != nil && (*out < 0 || *out > 100) {
		return nil, &ValidationError{Message: "Attendance must be between 0 and 100"}
	}
	if out := numberField(raw, "cgpa"); out != nil && (*out < 0 || *out > 10) {
		return nil, &ValidationError{Message: "CGPA must be between 0 and 10"}
	}
	if out := numberField(raw, "mock_interview_score"); out != nil && (*out < 0 || *out > 10) {
		return nil, &ValidationError{Message: "Mock interview score must be between 0 and 10"}
	}
	if out := numberField(raw, "resume_score"); out != nil && (*out < 0 || *out > 100) {
		return nil, &ValidationError{Message: "Resume score must be between 0 and 100"}
	}

	if v, ok := raw["dsa_practice_frequency"]; ok {
		var freq string
		if err := json.Unmarshal(v, &freq); err != nil || !validDSAFrequencies[freq] {
			return nil, &ValidationError{Message: "DSA practice frequency must be Daily, Weekly, or Monthly"}
		}
	}

	if v, ok := raw["internships"]; ok {
		if err := validateInternships(v); err != nil {
			return nil, err
		}
	}

	var profile models.StudentProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, &ValidationError{Message: "Invalid request body"}
	}

	return &profile, nil
}

func validateInternships(raw json.RawMessage) error {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return &ValidationError{Message: "Internships must be a list"}
	}

	for _, entry := range entries {
		var record map[string]json.RawMessage
		if err := json.Unmarshal(entry, &record); err != nil {
			return &ValidationError{Message: "Each internship must be an object with company and duration"}
		}
		if v, ok := record["duration"]; ok {
			var duration string
			if err := json.Unmarshal(v, &duration); err != nil || !validInternshipDurations[duration] {
				return &ValidationError{Message: "Internship duration must be 1 month, 3 months, 6 months, or 1 year"}
			}
		}
	}

	return nil
}

// numberField returns the field's numeric value, or nil when the field is
// absent or not a number. Non-numeric values surface later as a decode error.
func numberField(raw map[string]json.RawMessage, name string) *float64 {
	v, ok := raw[name]
	if !ok {
		return nil
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return nil
	}
	return &f
}
