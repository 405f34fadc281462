package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":                "user-1",
		"name":                   "Asha Verma",
		"location":               "Pune",
		"college":                "Crestview Institute of Technology",
		"college_tier":           "Tier 2",
		"qualification":          "B.Tech",
		"department":             "Computer Science",
		"cgpa":                   8.2,
		"attendance":             91,
		"hackathons":             "Smart India Hackathon 2024",
		"technologies":           "Go, Python, SQL",
		"certifications":         "AWS Cloud Practitioner",
		"projects":               "Placement tracker, URL shortener",
		"dsa_practice_frequency": "Daily",
		"internships": []map[string]interface{}{
			{"company": "Acme Labs", "duration": "3 months"},
		},
		"mock_interview_score": 7,
		"resume_score":         85,
	}
}

func marshalPayload(t *testing.T, payload map[string]interface{}) []byte {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func TestValidateAnalyzeRequest_Valid(t *testing.T) {
	profile, err := ValidateAnalyzeRequest(marshalPayload(t, validPayload()))
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", profile.Name)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, 8.2, profile.CGPA)
	assert.Equal(t, "Daily", profile.DSAPracticeFrequency)
	require.Len(t, profile.Internships, 1)
	assert.Equal(t, "Acme Labs", profile.Internships[0].Company)
	assert.Equal(t, "3 months", profile.Internships[0].Duration)
}

func TestValidateAnalyzeRequest_NotJSON(t *testing.T) {
	for _, body := range []string{"not json at all", `"a bare string"`, `[1, 2, 3]`, ""} {
		_, err := ValidateAnalyzeRequest([]byte(body))
		require.Error(t, err, "body: %q", body)
		assert.Equal(t, "Request must be JSON", err.Error())
	}
}

func TestValidateAnalyzeRequest_MissingFieldsListsAll(t *testing.T) {
	payload := validPayload()
	delete(payload, "name")
	delete(payload, "cgpa")
	delete(payload, "internships")

	_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Missing required fields:")
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "cgpa")
	assert.Contains(t, err.Error(), "internships")
}

func TestValidateAnalyzeRequest_Ranges(t *testing.T) {
	tests := []struct {
		field   string
		value   interface{}
		message string
	}{
		{"attendance", -1, "Attendance must be between 0 and 100"},
		{"attendance", 101, "Attendance must be between 0 and 100"},
		{"cgpa", -0.5, "CGPA must be between 0 and 10"},
		{"cgpa", 11, "CGPA must be between 0 and 10"},
		{"mock_interview_score", -1, "Mock interview score must be between 0 and 10"},
		{"mock_interview_score", 10.5, "Mock interview score must be between 0 and 10"},
		{"resume_score", -10, "Resume score must be between 0 and 100"},
		{"resume_score", 101, "Resume score must be between 0 and 100"},
	}

	for _, tt := range tests {
		payload := validPayload()
		payload[tt.field] = tt.value

		_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
		require.Error(t, err, "%s=%v", tt.field, tt.value)
		assert.Equal(t, tt.message, err.Error())
	}
}

func TestValidateAnalyzeRequest_RangeBoundariesAccepted(t *testing.T) {
	payload := validPayload()
	payload["attendance"] = 0
	payload["cgpa"] = 10
	payload["mock_interview_score"] = 0
	payload["resume_score"] = 100

	_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	assert.NoError(t, err)
}

func TestValidateAnalyzeRequest_DSAFrequency(t *testing.T) {
	payload := validPayload()
	payload["dsa_practice_frequency"] = "Yearly"

	_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	require.Error(t, err)
	assert.Equal(t, "DSA practice frequency must be Daily, Weekly, or Monthly", err.Error())
}

func TestValidateAnalyzeRequest_InternshipsNotAList(t *testing.T) {
	payload := validPayload()
	payload["internships"] = "two internships"

	_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	require.Error(t, err)
	assert.Equal(t, "Internships must be a list", err.Error())
}

func TestValidateAnalyzeRequest_InternshipEntryNotAnObject(t *testing.T) {
	payload := validPayload()
	payload["internships"] = []interface{}{"Acme Labs"}

	_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	require.Error(t, err)
	assert.Equal(t, "Each internship must be an object with company and duration", err.Error())
}

func TestValidateAnalyzeRequest_InternshipDuration(t *testing.T) {
	payload := validPayload()
	payload["internships"] = []map[string]interface{}{
		{"company": "Acme Labs", "duration": "2 years"},
	}

	_, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	require.Error(t, err)
	assert.Equal(t, "Internship duration must be 1 month, 3 months, 6 months, or 1 year", err.Error())
}

func TestValidateAnalyzeRequest_EmptyInternshipsAccepted(t *testing.T) {
	payload := validPayload()
	payload["internships"] = []interface{}{}

	profile, err := ValidateAnalyzeRequest(marshalPayload(t, payload))
	require.NoError(t, err)
	assert.Empty(t, profile.Internships)
}
