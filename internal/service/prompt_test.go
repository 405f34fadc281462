package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

func TestBuildAnalysisPrompt_PlaceholdersNeverOmitted(t *testing.T) {
	prompt := buildAnalysisPrompt(&models.StudentProfile{Name: "Asha Verma"})

	assert.Contains(t, prompt, "- Name: Asha Verma")
	assert.Contains(t, prompt, "- Location: N/A")
	assert.Contains(t, prompt, "- College Tier: N/A")
	assert.Contains(t, prompt, "- Hackathons: None")
	assert.Contains(t, prompt, "- Certifications: None")
	assert.Contains(t, prompt, "- DSA Practice Frequency: N/A")
	assert.Contains(t, prompt, "- Internships: 0 internship(s)")
	assert.Contains(t, prompt, "  - None")
}

func TestBuildAnalysisPrompt_InternshipBullets(t *testing.T) {
	prompt := buildAnalysisPrompt(&models.StudentProfile{
		Internships: []models.InternshipRecord{
			{Company: "Acme Labs", Duration: "3 months"},
			{Company: "Initech", Duration: "1 year"},
		},
	})

	assert.Contains(t, prompt, "- Internships: 2 internship(s)")
	assert.Contains(t, prompt, "  - Acme Labs (3 months)")
	assert.Contains(t, prompt, "  - Initech (1 year)")
	assert.NotContains(t, prompt, "  - None")
}

func TestBuildAnalysisPrompt_InstructionsComeFirst(t *testing.T) {
	prompt := buildAnalysisPrompt(&models.StudentProfile{})

	assert.True(t, strings.HasPrefix(prompt, "You are an ethical AI Placement Readiness Analyzer"))
	assert.Less(t,
		strings.Index(prompt, "OUTPUT FORMAT"),
		strings.Index(prompt, "Analyze the following student profile"))
	assert.Contains(t, prompt, `"30_day_plan"`)
}
