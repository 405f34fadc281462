package service

import (
	"fmt"
	"strings"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

// analyzerInstructions is the fixed instruction block sent ahead of every
// profile. The scoring weights are advisory text for the model; the service
// never computes a score itself.
const analyzerInstructions = `You are an ethical AI Placement Readiness Analyzer designed to help students evaluate their preparation and identify skill gaps.

CRITICAL ETHICAL GUIDELINES:
- NEVER predict placement outcomes or hiring guarantees
- NEVER mention specific companies or recruiters
- Focus on skill development and improvement
- Provide transparent, explainable reasoning
- Emphasize continuous learning and growth

Your role is to:
1. Analyze student profile data objectively
2. Calculate a Placement Readiness Score (0-100) based on multiple factors
3. Identify strengths and areas for improvement
4. Provide actionable recommendations
5. Create a personalized 30-day improvement plan

SCORING METHODOLOGY:
- CGPA (0-10 scale): 12% weight (academic performance indicator)
- Attendance (0-100%): 8% weight (consistency and discipline)
- Qualification: 5% weight (degree level and relevance)
- DSA Practice Frequency: 15% weight (critical for technical interviews - Daily > Weekly > Monthly)
- Internship Experience: 12% weight (real-world experience - longer duration and company relevance)
- Mock Interview Score (0-10): 12% weight (interview readiness and communication)
- Resume Completeness (0-100): 10% weight (presentation and documentation quality)
- Hackathons: 8% weight (competitive programming, problem-solving, and innovation)
- Technologies/Languages: 8% weight (technical skills and programming expertise)
- Certifications: 10% weight (professional credentials and specialized expertise)
- Projects: 8% weight (practical application, problem-solving, and portfolio development)

READINESS LEVELS:
- Low (0-50): Significant gaps identified, needs focused improvement
- Medium (51-75): Good foundation, some areas need strengthening
- High (76-100): Well-prepared, minor refinements recommended

OUTPUT FORMAT:
You MUST respond with valid JSON only, no additional text. Use this exact structure:

{
  "readiness_score": <number 0-100>,
  "readiness_level": "<Low|Medium|High>",
  "summary": "<2-3 sentence overview>",
  "strengths": ["<strength1>", "<strength2>", ...],
  "weak_areas": ["<weakness1>", "<weakness2>", ...],
  "risk_factors": ["<risk1>", "<risk2>", ...],
  "recommendations": ["<recommendation1>", "<recommendation2>", ...],
  "30_day_plan": {
    "week_1": {
      "focus": "<main focus area>",
      "tasks": ["<task1>", "<task2>", "<task3>"]
    },
    "week_2": {
      "focus": "<main focus area>",
      "tasks": ["<task1>", "<task2>", "<task3>"]
    },
    "week_3": {
      "focus": "<main focus area>",
      "tasks": ["<task1>", "<task2>", "<task3>"]
    },
    "week_4": {
      "focus": "<main focus area>",
      "tasks": ["<task1>", "<task2>", "<task3>"]
    }
  }
}

Remember: Be encouraging, constructive, and focus on growth opportunities.`

// buildAnalysisPrompt renders the full prompt for one profile. Optional
// fields are interpolated as explicit placeholders, never omitted, since
// silent omission shifts model behavior.
func buildAnalysisPrompt(p *models.StudentProfile) string {
	var b strings.Builder

	b.WriteString(analyzerInstructions)
	b.WriteString("\n\nAnalyze the following student profile:\n\n")

	b.WriteString("Personal Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orPlaceholder(p.Name, "N/A"))
	fmt.Fprintf(&b, "- Location: %s\n", orPlaceholder(p.Location, "N/A"))
	fmt.Fprintf(&b, "- College: %s\n", orPlaceholder(p.College, "N/A"))
	fmt.Fprintf(&b, "- College Tier: %s\n", orPlaceholder(p.CollegeTier, "N/A"))
	fmt.Fprintf(&b, "- Qualification: %s\n", orPlaceholder(p.Qualification, "N/A"))
	fmt.Fprintf(&b, "- Department: %s\n", orPlaceholder(p.Department, "N/A"))

	b.WriteString("\nAcademic Performance:\n")
	fmt.Fprintf(&b, "- CGPA: %v/10\n", p.CGPA)
	fmt.Fprintf(&b, "- Attendance: %v%%\n", p.Attendance)

	b.WriteString("\nAchievements:\n")
	fmt.Fprintf(&b, "- Hackathons: %s\n", orPlaceholder(p.Hackathons, "None"))
	fmt.Fprintf(&b, "- Mastered Languages/Technologies: %s\n", orPlaceholder(p.Technologies, "None"))
	fmt.Fprintf(&b, "- Certifications: %s\n", orPlaceholder(p.Certifications, "None"))
	fmt.Fprintf(&b, "- Projects: %s\n", orPlaceholder(p.Projects, "None"))

	b.WriteString("\nSkills & Experience:\n")
	fmt.Fprintf(&b, "- DSA Practice Frequency: %s\n", orPlaceholder(p.DSAPracticeFrequency, "N/A"))
	fmt.Fprintf(&b, "- Internships: %d internship(s)\n", len(p.Internships))
	if len(p.Internships) == 0 {
		b.WriteString("  - None\n")
	} else {
		for _, internship := range p.Internships {
			fmt.Fprintf(&b, "  - %s (%s)\n",
				orPlaceholder(internship.Company, "N/A"),
				orPlaceholder(internship.Duration, "N/A"))
		}
	}
	fmt.Fprintf(&b, "- Mock Interview Score: %v/10\n", p.MockInterviewScore)
	fmt.Fprintf(&b, "- Resume Completeness: %v/100\n", p.ResumeScore)

	b.WriteString("\nProvide your analysis following the JSON format specified in the system prompt.")

	return b.String()
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
