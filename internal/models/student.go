package models

type InternshipRecord struct {
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// StudentProfile is the analyze request payload. UserID is an opaque caller
// identifier used only to retrieve prior analyses.
type StudentProfile struct {
	UserID               string             `json:"user_id,omitempty"`
	Name                 string             `json:"name"`
	Location             string             `json:"location"`
	College              string             `json:"college"`
	CollegeTier          string             `json:"college_tier"`
	Qualification        string             `json:"qualification"`
	Department           string             `json:"department"`
	CGPA                 float64            `json:"cgpa"`
	Attendance           float64            `json:"attendance"`
	Hackathons           string             `json:"hackathons"`
	Technologies         string             `json:"technologies"`
	Certifications       string             `json:"certifications"`
	Projects             string             `json:"projects"`
	DSAPracticeFrequency string             `json:"dsa_practice_frequency"`
	Internships          []InternshipRecord `json:"internships"`
	MockInterviewScore   float64            `json:"mock_interview_score"`
	ResumeScore          float64            `json:"resume_score"`
}
