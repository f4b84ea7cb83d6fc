package model

// Structured resume schema shared by the LLM structurer, the tailor step and
// every renderer back end. Absence of data is the zero value, never a
// sentinel string; renderers treat whitespace-only strings as absent.

type Contact struct {
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" bson:"github,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
}

// EducationItem dates are free text, preferably "YYYY-MM" or "YYYY".
type EducationItem struct {
	Institution  string `json:"institution,omitempty" bson:"institution,omitempty"`
	Degree       string `json:"degree,omitempty" bson:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty" bson:"field_of_study,omitempty"`
	Location     string `json:"location,omitempty" bson:"location,omitempty"`
	StartDate    string `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type ExperienceItem struct {
	Title          string `json:"title,omitempty" bson:"title,omitempty"`
	Company        string `json:"company,omitempty" bson:"company,omitempty"`
	CompanyAddress string `json:"company_address,omitempty" bson:"company_address,omitempty"`
	StartDate      string `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Summary        string `json:"summary,omitempty" bson:"summary,omitempty"`
	// Short bullet strings; each may carry inline \b ... b\ emphasis markers.
	Responsibilities []string `json:"responsibilities,omitempty" bson:"responsibilities,omitempty"`
}

type ProjectItem struct {
	Name         string   `json:"name,omitempty" bson:"name,omitempty"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty" bson:"technologies,omitempty"`
	Link         string   `json:"link,omitempty" bson:"link,omitempty"`
	GitHub       string   `json:"github,omitempty" bson:"github,omitempty"`
	Demo         string   `json:"demo,omitempty" bson:"demo,omitempty"`
}

// SkillCategory is a named or unnamed bucket of skill strings.
type SkillCategory struct {
	Category string   `json:"category,omitempty" bson:"category,omitempty"`
	Skills   []string `json:"skills,omitempty" bson:"skills,omitempty"`
}

type ResumeStructured struct {
	Name    string  `json:"name,omitempty" bson:"name,omitempty"`
	Title   string  `json:"title,omitempty" bson:"title,omitempty"`
	Contact Contact `json:"contact,omitempty" bson:"contact,omitempty"`

	ProfessionalSummary string `json:"professional_summary,omitempty" bson:"professional_summary,omitempty"`

	Education  []EducationItem  `json:"education,omitempty" bson:"education,omitempty"`
	Experience []ExperienceItem `json:"experience,omitempty" bson:"experience,omitempty"`
	Projects   []ProjectItem    `json:"projects,omitempty" bson:"projects,omitempty"`

	Skills []SkillCategory `json:"skills,omitempty" bson:"skills,omitempty"`
}
