package model

// JobStructured is the parsed form of a free-text job description.
type JobStructured struct {
	Title    string `json:"title,omitempty" bson:"title,omitempty"`
	Company  string `json:"company,omitempty" bson:"company,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`

	Responsibilities []string `json:"responsibilities,omitempty" bson:"responsibilities,omitempty"`
	RequirementsMust []string `json:"requirements_must,omitempty" bson:"requirements_must,omitempty"`
	RequirementsNice []string `json:"requirements_nice,omitempty" bson:"requirements_nice,omitempty"`

	Keywords []string `json:"keywords,omitempty" bson:"keywords,omitempty"`
	// e.g. junior/mid/senior/staff
	Seniority string `json:"seniority,omitempty" bson:"seniority,omitempty"`
}
