package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoDB document models. Timestamps are maintained by the repository
// layer on insert and save.

// User document. Collection: users.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fullname  string             `bson:"fullname" json:"fullname"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"`
	Prof      *ResumeStructured  `bson:"prof,omitempty" json:"prof,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// TailoredResume document. Saved when tailoring for a job.
// Collection: tailored_resume.
type TailoredResume struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	JobTitle     string             `bson:"job_title" json:"job_title"`
	TailoredProf ResumeStructured   `bson:"tailored_prof" json:"tailored_prof"`
	UserID       string             `bson:"user_id" json:"user_id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// BuiltResume is an editable resume built from scratch or from the current
// profile. Collection: built_resumes.
type BuiltResume struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Resume     ResumeStructured   `bson:"resume" json:"resume"`
	TemplateID string             `bson:"template_id,omitempty" json:"template_id,omitempty"`
	UserID     string             `bson:"user_id" json:"user_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// ResumeTemplateDoc stores a ResumeTemplate. Collection: resume_templates.
// At most one document carries is_default=true; the repository enforces
// this at write time.
type ResumeTemplateDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Version   int                `bson:"version" json:"version"`
	IsDefault bool               `bson:"is_default" json:"is_default"`
	Theme     TemplateTheme      `bson:"theme" json:"theme"`
	Blocks    []TemplateBlock    `bson:"blocks" json:"blocks"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Normalize fills derived defaults before persistence: version at least 1,
// normalized theme, canonical blocks when none were given.
func (d *ResumeTemplateDoc) Normalize() {
	if d.Version < 1 {
		d.Version = 1
	}
	d.Theme = d.Theme.Normalized()
	if len(d.Blocks) == 0 {
		d.Blocks = DefaultTemplateBlocks()
	}
}

// Schema returns the portable template carried by this document.
func (d *ResumeTemplateDoc) Schema() ResumeTemplate {
	return ResumeTemplate{
		Name:      d.Name,
		Version:   d.Version,
		IsDefault: d.IsDefault,
		Theme:     d.Theme,
		Blocks:    d.Blocks,
	}
}

// TailoredCoverLetter document. Collection: tailored_cover_letter.
type TailoredCoverLetter struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             string             `bson:"title" json:"title"`
	JobTitle          string             `bson:"job_title" json:"job_title"`
	JobDescription    string             `bson:"job_description" json:"job_description"`
	TailoredContent   string             `bson:"tailored_content" json:"tailored_content"`
	ExtraInstructions string             `bson:"extra_instructions,omitempty" json:"extra_instructions,omitempty"`
	UserID            string             `bson:"user_id" json:"user_id"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// Artifact records a generated export (PDF or LaTeX source) so downloads
// can be listed later. FileName carries a uuid stem to stay unique on disk.
// Collection: artifacts.
type Artifact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind      string             `bson:"kind" json:"kind"` // "resume" | "cover_letter"
	Title     string             `bson:"title" json:"title"`
	FileName  string             `bson:"file_name" json:"file_name"`
	FileLink  string             `bson:"file_link" json:"file_link"`
	Version   int                `bson:"version" json:"version"`
	UserID    string             `bson:"user_id" json:"user_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
