package model

import (
	"strings"
)

// BlockType selects which renderer a template block is dispatched to.
type BlockType string

const (
	BlockHeader     BlockType = "header"
	BlockSummary    BlockType = "summary"
	BlockSkills     BlockType = "skills"
	BlockExperience BlockType = "experience"
	BlockEducation  BlockType = "education"
	BlockProjects   BlockType = "projects"
)

// Theme defaults. Margins are print margins in millimeters.
const (
	DefaultPrimaryColor   = "#00BBF9"
	DefaultMarginTopMM    = 5
	DefaultMarginRightMM  = 1
	DefaultMarginBottomMM = 5
	DefaultMarginLeftMM   = 1
	DefaultPDFScale       = 0.9

	MinPDFScale = 0.5
	MaxPDFScale = 1.2
)

// TemplateTheme holds layout tokens shared by all renderer back ends.
// Tokens are preferred over raw CSS so HTML, LaTeX and vector output stay
// visually in sync.
type TemplateTheme struct {
	PrimaryColor       string  `json:"primary_color" bson:"primary_color"`
	PageMarginTopMM    float64 `json:"page_margin_top_mm" bson:"page_margin_top_mm"`
	PageMarginRightMM  float64 `json:"page_margin_right_mm" bson:"page_margin_right_mm"`
	PageMarginBottomMM float64 `json:"page_margin_bottom_mm" bson:"page_margin_bottom_mm"`
	PageMarginLeftMM   float64 `json:"page_margin_left_mm" bson:"page_margin_left_mm"`
	// Typography scale factor for PDF rendering. Lower = smaller fonts
	// without shrinking the page.
	PDFScale float64 `json:"pdf_scale" bson:"pdf_scale"`
}

// DefaultTheme returns the canonical theme used when a template omits one.
func DefaultTheme() TemplateTheme {
	return TemplateTheme{
		PrimaryColor:       DefaultPrimaryColor,
		PageMarginTopMM:    DefaultMarginTopMM,
		PageMarginRightMM:  DefaultMarginRightMM,
		PageMarginBottomMM: DefaultMarginBottomMM,
		PageMarginLeftMM:   DefaultMarginLeftMM,
		PDFScale:           DefaultPDFScale,
	}
}

// Normalized fills unset fields with defaults and clamps pdf_scale to its
// legal range. Zero-value fields count as unset.
func (t TemplateTheme) Normalized() TemplateTheme {
	out := t
	if strings.TrimSpace(out.PrimaryColor) == "" {
		out.PrimaryColor = DefaultPrimaryColor
	}
	if out.PageMarginTopMM <= 0 {
		out.PageMarginTopMM = DefaultMarginTopMM
	}
	if out.PageMarginRightMM <= 0 {
		out.PageMarginRightMM = DefaultMarginRightMM
	}
	if out.PageMarginBottomMM <= 0 {
		out.PageMarginBottomMM = DefaultMarginBottomMM
	}
	if out.PageMarginLeftMM <= 0 {
		out.PageMarginLeftMM = DefaultMarginLeftMM
	}
	if out.PDFScale == 0 {
		out.PDFScale = DefaultPDFScale
	}
	if out.PDFScale < MinPDFScale {
		out.PDFScale = MinPDFScale
	}
	if out.PDFScale > MaxPDFScale {
		out.PDFScale = MaxPDFScale
	}
	return out
}

// TemplateBlock is a single composable block of a resume template.
// Props and Style are intentionally open key-value maps of primitive
// values; renderers that care about specific keys read them defensively.
type TemplateBlock struct {
	Type  BlockType      `json:"type" bson:"type"`
	Props map[string]any `json:"props,omitempty" bson:"props,omitempty"`
	Style map[string]any `json:"style,omitempty" bson:"style,omitempty"`
}

// ResumeTemplate is the portable template schema (stored in DB or sent via
// API). Block order in Blocks is the render order; duplicate types are
// legal and render independently.
type ResumeTemplate struct {
	Name      string          `json:"name" bson:"name"`
	Version   int             `json:"version" bson:"version"`
	IsDefault bool            `json:"is_default" bson:"is_default"`
	Theme     TemplateTheme   `json:"theme" bson:"theme"`
	Blocks    []TemplateBlock `json:"blocks" bson:"blocks"`
}

// DefaultTemplateBlocks mirrors the frontend preview structure and order.
func DefaultTemplateBlocks() []TemplateBlock {
	return []TemplateBlock{
		{Type: BlockHeader},
		{Type: BlockSummary},
		{Type: BlockSkills},
		{Type: BlockExperience},
		{Type: BlockEducation},
		{Type: BlockProjects},
	}
}
