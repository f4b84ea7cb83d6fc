package model

import "testing"

func TestThemeNormalizedFillsDefaults(t *testing.T) {
	t.Parallel()

	got := TemplateTheme{}.Normalized()
	want := DefaultTheme()
	if got != want {
		t.Errorf("Normalized zero theme = %+v, want %+v", got, want)
	}
}

func TestThemeNormalizedClampsScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, DefaultPDFScale},
		{0.1, MinPDFScale},
		{5, MaxPDFScale},
		{0.75, 0.75},
	}
	for _, tt := range tests {
		theme := TemplateTheme{PDFScale: tt.in}.Normalized()
		if theme.PDFScale != tt.want {
			t.Errorf("scale %g normalized to %g, want %g", tt.in, theme.PDFScale, tt.want)
		}
	}
}

func TestThemeNormalizedKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	in := TemplateTheme{
		PrimaryColor:       "#112233",
		PageMarginTopMM:    20,
		PageMarginRightMM:  15,
		PageMarginBottomMM: 20,
		PageMarginLeftMM:   15,
		PDFScale:           1.0,
	}
	if got := in.Normalized(); got != in {
		t.Errorf("Normalized changed explicit values: %+v", got)
	}
}

func TestTemplateDocNormalize(t *testing.T) {
	t.Parallel()

	doc := &ResumeTemplateDoc{Name: "bare"}
	doc.Normalize()

	if doc.Version != 1 {
		t.Errorf("version = %d, want 1", doc.Version)
	}
	if doc.Theme != DefaultTheme() {
		t.Errorf("theme = %+v, want defaults", doc.Theme)
	}
	if len(doc.Blocks) == 0 {
		t.Error("blocks not seeded with canonical layout")
	}

	kept := &ResumeTemplateDoc{Name: "v3", Version: 3}
	kept.Normalize()
	if kept.Version != 3 {
		t.Errorf("explicit version changed to %d", kept.Version)
	}
}

func TestDefaultTemplateBlocksOrder(t *testing.T) {
	t.Parallel()

	want := []BlockType{
		BlockHeader, BlockSummary, BlockSkills,
		BlockExperience, BlockEducation, BlockProjects,
	}
	blocks := DefaultTemplateBlocks()
	if len(blocks) != len(want) {
		t.Fatalf("len = %d, want %d", len(blocks), len(want))
	}
	for i, b := range blocks {
		if b.Type != want[i] {
			t.Errorf("block %d = %q, want %q", i, b.Type, want[i])
		}
	}
}
