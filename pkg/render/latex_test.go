package render

import (
	"strings"
	"testing"

	"resume-tailor/internal/model"
)

func TestLaTeXEmptyRecordHasNoSections(t *testing.T) {
	t.Parallel()

	out := LaTeX(&model.ResumeStructured{}, model.DefaultTheme(), model.DefaultTemplateBlocks())
	if strings.Contains(out, `\section*`) {
		t.Error("empty record should emit no sections")
	}
	if !strings.Contains(out, `\begin{document}`) || !strings.Contains(out, `\end{document}`) {
		t.Error("document envelope must always be present")
	}
}

func TestLaTeXEmphasisAndEscaping(t *testing.T) {
	t.Parallel()

	out := LaTeX(sampleResume(), model.DefaultTheme(), model.DefaultTemplateBlocks())

	if !strings.Contains(out, `\textbf{APIs }`) {
		t.Error("emphasis not rendered as \\textbf")
	}
	if !strings.Contains(out, "2020 – 2022") {
		t.Error("date range not joined with en dash")
	}
	if !strings.Contains(out, `\section*{\color{primary}Experience}`) {
		t.Error("experience section heading missing")
	}
}

func TestLaTeXEscapesSpecials(t *testing.T) {
	t.Parallel()

	prof := &model.ResumeStructured{ProfessionalSummary: "50% growth & $2M ARR"}
	out := LaTeX(prof, model.DefaultTheme(), model.DefaultTemplateBlocks())

	if !strings.Contains(out, `50\% growth \& \$2M ARR`) {
		t.Error("LaTeX specials not escaped in summary")
	}
}

func TestLaTeXHrefURLEscaped(t *testing.T) {
	t.Parallel()

	prof := &model.ResumeStructured{
		Contact: model.Contact{Email: "jane+cv@example.com"},
		Projects: []model.ProjectItem{{
			Name:   "Tracker",
			GitHub: "https://github.com/jane/tracker#readme",
			Demo:   "https://example.com/demo?q=a%20b",
		}},
	}
	out := LaTeX(prof, model.DefaultTheme(), model.DefaultTemplateBlocks())

	if !strings.Contains(out, `\href{https://github.com/jane/tracker\#readme}{GitHub}`) {
		t.Error("# in link URL not escaped for the href argument")
	}
	if !strings.Contains(out, `\href{https://example.com/demo?q=a\%20b}{Demo}`) {
		t.Error("% in link URL not escaped for the href argument")
	}
	if !strings.Contains(out, `\href{mailto:jane+cv@example.com}`) {
		t.Error("mailto link missing")
	}
}

func TestLaTeXThemeEnvelope(t *testing.T) {
	t.Parallel()

	theme := model.TemplateTheme{
		PrimaryColor:       "#fff",
		PageMarginTopMM:    12,
		PageMarginRightMM:  8,
		PageMarginBottomMM: 12,
		PageMarginLeftMM:   8,
	}
	out := LaTeX(sampleResume(), theme, model.DefaultTemplateBlocks())

	if !strings.Contains(out, `\definecolor{primary}{HTML}{FFFFFF}`) {
		t.Error("short hex color should expand to six digits in xcolor definition")
	}
	if !strings.Contains(out, `[top=12mm,right=8mm,bottom=12mm,left=8mm]{geometry}`) {
		t.Error("theme margins not propagated to geometry")
	}
}

func TestLaTeXBlockOrderFollowsTemplate(t *testing.T) {
	t.Parallel()

	blocks := []model.TemplateBlock{
		{Type: model.BlockSkills},
		{Type: model.BlockHeader},
	}
	out := LaTeX(sampleResume(), model.DefaultTheme(), blocks)

	skillsAt := strings.Index(out, `\section*{\color{primary}Skills}`)
	headerAt := strings.Index(out, `\begin{center}`)
	if skillsAt == -1 || headerAt == -1 {
		t.Fatal("expected both skills section and header in output")
	}
	if skillsAt > headerAt {
		t.Error("skills should render before the header when the template says so")
	}
	if strings.Contains(out, `\section*{\color{primary}Projects}`) {
		t.Error("blocks absent from the template must not render")
	}
}

func TestLaTeXUnterminatedMarkerLiteral(t *testing.T) {
	t.Parallel()

	prof := &model.ResumeStructured{ProfessionalSummary: `shipped \bthe big thing`}
	out := LaTeX(prof, model.DefaultTheme(), model.DefaultTemplateBlocks())

	if strings.Contains(out, `\textbf`) {
		t.Error("unterminated marker must not open a bold span")
	}
	// The backslash of the literal marker is escaped like any other text.
	if !strings.Contains(out, `shipped \textbackslash{}bthe big thing`) {
		t.Error("unterminated marker should render literally, escaped")
	}
}
