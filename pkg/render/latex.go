package render

import (
	"fmt"
	"strings"

	"resume-tailor/internal/model"
)

type latexBlockRenderer func(prof *model.ResumeStructured, block model.TemplateBlock) string

var latexRenderers = map[model.BlockType]latexBlockRenderer{
	model.BlockHeader:     renderHeaderLaTeX,
	model.BlockSummary:    renderSummaryLaTeX,
	model.BlockSkills:     renderSkillsLaTeX,
	model.BlockExperience: renderExperienceLaTeX,
	model.BlockEducation:  renderEducationLaTeX,
	model.BlockProjects:   renderProjectsLaTeX,
}

// LaTeX renders a compilable standalone .tex document for the Overleaf-style
// export path. Block order follows the template; unknown and empty blocks
// are skipped.
func LaTeX(prof *model.ResumeStructured, theme model.TemplateTheme, blocks []model.TemplateBlock) string {
	theme = theme.Normalized()

	var body []string
	for _, b := range blocks {
		fn, ok := latexRenderers[b.Type]
		if !ok {
			continue
		}
		frag := fn(prof, b)
		if strings.TrimSpace(frag) == "" {
			continue
		}
		if b.Type != model.BlockHeader {
			frag = fmt.Sprintf("\\section*{\\color{primary}%s}\n%s", lText(blockTitle(b.Type)), frag)
		}
		body = append(body, frag)
	}

	primaryHex := strings.ToUpper(strings.TrimPrefix(ExpandHexColor(theme.PrimaryColor), "#"))

	var doc strings.Builder
	fmt.Fprintf(&doc, `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[top=%gmm,right=%gmm,bottom=%gmm,left=%gmm]{geometry}
\usepackage{enumitem}
\usepackage{xcolor}
\usepackage[hidelinks]{hyperref}
\definecolor{primary}{HTML}{%s}
\setlist[itemize]{leftmargin=*,nosep}
\pagestyle{empty}
\begin{document}
`, theme.PageMarginTopMM, theme.PageMarginRightMM, theme.PageMarginBottomMM, theme.PageMarginLeftMM, primaryHex)

	doc.WriteString(strings.Join(body, "\n\n\\vspace{6pt}\n\n"))
	doc.WriteString("\n\\end{document}\n")
	return doc.String()
}

// lText trims and LaTeX-escapes a plain field.
func lText(v string) string {
	return EscapeLaTeX(strings.TrimSpace(v))
}

// lRichText renders a free-text field honoring inline emphasis markers;
// newlines become LaTeX line breaks.
func lRichText(v string) string {
	var b strings.Builder
	for _, sp := range ParseEmphasis(v) {
		esc := strings.ReplaceAll(EscapeLaTeX(sp.Text), "\n", ` \\ `)
		if sp.Bold {
			b.WriteString(`\textbf{` + esc + `}`)
		} else {
			b.WriteString(esc)
		}
	}
	return strings.TrimSpace(b.String())
}

// lURL escapes the characters that break the URL argument of \href.
// Unlike body text, URLs only need % and # protected.
func lURL(raw string) string {
	r := strings.NewReplacer("%", `\%`, "#", `\#`)
	return r.Replace(raw)
}

func lHref(raw, label string) string {
	href := normalizeHTTPURL(raw)
	if href == "" {
		return ""
	}
	return fmt.Sprintf(`\href{%s}{%s}`, lURL(href), lText(label))
}

func renderHeaderLaTeX(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockHeader) {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\begin{center}\n")
	if name := lText(prof.Name); name != "" {
		fmt.Fprintf(&b, "{\\Huge\\bfseries %s}\\\\[2pt]\n", name)
	}
	if title := lText(prof.Title); title != "" {
		fmt.Fprintf(&b, "{\\large %s}\\\\[4pt]\n", title)
	}
	items := contactItems(prof.Contact)
	if len(items) > 0 {
		parts := make([]string, 0, len(items))
		for _, it := range items {
			switch it.Kind {
			case "linkedin":
				parts = append(parts, lHref(it.Label, "LinkedIn"))
			case "github":
				parts = append(parts, lHref(it.Label, "GitHub"))
			case "email":
				parts = append(parts, fmt.Sprintf(`\href{mailto:%s}{%s}`, lURL(strings.TrimSpace(it.Label)), lText(it.Label)))
			default:
				parts = append(parts, lText(it.Label))
			}
		}
		fmt.Fprintf(&b, "{\\small %s}\n", strings.Join(parts, ` \textbar{} `))
	}
	b.WriteString("\\end{center}")
	return b.String()
}

func renderSummaryLaTeX(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if blank(prof.ProfessionalSummary) {
		return ""
	}
	return lRichText(prof.ProfessionalSummary)
}

func renderSkillsLaTeX(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	var lines []string
	for _, grp := range prof.Skills {
		skills := nonBlank(grp.Skills)
		if len(skills) == 0 && blank(grp.Category) {
			continue
		}
		line := lText(strings.Join(skills, ", "))
		if !blank(grp.Category) {
			line = fmt.Sprintf(`\textbf{%s:} %s`, lText(grp.Category), line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, " \\\\\n")
}

func renderExperienceLaTeX(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockExperience) {
		return ""
	}
	var items []string
	for _, e := range prof.Experience {
		var b strings.Builder

		company := lText(e.Company)
		if company == "" {
			company = "---"
		}
		fmt.Fprintf(&b, `\textbf{\large %s}`, company)
		if !blank(e.CompanyAddress) {
			fmt.Fprintf(&b, ` \hfill %s`, lText(e.CompanyAddress))
		}
		b.WriteString(" \\\\\n")

		fmt.Fprintf(&b, `\textit{%s}`, lText(e.Title))
		if d := joinDateRange(e.StartDate, e.EndDate); d != "" {
			fmt.Fprintf(&b, ` \hfill %s`, lText(d))
		}

		if !blank(e.Summary) {
			b.WriteString(" \\\\\n")
			b.WriteString(lRichText(e.Summary))
		}
		if resp := nonBlank(e.Responsibilities); len(resp) > 0 {
			b.WriteString("\n\\begin{itemize}\n")
			for _, r := range resp {
				fmt.Fprintf(&b, "  \\item %s\n", lRichText(r))
			}
			b.WriteString("\\end{itemize}")
		}
		items = append(items, b.String())
	}
	return strings.Join(items, "\n\n\\vspace{4pt}\n\n")
}

func renderEducationLaTeX(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockEducation) {
		return ""
	}
	var items []string
	for _, e := range prof.Education {
		var b strings.Builder

		inst := lText(e.Institution)
		if inst == "" {
			inst = "---"
		}
		fmt.Fprintf(&b, `\textbf{\large %s}`, inst)
		if d := joinDateRange(e.StartDate, e.EndDate); d != "" {
			fmt.Fprintf(&b, ` \hfill %s`, lText(d))
		}
		b.WriteString(" \\\\\n")

		var fieldParts []string
		for _, p := range []string{e.Degree, e.FieldOfStudy} {
			if !blank(p) {
				fieldParts = append(fieldParts, strings.TrimSpace(p))
			}
		}
		fmt.Fprintf(&b, `\textit{%s}`, lText(strings.Join(fieldParts, " · ")))
		if !blank(e.Location) {
			fmt.Fprintf(&b, ` \hfill %s`, lText(e.Location))
		}

		if !blank(e.Notes) {
			b.WriteString(" \\\\\n")
			b.WriteString(lRichText(e.Notes))
		}
		items = append(items, b.String())
	}
	return strings.Join(items, "\n\n\\vspace{4pt}\n\n")
}

func renderProjectsLaTeX(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockProjects) {
		return ""
	}
	var items []string
	for _, p := range prof.Projects {
		var b strings.Builder

		name := lText(p.Name)
		if name == "" {
			name = "---"
		}
		fmt.Fprintf(&b, `\textbf{\large %s}`, name)

		if !blank(p.Description) {
			b.WriteString(" \\\\\n")
			b.WriteString(lRichText(p.Description))
		}
		if tech := nonBlank(p.Technologies); len(tech) > 0 {
			b.WriteString(" \\\\\n")
			fmt.Fprintf(&b, `\textit{Tech:} %s`, lText(strings.Join(tech, ", ")))
		}

		var links []string
		if !blank(p.GitHub) {
			links = append(links, lHref(p.GitHub, "GitHub"))
		}
		demo := p.Demo
		if blank(demo) {
			demo = p.Link
		}
		if !blank(demo) {
			links = append(links, lHref(demo, "Demo"))
		}
		if len(links) > 0 {
			b.WriteString(" \\\\\n")
			b.WriteString(strings.Join(links, ` \textbar{} `))
		}
		items = append(items, b.String())
	}
	return strings.Join(items, "\n\n\\vspace{4pt}\n\n")
}
