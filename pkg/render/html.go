package render

import (
	"fmt"
	"strings"

	"resume-tailor/internal/model"
)

// htmlBlockRenderer renders one template block to an HTML fragment. An
// empty fragment means the block has nothing to show and is omitted from
// the document entirely.
type htmlBlockRenderer func(prof *model.ResumeStructured, block model.TemplateBlock) string

// htmlRenderers dispatches block types to renderers. Unknown types resolve
// to nothing and are skipped, so templates carrying newer block types still
// render.
var htmlRenderers = map[model.BlockType]htmlBlockRenderer{
	model.BlockHeader:     renderHeaderHTML,
	model.BlockSummary:    renderSummaryHTML,
	model.BlockSkills:     renderSkillsHTML,
	model.BlockExperience: renderExperienceHTML,
	model.BlockEducation:  renderEducationHTML,
	model.BlockProjects:   renderProjectsHTML,
}

// HTML renders the self-contained resume document used by the headless
// Chrome PDF export. It is a pure function of its three inputs.
func HTML(prof *model.ResumeStructured, theme model.TemplateTheme, blocks []model.TemplateBlock) string {
	theme = theme.Normalized()

	var rendered []string
	for _, b := range blocks {
		fn, ok := htmlRenderers[b.Type]
		if !ok {
			continue
		}
		if frag := fn(prof, b); strings.TrimSpace(frag) != "" {
			rendered = append(rendered, frag)
		}
	}

	// External CSS for Font Awesome mirrors the frontend preview. If the
	// network is blocked, icons simply won't show.
	const faLink = `<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css" referrerpolicy="no-referrer" />`

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    %s
    <style>%s</style>
  </head>
  <body>
    <article class="rp">
      %s
    </article>
  </body>
</html>
`, faLink, themeCSS(theme), strings.Join(rendered, "\n"))
}

// hText trims and HTML-escapes a plain field.
func hText(v string) string {
	return EscapeHTML(strings.TrimSpace(v))
}

// hRichText renders a free-text field honoring inline emphasis markers and
// embedded newlines. Escaping happens per span, after extraction.
func hRichText(v string) string {
	var b strings.Builder
	for _, sp := range ParseEmphasis(v) {
		esc := strings.ReplaceAll(EscapeHTML(sp.Text), "\n", "<br/>")
		if sp.Bold {
			b.WriteString("<strong>" + esc + "</strong>")
		} else {
			b.WriteString(esc)
		}
	}
	return strings.TrimSpace(b.String())
}

// section wraps a rendered fragment in the shared section envelope with a
// centered title on a dotted rule.
func section(title, inner string) string {
	if strings.TrimSpace(inner) == "" {
		return ""
	}
	return fmt.Sprintf(`<section class="rp__section">
  <div class="rp__sectionHead"><div class="rp__sectionTitle">%s</div></div>
  %s
</section>`, EscapeHTML(title), inner)
}

func faIcon(kind string) string {
	switch kind {
	case "email":
		return `<i class="fa-solid fa-envelope" aria-hidden="true"></i>`
	case "phone":
		return `<i class="fa-solid fa-phone" aria-hidden="true"></i>`
	case "location":
		return `<i class="fa-solid fa-location-dot" aria-hidden="true"></i>`
	case "linkedin":
		return `<i class="fa-brands fa-linkedin-in" aria-hidden="true"></i>`
	case "github":
		return `<i class="fa-brands fa-github" aria-hidden="true"></i>`
	}
	return ""
}

func renderHeaderHTML(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockHeader) {
		return ""
	}

	items := contactItems(prof.Contact)
	contactHTML := ""
	if len(items) > 0 {
		parts := make([]string, 0, len(items))
		for i, it := range items {
			sep := ""
			if i != len(items)-1 {
				sep = `<span class="rp__contactSep" aria-hidden="true">|</span>`
			}
			textHTML := fmt.Sprintf(`<span class="rp__contactText">%s</span>`, hText(it.Label))
			if it.Kind == "linkedin" || it.Kind == "github" {
				linkText := "LinkedIn"
				if it.Kind == "github" {
					linkText = "GitHub"
				}
				if href := normalizeHTTPURL(it.Label); href != "" {
					textHTML = fmt.Sprintf(`<a class="rp__contactLink" href="%s">%s</a>`, hText(href), linkText)
				}
			}
			parts = append(parts, fmt.Sprintf(`<span class="rp__contactItem"><span class="rp__contactIcon">%s</span>%s%s</span>`,
				faIcon(it.Kind), textHTML, sep))
		}
		contactHTML = fmt.Sprintf(`<div class="rp__contact" aria-label="Contact details">%s</div>`, strings.Join(parts, ""))
	}

	name := hText(prof.Name)
	if name == "" {
		name = "—"
	}
	sub := ""
	if !blank(prof.Title) {
		sub = fmt.Sprintf(`<div class="rp__headerSub">%s</div>`, hText(prof.Title))
	}

	return fmt.Sprintf(`<header class="rp__header">
  <div class="rp__headerBlock">
    <div class="rp__headerMain">%s</div>
    %s
    %s
  </div>
</header>`, name, sub, contactHTML)
}

func renderSummaryHTML(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if blank(prof.ProfessionalSummary) {
		return ""
	}
	inner := fmt.Sprintf(`<div class="rp__text">%s</div>`, hRichText(prof.ProfessionalSummary))
	return section("Summary", inner)
}

func renderSkillsHTML(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	var rows []string
	for _, grp := range prof.Skills {
		skills := nonBlank(grp.Skills)
		if len(skills) == 0 && blank(grp.Category) {
			continue
		}
		catHTML := ""
		if !blank(grp.Category) {
			catHTML = fmt.Sprintf(`<span class="rp__skillCat">%s:</span> `, hText(grp.Category))
		}
		rows = append(rows, fmt.Sprintf(`<div class="rp__skillLine">%s<span class="rp__skillItems">%s</span></div>`,
			catHTML, hText(strings.Join(skills, ", "))))
	}
	if len(rows) == 0 {
		return ""
	}
	inner := fmt.Sprintf(`<div class="rp__skillsBlock">%s</div>`, strings.Join(rows, ""))
	return section("Skills", inner)
}

func renderExperienceHTML(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockExperience) {
		return ""
	}
	var items []string
	for _, e := range prof.Experience {
		company := hText(e.Company)
		if company == "" {
			company = "—"
		}
		addrHTML := ""
		if !blank(e.CompanyAddress) {
			addrHTML = fmt.Sprintf(`<div class="rp__addr">%s</div>`, hText(e.CompanyAddress))
		}
		datesHTML := ""
		if d := joinDateRange(e.StartDate, e.EndDate); d != "" {
			datesHTML = fmt.Sprintf(`<div class="rp__dates">%s</div>`, hText(d))
		}
		summaryHTML := ""
		if !blank(e.Summary) {
			summaryHTML = fmt.Sprintf(`<div class="rp__text">%s</div>`, hRichText(e.Summary))
		}
		respHTML := ""
		if resp := nonBlank(e.Responsibilities); len(resp) > 0 {
			var lis strings.Builder
			for _, r := range resp {
				lis.WriteString("<li>" + hRichText(r) + "</li>")
			}
			respHTML = fmt.Sprintf(`<ul class="rp__list">%s</ul>`, lis.String())
		}

		items = append(items, fmt.Sprintf(`<div class="rp__item">
  <div class="rp__row">
    <div class="rp__company">%s</div>
    %s
  </div>
  <div class="rp__row rp__rowSub">
    <div class="rp__role">%s</div>
    %s
  </div>
  %s
  %s
</div>`, company, addrHTML, hText(e.Title), datesHTML, summaryHTML, respHTML))
	}
	inner := fmt.Sprintf(`<div class="rp__stack">%s</div>`, strings.Join(items, ""))
	return section("Experience", inner)
}

func renderEducationHTML(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockEducation) {
		return ""
	}
	var items []string
	for _, e := range prof.Education {
		inst := hText(e.Institution)
		if inst == "" {
			inst = "—"
		}
		datesHTML := ""
		if d := joinDateRange(e.StartDate, e.EndDate); d != "" {
			datesHTML = fmt.Sprintf(`<div class="rp__dates">%s</div>`, hText(d))
		}
		var fieldParts []string
		for _, p := range []string{e.Degree, e.FieldOfStudy} {
			if !blank(p) {
				fieldParts = append(fieldParts, strings.TrimSpace(p))
			}
		}
		locHTML := ""
		if !blank(e.Location) {
			locHTML = fmt.Sprintf(`<div class="rp__loc">%s</div>`, hText(e.Location))
		}
		notesHTML := ""
		if !blank(e.Notes) {
			notesHTML = fmt.Sprintf(`<div class="rp__text">%s</div>`, hRichText(e.Notes))
		}

		items = append(items, fmt.Sprintf(`<div class="rp__item">
  <div class="rp__row">
    <div class="rp__school">%s</div>
    %s
  </div>
  <div class="rp__row rp__rowSub">
    <div class="rp__field">%s</div>
    %s
  </div>
  %s
</div>`, inst, datesHTML, hText(strings.Join(fieldParts, " · ")), locHTML, notesHTML))
	}
	inner := fmt.Sprintf(`<div class="rp__stack">%s</div>`, strings.Join(items, ""))
	return section("Education", inner)
}

func renderProjectsHTML(prof *model.ResumeStructured, _ model.TemplateBlock) string {
	if !blockHasContent(prof, model.BlockProjects) {
		return ""
	}
	var items []string
	for _, p := range prof.Projects {
		name := hText(p.Name)
		if name == "" {
			name = "—"
		}
		descHTML := ""
		if !blank(p.Description) {
			descHTML = fmt.Sprintf(`<div class="rp__text">%s</div>`, hRichText(p.Description))
		}
		techHTML := ""
		if tech := nonBlank(p.Technologies); len(tech) > 0 {
			techHTML = fmt.Sprintf(`<div class="rp__text"><span class="rp__muted">Tech:</span> %s</div>`,
				hText(strings.Join(tech, ", ")))
		}

		type link struct{ label, href string }
		var links []link
		if !blank(p.GitHub) {
			links = append(links, link{"GitHub", normalizeHTTPURL(p.GitHub)})
		}
		demo := p.Demo
		if blank(demo) {
			demo = p.Link
		}
		if !blank(demo) {
			links = append(links, link{"Demo", normalizeHTTPURL(demo)})
		}
		linksHTML := ""
		if len(links) > 0 {
			var parts []string
			for i, l := range links {
				sep := ""
				if i != len(links)-1 {
					sep = `<span class="rp__linkSep"> | </span>`
				}
				parts = append(parts, fmt.Sprintf(`<a class="rp__link" href="%s">%s</a>%s`, hText(l.href), l.label, sep))
			}
			linksHTML = fmt.Sprintf(`<div class="rp__projLinks">%s</div>`, strings.Join(parts, ""))
		}

		items = append(items, fmt.Sprintf(`<div class="rp__item">
  <div class="rp__company">%s</div>
  %s
  %s
  %s
</div>`, name, descHTML, techHTML, linksHTML))
	}
	inner := fmt.Sprintf(`<div class="rp__stack">%s</div>`, strings.Join(items, ""))
	return section("Projects", inner)
}

// themeCSS is the source of truth for the headless Chrome PDF export. It is
// kept close to the frontend preview stylesheet so output matches, and
// avoids CSS features that behave differently in print.
func themeCSS(theme model.TemplateTheme) string {
	primary := ExpandHexColor(theme.PrimaryColor)
	primaryDotted := rgbaFromHex(primary, 0.9)

	return fmt.Sprintf(`
html, body { margin: 0; padding: 0; background: #fff; }
* { box-sizing: border-box; }

:root {
  font-family: system-ui, Avenir, Helvetica, Arial, sans-serif;
  line-height: 1.5;
  font-weight: 400;
  color: #0b1220;
  background-color: #ffffff;
  font-synthesis: none;
  text-rendering: optimizeLegibility;
  -webkit-font-smoothing: antialiased;
  --primary: %[1]s;
  --scale: %[2]g;
}

.rp {
  width: 100%%;
  max-width: 860px;
  margin: 0 auto;
  background: #fff;
  padding: calc(28px * var(--scale)) calc(34px * var(--scale));
}

.rp__header { padding-bottom: 14px; border-bottom: 0; }
.rp__headerBlock { text-align: center; }
.rp__headerMain {
  font-weight: 900; letter-spacing: -0.01em; font-size: calc(20pt * var(--scale));
  color: rgba(11, 18, 32, 0.95);
}
.rp__headerSub {
  margin-top: -2px; font-size: calc(11pt * var(--scale)); font-weight: 700;
  color: rgba(11, 18, 32, 0.78);
}

.rp__contact {
  margin-top: 10px; text-align: center; color: var(--primary);
  font-size: calc(8.8pt * var(--scale)); font-weight: 800;
}
.rp__contactItem { display: inline-flex; align-items: center; gap: 6px; }
.rp__contactIcon { display: inline-flex; align-items: center; justify-content: center; color: var(--primary); }
.rp__contactText { color: rgba(11, 18, 32, 0.7); font-weight: 700; }
.rp__contactLink { color: rgba(11, 18, 32, 0.7); font-weight: 700; text-decoration: underline; }
.rp__contactSep { margin: 0 10px; color: rgba(11, 18, 32, 0.18); font-weight: 800; }

.rp__section { margin-top: 1px; }
.rp__sectionHead {
  position: relative; display: flex; align-items: center; justify-content: center;
  margin: 16px 0 10px;
}
.rp__sectionTitle {
  font-weight: 900; letter-spacing: 0.06em; text-transform: uppercase;
  font-size: calc(12pt * var(--scale)); color: var(--primary); padding: 0 12px;
  background: #fff; position: relative; z-index: 1;
}
.rp__sectionHead::before {
  content: ''; position: absolute; left: 0; right: 0; top: 50%%;
  border-top: 1px dotted %[3]s;
  transform: translateY(-50%%);
}

.rp__text {
  margin-top: 6px;
  color: rgba(11, 18, 32, 0.78);
  line-height: 1.55;
  font-size: calc(10pt * var(--scale));
}
.rp__stack { display: grid; gap: 12px; }
.rp__item { padding: 10px 0; }
.rp__row { display: flex; justify-content: space-between; gap: 10px; align-items: flex-start; }
.rp__rowSub { margin-top: 2px; }
.rp__company, .rp__school {
  font-weight: 800; color: rgba(11, 18, 32, 0.9); font-size: calc(12pt * var(--scale));
}
.rp__role, .rp__field {
  font-weight: 700; color: rgba(11, 18, 32, 0.82); font-size: calc(10.5pt * var(--scale));
}
.rp__loc {
  color: rgba(11, 18, 32, 0.68);
  font-weight: 700;
  white-space: nowrap;
  font-size: calc(9.5pt * var(--scale));
}
.rp__dates {
  color: rgba(11, 18, 32, 0.6);
  font-size: calc(9pt * var(--scale));
  white-space: nowrap;
  font-weight: 600;
}
.rp__addr {
  color: rgba(11, 18, 32, 0.68);
  font-weight: 600;
  white-space: nowrap;
  margin-top: 4px;
  font-size: calc(9.5pt * var(--scale));
}
.rp__muted { color: rgba(11, 18, 32, 0.62); font-weight: 600; }
.rp__projLinks { margin-top: 6px; font-size: calc(10pt * var(--scale)); font-weight: 700; }
.rp__link { color: var(--primary); text-decoration: none; }
.rp__linkSep { color: rgba(11, 18, 32, 0.18); font-weight: 800; }

.rp__list {
  margin: 8px 0 0;
  padding-left: 18px;
  color: rgba(11, 18, 32, 0.78);
  font-size: calc(10pt * var(--scale));
  line-height: 1.5;
}

.rp__skillsBlock { display: grid; gap: 6px; }
.rp__skillLine { color: rgba(11, 18, 32, 0.78); line-height: 1.5; }
.rp__skillCat { font-weight: 800; color: rgba(11, 18, 32, 0.9); font-size: calc(10.5pt * var(--scale)); }
.rp__skillItems { color: rgba(11, 18, 32, 0.76); font-size: calc(10pt * var(--scale)); }

@page { size: A4; margin: %[4]gmm %[5]gmm %[6]gmm %[7]gmm; }
@media print {
  .rp { max-width: none; margin: 0; }
  body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .rp__item { break-inside: auto; page-break-inside: auto; }

  .rp__sectionHead, .rp__row, .rp__rowSub { break-inside: avoid; page-break-inside: avoid; }

  .rp__sectionHead { break-after: avoid; page-break-after: avoid; }
  .rp__sectionHead + * { break-before: avoid; page-break-before: avoid; }

  .rp__list { break-inside: auto; page-break-inside: auto; }
  .rp__list li { break-inside: avoid; page-break-inside: avoid; }
}
`, primary, theme.PDFScale, primaryDotted,
		theme.PageMarginTopMM, theme.PageMarginRightMM, theme.PageMarginBottomMM, theme.PageMarginLeftMM)
}
