package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"resume-tailor/internal/model"
)

// pdfDoc wraps an fpdf document with the theme-derived layout state shared
// by the vector block renderers.
type pdfDoc struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	theme model.TemplateTheme

	pageW  float64
	left   float64
	right  float64
	usable float64
}

const (
	inkR, inkG, inkB = 11, 18, 32
	mutedAlpha       = 0.72
)

// fontPt applies the theme typography scale to a base point size.
func (d *pdfDoc) fontPt(base float64) float64 {
	return base * d.theme.PDFScale
}

// text converts UTF-8 field text to the core-font codepage, trimmed.
func (d *pdfDoc) text(v string) string {
	return d.tr(strings.TrimSpace(v))
}

func (d *pdfDoc) setInk() {
	d.pdf.SetTextColor(inkR, inkG, inkB)
}

func (d *pdfDoc) setMuted() {
	d.pdf.SetTextColor(
		blend(inkR, mutedAlpha), blend(inkG, mutedAlpha), blend(inkB, mutedAlpha))
}

func (d *pdfDoc) setPrimary() {
	r, g, b := HexRGB(d.theme.PrimaryColor)
	d.pdf.SetTextColor(r, g, b)
}

// blend mixes a channel toward white, approximating the rgba() tones the
// HTML back end uses so both PDFs read alike.
func blend(c int, alpha float64) int {
	return int(float64(c)*alpha + 255*(1-alpha))
}

type pdfBlockRenderer func(d *pdfDoc, prof *model.ResumeStructured, block model.TemplateBlock)

var pdfRenderers = map[model.BlockType]pdfBlockRenderer{
	model.BlockHeader:     renderHeaderPDF,
	model.BlockSummary:    renderSummaryPDF,
	model.BlockSkills:     renderSkillsPDF,
	model.BlockExperience: renderExperiencePDF,
	model.BlockEducation:  renderEducationPDF,
	model.BlockProjects:   renderProjectsPDF,
}

// PDF draws the resume directly as a vector A4 document, without a browser.
// Block order follows the template; unknown and empty blocks are skipped.
func PDF(prof *model.ResumeStructured, theme model.TemplateTheme, blocks []model.TemplateBlock) ([]byte, error) {
	theme = theme.Normalized()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(theme.PageMarginLeftMM+10, theme.PageMarginTopMM+10, theme.PageMarginRightMM+10)
	pdf.SetAutoPageBreak(true, theme.PageMarginBottomMM+10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	d := &pdfDoc{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		theme:  theme,
		pageW:  pageW,
		left:   left,
		right:  right,
		usable: pageW - left - right,
	}

	for _, b := range blocks {
		fn, ok := pdfRenderers[b.Type]
		if !ok {
			continue
		}
		if !blockHasContent(prof, b.Type) {
			continue
		}
		if b.Type != model.BlockHeader {
			d.sectionHeader(blockTitle(b.Type))
		}
		fn(d, prof, b)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render vector pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// sectionHeader draws a dotted rule across the content width with the
// section title centered on a white box over it, in the primary color.
func (d *pdfDoc) sectionHeader(title string) {
	p := d.pdf
	p.Ln(4)
	y := p.GetY() + 3

	r, g, b := HexRGB(d.theme.PrimaryColor)
	p.SetDrawColor(r, g, b)
	p.SetLineWidth(0.25)
	p.SetDashPattern([]float64{0.4, 1.2}, 0)
	p.Line(d.left, y, d.pageW-d.right, y)
	p.SetDashPattern([]float64{}, 0)

	p.SetFont("Helvetica", "B", d.fontPt(12))
	label := strings.ToUpper(d.text(title))
	w := p.GetStringWidth(label) + 8

	p.SetFillColor(255, 255, 255)
	p.Rect((d.pageW-w)/2, y-3, w, 6, "F")

	d.setPrimary()
	p.SetXY(d.left, y-3)
	p.CellFormat(d.usable, 6, label, "", 1, "C", false, 0, "")
	p.Ln(2)
}

// writeRich writes emphasis-aware text as a flowing paragraph, toggling the
// bold face per span.
func (d *pdfDoc) writeRich(v string, basePt float64, lineH float64) {
	p := d.pdf
	for _, sp := range ParseEmphasis(v) {
		style := ""
		if sp.Bold {
			style = "B"
		}
		p.SetFont("Helvetica", style, d.fontPt(basePt))
		p.Write(lineH, d.text(sp.Text))
	}
	p.Ln(lineH)
}

// row writes a left/right pair on one line: left gets 72% of the width,
// right gets 28% right-aligned.
func (d *pdfDoc) row(leftText, rightText string, leftStyle, rightStyle string, leftPt, rightPt, h float64) {
	p := d.pdf
	lw := d.usable * 0.72
	rw := d.usable - lw

	p.SetFont("Helvetica", leftStyle, d.fontPt(leftPt))
	p.CellFormat(lw, h, d.text(leftText), "", 0, "L", false, 0, "")
	p.SetFont("Helvetica", rightStyle, d.fontPt(rightPt))
	p.CellFormat(rw, h, d.text(rightText), "", 1, "R", false, 0, "")
}

func renderHeaderPDF(d *pdfDoc, prof *model.ResumeStructured, _ model.TemplateBlock) {
	p := d.pdf

	if !blank(prof.Name) {
		p.SetFont("Helvetica", "B", d.fontPt(20))
		d.setInk()
		p.CellFormat(d.usable, 9, d.text(prof.Name), "", 1, "C", false, 0, "")
	}
	if !blank(prof.Title) {
		p.SetFont("Helvetica", "B", d.fontPt(11))
		d.setMuted()
		p.CellFormat(d.usable, 6, d.text(prof.Title), "", 1, "C", false, 0, "")
	}

	items := contactItems(prof.Contact)
	if len(items) > 0 {
		labels := make([]string, 0, len(items))
		for _, it := range items {
			labels = append(labels, it.Label)
		}
		p.SetFont("Helvetica", "B", d.fontPt(8.8))
		d.setMuted()
		p.CellFormat(d.usable, 5, d.text(strings.Join(labels, "  |  ")), "", 1, "C", false, 0, "")
	}
	p.Ln(2)
}

func renderSummaryPDF(d *pdfDoc, prof *model.ResumeStructured, _ model.TemplateBlock) {
	d.setMuted()
	d.writeRich(prof.ProfessionalSummary, 10, 5)
}

func renderSkillsPDF(d *pdfDoc, prof *model.ResumeStructured, _ model.TemplateBlock) {
	p := d.pdf
	for _, grp := range prof.Skills {
		skills := nonBlank(grp.Skills)
		if len(skills) == 0 && blank(grp.Category) {
			continue
		}
		if !blank(grp.Category) {
			p.SetFont("Helvetica", "B", d.fontPt(10.5))
			d.setInk()
			p.Write(5, d.text(grp.Category)+": ")
		}
		p.SetFont("Helvetica", "", d.fontPt(10))
		d.setMuted()
		p.Write(5, d.text(strings.Join(skills, ", ")))
		p.Ln(5)
	}
}

func renderExperiencePDF(d *pdfDoc, prof *model.ResumeStructured, _ model.TemplateBlock) {
	p := d.pdf
	for _, e := range prof.Experience {
		company := e.Company
		if blank(company) {
			company = "—"
		}
		d.setInk()
		d.row(company, e.CompanyAddress, "B", "", 12, 9.5, 6)
		d.setMuted()
		d.row(e.Title, joinDateRange(e.StartDate, e.EndDate), "B", "", 10.5, 9, 5)

		if !blank(e.Summary) {
			d.setMuted()
			d.writeRich(e.Summary, 10, 5)
		}
		for _, r := range nonBlank(e.Responsibilities) {
			d.bullet(r)
		}
		p.Ln(3)
	}
}

func renderEducationPDF(d *pdfDoc, prof *model.ResumeStructured, _ model.TemplateBlock) {
	p := d.pdf
	for _, e := range prof.Education {
		inst := e.Institution
		if blank(inst) {
			inst = "—"
		}
		d.setInk()
		d.row(inst, joinDateRange(e.StartDate, e.EndDate), "B", "", 12, 9, 6)

		var fieldParts []string
		for _, part := range []string{e.Degree, e.FieldOfStudy} {
			if !blank(part) {
				fieldParts = append(fieldParts, strings.TrimSpace(part))
			}
		}
		d.setMuted()
		d.row(strings.Join(fieldParts, " · "), e.Location, "B", "", 10.5, 9.5, 5)

		if !blank(e.Notes) {
			d.setMuted()
			d.writeRich(e.Notes, 10, 5)
		}
		p.Ln(3)
	}
}

func renderProjectsPDF(d *pdfDoc, prof *model.ResumeStructured, _ model.TemplateBlock) {
	p := d.pdf
	for _, proj := range prof.Projects {
		name := proj.Name
		if blank(name) {
			name = "—"
		}
		p.SetFont("Helvetica", "B", d.fontPt(12))
		d.setInk()
		p.CellFormat(d.usable, 6, d.text(name), "", 1, "L", false, 0, "")

		if !blank(proj.Description) {
			d.setMuted()
			d.writeRich(proj.Description, 10, 5)
		}
		if tech := nonBlank(proj.Technologies); len(tech) > 0 {
			p.SetFont("Helvetica", "I", d.fontPt(10))
			d.setMuted()
			p.Write(5, "Tech: ")
			p.SetFont("Helvetica", "", d.fontPt(10))
			p.Write(5, d.text(strings.Join(tech, ", ")))
			p.Ln(5)
		}

		var links []string
		if !blank(proj.GitHub) {
			links = append(links, normalizeHTTPURL(proj.GitHub))
		}
		demo := proj.Demo
		if blank(demo) {
			demo = proj.Link
		}
		if !blank(demo) {
			links = append(links, normalizeHTTPURL(demo))
		}
		if len(links) > 0 {
			p.SetFont("Helvetica", "", d.fontPt(9.5))
			d.setPrimary()
			p.CellFormat(d.usable, 5, d.text(strings.Join(links, "  |  ")), "", 1, "L", false, 0, "")
		}
		p.Ln(3)
	}
}

// bullet writes one list item with a hanging indent and emphasis-aware text.
func (d *pdfDoc) bullet(v string) {
	p := d.pdf
	p.SetFont("Helvetica", "", d.fontPt(10))
	d.setMuted()
	p.SetX(d.left + 4)
	p.Write(5, d.tr("• "))
	for _, sp := range ParseEmphasis(v) {
		style := ""
		if sp.Bold {
			style = "B"
		}
		p.SetFont("Helvetica", style, d.fontPt(10))
		p.Write(5, d.text(sp.Text))
	}
	p.Ln(5)
}
