package render

import (
	"strings"

	"resume-tailor/internal/model"
)

// ContactItem is one entry of the header contact line.
type ContactItem struct {
	Kind  string // email, phone, location, linkedin, github
	Label string
}

// contactItems collects contact entries in display order, de-duplicating by
// kind then by label: if the same kind appears twice, or two kinds carry an
// identical label string, only the first occurrence renders.
func contactItems(c model.Contact) []ContactItem {
	seenKind := map[string]bool{}
	seenLabel := map[string]bool{}
	var items []ContactItem

	add := func(kind, label string) {
		lab := strings.TrimSpace(label)
		if lab == "" || seenKind[kind] || seenLabel[lab] {
			return
		}
		seenKind[kind] = true
		seenLabel[lab] = true
		items = append(items, ContactItem{Kind: kind, Label: lab})
	}

	add("email", c.Email)
	add("phone", c.Phone)
	add("location", c.Location)
	add("linkedin", c.LinkedIn)
	add("github", c.GitHub)
	return items
}

// joinDateRange joins a start/end pair with an en dash. A single present
// side renders alone; two absent sides render nothing.
func joinDateRange(start, end string) string {
	s := strings.TrimSpace(start)
	e := strings.TrimSpace(end)
	switch {
	case s == "" && e == "":
		return ""
	case s != "" && e != "":
		return s + " – " + e
	case s != "":
		return s
	default:
		return e
	}
}

// normalizeHTTPURL prepends https:// to stored link values that carry no
// scheme, so hyperlinks stay clickable in every output format.
func normalizeHTTPURL(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return "https://" + s
}

// blockTitle derives the section display title from the block type.
func blockTitle(t model.BlockType) string {
	switch t {
	case model.BlockSummary:
		return "Summary"
	case model.BlockSkills:
		return "Skills"
	case model.BlockExperience:
		return "Experience"
	case model.BlockEducation:
		return "Education"
	case model.BlockProjects:
		return "Projects"
	default:
		return ""
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func anyPresent(vals ...string) bool {
	for _, v := range vals {
		if !blank(v) {
			return true
		}
	}
	return false
}

func nonBlank(items []string) []string {
	var out []string
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// blockHasContent reports whether the record carries any renderable data
// for the given block type. Every back end consults this before emitting a
// section envelope, so an all-empty record assembles to an empty body.
func blockHasContent(prof *model.ResumeStructured, t model.BlockType) bool {
	switch t {
	case model.BlockHeader:
		return anyPresent(prof.Name, prof.Title) || len(contactItems(prof.Contact)) > 0
	case model.BlockSummary:
		return !blank(prof.ProfessionalSummary)
	case model.BlockSkills:
		for _, grp := range prof.Skills {
			if !blank(grp.Category) || len(nonBlank(grp.Skills)) > 0 {
				return true
			}
		}
		return false
	case model.BlockExperience:
		for _, e := range prof.Experience {
			if anyPresent(e.Title, e.Company, e.CompanyAddress, e.StartDate, e.EndDate, e.Summary) ||
				len(nonBlank(e.Responsibilities)) > 0 {
				return true
			}
		}
		return false
	case model.BlockEducation:
		for _, e := range prof.Education {
			if anyPresent(e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.StartDate, e.EndDate, e.Notes) {
				return true
			}
		}
		return false
	case model.BlockProjects:
		for _, p := range prof.Projects {
			if anyPresent(p.Name, p.Description, p.Link, p.GitHub, p.Demo) ||
				len(nonBlank(p.Technologies)) > 0 {
				return true
			}
		}
		return false
	default:
		return false
	}
}
