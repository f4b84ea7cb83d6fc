package render

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"resume-tailor/internal/model"
)

// EscapeHTML neutralizes HTML special characters. Callers escape exactly
// once per field, after emphasis-span extraction.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// EscapeLaTeX neutralizes LaTeX control characters so free text compiles
// literally.
func EscapeLaTeX(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '&', '%', '$', '#', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

const (
	filenameStemMax  = 50
	fallbackFileStem = "resume"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonFileChars  = regexp.MustCompile(`[^A-Za-z0-9\-_]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// asciiFold strips accents (NFKD + combining-mark removal) and drops any
// rune that still is not ASCII.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SafeFilenameStem builds an ASCII-only filename stem, removing anything
// that could break HTTP headers on download. Whitespace becomes a single
// hyphen, everything outside [A-Za-z0-9-_] is dropped, hyphen runs
// collapse, and the result is bounded to 50 characters. An empty result
// falls back to "resume".
func SafeFilenameStem(v string) string {
	v = asciiFold(strings.TrimSpace(v))
	v = whitespaceRun.ReplaceAllString(v, "-")
	v = nonFileChars.ReplaceAllString(v, "")
	v = hyphenRun.ReplaceAllString(v, "-")
	v = strings.Trim(v, "-_")
	if len(v) > filenameStemMax {
		v = strings.Trim(v[:filenameStemMax], "-_")
	}
	if v == "" {
		return fallbackFileStem
	}
	return v
}

// SafeFilename joins a sanitized stem with an extension.
func SafeFilename(v, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return SafeFilenameStem(v) + ext
}

// ExpandHexColor normalizes #RGB shorthand to #RRGGBB so every back end
// emits the same 6-digit form. Anything unparseable falls back to the
// default primary color.
func ExpandHexColor(c string) string {
	c = strings.TrimSpace(c)
	if !strings.HasPrefix(c, "#") {
		return model.DefaultPrimaryColor
	}
	hx := c[1:]
	if len(hx) == 3 {
		var b strings.Builder
		for _, r := range hx {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hx = b.String()
	}
	if len(hx) != 6 {
		return model.DefaultPrimaryColor
	}
	if _, err := strconv.ParseUint(hx, 16, 32); err != nil {
		return model.DefaultPrimaryColor
	}
	return "#" + hx
}

// HexRGB decomposes a hex color (3- or 6-digit) into its channels.
func HexRGB(c string) (r, g, b int) {
	hx := ExpandHexColor(c)[1:]
	rv, _ := strconv.ParseUint(hx[0:2], 16, 8)
	gv, _ := strconv.ParseUint(hx[2:4], 16, 8)
	bv, _ := strconv.ParseUint(hx[4:6], 16, 8)
	return int(rv), int(gv), int(bv)
}

// rgbaFromHex converts a hex color to rgba(r,g,b,a) for better print/PDF
// consistency in CSS.
func rgbaFromHex(c string, alpha float64) string {
	r, g, b := HexRGB(c)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}
