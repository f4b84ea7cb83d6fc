package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ErrTextTooShort flags uploads that yield almost no text, typically
// scanned image-only PDFs.
var ErrTextTooShort = errors.New("extracted text too short, the PDF may be image-only")

const minExtractedChars = 50

var (
	bulletChars   = regexp.MustCompile("[•●▪◦]")
	spaceRun      = regexp.MustCompile(`[ \t]{2,}`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
)

// ExtractResumeText pulls plain text out of a PDF, page by page, with page
// markers so the LLM can tell sections apart across page breaks.
func ExtractResumeText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", n+1, err)
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n", n+1, text)
	}

	cleaned := CleanResumeText(b.String())
	if len(cleaned) < minExtractedChars {
		return "", ErrTextTooShort
	}
	return cleaned, nil
}

// CleanResumeText normalizes extraction noise: line endings, decorative
// bullet glyphs, runs of spaces and blank lines.
func CleanResumeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = bulletChars.ReplaceAllString(s, "- ")
	s = spaceRun.ReplaceAllString(s, " ")
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = blankLineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
