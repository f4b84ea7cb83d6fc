package render

import (
	"testing"

	"resume-tailor/internal/model"
)

func TestSafeFilenameStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accented name with punctuation", "José Álvarez — CV!!", "Jose-Alvarez-CV"},
		{"plain name", "Jane Doe", "Jane-Doe"},
		{"internal whitespace collapses", "a \t b \n c", "a-b-c"},
		{"underscores survive", "my_resume_v2", "my_resume_v2"},
		{"only symbols falls back", "!!!***???", "resume"},
		{"empty falls back", "", "resume"},
		{"whitespace only falls back", "   ", "resume"},
		{"hyphen runs collapse", "a --- b", "a-b"},
		{
			"long input is bounded",
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SafeFilenameStem(tt.in); got != tt.want {
				t.Errorf("SafeFilenameStem(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got := SafeFilenameStem(tt.in); len(got) > 50 {
				t.Errorf("stem longer than 50 chars: %q", got)
			}
		})
	}
}

func TestSafeFilename(t *testing.T) {
	t.Parallel()

	if got := SafeFilename("José Álvarez — CV!!", "pdf"); got != "Jose-Alvarez-CV.pdf" {
		t.Errorf("SafeFilename = %q", got)
	}
	if got := SafeFilename("resume", ".tex"); got != "resume.tex" {
		t.Errorf("SafeFilename = %q", got)
	}
}

func TestEscapeLaTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{`100% & $5 #1`, `100\% \& \$5 \#1`},
		{`a_b {c}`, `a\_b \{c\}`},
		{`x~y^z`, `x\textasciitilde{}y\textasciicircum{}z`},
		{`path\to\file`, `path\textbackslash{}to\textbackslash{}file`},
		{"nothing to do", "nothing to do"},
	}

	for _, tt := range tests {
		if got := EscapeLaTeX(tt.in); got != tt.want {
			t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"#fff", "#ffffff"},
		{"#1a2", "#11aa22"},
		{"#00BBF9", "#00BBF9"},
		{"", model.DefaultPrimaryColor},
		{"blue", model.DefaultPrimaryColor},
		{"#12345", model.DefaultPrimaryColor},
		{"#gggggg", model.DefaultPrimaryColor},
	}

	for _, tt := range tests {
		if got := ExpandHexColor(tt.in); got != tt.want {
			t.Errorf("ExpandHexColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexRGB(t *testing.T) {
	t.Parallel()

	r, g, b := HexRGB("#00BBF9")
	if r != 0 || g != 187 || b != 249 {
		t.Errorf("HexRGB(#00BBF9) = %d,%d,%d", r, g, b)
	}
	r, g, b = HexRGB("#fff")
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("HexRGB(#fff) = %d,%d,%d", r, g, b)
	}
}
