package usecase

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanResumeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bullet glyphs become dashes",
			in:   "• Built things\n● Shipped things",
			want: "- Built things\n- Shipped things",
		},
		{
			name: "space runs collapse",
			in:   "a    b\tc",
			want: "a b\tc",
		},
		{
			name: "blank line runs collapse",
			in:   "a\n\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "windows line endings",
			in:   "a\r\nb\rc",
			want: "a\nb\nc",
		},
		{
			name: "trailing whitespace stripped",
			in:   "line one   \nline two",
			want: "line one\nline two",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanResumeText(tt.in); got != tt.want {
				t.Errorf("CleanResumeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractResumeTextRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ExtractResumeText([]byte("not a pdf")); err == nil {
		t.Error("non-PDF input accepted")
	}
}

func TestErrTextTooShortIsSentinel(t *testing.T) {
	t.Parallel()

	err := ErrTextTooShort
	if !errors.Is(err, ErrTextTooShort) {
		t.Error("sentinel identity broken")
	}
	if !strings.Contains(err.Error(), "too short") {
		t.Errorf("unexpected message: %v", err)
	}
}
