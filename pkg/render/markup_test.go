package render

import (
	"reflect"
	"testing"
)

func TestParseEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "plain text",
			in:   "nothing special here",
			want: []Span{{Text: "nothing special here"}},
		},
		{
			name: "single bold span",
			in:   `built \bAPIs b\ at scale`,
			want: []Span{
				{Text: "built "},
				{Bold: true, Text: "APIs "},
				{Text: " at scale"},
			},
		},
		{
			name: "multiple bold spans",
			in:   `\bGo b\ and \bRust b\ and \bZig b\`,
			want: []Span{
				{Bold: true, Text: "Go "},
				{Text: " and "},
				{Bold: true, Text: "Rust "},
				{Text: " and "},
				{Bold: true, Text: "Zig "},
			},
		},
		{
			name: "bold at start",
			in:   `\bLead b\ engineer`,
			want: []Span{
				{Bold: true, Text: "Lead "},
				{Text: " engineer"},
			},
		},
		{
			name: "unterminated open renders literally",
			in:   `shipped \bthe big thing`,
			want: []Span{
				{Text: "shipped "},
				{Text: `\bthe big thing`},
			},
		},
		{
			name: "doubled tokens normalize",
			in:   `saw \\bbold textb\\ today`,
			want: []Span{
				{Text: "saw "},
				{Bold: true, Text: "bold text"},
				{Text: " today"},
			},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "empty bold span",
			in:   `\bb\`,
			want: []Span{{Bold: true, Text: ""}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseEmphasis(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEmphasis(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEmphasisCoversInput(t *testing.T) {
	t.Parallel()

	// Concatenating span texts of a marker-free input must reproduce it.
	in := "a plain sentence with no markers at all"
	var out string
	for _, sp := range ParseEmphasis(in) {
		out += sp.Text
	}
	if out != in {
		t.Errorf("spans lost text: got %q, want %q", out, in)
	}
}
