package cmd

import (
	"strings"
	"testing"
)

func TestFormatSourceNormalizesSpacing(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContain string
	}{
		{
			name:        "colon gets a trailing space but no leading one",
			input:       "var x:Integer;",
			wantContain: "var x: Integer;",
		},
		{
			name:        "parameter list hugs its parens and comma",
			input:       "procedure   P(a,   b : Integer);",
			wantContain: "P(a, b: Integer);",
		},
		{
			name:        "semicolon hugs the preceding token",
			input:       "x := 1 ;",
			wantContain: "x := 1;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatSource(tt.input)
			if !strings.Contains(out, tt.wantContain) {
				t.Errorf("formatSource(%q) = %q, want substring %q", tt.input, out, tt.wantContain)
			}
		})
	}
}

func TestFormatSourcePreservesComments(t *testing.T) {
	out := formatSource("x := 1; { keep me }")
	if !strings.Contains(out, "{ keep me }") {
		t.Errorf("expected comment to survive formatting, got %q", out)
	}
}

func TestFormatSourceIsIdempotent(t *testing.T) {
	once := formatSource("var   x :   Integer ;")
	twice := formatSource(once)
	if once != twice {
		t.Errorf("formatSource is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}
