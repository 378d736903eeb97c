package errors

import (
	"strings"
	"testing"

	"github.com/pascalc/pascalc/token"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "program P;\nbegin\n  x := ;\nend.\n"
	err := NewCompilerError(token.Position{Line: 3, Column: 8}, "expected expression", src, "p.pas")
	out := err.Format(false)

	if !strings.Contains(out, "p.pas:3:8:") {
		t.Errorf("missing location header: %q", out)
	}
	if !strings.Contains(out, "x := ;") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret: %q", out)
	}
}

func TestFormatWithoutSourceOmitsCaret(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "oops", "", "")
	out := err.Format(false)
	if strings.Contains(out, "^") {
		t.Errorf("expected no caret without source, got %q", out)
	}
}

func TestFormatErrorsNumbersMultiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(token.Position{Line: 1, Column: 1}, "first", "", "a.pas"),
		NewCompilerError(token.Position{Line: 2, Column: 1}, "second", "", "a.pas"),
	}
	out := FormatErrors(errs, false)
	if !strings.Contains(out, "[1/2]") || !strings.Contains(out, "[2/2]") {
		t.Errorf("expected numbered entries, got %q", out)
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if FormatErrors(nil, false) != "" {
		t.Error("expected empty string for no errors")
	}
}
