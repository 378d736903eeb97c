package diag

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/pascalc/pascalc/internal/errors"
	"github.com/pascalc/pascalc/token"
)

func sampleErrors() []*errors.CompilerError {
	return []*errors.CompilerError{
		errors.NewCompilerError(token.Position{Line: 3, Column: 7}, "unknown identifier Foo", "x := Foo;\n", "main.pas"),
		errors.NewCompilerError(token.Position{Line: 5, Column: 1}, "expected ';'", "y := 1\n", "main.pas"),
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, want FormatJSON", ParseFormat("json"))
	}
	if ParseFormat("text") != FormatText {
		t.Errorf("ParseFormat(text) = %v, want FormatText", ParseFormat("text"))
	}
	if ParseFormat("bogus") != FormatText {
		t.Errorf("ParseFormat(bogus) = %v, want FormatText fallback", ParseFormat("bogus"))
	}
}

func TestRenderErrorsText(t *testing.T) {
	out, err := RenderErrors(sampleErrors(), FormatText, false)
	if err != nil {
		t.Fatalf("RenderErrors() error = %v", err)
	}
	if !strings.Contains(out, "unknown identifier Foo") {
		t.Errorf("text output missing first message: %q", out)
	}
	if !strings.Contains(out, "main.pas:3:7") {
		t.Errorf("text output missing position header: %q", out)
	}
}

func TestRenderErrorsJSON(t *testing.T) {
	out, err := RenderErrors(sampleErrors(), FormatJSON, false)
	if err != nil {
		t.Fatalf("RenderErrors() error = %v", err)
	}
	if !gjson.Valid(out) {
		t.Fatalf("RenderErrors(json) produced invalid JSON: %s", out)
	}
	parsed := gjson.Parse(out)
	if count := parsed.Get("count").Int(); count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	errs := parsed.Get("errors")
	if !errs.IsArray() || len(errs.Array()) != 2 {
		t.Fatalf("errors array = %v, want 2 entries", errs)
	}
	first := errs.Array()[0]
	if first.Get("message").String() != "unknown identifier Foo" {
		t.Errorf("errors.0.message = %q", first.Get("message").String())
	}
	if first.Get("line").Int() != 3 || first.Get("column").Int() != 7 {
		t.Errorf("errors.0 position = %d:%d, want 3:7", first.Get("line").Int(), first.Get("column").Int())
	}
}

func TestRenderErrorsJSONEmpty(t *testing.T) {
	out, err := RenderErrors(nil, FormatJSON, false)
	if err != nil {
		t.Fatalf("RenderErrors() error = %v", err)
	}
	parsed := gjson.Parse(out)
	if parsed.Get("count").Int() != 0 {
		t.Errorf("count = %d, want 0", parsed.Get("count").Int())
	}
	if errsArr := parsed.Get("errors"); !errsArr.IsArray() || len(errsArr.Array()) != 0 {
		t.Errorf("errors = %v, want empty array", errsArr)
	}
}

func TestTraceRendersStructFields(t *testing.T) {
	type point struct{ X, Y int }
	out := Trace(point{X: 1, Y: 2})
	if !strings.Contains(out, "X:") || !strings.Contains(out, "Y:") {
		t.Errorf("Trace output missing field names: %q", out)
	}
}
