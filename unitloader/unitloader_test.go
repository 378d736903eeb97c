package unitloader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeUnit(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestLoadResolvesAndParsesUnit(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "mathutils.pas", `
		unit MathUtils;
		interface
		function Double(n: Integer): Integer;
		implementation
		function Double(n: Integer): Integer;
		begin
			Double := n * 2
		end;
		end.
	`)

	l := New([]string{dir})
	unit, err := l.Load("MathUtils")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit.Name != "MathUtils" {
		t.Errorf("expected unit name MathUtils, got %q", unit.Name)
	}
	if len(unit.InterfaceDecls) != 1 {
		t.Errorf("expected one interface declaration, got %d", len(unit.InterfaceDecls))
	}
}

func TestLoadIsCaseInsensitiveAndCached(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "strutils.pas", `
		unit StrUtils;
		interface
		implementation
		end.
	`)

	l := New([]string{dir})
	first, err := l.Load("strutils")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.Load("STRUTILS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected cached unit to be returned by identity for a case-insensitive repeat load")
	}
}

func TestLoadReportsMissingUnit(t *testing.T) {
	l := New([]string{t.TempDir()})
	if _, err := l.Load("Nonexistent"); err == nil {
		t.Error("expected an error for a unit with no matching file")
	}
}
