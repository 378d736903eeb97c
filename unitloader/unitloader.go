// Package unitloader is a reference implementation of the Unit Loader
// contract spec.md §6 describes as an external collaborator: given a unit
// name, search a list of paths for a matching source file, parse it, and
// cache the result by lower-cased name. The compiler core (lexer, parser,
// sema, emit) never imports this package, and neither does cmd/pascalc;
// only this package's own tests use it.
package unitloader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/parser"
)

// Loader resolves `uses`-clause unit names against a fixed list of search
// paths, caching parsed units by lower-cased name so repeated loads of the
// same unit return the same AST (spec.md §6's caching clause).
type Loader struct {
	SearchPaths []string

	cache map[string]*ast.UnitDecl
}

// New creates a Loader over the given search paths, tried in order.
func New(searchPaths []string) *Loader {
	return &Loader{
		SearchPaths: searchPaths,
		cache:       make(map[string]*ast.UnitDecl),
	}
}

// Load resolves name to a parsed *ast.UnitDecl, or returns an error
// describing why it couldn't (not found, or a parse failure in the
// matching file). Repeated calls for the same name (case-insensitively)
// return the cached AST without touching the filesystem again.
func (l *Loader) Load(name string) (*ast.UnitDecl, error) {
	key := strings.ToLower(name)
	if u, ok := l.cache[key]; ok {
		return u, nil
	}

	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unitloader: reading %s: %w", path, err)
	}

	p := parser.New(lexer.New(string(src)))
	decl := p.ParseProgram()
	if len(p.Errors()) > 0 {
		return nil, fmt.Errorf("unitloader: parsing %s: %d error(s), first: %s", path, len(p.Errors()), p.Errors()[0].Message)
	}
	unit, ok := decl.(*ast.UnitDecl)
	if !ok {
		return nil, fmt.Errorf("unitloader: %s does not declare a unit", path)
	}

	l.cache[key] = unit
	return unit, nil
}

// resolve finds the first search-path candidate whose directory contains a
// case-insensitive match for "<name>.pas", trying paths in natural-sorted
// order within each directory so Unit2 is considered before Unit10 when a
// directory listing would otherwise string-sort them the other way.
func (l *Loader) resolve(name string) (string, error) {
	want := strings.ToLower(name) + ".pas"
	for _, dir := range l.SearchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
		for _, n := range names {
			if strings.ToLower(n) == want {
				return filepath.Join(dir, n), nil
			}
		}
	}
	return "", fmt.Errorf("unitloader: unit %q not found on search path %v", name, l.SearchPaths)
}
