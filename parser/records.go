package parser

import (
	"strings"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/token"
)

// rawTypeTextToken renders tok the way it looks in source, so the
// reconstructed type text keeps literals recognizable: string literals are
// re-quoted (doubling embedded quotes) since the lexer's Text for a STRING
// token is already dequoted.
func rawTypeTextToken(tok token.Token) string {
	if tok.Kind == token.STRING {
		return "'" + strings.ReplaceAll(tok.Text, "'", "''") + "'"
	}
	return tok.Text
}

// parseTypeTextRawStop consumes tokens verbatim (tracking paren/bracket
// depth so nested `[...]`/`(...)` don't trip an early stop) until it sees
// one of stops at depth 0, joining the consumed token text with spaces. The
// analyzer splits this text on whitespace rather than relying on exact
// spacing, so the reconstruction need not match the original byte-for-byte.
func (p *Parser) parseTypeTextRawStop(stops ...token.Kind) string {
	stopSet := make(map[token.Kind]bool, len(stops))
	for _, k := range stops {
		stopSet[k] = true
	}
	depth := 0
	var parts []string
	for {
		if p.check(token.EOF) {
			break
		}
		if depth == 0 && stopSet[p.cur.Kind] {
			break
		}
		switch p.cur.Kind {
		case token.LPAREN, token.LBRACK:
			depth++
		case token.RPAREN, token.RBRACK:
			depth--
		}
		parts = append(parts, rawTypeTextToken(p.cur))
		p.advance()
	}
	return strings.Join(parts, " ")
}

// parseTypeTextRaw is parseTypeTextRawStop specialized to the common case of
// a type occurring in a field or var declaration, terminated by `;` (or `)`
// when it's the last field of a variant case's field group).
func (p *Parser) parseTypeTextRaw() string {
	return p.parseTypeTextRawStop(token.SEMI, token.RPAREN)
}

// parseRecordType parses a record body: fixed fields followed by an
// optional variant part. The variant part follows, never interleaves with,
// the fixed field list (spec.md §4.2).
func (p *Parser) parseRecordType() *ast.RecordType {
	p.expect(token.RECORD)
	fields := p.parseFieldList()

	var variant *ast.VariantPart
	if p.match(token.CASE) {
		selName := p.expect(token.IDENT).Text
		p.expect(token.COLON)
		selType := p.parseTypeTextRawStop(token.OF)
		p.expect(token.OF)

		var cases []ast.VariantCase
		for !p.check(token.END) && !p.check(token.EOF) {
			values := p.parseCaseValues()
			p.expect(token.COLON)
			p.expect(token.LPAREN)
			caseFields := p.parseFieldList()
			p.expect(token.RPAREN)
			cases = append(cases, ast.VariantCase{Values: values, Fields: caseFields})
			if !p.match(token.SEMI) {
				break
			}
		}
		variant = &ast.VariantPart{SelectorName: selName, SelectorType: selType, Cases: cases}
	}

	p.expect(token.END)
	return &ast.RecordType{Fields: fields, Variant: variant}
}

// parseFieldList parses `name{, name}: type;` groups until it hits `case`,
// `end`, or `)` (the latter closing a variant case's field parenthesis).
func (p *Parser) parseFieldList() []ast.FieldDecl {
	var fields []ast.FieldDecl
	for p.check(token.IDENT) {
		names := []string{p.cur.Text}
		p.advance()
		for p.match(token.COMMA) {
			names = append(names, p.expect(token.IDENT).Text)
		}
		p.expect(token.COLON)
		typ := p.parseTypeTextRaw()
		for _, n := range names {
			fields = append(fields, ast.FieldDecl{Name: n, Type: typ})
		}
		if !p.match(token.SEMI) {
			break
		}
	}
	return fields
}
