// Package parser implements a recursive-descent parser with precedence
// climbing over the Pascal dialect's expression grammar, producing the typed
// AST defined by package ast. Errors are accumulated (panic-mode recovery)
// rather than aborting on the first failure.
package parser

import (
	"fmt"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/token"
)

// Error is a single parse diagnostic: an unexpected or missing token.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string { return e.Message }

// Parser drives a Lexer with single-token lookahead (cur) plus the lexer's
// own Peek for the rare two-token lookahead the grammar needs.
type Parser struct {
	lex    *lexer.Lexer
	cur    token.Token
	errors []Error

	// inInterface is threaded into declaration parsing so that
	// procedure/function bodies are only parsed in implementation context;
	// interface entries record signatures with no body (spec.md §4.2).
	inInterface bool
}

// New creates a Parser over l and primes the first token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.advance()
	return p
}

// Errors returns all parse errors accumulated so far.
func (p *Parser) Errors() []Error { return p.errors }

func (p *Parser) advance() {
	p.cur = p.lex.NextToken()
}

func (p *Parser) peek() token.Token {
	return p.lex.PeekToken()
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind, else records an error
// with expected-vs-got detail and returns the zero Token unconsumed.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.check(kind) {
		tok := p.cur
		p.advance()
		return tok
	}
	p.errorf("expected %s, got %s (%q)", kind, p.cur.Kind, p.cur.Text)
	return token.Token{}
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     p.cur.Pos,
	})
}

// statementStartKinds is the panic-mode resync set: tokens that begin a new
// statement or declaration, plus SEMI which ends the broken one.
var statementStartKinds = map[token.Kind]bool{
	token.BEGIN: true, token.IF: true, token.WHILE: true, token.FOR: true,
	token.REPEAT: true, token.CASE: true, token.WITH: true, token.GOTO: true,
	token.VAR: true, token.CONST: true, token.TYPE: true, token.PROCEDURE: true,
	token.FUNCTION: true, token.END: true, token.LABEL: true,
}

// synchronize advances past tokens until it finds a statement-starting
// keyword or a semicolon, implementing panic-mode recovery (spec.md §4.2).
func (p *Parser) synchronize() {
	for !p.check(token.EOF) {
		if p.check(token.SEMI) {
			p.advance()
			return
		}
		if statementStartKinds[p.cur.Kind] {
			return
		}
		p.advance()
	}
}

func (p *Parser) base() ast.Base { return ast.NewBase(p.cur.Pos) }
