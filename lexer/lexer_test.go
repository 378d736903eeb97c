package lexer

import (
	"testing"

	"github.com/pascalc/pascalc/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `program P;
var i: integer;
begin
  i := 1 + 2 * 3;
  if i <= 10 then writeln('hi ''there''')
end.`

	l := New(input)
	want := []token.Kind{
		token.PROGRAM, token.IDENT, token.SEMI,
		token.VAR, token.IDENT, token.COLON, token.INTEGER, token.SEMI,
		token.BEGIN,
		token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT, token.STAR, token.INT, token.SEMI,
		token.IF, token.IDENT, token.LE, token.INT, token.THEN, token.IDENT, token.LPAREN, token.STRING, token.RPAREN,
		token.END, token.DOT, token.EOF,
	}
	for i, wk := range want {
		tok := l.NextToken()
		if tok.Kind != wk {
			t.Fatalf("token %d: got %s, want %s (text=%q)", i, tok.Kind, wk, tok.Text)
		}
	}
}

func TestPeekTokenIdempotent(t *testing.T) {
	l := New("abc 123")
	p1 := l.PeekToken()
	p2 := l.PeekToken()
	if p1 != p2 {
		t.Fatalf("peek not idempotent: %v != %v", p1, p2)
	}
	n := l.NextToken()
	if n != p1 {
		t.Fatalf("next after peek mismatch: %v != %v", n, p1)
	}
}

func TestComments(t *testing.T) {
	l := New("{ a comment } (* another *) var")
	tok := l.NextToken()
	if tok.Kind != token.VAR {
		t.Fatalf("expected comments skipped, got %s", tok.Kind)
	}
}

func TestUnterminatedComment(t *testing.T) {
	l := New("{ never closes")
	tok := l.NextToken()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %s", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
}

func TestStringEscapedQuote(t *testing.T) {
	l := New(`'it''s'`)
	tok := l.NextToken()
	if tok.Kind != token.STRING || tok.Text != "it's" {
		t.Fatalf("got %v", tok)
	}
}

func TestCharLiteralOrdinal(t *testing.T) {
	l := New("#65")
	tok := l.NextToken()
	if tok.Kind != token.CHAR || tok.Text != "#65" {
		t.Fatalf("got %v", tok)
	}
}

func TestRealLiteral(t *testing.T) {
	l := New("3.14 2.5e-10 10")
	if tok := l.NextToken(); tok.Kind != token.REAL || tok.Text != "3.14" {
		t.Fatalf("got %v", tok)
	}
	if tok := l.NextToken(); tok.Kind != token.REAL || tok.Text != "2.5e-10" {
		t.Fatalf("got %v", tok)
	}
	if tok := l.NextToken(); tok.Kind != token.INT || tok.Text != "10" {
		t.Fatalf("got %v", tok)
	}
}

func TestKeywordCaseInsensitive(t *testing.T) {
	l := New("BEGIN End BeGiN")
	for i := 0; i < 2; i++ {
		tok := l.NextToken()
		if tok.Kind != token.BEGIN && tok.Kind != token.END {
			t.Fatalf("expected keyword, got %v", tok)
		}
	}
}

func TestLocationMonotonic(t *testing.T) {
	l := New("a b\nc   d")
	var last token.Position
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Pos.Offset < last.Offset {
			t.Fatalf("offset went backwards: %+v after %+v", tok.Pos, last)
		}
		if tok.Pos.Line < last.Line {
			t.Fatalf("line went backwards: %+v after %+v", tok.Pos, last)
		}
		last = tok.Pos
	}
}

func TestRoundTripIdentifiersAndLiterals(t *testing.T) {
	samples := []string{"foo_Bar1", "123", "3.14", "'hello'", "#13"}
	for _, s := range samples {
		tok := New(s).NextToken()
		tok2 := New(tok.Text).NextToken()
		if tok.Kind != tok2.Kind {
			t.Fatalf("round-trip kind mismatch for %q: %s != %s", s, tok.Kind, tok2.Kind)
		}
	}
}
