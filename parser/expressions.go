package parser

import (
	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/token"
)

// ParseExpression parses a full expression at the lowest precedence level
// (`or`), per spec.md §4.2's six-level stratification.
func (p *Parser) ParseExpression() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(token.OR) {
		pos := p.cur.Pos
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Base: ast.NewBase(pos), Op: ast.OpOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseRelational()
	for p.check(token.AND) {
		pos := p.cur.Pos
		p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Base: ast.NewBase(pos), Op: ast.OpAnd, Left: left, Right: right}
	}
	return left
}

var relOps = map[token.Kind]ast.BinaryOp{
	token.EQ: ast.OpEq, token.NEQ: ast.OpNeq, token.LT: ast.OpLt,
	token.LE: ast.OpLe, token.GT: ast.OpGt, token.GE: ast.OpGe, token.IN: ast.OpIn,
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for {
		op, ok := relOps[p.cur.Kind]
		if !ok {
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Base: ast.NewBase(pos), Op: op, Left: left, Right: right}
	}
}

var addOps = map[token.Kind]ast.BinaryOp{
	token.PLUS: ast.OpAdd, token.MINUS: ast.OpSub, token.XOR: ast.OpXor,
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for {
		op, ok := addOps[p.cur.Kind]
		if !ok {
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Base: ast.NewBase(pos), Op: op, Left: left, Right: right}
	}
}

var mulOps = map[token.Kind]ast.BinaryOp{
	token.STAR: ast.OpMul, token.SLASH: ast.OpDiv, token.DIV: ast.OpIntDiv,
	token.MOD: ast.OpMod, token.SHL: ast.OpShl, token.SHR: ast.OpShr,
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		op, ok := mulOps[p.cur.Kind]
		if !ok {
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Base: ast.NewBase(pos), Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Kind {
	case token.NOT:
		pos := p.cur.Pos
		p.advance()
		return &ast.UnaryExpr{Base: ast.NewBase(pos), Op: ast.OpNot, Operand: p.parseUnary()}
	case token.PLUS:
		pos := p.cur.Pos
		p.advance()
		return &ast.UnaryExpr{Base: ast.NewBase(pos), Op: ast.OpPos, Operand: p.parseUnary()}
	case token.MINUS:
		pos := p.cur.Pos
		p.advance()
		return &ast.UnaryExpr{Base: ast.NewBase(pos), Op: ast.OpNeg, Operand: p.parseUnary()}
	case token.AT:
		pos := p.cur.Pos
		p.advance()
		return &ast.AddressOfExpr{Base: ast.NewBase(pos), Operand: p.parseUnary()}
	default:
		return p.parsePostfix()
	}
}

// parsePostfix binds call/field/index/deref tighter than any binary
// operator, composing left-to-right (spec.md §4.2).
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.cur.Kind {
		case token.LPAREN:
			pos := p.cur.Pos
			p.advance()
			args := p.parseArgList()
			p.expect(token.RPAREN)
			expr = &ast.CallExpr{Base: ast.NewBase(pos), Callee: expr, Args: args}
		case token.DOT:
			pos := p.cur.Pos
			p.advance()
			name := p.expect(token.IDENT)
			expr = &ast.FieldAccessExpr{Base: ast.NewBase(pos), Receiver: expr, Field: name.Text}
		case token.LBRACK:
			pos := p.cur.Pos
			p.advance()
			indices := []ast.Expr{p.ParseExpression()}
			for p.match(token.COMMA) {
				indices = append(indices, p.ParseExpression())
			}
			p.expect(token.RBRACK)
			expr = &ast.IndexExpr{Base: ast.NewBase(pos), Receiver: expr, Indices: indices}
		case token.CARET:
			pos := p.cur.Pos
			p.advance()
			expr = &ast.DerefExpr{Base: ast.NewBase(pos), Operand: expr}
		default:
			return expr
		}
	}
}

// parseArgList parses a comma-separated call argument list, recognizing the
// `expr:width[:precision]` formatted form used by write/writeln.
func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	if p.check(token.RPAREN) {
		return args
	}
	args = append(args, p.parseArg())
	for p.match(token.COMMA) {
		args = append(args, p.parseArg())
	}
	return args
}

func (p *Parser) parseArg() ast.Expr {
	pos := p.cur.Pos
	value := p.ParseExpression()
	if !p.check(token.COLON) {
		return value
	}
	p.advance()
	width := p.ParseExpression()
	var precision ast.Expr
	if p.match(token.COLON) {
		precision = p.ParseExpression()
	}
	return &ast.FormattedExpr{Base: ast.NewBase(pos), Value: value, Width: width, Precision: precision}
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.INT:
		t := p.cur.Text
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.IntLit, Text: t}
	case token.REAL:
		t := p.cur.Text
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.RealLit, Text: t}
	case token.STRING:
		t := p.cur.Text
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.StringLit, Text: t}
	case token.CHAR:
		t := p.cur.Text
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.CharLit, Text: t}
	case token.TRUE:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.BoolLit, Text: "true"}
	case token.FALSE:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.BoolLit, Text: "false"}
	case token.NIL:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.NilLit, Text: "nil"}
	case token.IDENT:
		name := p.cur.Text
		p.advance()
		return &ast.Ident{Base: ast.NewBase(pos), Name: name}
	case token.LPAREN:
		p.advance()
		expr := p.ParseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACK:
		return p.parseSetLiteral()
	default:
		p.errorf("expected expression, got %s (%q)", p.cur.Kind, p.cur.Text)
		p.advance()
		return &ast.Literal{Base: ast.NewBase(pos), Kind: ast.IntLit, Text: "0"}
	}
}

// parseSetLiteral parses `[e1, e2..e3, ...]`. Elements are single values or
// a..b ranges.
func (p *Parser) parseSetLiteral() ast.Expr {
	pos := p.cur.Pos
	p.advance() // [
	var elems []ast.Expr
	if !p.check(token.RBRACK) {
		elems = append(elems, p.parseSetElement())
		for p.match(token.COMMA) {
			elems = append(elems, p.parseSetElement())
		}
	}
	p.expect(token.RBRACK)
	return &ast.SetLiteralExpr{Base: ast.NewBase(pos), Elements: elems}
}

func (p *Parser) parseSetElement() ast.Expr {
	pos := p.cur.Pos
	start := p.ParseExpression()
	if p.match(token.DOTDOT) {
		end := p.ParseExpression()
		return &ast.RangeExpr{Base: ast.NewBase(pos), Start: start, End: end}
	}
	return start
}
