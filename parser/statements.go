package parser

import (
	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/token"
)

// ParseCompound parses `begin stmts end`, with an optional trailing
// semicolon before `end`.
func (p *Parser) ParseCompound() *ast.CompoundStmt {
	pos := p.cur.Pos
	p.expect(token.BEGIN)
	var stmts []ast.Stmt
	for !p.check(token.END) && !p.check(token.EOF) {
		stmts = append(stmts, p.ParseStatement())
		if !p.match(token.SEMI) {
			break
		}
	}
	p.expect(token.END)
	return &ast.CompoundStmt{Base: ast.NewBase(pos), Stmts: stmts}
}

// ParseStatement parses one statement, dispatching on the current token.
// On a malformed statement it records an error and synchronizes.
func (p *Parser) ParseStatement() ast.Stmt {
	pos := p.cur.Pos

	if (p.check(token.IDENT) || p.check(token.INT)) && p.peek().Kind == token.COLON {
		name := p.cur.Text
		p.advance()
		p.advance() // :
		return &ast.LabelStmt{Base: ast.NewBase(pos), Name: name, Stmt: p.ParseStatement()}
	}

	switch p.cur.Kind {
	case token.BEGIN:
		return p.ParseCompound()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.REPEAT:
		return p.parseRepeat()
	case token.CASE:
		return p.parseCase()
	case token.WITH:
		return p.parseWith()
	case token.GOTO:
		p.advance()
		name := p.parseLabelName()
		return &ast.GotoStmt{Base: ast.NewBase(pos), Name: name}
	case token.BREAK:
		p.advance()
		return &ast.BreakStmt{Base: ast.NewBase(pos)}
	case token.CONTINUE:
		p.advance()
		return &ast.ContinueStmt{Base: ast.NewBase(pos)}
	case token.SEMI, token.END:
		// Empty statement.
		return &ast.CompoundStmt{Base: ast.NewBase(pos)}
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement parses an assignment or a bare expression statement
// (typically a procedure call), distinguishing on whether `:=` follows the
// parsed expression.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	pos := p.cur.Pos
	expr := p.ParseExpression()
	if p.match(token.ASSIGN) {
		value := p.ParseExpression()
		return &ast.AssignStmt{Base: ast.NewBase(pos), Target: expr, Value: value}
	}
	return &ast.ExprStmt{Base: ast.NewBase(pos), X: expr}
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.cur.Pos
	p.expect(token.IF)
	cond := p.ParseExpression()
	p.expect(token.THEN)
	then := p.ParseStatement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.ParseStatement()
	}
	return &ast.IfStmt{Base: ast.NewBase(pos), Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.cur.Pos
	p.expect(token.WHILE)
	cond := p.ParseExpression()
	p.expect(token.DO)
	body := p.ParseStatement()
	return &ast.WhileStmt{Base: ast.NewBase(pos), Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.cur.Pos
	p.expect(token.FOR)
	v := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	start := p.ParseExpression()
	down := false
	if p.match(token.DOWNTO) {
		down = true
	} else {
		p.expect(token.TO)
	}
	end := p.ParseExpression()
	p.expect(token.DO)
	body := p.ParseStatement()
	return &ast.ForStmt{Base: ast.NewBase(pos), Var: v.Text, Start: start, End: end, Down: down, Body: body}
}

func (p *Parser) parseRepeat() ast.Stmt {
	pos := p.cur.Pos
	p.expect(token.REPEAT)
	var stmts []ast.Stmt
	for !p.check(token.UNTIL) && !p.check(token.EOF) {
		stmts = append(stmts, p.ParseStatement())
		if !p.match(token.SEMI) {
			break
		}
	}
	p.expect(token.UNTIL)
	cond := p.ParseExpression()
	return &ast.RepeatStmt{Base: ast.NewBase(pos), Stmts: stmts, Cond: cond}
}

// parseCaseValues parses a comma-separated list of case-branch values; each
// may be a single value or an a..b range.
func (p *Parser) parseCaseValues() []ast.Expr {
	var vals []ast.Expr
	vals = append(vals, p.parseSetElement())
	for p.match(token.COMMA) {
		vals = append(vals, p.parseSetElement())
	}
	return vals
}

func (p *Parser) parseCase() ast.Stmt {
	pos := p.cur.Pos
	p.expect(token.CASE)
	expr := p.ParseExpression()
	p.expect(token.OF)

	var branches []ast.CaseBranch
	var elseStmts []ast.Stmt
	for !p.check(token.END) && !p.check(token.EOF) {
		if p.match(token.ELSE) {
			for !p.check(token.END) && !p.check(token.EOF) {
				elseStmts = append(elseStmts, p.ParseStatement())
				if !p.match(token.SEMI) {
					break
				}
			}
			break
		}
		values := p.parseCaseValues()
		p.expect(token.COLON)
		body := p.ParseStatement()
		branches = append(branches, ast.CaseBranch{Values: values, Body: body})
		if !p.match(token.SEMI) && !p.check(token.ELSE) {
			break
		}
	}
	p.expect(token.END)
	return &ast.CaseStmt{Base: ast.NewBase(pos), Expr: expr, Branches: branches, ElseStmts: elseStmts}
}

func (p *Parser) parseWith() ast.Stmt {
	pos := p.cur.Pos
	p.expect(token.WITH)
	targets := []ast.Expr{p.ParseExpression()}
	for p.match(token.COMMA) {
		targets = append(targets, p.ParseExpression())
	}
	p.expect(token.DO)
	body := p.ParseStatement()
	return &ast.WithStmt{Base: ast.NewBase(pos), Targets: targets, Body: body}
}
