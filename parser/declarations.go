package parser

import (
	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/token"
)

// ParseProgram parses a complete top-level compilation unit: either a
// `program` or a `unit`.
func (p *Parser) ParseProgram() ast.Decl {
	if p.check(token.UNIT) {
		return p.parseUnit()
	}
	return p.parseProgramDecl()
}

// parseProgramDecl parses `program name; [uses list;] {decl}* main-compound .`
func (p *Parser) parseProgramDecl() *ast.ProgramDecl {
	pos := p.cur.Pos
	p.expect(token.PROGRAM)
	name := p.expect(token.IDENT).Text
	p.expect(token.SEMI)

	var uses *ast.UsesDecl
	if p.check(token.USES) {
		uses = p.parseUsesClause()
		p.expect(token.SEMI)
	}

	decls := p.parseDeclSections()
	main := p.ParseCompound()
	p.expect(token.DOT)

	return &ast.ProgramDecl{Base: ast.NewBase(pos), Name: name, Uses: uses, Decls: decls, Main: main}
}

// parseUnit parses `unit name; interface [uses;] {idecl}* implementation
// {ddecl}* [begin init-stmts] end.` The interface/implementation split is
// threaded through inInterface so procedure/function bodies are only parsed
// in implementation context (spec.md §4.2).
func (p *Parser) parseUnit() *ast.UnitDecl {
	pos := p.cur.Pos
	p.expect(token.UNIT)
	name := p.expect(token.IDENT).Text
	p.expect(token.SEMI)

	p.expect(token.INTERFACE)
	var ifaceUses *ast.UsesDecl
	if p.check(token.USES) {
		ifaceUses = p.parseUsesClause()
		p.expect(token.SEMI)
	}
	p.inInterface = true
	ifaceDecls := p.parseDeclSections()
	p.inInterface = false

	p.expect(token.IMPLEMENTATION)
	var implUses *ast.UsesDecl
	if p.check(token.USES) {
		implUses = p.parseUsesClause()
		p.expect(token.SEMI)
	}
	implDecls := p.parseDeclSections()

	var initStmts []ast.Stmt
	if p.match(token.BEGIN) {
		initStmts = p.parseStmtListUntil(token.END)
	}
	p.expect(token.END)
	p.expect(token.DOT)

	return &ast.UnitDecl{
		Base: ast.NewBase(pos), Name: name,
		InterfaceUses: ifaceUses, InterfaceDecls: ifaceDecls,
		ImplementationUses: implUses, ImplementationDecls: implDecls,
		InitStmts: initStmts,
	}
}

// parseStmtListUntil parses statements separated by `;` until the current
// token is stop or EOF. Used by compound statements, repeat-bodies,
// case-else-bodies, and a unit's initialization block.
func (p *Parser) parseStmtListUntil(stop token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(stop) && !p.check(token.EOF) {
		stmts = append(stmts, p.ParseStatement())
		if !p.match(token.SEMI) {
			break
		}
	}
	return stmts
}

func (p *Parser) parseUsesClause() *ast.UsesDecl {
	pos := p.cur.Pos
	p.expect(token.USES)
	names := []string{p.expect(token.IDENT).Text}
	for p.match(token.COMMA) {
		names = append(names, p.expect(token.IDENT).Text)
	}
	return &ast.UsesDecl{Base: ast.NewBase(pos), Names: names}
}

// parseDeclSections parses a sequence of const/type/var/label/procedure/
// function sections, stopping at `begin`, `end` (unit implementation end),
// or EOF.
func (p *Parser) parseDeclSections() []ast.Decl {
	var decls []ast.Decl
	for {
		switch p.cur.Kind {
		case token.CONST:
			decls = append(decls, p.parseConstSection()...)
		case token.TYPE:
			decls = append(decls, p.parseTypeSection()...)
		case token.VAR:
			decls = append(decls, p.parseVarSection()...)
		case token.LABEL:
			decls = append(decls, p.parseLabelSection())
		case token.PROCEDURE:
			decls = append(decls, p.parseProcDecl())
		case token.FUNCTION:
			decls = append(decls, p.parseFuncDecl())
		default:
			return decls
		}
	}
}

func (p *Parser) parseConstSection() []ast.Decl {
	p.expect(token.CONST)
	var decls []ast.Decl
	for p.check(token.IDENT) {
		pos := p.cur.Pos
		name := p.expect(token.IDENT).Text
		typ := ""
		if p.match(token.COLON) {
			typ = p.parseTypeTextRawStop(token.EQ)
		}
		p.expect(token.EQ)
		value := p.ParseExpression()
		p.expect(token.SEMI)
		decls = append(decls, &ast.ConstDecl{Base: ast.NewBase(pos), Name: name, Type: typ, Value: value})
	}
	return decls
}

func (p *Parser) parseTypeSection() []ast.Decl {
	p.expect(token.TYPE)
	var decls []ast.Decl
	for p.check(token.IDENT) {
		pos := p.cur.Pos
		name := p.expect(token.IDENT).Text
		p.expect(token.EQ)

		p.match(token.PACKED) // packed is a layout hint; no structural effect here

		var rec *ast.RecordType
		var typeText string
		if p.check(token.RECORD) {
			rec = p.parseRecordType()
		} else {
			typeText = p.parseTypeTextRawStop(token.SEMI)
		}
		p.expect(token.SEMI)
		decls = append(decls, &ast.TypeDecl{Base: ast.NewBase(pos), Name: name, TypeText: typeText, Record: rec})
	}
	return decls
}

func (p *Parser) parseVarSection() []ast.Decl {
	p.expect(token.VAR)
	var decls []ast.Decl
	for p.check(token.IDENT) {
		pos := p.cur.Pos
		names := []string{p.expect(token.IDENT).Text}
		for p.match(token.COMMA) {
			names = append(names, p.expect(token.IDENT).Text)
		}
		p.expect(token.COLON)
		typ := p.parseTypeTextRawStop(token.SEMI)
		p.expect(token.SEMI)
		decls = append(decls, &ast.VarDecl{Base: ast.NewBase(pos), Names: names, Type: typ, Mode: ast.ByValue})
	}
	return decls
}

func (p *Parser) parseLabelSection() ast.Decl {
	pos := p.cur.Pos
	p.expect(token.LABEL)
	names := []string{p.parseLabelName()}
	for p.match(token.COMMA) {
		names = append(names, p.parseLabelName())
	}
	p.expect(token.SEMI)
	return &ast.LabelDecl{Base: ast.NewBase(pos), Names: names}
}

func (p *Parser) parseLabelName() string {
	if p.check(token.INT) {
		t := p.cur.Text
		p.advance()
		return t
	}
	return p.expect(token.IDENT).Text
}

// parseParamList parses `(group; group; ...)` where each group is a mode
// prefix (bare/var/const) plus one or more comma-separated names sharing a
// type annotation.
func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LPAREN)
	var params []ast.Param
	if !p.check(token.RPAREN) {
		params = append(params, p.parseParamGroup())
		for p.match(token.SEMI) {
			params = append(params, p.parseParamGroup())
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParamGroup() ast.Param {
	mode := ast.ByValue
	switch {
	case p.match(token.VAR):
		mode = ast.ByRef
	case p.match(token.CONST):
		mode = ast.ByConstRef
	}
	names := []string{p.expect(token.IDENT).Text}
	for p.match(token.COMMA) {
		names = append(names, p.expect(token.IDENT).Text)
	}
	p.expect(token.COLON)
	typ := p.parseTypeTextRawStop(token.SEMI, token.RPAREN)
	return ast.Param{Names: names, Type: typ, Mode: mode}
}

func (p *Parser) parseProcDecl() *ast.ProcDecl {
	pos := p.cur.Pos
	p.expect(token.PROCEDURE)
	name := p.expect(token.IDENT).Text
	var params []ast.Param
	if p.check(token.LPAREN) {
		params = p.parseParamList()
	}
	p.expect(token.SEMI)

	forward := false
	var decls []ast.Decl
	var body *ast.CompoundStmt
	switch {
	case p.check(token.FORWARD) || p.check(token.EXTERNAL):
		p.advance()
		p.expect(token.SEMI)
		forward = true
	case p.inInterface:
		forward = true
	default:
		decls = p.parseDeclSections()
		body = p.ParseCompound()
		p.expect(token.SEMI)
	}

	return &ast.ProcDecl{Base: ast.NewBase(pos), Name: name, Params: params, Decls: decls, Body: body, Forward: forward}
}

func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	pos := p.cur.Pos
	p.expect(token.FUNCTION)
	name := p.expect(token.IDENT).Text
	var params []ast.Param
	if p.check(token.LPAREN) {
		params = p.parseParamList()
	}
	p.expect(token.COLON)
	returnType := p.parseTypeTextRawStop(token.SEMI)
	p.expect(token.SEMI)

	forward := false
	var decls []ast.Decl
	var body *ast.CompoundStmt
	switch {
	case p.check(token.FORWARD) || p.check(token.EXTERNAL):
		p.advance()
		p.expect(token.SEMI)
		forward = true
	case p.inInterface:
		forward = true
	default:
		decls = p.parseDeclSections()
		body = p.ParseCompound()
		p.expect(token.SEMI)
	}

	return &ast.FuncDecl{Base: ast.NewBase(pos), Name: name, Params: params, ReturnType: returnType, Decls: decls, Body: body, Forward: forward}
}
