package emit

import (
	"fmt"
	"strings"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/sema"
)

func (e *Emitter) VisitLiteral(n *ast.Literal) any {
	switch n.Kind {
	case ast.StringLit:
		return fmt.Sprintf("PString(%q)", n.Text)
	case ast.CharLit:
		return fmt.Sprintf("%q", rune(sema.CharLiteralOrdinal(n.Text)))
	case ast.BoolLit:
		if strings.EqualFold(n.Text, "true") {
			return "true"
		}
		return "false"
	case ast.NilLit:
		return "nullptr"
	default: // IntLit, RealLit
		return n.Text
	}
}

// VisitIdent renders a bare name reference, rewriting it through the
// active with-alias or the enclosing function's __result local when
// either applies.
func (e *Emitter) VisitIdent(n *ast.Ident) any {
	if e.isReturnName(n.Name) {
		return "__result"
	}
	if n.WithQualifier != "" {
		if alias, ok := e.withAlias[strings.ToLower(n.WithQualifier)]; ok {
			return alias + "." + n.Name
		}
	}
	sym, _, ok := e.analyzer.Symbols.Resolve(n.Name)
	if ok && sym.IsCallable() {
		// A parameterless function referenced by bare name (no call
		// parens in the source) still invokes it, except for the
		// self-reference case handled above.
		return e.calleeCppName(n.Name) + "()"
	}
	return n.Name
}

var binOpCpp = map[ast.BinaryOp]string{
	ast.OpAdd: "+", ast.OpSub: "-", ast.OpMul: "*",
	ast.OpEq: "==", ast.OpNeq: "!=", ast.OpLt: "<", ast.OpLe: "<=",
	ast.OpGt: ">", ast.OpGe: ">=", ast.OpShl: "<<", ast.OpShr: ">>",
}

// VisitBinaryExpr lowers one of spec.md §4.2's binary operators. Arithmetic,
// comparison, and set operators map onto C++ operators the runtime types
// (PString, PSet) already overload; div/mod/real-division route through
// the runtime's type-erasing helpers since C++'s own `/` and `%` don't
// match Pascal's integer/real split.
func (e *Emitter) VisitBinaryExpr(n *ast.BinaryExpr) any {
	l, r := e.exprText(n.Left), e.exprText(n.Right)
	switch n.Op {
	case ast.OpDiv:
		return fmt.Sprintf("RealDiv(%s, %s)", l, r)
	case ast.OpIntDiv:
		return fmt.Sprintf("IntDiv(%s, %s)", l, r)
	case ast.OpMod:
		return fmt.Sprintf("IntMod(%s, %s)", l, r)
	case ast.OpIn:
		return fmt.Sprintf("(%s).Contains(static_cast<int>(%s))", r, l)
	case ast.OpAnd:
		return e.boolOrBitwise(n.Left, l, r, "&&", "&")
	case ast.OpOr:
		return e.boolOrBitwise(n.Left, l, r, "||", "|")
	case ast.OpXor:
		return e.boolOrBitwise(n.Left, l, r, "!=", "^")
	}
	if cpp, ok := binOpCpp[n.Op]; ok {
		return fmt.Sprintf("(%s %s %s)", l, cpp, r)
	}
	return fmt.Sprintf("(%s /*?%d?*/ %s)", l, n.Op, r)
}

func (e *Emitter) boolOrBitwise(left ast.Expr, l, r, logicalOp, bitwiseOp string) string {
	if e.analyzer.ExprType(left) == sema.Boolean {
		return fmt.Sprintf("(%s %s %s)", l, logicalOp, r)
	}
	return fmt.Sprintf("(%s %s %s)", l, bitwiseOp, r)
}

func (e *Emitter) VisitUnaryExpr(n *ast.UnaryExpr) any {
	v := e.exprText(n.Operand)
	switch n.Op {
	case ast.OpNot:
		if e.analyzer.ExprType(n.Operand) == sema.Boolean {
			return fmt.Sprintf("(!%s)", v)
		}
		return fmt.Sprintf("(~%s)", v)
	case ast.OpNeg:
		return fmt.Sprintf("(-%s)", v)
	default: // OpPos
		return fmt.Sprintf("(+%s)", v)
	}
}

func (e *Emitter) VisitAddressOfExpr(n *ast.AddressOfExpr) any {
	return fmt.Sprintf("(&%s)", e.exprText(n.Operand))
}

func (e *Emitter) VisitDerefExpr(n *ast.DerefExpr) any {
	return fmt.Sprintf("(*%s)", e.exprText(n.Operand))
}

// VisitCallExpr dispatches to a built-in lowering or, for a user-defined
// callable, the specific overload matching this call site's argument
// types (spec.md §4.3's overload resolution, replayed here so the right
// mangled name is picked rather than whichever overload Resolve's bare
// lookup happens to return).
func (e *Emitter) VisitCallExpr(n *ast.CallExpr) any {
	if callee, ok := n.Callee.(*ast.Ident); ok {
		lname := strings.ToLower(callee.Name)
		if sema.IsBuiltinName(callee.Name) {
			return e.emitBuiltinCallExpr(lname, n.Args)
		}
		name, params := e.callCppName(callee.Name, n.Args)
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = e.exprText(a)
			// A char argument to a String parameter becomes a one-character PString.
			if i < len(params) && params[i].Type == sema.String && e.analyzer.ExprType(a) == sema.Char {
				if lit, ok := a.(*ast.Literal); ok && lit.Kind == ast.CharLit {
					args[i] = fmt.Sprintf("PString(%q)", string(rune(sema.CharLiteralOrdinal(lit.Text))))
				} else {
					args[i] = fmt.Sprintf("PString(std::string(1, %s))", args[i])
				}
			}
		}
		return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	}
	return fmt.Sprintf("%s(%s)", e.exprText(n.Callee), e.joinArgs(n.Args))
}

func (e *Emitter) callCppName(name string, args []ast.Expr) (string, []sema.ParamInfo) {
	argTypes := make([]sema.DataType, len(args))
	for i, a := range args {
		argTypes[i] = e.analyzer.ExprType(a)
	}
	sym, _, ok := e.analyzer.ResolveCall(name, argTypes)
	if !ok {
		return name, nil
	}
	return mangledName(sym), sym.Params
}

func (e *Emitter) VisitFieldAccessExpr(n *ast.FieldAccessExpr) any {
	return fmt.Sprintf("%s.%s", e.exprText(n.Receiver), n.Field)
}

// VisitIndexExpr lowers array and string indexing uniformly to `.at(...)`,
// since both PArray and PString expose an accessor taking the Pascal index
// (1-based for PString, based at the declared low bound for PArray);
// multi-dimensional indices chain successive .at() calls against the
// nested PArray instantiation cppArrayType produced. An enum-typed index
// is cast to its ordinal first: the dimension is backed by a scoped
// `enum class` (cppArrayType), which .at() can't accept directly.
func (e *Emitter) VisitIndexExpr(n *ast.IndexExpr) any {
	expr := e.exprText(n.Receiver)
	for _, idx := range n.Indices {
		idxText := e.exprText(idx)
		if e.analyzer.ExprType(idx) == sema.Custom {
			idxText = fmt.Sprintf("static_cast<int>(%s)", idxText)
		}
		expr = fmt.Sprintf("%s.at(%s)", expr, idxText)
	}
	return expr
}

func (e *Emitter) VisitSetLiteralExpr(n *ast.SetLiteralExpr) any {
	var parts []string
	for _, el := range n.Elements {
		if rng, ok := el.(*ast.RangeExpr); ok {
			lo, hi := e.exprText(rng.Start), e.exprText(rng.End)
			parts = append(parts, fmt.Sprintf("{static_cast<int>(%s), static_cast<int>(%s)}", lo, hi))
			continue
		}
		v := e.exprText(el)
		parts = append(parts, fmt.Sprintf("{static_cast<int>(%s), static_cast<int>(%s)}", v, v))
	}
	return fmt.Sprintf("MakeSetRanges<256>({%s})", strings.Join(parts, ", "))
}

// VisitRangeExpr only appears directly inside a case-branch value list or
// a set literal, both of which destructure it themselves rather than
// calling exprText; reaching here means a range was used standalone, which
// has no single-value C++ rendering, so the start is emitted as the best
// available approximation.
func (e *Emitter) VisitRangeExpr(n *ast.RangeExpr) any {
	return e.exprText(n.Start)
}

// VisitFormattedExpr only appears directly inside a write/writeln argument
// list, which destructures it before calling exprText; reaching here means
// it was used elsewhere, so only the value itself is rendered.
func (e *Emitter) VisitFormattedExpr(n *ast.FormattedExpr) any {
	return e.exprText(n.Value)
}
