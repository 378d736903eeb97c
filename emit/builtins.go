package emit

import (
	"fmt"
	"strings"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/sema"
)

// simpleBuiltinCpp maps a built-in Pascal name to the pascalrt:: (or
// standard library) call it lowers to when argument order and count pass
// through unchanged.
var simpleBuiltinCpp = map[string]string{
	"length":     "Length",
	"pos":        "Pos",
	"copy":       "Copy",
	"delete":     "Delete",
	"insert":     "Insert",
	"uppercase":  "UpperCase",
	"lowercase":  "LowerCase",
	"trim":       "Trim",
	"chr":        "Chr",
	"ord":        "Ord",
	"inttostr":   "IntToStr",
	"floattostr": "FloatToStr",
	"strtoint":   "StrToInt",
	"strtofloat": "StrToFloat",
	"abs":        "std::abs",
	"sqrt":       "std::sqrt",
	"sin":        "std::sin",
	"cos":        "std::cos",
	"arctan":     "std::atan",
	"ln":         "std::log",
	"exp":        "std::exp",
}

// emitBuiltinCallExpr renders a value-returning built-in call, used from
// expression position (VisitCallExpr). name is already lowered.
func (e *Emitter) emitBuiltinCallExpr(name string, args []ast.Expr) string {
	switch name {
	case "sqr":
		v := e.exprText(args[0])
		return fmt.Sprintf("((%s) * (%s))", v, v)
	case "round":
		return fmt.Sprintf("static_cast<int>(std::lround(%s))", e.exprText(args[0]))
	case "trunc":
		return fmt.Sprintf("static_cast<int>(%s)", e.exprText(args[0]))
	case "concat":
		return e.joinOperands(args, "+")
	case "eof":
		return fmt.Sprintf("%s.Eof()", e.exprText(args[0]))
	case "filepos":
		return fmt.Sprintf("%s.FilePos()", e.exprText(args[0]))
	case "filesize":
		return fmt.Sprintf("%s.FileSize()", e.exprText(args[0]))
	case "ioresult":
		return "0"
	case "random":
		if len(args) == 0 {
			return "(static_cast<double>(std::rand()) / static_cast<double>(RAND_MAX))"
		}
		return fmt.Sprintf("(std::rand() %% (%s))", e.exprText(args[0]))
	case "paramcount":
		return "(__argc - 1)"
	case "paramstr":
		return fmt.Sprintf("PString(__argv[%s])", e.exprText(args[0]))
	}
	if cpp, ok := simpleBuiltinCpp[name]; ok {
		return fmt.Sprintf("%s(%s)", cpp, e.joinArgs(args))
	}
	return fmt.Sprintf("%s(%s)", name, e.joinArgs(args))
}

// emitBuiltinStmt renders a side-effecting built-in call used from
// statement position, returning false when name isn't one of those (the
// caller then falls back to emitting it as a plain expression statement).
func (e *Emitter) emitBuiltinStmt(name string, args []ast.Expr) bool {
	switch name {
	case "write":
		e.emitWrite(args, false)
	case "writeln":
		e.emitWrite(args, true)
	case "inc":
		e.emitIncDec(args, "+")
	case "dec":
		e.emitIncDec(args, "-")
	case "new":
		e.emitNew(args[0])
	case "dispose":
		ptr := e.exprText(args[0])
		e.writef("delete %s;", ptr)
		e.writef("%s = nullptr;", ptr)
	case "assign":
		e.writef("%s.Assign(%s);", e.exprText(args[0]), e.exprText(args[1]))
	case "reset":
		e.writef("%s.Reset();", e.exprText(args[0]))
	case "rewrite":
		e.writef("%s.Rewrite();", e.exprText(args[0]))
	case "append":
		e.writef("%s.Append();", e.exprText(args[0]))
	case "close":
		e.writef("%s.Close();", e.exprText(args[0]))
	case "blockread":
		e.writef("%s.BlockRead(&%s, %s);", e.exprText(args[0]), e.exprText(args[1]), e.exprText(args[2]))
	case "blockwrite":
		e.writef("%s.BlockWrite(&%s, %s);", e.exprText(args[0]), e.exprText(args[1]), e.exprText(args[2]))
	case "seek":
		e.writef("%s.Seek(%s);", e.exprText(args[0]), e.exprText(args[1]))
	case "halt":
		if len(args) > 0 {
			e.writef("std::exit(%s);", e.exprText(args[0]))
		} else {
			e.writeLine("std::exit(0);")
		}
	case "exit":
		e.writeLine("return;")
	case "randomize":
		e.writeLine("std::srand(static_cast<unsigned>(std::time(nullptr)));")
	case "str":
		e.writef("%s = IntToStr(%s);", e.exprText(args[1]), e.exprText(args[0]))
	case "val":
		e.writef("%s = StrToInt(%s);", e.exprText(args[1]), e.exprText(args[0]))
	default:
		return false
	}
	return true
}

// emitWrite lowers a write/writeln argument list, honoring each argument's
// optional `:width[:precision]` format spec (spec.md §4.3).
func (e *Emitter) emitWrite(args []ast.Expr, newline bool) {
	for _, a := range args {
		if f, ok := a.(*ast.FormattedExpr); ok {
			switch {
			case f.Precision != nil:
				e.writef("Write(std::cout, %s, %s, %s);", e.exprText(f.Value), e.exprText(f.Width), e.exprText(f.Precision))
			case f.Width != nil:
				e.writef("Write(std::cout, %s, %s);", e.exprText(f.Value), e.exprText(f.Width))
			default:
				e.writef("Write(std::cout, %s);", e.exprText(f.Value))
			}
			continue
		}
		e.writef("Write(std::cout, %s);", e.exprText(a))
	}
	if newline {
		e.writeLine("WriteLn(std::cout);")
	}
}

func (e *Emitter) emitIncDec(args []ast.Expr, sign string) {
	target := e.exprText(args[0])
	if len(args) > 1 {
		e.writef("%s %s= %s;", target, sign, e.exprText(args[1]))
		return
	}
	if sign == "+" {
		e.writef("++%s;", target)
	} else {
		e.writef("--%s;", target)
	}
}

// emitNew lowers `new(p)` to a heap allocation of p's pointee type.
func (e *Emitter) emitNew(target ast.Expr) {
	e.writef("%s = new %s{};", e.exprText(target), e.pointeeCppType(target))
}

func (e *Emitter) pointeeCppType(expr ast.Expr) string {
	_, typeName := e.analyzer.NamedTypeOf(expr)
	info := e.analyzer.LookupType(typeName)
	if info != nil && info.Shape == sema.ShapePointer {
		return e.cppTypeRef(info.PointeeTypeName)
	}
	return "int"
}

func (e *Emitter) joinArgs(args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.exprText(a)
	}
	return strings.Join(parts, ", ")
}

func (e *Emitter) joinOperands(args []ast.Expr, op string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = "(" + e.exprText(a) + ")"
	}
	return strings.Join(parts, " "+op+" ")
}
