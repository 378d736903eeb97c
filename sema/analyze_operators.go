package sema

import "github.com/pascalc/pascalc/ast"

// checkBinaryOp applies spec.md §4.3's binary type-checking rules and
// returns the result DataType. Unknown operands (already reported
// elsewhere) don't trigger a cascade of further errors.
func (a *Analyzer) checkBinaryOp(e ast.Node, op ast.BinaryOp, lt, rt DataType) DataType {
	if lt == Unknown || rt == Unknown {
		return Unknown
	}
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul:
		if lt == String && rt == String && op == ast.OpAdd {
			return String
		}
		if lt == Custom && rt == Custom {
			// Set union/difference/intersection per spec.md §4.4.
			return Custom
		}
		if !lt.IsNumeric() || !rt.IsNumeric() {
			a.addError(ErrTypeMismatch, e, "%s requires numeric operands, got %s and %s", binOpText(op), lt, rt)
			return Unknown
		}
		if lt == Real || rt == Real {
			return Real
		}
		return Integer

	case ast.OpDiv:
		if !lt.IsNumeric() || !rt.IsNumeric() {
			a.addError(ErrTypeMismatch, e, "/ requires numeric operands, got %s and %s", lt, rt)
			return Unknown
		}
		return Real

	case ast.OpIntDiv, ast.OpMod:
		if lt != Integer || rt != Integer {
			a.addError(ErrTypeMismatch, e, "%s requires integer operands, got %s and %s", binOpText(op), lt, rt)
			return Unknown
		}
		return Integer

	case ast.OpAnd, ast.OpOr, ast.OpXor:
		if lt != Boolean || rt != Boolean {
			a.addError(ErrTypeMismatch, e, "%s requires boolean operands, got %s and %s", binOpText(op), lt, rt)
			return Unknown
		}
		return Boolean

	case ast.OpEq, ast.OpNeq:
		return Boolean

	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if !lt.IsNumeric() && lt != Char && lt != String {
			a.addError(ErrTypeMismatch, e, "%s requires comparable operands, got %s and %s", binOpText(op), lt, rt)
		}
		return Boolean

	case ast.OpIn:
		if rt != Custom {
			a.addError(ErrTypeMismatch, e, "'in' requires a set operand on the right, got %s", rt)
		}
		return Boolean

	case ast.OpShl, ast.OpShr:
		if lt != Integer || rt != Integer {
			a.addError(ErrTypeMismatch, e, "%s requires integer operands, got %s and %s", binOpText(op), lt, rt)
			return Unknown
		}
		return Integer

	default:
		return Unknown
	}
}

func binOpText(op ast.BinaryOp) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	case ast.OpIntDiv:
		return "div"
	case ast.OpMod:
		return "mod"
	case ast.OpAnd:
		return "and"
	case ast.OpOr:
		return "or"
	case ast.OpXor:
		return "xor"
	case ast.OpEq:
		return "="
	case ast.OpNeq:
		return "<>"
	case ast.OpLt:
		return "<"
	case ast.OpLe:
		return "<="
	case ast.OpGt:
		return ">"
	case ast.OpGe:
		return ">="
	case ast.OpIn:
		return "in"
	case ast.OpShl:
		return "shl"
	case ast.OpShr:
		return "shr"
	default:
		return "?"
	}
}

// assignable reports whether a value of type src may be assigned to a
// target of type dst, per spec.md §4.3's assignment rules: integer widens
// to real, char promotes to a one-character string (the promotion itself
// is the emitter's job; here it's merely accepted), real narrowing to
// integer is rejected.
func assignable(dst, src DataType) bool {
	if dst == src {
		return true
	}
	if dst == Unknown || src == Unknown {
		return true
	}
	switch {
	case dst == Real && src == Integer:
		return true
	case dst == Integer && src == Real:
		return false
	case dst == String && src == Char:
		return true
	case dst == Custom || src == Custom:
		// Custom-to-custom compatibility (same named type, enum-to-array
		// element, etc.) is resolved by name elsewhere; the coarse
		// DataType check can't distinguish two different custom types, so
		// it defers rather than false-reject.
		return true
	default:
		return false
	}
}
