package sema

import (
	"fmt"

	"github.com/pascalc/pascalc/internal/errors"
	"github.com/pascalc/pascalc/token"
)

// ErrorKind classifies a semantic diagnostic for callers that want to
// filter or count by category. It is dropped when a SemanticError is
// converted to a CompilerError, so the CLI's diagnostics do not carry it.
type ErrorKind string

const (
	ErrTypeMismatch      ErrorKind = "type_mismatch"
	ErrUndefined         ErrorKind = "undefined_symbol"
	ErrUndefinedType     ErrorKind = "undefined_type"
	ErrRedeclaration     ErrorKind = "redeclaration"
	ErrInvalidOperation  ErrorKind = "invalid_operation"
	ErrInvalidAssignment ErrorKind = "invalid_assignment"
	ErrControlFlow       ErrorKind = "control_flow"
	ErrArgumentCount     ErrorKind = "argument_count"
	ErrForwardDecl       ErrorKind = "forward_declaration"
	ErrDuplicateField    ErrorKind = "duplicate_field"
)

// SemanticError is one structured analyzer diagnostic. Errors are
// accumulated rather than thrown (spec.md §4.3): analysis keeps going
// after recording one so a single run can surface every problem.
type SemanticError struct {
	Kind    ErrorKind
	Message string
	Pos     token.Position
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s at line %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

// ToCompilerError converts a SemanticError into the unified diagnostic type
// the CLI renders, exactly as the lexer/parser error lists are converted at
// the same boundary.
func (e *SemanticError) ToCompilerError(source, file string) *errors.CompilerError {
	return errors.NewCompilerError(e.Pos, e.Message, source, file)
}
