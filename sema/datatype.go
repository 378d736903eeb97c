// Package sema implements the symbol table and semantic analyzer: scope
// management, type resolution, overload discrimination, and the
// type-checking rules for operators, assignment, and control flow.
package sema

// DataType is the closed set of types the analyzer reasons about. Custom
// covers every user-defined type (record, array, enum, set, alias); the
// analyzer distinguishes those through the corresponding *TypeInfo rather
// than additional DataType variants.
type DataType int

const (
	Unknown DataType = iota
	Integer
	Real
	Boolean
	Char
	Byte
	String
	Void
	Custom
	Pointer
	FileType
)

func (d DataType) String() string {
	switch d {
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case Boolean:
		return "Boolean"
	case Char:
		return "Char"
	case Byte:
		return "Byte"
	case String:
		return "String"
	case Void:
		return "Void"
	case Custom:
		return "Custom"
	case Pointer:
		return "Pointer"
	case FileType:
		return "File"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether d participates in arithmetic (+ - * / div mod).
func (d DataType) IsNumeric() bool { return d == Integer || d == Real || d == Byte }

// IsOrdinal reports whether d is one of the built-in ordinal DataTypes
// (integer, char, byte). Enum types are Custom and are not covered here;
// the for-loop, case and index checks accept any Custom type alongside it
// without testing whether it names an enum.
func (d DataType) IsOrdinal() bool { return d == Integer || d == Char || d == Byte }
