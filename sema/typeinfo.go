package sema

// TypeShape distinguishes the textual type-definition shapes spec.md §4.2
// recognizes: enumeration, subrange, set, bounded string, array, file,
// pointer, record, or a plain alias to another named type.
type TypeShape int

const (
	ShapeAlias TypeShape = iota
	ShapeEnum
	ShapeRange
	ShapeSet
	ShapeBoundedString
	ShapeArray
	ShapeFile
	ShapePointer
	ShapeRecord
)

// ArrayDim is one dimension of an array type: an inclusive subrange
// [Low, High] plus the ordinal count it holds. ElemCount is High-Low+1 per
// spec.md §4.4's subrange-array lowering rule.
type ArrayDim struct {
	Low, High int
	ElemCount int
}

// RecordField is one flattened field of a record (fixed fields plus every
// variant case's fields, per spec.md §4.4 — no discriminant enforcement).
type RecordField struct {
	Name string
	Type DataType
	// TypeName is the field's declared type name, used to recurse into
	// nested record/array/enum field types during emission.
	TypeName string
}

// TypeInfo is the analyzer's resolved view of a user-defined type: its base
// DataType for type-checking purposes plus shape-specific metadata the
// emitter needs to lower it correctly.
type TypeInfo struct {
	Name string
	Base DataType
	Shape TypeShape

	// ShapeEnum
	EnumNames []string // ordinal i has name EnumNames[i]

	// ShapeRange
	RangeLow, RangeHigh int
	RangeIsChar         bool

	// ShapeSet
	SetElemTypeName string

	// ShapeBoundedString
	StringBound int

	// ShapeArray
	Dims        []ArrayDim
	ElemTypeName string

	// ShapeFile
	FileElemTypeName string // "" for untyped file/text

	// ShapePointer
	PointeeTypeName string

	// ShapeRecord
	Fields []RecordField

	// AliasTarget is set when Shape == ShapeAlias: the name this type
	// simply renames.
	AliasTarget string
}

// FieldType looks up a record field's DataType by name, walking nothing
// beyond this record (with-statement resolution flattens one level at a
// time per spec.md §4.3).
func (t *TypeInfo) FieldType(name string) (RecordField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return RecordField{}, false
}
