package sema

import (
	"strconv"
	"strings"
)

// builtinTypeNames maps a lower-cased builtin type keyword to its DataType,
// per spec.md §4.3's type-resolution rule ("a type string is first tried
// against the built-in set, case-folded").
var builtinTypeNames = map[string]DataType{
	"integer": Integer, "real": Real, "boolean": Boolean, "char": Char,
	"byte": Byte, "string": String, "text": FileType, "file": FileType,
}

// lookupType returns the registered TypeInfo for name (case-insensitively),
// or nil if name isn't a known user-defined type.
func (a *Analyzer) lookupType(name string) *TypeInfo {
	if name == "" {
		return nil
	}
	return a.types[key(name)]
}

func (a *Analyzer) registerType(info *TypeInfo) {
	a.types[key(info.Name)] = info
}

// resolveNamedType resolves raw exactly like resolveTypeText, but for a
// `type Name = raw` declaration: the resulting TypeInfo (if any) is
// registered under the declared Name rather than the raw text, so later
// references by Name find it.
func (a *Analyzer) resolveNamedType(name, raw string) (DataType, string) {
	dt, regKey := a.resolveTypeText(raw)
	if regKey == "" {
		// Builtin or unresolved — register a plain alias under name so
		// `lookupType(name)` still finds something with the right Base.
		a.registerType(&TypeInfo{Name: name, Base: dt, Shape: ShapeAlias, AliasTarget: raw})
		return dt, name
	}
	if info := a.types[key(regKey)]; info != nil {
		info.Name = name
		delete(a.types, key(regKey))
		a.registerType(info)
	}
	return dt, name
}

// resolveTypeText resolves a raw type-definition string (as reconstructed
// by the parser's parseTypeTextRaw) to a DataType plus, for a
// shape-bearing or user-defined type, the name under which its TypeInfo is
// registered in a.types (synthesizing an anonymous registration for inline
// shapes like "array[1..10] of Integer" that never got their own `type`
// declaration).
func (a *Analyzer) resolveTypeText(raw string) (DataType, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unknown, ""
	}
	if dt, ok := builtinTypeNames[strings.ToLower(raw)]; ok {
		return dt, ""
	}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Unknown, ""
	}

	switch {
	case strings.EqualFold(fields[0], "string") && len(fields) > 1 && fields[1] == "[":
		bound, _ := strconv.Atoi(fields[2])
		info := &TypeInfo{Name: raw, Base: String, Shape: ShapeBoundedString, StringBound: bound}
		a.registerType(info)
		return String, raw

	case fields[0] == "^":
		pointee := strings.Join(fields[1:], " ")
		info := &TypeInfo{Name: raw, Base: Pointer, Shape: ShapePointer, PointeeTypeName: pointee}
		a.registerType(info)
		return Pointer, raw

	case strings.EqualFold(fields[0], "set") && len(fields) > 2 && strings.EqualFold(fields[1], "of"):
		elem := strings.Join(fields[2:], " ")
		info := &TypeInfo{Name: raw, Base: Custom, Shape: ShapeSet, SetElemTypeName: elem}
		a.registerType(info)
		return Custom, raw

	case strings.EqualFold(fields[0], "file") && len(fields) > 2 && strings.EqualFold(fields[1], "of"):
		elem := strings.Join(fields[2:], " ")
		info := &TypeInfo{Name: raw, Base: FileType, Shape: ShapeFile, FileElemTypeName: elem}
		a.registerType(info)
		return FileType, raw

	case strings.EqualFold(fields[0], "array"):
		return a.resolveArrayText(raw, fields)

	case fields[0] == "(":
		return a.resolveEnumText(raw, fields)

	case len(fields) == 3 && fields[1] == "..":
		return a.resolveRangeText(raw, fields)
	}

	// Plain alias: consult the current type registry, falling back to
	// Unknown for a forward reference the caller may choose to tolerate.
	if info := a.lookupType(raw); info != nil {
		return info.Base, raw
	}
	return Unknown, raw
}

func (a *Analyzer) resolveEnumText(raw string, fields []string) (DataType, string) {
	var names []string
	for _, f := range fields[1:] {
		if f == ")" {
			break
		}
		if f == "," {
			continue
		}
		names = append(names, f)
	}
	info := &TypeInfo{Name: raw, Base: Custom, Shape: ShapeEnum, EnumNames: names}
	a.registerType(info)
	return Custom, raw
}

func (a *Analyzer) resolveRangeText(raw string, fields []string) (DataType, string) {
	low, lowErr := strconv.Atoi(fields[0])
	high, highErr := strconv.Atoi(fields[2])
	isChar := lowErr != nil || highErr != nil
	if isChar {
		low = ordinalOfCharLiteral(fields[0])
		high = ordinalOfCharLiteral(fields[2])
	}
	info := &TypeInfo{Name: raw, Base: Custom, Shape: ShapeRange, RangeLow: low, RangeHigh: high, RangeIsChar: isChar}
	a.registerType(info)
	return Custom, raw
}

// ordinalOfCharLiteral extracts the ordinal of a char literal, either
// quoted like 'a' (including the quoted-quote case '''') or an ordinal
// escape like #65, returning 0 if the text isn't recognized as one (the
// caller has already excluded the pure-integer case). Slicing rather than
// strings.Trim matters here: trimming the quote cutset off "'''" (the
// literal for a single apostrophe) would strip the whole string instead of
// leaving the apostrophe itself.
func ordinalOfCharLiteral(text string) int {
	if strings.HasPrefix(text, "#") {
		n, err := strconv.Atoi(text[1:])
		if err != nil {
			return 0
		}
		return n
	}
	if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		return int(text[1])
	}
	return 0
}

// ordinalRangeOfTypeName resolves an identifier used as an array dimension
// bound (e.g. `array[TColor] of Integer`) to the [low, high] ordinal
// extent a value of that type can take: an enum's position range, a
// declared subrange's bounds, or one of the ordinal builtins.
func (a *Analyzer) ordinalRangeOfTypeName(name string) (int, int) {
	switch strings.ToLower(name) {
	case "boolean":
		return 0, 1
	case "char", "byte":
		return 0, 255
	}
	if info := a.lookupType(name); info != nil {
		switch info.Shape {
		case ShapeEnum:
			return 0, len(info.EnumNames) - 1
		case ShapeRange:
			return info.RangeLow, info.RangeHigh
		}
	}
	return 0, 0
}

// resolveArrayText parses `array [ dim {, dim} ] of Elem`, where each dim
// is either `L .. U` (numeric or character bounds) or a bare ordinal type
// name (an enum, a declared subrange, or Boolean/Char) whose own extent
// becomes the dimension's bounds.
func (a *Analyzer) resolveArrayText(raw string, fields []string) (DataType, string) {
	// fields[0] == "array", fields[1] == "["
	i := 2
	var dims []ArrayDim
	for i < len(fields) && fields[i] != "]" {
		var low, high int
		if i+2 < len(fields) && fields[i+1] == ".." {
			lowTok, highTok := fields[i], fields[i+2]
			var lowErr, highErr error
			low, lowErr = strconv.Atoi(lowTok)
			high, highErr = strconv.Atoi(highTok)
			if lowErr != nil || highErr != nil {
				low = ordinalOfCharLiteral(lowTok)
				high = ordinalOfCharLiteral(highTok)
			}
			i += 3
		} else {
			low, high = a.ordinalRangeOfTypeName(fields[i])
			i++
		}
		dims = append(dims, ArrayDim{Low: low, High: high, ElemCount: high - low + 1})
		if i < len(fields) && fields[i] == "," {
			i++
		}
	}
	// Skip past "]" "of"
	for i < len(fields) && fields[i] != "of" {
		i++
	}
	elem := ""
	if i < len(fields) {
		elem = strings.Join(fields[i+1:], " ")
	}
	info := &TypeInfo{Name: raw, Base: Custom, Shape: ShapeArray, Dims: dims, ElemTypeName: elem}
	a.registerType(info)
	return Custom, raw
}
