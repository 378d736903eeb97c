package sema

// variadic marks a built-in whose Params list doesn't constrain arity —
// write/writeln/read/readln accept any argument types per spec.md §4.3.
const variadic = -1

// builtinSpec is the minimal shape needed to register one built-in symbol:
// a name and a return type (Void for procedures). Built-ins are looked up
// by lowered name only; the emitter is responsible for arity/kind-specific
// dispatch (spec.md §4.4's "Built-in dispatch").
type builtinSpec struct {
	name       string
	returnType DataType
}

// builtinGroups mirrors spec.md §4.3's enumeration: I/O, string, math,
// conversion, file, memory, system, plus CRT/DOS terminal and filesystem
// calls.
var builtinGroups = [][]builtinSpec{
	{ // I/O — variadic, accept any argument types
		{"writeln", Void}, {"write", Void}, {"readln", Void}, {"read", Void},
	},
	{ // string manipulation
		{"length", Integer}, {"pos", Integer}, {"copy", String}, {"concat", String},
		{"insert", Void}, {"delete", Void}, {"trim", String}, {"trimleft", String},
		{"trimright", String}, {"uppercase", String}, {"lowercase", String},
		{"padleft", String}, {"padright", String},
	},
	{ // math
		{"abs", Real}, {"sqr", Real}, {"sqrt", Real}, {"sin", Real}, {"cos", Real},
		{"arctan", Real}, {"ln", Real}, {"exp", Real}, {"round", Integer}, {"trunc", Integer},
	},
	{ // conversion
		{"chr", Char}, {"ord", Integer}, {"inttostr", String}, {"floattostr", String},
		{"strtoint", Integer}, {"strtofloat", Real}, {"val", Void}, {"str", Void},
	},
	{ // file primitives
		{"assign", Void}, {"reset", Void}, {"rewrite", Void}, {"append", Void},
		{"close", Void}, {"eof", Boolean}, {"ioresult", Integer}, {"blockread", Void},
		{"blockwrite", Void}, {"filepos", Integer}, {"filesize", Integer}, {"seek", Void},
	},
	{ // memory
		{"new", Void}, {"dispose", Void}, {"getmem", Void}, {"freemem", Void},
		{"mark", Void}, {"release", Void},
	},
	{ // system
		{"halt", Void}, {"exit", Void}, {"random", Real}, {"randomize", Void},
		{"paramcount", Integer}, {"paramstr", String}, {"inc", Void}, {"dec", Void},
	},
	{ // CRT/DOS terminal- and filesystem-adjacent calls
		{"clrscr", Void}, {"gotoxy", Void}, {"textcolor", Void}, {"textbackground", Void},
		{"keypressed", Boolean}, {"readkey", Char}, {"delay", Void},
		{"fileexists", Boolean}, {"deletefile", Boolean}, {"renamefile", Boolean},
	},
}

// registerBuiltins defines every built-in as a procedure/function symbol
// directly in the global scope, at SymbolTable construction time (spec.md
// §4.3: "Built-in symbols are defined at construction in the global
// scope.").
func registerBuiltins(st *SymbolTable) {
	for _, group := range builtinGroups {
		for _, b := range group {
			kind := SymFunction
			if b.returnType == Void {
				kind = SymProcedure
			}
			st.DefineGlobal(&Symbol{
				Name:       b.name,
				Kind:       kind,
				Type:       b.returnType,
				ReturnType: b.returnType,
			})
		}
	}
	st.DefineGlobal(&Symbol{Name: "true", Kind: SymConstant, Type: Boolean, ConstValue: true})
	st.DefineGlobal(&Symbol{Name: "false", Kind: SymConstant, Type: Boolean, ConstValue: false})
}

// isBuiltin reports whether name (case-insensitively) names one of the
// built-ins registered by registerBuiltins, as opposed to a user-defined
// callable that merely shadows a name outside the global scope — callers
// that need this distinction should instead check whether the resolved
// symbol's ScopeLevel is 0 and it was never redefined; isBuiltin is a
// cheap pre-check for the emitter's dispatch-table lookup.
func isBuiltin(name string) bool {
	for _, group := range builtinGroups {
		for _, b := range group {
			if key(b.name) == key(name) {
				return true
			}
		}
	}
	return false
}
