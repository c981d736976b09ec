package model

// Category is a syntactic class of declared identifier.
type Category string

const (
	// CategoryUint8Array covers `const uint8 NAME[]`.
	CategoryUint8Array Category = "uint8_array"
	// CategoryDefine covers `define NAME = VALUE;`.
	CategoryDefine Category = "define"
	// CategoryFunction covers `function NAME(`.
	CategoryFunction Category = "function"
	// CategoryFunctionParameter covers the parameter list of one function.
	CategoryFunctionParameter Category = "function_parameter"
	// CategoryScalarVariable covers `int A, B;`.
	CategoryScalarVariable Category = "scalar_variable"
	// CategoryIntArray covers `int NAME[SIZE];`.
	CategoryIntArray Category = "int_array"
	// CategoryInt2DArray covers `const int NAME[][]`.
	CategoryInt2DArray Category = "int_2d_array"
	// CategoryInt16Array covers `const int16 NAME[] = {`.
	CategoryInt16Array Category = "int16_array"
	// CategoryInt16Array2D covers `const int16 NAME[][] = {`.
	CategoryInt16Array2D Category = "int16_2d_array"
	// CategoryStringConstant covers `const string NAME = "VALUE";`.
	CategoryStringConstant Category = "string_constant"
	// CategoryStringArray covers `const string NAME[]`.
	CategoryStringArray Category = "string_array"
	// CategoryCombo covers `combo NAME {`.
	CategoryCombo Category = "combo"
	// CategoryEnum covers the members of `enum { ... }`.
	CategoryEnum Category = "enum"
)

// PipelineOrder lists every category in the order the engine applies them.
// Later passes run against the output of earlier ones.
var PipelineOrder = []Category{
	CategoryUint8Array,
	CategoryDefine,
	CategoryFunction,
	CategoryFunctionParameter,
	CategoryScalarVariable,
	CategoryIntArray,
	CategoryInt2DArray,
	CategoryInt16Array,
	CategoryInt16Array2D,
	CategoryStringConstant,
	CategoryStringArray,
	CategoryCombo,
	CategoryEnum,
}

// ParseCategory resolves a category name, reporting whether it is known.
func ParseCategory(name string) (Category, bool) {
	for _, c := range PipelineOrder {
		if string(c) == name {
			return c, true
		}
	}

	return "", false
}

// ScopeType defines where a renamed identifier's references live.
type ScopeType string

const (
	// ScopeGlobal means every occurrence in the file is rewritten.
	ScopeGlobal ScopeType = "global"

	// ScopeFunction confines rewriting to one function body.
	ScopeFunction ScopeType = "function"
)

// Scope reports the rename scope of the category.
func (c Category) Scope() ScopeType {
	if c == CategoryFunctionParameter {
		return ScopeFunction
	}

	return ScopeGlobal
}

// Rename maps one original identifier to its generated replacement.
type Rename struct {
	Old string `yaml:"old" cbor:"old"`
	New string `yaml:"new" cbor:"new"`
	// Scope is the enclosing function name for parameters, empty otherwise.
	Scope string `yaml:"scope,omitempty" cbor:"scope,omitempty"`
}
