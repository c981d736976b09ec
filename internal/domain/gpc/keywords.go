package gpc

// reserved holds GPC keywords, type names and block names. None of them may
// be picked up as a declared identifier.
var reserved = map[string]struct{}{
	"bool": {}, "break": {}, "call": {}, "case": {}, "combo": {}, "const": {},
	"continue": {}, "data": {}, "default": {}, "define": {}, "do": {},
	"else": {}, "enum": {}, "FALSE": {}, "fix32": {}, "for": {},
	"function": {}, "if": {}, "image": {}, "init": {}, "int": {}, "int8": {},
	"int16": {}, "int32": {}, "main": {}, "return": {}, "string": {},
	"switch": {}, "TRUE": {}, "uint8": {}, "uint16": {}, "uint32": {},
	"wait": {}, "while": {},
}

// typeKeywords may prefix a function parameter.
var typeKeywords = map[string]struct{}{
	"bool": {}, "fix32": {}, "image": {}, "int": {}, "int8": {}, "int16": {},
	"int32": {}, "string": {}, "uint8": {}, "uint16": {}, "uint32": {},
}

// IsReserved reports whether name is a language keyword.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// IsTypeKeyword reports whether name is a type usable in a parameter list.
func IsTypeKeyword(name string) bool {
	_, ok := typeKeywords[name]
	return ok
}
