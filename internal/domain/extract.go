package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

var (
	uint8ArrayPattern     = regexp.MustCompile(`\bconst\s+uint8\s+([A-Za-z_]\w*)\s*\[\s*\]`)
	defineOptionalPattern = regexp.MustCompile(`\bdefine\s+([A-Za-z_]\w*)\s*=\s*([^;\r\n]+);?`)
	defineStrictPattern   = regexp.MustCompile(`\bdefine\s+([A-Za-z_]\w*)\s*=\s*([^;\r\n]+);`)
	functionPattern       = regexp.MustCompile(`\bfunction\s+([A-Za-z_]\w*)\s*\(`)
	functionSigPattern    = regexp.MustCompile(`\bfunction\s+([A-Za-z_]\w*)\s*\(([^)]*)\)`)
	functionBlockPattern  = regexp.MustCompile(`\bfunction\s+([A-Za-z_]\w*)\s*\(([^)]*)\)\s*\{`)
	scalarPattern         = regexp.MustCompile(`\bint\s+([^;{}]+);`)
	intArrayPattern       = regexp.MustCompile(`\bint\s+([A-Za-z_]\w*)\s*\[\s*\w*\s*\]\s*;`)
	int2DArrayPattern     = regexp.MustCompile(`\bconst\s+int\s+([A-Za-z_]\w*)\s*\[\s*\]\s*\[\s*\]`)
	int16ArrayPattern     = regexp.MustCompile(`\bconst\s+int16\s+([A-Za-z_]\w*)\s*\[\s*\]\s*=\s*\{`)
	int16Array2DPattern   = regexp.MustCompile(`\bconst\s+int16\s+([A-Za-z_]\w*)\s*\[\s*\]\s*\[\s*\]\s*=\s*\{`)
	stringConstPattern    = regexp.MustCompile(`\bconst\s+string\s+([A-Za-z_]\w*)\s*=`)
	stringArrayPattern    = regexp.MustCompile(`\bconst\s+string\s+([A-Za-z_]\w*)\s*\[\s*\]`)
	comboPattern          = regexp.MustCompile(`\bcombo\s+([A-Za-z_]\w*)\s*\{`)
	enumPattern           = regexp.MustCompile(`\benum\s*\{([^}]*)\}`)
)

// ExtractOptions tunes declaration shapes that drifted between script dialects.
type ExtractOptions struct {
	// RequireDefineSemicolon only accepts `define NAME = VALUE;` with the
	// trailing semicolon. When false the value runs to `;` or end of line.
	RequireDefineSemicolon bool
}

// Extract returns the sorted set of names declared for category in src.
// Declarations inside string literals and reserved words are ignored.
func Extract(category m.Category, src string, opts ExtractOptions) []string {
	literals := gpc.Literals(src)

	var names []string

	switch category {
	case m.CategoryUint8Array:
		names = extractUint8Arrays(src, literals)
	case m.CategoryDefine:
		names = extractDefines(src, literals, opts.RequireDefineSemicolon)
	case m.CategoryFunction:
		names = extractFunctions(src, literals)
	case m.CategoryFunctionParameter:
		names = extractParameters(src, literals)
	case m.CategoryScalarVariable:
		names = extractScalarVariables(src, literals)
	case m.CategoryIntArray:
		names = extractIntArrays(src, literals)
	case m.CategoryInt2DArray:
		names = declared(int2DArrayPattern, src, literals)
	case m.CategoryInt16Array:
		names = declared(int16ArrayPattern, src, literals)
	case m.CategoryInt16Array2D:
		names = declared(int16Array2DPattern, src, literals)
	case m.CategoryStringConstant:
		names = declared(stringConstPattern, src, literals)
	case m.CategoryStringArray:
		names = declared(stringArrayPattern, src, literals)
	case m.CategoryCombo:
		names = declared(comboPattern, src, literals)
	case m.CategoryEnum:
		names = extractEnums(src, literals)
	}

	return uniqueSorted(names)
}

func extractUint8Arrays(src string, literals []gpc.Literal) []string {
	return declared(uint8ArrayPattern, src, literals)
}

func extractDefines(src string, literals []gpc.Literal, strict bool) []string {
	return declared(definePattern(strict), src, literals)
}

func definePattern(strict bool) *regexp.Regexp {
	if strict {
		return defineStrictPattern
	}

	return defineOptionalPattern
}

func extractFunctions(src string, literals []gpc.Literal) []string {
	return declared(functionPattern, src, literals)
}

func extractParameters(src string, literals []gpc.Literal) []string {
	var names []string

	for _, match := range functionSigPattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		names = append(names, parameterNames(src[match[4]:match[5]])...)
	}

	return names
}

// parameterNames returns the names of a parameter list, dropping any leading
// type keyword (`int a` yields `a`).
func parameterNames(list string) []string {
	var names []string

	for _, item := range splitTopLevel(list) {
		fields := strings.Fields(item)
		if len(fields) == 0 {
			continue
		}

		name := fields[len(fields)-1]
		if gpc.IsIdentifier(name) && !gpc.IsReserved(name) {
			names = append(names, name)
		}
	}

	return uniqueSorted(names)
}

// extractScalarVariables handles `int a, b = 2, c;` and `const int N = 1;`.
// Array items belong to the int array category.
func extractScalarVariables(src string, literals []gpc.Literal) []string {
	return intListItems(src, literals, false)
}

// extractIntArrays handles `int NAME[SIZE];` and array items of a mixed list
// such as `int a, buf[10];`.
func extractIntArrays(src string, literals []gpc.Literal) []string {
	var names []string

	for _, match := range intArrayPattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		if precededByConst(src, match[0]) {
			continue
		}

		names = append(names, src[match[2]:match[3]])
	}

	return append(names, intListItems(src, literals, true)...)
}

// intListItems returns the names of an `int` declaration list, either the
// plain items or the `NAME[...]` ones. Const arrays are left to the const
// array categories.
func intListItems(src string, literals []gpc.Literal, arrays bool) []string {
	var names []string

	for _, match := range scalarPattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		if arrays && precededByConst(src, match[0]) {
			continue
		}

		for _, item := range splitTopLevel(src[match[2]:match[3]]) {
			name, rest := leadingIdentifier(strings.TrimSpace(item))
			if name == "" {
				continue
			}

			if strings.HasPrefix(strings.TrimSpace(rest), "[") == arrays {
				names = append(names, name)
			}
		}
	}

	return names
}

// extractEnums collects members of every enum block. Explicit values are not
// part of the name and stay untouched in the text.
func extractEnums(src string, literals []gpc.Literal) []string {
	var names []string

	for _, match := range enumPattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		for _, item := range splitTopLevel(src[match[2]:match[3]]) {
			name, _, _ := strings.Cut(item, "=")
			names = append(names, strings.TrimSpace(name))
		}
	}

	return names
}

// declared returns the first capture group of every pattern match that does
// not start inside a string literal.
func declared(pattern *regexp.Regexp, src string, literals []gpc.Literal) []string {
	var names []string

	for _, match := range pattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		names = append(names, src[match[2]:match[3]])
	}

	return names
}

func precededByConst(src string, offset int) bool {
	end := offset
	for end > 0 && (src[end-1] == ' ' || src[end-1] == '\t' || src[end-1] == '\r' || src[end-1] == '\n') {
		end--
	}

	start := end
	for start > 0 && gpc.IsIdentChar(src[start-1]) {
		start--
	}

	return src[start:end] == "const"
}

func leadingIdentifier(s string) (string, string) {
	if s == "" || !gpc.IsIdentStart(s[0]) {
		return "", s
	}

	i := 1
	for i < len(s) && gpc.IsIdentChar(s[i]) {
		i++
	}

	return s[:i], s[i:]
}

// splitTopLevel splits on commas that are not nested in brackets.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// uniqueSorted drops duplicates, malformed names and reserved words.
func uniqueSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		if !gpc.IsIdentifier(name) || gpc.IsReserved(name) {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
