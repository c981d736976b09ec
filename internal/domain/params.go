package domain

import (
	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

// ScopeParameters renames the parameters of every `function NAME(PARAMS) {BODY}`
// block. Each function gets its own mapping and only its signature and body
// are rewritten, so identically named parameters or globals elsewhere keep
// their names. Renames carry the function name in Scope.
func ScopeParameters(src, prefix string, gen NameGenerator, diags *Diagnostics) (string, []m.Rename) {
	return scopeParameters(src, prefix, gen, diags, keepRule{})
}

func scopeParameters(src, prefix string, gen NameGenerator, diags *Diagnostics, keep keepRule) (string, []m.Rename) {
	matches := functionBlockPattern.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, nil
	}

	literals := gpc.Literals(src)
	lines := gpc.NewLineIndex(src)
	perFunction := make([][]m.Rename, len(matches))
	out := src
	limit := len(src)

	// walk backwards so splicing never shifts an offset still to be used
	for i := len(matches) - 1; i >= 0; i-- {
		match := matches[i]
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		name := src[match[2]:match[3]]
		open := match[1] - 1

		closing, ok := gpc.MatchingBrace(src, open)
		if !ok || closing >= limit {
			diags.Warnf(lines.Line(match[0]), "function %s: body braces do not balance; parameters left unchanged", name)
			continue
		}

		limit = match[0]

		params := keep.filter(parameterNames(src[match[4]:match[5]]))
		if len(params) == 0 {
			continue
		}

		renames := BuildMapping(params, prefix, gen)
		for j := range renames {
			renames[j].Scope = name
		}

		signature := Substitute(src[match[4]:match[5]], renames)
		body := Substitute(src[open:closing+1], renames)

		out = out[:match[4]] + signature + src[match[5]:open] + body + out[closing+1:]
		perFunction[i] = renames
	}

	var all []m.Rename
	for _, renames := range perFunction {
		all = append(all, renames...)
	}

	return out, all
}
