package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

// BuildMapping pairs every name with a fresh identifier from gen. Generated
// names are distinct within the mapping even when gen does not enforce
// uniqueness, so the result is always a bijection.
func BuildMapping(names []string, prefix string, gen NameGenerator) []m.Rename {
	renames := make([]m.Rename, 0, len(names))
	taken := make(map[string]struct{}, len(names))

	for _, name := range names {
		fresh := gen.Generate(prefix)
		for {
			if _, dup := taken[fresh]; !dup {
				break
			}

			fresh = gen.Generate(prefix)
		}

		taken[fresh] = struct{}{}
		renames = append(renames, m.Rename{Old: name, New: fresh})
	}

	return renames
}

// Substitute rewrites every standalone occurrence of each old name outside
// string literals. Longer names are applied first so a shorter name sharing a
// prefix never clobbers part of a longer one.
func Substitute(src string, renames []m.Rename) string {
	return substitute(src, renames, nil)
}

// SubstituteGuarded behaves like Substitute and additionally records a warning
// for each string literal line holding an occurrence it had to leave alone.
func SubstituteGuarded(src string, category m.Category, renames []m.Rename, diags *Diagnostics) string {
	type hit struct {
		name string
		line int
	}

	seen := make(map[hit]struct{})

	return substitute(src, renames, func(name string, line int) {
		if _, dup := seen[hit{name, line}]; dup {
			return
		}

		seen[hit{name, line}] = struct{}{}
		diags.Warnf(line, "%s %q also appears inside a string literal; the literal was left unchanged", category, name)
	})
}

func substitute(src string, renames []m.Rename, skipped func(name string, line int)) string {
	for _, r := range longestFirst(renames) {
		offsets := gpc.Occurrences(src, r.Old)
		if len(offsets) == 0 {
			continue
		}

		literals := gpc.Literals(src)

		var b strings.Builder

		b.Grow(len(src))

		last := 0

		for _, offset := range offsets {
			if lit, inside := gpc.LiteralAt(literals, offset); inside {
				if skipped != nil {
					skipped(r.Old, lit.Line)
				}

				continue
			}

			b.WriteString(src[last:offset])
			b.WriteString(r.New)
			last = offset + len(r.Old)
		}

		b.WriteString(src[last:])
		src = b.String()
	}

	return src
}

func longestFirst(renames []m.Rename) []m.Rename {
	ordered := make([]m.Rename, len(renames))
	copy(ordered, renames)

	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].Old) != len(ordered[j].Old) {
			return len(ordered[i].Old) > len(ordered[j].Old)
		}

		return ordered[i].Old < ordered[j].Old
	})

	return ordered
}

// declaration rewrites a category's declaration site into a canonical form
// before the general substitution handles the remaining references. Gaps that
// span lines are kept verbatim so line numbers survive the rewrite.
type declaration struct {
	pattern *regexp.Regexp
	render  func(name, src string, idx []int) string
}

func (d declaration) rewrite(src string, renames []m.Rename) string {
	lookup := make(map[string]string, len(renames))
	for _, r := range renames {
		lookup[r.Old] = r.New
	}

	literals := gpc.Literals(src)

	var b strings.Builder

	last := 0

	for _, idx := range d.pattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, idx[0]); inside {
			continue
		}

		fresh, ok := lookup[src[idx[2]:idx[3]]]
		if !ok {
			continue
		}

		b.WriteString(src[last:idx[0]])
		b.WriteString(d.render(fresh, src, idx))
		last = idx[1]
	}

	b.WriteString(src[last:])

	return b.String()
}

// gap returns the whitespace between two tokens, or canonical when it stays
// on one line.
func gap(whitespace, canonical string) string {
	if strings.Contains(whitespace, "\n") {
		return whitespace
	}

	return canonical
}

func defineDeclaration(strict bool) *declaration {
	return &declaration{
		pattern: definePattern(strict),
		render: func(name, src string, idx []int) string {
			return "define" + gap(src[idx[0]+len("define"):idx[2]], " ") + name +
				gap(src[idx[3]:idx[4]], " = ") + strings.TrimSpace(src[idx[4]:idx[5]]) + ";"
		},
	}
}

var functionDeclaration = &declaration{
	pattern: functionPattern,
	render: func(name, src string, idx []int) string {
		return "function" + gap(src[idx[0]+len("function"):idx[2]], " ") + name +
			gap(src[idx[3]:idx[1]-1], "") + "("
	},
}

var comboDeclaration = &declaration{
	pattern: comboPattern,
	render: func(name, src string, idx []int) string {
		return "combo" + gap(src[idx[0]+len("combo"):idx[2]], " ") + name +
			gap(src[idx[3]:idx[1]-1], " ") + "{"
	},
}
