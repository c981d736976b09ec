package domain

import (
	"strings"
	"unicode"

	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
)

const keepDirective = "gpcobf:keep"

// keepRule lists identifiers the engine must leave unchanged. all opts the
// whole script out of renaming.
type keepRule struct {
	all   bool
	names map[string]struct{}
}

func newKeepRule(names ...string) keepRule {
	rule := keepRule{}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if !gpc.IsIdentifier(name) {
			continue
		}

		if rule.names == nil {
			rule.names = make(map[string]struct{}, len(names))
		}

		rule.names[name] = struct{}{}
	}

	return rule
}

func (r keepRule) keeps(name string) bool {
	if r.all {
		return true
	}

	_, ok := r.names[name]

	return ok
}

func (r keepRule) filter(names []string) []string {
	if !r.all && len(r.names) == 0 {
		return names
	}

	kept := names[:0:0]

	for _, name := range names {
		if !r.keeps(name) {
			kept = append(kept, name)
		}
	}

	return kept
}

func mergeKeepRule(dst *keepRule, src keepRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseKeepDirective reads `// gpcobf:keep A, B` or `/* gpcobf:keep A B */`.
// A directive without names keeps everything.
func parseKeepDirective(commentText string) (keepRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	rest, ok := strings.CutPrefix(s, keepDirective)
	if !ok || (rest != "" && !isKeepSeparator(rune(rest[0]))) {
		return keepRule{}, false
	}

	fields := strings.FieldsFunc(rest, isKeepSeparator)

	rule := newKeepRule(fields...)
	if len(rule.names) == 0 {
		rule.all = true
	}

	return rule, true
}

func isKeepSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanKeepDirectives merges the directives found in the comments of src. It
// must run on the raw script, before comments are stripped.
func scanKeepDirectives(src string) keepRule {
	var rule keepRule

	for _, c := range gpc.Comments(src) {
		r, ok := parseKeepDirective(c.Text)
		if !ok {
			continue
		}

		mergeKeepRule(&rule, r)
	}

	return rule
}
