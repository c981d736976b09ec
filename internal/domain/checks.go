package domain

import (
	"strings"

	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
)

// StripComments erases comments from src before any analysis. A block comment
// left open is reported as a warning.
func StripComments(src string, diags *Diagnostics) string {
	stripped, openLine := gpc.StripComments(src)
	if openLine > 0 {
		diags.Warnf(openLine, "block comment is never closed; the rest of the script was treated as comment")
	}

	return stripped
}

// CheckParameterTyping flags function signatures that give some parameters a
// type keyword and leave others untyped.
func CheckParameterTyping(src string, diags *Diagnostics) {
	literals := gpc.Literals(src)
	lines := gpc.NewLineIndex(src)
	text := strings.Split(src, "\n")

	for _, match := range functionSigPattern.FindAllStringSubmatchIndex(src, -1) {
		if _, inside := gpc.LiteralAt(literals, match[0]); inside {
			continue
		}

		typed, untyped := 0, 0

		for _, item := range splitTopLevel(src[match[4]:match[5]]) {
			fields := strings.Fields(item)

			switch {
			case len(fields) == 0:
			case len(fields) > 1 && gpc.IsTypeKeyword(fields[0]):
				typed++
			default:
				untyped++
			}
		}

		if typed > 0 && untyped > 0 {
			line := lines.Line(match[0])
			diags.Errorf(line, "function %s mixes typed and untyped parameters: %s",
				src[match[2]:match[3]], strings.TrimSpace(text[line-1]))
		}
	}
}

// CheckTrailingColon flags lines ending in ':' (a trailing comment aside),
// which in GPC is almost always a typo for ';'.
func CheckTrailingColon(src string, diags *Diagnostics) {
	for i, line := range strings.Split(src, "\n") {
		code, _ := gpc.StripComments(line)

		trimmed := strings.TrimSpace(code)
		if strings.HasSuffix(trimmed, ":") {
			diags.Errorf(i+1, "line ends with ':' (did you mean ';'?): %s", trimmed)
		}
	}
}

// CheckStringLiterals flags string literals that never close on their line.
func CheckStringLiterals(src string, diags *Diagnostics) {
	for _, lit := range gpc.Literals(src) {
		if !lit.Terminated {
			diags.Warnf(lit.Line, "string literal is not terminated")
		}
	}
}
