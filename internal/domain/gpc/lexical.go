// Package gpc provides the lexical primitives the renaming passes share:
// comment erasure, string literal spans, identifier occurrences and brace
// matching. It understands just enough of the GPC surface syntax to keep
// rewrites away from literal text; it is not a parser.
package gpc

import "sort"

// IsIdentStart reports whether b can begin an identifier.
func IsIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentChar reports whether b can continue an identifier.
func IsIdentChar(b byte) bool {
	return IsIdentStart(b) || (b >= '0' && b <= '9')
}

// IsIdentifier reports whether s is a single well-formed identifier.
func IsIdentifier(s string) bool {
	if s == "" || !IsIdentStart(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !IsIdentChar(s[i]) {
			return false
		}
	}

	return true
}

// Literal is a double-quoted string literal, quotes included.
type Literal struct {
	Start int
	End   int
	Line  int
	// Terminated is false when the line or text ended before the closing quote.
	Terminated bool
}

// Contains reports whether offset falls inside the literal.
func (l Literal) Contains(offset int) bool {
	return offset >= l.Start && offset < l.End
}

// Literals returns every string literal in src in source order. A backslash
// escapes the next character, so \" does not close a literal. Literals never
// span lines.
func Literals(src string) []Literal {
	var literals []Literal

	line := 1

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			line++
		case '"':
			lit := Literal{Start: i, Line: line}
			j := i + 1

			for ; j < len(src); j++ {
				if src[j] == '\\' && j+1 < len(src) && src[j+1] != '\n' {
					j++
					continue
				}

				if src[j] == '"' {
					lit.Terminated = true
					j++

					break
				}

				if src[j] == '\n' {
					break
				}
			}

			lit.End = j
			literals = append(literals, lit)
			i = j - 1
		}
	}

	return literals
}

// LiteralAt returns the literal containing offset, if any. literals must be
// sorted by Start, as Literals returns them.
func LiteralAt(literals []Literal, offset int) (Literal, bool) {
	idx := sort.Search(len(literals), func(i int) bool {
		return literals[i].End > offset
	})
	if idx < len(literals) && literals[idx].Contains(offset) {
		return literals[idx], true
	}

	return Literal{}, false
}

// StripComments erases `//` line comments and `/* */` block comments outside
// string literals. Newlines inside block comments are kept so line numbers
// still match the input. When a block comment is never closed the rest of the
// text is erased and unterminatedLine reports where it opened (0 otherwise).
func StripComments(src string) (stripped string, unterminatedLine int) {
	out := make([]byte, 0, len(src))
	line := 1

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch {
		case c == '"':
			j := skipLiteral(src, i)
			out = append(out, src[i:j]...)
			i = j - 1
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}

			if i < len(src) {
				out = append(out, '\n')
				line++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			open := line
			end := indexFrom(src, "*/", i+2)

			stop := end
			if end < 0 {
				stop = len(src)
			}

			for _, b := range []byte(src[i:stop]) {
				if b == '\n' {
					out = append(out, '\n')
					line++
				}
			}

			if end < 0 {
				return string(out), open
			}

			i = end + 1
		default:
			if c == '\n' {
				line++
			}

			out = append(out, c)
		}
	}

	return string(out), 0
}

// Comment is one `//` or `/* */` comment of the input, delimiters included.
type Comment struct {
	Text string
	Line int
}

// Comments returns every comment of src outside string literals, in source
// order. An unterminated block comment runs to the end of src.
func Comments(src string) []Comment {
	var comments []Comment

	lines := NewLineIndex(src)

	for i := 0; i+1 < len(src); i++ {
		if src[i] == '"' {
			i = skipLiteral(src, i) - 1
			continue
		}

		if src[i] != '/' {
			continue
		}

		var end int

		switch src[i+1] {
		case '/':
			end = indexFrom(src, "\n", i)
			if end < 0 {
				end = len(src)
			}
		case '*':
			end = indexFrom(src, "*/", i+2)
			if end < 0 {
				end = len(src)
			} else {
				end += 2
			}
		default:
			continue
		}

		comments = append(comments, Comment{Text: src[i:end], Line: lines.Line(i)})
		i = end - 1
	}

	return comments
}

// skipLiteral returns the offset just past the literal opening at start.
func skipLiteral(src string, start int) int {
	j := start + 1
	for ; j < len(src) && src[j] != '"' && src[j] != '\n'; j++ {
		if src[j] == '\\' && j+1 < len(src) && src[j+1] != '\n' {
			j++
		}
	}

	if j < len(src) && src[j] == '"' {
		j++
	}

	return j
}

func indexFrom(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}

	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}

	return -1
}

// Occurrences returns the offsets of every standalone occurrence of name:
// matches bounded on both sides by non-identifier characters.
func Occurrences(src, name string) []int {
	if name == "" {
		return nil
	}

	var offsets []int

	for from := 0; from+len(name) <= len(src); {
		idx := indexFrom(src, name, from)
		if idx < 0 {
			break
		}

		end := idx + len(name)
		before := idx == 0 || !IsIdentChar(src[idx-1])
		after := end == len(src) || !IsIdentChar(src[end])

		if before && after {
			offsets = append(offsets, idx)
			from = end
		} else {
			from = idx + 1
		}
	}

	return offsets
}

// Identifiers returns the distinct identifier-shaped tokens of src.
func Identifiers(src string) map[string]struct{} {
	tokens := make(map[string]struct{})

	for i := 0; i < len(src); {
		if !IsIdentStart(src[i]) || (i > 0 && IsIdentChar(src[i-1])) {
			i++
			continue
		}

		j := i + 1
		for j < len(src) && IsIdentChar(src[j]) {
			j++
		}

		tokens[src[i:j]] = struct{}{}
		i = j
	}

	return tokens
}

// MatchingBrace returns the offset of the `}` closing the `{` at open,
// ignoring braces inside string literals.
func MatchingBrace(src string, open int) (int, bool) {
	if open < 0 || open >= len(src) || src[open] != '{' {
		return 0, false
	}

	depth := 0
	literals := Literals(src)

	for i := open; i < len(src); i++ {
		if lit, ok := LiteralAt(literals, i); ok {
			i = lit.End - 1
			continue
		}

		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
