package gpc

import "sort"

// LineIndex maps byte offsets to 1-based line numbers.
type LineIndex struct {
	starts []int
}

// NewLineIndex records the start offset of every line in content.
func NewLineIndex(content string) LineIndex {
	starts := []int{0}

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return LineIndex{starts: starts}
}

// Line returns the line number holding offset.
func (li LineIndex) Line(offset int) int {
	return sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	})
}
