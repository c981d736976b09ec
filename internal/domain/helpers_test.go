package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// sequenceGenerator hands out prefix1, prefix2, ... so outputs are predictable.
type sequenceGenerator struct {
	n int
}

func (g *sequenceGenerator) Generate(prefix string) string {
	g.n++
	return fmt.Sprintf("%s%d", prefix, g.n)
}

func (g *sequenceGenerator) Reserve(...string) {}

// scriptedGenerator replays names in order, ignoring the prefix.
type scriptedGenerator struct {
	names []string
}

func (g *scriptedGenerator) Generate(string) string {
	name := g.names[0]
	g.names = g.names[1:]

	return name
}

func (g *scriptedGenerator) Reserve(...string) {}

func sequenceEngine(opts ...EngineOption) Engine {
	opts = append([]EngineOption{WithNameGenerator(func() NameGenerator { return &sequenceGenerator{} })}, opts...)
	return NewEngine(opts...)
}

func seededEngine(seed uint64, opts ...EngineOption) Engine {
	opts = append([]EngineOption{WithNameGenerator(func() NameGenerator {
		return NewNameGenerator(WithSeed(seed))
	})}, opts...)

	return NewEngine(opts...)
}

func loadScript(t *testing.T, example string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("..", "..", "examples", example, "script.gpc"))
	if err != nil {
		t.Fatalf("failed to read example %s: %v", example, err)
	}

	return string(content)
}
