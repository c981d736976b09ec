package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

func TestBuildMapping(t *testing.T) {
	t.Run("pairs names in order", func(t *testing.T) {
		renames := BuildMapping([]string{"a", "b"}, "v_", &sequenceGenerator{})

		assert.Equal(t, []m.Rename{{Old: "a", New: "v_1"}, {Old: "b", New: "v_2"}}, renames)
	})

	t.Run("resamples duplicate names", func(t *testing.T) {
		gen := &scriptedGenerator{names: []string{"x_a", "x_a", "x_a", "x_b"}}
		renames := BuildMapping([]string{"first", "second"}, "x_", gen)

		require.Len(t, renames, 2)
		assert.Equal(t, "x_a", renames[0].New)
		assert.Equal(t, "x_b", renames[1].New)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, BuildMapping(nil, "v_", &sequenceGenerator{}))
	})
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		renames []m.Rename
		want    string
	}{
		{
			name:    "whole words only",
			src:     "foo foobar _foo foo",
			renames: []m.Rename{{Old: "foo", New: "A"}},
			want:    "A foobar _foo A",
		},
		{
			name:    "shared prefixes",
			src:     "int foo, foobar;",
			renames: []m.Rename{{Old: "foo", New: "A"}, {Old: "foobar", New: "B"}},
			want:    "int A, B;",
		},
		{
			name:    "string literals untouched",
			src:     `print("SPEED"); wait(SPEED);`,
			renames: []m.Rename{{Old: "SPEED", New: "def_1"}},
			want:    `print("SPEED"); wait(def_1);`,
		},
		{
			name:    "escaped quotes stay inside the literal",
			src:     `s = "a \" SPEED"; SPEED;`,
			renames: []m.Rename{{Old: "SPEED", New: "X"}},
			want:    `s = "a \" SPEED"; X;`,
		},
		{
			name:    "no occurrences",
			src:     "main { }",
			renames: []m.Rename{{Old: "SPEED", New: "X"}},
			want:    "main { }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.src, tt.renames))
		})
	}
}

func TestSubstituteGuarded(t *testing.T) {
	diags := &Diagnostics{}
	src := "enum { UP }\nx = \"UP UP\";\ny = UP;\nz = \"DOWN\";"

	got := SubstituteGuarded(src, m.CategoryEnum, []m.Rename{{Old: "UP", New: "E"}}, diags)

	assert.Equal(t, "enum { E }\nx = \"UP UP\";\ny = E;\nz = \"DOWN\";", got)

	events := diags.Events()
	require.Len(t, events, 1)
	assert.Equal(t, m.DiagnosticWarning, events[0].Kind)
	assert.Equal(t, 2, events[0].Line)
	assert.Contains(t, events[0].Message, `enum "UP"`)
}

func TestLongestFirst(t *testing.T) {
	renames := []m.Rename{{Old: "a"}, {Old: "dd"}, {Old: "ccc"}, {Old: "bb"}}

	var order []string
	for _, r := range longestFirst(renames) {
		order = append(order, r.Old)
	}

	assert.Equal(t, []string{"ccc", "bb", "dd", "a"}, order)
	assert.Equal(t, "a", renames[0].Old, "input must not be reordered")
}

func TestDeclarationRewrite(t *testing.T) {
	t.Run("define is normalised", func(t *testing.T) {
		src := "define SPEED = 10\ndefine LIMIT=5 ;\ns = \"define SPEED = 1;\";"
		renames := []m.Rename{{Old: "SPEED", New: "def_1"}, {Old: "LIMIT", New: "def_2"}}

		got := defineDeclaration(false).rewrite(src, renames)

		assert.Equal(t, "define def_1 = 10;\ndefine def_2 = 5;\ns = \"define SPEED = 1;\";", got)
	})

	t.Run("strict define skips lines without semicolon", func(t *testing.T) {
		src := "define SPEED = 10\n"

		got := defineDeclaration(true).rewrite(src, []m.Rename{{Old: "SPEED", New: "def_1"}})

		assert.Equal(t, src, got)
	})

	t.Run("function and combo", func(t *testing.T) {
		assert.Equal(t, "function fn_1(a) {}",
			functionDeclaration.rewrite("function  f (a) {}", []m.Rename{{Old: "f", New: "fn_1"}}))
		assert.Equal(t, "combo combo_1 {}",
			comboDeclaration.rewrite("combo Fire{}", []m.Rename{{Old: "Fire", New: "combo_1"}}))
	})

	t.Run("gaps spanning lines are kept", func(t *testing.T) {
		define := defineDeclaration(false).rewrite("define SPEED =\n 10;", []m.Rename{{Old: "SPEED", New: "def_1"}})
		assert.Equal(t, "define def_1 =\n 10;", define)

		function := functionDeclaration.rewrite("function\nf\n(a) {}", []m.Rename{{Old: "f", New: "fn_1"}})
		assert.Equal(t, "function\nfn_1\n(a) {}", function)

		combo := comboDeclaration.rewrite("combo Fire\n{}", []m.Rename{{Old: "Fire", New: "combo_1"}})
		assert.Equal(t, "combo combo_1\n{}", combo)
	})

	t.Run("unmapped names are kept", func(t *testing.T) {
		src := "combo Other {}"
		assert.Equal(t, src, comboDeclaration.rewrite(src, []m.Rename{{Old: "Fire", New: "combo_1"}}))
	})
}
