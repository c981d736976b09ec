package domain

import (
	"regexp"
	"testing"
)

func TestNameGenerator_Format(t *testing.T) {
	gen := NewNameGenerator(WithSeed(1))
	pattern := regexp.MustCompile(`^def_[A-Za-z0-9]{8}$`)

	for range 20 {
		if name := gen.Generate("def_"); !pattern.MatchString(name) {
			t.Fatalf("unexpected name format: %q", name)
		}
	}
}

func TestNameGenerator_SuffixLength(t *testing.T) {
	gen := NewNameGenerator(WithSeed(1), WithSuffixLength(3))

	if name := gen.Generate("x_"); len(name) != len("x_")+3 {
		t.Fatalf("expected 3 character suffix, got %q", name)
	}

	// non-positive lengths keep the default
	gen = NewNameGenerator(WithSeed(1), WithSuffixLength(0))
	if name := gen.Generate("x_"); len(name) != len("x_")+defaultSuffixLen {
		t.Fatalf("expected default suffix, got %q", name)
	}
}

func TestNameGenerator_SeedIsDeterministic(t *testing.T) {
	a := NewNameGenerator(WithSeed(42))
	b := NewNameGenerator(WithSeed(42))
	c := NewNameGenerator(WithSeed(43))

	same := true

	for range 10 {
		na, nb, nc := a.Generate("fn_"), b.Generate("fn_"), c.Generate("fn_")
		if na != nb {
			t.Fatalf("same seed diverged: %q != %q", na, nb)
		}

		if na != nc {
			same = false
		}
	}

	if same {
		t.Fatal("different seeds produced the same sequence")
	}
}

func TestNameGenerator_WidensWhenExhausted(t *testing.T) {
	gen := NewNameGenerator(WithSeed(7), WithSuffixLength(1))

	for i := range len(nameAlphabet) {
		gen.Reserve("v_" + nameAlphabet[i:i+1])
	}

	name := gen.Generate("v_")
	if len(name) != len("v_")+2 {
		t.Fatalf("expected a widened suffix, got %q", name)
	}
}

func TestNameGenerator_Uniqueness(t *testing.T) {
	t.Run("unique names never repeat", func(t *testing.T) {
		gen := NewNameGenerator(WithSeed(9), WithSuffixLength(1))
		gen.Reserve("k_a")

		seen := make(map[string]bool)

		for range len(nameAlphabet) {
			name := gen.Generate("k_")
			if seen[name] || name == "k_a" {
				t.Fatalf("duplicate or reserved name %q", name)
			}

			seen[name] = true
		}
	})

	t.Run("unchecked names may repeat", func(t *testing.T) {
		gen := NewNameGenerator(WithSeed(9), WithSuffixLength(1), WithUniqueness(false))
		seen := make(map[string]bool)
		dup := false

		for range 200 {
			name := gen.Generate("k_")
			if len(name) != len("k_")+1 {
				t.Fatalf("suffix widened without uniqueness: %q", name)
			}

			dup = dup || seen[name]
			seen[name] = true
		}

		if !dup {
			t.Fatal("expected duplicates with 200 draws over 62 names")
		}
	})
}
