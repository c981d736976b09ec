package domain

import (
	"reflect"
	"testing"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

func TestScopeParameters(t *testing.T) {
	t.Run("renames within each function only", func(t *testing.T) {
		src := "int x;\nfunction f(x) { return x; }\nfunction g(int x, y) { return x + y; }\nmain { x = f(x); }"
		diags := &Diagnostics{}

		got, renames := ScopeParameters(src, "arg_", &sequenceGenerator{}, diags)

		want := "int x;\nfunction f(arg_3) { return arg_3; }\nfunction g(int arg_1, arg_2) { return arg_1 + arg_2; }\nmain { x = f(x); }"
		if got != want {
			t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
		}

		wantRenames := []m.Rename{
			{Old: "x", New: "arg_3", Scope: "f"},
			{Old: "x", New: "arg_1", Scope: "g"},
			{Old: "y", New: "arg_2", Scope: "g"},
		}
		if !reflect.DeepEqual(renames, wantRenames) {
			t.Fatalf("unexpected renames: %+v", renames)
		}

		if n := len(diags.Events()); n != 0 {
			t.Fatalf("expected no diagnostics, got %d", n)
		}
	})

	t.Run("braces inside strings do not end the body", func(t *testing.T) {
		src := "function f(a) { print(\"}\"); return a; }"

		got, renames := ScopeParameters(src, "arg_", &sequenceGenerator{}, &Diagnostics{})

		if got != "function f(arg_1) { print(\"}\"); return arg_1; }" {
			t.Fatalf("unexpected output: %s", got)
		}

		if len(renames) != 1 {
			t.Fatalf("expected 1 rename, got %d", len(renames))
		}
	})

	t.Run("unbalanced body is skipped with a warning", func(t *testing.T) {
		src := "function f(a) { return a;\nmain { }"
		diags := &Diagnostics{}

		got, renames := ScopeParameters(src, "arg_", &sequenceGenerator{}, diags)

		if got != src {
			t.Fatalf("expected unchanged source, got %s", got)
		}

		if len(renames) != 0 {
			t.Fatalf("expected no renames, got %d", len(renames))
		}

		if diags.Warnings() != 1 || diags.Events()[0].Line != 1 {
			t.Fatalf("expected one warning on line 1, got %+v", diags.Events())
		}
	})

	t.Run("functions without parameters", func(t *testing.T) {
		src := "function f() { return 1; }"

		got, renames := ScopeParameters(src, "arg_", &sequenceGenerator{}, &Diagnostics{})
		if got != src || renames != nil {
			t.Fatalf("expected no changes, got %q %+v", got, renames)
		}
	})

	t.Run("no functions", func(t *testing.T) {
		got, renames := ScopeParameters("main { }", "arg_", &sequenceGenerator{}, &Diagnostics{})
		if got != "main { }" || renames != nil {
			t.Fatalf("expected no changes, got %q %+v", got, renames)
		}
	})
}
