package domain

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

func TestStripComments_WarnsOnOpenBlock(t *testing.T) {
	diags := &Diagnostics{}

	got := StripComments("int a;\n/* never closed\nint b;", diags)

	if got != "int a;\n\n" {
		t.Fatalf("unexpected output %q", got)
	}

	events := diags.Events()
	if len(events) != 1 || events[0].Kind != m.DiagnosticWarning || events[0].Line != 2 {
		t.Fatalf("expected one warning on line 2, got %+v", events)
	}
}

func TestCheckParameterTyping(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		errors int
	}{
		{"mixed", "function f(int a, b) {}", 1},
		{"all typed", "function f(int a, int16 b) {}", 0},
		{"all untyped", "function f(a, b) {}", 0},
		{"empty list", "function f() {}", 0},
		{"inside literal", `s = "function f(int a, b)";`, 0},
		{"two functions", "function f(int a, b) {}\nfunction g(a, string b) {}", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := &Diagnostics{}
			CheckParameterTyping(tt.src, diags)

			if diags.Errors() != tt.errors {
				t.Fatalf("expected %d errors, got %+v", tt.errors, diags.Events())
			}
		})
	}

	t.Run("message quotes the signature line", func(t *testing.T) {
		diags := &Diagnostics{}
		CheckParameterTyping("main {}\n\tfunction move(int dx, dy) {\n}", diags)

		events := diags.Events()
		if len(events) != 1 || events[0].Line != 2 {
			t.Fatalf("expected one error on line 2, got %+v", events)
		}

		if !strings.Contains(events[0].Message, "move") || !strings.HasSuffix(events[0].Message, "function move(int dx, dy) {") {
			t.Fatalf("unexpected message %q", events[0].Message)
		}
	})
}

func TestCheckTrailingColon(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		lines []int
	}{
		{"case label", "switch (a) {\n\tcase 1:\n}", []int{2}},
		{"trailing comment", "x = 1: // typo", []int{1}},
		{"colon in comment", "x = 1; // note:", nil},
		{"colon mid line", "x = a ? b : c;", nil},
		{"several", "a:\nb;\nc:", []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := &Diagnostics{}
			CheckTrailingColon(tt.src, diags)

			var lines []int
			for _, e := range diags.Events() {
				if e.Kind != m.DiagnosticError {
					t.Fatalf("unexpected kind %s", e.Kind)
				}

				lines = append(lines, e.Line)
			}

			if len(lines) != len(tt.lines) {
				t.Fatalf("expected errors on %v, got %v", tt.lines, lines)
			}

			for i := range lines {
				if lines[i] != tt.lines[i] {
					t.Fatalf("expected errors on %v, got %v", tt.lines, lines)
				}
			}
		})
	}
}

func TestCheckStringLiterals(t *testing.T) {
	diags := &Diagnostics{}

	CheckStringLiterals("a = \"open\nb = \"ok\";", diags)

	events := diags.Events()
	if len(events) != 1 || events[0].Line != 1 || events[0].Kind != m.DiagnosticWarning {
		t.Fatalf("expected one warning on line 1, got %+v", events)
	}
}
