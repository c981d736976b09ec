package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

func newSimpleUI(input string) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader(input))

	return NewSimpleUI(cmd), &buf
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_PromptPath(t *testing.T) {
	ui, buf := newSimpleUI("  scripts/a.gpc \n")

	path, err := ui.PromptPath()
	if err != nil {
		t.Fatalf("PromptPath() error = %v", err)
	}

	if path != "scripts/a.gpc" {
		t.Fatalf("PromptPath() = %q, want %q", path, "scripts/a.gpc")
	}

	assertContains(t, buf.String(), "Enter the name of your GPC script file")
}

func TestSimpleUI_PromptPath_WithoutNewline(t *testing.T) {
	ui, _ := newSimpleUI("a.gpc")

	path, err := ui.PromptPath()
	if err != nil {
		t.Fatalf("PromptPath() error = %v", err)
	}

	if path != "a.gpc" {
		t.Fatalf("PromptPath() = %q, want %q", path, "a.gpc")
	}
}

func TestSimpleUI_PromptPath_Empty(t *testing.T) {
	ui, _ := newSimpleUI("")

	if _, err := ui.PromptPath(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("PromptPath() error = %v, want ErrNoPath", err)
	}
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	ui, buf := newSimpleUI("")

	result := sampleResult()
	result.Source.Encoding = m.EncodingWindows1252

	if err := ui.DisplayFileResult(result); err != nil {
		t.Fatalf("DisplayFileResult() error = %v", err)
	}

	assertContains(t, buf.String(),
		"decoded as windows-1252",
		"scripts/a.gpc -> scripts/a_obfuscated.gpc",
		"2 identifiers renamed",
		"warning: line 4:",
	)
}

func TestSimpleUI_DisplayRenames_PrintsTable(t *testing.T) {
	ui, buf := newSimpleUI("")

	if err := ui.DisplayRenames([]m.FileResult{sampleResult()}); err != nil {
		t.Fatalf("DisplayRenames() error = %v", err)
	}

	output := buf.String()
	assertContains(t, output, "scripts/a.gpc", "SPEED", "def_Ab3kQ9xZ", "jump", "fn_Zx81Lm2p", "2")

	if strings.Index(output, "SPEED") > strings.Index(output, "jump") {
		t.Fatalf("defines should be listed before functions\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayRenames_Empty(t *testing.T) {
	ui, buf := newSimpleUI("")

	if err := ui.DisplayRenames(nil); err != nil {
		t.Fatalf("DisplayRenames() error = %v", err)
	}

	assertContains(t, buf.String(), "No scripts found")
}

func TestSimpleUI_DisplayDiagnostics(t *testing.T) {
	ui, buf := newSimpleUI("")

	clean := m.FileResult{Source: m.Source{Origin: "b.gpc"}}

	if err := ui.DisplayDiagnostics([]m.FileResult{sampleResult(), clean}); err != nil {
		t.Fatalf("DisplayDiagnostics() error = %v", err)
	}

	assertContains(t, buf.String(), "scripts/a.gpc", "4", "warning", "also appears inside", "b.gpc: no issues found")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newSimpleUI("")

	report := sampleResult().Report()

	if err := ui.DisplayReports([]m.Report{report}); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertContains(t, buf.String(), "scripts/a.gpc", "scripts/a_obfuscated.gpc", "TOTAL FILES 1")
}

func TestSimpleUI_DisplayReports_Empty(t *testing.T) {
	ui, buf := newSimpleUI("")

	if err := ui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertContains(t, buf.String(), "No reports found")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newSimpleUI("")

	if err := ui.Start(WithRunMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer ui.Close()

	ui.DisplaySummary([]m.FileResult{sampleResult()})
	assertContains(t, buf.String(), "Processed 1 file(s): 2 identifiers renamed, 0 error(s), 1 warning(s)")

	buf.Reset()

	if err := ui.Start(WithCheckMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplaySummary([]m.FileResult{sampleResult()})
	assertContains(t, buf.String(), "Checked 1 file(s): 0 error(s), 1 warning(s)")
}
