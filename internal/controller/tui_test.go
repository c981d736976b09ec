package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

func newTestTUI(final tea.Model, runErr error) (*TUI, *bytes.Buffer, *int) {
	var buf bytes.Buffer

	calls := 0
	tui := NewTUI(strings.NewReader(""), &buf)
	tui.run = func(model tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		calls++
		if final == nil {
			return model, runErr
		}

		return final, runErr
	}

	return tui, &buf, &calls
}

func typed(model promptModel, text string) promptModel {
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(promptModel)
}

func TestTUI_PromptPath(t *testing.T) {
	prompt := typed(newPromptModel(), " scripts/a.gpc ")
	tui, _, calls := newTestTUI(prompt, nil)

	path, err := tui.PromptPath()
	if err != nil {
		t.Fatalf("PromptPath() error = %v", err)
	}

	if path != "scripts/a.gpc" {
		t.Fatalf("PromptPath() = %q", path)
	}

	if *calls != 1 {
		t.Fatalf("run called %d times, want 1", *calls)
	}
}

func TestTUI_PromptPath_Canceled(t *testing.T) {
	prompt := typed(newPromptModel(), "a.gpc")
	next, _ := prompt.Update(tea.KeyMsg{Type: tea.KeyEsc})

	tui, _, _ := newTestTUI(next, nil)

	if _, err := tui.PromptPath(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("PromptPath() error = %v, want ErrNoPath", err)
	}
}

func TestTUI_PromptPath_RunError(t *testing.T) {
	boom := errors.New("boom")
	tui, _, _ := newTestTUI(nil, boom)

	if _, err := tui.PromptPath(); !errors.Is(err, boom) {
		t.Fatalf("PromptPath() error = %v, want boom", err)
	}
}

func TestPromptModel_EnterQuits(t *testing.T) {
	prompt := typed(newPromptModel(), "x.gpc")

	next, cmd := prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	done := next.(promptModel)
	if !done.done || done.value() != "x.gpc" {
		t.Fatalf("done = %v value = %q", done.done, done.value())
	}

	if done.View() != "" {
		t.Fatalf("View() after enter = %q, want empty", done.View())
	}
}

func TestPromptModel_View(t *testing.T) {
	view := newPromptModel().View()
	if !strings.Contains(view, "Enter the name of your GPC script file") {
		t.Fatalf("View() = %q", view)
	}
}

func TestTUI_DisplayRenames_StaticOutput(t *testing.T) {
	tui, buf, calls := newTestTUI(nil, nil)

	if err := tui.DisplayRenames([]m.FileResult{sampleResult()}); err != nil {
		t.Fatalf("DisplayRenames() error = %v", err)
	}

	if *calls != 0 {
		t.Fatalf("run called %d times, want 0 for a buffer", *calls)
	}

	assertContains(t, buf.String(), "scripts/a.gpc", "SPEED → def_Ab3kQ9xZ", "jump → fn_Zx81Lm2p")
}

func TestTUI_DisplayRenames_Empty(t *testing.T) {
	tui, buf, _ := newTestTUI(nil, nil)

	if err := tui.DisplayRenames(nil); err != nil {
		t.Fatalf("DisplayRenames() error = %v", err)
	}

	assertContains(t, buf.String(), "No identifiers renamed")
}

func TestTUI_DisplayFileResult(t *testing.T) {
	tui, buf, _ := newTestTUI(nil, nil)

	if err := tui.DisplayFileResult(sampleResult()); err != nil {
		t.Fatalf("DisplayFileResult() error = %v", err)
	}

	assertContains(t, buf.String(), "Script processed! Saved as:", "scripts/a_obfuscated.gpc", "line 4")
}

func TestTUI_DisplayDiagnostics(t *testing.T) {
	tui, buf, _ := newTestTUI(nil, nil)

	clean := m.FileResult{Source: m.Source{Origin: "b.gpc"}}

	if err := tui.DisplayDiagnostics([]m.FileResult{sampleResult(), clean}); err != nil {
		t.Fatalf("DisplayDiagnostics() error = %v", err)
	}

	assertContains(t, buf.String(), "line 4", "b.gpc", "no issues found")
}

func TestTUI_DisplayReportsAndSummary(t *testing.T) {
	tui, buf, _ := newTestTUI(nil, nil)

	if err := tui.DisplayReports([]m.Report{sampleResult().Report()}); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertContains(t, buf.String(), "Saved Reports", "2 renamed", "1 warning(s)")

	buf.Reset()

	_ = tui.Start(WithCheckMode())
	tui.DisplaySummary([]m.FileResult{sampleResult()})
	assertContains(t, buf.String(), "Checked 1 file(s)")
}

func TestRenameModel_HandlesRenames(t *testing.T) {
	model := newRenameModel()
	if !strings.Contains(model.View(), "Loading") {
		t.Fatalf("View() before data = %q", model.View())
	}

	items := renameItems("a.gpc", renameRows(sampleResult().Result.Renames))
	next, _ := model.Update(renamesMsg{files: 1, renames: items})
	next, _ = next.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := next.View()
	assertContains(t, view, "GPC Rename Map", "SPEED", "def_Ab3kQ9xZ")

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command on q")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "…"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestAnimateScroll(t *testing.T) {
	if got := animateScroll("short", 10, 50); got != "short" {
		t.Fatalf("animateScroll() = %q, want unchanged", got)
	}

	if got := animateScroll("abcdefgh", 4, 0); got != "abc…" {
		t.Fatalf("animateScroll() before pause = %q", got)
	}

	if got := animateScroll("abcdefgh", 4, 6); got != "bcde" {
		t.Fatalf("animateScroll() after pause = %q", got)
	}
}

func TestRenameItem_FilterValue(t *testing.T) {
	item := renameItem{old: "SPEED", new: "def_x", category: "define"}
	if item.FilterValue() != "SPEED def_x define" {
		t.Fatalf("FilterValue() = %q", item.FilterValue())
	}
}
