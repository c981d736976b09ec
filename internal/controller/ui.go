// Package controller renders obfuscation results for the terminal.
package controller

import (
	"errors"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

// ErrNoPath is returned when the interactive prompt yields no path.
var ErrNoPath = errors.New("no script path given")

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
	ModeCheck
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to obfuscation mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithListMode sets the UI to rename listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithCheckMode sets the UI to diagnostics mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithViewMode sets the UI to saved report mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how results reach the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// PromptPath asks the operator for a script path.
	PromptPath() (m.Path, error)
	// DisplayFileResult reports one obfuscated script.
	DisplayFileResult(result m.FileResult) error
	// DisplayRenames lists the rename map of every script.
	DisplayRenames(results []m.FileResult) error
	// DisplayDiagnostics lists the findings of every script.
	DisplayDiagnostics(results []m.FileResult) error
	// DisplayReports shows reports saved by earlier runs.
	DisplayReports(reports []m.Report) error
	// DisplaySummary prints the final counts.
	DisplaySummary(results []m.FileResult)
}

type totals struct {
	files    int
	renames  int
	errors   int
	warnings int
}

func summarize(results []m.FileResult) totals {
	t := totals{files: len(results)}

	for _, r := range results {
		t.renames += r.Result.RenameCount()
		t.errors += r.Result.Errors
		t.warnings += r.Result.Warnings
	}

	return t
}

// renameRows flattens a rename map into category-ordered rows.
func renameRows(renames map[m.Category][]m.Rename) [][]string {
	var rows [][]string

	for _, category := range m.PipelineOrder {
		for _, r := range renames[category] {
			rows = append(rows, []string{string(category), r.Old, r.New, r.Scope})
		}
	}

	return rows
}
