package model

import "fmt"

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind string

const (
	// DiagnosticError flags a likely source error.
	DiagnosticError DiagnosticKind = "error"
	// DiagnosticWarning flags a construct the pipeline handled conservatively.
	DiagnosticWarning DiagnosticKind = "warning"
)

// Diagnostic is a non-fatal observation about a script.
type Diagnostic struct {
	Kind    DiagnosticKind `yaml:"kind" cbor:"kind"`
	Message string         `yaml:"message" cbor:"message"`
	Line    int            `yaml:"line" cbor:"line"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: line %d: %s", d.Kind, d.Line, d.Message)
}

// Result is the outcome of running the engine over one script.
type Result struct {
	Output      string
	Renames     map[Category][]Rename
	Diagnostics []Diagnostic
	Errors      int
	Warnings    int
}

// RenameCount returns the total number of identifiers renamed.
func (r Result) RenameCount() int {
	total := 0
	for _, renames := range r.Renames {
		total += len(renames)
	}

	return total
}

// Report is the persisted summary for one processed file.
type Report struct {
	Source      Path                  `yaml:"source" cbor:"source"`
	Output      Path                  `yaml:"output,omitempty" cbor:"output,omitempty"`
	Hash        string                `yaml:"hash" cbor:"hash"`
	Encoding    Encoding              `yaml:"encoding" cbor:"encoding"`
	Renames     map[Category][]Rename `yaml:"renames" cbor:"renames"`
	Diagnostics []Diagnostic          `yaml:"diagnostics,omitempty" cbor:"diagnostics,omitempty"`
	Errors      int                   `yaml:"errors" cbor:"errors"`
	Warnings    int                   `yaml:"warnings" cbor:"warnings"`
}

// FileResult pairs a source with what the engine produced for it.
type FileResult struct {
	Source Source
	Output Path
	Result Result
}

// Report converts the file result into its persisted form.
func (fr FileResult) Report() Report {
	return Report{
		Source:      fr.Source.Origin,
		Output:      fr.Output,
		Hash:        fr.Source.Hash,
		Encoding:    fr.Source.Encoding,
		Renames:     fr.Result.Renames,
		Diagnostics: fr.Result.Diagnostics,
		Errors:      fr.Result.Errors,
		Warnings:    fr.Result.Warnings,
	}
}
