package domain

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

// Diagnostics accumulates the non-fatal findings of one engine run. Each
// stage records into it and the engine reads the totals once at the end.
type Diagnostics struct {
	events []m.Diagnostic
}

// Errorf records an error-kind diagnostic at line.
func (d *Diagnostics) Errorf(line int, format string, args ...any) {
	d.add(m.DiagnosticError, line, format, args...)
}

// Warnf records a warning-kind diagnostic at line.
func (d *Diagnostics) Warnf(line int, format string, args ...any) {
	d.add(m.DiagnosticWarning, line, format, args...)
}

func (d *Diagnostics) add(kind m.DiagnosticKind, line int, format string, args ...any) {
	d.events = append(d.events, m.Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	})
}

// Merge appends every event of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.events = append(d.events, other.events...)
}

// Errors returns the number of error-kind events.
func (d *Diagnostics) Errors() int {
	return d.count(m.DiagnosticError)
}

// Warnings returns the number of warning-kind events.
func (d *Diagnostics) Warnings() int {
	return d.count(m.DiagnosticWarning)
}

func (d *Diagnostics) count(kind m.DiagnosticKind) int {
	n := 0

	for _, e := range d.events {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

// Events returns the recorded diagnostics ordered by line. Events on the same
// line keep their recording order.
func (d *Diagnostics) Events() []m.Diagnostic {
	events := make([]m.Diagnostic, len(d.events))
	copy(events, d.events)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Line < events[j].Line
	})

	return events
}
