package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

func TestDiagnostics(t *testing.T) {
	diags := &Diagnostics{}
	diags.Warnf(5, "late %s", "warning")
	diags.Errorf(2, "early error %d", 1)
	diags.Warnf(2, "same line")

	assert.Equal(t, 1, diags.Errors())
	assert.Equal(t, 2, diags.Warnings())
	assert.Equal(t, []m.Diagnostic{
		{Kind: m.DiagnosticError, Message: "early error 1", Line: 2},
		{Kind: m.DiagnosticWarning, Message: "same line", Line: 2},
		{Kind: m.DiagnosticWarning, Message: "late warning", Line: 5},
	}, diags.Events())
}

func TestDiagnostics_Merge(t *testing.T) {
	a := &Diagnostics{}
	a.Errorf(1, "a")

	b := &Diagnostics{}
	b.Warnf(1, "b")

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, 1, a.Errors())
	assert.Equal(t, 1, a.Warnings())
	assert.Len(t, b.Events(), 1)
}

func TestDiagnostics_Empty(t *testing.T) {
	diags := &Diagnostics{}

	assert.Zero(t, diags.Errors())
	assert.Empty(t, diags.Events())
	assert.Equal(t, "warning: line 3: x", m.Diagnostic{Kind: m.DiagnosticWarning, Line: 3, Message: "x"}.String())
}
