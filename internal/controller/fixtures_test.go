package controller

import m "github.com/mouse-blink/gpcobf/internal/model"

func sampleResult() m.FileResult {
	return m.FileResult{
		Source: m.Source{Origin: "scripts/a.gpc", Encoding: m.EncodingUTF8},
		Output: "scripts/a_obfuscated.gpc",
		Result: m.Result{
			Renames: map[m.Category][]m.Rename{
				m.CategoryDefine:   {{Old: "SPEED", New: "def_Ab3kQ9xZ"}},
				m.CategoryFunction: {{Old: "jump", New: "fn_Zx81Lm2p"}},
			},
			Diagnostics: []m.Diagnostic{
				{Kind: m.DiagnosticWarning, Line: 4, Message: "enum \"UP\" also appears inside a string literal"},
			},
			Warnings: 1,
		},
	}
}
