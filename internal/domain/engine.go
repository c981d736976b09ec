package domain

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

// DefaultPrefixes holds the naming prefix of every category.
var DefaultPrefixes = map[m.Category]string{
	m.CategoryUint8Array:        "uint8Arr_",
	m.CategoryDefine:            "def_",
	m.CategoryFunction:          "fn_",
	m.CategoryFunctionParameter: "arg_",
	m.CategoryScalarVariable:    "var_",
	m.CategoryIntArray:          "varArr_",
	m.CategoryInt2DArray:        "intArr2D_",
	m.CategoryInt16Array:        "int16Arr_",
	m.CategoryInt16Array2D:      "int16Arr2D_",
	m.CategoryStringConstant:    "str_",
	m.CategoryStringArray:       "strArr_",
	m.CategoryCombo:             "combo_",
	m.CategoryEnum:              "enum_",
}

// Engine renames the identifiers of one script.
type Engine interface {
	// Run strips comments, runs the structural checks and applies every
	// enabled category pass in pipeline order.
	Run(src string) m.Result
	// Check strips comments and runs the structural checks only.
	Check(src string) m.Result
}

// EngineOption configures an Engine.
type EngineOption func(*engine)

// WithNameGenerator sets the factory used to create one generator per run.
func WithNameGenerator(factory func() NameGenerator) EngineOption {
	return func(e *engine) {
		e.newGenerator = factory
	}
}

// WithRequireDefineSemicolon toggles the strict define declaration shape.
func WithRequireDefineSemicolon(strict bool) EngineOption {
	return func(e *engine) {
		e.extract.RequireDefineSemicolon = strict
	}
}

// WithCategories restricts the passes to the given categories. Pipeline order
// is kept regardless of argument order.
func WithCategories(categories ...m.Category) EngineOption {
	return func(e *engine) {
		if len(categories) == 0 {
			return
		}

		e.enabled = make(map[m.Category]bool, len(categories))
		for _, c := range categories {
			e.enabled[c] = true
		}
	}
}

// WithKeep leaves the named identifiers unchanged in every script, on top of
// any gpcobf:keep directives the script carries.
func WithKeep(names ...string) EngineOption {
	return func(e *engine) {
		e.keep = append(e.keep, names...)
	}
}

// WithPrefixes overrides naming prefixes per category.
func WithPrefixes(prefixes map[m.Category]string) EngineOption {
	return func(e *engine) {
		for c, p := range prefixes {
			if p != "" {
				e.prefixes[c] = p
			}
		}
	}
}

type engine struct {
	newGenerator func() NameGenerator
	extract      ExtractOptions
	enabled      map[m.Category]bool
	prefixes     map[m.Category]string
	keep         []string
}

// NewEngine creates an Engine with every category enabled.
func NewEngine(opts ...EngineOption) Engine {
	e := &engine{
		newGenerator: func() NameGenerator { return NewNameGenerator() },
		prefixes:     maps.Clone(DefaultPrefixes),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *engine) Check(src string) m.Result {
	diags := &Diagnostics{}
	text := StripComments(src, diags)
	runChecks(text, diags)

	return result(text, nil, diags)
}

func (e *engine) Run(src string) m.Result {
	keep := newKeepRule(e.keep...)
	mergeKeepRule(&keep, scanKeepDirectives(src))

	diags := &Diagnostics{}
	text := StripComments(src, diags)
	runChecks(text, diags)

	if keep.all {
		slog.Debug("script opted out of renaming")
		return result(text, nil, diags)
	}

	gen := e.newGenerator()
	gen.Reserve(slices.Collect(maps.Keys(gpc.Identifiers(text)))...)

	renames := make(map[m.Category][]m.Rename)

	for _, s := range e.stages(keep) {
		var applied []m.Rename

		text, applied = s.apply(text, gen, diags)
		if len(applied) > 0 {
			renames[s.category()] = applied
		}

		slog.Debug("category pass applied", "category", s.category(), "renamed", len(applied))
	}

	restoreScopes(renames)

	return result(text, renames, diags)
}

// restoreScopes points parameter scopes back at the original function names;
// the function pass runs first, so the scoper only saw the generated ones.
func restoreScopes(renames map[m.Category][]m.Rename) {
	original := make(map[string]string, len(renames[m.CategoryFunction]))
	for _, r := range renames[m.CategoryFunction] {
		original[r.New] = r.Old
	}

	params := renames[m.CategoryFunctionParameter]
	for i := range params {
		if old, ok := original[params[i].Scope]; ok {
			params[i].Scope = old
		}
	}
}

func runChecks(text string, diags *Diagnostics) {
	CheckStringLiterals(text, diags)
	CheckParameterTyping(text, diags)
	CheckTrailingColon(text, diags)
}

func result(text string, renames map[m.Category][]m.Rename, diags *Diagnostics) m.Result {
	return m.Result{
		Output:      text,
		Renames:     renames,
		Diagnostics: diags.Events(),
		Errors:      diags.Errors(),
		Warnings:    diags.Warnings(),
	}
}

func (e *engine) stages(keep keepRule) []stage {
	stages := make([]stage, 0, len(m.PipelineOrder))

	for _, c := range m.PipelineOrder {
		if e.enabled != nil && !e.enabled[c] {
			continue
		}

		prefix := e.prefixes[c]

		switch c {
		case m.CategoryFunctionParameter:
			stages = append(stages, parameterStage{prefix: prefix, keep: keep})
		case m.CategoryDefine:
			stages = append(stages, categoryStage{cat: c, prefix: prefix, opts: e.extract, keep: keep, decl: defineDeclaration(e.extract.RequireDefineSemicolon)})
		case m.CategoryFunction:
			stages = append(stages, categoryStage{cat: c, prefix: prefix, opts: e.extract, keep: keep, decl: functionDeclaration})
		case m.CategoryCombo:
			stages = append(stages, categoryStage{cat: c, prefix: prefix, opts: e.extract, keep: keep, decl: comboDeclaration})
		case m.CategoryEnum:
			stages = append(stages, categoryStage{cat: c, prefix: prefix, opts: e.extract, keep: keep, guarded: true})
		default:
			stages = append(stages, categoryStage{cat: c, prefix: prefix, opts: e.extract, keep: keep})
		}
	}

	return stages
}

// stage is one text-to-text pass of the pipeline.
type stage interface {
	category() m.Category
	apply(src string, gen NameGenerator, diags *Diagnostics) (string, []m.Rename)
}

// categoryStage renames the globally scoped names of one category.
type categoryStage struct {
	cat     m.Category
	prefix  string
	opts    ExtractOptions
	decl    *declaration
	guarded bool
	keep    keepRule
}

func (s categoryStage) category() m.Category { return s.cat }

func (s categoryStage) apply(src string, gen NameGenerator, diags *Diagnostics) (string, []m.Rename) {
	names := s.keep.filter(Extract(s.cat, src, s.opts))
	if len(names) == 0 {
		return src, nil
	}

	renames := BuildMapping(names, s.prefix, gen)

	if s.decl != nil {
		src = s.decl.rewrite(src, renames)
	}

	if s.guarded {
		return SubstituteGuarded(src, s.cat, renames, diags), renames
	}

	return Substitute(src, renames), renames
}

// parameterStage renames parameters within their own function.
type parameterStage struct {
	prefix string
	keep   keepRule
}

func (parameterStage) category() m.Category { return m.CategoryFunctionParameter }

func (s parameterStage) apply(src string, gen NameGenerator, diags *Diagnostics) (string, []m.Rename) {
	return scopeParameters(src, s.prefix, gen, diags, s.keep)
}
