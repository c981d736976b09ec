package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/gpcobf/internal/adapter"
	"github.com/mouse-blink/gpcobf/internal/controller"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

const outputPerm = 0o644

var (
	// ErrNoInput is returned when the given paths resolve to no script.
	ErrNoInput = errors.New("no GPC scripts found")
	// ErrDiagnostics is returned by Check when an error-level diagnostic was found.
	ErrDiagnostics = errors.New("scripts contain errors")
)

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Run(args RunArgs) error
	List(args ListArgs) error
	Check(args CheckArgs) error
	View(args ViewArgs) error
}

// InputArgs selects the scripts an operation works on. With no paths the
// operator is prompted for one.
type InputArgs struct {
	Paths   []m.Path
	Suffix  string
	Threads int
}

// RunArgs configures an obfuscation run.
type RunArgs struct {
	InputArgs
	// Reports is the directory reports are saved to; empty disables them.
	Reports m.Path
}

// ListArgs configures a rename preview.
type ListArgs struct {
	InputArgs
}

// CheckArgs configures a diagnostics-only pass.
type CheckArgs struct {
	InputArgs
}

// ViewArgs points at previously saved reports.
type ViewArgs struct {
	Reports m.Path
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	engine      Engine
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	engine Engine,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		engine:      engine,
	}
}

// Run obfuscates every script and writes it next to its source.
func (w *workflow) Run(args RunArgs) error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	results, err := w.process(args.InputArgs, func(src m.Source) (m.FileResult, error) {
		result := w.engine.Run(src.Content)
		output := w.fsAdapter.OutputPath(src.Origin, args.Suffix)

		if err := w.fsAdapter.WriteFile(output, []byte(result.Output), outputPerm); err != nil {
			return m.FileResult{}, fmt.Errorf("write %s: %w", output, err)
		}

		slog.Info("script obfuscated", "source", src.Origin, "output", output, "renamed", result.RenameCount())

		return m.FileResult{Source: src, Output: output, Result: result}, nil
	})
	if err != nil {
		return err
	}

	if err := w.saveReports(args.Reports, results); err != nil {
		return err
	}

	for _, result := range results {
		if err := w.ui.DisplayFileResult(result); err != nil {
			return err
		}
	}

	w.ui.DisplaySummary(results)

	return nil
}

// List previews the renames of every script without writing anything.
func (w *workflow) List(args ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	results, err := w.process(args.InputArgs, func(src m.Source) (m.FileResult, error) {
		return m.FileResult{Source: src, Result: w.engine.Run(src.Content)}, nil
	})
	if err != nil {
		return err
	}

	return w.ui.DisplayRenames(results)
}

// Check runs the structural diagnostics only.
func (w *workflow) Check(args CheckArgs) error {
	if err := w.ui.Start(controller.WithCheckMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	results, err := w.process(args.InputArgs, func(src m.Source) (m.FileResult, error) {
		return m.FileResult{Source: src, Result: w.engine.Check(src.Content)}, nil
	})
	if err != nil {
		return err
	}

	if err := w.ui.DisplayDiagnostics(results); err != nil {
		return err
	}

	w.ui.DisplaySummary(results)

	for _, result := range results {
		if result.Result.Errors > 0 {
			return ErrDiagnostics
		}
	}

	return nil
}

// View shows reports saved by earlier runs.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.ui.DisplayReports(reports)
}

// process resolves the inputs and applies fn to every script, at most
// args.Threads at a time. Results are sorted by source path.
func (w *workflow) process(args InputArgs, fn func(m.Source) (m.FileResult, error)) ([]m.FileResult, error) {
	paths, err := w.resolve(args)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	var (
		mu      sync.Mutex
		results = make([]m.FileResult, 0, len(paths))
		group   errgroup.Group
	)

	group.SetLimit(threads)

	for _, path := range paths {
		group.Go(func() error {
			src, err := w.fsAdapter.ReadSource(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			result, err := fn(src)
			if err != nil {
				return err
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Source.Origin < results[j].Source.Origin
	})

	return results, nil
}

func (w *workflow) resolve(args InputArgs) ([]m.Path, error) {
	roots := args.Paths
	if len(roots) == 0 {
		path, err := w.ui.PromptPath()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
		}

		roots = []m.Path{path}
	}

	paths, err := w.fsAdapter.Get(roots, w.skipSuffix(args.Suffix))
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	return paths, nil
}

func (w *workflow) skipSuffix(suffix string) string {
	if suffix == "" {
		return adapter.DefaultOutputSuffix
	}

	return suffix
}

func (w *workflow) saveReports(dir m.Path, results []m.FileResult) error {
	if dir == "" {
		return nil
	}

	reports := make([]m.Report, 0, len(results))
	for _, result := range results {
		reports = append(reports, result.Report())
	}

	if err := w.reportStore.SaveReports(dir, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.reportStore.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("regenerate index: %w", err)
	}

	return nil
}
