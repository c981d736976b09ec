package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 0, 0, 2)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
	tableContainerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Margin(0, 1).
				Padding(0, 1)
)

// TUI implements UI using lipgloss styling and Bubble Tea programs
// for the interactive parts.
type TUI struct {
	input  io.Reader
	output io.Writer
	mode   StartMode
	// run executes an interactive program; replaced in tests.
	run func(model tea.Model, options ...tea.ProgramOption) (tea.Model, error)
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:  input,
		output: output,
		run: func(model tea.Model, options ...tea.ProgramOption) (tea.Model, error) {
			return tea.NewProgram(model, options...).Run()
		},
	}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = newStartConfig(options).mode
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {}

// PromptPath asks for a script path with a text input.
func (t *TUI) PromptPath() (m.Path, error) {
	final, err := t.run(newPromptModel(), tea.WithInput(t.input), tea.WithOutput(t.output))
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	prompt, ok := final.(promptModel)
	if !ok || prompt.canceled {
		return "", ErrNoPath
	}

	path := strings.TrimSpace(prompt.value())
	if path == "" {
		return "", ErrNoPath
	}

	return m.Path(path), nil
}

// DisplayFileResult prints where the script went and what was found in it.
func (t *TUI) DisplayFileResult(result m.FileResult) error {
	var b strings.Builder

	if result.Source.Encoding != "" && result.Source.Encoding != m.EncodingUTF8 {
		fmt.Fprintf(&b, "%s %s is not valid UTF-8, decoded as %s\n",
			warningStyle.Render("!"), result.Source.Origin, result.Source.Encoding)
	}

	fmt.Fprintf(&b, "%s Script processed! Saved as: %s %s\n",
		okStyle.Render("✅"),
		pathStyle.Render(string(result.Output)),
		accentStyle.Render(fmt.Sprintf("(%d renamed)", result.Result.RenameCount())),
	)

	for _, d := range result.Result.Diagnostics {
		b.WriteString("   " + renderDiagnostic(d) + "\n")
	}

	_, _ = fmt.Fprint(t.output, b.String())

	return nil
}

// DisplayRenames prints the rename map, or opens a browser when it does
// not fit on screen.
func (t *TUI) DisplayRenames(results []m.FileResult) error {
	msg := renamesMsg{files: len(results)}
	for _, result := range results {
		msg.renames = append(msg.renames,
			renameItems(string(result.Source.Origin), renameRows(result.Result.Renames))...)
	}

	if !t.needsPagination(len(msg.renames) + len(results)*2) {
		_, _ = fmt.Fprint(t.output, renderRenames(msg))
		return nil
	}

	model := newRenameModel().handleRenamesMsg(msg)

	_, err := t.run(model, tea.WithInput(t.input), tea.WithOutput(t.output), tea.WithAltScreen())
	if err != nil {
		return fmt.Errorf("rename browser: %w", err)
	}

	return nil
}

// DisplayDiagnostics prints the findings of every script.
func (t *TUI) DisplayDiagnostics(results []m.FileResult) error {
	var b strings.Builder

	for _, result := range results {
		b.WriteString(pathStyle.Render(string(result.Source.Origin)) + "\n")

		if len(result.Result.Diagnostics) == 0 {
			b.WriteString("   " + okStyle.Render("no issues found") + "\n")
			continue
		}

		for _, d := range result.Result.Diagnostics {
			b.WriteString("   " + renderDiagnostic(d) + "\n")
		}
	}

	_, _ = fmt.Fprint(t.output, b.String())

	return nil
}

// DisplayReports prints one line per saved report.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(t.output, helpStyle.Render("No reports found"))
		return nil
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("📄 Saved Reports") + "\n\n")

	for _, r := range reports {
		renames := 0
		for _, list := range r.Renames {
			renames += len(list)
		}

		fmt.Fprintf(&b, "  %s → %s  %s  %s  %s\n",
			pathStyle.Render(string(r.Source)),
			string(r.Output),
			accentStyle.Render(fmt.Sprintf("%d renamed", renames)),
			errorStyle.Render(fmt.Sprintf("%d error(s)", r.Errors)),
			warningStyle.Render(fmt.Sprintf("%d warning(s)", r.Warnings)),
		)
	}

	_, _ = fmt.Fprint(t.output, b.String())

	return nil
}

// DisplaySummary prints the final counts.
func (t *TUI) DisplaySummary(results []m.FileResult) {
	s := summarize(results)

	errs := fmt.Sprintf("%d error(s)", s.errors)
	if s.errors > 0 {
		errs = errorStyle.Render(errs)
	}

	warnings := fmt.Sprintf("%d warning(s)", s.warnings)
	if s.warnings > 0 {
		warnings = warningStyle.Render(warnings)
	}

	if t.mode == ModeCheck {
		_, _ = fmt.Fprintln(t.output, summaryStyle.Render(
			fmt.Sprintf("Checked %d file(s): %s, %s", s.files, errs, warnings)))

		return
	}

	_, _ = fmt.Fprintln(t.output, summaryStyle.Render(fmt.Sprintf("Processed %d file(s): %s renamed, %s, %s",
		s.files, accentStyle.Render(fmt.Sprintf("%d", s.renames)), errs, warnings)))
}

func (t *TUI) needsPagination(rows int) bool {
	file, ok := t.output.(*os.File)
	if !ok {
		return false
	}

	_, height, err := term.GetSize(int(file.Fd()))
	if err != nil || height <= 0 {
		return false
	}

	return rows > height-4
}

func renderRenames(msg renamesMsg) string {
	var b strings.Builder

	file := ""

	for _, r := range msg.renames {
		if r.file != file {
			file = r.file
			b.WriteString(pathStyle.Render(file) + "\n")
		}

		name := r.old + " → " + r.new
		if r.scope != "" {
			name += " (" + r.scope + ")"
		}

		fmt.Fprintf(&b, "  %s  %s\n",
			warningStyle.Width(categoryWidth).Render(r.category),
			accentStyle.Render(name))
	}

	if len(msg.renames) == 0 {
		b.WriteString(helpStyle.Render("No identifiers renamed") + "\n")
	}

	return b.String()
}

func renderDiagnostic(d m.Diagnostic) string {
	kind := warningStyle.Render(string(d.Kind))
	if d.Kind == m.DiagnosticError {
		kind = errorStyle.Render(string(d.Kind))
	}

	return fmt.Sprintf("%s line %d: %s", kind, d.Line, d.Message)
}
