package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

// SimpleUI implements UI with plain text and tables on the command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options).mode
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// PromptPath reads one line from the command's input.
func (s *SimpleUI) PromptPath() (m.Path, error) {
	s.printf("Enter the name of your GPC script file: ")

	line, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	path := strings.TrimSpace(line)

	if path == "" {
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoPath, err)
		}

		return "", ErrNoPath
	}

	return m.Path(path), nil
}

// DisplayFileResult prints where the script went and what was found in it.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) error {
	if result.Source.Encoding != "" && result.Source.Encoding != m.EncodingUTF8 {
		s.printf("warning: %s is not valid UTF-8, decoded as %s\n", result.Source.Origin, result.Source.Encoding)
	}

	s.printf("Script processed: %s -> %s (%d identifiers renamed)\n",
		result.Source.Origin, result.Output, result.Result.RenameCount())

	for _, d := range result.Result.Diagnostics {
		s.printf("  %s\n", d)
	}

	return nil
}

// DisplayRenames prints a rename table per script.
func (s *SimpleUI) DisplayRenames(results []m.FileResult) error {
	if len(results) == 0 {
		s.printf("No scripts found\n")
		return nil
	}

	for _, result := range results {
		rows := renameRows(result.Result.Renames)

		var buf bytes.Buffer

		table := newTable(&buf, []string{"Category", "Original", "Renamed", "Scope"})
		table.AppendBulk(rows)
		table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(rows)), "", ""})
		table.Render()

		s.printf("\n%s\n%s", result.Source.Origin, buf.String())
	}

	return nil
}

// DisplayDiagnostics prints a diagnostics table per script.
func (s *SimpleUI) DisplayDiagnostics(results []m.FileResult) error {
	for _, result := range results {
		if len(result.Result.Diagnostics) == 0 {
			s.printf("%s: no issues found\n", result.Source.Origin)
			continue
		}

		var buf bytes.Buffer

		table := newTable(&buf, []string{"Line", "Kind", "Message"})
		for _, d := range result.Result.Diagnostics {
			table.Append([]string{fmt.Sprintf("%d", d.Line), string(d.Kind), d.Message})
		}

		table.Render()
		s.printf("\n%s\n%s", result.Source.Origin, buf.String())
	}

	return nil
}

// DisplayReports prints one row per saved report.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	var (
		buf                     bytes.Buffer
		renames, errs, warnings int
	)

	table := newTable(&buf, []string{"Source", "Output", "Renames", "Errors", "Warnings"})

	for _, r := range reports {
		count := 0
		for _, list := range r.Renames {
			count += len(list)
		}

		renames += count
		errs += r.Errors
		warnings += r.Warnings

		table.Append([]string{
			string(r.Source),
			string(r.Output),
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%d", r.Errors),
			fmt.Sprintf("%d", r.Warnings),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		fmt.Sprintf("%d", renames),
		fmt.Sprintf("%d", errs),
		fmt.Sprintf("%d", warnings),
	})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplaySummary prints the final counts.
func (s *SimpleUI) DisplaySummary(results []m.FileResult) {
	t := summarize(results)

	switch s.mode {
	case ModeCheck:
		s.printf("\nChecked %d file(s): %d error(s), %d warning(s)\n", t.files, t.errors, t.warnings)
	default:
		s.printf("\nProcessed %d file(s): %d identifiers renamed, %d error(s), %d warning(s)\n",
			t.files, t.renames, t.errors, t.warnings)
	}
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
