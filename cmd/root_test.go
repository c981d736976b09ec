package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gpcobf/internal/config"
	"github.com/mouse-blink/gpcobf/internal/domain"
	domainmocks "github.com/mouse-blink/gpcobf/internal/domain/mocks"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

// withMockWorkflow swaps the package workflow for a mock for the duration of t.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow, originalConfigFlag := workflow, configFlag
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		configFlag = originalConfigFlag
	})

	return mockWorkflow
}

func newTestRoot(subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, &out
}

func TestRootCmd_ObfuscatesFileArgument(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Run(domain.RunArgs{
		InputArgs: domain.InputArgs{
			Paths:   []m.Path{"script.gpc"},
			Suffix:  "_obfuscated.gpc",
			Threads: 1,
		},
	}).Return(nil)

	cmd, _ := newTestRoot()
	cmd.SetArgs([]string{"script.gpc"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_NoArgumentLeavesPathsEmpty(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Paths) == 0
	})).Return(nil)

	cmd, _ := newTestRoot()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_RejectsSeveralFiles(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRoot()
	cmd.SetArgs([]string{"a.gpc", "b.gpc"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_InvalidCategory(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRoot()
	cmd.SetArgs([]string{"--categories", "define,macro", "a.gpc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "macro"`)
}

func TestRootCmd_ConfigFileAndFlagPrecedence(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	path := filepath.Join(t.TempDir(), "gpcobf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel: 4\nsuffix: _cfg.gpc\nreports: from-config\n"), 0o600))

	mockWorkflow.EXPECT().Run(domain.RunArgs{
		InputArgs: domain.InputArgs{
			Paths:   []m.Path{"a.gpc"},
			Suffix:  "_flag.gpc",
			Threads: 4,
		},
		Reports: "from-config",
	}).Return(nil)

	cmd, _ := newTestRoot()
	cmd.SetArgs([]string{"--config", path, "-o", "_flag.gpc", "a.gpc"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRoot()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "a.gpc"})

	require.Error(t, cmd.Execute())
}

func TestNewEngine_SeedIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42

	src := "define SPEED = 10;\nint x;\nmain { x = SPEED; }\n"

	first, err := newEngine(cfg)
	require.NoError(t, err)

	second, err := newEngine(cfg)
	require.NoError(t, err)

	a := first.Run(src)
	b := second.Run(src)

	assert.Equal(t, a.Output, b.Output)
	assert.NotContains(t, a.Output, "SPEED")
	assert.Equal(t, 2, a.RenameCount())
}

func TestNewEngine_HonoursCategoriesAndPrefixes(t *testing.T) {
	cfg := config.Default()
	cfg.Categories = []string{"define"}
	cfg.Prefixes = map[string]string{"define": "K_"}

	engine, err := newEngine(cfg)
	require.NoError(t, err)

	result := engine.Run("define SPEED = 10;\nint x;\n")

	require.Len(t, result.Renames[m.CategoryDefine], 1)
	assert.Regexp(t, `^K_[A-Za-z0-9]{8}$`, result.Renames[m.CategoryDefine][0].New)
	assert.Contains(t, result.Output, "int x;")
}

func TestNewEngine_KeepsConfiguredNames(t *testing.T) {
	cfg := config.Default()
	cfg.Keep = []string{"SPEED"}

	engine, err := newEngine(cfg)
	require.NoError(t, err)

	result := engine.Run("define SPEED = 10;\ndefine LIMIT = 2;\n")

	assert.Contains(t, result.Output, "define SPEED = 10;")
	assert.NotContains(t, result.Output, "LIMIT")
	assert.Equal(t, 1, result.RenameCount())
}

func TestNewWorkflow_RejectsUnknownReportFormat(t *testing.T) {
	cfg := config.Default()
	cfg.ReportFormat = "xml"

	_, err := newWorkflow(newRootCmd(), cfg)
	require.Error(t, err)
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"a.gpc", "./dir/..."}, parsePaths([]string{"a.gpc", "./dir/..."}))
	assert.Empty(t, parsePaths(nil))
}
