// Package cmd provides the root command and CLI setup for gpcobf.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/gpcobf/internal/adapter"
	"github.com/mouse-blink/gpcobf/internal/config"
	"github.com/mouse-blink/gpcobf/internal/controller"
	"github.com/mouse-blink/gpcobf/internal/domain"
	"github.com/mouse-blink/gpcobf/internal/logger"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

// workflow is built from the loaded configuration before a command runs,
// unless one was injected beforehand.
var workflow domain.Workflow

// cfg is the configuration of the running command.
var cfg *config.Config

var configFlag string

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"reports":       "reports",
	"report-format": "report_format",
	"parallel":      "parallel",
	"suffix":        "suffix",
	"suffix-length": "suffix_length",
	"unique-names":  "unique_names",
	"seed":          "seed",
	"strict-define": "require_define_semicolon",
	"categories":    "categories",
	"keep":          "keep",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gpcobf [file]",
		Short: "GPC script identifier obfuscator",
		Long: `gpcobf renames the identifiers of GPC scripts (defines, variables, arrays,
functions, parameters, string constants, combos and enums) to random names,
leaving string literals and program behaviour untouched.

The obfuscated script is written next to the source as <name>_obfuscated.gpc.
Without an argument the script path is asked for interactively.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.RunArgs{
				InputArgs: inputArgs(args),
				Reports:   m.Path(cfg.Reports),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ./"+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("reports", "", "directory obfuscation reports are saved to and read from")
	cmd.PersistentFlags().String("report-format", "yaml", "report format: yaml or cbor")
	addEngineFlags(cmd.Flags())

	return cmd
}

// addEngineFlags registers the flags shared by the commands that run the engine.
func addEngineFlags(flags *pflag.FlagSet) {
	flags.IntP("parallel", "p", 1, "number of scripts processed in parallel")
	flags.StringP("suffix", "o", adapter.DefaultOutputSuffix, "suffix replacing the extension of obfuscated scripts")
	flags.Int("suffix-length", 8, "length of the random part of generated names")
	flags.Bool("unique-names", true, "resample generated names that collide with existing tokens")
	flags.Uint64("seed", 0, "seed for name generation (0 picks a random seed)")
	flags.Bool("strict-define", false, "require a trailing ';' on define declarations")
	flags.StringSlice("categories", nil, "identifier categories to rename (default all)")
	flags.StringSlice("keep", nil, "identifiers that are never renamed")
}

// setup loads the configuration, installs the logger and builds the workflow.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	loaded, err := config.Load(v, configFlag)
	if err != nil {
		return err
	}

	cfg = loaded
	logger.Setup(cfg.LogLevel)

	if workflow != nil {
		return nil
	}

	workflow, err = newWorkflow(cmd, cfg)

	return err
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

func newWorkflow(cmd *cobra.Command, cfg *config.Config) (domain.Workflow, error) {
	engine, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}

	format, err := adapter.ParseReportFormat(cfg.ReportFormat)
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(format),
		ui,
		engine,
	), nil
}

func newEngine(cfg *config.Config) (domain.Engine, error) {
	categories, err := cfg.EngineCategories()
	if err != nil {
		return nil, err
	}

	prefixes, err := cfg.EnginePrefixes()
	if err != nil {
		return nil, err
	}

	genOpts := []domain.NameGeneratorOption{
		domain.WithSuffixLength(cfg.SuffixLength),
		domain.WithUniqueness(cfg.UniqueNames),
	}
	if cfg.Seed != 0 {
		genOpts = append(genOpts, domain.WithSeed(cfg.Seed))
	}

	return domain.NewEngine(
		domain.WithNameGenerator(func() domain.NameGenerator {
			return domain.NewNameGenerator(genOpts...)
		}),
		domain.WithRequireDefineSemicolon(cfg.RequireDefineSemicolon),
		domain.WithCategories(categories...),
		domain.WithPrefixes(prefixes),
		domain.WithKeep(cfg.Keep...),
	), nil
}

func inputArgs(args []string) domain.InputArgs {
	return domain.InputArgs{
		Paths:   parsePaths(args),
		Suffix:  cfg.Suffix,
		Threads: cfg.Parallel,
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, domain.ErrDiagnostics) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
