// Package config loads gpcobf settings from defaults, a YAML file, GPCOBF_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/gpcobf/internal/domain/gpc"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "GPCOBF"

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = "gpcobf.yaml"

// Config holds every tunable of a run.
type Config struct {
	Suffix                 string            `yaml:"suffix" mapstructure:"suffix"`
	SuffixLength           int               `yaml:"suffix_length" mapstructure:"suffix_length"`
	UniqueNames            bool              `yaml:"unique_names" mapstructure:"unique_names"`
	Seed                   uint64            `yaml:"seed" mapstructure:"seed"`
	RequireDefineSemicolon bool              `yaml:"require_define_semicolon" mapstructure:"require_define_semicolon"`
	Categories             []string          `yaml:"categories" mapstructure:"categories"`
	Prefixes               map[string]string `yaml:"prefixes,omitempty" mapstructure:"prefixes"`
	Keep                   []string          `yaml:"keep,omitempty" mapstructure:"keep"`
	Parallel               int               `yaml:"parallel" mapstructure:"parallel"`
	Reports                string            `yaml:"reports,omitempty" mapstructure:"reports"`
	ReportFormat           string            `yaml:"report_format" mapstructure:"report_format"`
	LogLevel               string            `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	categories := make([]string, 0, len(m.PipelineOrder))
	for _, c := range m.PipelineOrder {
		categories = append(categories, string(c))
	}

	return &Config{
		Suffix:                 "_obfuscated.gpc",
		SuffixLength:           8,
		UniqueNames:            true,
		Seed:                   0,
		RequireDefineSemicolon: false,
		Categories:             categories,
		Parallel:               1,
		ReportFormat:           "yaml",
		LogLevel:               "warn",
	}
}

// SetDefaults registers the defaults on v so flags and env vars can layer on top.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("suffix", d.Suffix)
	v.SetDefault("suffix_length", d.SuffixLength)
	v.SetDefault("unique_names", d.UniqueNames)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("require_define_semicolon", d.RequireDefineSemicolon)
	v.SetDefault("categories", d.Categories)
	v.SetDefault("parallel", d.Parallel)
	v.SetDefault("reports", d.Reports)
	v.SetDefault("report_format", d.ReportFormat)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads configPath (or ./gpcobf.yaml when empty and present) into v and
// returns the merged configuration. An explicitly named file must exist.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, filepath.Ext(DefaultFileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.SuffixLength <= 0 {
		return fmt.Errorf("suffix_length must be positive, got %d", c.SuffixLength)
	}

	if c.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, got %d", c.Parallel)
	}

	if _, err := c.EngineCategories(); err != nil {
		return err
	}

	for _, name := range c.Keep {
		if !gpc.IsIdentifier(name) {
			return fmt.Errorf("keep entry %q is not a valid identifier", name)
		}
	}

	_, err := c.EnginePrefixes()

	return err
}

// EngineCategories converts the configured category names.
func (c *Config) EngineCategories() ([]m.Category, error) {
	categories := make([]m.Category, 0, len(c.Categories))

	for _, name := range c.Categories {
		category, ok := m.ParseCategory(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}

		categories = append(categories, category)
	}

	return categories, nil
}

// EnginePrefixes converts the configured prefix overrides.
func (c *Config) EnginePrefixes() (map[m.Category]string, error) {
	prefixes := make(map[m.Category]string, len(c.Prefixes))

	names := make([]string, 0, len(c.Prefixes))
	for name := range c.Prefixes {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		category, ok := m.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q in prefixes", name)
		}

		prefix := c.Prefixes[name]
		if !gpc.IsIdentifier(prefix) {
			return nil, fmt.Errorf("prefix %q for %s is not a valid identifier", prefix, name)
		}

		prefixes[category] = prefix
	}

	return prefixes, nil
}

// Save writes cfg as YAML to configPath, creating parent directories.
func Save(configPath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("error creating directory for config file %s: %w", configPath, err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("error writing config file %s: %w", configPath, err)
	}

	return nil
}
