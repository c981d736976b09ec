package adapter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2s"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

// ReportFormat selects the encoding of persisted reports.
type ReportFormat string

const (
	// ReportFormatYAML writes human readable reports.
	ReportFormatYAML ReportFormat = "yaml"
	// ReportFormatCBOR writes compact binary reports.
	ReportFormatCBOR ReportFormat = "cbor"
)

const indexName = "_index"

// ParseReportFormat validates a format name. Empty means YAML.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(name)) {
	case "", ReportFormatYAML:
		return ReportFormatYAML, nil
	case ReportFormatCBOR:
		return ReportFormatCBOR, nil
	default:
		return "", fmt.Errorf("unknown report format %q", name)
	}
}

// ReportStore persists and retrieves rename reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
}

// LocalReportStore keeps one file per source script in a reports directory.
type LocalReportStore struct {
	format ReportFormat
}

// NewReportStore constructs a ReportStore writing the given format.
func NewReportStore(format ReportFormat) ReportStore {
	if format == "" {
		format = ReportFormatYAML
	}

	return &LocalReportStore{format: format}
}

type indexEntry struct {
	TotalFiles    int         `yaml:"total_files" cbor:"total_files"`
	TotalRenames  int         `yaml:"total_renames" cbor:"total_renames"`
	TotalErrors   int         `yaml:"total_errors" cbor:"total_errors"`
	TotalWarnings int         `yaml:"total_warnings" cbor:"total_warnings"`
	Reports       []indexItem `yaml:"reports" cbor:"reports"`
}

type indexItem struct {
	File    string `yaml:"file" cbor:"file"`
	Source  m.Path `yaml:"source" cbor:"source"`
	Renames int    `yaml:"renames" cbor:"renames"`
}

// SaveReports writes each report to <dir>/<hash>.<format>. The hash depends
// on the source path only, so re-running overwrites the previous report.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports directory is empty")
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		data, err := rs.marshal(report)
		if err != nil {
			return fmt.Errorf("encode report for %s: %w", report.Source, err)
		}

		file := filepath.Join(string(path), rs.computeReportHash(report)+"."+string(rs.format))
		if err := os.WriteFile(file, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", file, err)
		}
	}

	return nil
}

// LoadReports reads every report of the configured format in path, sorted by
// source path. A missing directory yields no reports.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != "."+string(rs.format) || strings.HasPrefix(name, indexName) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(path), name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}

		var report m.Report
		if err := rs.unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", name, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Source < reports[j].Source
	})

	return reports, nil
}

// RegenerateIndex rewrites <dir>/_index.<format> from the reports on disk.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	reports, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	idx := indexEntry{TotalFiles: len(reports)}

	for _, report := range reports {
		renames := 0
		for _, list := range report.Renames {
			renames += len(list)
		}

		idx.TotalRenames += renames
		idx.TotalErrors += report.Errors
		idx.TotalWarnings += report.Warnings
		idx.Reports = append(idx.Reports, indexItem{
			File:    rs.computeReportHash(report) + "." + string(rs.format),
			Source:  report.Source,
			Renames: renames,
		})
	}

	data, err := rs.marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	return os.WriteFile(filepath.Join(string(path), indexName+"."+string(rs.format)), data, 0o600)
}

func (rs *LocalReportStore) computeReportHash(report m.Report) string {
	sum := blake2s.Sum256([]byte(report.Source))
	return hex.EncodeToString(sum[:8])
}

func (rs *LocalReportStore) marshal(v any) ([]byte, error) {
	if rs.format == ReportFormatCBOR {
		return cbor.Marshal(v)
	}

	return yaml.Marshal(v)
}

func (rs *LocalReportStore) unmarshal(data []byte, v any) error {
	if rs.format == ReportFormatCBOR {
		return cbor.Unmarshal(data, v)
	}

	return yaml.Unmarshal(data, v)
}
