// Package adapter contains the filesystem and persistence adapters for the gpcobf CLI.
package adapter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/blake2s"
	"golang.org/x/text/encoding/charmap"

	m "github.com/mouse-blink/gpcobf/internal/model"
)

const (
	// ScriptExt is the extension of GPC scripts picked up from directories.
	ScriptExt = ".gpc"
	// DefaultOutputSuffix replaces the extension of an obfuscated script.
	DefaultOutputSuffix = "_obfuscated.gpc"
)

// ErrUndecodable is returned when a script is neither UTF-8 nor Windows-1252.
var ErrUndecodable = errors.New("script cannot be decoded")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading scripts and writing their obfuscated siblings. It
// hides direct `os` access so the workflow logic can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Get resolves roots (files, directories, `dir/...`) to script paths.
	Get(roots []m.Path, skipSuffix string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadSource loads and decodes a script, falling back to Windows-1252
	// when the bytes are not valid UTF-8.
	ReadSource(path m.Path) (m.Source, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// OutputPath returns the sibling path an obfuscated script is written to.
	OutputPath(source m.Path, suffix string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects script paths for the provided roots. Files named explicitly are
// taken whatever their extension; directories contribute `.gpc` files only.
// Paths ending in skipSuffix (earlier output) are ignored during walks.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, skipSuffix string) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var paths []m.Path

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, m.Path(path))
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)
			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !isScript(path, skipSuffix) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func isScript(path, skipSuffix string) bool {
	if !strings.EqualFold(filepath.Ext(path), ScriptExt) {
		return false
	}

	return skipSuffix == "" || !strings.HasSuffix(path, skipSuffix)
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadSource loads a script from disk and decodes it.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) (m.Source, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return m.Source{}, err
	}

	content, encoding, err := Decode(raw)
	if err != nil {
		return m.Source{}, fmt.Errorf("%s: %w", path, err)
	}

	return m.Source{
		Origin:   path,
		Encoding: encoding,
		Hash:     Fingerprint(raw),
		Content:  content,
	}, nil
}

// Decode returns raw as text, trying UTF-8 first and Windows-1252 second.
func Decode(raw []byte) (string, m.Encoding, error) {
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff"), m.EncodingUTF8, nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUndecodable, err)
	}

	return string(decoded), m.EncodingWindows1252, nil
}

// Fingerprint returns the hex BLAKE2s-256 digest of raw.
func Fingerprint(raw []byte) string {
	sum := blake2s.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// OutputPath swaps the extension of source for suffix: `a/b.gpc` becomes
// `a/b_obfuscated.gpc` with the default suffix.
func (a *LocalSourceFSAdapter) OutputPath(source m.Path, suffix string) m.Path {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}

	path := string(source)

	return m.Path(strings.TrimSuffix(path, filepath.Ext(path)) + suffix)
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
