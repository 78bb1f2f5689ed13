package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chenasraf/lockfix/fixer"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

// ErrInvalid is returned when a fixed document still fails to parse.
var ErrInvalid = errors.New("invalid lockfile")

// Options controls Process.
type Options struct {
	Output string // write target; empty overwrites the input
	DryRun bool
	Verify bool
	Logger *zap.Logger
}

// Report is the outcome of processing one lockfile.
type Report struct {
	Path         string         `json:"path"`
	Output       string         `json:"output"`
	Replacements int            `json:"replacements"`
	Lines        []int          `json:"lines,omitempty"`
	Changes      []fixer.Change `json:"changes,omitempty"`
	Written      bool           `json:"written"`
	DryRun       bool           `json:"dryRun,omitempty"`
	Valid        *bool          `json:"valid,omitempty"`
}

// Process reads path, strips trailing commas before closing braces and
// writes the result back (or to opts.Output). An unchanged file is only
// rewritten when an explicit output is given.
func Process(path string, opts Options) (Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.Output
	if out == "" {
		out = path
	}
	rep := Report{Path: path, Output: out, DryRun: opts.DryRun}

	data, err := os.ReadFile(path)
	if err != nil {
		return rep, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug("read lockfile", zap.String("path", path), zap.Int("bytes", len(data)))

	content, res := fixer.Fix(string(data))
	rep.Replacements = res.Replacements
	rep.Lines = res.Lines
	rep.Changes = res.Changes
	for _, c := range rep.Changes {
		log.Debug("removed trailing comma", zap.String("path", path), zap.Int("line", c.Line))
	}
	fixed := []byte(content)

	if opts.Verify {
		err := Validate(fixed)
		valid := err == nil
		rep.Valid = &valid
		if err != nil {
			return rep, fmt.Errorf("%s: %w", path, err)
		}
	}

	if opts.DryRun {
		log.Debug("dry run, not writing", zap.String("path", out))
		return rep, nil
	}
	if !res.Changed() && opts.Output == "" {
		log.Debug("nothing to fix", zap.String("path", path))
		return rep, nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := WriteFileAtomic(out, fixed, mode); err != nil {
		return rep, err
	}
	rep.Written = true
	log.Info("wrote lockfile", zap.String("path", out), zap.Int("replacements", rep.Replacements))
	return rep, nil
}

// ProcessAll runs Process on every path in order and stops at the first
// error. The report of the failing path is included.
func ProcessAll(paths []string, opts Options) ([]Report, error) {
	reports := make([]Report, 0, len(paths))
	for _, p := range paths {
		rep, err := Process(p, opts)
		reports = append(reports, rep)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

// Validate parses data as JSON with comments and trailing commas.
func Validate(data []byte) error {
	if _, err := hujson.Parse(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// WriteFileAtomic writes data to a temp file next to path and renames it over
// path, so readers never see a truncated file. An existing symlink is
// followed and its target is replaced, the link itself stays.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	// Rename to final path (atomic on POSIX)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename %s: %w", path, err)
	}
	return nil
}
