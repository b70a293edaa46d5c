package question

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Source loads an ordered set of records from one backing format.
// Implementations exist per format (JSON, YAML, XLSX) plus the
// built-in fallback; the Store tries them in priority order.
type Source interface {
	// Name identifies the source in logs and the session header.
	Name() string

	// Load parses the source into records. A missing file returns an
	// error wrapping fs.ErrNotExist; anything else is a format error.
	Load() ([]Record, error)
}

// DefaultSources returns the standard lookup chain for dir:
// questions.json, then questions.yaml, then questions.xlsx.
func DefaultSources(dir string) []Source {
	return []Source{
		JSONSource(filepath.Join(dir, "questions.json")),
		YAMLSource(filepath.Join(dir, "questions.yaml")),
		ExcelSource(filepath.Join(dir, "questions.xlsx")),
	}
}

// SourceForPath returns the source implementation matching the file
// extension of path.
func SourceForPath(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONSource(path), nil
	case ".yaml", ".yml":
		return YAMLSource(path), nil
	case ".xlsx":
		return ExcelSource(path), nil
	}
	return nil, fmt.Errorf("unsupported question file %q (want .json, .yaml, or .xlsx)", path)
}

// Store resolves the session's question set from a prioritized source
// chain, falling back to the built-in set when no file source works.
type Store struct {
	sources []Source
	logger  *slog.Logger
}

// NewStore creates a Store over the given chain. A nil logger keeps the
// store quiet.
func NewStore(logger *slog.Logger, sources ...Source) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{sources: sources, logger: logger}
}

// Load returns the records of the first source that parses and
// validates, together with the winning source's name. Missing files are
// skipped; a malformed source logs a warning and the next source is
// tried. When every file source fails, the built-in set is used. The
// returned error is reserved for the built-in set itself failing
// validation, which means there is nothing usable to run on.
func (s *Store) Load() ([]Record, string, error) {
	for _, src := range s.sources {
		records, err := src.Load()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			s.logger.Warn("skipping malformed question source", "source", src.Name(), "error", err)
			continue
		}
		if err := ValidateSet(records); err != nil {
			s.logger.Warn("skipping invalid question source", "source", src.Name(), "error", err)
			continue
		}
		return records, src.Name(), nil
	}

	records := BuiltinSet()
	if err := ValidateSet(records); err != nil {
		return nil, "", fmt.Errorf("built-in question set: %w", err)
	}
	return records, BuiltinName, nil
}
