package render

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Writer stores one output file. rel is a slash-separated path relative to the
// output root. Implementations must be safe for concurrent use on distinct paths.
type Writer interface {
	WriteFile(rel string, data []byte) error
}

// DirWriter writes files below Root, creating parent directories.
type DirWriter struct {
	Root    string
	written atomic.Int64
}

// NewDirWriter returns a writer rooted at root.
func NewDirWriter(root string) *DirWriter {
	return &DirWriter{Root: root}
}

// WriteFile implements Writer.
func (w *DirWriter) WriteFile(rel string, data []byte) error {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.InternalError("output path escapes the output directory").
			WithContext("path", rel).
			Build()
	}

	path := filepath.Join(w.Root, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create output directory").
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	// #nosec G306 -- generated site files are public
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write output file").
			WithContext("path", path).
			Build()
	}
	w.written.Add(1)
	return nil
}

// Files returns the number of files written so far.
func (w *DirWriter) Files() int {
	return int(w.written.Load())
}
