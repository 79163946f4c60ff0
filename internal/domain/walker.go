package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// ExcludedDirs are directory names pruned at every level of the walk:
// version control metadata, dependency installs, virtual environments and
// bytecode caches.
var ExcludedDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"venv":         {},
	".venv":        {},
	"__pycache__":  {},
}

// WalkedFile is one candidate source file produced by the Walker.
type WalkedFile struct {
	// Index is the position in walk order; used to merge parallel results
	// back into discovery order.
	Index     int
	FullPath  m.Path
	ShortPath m.Path
	Language  m.Language
}

// Walker enumerates candidate source files under a root.
type Walker interface {
	// Walk streams files in lexical walk order. Both channels close when the
	// walk ends; the error channel carries at most one fatal error.
	Walk(ctx context.Context, root m.Path) (<-chan WalkedFile, <-chan error)
}

type walker struct {
	adapter.SourceFSAdapter
	exclude []string
}

// NewWalker builds a Walker. exclude holds doublestar patterns matched
// against slash-separated root-relative paths.
func NewWalker(fsAdapter adapter.SourceFSAdapter, exclude ...string) (Walker, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return &walker{SourceFSAdapter: fsAdapter, exclude: exclude}, nil
}

func (w *walker) Walk(ctx context.Context, root m.Path) (<-chan WalkedFile, <-chan error) {
	files := make(chan WalkedFile)
	errs := make(chan error, 1)

	go func() {
		defer close(files)
		defer close(errs)

		if err := w.walk(ctx, root, files); err != nil {
			errs <- err
		}
	}()

	return files, errs
}

func (w *walker) walk(ctx context.Context, root m.Path, files chan<- WalkedFile) error {
	info, err := w.FileInfo(ctx, root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	index := 0

	return w.SourceFSAdapter.Walk(ctx, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == string(root) {
				return err
			}

			slog.Warn("Skipping unreadable path", "path", path, "error", err)

			return nil
		}

		if path == string(root) {
			return nil
		}

		rel, relErr := w.RelPath(root, m.Path(path))
		if relErr != nil {
			slog.Warn("Skipping path outside root", "path", path, "error", relErr)
			return nil
		}

		short := m.Path(filepath.ToSlash(string(rel)))

		if d.IsDir() {
			if _, skip := ExcludedDirs[d.Name()]; skip || w.excluded(short) {
				slog.Debug("Pruning directory", "path", short)
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		lang := DetectLanguage(short)
		if lang == m.LanguageUnknown || w.excluded(short) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case files <- WalkedFile{Index: index, FullPath: m.Path(path), ShortPath: short, Language: lang}:
		}

		index++

		return nil
	})
}

func (w *walker) excluded(short m.Path) bool {
	for _, pattern := range w.exclude {
		if ok, err := doublestar.Match(pattern, string(short)); err == nil && ok {
			return true
		}
	}

	return false
}
