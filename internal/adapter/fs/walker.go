package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"decomment/internal/domain"
)

// ErrDecode is returned by ReadFile for content that is not valid UTF-8.
var ErrDecode = errors.New("content is not valid UTF-8")

type Walker struct {
	extensions []string
	excludes   []string
	dirFS      func(dir string) iofs.FS
}

// NewWalker creates a walker keeping files whose name ends with one of
// extensions. An empty extension list matches every file.
func NewWalker(extensions, excludes []string) *Walker {
	return &Walker{
		extensions: extensions,
		excludes:   excludes,
		dirFS:      os.DirFS,
	}
}

// Walk returns matching files under root in lexical order. A symlinked root
// is followed and files are reported under the root path as given. Symlinked
// files are included; symlinked directories are not descended into.
//
// Unreadable entries do not stop the walk: they are skipped and returned
// joined in the error alongside every file that could be listed.
func (w *Walker) Walk(root string) ([]domain.SourceFile, error) {
	var files []domain.SourceFile
	var errs []error

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, err
	}
	fsys := w.dirFS(resolved)

	err = iofs.WalkDir(fsys, ".", func(rel string, d iofs.DirEntry, err error) error {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err != nil {
			if d == nil {
				return err
			}
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			if d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if rel != "." && w.shouldExclude(rel+"/") {
				return iofs.SkipDir
			}
			return nil
		}

		if !w.hasExtension(d.Name()) || w.shouldExclude(rel) {
			return nil
		}

		info, ok, err := fileInfo(fsys, rel, d)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		if !ok {
			return nil
		}

		file := domain.SourceFile{Path: path}
		if info != nil {
			file.ModTime = info.ModTime()
			file.Size = info.Size()
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}

	return files, errors.Join(errs...)
}

// fileInfo reports whether d is a file to process. Symlinks are resolved;
// a dangling link is kept with nil info so reading it reports the failure.
func fileInfo(fsys iofs.FS, rel string, d iofs.DirEntry) (iofs.FileInfo, bool, error) {
	switch {
	case d.Type().IsRegular():
		info, err := d.Info()
		return info, err == nil, err
	case d.Type()&iofs.ModeSymlink != 0:
		info, err := iofs.Stat(fsys, rel)
		if err != nil {
			return nil, true, nil
		}
		return info, info.Mode().IsRegular(), nil
	default:
		return nil, false, nil
	}
}

func (w *Walker) hasExtension(name string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ReadFile reads path as UTF-8 text with universal newlines.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode: %w", ErrDecode)
	}
	return normalizeNewlines(string(data)), nil
}

// normalizeNewlines turns \r\n and lone \r into \n, so content is written
// back with \n line endings.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// WriteFile overwrites path in place, keeping its permission bits.
// The write is not atomic.
func WriteFile(path, content string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// FileIO adapts the package functions to the reader and writer ports.
type FileIO struct{}

func (FileIO) ReadFile(path string) (string, error) { return ReadFile(path) }

func (FileIO) WriteFile(path, content string) error { return WriteFile(path, content) }
