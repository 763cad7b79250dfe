// Package catalog builds the session's list of playable tracks from a folder.
//
// A catalog is a snapshot: it is built once, sorted by path, and never changes
// for the lifetime of a session even if the folder does.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/looper/internal/tags"
)

var (
	// ErrNotADirectory is returned when the path is missing or not a folder.
	ErrNotADirectory = errors.New("not a directory")
	// ErrEmptyCatalog is returned when the folder holds no supported files.
	ErrEmptyCatalog = errors.New("no supported audio files found")
)

// DefaultExtensions is the supported set used when none is configured.
var DefaultExtensions = []string{tags.ExtMP3, tags.ExtWAV, tags.ExtOGG, tags.ExtFLAC}

// Track is one playable file.
type Track struct {
	Path string // absolute
	Ext  string // lower-case, with dot
	Name string // display name, computed once
}

// Options controls how a catalog is built.
type Options struct {
	Extensions   []string // empty means DefaultExtensions
	ShowFullPath bool
	Tags         tags.Reader // nil disables tag lookups
}

// Catalog is the immutable, ordered list of tracks for a session.
type Catalog struct {
	dir    string
	tracks []Track
}

// Build scans dir (non-recursively) and returns its supported tracks.
func Build(dir string, opts Options) (*Catalog, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", abs, err)
	}

	supported := NormalizeExtensions(opts.Extensions)
	if len(supported) == 0 {
		supported = DefaultExtensions
	}

	paths := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !slices.Contains(supported, ext) {
			return "", false
		}
		path := filepath.Join(abs, e.Name())
		return path, isRegular(path, e)
	})
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyCatalog, abs)
	}
	slices.Sort(paths)

	tracks := lo.Map(paths, func(path string, _ int) Track {
		return Track{
			Path: path,
			Ext:  strings.ToLower(filepath.Ext(path)),
			Name: displayNameFor(path, opts),
		}
	})

	return &Catalog{dir: abs, tracks: tracks}, nil
}

// Dir returns the absolute folder the catalog was built from.
func (c *Catalog) Dir() string { return c.dir }

// Title returns the folder's base name, used as the screen header.
func (c *Catalog) Title() string { return filepath.Base(c.dir) }

// Len returns the number of tracks. Always at least one.
func (c *Catalog) Len() int { return len(c.tracks) }

// At returns the track at index i. It panics if i is out of range.
func (c *Catalog) At(i int) Track { return c.tracks[i] }

// NormalizeExtensions lower-cases extensions, adds a leading dot where
// missing, and drops blanks and duplicates.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return lo.Uniq(out)
}

// isRegular follows symlinks so a link to a file counts as a file.
func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
