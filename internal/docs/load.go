package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

const indexFile = "index.json"

// Store is a loaded documentation corpus: one immutable tree per top-level
// package, plus the navigation array from index.json. A Store is built once
// by Load and is safe for concurrent readers afterwards.
type Store struct {
	names      []string
	packages   map[string]*Module
	navigation []NavEntry
}

// Load reads a documentation directory: index.json for navigation and the
// package list, and one <package>.json (optionally zstd-compressed as
// <package>.json.zst) per package. When index.json names packages, those are
// the corpus, in that order; otherwise every package file in the directory
// loads. Package files decode concurrently. If only is non-empty, packages
// not named in it are skipped.
func Load(ctx context.Context, dir string, only []string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading docs directory: %w", err)
	}
	idx := loadIndex(filepath.Join(dir, indexFile))

	// ReadDir returns sorted entries, so a plain .json wins over its .zst
	// sibling and the package order is stable across runs.
	var scanned []string
	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == indexFile {
			continue
		}
		name, ok := packageName(entry.Name())
		if !ok {
			continue
		}
		if _, seen := files[name]; seen {
			continue
		}
		scanned = append(scanned, name)
		files[name] = filepath.Join(dir, entry.Name())
	}

	names := scanned
	if len(idx.Packages) > 0 {
		names = make([]string, 0, len(idx.Packages))
		seen := make(map[string]bool, len(idx.Packages))
		for _, name := range idx.Packages {
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := files[name]; !ok {
				slog.Warn("index.json names a package with no file", "package", name)
				continue
			}
			names = append(names, name)
		}
	}

	if len(only) > 0 {
		allow := make(map[string]bool, len(only))
		for _, name := range only {
			allow[name] = true
		}
		kept := make([]string, 0, len(names))
		for _, name := range names {
			if allow[name] {
				kept = append(kept, name)
			}
		}
		names = kept
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no package files in %s", dir)
	}

	roots := make([]*Module, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := loadPackageFile(files[name])
			if err != nil {
				return fmt.Errorf("loading package %s: %w", name, err)
			}
			roots[i] = root
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	packages := make(map[string]*Module, len(names))
	for i, name := range names {
		packages[name] = roots[i]
	}

	slog.Info("docs loaded", "dir", dir, "packages", len(names))

	return &Store{names: names, packages: packages, navigation: idx.Navigation}, nil
}

// NewStore builds a store from already-constructed package trees, keyed and
// ordered by each root module's name. Load is the usual path; this exists
// for callers that source trees elsewhere.
func NewStore(roots ...*Module) *Store {
	s := &Store{packages: make(map[string]*Module, len(roots))}
	for _, root := range roots {
		if _, seen := s.packages[root.Name]; seen {
			continue
		}
		s.names = append(s.names, root.Name)
		s.packages[root.Name] = root
	}
	return s
}

// Names returns the package names in load order.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// Package returns the root module of a loaded package.
func (s *Store) Package(name string) (*Module, bool) {
	root, ok := s.packages[name]
	return root, ok
}

// Navigation returns the UI navigation entries from index.json, if any.
func (s *Store) Navigation() []NavEntry {
	return s.navigation
}

func packageName(filename string) (string, bool) {
	if name, ok := strings.CutSuffix(filename, ".json.zst"); ok {
		return name, true
	}
	if name, ok := strings.CutSuffix(filename, ".json"); ok {
		return name, true
	}
	return "", false
}

func loadPackageFile(path string) (*Module, error) {
	data, err := readMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	var root Module
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding package JSON: %w", err)
	}
	return &root, nil
}

func readMaybeCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return data, nil
	}

	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return data, nil
}

// indexMeta is what Load needs out of index.json: which packages the
// generator emitted, and the UI navigation tree.
type indexMeta struct {
	Packages   []string   `json:"packages"`
	Navigation []NavEntry `json:"navigation"`
}

// loadIndex reads index.json. A missing or malformed index file just means
// no package list and no navigation; the corpus stays usable off the
// directory scan alone.
func loadIndex(path string) indexMeta {
	data, err := os.ReadFile(path)
	if err != nil {
		return indexMeta{}
	}
	var idx indexMeta
	if err := json.Unmarshal(data, &idx); err != nil {
		slog.Warn("ignoring malformed index.json", "path", path, "error", err)
		return indexMeta{}
	}
	return idx
}
