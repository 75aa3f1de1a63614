package index

import (
	"github.com/griffedoc/griffedoc/internal/docs"
)

// Page is the address of one renderable documentation page: a package and
// the submodule segments leading to it. The package root has an empty path.
type Page struct {
	Package string   `json:"package"`
	Path    []string `json:"path"`
}

// AllPages enumerates every module page in the store, one entry per module,
// depth-first in document order. Static site generation renders exactly this
// set.
func AllPages(store *docs.Store) []Page {
	var pages []Page
	for _, name := range store.Names() {
		root, ok := store.Package(name)
		if !ok {
			continue
		}
		pages = appendPages(pages, name, nil, root)
	}
	return pages
}

func appendPages(pages []Page, pkg string, path []string, m *docs.Module) []Page {
	pages = append(pages, Page{Package: pkg, Path: append([]string(nil), path...)})
	for p := m.Modules.Oldest(); p != nil; p = p.Next() {
		child := append(append([]string(nil), path...), p.Key)
		pages = appendPages(pages, pkg, child, p.Value)
	}
	return pages
}
