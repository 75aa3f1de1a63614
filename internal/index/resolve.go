// Package index derives the addressable and searchable views of a loaded
// documentation corpus: path resolution, the flat search record set, and the
// full page enumeration used for static rendering. Everything here is a pure
// function over the immutable doc tree.
package index

import (
	"github.com/griffedoc/griffedoc/internal/docs"
)

// Resolve walks path segment by segment through submodule links, starting at
// root. Zero segments resolves to root itself. The first missing segment, or
// a step through a node without submodules, reports false; there are no
// partial results.
func Resolve(root *docs.Module, path []string) (*docs.Module, bool) {
	if root == nil {
		return nil, false
	}
	cur := root
	for _, seg := range path {
		next, ok := cur.Submodule(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Lookup resolves a page address within a store. An unknown package name is
// a not-found, the same as an unresolvable path.
func Lookup(store *docs.Store, pkg string, path []string) (*docs.Module, bool) {
	root, ok := store.Package(pkg)
	if !ok {
		return nil, false
	}
	return Resolve(root, path)
}
