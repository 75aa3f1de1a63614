package index

import (
	"github.com/griffedoc/griffedoc/internal/docs"
)

// RecordType tags what kind of node a search record came from.
type RecordType string

const (
	TypeModule   RecordType = "module"
	TypeClass    RecordType = "class"
	TypeFunction RecordType = "function"
	TypeMethod   RecordType = "method"
)

// SearchRecord is a flattened projection of one doc node for the fuzzy
// matcher. Records copy their strings out of the tree; they hold no
// references back into it.
type SearchRecord struct {
	Type    RecordType `json:"type"`
	Name    string     `json:"name"`
	Path    string     `json:"path"`
	Package string     `json:"package"`
	Summary string     `json:"summary"`
}

// Build produces one record per module, class, public method, and public
// function across every package in the store, depth-first in document order.
// Output is deterministic for a given corpus.
func Build(store *docs.Store) []SearchRecord {
	var records []SearchRecord
	for _, name := range store.Names() {
		root, ok := store.Package(name)
		if !ok {
			continue
		}
		records = appendModule(records, name, "/"+name, root)
	}
	return records
}

func appendModule(records []SearchRecord, pkg, path string, m *docs.Module) []SearchRecord {
	records = append(records, SearchRecord{
		Type:    TypeModule,
		Name:    m.Name,
		Path:    path,
		Package: pkg,
		Summary: m.Docstring.Summary,
	})

	for p := m.Classes.Oldest(); p != nil; p = p.Next() {
		records = append(records, SearchRecord{
			Type:    TypeClass,
			Name:    p.Key,
			Path:    path + "#" + p.Key,
			Package: pkg,
			Summary: p.Value.Docstring.Summary,
		})
		for mp := p.Value.Methods.Oldest(); mp != nil; mp = mp.Next() {
			if docs.IsPrivate(mp.Key) {
				continue
			}
			records = append(records, SearchRecord{
				Type:    TypeMethod,
				Name:    p.Key + "." + mp.Key,
				Path:    path + "#" + p.Key + "." + mp.Key,
				Package: pkg,
				Summary: mp.Value.Docstring.Summary,
			})
		}
	}

	for p := m.Functions.Oldest(); p != nil; p = p.Next() {
		if docs.IsPrivate(p.Key) {
			continue
		}
		records = append(records, SearchRecord{
			Type:    TypeFunction,
			Name:    p.Key,
			Path:    path + "#" + p.Key,
			Package: pkg,
			Summary: p.Value.Docstring.Summary,
		})
	}

	for p := m.Modules.Oldest(); p != nil; p = p.Next() {
		records = appendModule(records, pkg, path+"/"+p.Key, p.Value)
	}
	return records
}
