package docs

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node kinds as emitted by the documentation generator.
const (
	KindModule    = "module"
	KindClass     = "class"
	KindFunction  = "function"
	KindAttribute = "attribute"
)

// Docstring is the structured text attached to a node. Both fields may be
// empty; Description may repeat Summary as its opening sentence (the
// generator does this — see docstring.Normalize).
type Docstring struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// Parameter is one entry of a function's parameter list.
type Parameter struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// Returns describes a function's return annotation.
type Returns struct {
	Type string `json:"type,omitempty"`
}

// Function is a free function or a class method.
type Function struct {
	Name       string      `json:"name"`
	Kind       string      `json:"kind"`
	Signature  string      `json:"signature"`
	Docstring  Docstring   `json:"docstring"`
	Parameters []Parameter `json:"parameters"`
	Returns    Returns     `json:"returns"`
}

// Attribute is a documented class attribute.
type Attribute struct {
	Name      string    `json:"name"`
	Type      string    `json:"type,omitempty"`
	Docstring Docstring `json:"docstring"`
	Value     string    `json:"value,omitempty"`
}

// Class is a class definition with its methods and attributes.
// Methods and Attributes preserve the document order of the source JSON.
type Class struct {
	Name       string                                     `json:"name"`
	Kind       string                                     `json:"kind"`
	Docstring  Docstring                                  `json:"docstring"`
	Bases      []string                                   `json:"bases"`
	Methods    *orderedmap.OrderedMap[string, *Function]  `json:"methods"`
	Attributes *orderedmap.OrderedMap[string, *Attribute] `json:"attributes"`
}

// Alias is a re-exported name pointing at its canonical target path.
type Alias struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// Module is one node of the documentation tree. The tree is built once from
// JSON and never mutated afterwards, so concurrent readers need no locking.
// Child maps preserve document order; keys are unique within a map.
type Module struct {
	Name      string                                    `json:"name"`
	Kind      string                                    `json:"kind"`
	Docstring Docstring                                 `json:"docstring"`
	Classes   *orderedmap.OrderedMap[string, *Class]    `json:"classes"`
	Functions *orderedmap.OrderedMap[string, *Function] `json:"functions"`
	Modules   *orderedmap.OrderedMap[string, *Module]   `json:"modules"`
	Aliases   *orderedmap.OrderedMap[string, *Alias]    `json:"aliases"`
}

// NewModule returns an empty module with initialized child maps.
func NewModule(name string) *Module {
	return &Module{
		Name:      name,
		Kind:      KindModule,
		Classes:   orderedmap.New[string, *Class](),
		Functions: orderedmap.New[string, *Function](),
		Modules:   orderedmap.New[string, *Module](),
		Aliases:   orderedmap.New[string, *Alias](),
	}
}

// NewClass returns an empty class with initialized member maps.
func NewClass(name string) *Class {
	return &Class{
		Name:       name,
		Kind:       KindClass,
		Methods:    orderedmap.New[string, *Function](),
		Attributes: orderedmap.New[string, *Attribute](),
	}
}

// NewFunction returns a function node with the given signature.
func NewFunction(name, signature string) *Function {
	return &Function{Name: name, Kind: KindFunction, Signature: signature}
}

// Submodule looks up a direct child module. It reports false when the
// receiver has no modules map, which is what makes path resolution total.
func (m *Module) Submodule(name string) (*Module, bool) {
	if m == nil || m.Modules == nil {
		return nil, false
	}
	sub, ok := m.Modules.Get(name)
	if !ok || sub == nil {
		return nil, false
	}
	return sub, true
}

// ConstructorName is the canonical constructor, public despite its
// underscore prefix.
const ConstructorName = "__init__"

// IsPrivate reports whether a name is hidden by the leading-underscore
// convention. Private names are excluded from search records and rendered
// listings; the constructor never is.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, "_") && name != ConstructorName
}

// NavEntry is one entry of the index.json navigation array. The core never
// interprets it; it is carried through verbatim for the frontend.
type NavEntry struct {
	Title    string     `json:"title"`
	Path     string     `json:"path"`
	Children []NavEntry `json:"children,omitempty"`
}
