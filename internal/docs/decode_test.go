package docs

import (
	"encoding/json"
	"testing"
)

func mustDecode(t *testing.T, data string) *Module {
	t.Helper()
	var m Module
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &m
}

func TestDecode_Module(t *testing.T) {
	t.Parallel()

	m := mustDecode(t, `{
		"name": "cfabric",
		"kind": "module",
		"docstring": {"summary": "Core package.", "description": "Core package. Long form."},
		"classes": {
			"Fabric": {
				"name": "Fabric",
				"kind": "class",
				"docstring": {"summary": "Entry point.", "description": ""},
				"bases": ["object"],
				"methods": {
					"__init__": {
						"name": "__init__",
						"kind": "function",
						"signature": "(self, path: str)",
						"docstring": {"summary": "", "description": ""},
						"parameters": [
							{"name": "self"},
							{"name": "path", "type": "str", "default": "\"db\""}
						],
						"returns": {"type": "None"}
					}
				},
				"attributes": {
					"path": {"name": "path", "type": "str", "docstring": {"summary": "Store path.", "description": ""}}
				}
			}
		},
		"functions": {},
		"modules": {},
		"aliases": {"Fab": {"name": "Fab", "target": "cfabric.Fabric"}}
	}`)

	if m.Name != "cfabric" || m.Kind != KindModule {
		t.Errorf("identity = %q/%q", m.Name, m.Kind)
	}
	if m.Docstring.Summary != "Core package." {
		t.Errorf("docstring = %+v", m.Docstring)
	}

	fabric, ok := m.Classes.Get("Fabric")
	if !ok {
		t.Fatal("class Fabric missing")
	}
	if len(fabric.Bases) != 1 || fabric.Bases[0] != "object" {
		t.Errorf("bases = %v", fabric.Bases)
	}

	init, ok := fabric.Methods.Get("__init__")
	if !ok {
		t.Fatal("method __init__ missing")
	}
	if init.Signature != "(self, path: str)" {
		t.Errorf("signature = %q", init.Signature)
	}
	if len(init.Parameters) != 2 || init.Parameters[1].Type != "str" || init.Parameters[1].Default != `"db"` {
		t.Errorf("parameters = %+v", init.Parameters)
	}
	if init.Returns.Type != "None" {
		t.Errorf("returns = %+v", init.Returns)
	}

	attr, ok := fabric.Attributes.Get("path")
	if !ok || attr.Docstring.Summary != "Store path." {
		t.Errorf("attribute = %+v ok=%v", attr, ok)
	}

	alias, ok := m.Aliases.Get("Fab")
	if !ok || alias.Target != "cfabric.Fabric" {
		t.Errorf("alias = %+v ok=%v", alias, ok)
	}
}

func TestDecode_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	m := mustDecode(t, `{
		"name": "m",
		"functions": {
			"zebra": {"name": "zebra"},
			"apple": {"name": "apple"},
			"mango": {"name": "mango"}
		}
	}`)

	var got []string
	for p := m.Functions.Oldest(); p != nil; p = p.Next() {
		got = append(got, p.Key)
	}
	want := []string{"zebra", "apple", "mango"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("key order = %v, want %v", got, want)
		}
	}
}

func TestDecode_MissingMapsAreEmpty(t *testing.T) {
	t.Parallel()

	m := mustDecode(t, `{"name": "bare"}`)
	if m.Classes == nil || m.Functions == nil || m.Modules == nil || m.Aliases == nil {
		t.Fatal("child maps must be initialized")
	}
	if m.Classes.Len() != 0 || m.Modules.Len() != 0 {
		t.Errorf("expected empty maps, got %d classes, %d modules", m.Classes.Len(), m.Modules.Len())
	}
}

func TestDecode_WrongShapesNarrowToEmpty(t *testing.T) {
	t.Parallel()

	m := mustDecode(t, `{
		"name": 42,
		"docstring": "just a string",
		"classes": ["not", "a", "map"],
		"functions": {"f": {"name": "f", "parameters": "oops", "returns": 7}},
		"modules": 3
	}`)

	if m.Name != "" {
		t.Errorf("non-string name should narrow to empty, got %q", m.Name)
	}
	if m.Docstring.Summary != "just a string" {
		t.Errorf("bare-string docstring should become the summary, got %+v", m.Docstring)
	}
	if m.Classes.Len() != 0 {
		t.Errorf("array-shaped classes should be empty, got %d", m.Classes.Len())
	}
	if m.Modules.Len() != 0 {
		t.Errorf("scalar modules should be empty, got %d", m.Modules.Len())
	}

	f, ok := m.Functions.Get("f")
	if !ok {
		t.Fatal("function f missing")
	}
	if f.Parameters != nil || f.Returns.Type != "" {
		t.Errorf("malformed parameters/returns should be empty, got %+v / %+v", f.Parameters, f.Returns)
	}
}

func TestDecode_MalformedParameterEntriesSkipped(t *testing.T) {
	t.Parallel()

	m := mustDecode(t, `{
		"name": "m",
		"functions": {"f": {"name": "f", "parameters": [{"name": "ok"}, "bad", 3]}}
	}`)

	f, _ := m.Functions.Get("f")
	if len(f.Parameters) != 1 || f.Parameters[0].Name != "ok" {
		t.Errorf("parameters = %+v", f.Parameters)
	}
}

func TestIsPrivate(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"_private":  true,
		"__magic__": true,
		"__init__":  false,
		"public":    false,
		"":          false,
	}
	for name, want := range tests {
		if got := IsPrivate(name); got != want {
			t.Errorf("IsPrivate(%q) = %v, want %v", name, got, want)
		}
	}
}
