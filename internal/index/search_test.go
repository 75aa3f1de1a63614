package index

import (
	"reflect"
	"testing"

	"github.com/griffedoc/griffedoc/internal/docs"
)

func TestBuild_TotalCoverage(t *testing.T) {
	t.Parallel()

	store := docs.NewStore(fixtureTree())
	records := Build(store)

	// 3 modules + 2 classes + 3 public methods (__init__, run, forward)
	// + 1 public function.
	if len(records) != 9 {
		t.Fatalf("expected 9 records, got %d: %+v", len(records), records)
	}

	counts := make(map[RecordType]int)
	for _, r := range records {
		counts[r.Type]++
	}
	want := map[RecordType]int{TypeModule: 3, TypeClass: 2, TypeMethod: 3, TypeFunction: 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("type counts = %v, want %v", counts, want)
	}
}

func TestBuild_PrivacyFilter(t *testing.T) {
	t.Parallel()

	store := docs.NewStore(fixtureTree())
	byName := make(map[string]SearchRecord)
	for _, r := range Build(store) {
		byName[r.Name] = r
	}

	if _, ok := byName["Fabric.__init__"]; !ok {
		t.Error("constructor should be indexed")
	}
	if _, ok := byName["Fabric._private"]; ok {
		t.Error("private method should be excluded")
	}
	if _, ok := byName["_hidden"]; ok {
		t.Error("private function should be excluded")
	}
}

func TestBuild_Paths(t *testing.T) {
	t.Parallel()

	store := docs.NewStore(fixtureTree())
	paths := make(map[string]string)
	for _, r := range Build(store) {
		paths[r.Name] = r.Path
	}

	tests := map[string]string{
		"cfabric":         "/cfabric",
		"layers":          "/cfabric/layers",
		"dense":           "/cfabric/layers/dense",
		"Fabric":          "/cfabric#Fabric",
		"Fabric.__init__": "/cfabric#Fabric.__init__",
		"Fabric.run":      "/cfabric#Fabric.run",
		"load":            "/cfabric#load",
		"Dense":           "/cfabric/layers#Dense",
		"Dense.forward":   "/cfabric/layers#Dense.forward",
	}
	for name, want := range tests {
		if got := paths[name]; got != want {
			t.Errorf("path for %s = %q, want %q", name, got, want)
		}
	}
}

func TestBuild_ModuleRecordPrecedesChildren(t *testing.T) {
	t.Parallel()

	store := docs.NewStore(fixtureTree())
	records := Build(store)

	if records[0].Type != TypeModule || records[0].Path != "/cfabric" {
		t.Errorf("first record should be the root module, got %+v", records[0])
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	store := docs.NewStore(fixtureTree())
	first := Build(store)
	second := Build(store)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated builds over the same corpus should be identical")
	}
}

func TestBuild_CopiesSummaries(t *testing.T) {
	t.Parallel()

	store := docs.NewStore(fixtureTree())
	for _, r := range Build(store) {
		if r.Name == "Fabric" && r.Summary != "The main entry point." {
			t.Errorf("class summary not carried: %+v", r)
		}
		if r.Name == "cfabric" && r.Summary != "Context fabric core." {
			t.Errorf("module summary not carried: %+v", r)
		}
	}
}
