package catalog

import (
	"testing"
	"testing/fstest"
)

func yamlFile(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func testCatalogFS() fstest.MapFS {
	return fstest.MapFS{
		"ai/claude/snippet.yaml": yamlFile(`name: claude
kind: feature
category: ai
version: 1.0.0
description: Anthropic Messages API call
runtime: go
tokens:
  - name: ANTHROPIC_API_KEY
    required: true
go:
  module: claude-starter
`),
		"ai/claude/main.go": yamlFile("package main\n"),
		"web/gin/snippet.yaml": yamlFile(`name: gin
kind: template
category: web
version: 1.0.0
description: Gin starter
runtime: go
port: 3000
go:
  module: gin-starter
`),
		"web/gin/main.go":   yamlFile("package main\n"),
		"web/gin/routes.go": yamlFile("package main\n"),
		// A directory without a manifest is not a snippet.
		"web/unfinished/main.go": yamlFile("package main\n"),
		// Unknown top-level directories are ignored entirely.
		"docs/notes.md": yamlFile("notes\n"),
	}
}

func TestSnippets_DiscoversManifests(t *testing.T) {
	c := New(testCatalogFS())

	snippets, err := c.Snippets()
	if err != nil {
		t.Fatalf("Snippets error: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("got %d snippets, want 2: %+v", len(snippets), snippets)
	}

	// Sorted by path.
	if snippets[0].Path != "ai/claude" {
		t.Errorf("first path = %q, want %q", snippets[0].Path, "ai/claude")
	}
	if snippets[1].Path != "web/gin" {
		t.Errorf("second path = %q, want %q", snippets[1].Path, "web/gin")
	}
	if snippets[0].Category != "ai" {
		t.Errorf("category = %q, want %q", snippets[0].Category, "ai")
	}
	if snippets[0].Manifest.Name != "claude" {
		t.Errorf("manifest name = %q, want %q", snippets[0].Manifest.Name, "claude")
	}
}

func TestGet(t *testing.T) {
	c := New(testCatalogFS())

	sn, err := c.Get("web/gin")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if sn.Manifest.Port != 3000 {
		t.Errorf("Port = %d, want 3000", sn.Manifest.Port)
	}

	// Leading/trailing slashes are tolerated.
	if _, err := c.Get("/web/gin/"); err != nil {
		t.Errorf("Get with slashes error: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	c := New(testCatalogFS())
	if _, err := c.Get("web/unfinished"); err == nil {
		t.Fatal("expected error for directory without manifest, got nil")
	}
	if _, err := c.Get("nope/nothing"); err == nil {
		t.Fatal("expected error for unknown path, got nil")
	}
}

func TestFiles(t *testing.T) {
	c := New(testCatalogFS())

	files, err := c.Files("web/gin")
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}
	want := []string{"main.go", "routes.go", "snippet.yaml"}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestSnippets_BrokenManifestFails(t *testing.T) {
	fsys := testCatalogFS()
	fsys["ai/broken/snippet.yaml"] = yamlFile("name: [unclosed")

	c := New(fsys)
	if _, err := c.Snippets(); err == nil {
		t.Fatal("expected error for broken manifest, got nil")
	}
}

func TestSnippets_Memoized(t *testing.T) {
	fsys := testCatalogFS()
	c := New(fsys)

	first, err := c.Snippets()
	if err != nil {
		t.Fatalf("Snippets error: %v", err)
	}

	// Mutating the FS after the first walk must not change the result.
	delete(fsys, "web/gin/snippet.yaml")

	second, err := c.Snippets()
	if err != nil {
		t.Fatalf("Snippets error: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("memoized result changed: %d vs %d", len(first), len(second))
	}
}
