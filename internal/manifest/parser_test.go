package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_BaseFields(t *testing.T) {
	tests := []struct {
		file     string
		name     string
		kind     string
		category string
		version  string
	}{
		{"valid-ai.yaml", "claude", KindFeature, CategoryAI, "1.0.0"},
		{"valid-web.yaml", "gin", KindTemplate, CategoryWeb, "2.1.0"},
		{"valid-database.yaml", "sqlite-gorm", KindFeature, CategoryDatabase, "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, err := ParseFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ParseFile(%s) error: %v", tt.file, err)
			}
			if m.Name != tt.name {
				t.Errorf("Name = %q, want %q", m.Name, tt.name)
			}
			if m.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", m.Kind, tt.kind)
			}
			if m.Category != tt.category {
				t.Errorf("Category = %q, want %q", m.Category, tt.category)
			}
			if m.Version != tt.version {
				t.Errorf("Version = %q, want %q", m.Version, tt.version)
			}
		})
	}
}

func TestParseFile_Tokens(t *testing.T) {
	m, err := ParseFile(testPath("valid-ai.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(m.Tokens) != 1 {
		t.Fatalf("Tokens len = %d, want 1", len(m.Tokens))
	}
	tok := m.Tokens[0]
	if tok.Name != "ANTHROPIC_API_KEY" {
		t.Errorf("Token name = %q, want %q", tok.Name, "ANTHROPIC_API_KEY")
	}
	if !tok.Required {
		t.Error("Token.Required = false, want true")
	}
}

func TestParseFile_GoBlock(t *testing.T) {
	m, err := ParseFile(testPath("valid-database.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Go == nil {
		t.Fatal("Go block is nil")
	}
	if m.Go.Module != "sqlite-gorm-starter" {
		t.Errorf("Go.Module = %q, want %q", m.Go.Module, "sqlite-gorm-starter")
	}
	if len(m.Go.Requires) != 3 {
		t.Fatalf("Go.Requires len = %d, want 3", len(m.Go.Requires))
	}
	if m.Go.Requires[0].Module != "gorm.io/gorm" {
		t.Errorf("first require = %q, want %q", m.Go.Requires[0].Module, "gorm.io/gorm")
	}
	if m.Go.Requires[0].Version != "v1.30.0" {
		t.Errorf("first require version = %q, want %q", m.Go.Requires[0].Version, "v1.30.0")
	}
}

func TestParseFile_Port(t *testing.T) {
	m, err := ParseFile(testPath("valid-web.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Port != 3000 {
		t.Errorf("Port = %d, want 3000", m.Port)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_MissingName(t *testing.T) {
	_, err := Parse([]byte("kind: feature\ncategory: ai\n"))
	if err == nil {
		t.Fatal("expected error for manifest without name, got nil")
	}
}

func TestParse_MissingKind(t *testing.T) {
	_, err := Parse([]byte("name: incomplete\ncategory: ai\n"))
	if err == nil {
		t.Fatal("expected error for manifest without kind, got nil")
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestParseFS(t *testing.T) {
	data, err := os.ReadFile(testPath("valid-web.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{
		"web/gin/snippet.yaml": &fstest.MapFile{Data: data},
	}

	m, err := ParseFS(fsys, "web/gin/snippet.yaml")
	if err != nil {
		t.Fatalf("ParseFS error: %v", err)
	}
	if m.Name != "gin" {
		t.Errorf("Name = %q, want %q", m.Name, "gin")
	}
}
