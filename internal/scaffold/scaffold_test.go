package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pi-labs/pi/internal/catalog"
	"github.com/pi-labs/pi/internal/manifest"
)

func testSnippet(t *testing.T) (fstest.MapFS, *catalog.Snippet) {
	t.Helper()
	fsys := fstest.MapFS{
		"ai/claude/snippet.yaml": &fstest.MapFile{Data: []byte("name: claude\n")},
		"ai/claude/main.go":      &fstest.MapFile{Data: []byte("package main\n")},
	}
	sn := &catalog.Snippet{
		Path:     "ai/claude",
		Category: "ai",
		Manifest: &manifest.Manifest{
			Name:        "claude",
			Kind:        manifest.KindFeature,
			Category:    manifest.CategoryAI,
			Version:     "1.0.0",
			Description: "Anthropic Messages API call",
			Runtime:     "go",
			Tokens: []manifest.Token{
				{Name: "ANTHROPIC_API_KEY", Required: true, Description: "API key from console.anthropic.com"},
			},
			Go: &manifest.GoBlock{
				Module:     "claude-starter",
				MinVersion: "1.25",
				Requires: []manifest.Require{
					{Module: "github.com/joho/godotenv", Version: "v1.5.1"},
				},
			},
		},
	}
	return fsys, sn
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func TestGenerate_CopiesFilesAndGeneratesGoMod(t *testing.T) {
	fsys, sn := testSnippet(t)
	outDir := filepath.Join(t.TempDir(), "claude")

	result, err := Generate(fsys, sn, outDir, "")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// main.go copied, manifest excluded.
	if _, err := os.Stat(filepath.Join(outDir, "main.go")); err != nil {
		t.Errorf("main.go not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "snippet.yaml")); !os.IsNotExist(err) {
		t.Error("snippet.yaml should not be copied into the project")
	}

	gomod := readOutput(t, outDir, "go.mod")
	if !strings.Contains(gomod, "module claude-starter") {
		t.Errorf("go.mod missing module line:\n%s", gomod)
	}
	if !strings.Contains(gomod, "go 1.25") {
		t.Errorf("go.mod missing go directive:\n%s", gomod)
	}
	if !strings.Contains(gomod, "github.com/joho/godotenv v1.5.1") {
		t.Errorf("go.mod missing require:\n%s", gomod)
	}

	for _, want := range []string{"main.go", "go.mod", ".env.example"} {
		if !containsFile(result.Files, want) {
			t.Errorf("result.Files missing %q: %v", want, result.Files)
		}
	}
}

func TestGenerate_EnvExample(t *testing.T) {
	fsys, sn := testSnippet(t)
	outDir := filepath.Join(t.TempDir(), "claude")

	if _, err := Generate(fsys, sn, outDir, ""); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	env := readOutput(t, outDir, ".env.example")
	if !strings.Contains(env, "ANTHROPIC_API_KEY=") {
		t.Errorf(".env.example missing token line:\n%s", env)
	}
	if !strings.Contains(env, "(required)") {
		t.Errorf(".env.example missing required marker:\n%s", env)
	}
}

func TestGenerate_NoEnvExampleWithoutTokens(t *testing.T) {
	fsys, sn := testSnippet(t)
	sn.Manifest.Tokens = nil
	outDir := filepath.Join(t.TempDir(), "claude")

	if _, err := Generate(fsys, sn, outDir, ""); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, ".env.example")); !os.IsNotExist(err) {
		t.Error(".env.example should not exist for a tokenless snippet")
	}
}

func TestGenerate_ModuleOverride(t *testing.T) {
	fsys, sn := testSnippet(t)
	outDir := filepath.Join(t.TempDir(), "claude")

	if _, err := Generate(fsys, sn, outDir, "example.com/myapp"); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	gomod := readOutput(t, outDir, "go.mod")
	if !strings.Contains(gomod, "module example.com/myapp") {
		t.Errorf("go.mod missing overridden module:\n%s", gomod)
	}
}

func TestGenerate_RefusesNonEmptyDir(t *testing.T) {
	fsys, sn := testSnippet(t)
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(fsys, sn, outDir, ""); err == nil {
		t.Fatal("expected error for non-empty output dir, got nil")
	}
}

func TestGenerate_WarnsOnMissingRequiredToken(t *testing.T) {
	fsys, sn := testSnippet(t)
	t.Setenv("ANTHROPIC_API_KEY", "")
	outDir := filepath.Join(t.TempDir(), "claude")

	result, err := Generate(fsys, sn, outDir, "")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(result.Warnings), result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "ANTHROPIC_API_KEY") {
		t.Errorf("warning does not name the token: %q", result.Warnings[0])
	}
}

func TestNewData_Defaults(t *testing.T) {
	d := NewData(&manifest.Manifest{Name: "gin"}, "")
	if d.Module != "gin-starter" {
		t.Errorf("Module = %q, want %q", d.Module, "gin-starter")
	}
	if d.GoVersion != defaultGoVersion {
		t.Errorf("GoVersion = %q, want %q", d.GoVersion, defaultGoVersion)
	}
}

func containsFile(files []string, name string) bool {
	for _, f := range files {
		if f == name {
			return true
		}
	}
	return false
}
