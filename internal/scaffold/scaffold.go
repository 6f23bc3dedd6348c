package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pi-labs/pi/internal/catalog"
	"github.com/pi-labs/pi/internal/manifest"
)

//go:embed templates
var templateFS embed.FS

// defaultGoVersion is written to generated go.mod files when the manifest
// does not pin a minimum.
const defaultGoVersion = "1.25"

// excludedNames are snippet files not copied into the target project.
// The manifest describes the snippet to the catalog, not to the project.
var excludedNames = map[string]bool{
	catalog.ManifestName: true,
}

// Data holds the values rendered into the generated project files.
type Data struct {
	Name      string
	Module    string
	GoVersion string
	Requires  []manifest.Require
	Tokens    []manifest.Token
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData derives template data from a snippet manifest. moduleOverride,
// when non-empty, replaces the manifest's module path.
func NewData(m *manifest.Manifest, moduleOverride string) *Data {
	d := &Data{
		Name:      m.Name,
		Module:    m.Name + "-starter",
		GoVersion: defaultGoVersion,
		Tokens:    m.Tokens,
	}
	if m.Go != nil {
		if m.Go.Module != "" {
			d.Module = m.Go.Module
		}
		if m.Go.MinVersion != "" {
			d.GoVersion = m.Go.MinVersion
		}
		d.Requires = m.Go.Requires
	}
	if moduleOverride != "" {
		d.Module = moduleOverride
	}
	return d
}

// Generate copies the snippet at sn.Path out of fsys into outputDir and
// writes the generated go.mod and .env.example. The target directory must
// be empty (or absent) to prevent accidental overwrites.
func Generate(fsys fs.FS, sn *catalog.Snippet, outputDir, moduleOverride string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	// Copy the snippet files.
	err = fs.WalkDir(fsys, sn.Path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, sn.Path)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" {
			return nil
		}
		if excludedNames[d.Name()] {
			return nil
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(outPath, 0755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copying snippet %s: %w", sn.Path, err)
	}

	data := NewData(sn.Manifest, moduleOverride)

	// Generate go.mod.
	if err := renderTemplate("gomod.tmpl", data, filepath.Join(outputDir, "go.mod")); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, "go.mod")

	// Generate .env.example when the snippet reads env tokens.
	if len(data.Tokens) > 0 {
		if err := renderTemplate("env.tmpl", data, filepath.Join(outputDir, ".env.example")); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, ".env.example")
	}

	// Warn about required tokens missing from the current environment.
	for _, tok := range data.Tokens {
		if tok.Required && os.Getenv(tok.Name) == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s is not set in your environment", tok.Name))
		}
	}

	return result, nil
}

// renderTemplate executes an embedded template and writes the output file.
func renderTemplate(name string, data *Data, outPath string) error {
	tmplBytes, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
