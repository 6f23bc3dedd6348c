package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pi-labs/pi/internal/manifest"
)

// ManifestName is the manifest filename expected in every snippet directory.
const ManifestName = "snippet.yaml"

// knownCategories are the top-level directories that contain snippets.
var knownCategories = []string{
	"ai",
	"database",
	"web",
	"game",
}

// Snippet represents one catalog entry, enriched with manifest metadata.
type Snippet struct {
	Path     string // e.g., "database/mysql/gorm"
	Category string // top-level category directory, e.g., "database"
	Manifest *manifest.Manifest
}

// Catalog provides access to the snippets in a catalog filesystem.
// The walk runs once; embedded filesystems never change at runtime.
type Catalog struct {
	fsys fs.FS

	index *index
}

// New wraps a catalog filesystem. The root of fsys must contain the
// category directories directly (ai/, database/, ...).
func New(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys, index: newIndex(fsys)}
}

// FS returns the underlying catalog filesystem.
func (c *Catalog) FS() fs.FS {
	return c.fsys
}

// Snippets returns all discovered snippets, sorted by path.
func (c *Catalog) Snippets() ([]Snippet, error) {
	return c.index.snippets()
}

// Get returns the snippet at the given catalog path (e.g., "ai/claude").
func (c *Catalog) Get(snippetPath string) (*Snippet, error) {
	snippetPath = path.Clean(strings.Trim(snippetPath, "/"))

	all, err := c.Snippets()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Path == snippetPath {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("snippet %q not found in catalog", snippetPath)
}

// Files lists the files of a snippet, relative to the snippet directory
// and sorted. The manifest itself is included.
func (c *Catalog) Files(snippetPath string) ([]string, error) {
	sn, err := c.Get(snippetPath)
	if err != nil {
		return nil, err
	}

	var files []string
	err = fs.WalkDir(c.fsys, sn.Path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, sn.Path+"/")
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing files of %s: %w", sn.Path, err)
	}

	sort.Strings(files)
	return files, nil
}

// discover walks the known category directories and parses every manifest
// it finds. A directory with an unparseable manifest is reported as an
// error: the embedded catalog must never ship a broken snippet.
func discover(fsys fs.FS) ([]Snippet, error) {
	var result []Snippet

	for _, cat := range knownCategories {
		if _, err := fs.Stat(fsys, cat); err != nil {
			continue
		}

		err := fs.WalkDir(fsys, cat, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || d.Name() != ManifestName {
				return nil
			}

			dir := path.Dir(p)
			m, err := manifest.ParseFS(fsys, p)
			if err != nil {
				return err
			}

			result = append(result, Snippet{
				Path:     dir,
				Category: cat,
				Manifest: m,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking category %s: %w", cat, err)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}
