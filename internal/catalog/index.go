package catalog

import (
	"io/fs"
	"sync"
)

// index memoizes the catalog walk. The embedded filesystem is immutable
// for the life of the process, so one walk serves every command.
type index struct {
	fsys fs.FS

	once    sync.Once
	cached  []Snippet
	walkErr error
}

func newIndex(fsys fs.FS) *index {
	return &index{fsys: fsys}
}

// snippets returns the memoized discovery result.
func (ix *index) snippets() ([]Snippet, error) {
	ix.once.Do(func() {
		ix.cached, ix.walkErr = discover(ix.fsys)
	})
	return ix.cached, ix.walkErr
}
