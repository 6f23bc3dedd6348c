// Package catalog discovers snippets in the embedded catalog filesystem.
// A snippet is any directory under a known category (ai, database, web,
// game) that contains a snippet.yaml manifest.
package catalog
