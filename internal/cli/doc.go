// Package cli implements the pi command tree.
package cli
