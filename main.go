package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/pi-labs/pi/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// The snippet catalog ships inside the binary so `pi new` works without
// network access or a separate bundle.
//
//go:embed all:catalog
var embeddedCatalog embed.FS

func main() {
	catalogFS, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := cli.Execute(version, commit, date, catalogFS); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
