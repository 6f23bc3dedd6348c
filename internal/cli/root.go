package cli

import (
	"io/fs"

	"github.com/pi-labs/pi/internal/branding"
	"github.com/pi-labs/pi/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	// cat is the embedded snippet catalog, set once by Execute.
	cat *catalog.Catalog
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` ships a catalog of copy-paste starter snippets: AI API calls,
database ORM wire-ups, web framework bootstraps, and a game loop. Browse the
catalog with list/search/show and scaffold a snippet into a project with new.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags and
// the embedded catalog filesystem.
func Execute(version, commit, date string, catalogFS fs.FS) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	cat = catalog.New(catalogFS)
	return rootCmd.Execute()
}
