package cli

import (
	"fmt"
	"path"

	"github.com/pi-labs/pi/internal/catalog"
	"github.com/pi-labs/pi/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate snippet manifests against the schema",
	Long: `Validate one snippet manifest (or, with no argument, every manifest in
the catalog) against the snippet JSON Schema.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var targets []string
	if len(args) == 1 {
		sn, err := cat.Get(args[0])
		if err != nil {
			return err
		}
		targets = append(targets, sn.Path)
	} else {
		snippets, err := cat.Snippets()
		if err != nil {
			return fmt.Errorf("reading catalog: %w", err)
		}
		for _, sn := range snippets {
			targets = append(targets, sn.Path)
		}
	}

	w := cmd.OutOrStdout()
	failed := 0
	for _, target := range targets {
		manifestPath := path.Join(target, catalog.ManifestName)
		result, err := manifest.ValidateFS(cat.FS(), manifestPath)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", target, err)
			failed++
			continue
		}

		if result.Valid {
			fmt.Fprintf(w, "  [ OK ] %s\n", target)
			continue
		}

		failed++
		fmt.Fprintf(w, "  [FAIL] %s: %d issue(s)\n", target, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(w, "    - %s\n", issue.Message)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d manifest(s) failed validation", failed)
	}
	return nil
}
