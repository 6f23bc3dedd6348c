package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/pi-labs/pi/internal/scaffold"
	"github.com/spf13/cobra"
)

var modulePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._/-]*$`)

var newModuleOverride string

var newCmd = &cobra.Command{
	Use:   "new <path> [dir]",
	Short: "Scaffold a snippet into a project directory",
	Long: `Copy a catalog snippet into a target directory, ready to run.

A go.mod is generated from the snippet's manifest, and a .env.example is
written for snippets that read environment variables. The target directory
defaults to ./<snippet-name> and must be empty.

Examples:
  pi new ai/claude
  pi new web/gin my-api --module github.com/me/my-api`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newModuleOverride, "module", "", "Module path for the generated go.mod (default: from the manifest)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	sn, err := cat.Get(args[0])
	if err != nil {
		return err
	}

	outDir := sn.Manifest.Name
	if len(args) == 2 {
		outDir = args[1]
	}

	if newModuleOverride != "" && !modulePattern.MatchString(newModuleOverride) {
		return fmt.Errorf("invalid module path %q", newModuleOverride)
	}

	result, err := scaffold.Generate(cat.FS(), sn, outDir, newModuleOverride)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Created %s from %s:\n", result.OutputDir, sn.Path)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  \u2713 %s\n", f)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  \u26a0\ufe0f  %s\n", warning)
	}

	fmt.Fprintln(w, "\nNext steps:")
	step := 1
	fmt.Fprintf(w, "  %d. cd %s && go mod tidy\n", step, filepath.Clean(outDir))
	step++
	if len(sn.Manifest.Tokens) > 0 {
		fmt.Fprintf(w, "  %d. Copy .env.example to .env and fill in the values\n", step)
		step++
	}
	fmt.Fprintf(w, "  %d. go run .\n", step)
	return nil
}
