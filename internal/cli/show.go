package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show details for one snippet",
	Long: `Show the manifest and file listing for a single catalog snippet.

Example:
  pi show ai/claude
  pi show database/postgres/gorm`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	sn, err := cat.Get(args[0])
	if err != nil {
		return err
	}

	files, err := cat.Files(sn.Path)
	if err != nil {
		return err
	}

	if showJSON {
		out := struct {
			Path     string      `json:"path"`
			Category string      `json:"category"`
			Manifest interface{} `json:"manifest"`
			Files    []string    `json:"files"`
		}{sn.Path, sn.Category, sn.Manifest, files}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	m := sn.Manifest
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (v%s)\n", sn.Path, m.Version)
	fmt.Fprintf(w, "  %s\n\n", m.Description)
	fmt.Fprintf(w, "  Kind:     %s\n", m.Kind)
	fmt.Fprintf(w, "  Category: %s\n", m.Category)
	fmt.Fprintf(w, "  Runtime:  %s\n", m.Runtime)
	if len(m.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:     %s\n", strings.Join(m.Tags, ", "))
	}
	if m.Port != 0 {
		fmt.Fprintf(w, "  Port:     %d\n", m.Port)
	}
	if m.Go != nil {
		fmt.Fprintf(w, "  Module:   %s\n", m.Go.Module)
		for _, req := range m.Go.Requires {
			fmt.Fprintf(w, "            requires %s %s\n", req.Module, req.Version)
		}
	}
	if len(m.Tokens) > 0 {
		fmt.Fprintln(w, "  Tokens:")
		for _, tok := range m.Tokens {
			marker := ""
			if tok.Required {
				marker = " (required)"
			}
			fmt.Fprintf(w, "    %s%s\n", tok.Name, marker)
		}
	}
	fmt.Fprintln(w, "  Files:")
	for _, f := range files {
		fmt.Fprintf(w, "    %s\n", f)
	}
	return nil
}
