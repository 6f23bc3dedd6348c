package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listCategoryFilter string
	listJSON           bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog snippets",
	Long:  `List every starter snippet shipped in the embedded catalog.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategoryFilter, "category", "", "Filter by category (ai, database, web, game)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a catalog snippet for display.
type listEntry struct {
	Category    string `json:"category"`
	Path        string `json:"path"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func runList(cmd *cobra.Command, args []string) error {
	snippets, err := cat.Snippets()
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	var entries []listEntry
	for _, sn := range snippets {
		if listCategoryFilter != "" && sn.Category != listCategoryFilter {
			continue
		}
		entries = append(entries, listEntry{
			Category:    sn.Category,
			Path:        sn.Path,
			Version:     sn.Manifest.Version,
			Description: sn.Manifest.Description,
		})
	}

	if len(entries) == 0 {
		if listCategoryFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No snippets matching --category=%s\n", listCategoryFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty.")
		}
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tPATH\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		desc := e.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Category, e.Path, version, desc)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
