package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pi-labs/pi/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	searchCategoryFilter string
	searchTagFilter      string
	searchTokenFilter    string
	searchJSON           bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the snippet catalog",
	Long: `Search catalog snippets by free-text query and filters.

The query matches against snippet names, descriptions, and paths
(case-insensitive substring). Use --category to filter by category,
--tag to filter by tags, and --token to find snippets that read a
given environment variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategoryFilter, "category", "", "Filter by category (ai, database, web, game)")
	searchCmd.Flags().StringVar(&searchTagFilter, "tag", "", "Filter by tags (comma-separated, matches any)")
	searchCmd.Flags().StringVar(&searchTokenFilter, "token", "", "Filter by required env token (e.g., OPENAI_API_KEY)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

// searchEntry represents a matched snippet for display.
type searchEntry struct {
	Category    string   `json:"category"`
	Path        string   `json:"path"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Tokens      []string `json:"tokens,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	snippets, err := cat.Snippets()
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	// Parse tag filter into a set.
	var filterTags []string
	if searchTagFilter != "" {
		for _, t := range strings.Split(searchTagFilter, ",") {
			tag := strings.TrimSpace(t)
			if tag != "" {
				filterTags = append(filterTags, strings.ToLower(tag))
			}
		}
	}

	var entries []searchEntry
	for _, sn := range snippets {
		if !matchesSearch(sn, query, searchCategoryFilter, filterTags, searchTokenFilter) {
			continue
		}

		entry := searchEntry{
			Category:    sn.Category,
			Path:        sn.Path,
			Name:        sn.Manifest.Name,
			Version:     sn.Manifest.Version,
			Description: sn.Manifest.Description,
			Tags:        sn.Manifest.Tags,
		}
		for _, tok := range sn.Manifest.Tokens {
			entry.Tokens = append(entry.Tokens, tok.Name)
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		msg := "No snippets found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if searchCategoryFilter != "" {
			msg += fmt.Sprintf(" with --category=%s", searchCategoryFilter)
		}
		if searchTagFilter != "" {
			msg += fmt.Sprintf(" with --tag=%s", searchTagFilter)
		}
		if searchTokenFilter != "" {
			msg += fmt.Sprintf(" with --token=%s", searchTokenFilter)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		return printSearchJSON(cmd, entries)
	}
	return printSearchTable(cmd, entries)
}

// matchesSearch returns true if the snippet matches all provided filters.
// Filters are AND-combined: the snippet must match every non-empty filter.
func matchesSearch(sn catalog.Snippet, query, categoryFilter string, filterTags []string, tokenFilter string) bool {
	if categoryFilter != "" && sn.Category != categoryFilter {
		return false
	}

	if len(filterTags) > 0 && !matchesAnyTag(sn.Manifest.Tags, filterTags) {
		return false
	}

	// Filter by env token (case-insensitive exact match on token name).
	if tokenFilter != "" {
		found := false
		for _, tok := range sn.Manifest.Tokens {
			if strings.EqualFold(tok.Name, tokenFilter) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Filter by query (substring match on name, description, or path).
	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(sn.Manifest.Name), q) &&
			!strings.Contains(strings.ToLower(sn.Manifest.Description), q) &&
			!strings.Contains(strings.ToLower(sn.Path), q) {
			return false
		}
	}

	return true
}

// matchesAnyTag returns true if any of the snippet's tags match any of the
// filter tags. Comparison is case-insensitive.
func matchesAnyTag(snippetTags []string, filterTags []string) bool {
	for _, ft := range filterTags {
		ftLower := strings.ToLower(ft)
		for _, st := range snippetTags {
			if strings.ToLower(st) == ftLower {
				return true
			}
		}
	}
	return false
}

func printSearchTable(cmd *cobra.Command, entries []searchEntry) error {
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

func printSearchJSON(cmd *cobra.Command, entries []searchEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
