package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pi-labs/pi/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	doctorJSON    bool
	doctorSnippet string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment against the catalog",
	Long: `Run diagnostic checks: is the Go toolchain installed, does its version
satisfy the snippets' declared minimums, and which env tokens are set.

Use --snippet to restrict the token check to one snippet.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output in JSON format")
	doctorCmd.Flags().StringVar(&doctorSnippet, "snippet", "", "Check tokens for one snippet only (e.g., ai/openai)")
	rootCmd.AddCommand(doctorCmd)
}

// doctorReport is the JSON shape of a doctor run.
type doctorReport struct {
	Go     toolchain.Status    `json:"go"`
	Issues []string            `json:"issues,omitempty"`
	Tokens []doctorTokenStatus `json:"tokens"`
}

type doctorTokenStatus struct {
	Snippet  string `json:"snippet"`
	Token    string `json:"token"`
	Required bool   `json:"required"`
	Set      bool   `json:"set"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := doctorReport{Go: toolchain.ProbeGo()}

	if !report.Go.Found {
		report.Issues = append(report.Issues, "go toolchain not found on PATH")
	}

	snippets, err := cat.Snippets()
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	for _, sn := range snippets {
		if doctorSnippet != "" && sn.Path != doctorSnippet {
			continue
		}

		// Version check against the snippet's declared minimum.
		if report.Go.Version != "" && sn.Manifest.Go != nil && sn.Manifest.Go.MinVersion != "" {
			ok, err := toolchain.Satisfies(report.Go.Version, sn.Manifest.Go.MinVersion)
			if err == nil && !ok {
				report.Issues = append(report.Issues, fmt.Sprintf(
					"%s needs go >= %s (found %s)", sn.Path, sn.Manifest.Go.MinVersion, report.Go.Version))
			}
		}

		for _, tok := range sn.Manifest.Tokens {
			_, set := os.LookupEnv(tok.Name)
			report.Tokens = append(report.Tokens, doctorTokenStatus{
				Snippet:  sn.Path,
				Token:    tok.Name,
				Required: tok.Required,
				Set:      set,
			})
		}
	}

	if doctorSnippet != "" && len(report.Tokens) == 0 {
		if _, err := cat.Get(doctorSnippet); err != nil {
			return err
		}
	}

	if doctorJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printDoctorReport(cmd, report)
	return nil
}

func printDoctorReport(cmd *cobra.Command, report doctorReport) {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Toolchain:")
	if report.Go.Found {
		version := report.Go.Version
		if version == "" {
			version = "unknown version"
		}
		fmt.Fprintf(w, "  [ OK ] go %s at %s\n", version, report.Go.Path)
	} else {
		fmt.Fprintln(w, "  [MISS] go not found")
	}

	for _, issue := range report.Issues {
		fmt.Fprintf(w, "  [WARN] %s\n", issue)
	}

	if len(report.Tokens) == 0 {
		return
	}

	fmt.Fprintln(w, "Tokens:")
	for _, tok := range report.Tokens {
		switch {
		case tok.Set:
			fmt.Fprintf(w, "  [ OK ] %s (%s)\n", tok.Token, tok.Snippet)
		case tok.Required:
			fmt.Fprintf(w, "  [MISS] %s (%s)\n", tok.Token, tok.Snippet)
		default:
			fmt.Fprintf(w, "  [INFO] %s unset, optional (%s)\n", tok.Token, tok.Snippet)
		}
	}
}
