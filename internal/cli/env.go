package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var envNoRedact bool

var envCmd = &cobra.Command{
	Use:   "env <path>",
	Short: "Show a snippet's env tokens and their status",
	Long: `List the environment variables a snippet reads and whether each is
set in the current environment. Values are redacted by default.

Example:
  pi env ai/openai`,
	Args: cobra.ExactArgs(1),
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envNoRedact, "no-redact", false, "Show values without redaction")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	sn, err := cat.Get(args[0])
	if err != nil {
		return err
	}

	if len(sn.Manifest.Tokens) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s reads no environment variables.\n", sn.Path)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tREQUIRED\tSTATUS")
	for _, tok := range sn.Manifest.Tokens {
		required := "no"
		if tok.Required {
			required = "yes"
		}

		status := "unset"
		if value, ok := os.LookupEnv(tok.Name); ok {
			if envNoRedact {
				status = value
			} else {
				status = redactValue(tok.Name, value)
			}
		} else if tok.Default != "" {
			status = fmt.Sprintf("unset (default: %s)", tok.Default)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Name, required, status)
	}
	return w.Flush()
}

// sensitivePatterns mark env var names whose values are redacted in output.
var sensitivePatterns = []string{"KEY", "TOKEN", "SECRET", "PASSWORD", "DSN"}

// redactValue masks sensitive values, keeping a short prefix for recognition.
func redactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
