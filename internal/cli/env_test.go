package cli

import "testing"

func TestRedactValue(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"OPENAI_API_KEY", "sk-abcdef123456", "sk-a***"},
		{"XAI_API_KEY", "xk", "***"},
		{"DB_PASSWORD", "hunter2!", "hunt***"},
		{"GITHUB_TOKEN", "ghp_xyz", "ghp_***"},
		{"DATABASE_URL", "app.db", "app.db"},
		{"PORT", "3000", "3000"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := redactValue(tt.key, tt.value); got != tt.want {
				t.Errorf("redactValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}
