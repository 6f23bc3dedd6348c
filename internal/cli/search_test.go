package cli

import (
	"testing"

	"github.com/pi-labs/pi/internal/catalog"
	"github.com/pi-labs/pi/internal/manifest"
)

func testSnippet() catalog.Snippet {
	return catalog.Snippet{
		Path:     "ai/claude",
		Category: "ai",
		Manifest: &manifest.Manifest{
			Name:        "claude",
			Kind:        manifest.KindFeature,
			Category:    manifest.CategoryAI,
			Version:     "1.0.0",
			Description: "One-shot chat completion against the Anthropic Messages API",
			Tags:        []string{"ai", "anthropic"},
			Tokens: []manifest.Token{
				{Name: "ANTHROPIC_API_KEY", Required: true},
			},
		},
	}
}

func TestMatchesSearch_Query(t *testing.T) {
	sn := testSnippet()

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"claude", true},
		{"CLAUDE", true},
		{"anthropic", true},  // matches description
		{"ai/claude", true},  // matches path
		{"mistral", false},
	}

	for _, tt := range tests {
		if got := matchesSearch(sn, tt.query, "", nil, ""); got != tt.want {
			t.Errorf("matchesSearch(query=%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestMatchesSearch_CategoryFilter(t *testing.T) {
	sn := testSnippet()

	if !matchesSearch(sn, "", "ai", nil, "") {
		t.Error("expected match for --category=ai")
	}
	if matchesSearch(sn, "", "web", nil, "") {
		t.Error("expected no match for --category=web")
	}
}

func TestMatchesSearch_TagFilter(t *testing.T) {
	sn := testSnippet()

	if !matchesSearch(sn, "", "", []string{"anthropic"}, "") {
		t.Error("expected match for --tag=anthropic")
	}
	if !matchesSearch(sn, "", "", []string{"nope", "ai"}, "") {
		t.Error("expected match when any tag matches")
	}
	if matchesSearch(sn, "", "", []string{"gorm"}, "") {
		t.Error("expected no match for --tag=gorm")
	}
}

func TestMatchesSearch_TokenFilter(t *testing.T) {
	sn := testSnippet()

	if !matchesSearch(sn, "", "", nil, "ANTHROPIC_API_KEY") {
		t.Error("expected match for --token=ANTHROPIC_API_KEY")
	}
	if !matchesSearch(sn, "", "", nil, "anthropic_api_key") {
		t.Error("expected case-insensitive token match")
	}
	if matchesSearch(sn, "", "", nil, "OPENAI_API_KEY") {
		t.Error("expected no match for --token=OPENAI_API_KEY")
	}
}

func TestMatchesSearch_FiltersAreANDCombined(t *testing.T) {
	sn := testSnippet()

	if !matchesSearch(sn, "claude", "ai", []string{"ai"}, "ANTHROPIC_API_KEY") {
		t.Error("expected match when all filters match")
	}
	if matchesSearch(sn, "claude", "web", []string{"ai"}, "") {
		t.Error("expected no match when one filter fails")
	}
}

func TestMatchesAnyTag(t *testing.T) {
	tags := []string{"ai", "Anthropic"}

	if !matchesAnyTag(tags, []string{"anthropic"}) {
		t.Error("expected case-insensitive tag match")
	}
	if matchesAnyTag(tags, []string{"web"}) {
		t.Error("expected no match for absent tag")
	}
	if matchesAnyTag(nil, []string{"ai"}) {
		t.Error("expected no match against empty tag list")
	}
}
