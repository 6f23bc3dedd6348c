package manifest

// Manifest describes a single catalog snippet (snippet.yaml).
type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	Kind        string   `yaml:"kind" json:"kind"`
	Category    string   `yaml:"category" json:"category"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Runtime     string   `yaml:"runtime" json:"runtime"`
	Tokens      []Token  `yaml:"tokens,omitempty" json:"tokens,omitempty"`
	Port        int      `yaml:"port,omitempty" json:"port,omitempty"`
	Go          *GoBlock `yaml:"go,omitempty" json:"go,omitempty"`
}

// Token represents an environment variable the snippet reads at run time.
type Token struct {
	Name        string `yaml:"name" json:"name"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// GoBlock declares the go.mod generated when the snippet is scaffolded.
type GoBlock struct {
	Module     string    `yaml:"module" json:"module"`
	MinVersion string    `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Requires   []Require `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// Require is a single module requirement for a generated go.mod.
type Require struct {
	Module  string `yaml:"module" json:"module"`
	Version string `yaml:"version" json:"version"`
}

// Kind constants for the kind discriminator field. Features perform one
// external call and exit; templates bootstrap a long-running program.
const (
	KindFeature  = "feature"
	KindTemplate = "template"
)

// Category constants for the category field.
const (
	CategoryAI       = "ai"
	CategoryDatabase = "database"
	CategoryWeb      = "web"
	CategoryGame     = "game"
)

// ValidKinds contains all valid kind values.
var ValidKinds = []string{KindFeature, KindTemplate}

// ValidCategories contains all valid category values.
var ValidCategories = []string{CategoryAI, CategoryDatabase, CategoryWeb, CategoryGame}
