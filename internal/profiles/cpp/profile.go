package cpp

import "github.com/codegauge/codegauge/internal/profiles"

func init() {
	profiles.Register(&profiles.Profile{
		ID:              "cpp",
		DisplayName:     "C++",
		Extensions:      []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".h", ".c"},
		EnryNames:       []string{"C++", "C"},
		CommentPrefixes: []string{"//", "/*", "*"},
		MaxLineLength:   100,
		DecisionPatterns: profiles.MustCompile(
			`\bif\b`, `\belse\b`, `\bfor\b`, `\bwhile\b`,
			`\bswitch\b`, `\bcase\b`, `\bcatch\b`, `&&`, `\|\|`, `\?`,
		),
	})
}
