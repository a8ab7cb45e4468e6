package java

import "github.com/codegauge/codegauge/internal/profiles"

func init() {
	profiles.Register(&profiles.Profile{
		ID:              "java",
		DisplayName:     "Java",
		Extensions:      []string{".java"},
		EnryNames:       []string{"Java"},
		CommentPrefixes: []string{"//", "/*", "*"},
		MaxLineLength:   120,
		DecisionPatterns: profiles.MustCompile(
			`\bif\b`, `\belse\b`, `\bfor\b`, `\bwhile\b`,
			`\bswitch\b`, `\bcase\b`, `\bcatch\b`, `&&`, `\|\|`, `\?`,
		),
	})
}
