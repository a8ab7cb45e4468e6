package javascript

import "github.com/codegauge/codegauge/internal/profiles"

func init() {
	profiles.Register(&profiles.Profile{
		ID:              "javascript",
		DisplayName:     "JavaScript",
		Extensions:      []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"},
		EnryNames:       []string{"JavaScript", "TypeScript", "JSX", "TSX"},
		CommentPrefixes: []string{"//", "/*", "*"},
		MaxLineLength:   100,
		DecisionPatterns: profiles.MustCompile(
			`\bif\b`, `\belse\b`, `\bfor\b`, `\bwhile\b`,
			`\bswitch\b`, `\bcase\b`, `\bcatch\b`, `&&`, `\|\|`, `\?`,
		),
	})
}
