package python

import "github.com/codegauge/codegauge/internal/profiles"

func init() {
	profiles.Register(&profiles.Profile{
		ID:              "python",
		DisplayName:     "Python",
		Extensions:      []string{".py", ".pyw"},
		EnryNames:       []string{"Python"},
		CommentPrefixes: []string{"#"},
		MaxLineLength:   79,
		DecisionPatterns: profiles.MustCompile(
			`\bif\b`, `\belif\b`, `\bfor\b`, `\bwhile\b`,
			`\bexcept\b`, `\band\b`, `\bor\b`,
		),
	})
}
