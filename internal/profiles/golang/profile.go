package golang

import "github.com/codegauge/codegauge/internal/profiles"

func init() {
	profiles.Register(&profiles.Profile{
		ID:              "go",
		DisplayName:     "Go",
		Extensions:      []string{".go"},
		EnryNames:       []string{"Go"},
		CommentPrefixes: []string{"//"},
		MaxLineLength:   100,
		DecisionPatterns: profiles.MustCompile(
			`\bif\b`, `\bfor\b`, `\bswitch\b`, `\bselect\b`,
			`\bcase\b`, `&&`, `\|\|`,
		),
	})
}
