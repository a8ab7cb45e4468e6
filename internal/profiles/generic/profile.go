package generic

import "github.com/codegauge/codegauge/internal/profiles"

func init() {
	profiles.Register(&profiles.Profile{
		ID:              profiles.GenericID,
		DisplayName:     "Generic",
		Extensions:      nil, // fallback only, never routed by extension
		EnryNames:       nil,
		CommentPrefixes: []string{"//", "#", "--"},
		MaxLineLength:   120,
		// No decision patterns: complexity stays "Low" for unknown
		// languages rather than guessing at syntax.
		DecisionPatterns: nil,
	})
}
