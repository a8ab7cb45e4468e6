// Package report assembles scan output: the immutable ScanResult record and
// its human-readable rendering.
package report

import (
	"sort"

	"github.com/codegauge/codegauge/internal/types"
)

// maxSuggestions caps the suggestion list at the most relevant entries.
const maxSuggestions = 8

// Input carries everything the assembler merges into one ScanResult.
type Input struct {
	Language            string
	Findings            []types.Finding
	Scores              types.Scores
	ComplexityTier      string
	MaintainabilityTier string
	Metrics             types.TextMetrics
}

// Assemble builds the final result record. Findings are ordered by category
// priority first and original match order second, so repeated scans of the
// same input render identically. Assemble has no side effects; persistence
// and rendering are the caller's concern.
func Assemble(in Input) types.ScanResult {
	ordered := make([]types.Finding, len(in.Findings))
	copy(ordered, in.Findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return types.Priority(ordered[i].Category) < types.Priority(ordered[j].Category)
	})

	issues := make([]string, 0)
	practices := make([]string, 0)
	suggestions := make([]string, 0)
	seenIssue := make(map[string]bool)
	seenPractice := make(map[string]bool)
	seenSuggestion := make(map[string]bool)

	for _, f := range ordered {
		switch f.Polarity {
		case types.PolarityIssue:
			if !seenIssue[f.Message] {
				seenIssue[f.Message] = true
				issues = append(issues, f.Message)
			}
			if f.Suggestion != "" && !seenSuggestion[f.Suggestion] && len(suggestions) < maxSuggestions {
				seenSuggestion[f.Suggestion] = true
				suggestions = append(suggestions, f.Suggestion)
			}
		case types.PolarityGoodPractice:
			if !seenPractice[f.Message] {
				seenPractice[f.Message] = true
				practices = append(practices, f.Message)
			}
		}
	}

	return types.ScanResult{
		Language:            in.Language,
		Quality:             in.Scores.Quality,
		Performance:         in.Scores.Performance,
		BestPractices:       in.Scores.BestPractices,
		Maintainability:     in.Scores.Maintainability,
		ComplexityTier:      in.ComplexityTier,
		MaintainabilityTier: in.MaintainabilityTier,
		IssuesFound:         issues,
		BestPracticeNotes:   practices,
		Suggestions:         suggestions,
		Findings:            ordered,
		Metrics:             in.Metrics,
	}
}
