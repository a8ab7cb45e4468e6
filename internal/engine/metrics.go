package engine

import (
	"math"
	"strings"

	"github.com/codegauge/codegauge/internal/profiles"
	"github.com/codegauge/codegauge/internal/types"
)

const (
	// longLineRatioThreshold is the share of over-long lines above which
	// the long-line density finding fires.
	longLineRatioThreshold = 0.10
	// commentRatioThreshold is the minimum comment ratio expected of a
	// file with at least minLinesForCommentCheck code lines.
	commentRatioThreshold = 0.05
	// minLinesForCommentCheck keeps the comment-density check from firing
	// on trivially small files.
	minLinesForCommentCheck = 10

	densityWeight = -5
)

// computeMetrics derives the basic line-level metrics from the raw text.
func computeMetrics(text string, profile *profiles.Profile) types.TextMetrics {
	lines := strings.Split(text, "\n")
	// A trailing newline yields one empty trailing element; it is not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var m types.TextMetrics
	m.TotalLines = len(lines)

	var lengthSum int
	var nonEmpty int
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			m.BlankLines++
		case isComment(trimmed, profile):
			m.CommentLines++
		default:
			m.CodeLines++
		}
		if trimmed != "" {
			lengthSum += len(line)
			nonEmpty++
		}
	}

	if nonEmpty > 0 {
		m.AvgLineLength = round2(float64(lengthSum) / float64(nonEmpty))
	}
	if m.TotalLines > 0 {
		m.CommentRatio = round2(float64(m.CommentLines) / float64(m.TotalLines))
	}

	for _, pattern := range profile.DecisionPatterns {
		m.DecisionPoints += len(pattern.FindAllStringIndex(text, -1))
	}

	return m
}

func isComment(trimmed string, profile *profiles.Profile) bool {
	for _, prefix := range profile.CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// densityFindings evaluates the ratio-based checks shared by every language:
// long-line share and comment density. They emit at most one finding each and
// never fire on empty text (the caller guarantees non-empty input).
func densityFindings(text string, m types.TextMetrics, profile *profiles.Profile) []types.Finding {
	var findings []types.Finding

	nonBlank := m.TotalLines - m.BlankLines
	if nonBlank > 0 {
		long := 0
		for _, line := range strings.Split(text, "\n") {
			if len(line) > profile.MaxLineLength {
				long++
			}
		}
		if float64(long)/float64(nonBlank) > longLineRatioThreshold {
			findings = append(findings, types.Finding{
				RuleID:     "density-long-lines",
				Category:   types.CategoryStyle,
				Polarity:   types.PolarityIssue,
				Weight:     densityWeight,
				Message:    "More than 10% of lines exceed the line-length limit",
				Suggestion: "Break long lines up for readability",
			})
		}
	}

	if m.CodeLines >= minLinesForCommentCheck && m.CommentRatio < commentRatioThreshold {
		findings = append(findings, types.Finding{
			RuleID:     "density-comment-ratio",
			Category:   types.CategoryOrganization,
			Polarity:   types.PolarityIssue,
			Weight:     densityWeight,
			Message:    "Comment density below 5%",
			Suggestion: "Document non-obvious intent with comments",
		})
	}

	return findings
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
