// Package aggregator turns raw findings into the four clamped sub-scores and
// the coarse tier labels. One baseline-and-clamp function is shared by every
// axis so scores stay comparable across languages.
package aggregator

import (
	"github.com/codegauge/codegauge/internal/types"
)

// Baseline is the neutral starting score of every axis: a file with no
// evidence either way scores 70, not 0 and not 100. Issues subtract from it,
// good practices add to it.
const Baseline = 70

// Tier labels for the complexity metric.
const (
	TierLow      = "Low"
	TierModerate = "Moderate"
	TierHigh     = "High"
)

// Tier labels for the maintainability metric.
const (
	TierExcellent        = "Excellent"
	TierGood             = "Good"
	TierFair             = "Fair"
	TierNeedsImprovement = "Needs Improvement"
)

// Complexity tier thresholds: decision points per 100 non-blank lines.
const (
	complexityLowMax      = 10.0
	complexityModerateMax = 25.0
)

// BaselineScores returns the neutral scores of an evidence-free scan.
func BaselineScores() types.Scores {
	return types.Scores{
		Quality:         Baseline,
		Performance:     Baseline,
		BestPractices:   Baseline,
		Maintainability: Baseline,
	}
}

// ComputeScores sums finding weights per axis and applies the shared
// baseline-and-clamp function. Summation is commutative, so rule evaluation
// order cannot affect the result.
func ComputeScores(findings []types.Finding) types.Scores {
	totals := make(map[types.Axis]int, 4)
	for _, f := range findings {
		axis, err := types.AxisFor(f.Category)
		if err != nil {
			// Unreachable for findings produced by a validated
			// catalog; skip rather than corrupt a score.
			continue
		}
		totals[axis] += f.Weight
	}

	return types.Scores{
		Quality:         clamp(Baseline + totals[types.AxisQuality]),
		Performance:     clamp(Baseline + totals[types.AxisPerformance]),
		BestPractices:   clamp(Baseline + totals[types.AxisBestPractices]),
		Maintainability: clamp(Baseline + totals[types.AxisMaintainability]),
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ComplexityTier buckets the decision-point density (per 100 non-blank
// lines) into a coarse label.
func ComplexityTier(m types.TextMetrics) string {
	nonBlank := m.TotalLines - m.BlankLines
	if nonBlank <= 0 || m.DecisionPoints == 0 {
		return TierLow
	}

	density := float64(m.DecisionPoints) * 100 / float64(nonBlank)
	switch {
	case density <= complexityLowMax:
		return TierLow
	case density <= complexityModerateMax:
		return TierModerate
	default:
		return TierHigh
	}
}

// MaintainabilityTier buckets the issue-to-good-practice balance, demoted by
// one tier when the average line length exceeds the language's limit.
func MaintainabilityTier(findings []types.Finding, m types.TextMetrics, maxLineLength int) string {
	var issues, practices int
	for _, f := range findings {
		if f.Polarity == types.PolarityIssue {
			issues++
		} else {
			practices++
		}
	}

	tier := TierNeedsImprovement
	switch {
	case practices >= issues*2:
		tier = TierExcellent
	case practices >= issues:
		tier = TierGood
	case issues <= practices*2:
		tier = TierFair
	}

	if maxLineLength > 0 && m.AvgLineLength > float64(maxLineLength) {
		tier = demote(tier)
	}
	return tier
}

func demote(tier string) string {
	switch tier {
	case TierExcellent:
		return TierGood
	case TierGood:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}
