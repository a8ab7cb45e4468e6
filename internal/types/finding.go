// Package types defines the shared data model of the scoring pipeline:
// rule catalogs, findings, metrics and the scan result record.
package types

import "fmt"

// Category classifies what aspect of the code a rule speaks to. Every
// category maps to exactly one scoring axis.
type Category string

const (
	CategoryMemory        Category = "memory"
	CategorySecurity      Category = "security"
	CategoryErrorHandling Category = "error-handling"
	CategoryPerformance   Category = "performance"
	CategoryConcurrency   Category = "concurrency"
	CategoryModernity     Category = "modernity"
	CategoryStyle         Category = "style"
	CategoryOrganization  Category = "organization"
)

// Axis is one of the four reported sub-scores.
type Axis string

const (
	AxisQuality         Axis = "quality"
	AxisPerformance     Axis = "performance"
	AxisBestPractices   Axis = "best-practices"
	AxisMaintainability Axis = "maintainability"
)

// axisByCategory is the fixed, total category-to-axis mapping. A category
// missing here is a programming error caught by rule validation.
var axisByCategory = map[Category]Axis{
	CategoryMemory:        AxisQuality,
	CategorySecurity:      AxisQuality,
	CategoryErrorHandling: AxisQuality,
	CategoryPerformance:   AxisPerformance,
	CategoryConcurrency:   AxisPerformance,
	CategoryStyle:         AxisBestPractices,
	CategoryModernity:     AxisBestPractices,
	CategoryOrganization:  AxisMaintainability,
}

// categoryPriority orders findings for display, most severe category class
// first. Lower value sorts first.
var categoryPriority = map[Category]int{
	CategoryMemory:        0,
	CategorySecurity:      1,
	CategoryErrorHandling: 2,
	CategoryPerformance:   3,
	CategoryConcurrency:   4,
	CategoryModernity:     5,
	CategoryStyle:         6,
	CategoryOrganization:  7,
}

// AllCategories returns every known category in display priority order.
func AllCategories() []Category {
	return []Category{
		CategoryMemory,
		CategorySecurity,
		CategoryErrorHandling,
		CategoryPerformance,
		CategoryConcurrency,
		CategoryModernity,
		CategoryStyle,
		CategoryOrganization,
	}
}

// AxisFor returns the scoring axis a category feeds into.
func AxisFor(c Category) (Axis, error) {
	axis, ok := axisByCategory[c]
	if !ok {
		return "", fmt.Errorf("unknown category %q", c)
	}
	return axis, nil
}

// Priority returns the display priority of a category; unknown categories
// sort last.
func Priority(c Category) int {
	p, ok := categoryPriority[c]
	if !ok {
		return len(categoryPriority)
	}
	return p
}

// Polarity says whether a finding counts against or in favor of the code.
type Polarity string

const (
	PolarityIssue        Polarity = "issue"
	PolarityGoodPractice Polarity = "good-practice"
)

// Finding is one observation a rule produced against the scanned text.
type Finding struct {
	RuleID     string   `json:"rule_id"`
	Category   Category `json:"category"`
	Polarity   Polarity `json:"polarity"`
	Weight     int      `json:"weight"`
	Message    string   `json:"message"`
	Suggestion string   `json:"-"`
	Line       int      `json:"line,omitempty"`
}
