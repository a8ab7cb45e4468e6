package types

// ScanRequest is the in-process call contract of the engine. Content is the
// raw file bytes; LanguageHint, when set, overrides extension-based routing.
type ScanRequest struct {
	Filename     string
	Content      []byte
	LanguageHint string
}

// TextMetrics are the basic line-level metrics computed from the raw text,
// independent of rule matches.
type TextMetrics struct {
	TotalLines     int     `json:"total_lines"`
	CodeLines      int     `json:"code_lines"`
	CommentLines   int     `json:"comment_lines"`
	BlankLines     int     `json:"blank_lines"`
	AvgLineLength  float64 `json:"avg_line_length"`
	CommentRatio   float64 `json:"comment_ratio"`
	DecisionPoints int     `json:"decision_points"`
}

// Scores holds the four clamped sub-scores of a scan.
type Scores struct {
	Quality         int `json:"quality_score"`
	Performance     int `json:"performance_score"`
	BestPractices   int `json:"best_practices_score"`
	Maintainability int `json:"maintainability_score"`
}

// Get returns the score for one axis.
func (s Scores) Get(axis Axis) int {
	switch axis {
	case AxisQuality:
		return s.Quality
	case AxisPerformance:
		return s.Performance
	case AxisBestPractices:
		return s.BestPractices
	case AxisMaintainability:
		return s.Maintainability
	}
	return 0
}

// ScanResult is the immutable aggregate output of one file analysis. The
// same input text, language and catalog version always yield byte-identical
// results: no timestamps, no randomness, no hidden state.
type ScanResult struct {
	Language string `json:"language"`

	Quality         int `json:"quality_score"`
	Performance     int `json:"performance_score"`
	BestPractices   int `json:"best_practices_score"`
	Maintainability int `json:"maintainability_score"`

	ComplexityTier      string `json:"complexity_score"`
	MaintainabilityTier string `json:"maintainability"`

	IssuesFound       []string `json:"issues_found"`
	BestPracticeNotes []string `json:"best_practices"`
	Suggestions       []string `json:"suggestions"`

	Findings []Finding   `json:"findings"`
	Metrics  TextMetrics `json:"metrics"`
}
