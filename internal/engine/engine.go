// Package engine implements the pattern-scoring scan: route text to a
// language profile, evaluate that language's rule catalog, aggregate the
// findings into clamped sub-scores and assemble the final result.
//
// A scan is a pure function of (language, text, catalog). The engine holds
// only read-only state after construction, so any number of scans may run
// concurrently on one Engine.
package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"

	"github.com/codegauge/codegauge/internal/aggregator"
	"github.com/codegauge/codegauge/internal/profiles"
	"github.com/codegauge/codegauge/internal/report"
	"github.com/codegauge/codegauge/internal/rules"
	"github.com/codegauge/codegauge/internal/types"
)

// Engine applies compiled rule catalogs to file text.
type Engine struct {
	compiled map[string][]*types.CompiledRule
}

// New compiles the catalog set and checks it against the registered language
// profiles. Any misconfiguration (bad pattern, unknown category, orphan
// catalog or profile) is returned as an error so the host refuses to start
// instead of mis-scoring at request time.
func New(set rules.CatalogSet) (*Engine, error) {
	if _, ok := profiles.Get(profiles.GenericID); !ok {
		return nil, fmt.Errorf("no generic fallback profile registered")
	}

	compiled := make(map[string][]*types.CompiledRule, len(set))
	for lang, catalog := range set {
		if _, ok := profiles.Get(lang); !ok {
			return nil, fmt.Errorf("catalog language %q has no registered profile", lang)
		}
		rs := make([]*types.CompiledRule, 0, len(catalog.Rules))
		for i := range catalog.Rules {
			cr, err := catalog.Rules[i].Compile()
			if err != nil {
				return nil, fmt.Errorf("language %s: %w", lang, err)
			}
			rs = append(rs, cr)
		}
		compiled[lang] = rs
	}

	for _, p := range profiles.All() {
		if _, ok := compiled[p.ID]; !ok {
			return nil, fmt.Errorf("profile %q has no rule catalog", p.ID)
		}
	}

	return &Engine{compiled: compiled}, nil
}

// Scan analyzes one file and returns its ScanResult. It never fails:
// unsupported languages fall back to the generic profile and undecodable
// content scores as empty text.
func (e *Engine) Scan(req types.ScanRequest) types.ScanResult {
	profile := e.route(req)
	text := decodeText(req.Content)

	// Empty or binary input carries no evidence either way: zero
	// findings, every sub-score at the neutral baseline.
	if text == "" {
		return report.Assemble(report.Input{
			Language:            profile.ID,
			Findings:            nil,
			Scores:              aggregator.BaselineScores(),
			ComplexityTier:      aggregator.TierLow,
			MaintainabilityTier: aggregator.TierExcellent,
			Metrics:             types.TextMetrics{},
		})
	}

	metrics := computeMetrics(text, profile)
	findings := e.evaluateRules(profile.ID, text)
	findings = append(findings, densityFindings(text, metrics, profile)...)

	return report.Assemble(report.Input{
		Language:            profile.ID,
		Findings:            findings,
		Scores:              aggregator.ComputeScores(findings),
		ComplexityTier:      aggregator.ComplexityTier(metrics),
		MaintainabilityTier: aggregator.MaintainabilityTier(findings, metrics, profile.MaxLineLength),
		Metrics:             metrics,
	})
}

// evaluateRules runs every catalog rule against the text in catalog order.
func (e *Engine) evaluateRules(language, text string) []types.Finding {
	var findings []types.Finding

	for _, rule := range e.compiled[language] {
		switch rule.GetMatch() {
		case types.MatchPresence:
			if loc := rule.Regex.FindStringIndex(text); loc != nil {
				findings = append(findings, newFinding(rule, text, loc[0]))
			}
		case types.MatchEach:
			for _, loc := range rule.Regex.FindAllStringIndex(text, -1) {
				findings = append(findings, newFinding(rule, text, loc[0]))
			}
		case types.MatchAbsence:
			if rule.Regex.FindStringIndex(text) == nil {
				findings = append(findings, newFinding(rule, text, -1))
			}
		case types.MatchUnbalanced:
			opens := len(rule.Regex.FindAllStringIndex(text, -1))
			closes := len(rule.CounterRegex.FindAllStringIndex(text, -1))
			if opens > closes {
				loc := rule.Regex.FindStringIndex(text)
				findings = append(findings, newFinding(rule, text, loc[0]))
			}
		}
	}

	return findings
}

func newFinding(rule *types.CompiledRule, text string, offset int) types.Finding {
	f := types.Finding{
		RuleID:     rule.ID,
		Category:   rule.Category,
		Polarity:   rule.Polarity,
		Weight:     rule.Weight,
		Message:    rule.Message,
		Suggestion: rule.Suggestion,
	}
	if offset >= 0 {
		f.Line = lineAt(text, offset)
	}
	return f
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(text string, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return line
}

// decodeText turns raw bytes into scannable text. Binary or invalid UTF-8
// content is treated as zero-length text rather than failing the scan.
func decodeText(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if enry.IsBinary(content) || !utf8.Valid(content) {
		return ""
	}
	return string(content)
}
