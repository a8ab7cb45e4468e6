package types

import (
	"fmt"
	"regexp"
)

// MatchMode selects how a rule's pattern is evaluated against file text.
type MatchMode string

const (
	// MatchPresence emits at most one finding no matter how often the
	// pattern occurs.
	MatchPresence MatchMode = "presence"
	// MatchEach emits one finding per non-overlapping match.
	MatchEach MatchMode = "each"
	// MatchAbsence emits one finding when the pattern does not occur at
	// all. Absence rules are skipped for empty input.
	MatchAbsence MatchMode = "absence"
	// MatchUnbalanced emits at most one finding when the pattern occurs
	// more often than the counter pattern (e.g. new without delete).
	MatchUnbalanced MatchMode = "unbalanced"
)

// Rule is one entry of a language's pattern catalog. Rules are defined once
// at process start and shared read-only across scans.
type Rule struct {
	ID             string    `yaml:"id" json:"id"`
	Pattern        string    `yaml:"pattern" json:"pattern"`
	CounterPattern string    `yaml:"counter_pattern,omitempty" json:"counter_pattern,omitempty"`
	Match          MatchMode `yaml:"match,omitempty" json:"match,omitempty"`
	Category       Category  `yaml:"category" json:"category"`
	Polarity       Polarity  `yaml:"polarity" json:"polarity"`
	Weight         int       `yaml:"weight" json:"weight"`
	Message        string    `yaml:"message" json:"message"`
	Suggestion     string    `yaml:"suggestion,omitempty" json:"suggestion,omitempty"`
}

// GetMatch returns the rule's match mode, defaulting to presence.
func (r *Rule) GetMatch() MatchMode {
	if r.Match == "" {
		return MatchPresence
	}
	return r.Match
}

// CompiledRule is a rule with its patterns compiled. Compilation happens once
// at engine construction; a pattern that does not compile aborts startup.
type CompiledRule struct {
	Rule
	Regex        *regexp.Regexp
	CounterRegex *regexp.Regexp
}

// Compile validates and compiles the rule's patterns.
func (r *Rule) Compile() (*CompiledRule, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	regex, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("rule %s: invalid pattern: %w", r.ID, err)
	}

	compiled := &CompiledRule{Rule: *r, Regex: regex}

	if r.GetMatch() == MatchUnbalanced {
		counter, err := regexp.Compile(r.CounterPattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: invalid counter pattern: %w", r.ID, err)
		}
		compiled.CounterRegex = counter
	}

	return compiled, nil
}

// Validate checks the rule's structural invariants. Any violation is a
// catalog misconfiguration and must fail engine construction, not a scan.
func (r *Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule with pattern %q: id is required", r.Pattern)
	}
	if r.Pattern == "" {
		return fmt.Errorf("rule %s: pattern is required", r.ID)
	}
	if r.Message == "" {
		return fmt.Errorf("rule %s: message is required", r.ID)
	}
	if _, err := AxisFor(r.Category); err != nil {
		return fmt.Errorf("rule %s: %w", r.ID, err)
	}

	switch r.GetMatch() {
	case MatchPresence, MatchEach, MatchAbsence:
		if r.CounterPattern != "" {
			return fmt.Errorf("rule %s: counter_pattern is only valid with match: unbalanced", r.ID)
		}
	case MatchUnbalanced:
		if r.CounterPattern == "" {
			return fmt.Errorf("rule %s: match: unbalanced requires counter_pattern", r.ID)
		}
	default:
		return fmt.Errorf("rule %s: unknown match mode %q", r.ID, r.Match)
	}

	switch r.Polarity {
	case PolarityIssue:
		if r.Weight >= 0 {
			return fmt.Errorf("rule %s: issue rules must carry a negative weight, got %d", r.ID, r.Weight)
		}
	case PolarityGoodPractice:
		if r.Weight <= 0 {
			return fmt.Errorf("rule %s: good-practice rules must carry a positive weight, got %d", r.ID, r.Weight)
		}
	default:
		return fmt.Errorf("rule %s: unknown polarity %q", r.ID, r.Polarity)
	}

	return nil
}

// Catalog is the full set of rules for one language, loaded from a YAML
// catalog document.
type Catalog struct {
	Language string `yaml:"language" json:"language"`
	Version  int    `yaml:"version" json:"version"`
	Rules    []Rule `yaml:"rules" json:"rules"`
}
