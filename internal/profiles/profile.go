// Package profiles defines the per-language scanner profiles and their
// registry. A profile carries everything about a language that is not rule
// content: routing extensions, comment markers, decision-point patterns for
// the complexity tier, and the line-length limit.
package profiles

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// GenericID is the fallback language id used when routing cannot resolve a
// specific language. A profile with this id must always be registered.
const GenericID = "generic"

// Profile describes one supported language.
type Profile struct {
	// ID is the language id used in catalogs and results (e.g. "cpp").
	ID string
	// DisplayName is the human-readable language name (e.g. "C++").
	DisplayName string
	// Extensions routes files to this profile, lowercase with dot.
	Extensions []string
	// EnryNames maps go-enry detection results onto this profile.
	EnryNames []string
	// CommentPrefixes are the line-comment markers used for the comment
	// ratio metric.
	CommentPrefixes []string
	// MaxLineLength is the style limit for the long-line density check
	// and the maintainability tier demotion.
	MaxLineLength int
	// DecisionPatterns match decision points (conditionals, loops,
	// logical operators) for the complexity tier.
	DecisionPatterns []*regexp.Regexp
}

var (
	mu          sync.RWMutex
	byID        = make(map[string]*Profile)
	byExtension = make(map[string]*Profile)
	byEnryName  = make(map[string]*Profile)
)

// Register adds a language profile to the registry. Called from the profile
// packages' init functions, before any scan runs.
func Register(p *Profile) {
	mu.Lock()
	defer mu.Unlock()

	byID[p.ID] = p
	for _, ext := range p.Extensions {
		byExtension[strings.ToLower(ext)] = p
	}
	for _, name := range p.EnryNames {
		byEnryName[strings.ToLower(name)] = p
	}
}

// Get returns the profile for a language id.
func Get(id string) (*Profile, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byID[id]
	return p, ok
}

// ByExtension returns the profile owning a file extension (".cpp").
func ByExtension(ext string) (*Profile, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byExtension[strings.ToLower(ext)]
	return p, ok
}

// ByEnryName returns the profile for a go-enry language name.
func ByEnryName(name string) (*Profile, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byEnryName[strings.ToLower(name)]
	return p, ok
}

// All returns every registered profile, sorted by id for stable output.
func All() []*Profile {
	mu.RLock()
	defer mu.RUnlock()

	all := make([]*Profile, 0, len(byID))
	for _, p := range byID {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// MustCompile compiles a set of decision-point patterns. Profiles are static
// data; a bad pattern is a programming error caught at init.
func MustCompile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
