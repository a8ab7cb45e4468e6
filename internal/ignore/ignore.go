// Package ignore applies .gitignore files to directory walks. Pattern sets
// are kept as a stack: each directory's .gitignore applies to that directory
// and everything below it.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// patternSet holds the patterns of one .gitignore file.
type patternSet struct {
	dir      string
	patterns []string
}

// Matcher accumulates .gitignore pattern sets during a walk.
type Matcher struct {
	stack []patternSet
}

// NewMatcher creates an empty matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// LoadDir reads dir/.gitignore, if present, and pushes its patterns. Errors
// reading the file are treated as no patterns.
func (m *Matcher) LoadDir(dir string) {
	patterns, err := readPatterns(filepath.Join(dir, ".gitignore"))
	if err != nil || len(patterns) == 0 {
		return
	}
	m.stack = append(m.stack, patternSet{dir: dir, patterns: patterns})
}

// Match reports whether path is ignored by any loaded pattern set. Patterns
// match relative to the directory their .gitignore was found in.
func (m *Matcher) Match(path string) bool {
	for _, set := range m.stack {
		rel, err := filepath.Rel(set.dir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		base := filepath.Base(path)

		for _, pattern := range set.patterns {
			if matches(pattern, rel, base) {
				return true
			}
		}
	}
	return false
}

// matches checks one pattern against the relative path, the base name and
// everything under a matching directory.
func matches(pattern, rel, base string) bool {
	// Patterns with a slash anchor to the .gitignore's directory; bare
	// patterns match at any depth, like git does.
	if strings.Contains(pattern, "/") {
		pattern = strings.TrimPrefix(pattern, "/")
	} else if ok, err := doublestar.Match(pattern, base); err == nil && ok {
		return true
	}

	if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
		return true
	}
	if ok, err := doublestar.Match(pattern+"/**", rel); err == nil && ok {
		return true
	}
	return false
}

// readPatterns loads the usable patterns from one .gitignore file. Comments,
// blank lines and negations are skipped; negation support would need full
// git matching semantics and is not worth approximating badly.
func readPatterns(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		patterns = append(patterns, strings.TrimSuffix(line, "/"))
	}
	return patterns, scanner.Err()
}
