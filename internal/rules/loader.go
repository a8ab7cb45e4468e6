// Package rules loads the per-language pattern catalogs that drive scans.
// Catalogs are static, versioned data assets: embedded YAML documents parsed
// and validated once at process start and never mutated afterwards.
package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codegauge/codegauge/internal/types"
	"github.com/codegauge/codegauge/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed catalogs
var coreCatalogFS embed.FS

const catalogSchema = "rule-catalog.json"

// CatalogSet holds one catalog per language id.
type CatalogSet map[string]*types.Catalog

// Languages returns the language ids present in the set, sorted.
func (s CatalogSet) Languages() []string {
	langs := make([]string, 0, len(s))
	for lang := range s {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// LoadEmbedded loads and validates all embedded catalogs.
func LoadEmbedded() (CatalogSet, error) {
	set := make(CatalogSet)

	err := fs.WalkDir(coreCatalogFS, "catalogs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}

		content, err := coreCatalogFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read catalog %s: %w", path, err)
		}

		catalog, err := parseCatalog(path, content)
		if err != nil {
			return err
		}

		return set.add(path, catalog)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded catalogs: %w", err)
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("no embedded catalogs found")
	}

	return set, nil
}

// LoadExternal loads additional catalogs from a directory on disk. External
// rules for a language already present are appended after the embedded ones,
// so display order stays embedded-first.
func (s CatalogSet) LoadExternal(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read catalog %s: %w", path, err)
		}

		catalog, err := parseCatalog(path, content)
		if err != nil {
			return err
		}

		if existing, ok := s[catalog.Language]; ok {
			existing.Rules = append(existing.Rules, catalog.Rules...)
			return nil
		}
		return s.add(path, catalog)
	})
}

func (s CatalogSet) add(path string, catalog *types.Catalog) error {
	if _, dup := s[catalog.Language]; dup {
		return fmt.Errorf("catalog %s: duplicate catalog for language %q", path, catalog.Language)
	}
	s[catalog.Language] = catalog
	return nil
}

func parseCatalog(path string, content []byte) (*types.Catalog, error) {
	// Schema validation first: shape errors surface with field names
	// before the stricter semantic checks run.
	if err := validation.ValidateYAML(catalogSchema, content); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	var catalog types.Catalog
	if err := yaml.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}

	return &catalog, nil
}

// validateCatalog enforces the semantic invariants the JSON schema cannot
// express: weight/polarity sign agreement, counter pattern rules, unique ids.
func validateCatalog(catalog *types.Catalog) error {
	if catalog.Language == "" {
		return fmt.Errorf("language is required")
	}
	if len(catalog.Rules) == 0 {
		return fmt.Errorf("language %s: catalog has no rules", catalog.Language)
	}

	seen := make(map[string]bool, len(catalog.Rules))
	for i := range catalog.Rules {
		rule := &catalog.Rules[i]
		if err := rule.Validate(); err != nil {
			return err
		}
		if seen[rule.ID] {
			return fmt.Errorf("duplicate rule id %q", rule.ID)
		}
		seen[rule.ID] = true
	}
	return nil
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
