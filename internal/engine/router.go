package engine

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/codegauge/codegauge/internal/profiles"
	"github.com/codegauge/codegauge/internal/types"
)

// route selects exactly one language profile for a request. Precedence:
// explicit hint, then file extension, then content detection through go-enry
// (GitHub Linguist data), then the generic fallback. Routing never fails.
func (e *Engine) route(req types.ScanRequest) *profiles.Profile {
	if req.LanguageHint != "" {
		if p, ok := profiles.Get(normalizeHint(req.LanguageHint)); ok {
			return p
		}
	}

	if ext := filepath.Ext(req.Filename); ext != "" {
		if p, ok := profiles.ByExtension(ext); ok {
			return p
		}
	}

	if len(req.Content) > 0 && !enry.IsBinary(req.Content) {
		lang := enry.GetLanguage(filepath.Base(req.Filename), req.Content)
		if p, ok := profiles.ByEnryName(lang); ok {
			return p
		}
	}

	generic, _ := profiles.Get(profiles.GenericID)
	return generic
}

// normalizeHint maps common language aliases onto profile ids.
func normalizeHint(hint string) string {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "c++", "cpp", "cc", "c":
		return "cpp"
	case "golang", "go":
		return "go"
	case "js", "javascript", "ts", "typescript":
		return "javascript"
	case "py", "python":
		return "python"
	default:
		return strings.ToLower(strings.TrimSpace(hint))
	}
}
