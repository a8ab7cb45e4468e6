package profiles_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegauge/codegauge/internal/profiles"
	_ "github.com/codegauge/codegauge/internal/profiles/cpp"
	_ "github.com/codegauge/codegauge/internal/profiles/generic"
	_ "github.com/codegauge/codegauge/internal/profiles/golang"
	_ "github.com/codegauge/codegauge/internal/profiles/java"
	_ "github.com/codegauge/codegauge/internal/profiles/javascript"
	_ "github.com/codegauge/codegauge/internal/profiles/python"
)

func TestRegisteredProfiles(t *testing.T) {
	all := profiles.All()
	ids := make([]string, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}

	assert.Equal(t, []string{"cpp", "generic", "go", "java", "javascript", "python"}, ids)
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestGenericFallbackRegistered(t *testing.T) {
	p, ok := profiles.Get(profiles.GenericID)
	require.True(t, ok)
	assert.Empty(t, p.Extensions)
	assert.Empty(t, p.DecisionPatterns)
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".cpp", "cpp"},
		{".h", "cpp"},
		{".go", "go"},
		{".java", "java"},
		{".py", "python"},
		{".js", "javascript"},
		{".ts", "javascript"},
		{".TSX", "javascript"},
	}

	for _, tt := range tests {
		p, ok := profiles.ByExtension(tt.ext)
		require.True(t, ok, "extension %s", tt.ext)
		assert.Equal(t, tt.want, p.ID)
	}

	_, ok := profiles.ByExtension(".xyz")
	assert.False(t, ok)
}

func TestByEnryName(t *testing.T) {
	p, ok := profiles.ByEnryName("Python")
	require.True(t, ok)
	assert.Equal(t, "python", p.ID)

	_, ok = profiles.ByEnryName("Brainfuck")
	assert.False(t, ok)
}

func TestProfilesCarryLineLimits(t *testing.T) {
	for _, p := range profiles.All() {
		assert.Greater(t, p.MaxLineLength, 0, "profile %s", p.ID)
		assert.NotEmpty(t, p.CommentPrefixes, "profile %s", p.ID)
	}
}
