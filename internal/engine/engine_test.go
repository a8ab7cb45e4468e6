package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegauge/codegauge/internal/aggregator"
	"github.com/codegauge/codegauge/internal/rules"
	"github.com/codegauge/codegauge/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	set, err := rules.LoadEmbedded()
	require.NoError(t, err)
	eng, err := New(set)
	require.NoError(t, err)
	return eng
}

func scanString(t *testing.T, eng *Engine, filename, content string) types.ScanResult {
	t.Helper()
	return eng.Scan(types.ScanRequest{Filename: filename, Content: []byte(content)})
}

func TestNewRejectsBrokenCatalog(t *testing.T) {
	set, err := rules.LoadEmbedded()
	require.NoError(t, err)

	set["go"].Rules = append(set["go"].Rules, types.Rule{
		ID:       "broken",
		Pattern:  `([`,
		Category: types.CategoryStyle,
		Polarity: types.PolarityIssue,
		Weight:   -1,
		Message:  "broken",
	})

	_, err = New(set)
	assert.Error(t, err)
}

func TestNewRejectsCatalogWithoutProfile(t *testing.T) {
	set, err := rules.LoadEmbedded()
	require.NoError(t, err)

	set["cobol"] = &types.Catalog{
		Language: "cobol",
		Rules:    set["generic"].Rules,
	}

	_, err = New(set)
	assert.Error(t, err)
}

func TestScanEmptyInputScoresBaseline(t *testing.T) {
	eng := newTestEngine(t)

	files := []string{"main.cpp", "Main.java", "main.go", "main.py", "main.js", "notes.txt"}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			result := scanString(t, eng, file, "")

			assert.Empty(t, result.Findings)
			assert.Equal(t, aggregator.Baseline, result.Quality)
			assert.Equal(t, aggregator.Baseline, result.Performance)
			assert.Equal(t, aggregator.Baseline, result.BestPractices)
			assert.Equal(t, aggregator.Baseline, result.Maintainability)
			assert.Equal(t, aggregator.TierLow, result.ComplexityTier)
			assert.Equal(t, aggregator.TierExcellent, result.MaintainabilityTier)
		})
	}
}

func TestScanBinaryInputScoresBaseline(t *testing.T) {
	eng := newTestEngine(t)

	result := eng.Scan(types.ScanRequest{
		Filename: "blob.go",
		Content:  []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01, 0x02},
	})

	assert.Empty(t, result.Findings)
	assert.Equal(t, aggregator.Baseline, result.Quality)
	assert.Equal(t, aggregator.TierLow, result.ComplexityTier)
}

func TestScanIsDeterministic(t *testing.T) {
	eng := newTestEngine(t)
	content := `package main

import "fmt"

func run() error {
	if err := do(); err != nil {
		return fmt.Errorf("do: %w", err)
	}
	return nil
}
`
	first, err := json.Marshal(scanString(t, eng, "main.go", content))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := json.Marshal(scanString(t, eng, "main.go", content))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestScanCppMemoryLeak(t *testing.T) {
	eng := newTestEngine(t)

	leaky := `int* numbers() {
    int* p = new int[10];
    return p;
}
`
	result := scanString(t, eng, "leak.cpp", leaky)
	assert.Equal(t, "cpp", result.Language)
	assert.Equal(t, 50, result.Quality, "new without delete costs 20 from the baseline")
	assert.Contains(t, result.IssuesFound, "Potential memory leak: new without corresponding delete")
	assert.Contains(t, result.Suggestions, "Use smart pointers or ensure every new has a matching delete")

	balanced := `int* numbers() {
    int* p = new int[10];
    delete[] p;
    return p;
}
`
	result = scanString(t, eng, "leak.cpp", balanced)
	assert.Equal(t, aggregator.Baseline, result.Quality)
	assert.NotContains(t, result.IssuesFound, "Potential memory leak: new without corresponding delete")
}

func TestScanCppSmartPointers(t *testing.T) {
	eng := newTestEngine(t)

	content := `#include <memory>

std::unique_ptr<int> make() {
    return std::make_unique<int>(42);
}
`
	result := scanString(t, eng, "smart.cpp", content)
	assert.Equal(t, "cpp", result.Language)
	assert.Greater(t, result.Quality, aggregator.Baseline)
	assert.Contains(t, result.BestPracticeNotes, "Uses modern C++ smart pointers")
}

func TestScanPresenceRuleFiresOnce(t *testing.T) {
	eng := newTestEngine(t)

	one := "std::unique_ptr<int> a;\n"
	five := `std::unique_ptr<int> a;
std::unique_ptr<int> b;
std::unique_ptr<int> c;
std::unique_ptr<int> d;
std::unique_ptr<int> e;
`
	first := scanString(t, eng, "a.cpp", one)
	repeated := scanString(t, eng, "b.cpp", five)

	assert.Equal(t, first.Quality, repeated.Quality,
		"a presence rule must not compound with repetition")
}

func TestScanEachRuleCompounds(t *testing.T) {
	eng := newTestEngine(t)

	one := `void f(char* d, const char* s) { strcpy(d, s); }
`
	three := `void f(char* d, const char* s) {
    strcpy(d, s);
    strcpy(d, s);
    strcpy(d, s);
}
`
	first := scanString(t, eng, "a.cpp", one)
	repeated := scanString(t, eng, "b.cpp", three)

	assert.Equal(t, first.Quality-24, repeated.Quality,
		"each extra unsafe call costs its full weight again")
}

func TestScanClampsAtFloor(t *testing.T) {
	eng := newTestEngine(t)

	content := `void f(char* d, const char* s) {
    strcpy(d, s);
    strcat(d, s);
    sprintf(d, "%s", s);
    strcpy(d, s);
    strcat(d, s);
    sprintf(d, "%s", s);
    strcpy(d, s);
}
`
	result := scanString(t, eng, "unsafe.cpp", content)
	assert.Equal(t, 0, result.Quality)
}

func TestScanGoErrorHandling(t *testing.T) {
	eng := newTestEngine(t)

	handled := `package main

func run() error {
	if err := do(); err != nil {
		return err
	}
	return nil
}
`
	ignored := `package main

func run() {
	_ = do()
}
`
	good := scanString(t, eng, "main.go", handled)
	assert.Equal(t, "go", good.Language)
	assert.Greater(t, good.Quality, aggregator.Baseline)
	assert.Contains(t, good.BestPracticeNotes, "Proper Go error handling pattern")

	bad := scanString(t, eng, "main.go", ignored)
	assert.Less(t, bad.Quality, aggregator.Baseline)
	assert.Contains(t, bad.IssuesFound, "Error return discarded with blank identifier")
}

func TestScanGoMissingPackageClause(t *testing.T) {
	eng := newTestEngine(t)

	content := `func run() {}
`
	result := scanString(t, eng, "fragment.go", content)
	assert.Equal(t, 55, result.Maintainability)
	assert.Contains(t, result.IssuesFound, "Missing package declaration")
}

func TestScanCategoriesScoreIndependently(t *testing.T) {
	eng := newTestEngine(t)

	base := `package main

func run() string {
	s := "a"
	return s
}
`
	concat := `package main

func run() string {
	s := "a"
	s += "b"
	return s
}
`
	clean := scanString(t, eng, "main.go", base)
	slow := scanString(t, eng, "main.go", concat)

	assert.Equal(t, clean.Quality, slow.Quality)
	assert.Equal(t, clean.BestPractices, slow.BestPractices)
	assert.Equal(t, clean.Maintainability, slow.Maintainability)
	assert.Equal(t, clean.Performance-5, slow.Performance)
}

func TestScanFindingsOrderedByCategoryPriority(t *testing.T) {
	eng := newTestEngine(t)

	content := `int* run() {
    int* p = new int[10];
    char buf[8];
    strcpy(buf, "x");
    return p;
}
`
	result := scanString(t, eng, "mixed.cpp", content)
	require.NotEmpty(t, result.Findings)

	for i := 1; i < len(result.Findings); i++ {
		prev := types.Priority(result.Findings[i-1].Category)
		cur := types.Priority(result.Findings[i].Category)
		assert.LessOrEqual(t, prev, cur)
	}
}

func TestScanUnknownLanguageFallsBackToGeneric(t *testing.T) {
	eng := newTestEngine(t)

	content := `some plain prose without any code in it
spread over a couple of lines
`
	result := scanString(t, eng, "notes.xyz", content)
	assert.Equal(t, "generic", result.Language)
	assert.Equal(t, aggregator.TierLow, result.ComplexityTier)
}

func TestScanGenericTodoMarkers(t *testing.T) {
	eng := newTestEngine(t)

	content := `TODO tighten this up
FIXME handle the edge case
`
	result := scanString(t, eng, "notes.xyz", content)
	assert.Equal(t, "generic", result.Language)
	assert.Contains(t, result.IssuesFound, "Unresolved TODO/FIXME marker")
	assert.Equal(t, aggregator.Baseline-4, result.BestPractices)
}

func TestScanResultJSONShape(t *testing.T) {
	eng := newTestEngine(t)

	result := scanString(t, eng, "main.go", "package main\n")
	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"language", "quality_score", "performance_score", "best_practices_score",
		"maintainability_score", "complexity_score", "maintainability",
		"issues_found", "best_practices", "suggestions", "findings", "metrics",
	} {
		assert.Contains(t, decoded, key)
	}
}
