package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisForCoversEveryCategory(t *testing.T) {
	for _, category := range AllCategories() {
		axis, err := AxisFor(category)
		require.NoError(t, err, "category %s must map to an axis", category)
		assert.NotEmpty(t, axis)
	}
}

func TestAxisForMapping(t *testing.T) {
	tests := []struct {
		category Category
		axis     Axis
	}{
		{CategoryMemory, AxisQuality},
		{CategorySecurity, AxisQuality},
		{CategoryErrorHandling, AxisQuality},
		{CategoryPerformance, AxisPerformance},
		{CategoryConcurrency, AxisPerformance},
		{CategoryStyle, AxisBestPractices},
		{CategoryModernity, AxisBestPractices},
		{CategoryOrganization, AxisMaintainability},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			axis, err := AxisFor(tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.axis, axis)
		})
	}
}

func TestAxisForUnknownCategory(t *testing.T) {
	_, err := AxisFor(Category("readability"))
	assert.Error(t, err)
}

func TestPriorityOrder(t *testing.T) {
	categories := AllCategories()
	for i := 1; i < len(categories); i++ {
		assert.Less(t, Priority(categories[i-1]), Priority(categories[i]),
			"%s must sort before %s", categories[i-1], categories[i])
	}

	// Unknown categories sort after every known one.
	unknown := Priority(Category("readability"))
	for _, category := range categories {
		assert.Less(t, Priority(category), unknown)
	}
}
