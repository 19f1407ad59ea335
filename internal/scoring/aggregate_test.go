package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

func TestAggregate_CategoriesAndDenominator(t *testing.T) {
	results := []types.ParameterResult{
		{ID: "a", Category: types.CategoryKeywordMatching, Score: 10, MaxScore: 15, Status: types.StatusSuccess},
		{ID: "b", Category: types.CategoryKeywordMatching, Score: 0, MaxScore: 5, Status: types.StatusSkipped},
		{ID: "c", Category: types.CategoryPolish, Score: 1.5, MaxScore: 2, Status: types.StatusSuccess},
		{ID: "d", Category: types.CategoryPolish, Score: 0, MaxScore: 3, Status: types.StatusError},
	}

	counted := Aggregate(results, true)
	assert.Equal(t, 20, counted.MaxAvailable)
	assert.Equal(t, 11.5, counted.RawScore)
	assert.Equal(t, 57.5, counted.NormalizedScore)

	require.Len(t, counted.Categories, len(types.Categories()))
	keyword := counted.Categories[0]
	assert.Equal(t, types.CategoryKeywordMatching, keyword.Category)
	assert.Equal(t, 20, keyword.Max)
	assert.Equal(t, 15, keyword.Available)
	assert.Equal(t, 10.0, keyword.Score)

	excluded := Aggregate(results, false)
	assert.Equal(t, 17, excluded.MaxAvailable)
	assert.Equal(t, 67.65, excluded.NormalizedScore)
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil, true)

	assert.Zero(t, agg.MaxAvailable)
	assert.Zero(t, agg.NormalizedScore)
	assert.Len(t, agg.Categories, len(types.Categories()))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(5, 0))
	assert.Equal(t, 100.0, Normalize(12, 10))
	assert.Equal(t, 33.33, Normalize(1, 3))
}

func TestRatingFor(t *testing.T) {
	tests := []struct {
		score float64
		want  types.Rating
	}{
		{100, types.RatingExcellent},
		{85, types.RatingExcellent},
		{84.99, types.RatingGood},
		{70, types.RatingGood},
		{55, types.RatingFair},
		{40, types.RatingNeedsImprovement},
		{39.99, types.RatingPoor},
		{0, types.RatingPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingFor(tt.score), "score %v", tt.score)
	}
}
