package scoring

import (
	"math"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// Rating thresholds on the normalized score
const (
	excellentThreshold        = 85
	goodThreshold             = 70
	fairThreshold             = 55
	needsImprovementThreshold = 40
)

// Aggregation is the category breakdown and composite score of a run.
type Aggregation struct {
	Categories      []types.CategoryAggregate
	RawScore        float64
	MaxAvailable    int
	NormalizedScore float64
}

// Aggregate sums results per category. Skipped parameters never count
// toward the available points; failed ones count when countErrors is set.
func Aggregate(results []types.ParameterResult, countErrors bool) Aggregation {
	byCategory := make(map[types.Category]*types.CategoryAggregate)
	categories := types.Categories()
	for _, c := range categories {
		byCategory[c] = &types.CategoryAggregate{Category: c}
	}

	agg := Aggregation{}
	for _, r := range results {
		cat, ok := byCategory[r.Category]
		if !ok {
			continue
		}
		cat.Score += r.Score
		cat.Max += r.MaxScore
		if counts(r.Status, countErrors) {
			cat.Available += r.MaxScore
			agg.RawScore += r.Score
			agg.MaxAvailable += r.MaxScore
		}
	}

	agg.Categories = make([]types.CategoryAggregate, 0, len(categories))
	for _, c := range categories {
		cat := byCategory[c]
		cat.Score = round2(cat.Score)
		agg.Categories = append(agg.Categories, *cat)
	}
	agg.RawScore = round2(agg.RawScore)
	agg.NormalizedScore = Normalize(agg.RawScore, agg.MaxAvailable)
	return agg
}

func counts(status types.Status, countErrors bool) bool {
	switch status {
	case types.StatusSuccess:
		return true
	case types.StatusError:
		return countErrors
	}
	return false
}

// Normalize scales raw points to 0-100 against the available points.
// No available points scores zero.
func Normalize(raw float64, available int) float64 {
	if available <= 0 {
		return 0
	}
	return round2(math.Min(100, raw/float64(available)*100))
}

// RatingFor maps a normalized score to its rating label.
func RatingFor(score float64) types.Rating {
	switch {
	case score >= excellentThreshold:
		return types.RatingExcellent
	case score >= goodThreshold:
		return types.RatingGood
	case score >= fairThreshold:
		return types.RatingFair
	case score >= needsImprovementThreshold:
		return types.RatingNeedsImprovement
	}
	return types.RatingPoor
}
