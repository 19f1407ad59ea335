// Package feedback turns parameter results into ranked strengths and
// weaknesses with concrete next steps.
package feedback

import (
	"math"
	"sort"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// Percentage bands for feedback selection
const (
	WeaknessBelow   = 70.0
	StrengthAtLeast = 80.0
)

type ranked struct {
	result types.ParameterResult
	pct    float64
}

// Build selects up to topN weaknesses (lowest percentage first) and topN
// strengths (highest first) from successful results. Ties keep the order
// of results, which is registry order.
func Build(results []types.ParameterResult, topN int) types.Feedback {
	weak := make([]ranked, 0)
	strong := make([]ranked, 0)
	for _, r := range results {
		if r.Status != types.StatusSuccess || r.MaxScore <= 0 {
			continue
		}
		pct := r.Percentage()
		switch {
		case pct < WeaknessBelow:
			weak = append(weak, ranked{result: r, pct: pct})
		case pct >= StrengthAtLeast:
			strong = append(strong, ranked{result: r, pct: pct})
		}
	}

	sort.SliceStable(weak, func(i, j int) bool { return weak[i].pct < weak[j].pct })
	sort.SliceStable(strong, func(i, j int) bool { return strong[i].pct > strong[j].pct })

	return types.Feedback{
		Strengths:  items(strong, topN, false),
		Weaknesses: items(weak, topN, true),
	}
}

func items(list []ranked, topN int, weakness bool) []types.FeedbackItem {
	if topN > 0 && len(list) > topN {
		list = list[:topN]
	}
	out := make([]types.FeedbackItem, 0, len(list))
	for _, r := range list {
		item := types.FeedbackItem{
			ParameterID: r.result.ID,
			Name:        r.result.Name,
			Category:    r.result.Category,
			Score:       r.result.Score,
			MaxScore:    r.result.MaxScore,
			Percentage:  math.Round(r.pct*10) / 10,
		}
		if weakness {
			item.Message = ImprovementMessage(r.result.ID)
			item.Hint = Hint(r.result)
		} else {
			item.Message = PraiseMessage(r.result.ID)
			item.Hint = r.result.Message
		}
		out = append(out, item)
	}
	return out
}
