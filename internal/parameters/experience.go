package parameters

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// yearsRange is the experience span expected at a level. Max < 0 means no upper bound.
type yearsRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var experienceRanges = map[types.ExperienceLevel]yearsRange{
	types.LevelBeginner:     {Min: 0, Max: 3},
	types.LevelIntermediary: {Min: 2, Max: 8},
	types.LevelSenior:       {Min: 5, Max: -1},
}

// ExperienceFitDetails is reported by experience_fit.
type ExperienceFitDetails struct {
	Years    float64 `json:"years"`
	MinYears float64 `json:"min_years"`
	MaxYears float64 `json:"max_years,omitempty"`
	Distance float64 `json:"distance_years"`
}

// newExperienceFit compares total covered years against the level range.
// Within a year of the range keeps half the points.
func newExperienceFit(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		intervals, err := analysis.ResolveIntervals(v.Resume.Employment, v.Now)
		if err != nil {
			return Result{}, errors.Wrap(err, "resolve employment history")
		}
		years := float64(analysis.TotalExperienceMonths(intervals)) / 12
		rng := experienceRanges[v.Level]

		details := ExperienceFitDetails{Years: math.Round(years*10) / 10, MinYears: rng.Min}
		if rng.Max >= 0 {
			details.MaxYears = rng.Max
		}
		switch {
		case years < rng.Min:
			details.Distance = rng.Min - years
		case rng.Max >= 0 && years > rng.Max:
			details.Distance = years - rng.Max
		}

		var share float64
		msg := fmt.Sprintf("%.1f years of experience fits %s level", years, v.Level)
		switch {
		case details.Distance == 0:
			share = 1
		case details.Distance <= 1:
			share = 0.5
			msg = fmt.Sprintf("%.1f years of experience is just outside the %s range", years, v.Level)
		default:
			msg = fmt.Sprintf("%.1f years of experience is outside the %s range", years, v.Level)
		}
		return Result{Score: share * maxScore, Message: msg, Details: details}, nil
	})
}

// newCareerProgression reads title seniority over time. A single role is
// expected early in a career and neutral later.
func newCareerProgression(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		intervals, err := analysis.ResolveIntervals(v.Resume.Employment, v.Now)
		if err != nil {
			return Result{}, errors.Wrap(err, "resolve employment history")
		}
		p := analysis.AnalyzeProgression(intervals)

		var share float64
		var msg string
		switch {
		case len(intervals) == 1 && v.Level == types.LevelBeginner:
			share, msg = 1, "single role, expected at this level"
		case len(intervals) == 1:
			share, msg = 2.0/3, "single role, no progression to show"
		case p.Regressions == 0 && p.Promotions > 0:
			share, msg = 1, fmt.Sprintf("%d step(s) up in seniority", p.Promotions)
		case p.Regressions == 0:
			share, msg = 2.0/3, "titles hold steady"
		case p.Regressions == 1:
			share, msg = 1.0/3, "one step down in seniority"
		default:
			msg = fmt.Sprintf("%d steps down in seniority", p.Regressions)
		}
		return Result{Score: share * maxScore, Message: msg, Details: p}, nil
	})
}

// RecencyDetails is reported by recency.
type RecencyDetails struct {
	Current     bool   `json:"current"`
	LastEnd     string `json:"last_end"`
	MonthsSince int    `json:"months_since"`
}

// moreRecent reports whether a ends later than b. A current role beats any
// finished one, whatever end date the finished one claims.
func moreRecent(a, b analysis.Interval) bool {
	if a.Ongoing != b.Ongoing {
		return a.Ongoing
	}
	return a.End.Index() > b.End.Index()
}

func newRecency(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		intervals, err := analysis.ResolveIntervals(v.Resume.Employment, v.Now)
		if err != nil {
			return Result{}, errors.Wrap(err, "resolve employment history")
		}
		latest := intervals[0]
		for _, iv := range intervals[1:] {
			if moreRecent(iv, latest) {
				latest = iv
			}
		}
		now := analysis.YearMonth{Year: v.Now.Year(), Month: v.Now.Month()}
		details := RecencyDetails{
			Current: latest.Ongoing,
			LastEnd: latest.End.String(),
		}
		if !latest.Ongoing {
			details.MonthsSince = analysis.MonthsBetween(latest.End, now)
			if details.MonthsSince < 0 {
				details.MonthsSince = 0
			}
		}

		var share float64
		msg := fmt.Sprintf("last role ended %d months ago", details.MonthsSince)
		switch {
		case details.Current:
			share, msg = 1, "currently employed"
		case details.MonthsSince <= 6:
			share = 1
		case details.MonthsSince <= 24:
			share = 0.5
		}
		return Result{Score: share * maxScore, Message: msg, Details: details}, nil
	})
}
