package parameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
)

// PronounDetails is reported by pronoun_usage.
type PronounDetails struct {
	Count int `json:"count"`
}

func newPronounUsage(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		n := analysis.PronounCount(v.Resume.NonBlankBullets())
		var share float64
		switch {
		case n == 0:
			share = 1
		case n <= 2:
			share = 0.5
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("%d first-person pronoun(s) in bullets", n),
			Details: PronounDetails{Count: n},
		}, nil
	})
}

// BuzzwordDetails is reported by buzzwords.
type BuzzwordDetails struct {
	Found []string `json:"found"`
}

func newBuzzwords(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		found := analysis.FindBuzzwords(v.Resume.Text)
		var share float64
		switch {
		case len(found) == 0:
			share = 1
		case len(found) <= 2:
			share = 0.5
		}
		msg := "no buzzwords"
		if len(found) > 0 {
			msg = "buzzwords: " + strings.Join(found, ", ")
		}
		return Result{Score: share * maxScore, Message: msg, Details: BuzzwordDetails{Found: found}}, nil
	})
}

// DateFormatDetails is reported by date_consistency.
type DateFormatDetails struct {
	Formats     []string `json:"formats"`
	Unparseable []string `json:"unparseable,omitempty"`
}

// newDateConsistency counts the formatting families used across all
// employment dates. Ongoing markers are not a family.
func newDateConsistency(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		families := make(map[string]bool)
		details := DateFormatDetails{}
		for _, rec := range v.Resume.Employment {
			for _, d := range []string{rec.StartDate, rec.EndDate} {
				if analysis.IsOngoing(d) {
					continue
				}
				format := analysis.DateFormatOf(d)
				if format == "" {
					details.Unparseable = append(details.Unparseable, d)
					continue
				}
				families[format] = true
			}
		}
		details.Formats = make([]string, 0, len(families))
		for f := range families {
			details.Formats = append(details.Formats, f)
		}
		sort.Strings(details.Formats)

		n := len(details.Formats)
		if len(details.Unparseable) > 0 {
			n++ // free-form dates count as one more style
		}
		var share float64
		switch {
		case n <= 1:
			share = 1
		case n == 2:
			share = 0.5
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("%d date format(s) in use", len(details.Formats)),
			Details: details,
		}, nil
	})
}
