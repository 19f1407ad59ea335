package parameters

import (
	"fmt"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
)

// balanceShares maps the section balance penalty to a share of the points.
var balanceShares = []float64{1, 0.75, 0.375}

func newSectionBalance(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		report := analysis.AnalyzeSectionBalance(v.Resume, cfg.Balance)
		violations := -report.Penalty

		var share float64
		if violations < len(balanceShares) {
			share = balanceShares[violations]
		}
		msg := "section lengths are balanced"
		if len(report.Violations) > 0 {
			msg = fmt.Sprintf("%d section(s) out of proportion", len(report.Violations))
		}
		return Result{Score: share * maxScore, Message: msg, Details: report}, nil
	})
}

// longBulletWords marks a bullet as a run-on for reporting.
const longBulletWords = 35

func newSentenceReadability(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		ra := analysis.AnalyzeReadability(v.Resume.NonBlankBullets(), longBulletWords)

		var share float64
		switch {
		case ra.FleschEase >= 50:
			share = 1
		case ra.FleschEase >= 30:
			share = 2.0 / 3
		case ra.FleschEase >= 10:
			share = 1.0 / 3
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("reading ease %.0f, %.1f words per bullet", ra.FleschEase, ra.WordsPerSentence),
			Details: ra,
		}, nil
	})
}
