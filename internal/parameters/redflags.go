package parameters

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
)

func newEmploymentGaps(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		report, err := analysis.DetectGaps(v.Resume.Employment, v.Now, cfg.Gaps)
		if err != nil {
			return Result{}, errors.Wrap(err, "detect employment gaps")
		}
		msg := "no employment gaps"
		if len(report.Gaps) > 0 {
			msg = fmt.Sprintf("%d gap(s) totalling %d months", len(report.Gaps), report.TotalGapMonths)
		}
		return penaltyResult(maxScore, report.Penalty, msg, report), nil
	})
}

func newJobHopping(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		report, err := analysis.DetectJobHopping(v.Resume.Employment, v.Now, cfg.JobHopping)
		if err != nil {
			return Result{}, errors.Wrap(err, "detect job hopping")
		}
		msg := "no short stints"
		if len(report.ShortStints) > 0 {
			msg = fmt.Sprintf("%d role(s) shorter than %d months", len(report.ShortStints), cfg.JobHopping.MinTenureMonths)
		}
		return penaltyResult(maxScore, report.Penalty, msg, report), nil
	})
}

// verbRepetitionCap bounds the red-flag repetition penalty.
const verbRepetitionCap = 3

func newVerbRepetition(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		report := analysis.DetectRepetition(v.Resume.NonBlankBullets(), analysis.RepetitionConfig{
			Threshold:      cfg.RepetitionThreshold,
			PenaltyPerVerb: 1,
			MaxPenalty:     verbRepetitionCap,
		})
		return penaltyResult(maxScore, report.Penalty, repetitionMessage(report), report), nil
	})
}
