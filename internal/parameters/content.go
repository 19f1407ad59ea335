package parameters

import (
	"fmt"
	"math"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// VerbTarget is the action-verb expectation for one level.
type VerbTarget struct {
	Coverage    float64 `json:"coverage_pct"`
	AverageTier float64 `json:"average_tier"`
}

var verbTargets = map[types.ExperienceLevel]VerbTarget{
	types.LevelBeginner:     {Coverage: 50, AverageTier: 1.8},
	types.LevelIntermediary: {Coverage: 60, AverageTier: 2.2},
	types.LevelSenior:       {Coverage: 70, AverageTier: 2.6},
}

// VerbDetails is reported by action_verbs.
type VerbDetails struct {
	analysis.VerbAnalysis
	Target VerbTarget `json:"target"`
}

func newActionVerbs(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		va := analysis.AnalyzeVerbs(v.Resume.NonBlankBullets())
		target := verbTargets[v.Level]
		coverageMet := va.Coverage >= target.Coverage
		tierMet := va.AverageTier >= target.AverageTier

		var share float64
		var msg string
		switch {
		case coverageMet && tierMet:
			share, msg = 1, "action verbs meet the level expectation"
		case coverageMet || tierMet:
			share, msg = 0.6, "action verbs partly meet the level expectation"
		case va.Coverage >= target.Coverage-20:
			share, msg = 0.3, "action verb coverage is close to the level expectation"
		default:
			msg = "too few bullets open with a strong action verb"
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("%s (%.0f%% strong, average tier %.1f)", msg, va.Coverage, va.AverageTier),
			Details: VerbDetails{VerbAnalysis: va, Target: target},
		}, nil
	})
}

var quantificationTargets = map[types.ExperienceLevel]float64{
	types.LevelBeginner:     30,
	types.LevelIntermediary: 40,
	types.LevelSenior:       50,
}

// QuantificationDetails is reported by quantification.
type QuantificationDetails struct {
	analysis.QuantAnalysis
	Target float64 `json:"target"`
}

func newQuantification(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		qa := analysis.Quantify(v.Resume.NonBlankBullets())
		target := quantificationTargets[v.Level]

		var share float64
		switch {
		case qa.WeightedRate >= target:
			share = 1
		case qa.WeightedRate >= target-10:
			share = 0.6
		case qa.WeightedRate >= target-20:
			share = 0.3
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("weighted quantification rate %.0f%% against a target of %.0f%%", qa.WeightedRate, target),
			Details: QuantificationDetails{QuantAnalysis: qa, Target: target},
		}, nil
	})
}

// narrativeFloors are the average structure points expected per level.
var narrativeFloors = map[types.ExperienceLevel]float64{
	types.LevelBeginner:     4,
	types.LevelIntermediary: 5.5,
	types.LevelSenior:       7,
}

// CARDetails is reported by car_structure.
type CARDetails struct {
	analysis.CARAnalysis
	Floor      float64 `json:"floor"`
	MeetsFloor bool    `json:"meets_floor"`
}

// newCARStructure scores average structure points out of ten. The level
// floor only shapes the message.
func newCARStructure(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		ca := analysis.AnalyzeCAR(v.Resume.NonBlankBullets())
		floor := narrativeFloors[v.Level]
		details := CARDetails{CARAnalysis: ca, Floor: floor, MeetsFloor: ca.AveragePoints >= floor}

		msg := fmt.Sprintf("bullets average %.1f of %d structure points", ca.AveragePoints, analysis.CARMaxPoints)
		if !details.MeetsFloor {
			msg += fmt.Sprintf(", below the %.1f expected at %s level", floor, v.Level)
		}
		return Result{
			Score:   math.Min(1, ca.AveragePoints/analysis.CARMaxPoints) * maxScore,
			Message: msg,
			Details: details,
		}, nil
	})
}

// scopeMaxPoints is the top of every scope dimension ladder.
const scopeMaxPoints = 5

func newImpactScope(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		sa := analysis.AnalyzeScope(v.Resume.NonBlankBullets())
		msg := "no team, budget, user or geographic scope stated"
		if sa.Points > 0 {
			msg = fmt.Sprintf("largest scope signal is %s (%d of %d)", sa.Dimension, sa.Points, scopeMaxPoints)
		}
		return Result{
			Score:   float64(sa.Points) / scopeMaxPoints * maxScore,
			Message: msg,
			Details: sa,
		}, nil
	})
}

// verbDiversityCap bounds the verb diversity penalty; the red-flag
// repetition parameter uses its own cap.
const verbDiversityCap = 5

func newVerbDiversity(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		report := analysis.DetectRepetition(v.Resume.NonBlankBullets(), analysis.RepetitionConfig{
			Threshold:      cfg.RepetitionThreshold,
			PenaltyPerVerb: 1,
			MaxPenalty:     verbDiversityCap,
		})
		return penaltyResult(maxScore, report.Penalty, repetitionMessage(report), report), nil
	})
}

func repetitionMessage(report analysis.RepetitionReport) string {
	if len(report.Repeated) == 0 {
		return fmt.Sprintf("%d distinct opening verbs, none overused", report.Distinct)
	}
	top := report.Repeated[0]
	return fmt.Sprintf("%d verbs overused, most often %q (%d times)", len(report.Repeated), top.Verb, top.Count)
}

// penaltyResult scores max + penalty for deduction-style rules.
func penaltyResult(maxScore float64, penalty int, msg string, details any) Result {
	return Result{Score: maxScore + float64(penalty), Message: msg, Details: details}
}
