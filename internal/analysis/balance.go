package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// BalanceConfig holds the ideal word-share bands.
type BalanceConfig struct {
	ExperienceMinShare float64
	SkillsMaxShare     float64
	SummaryMaxShare    float64
	ViolationPenalty   int
	MaxPenalty         int
}

// DefaultBalanceConfig returns the standard section balance bands.
func DefaultBalanceConfig() BalanceConfig {
	return BalanceConfig{
		ExperienceMinShare: 0.40,
		SkillsMaxShare:     0.25,
		SummaryMaxShare:    0.15,
		ViolationPenalty:   1,
		MaxPenalty:         3,
	}
}

// BalanceViolation is one section outside its band.
type BalanceViolation struct {
	Section string  `json:"section"`
	Share   float64 `json:"share"`
	Limit   float64 `json:"limit"`
	Kind    string  `json:"kind"` // below_min or above_max
}

// BalanceReport summarizes section word-count shares.
type BalanceReport struct {
	TotalWords int                `json:"total_words"`
	Shares     map[string]float64 `json:"shares"`
	Violations []BalanceViolation `json:"violations"`
	Penalty    int                `json:"penalty"`
}

// AnalyzeSectionBalance computes each section's share of the total word
// count and flags a thin experience section, a stuffed skills section and
// a verbose summary. Each violation adds ViolationPenalty, capped at MaxPenalty.
func AnalyzeSectionBalance(resume *types.ResumeSignal, cfg BalanceConfig) BalanceReport {
	report := BalanceReport{
		TotalWords: resume.TotalSectionWords(),
		Shares:     make(map[string]float64),
		Violations: make([]BalanceViolation, 0),
	}
	if report.TotalWords == 0 {
		return report
	}

	names := make([]string, 0, len(resume.Sections))
	for name := range resume.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := resume.Sections[name]
		if s.WordCount <= 0 {
			continue
		}
		report.Shares[strings.ToLower(strings.TrimSpace(name))] += float64(s.WordCount) / float64(report.TotalWords)
	}

	share := func(name string) float64 {
		s, ok := resume.Section(name)
		if !ok || s.WordCount <= 0 {
			return 0
		}
		return float64(s.WordCount) / float64(report.TotalWords)
	}

	if v := share(types.SectionExperience); v < cfg.ExperienceMinShare {
		report.Violations = append(report.Violations, BalanceViolation{
			Section: types.SectionExperience, Share: v, Limit: cfg.ExperienceMinShare, Kind: "below_min",
		})
	}
	if v := share(types.SectionSkills); v > cfg.SkillsMaxShare {
		report.Violations = append(report.Violations, BalanceViolation{
			Section: types.SectionSkills, Share: v, Limit: cfg.SkillsMaxShare, Kind: "above_max",
		})
	}
	if v := share(types.SectionSummary); v > cfg.SummaryMaxShare {
		report.Violations = append(report.Violations, BalanceViolation{
			Section: types.SectionSummary, Share: v, Limit: cfg.SummaryMaxShare, Kind: "above_max",
		})
	}

	penalty := len(report.Violations) * cfg.ViolationPenalty
	if penalty > cfg.MaxPenalty {
		penalty = cfg.MaxPenalty
	}
	report.Penalty = -penalty
	return report
}
