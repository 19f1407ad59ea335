package analysis

import (
	"strings"
	"time"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// JobHoppingConfig tunes the short-stint detector.
type JobHoppingConfig struct {
	MinTenureMonths int
	MaxPenalty      int
	ExemptTitles    []string
}

// DefaultJobHoppingConfig returns the standard job-hopping calibration.
func DefaultJobHoppingConfig() JobHoppingConfig {
	return JobHoppingConfig{
		MinTenureMonths: 12,
		MaxPenalty:      3,
		ExemptTitles:    []string{"contract", "intern", "consultant", "temporary", "freelance", "part-time"},
	}
}

// Stint is one role with its tenure.
type Stint struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Months  int    `json:"months"`
}

// JobHoppingReport summarizes short stints.
type JobHoppingReport struct {
	Penalty     int     `json:"penalty"`
	ShortStints []Stint `json:"short_stints"`
	Exempted    []Stint `json:"exempted"`
}

// DetectJobHopping evaluates each role independently. A role shorter than
// MinTenureMonths is a short stint unless its title contains an exempt term.
func DetectJobHopping(records []types.EmploymentRecord, now time.Time, cfg JobHoppingConfig) (JobHoppingReport, error) {
	report := JobHoppingReport{ShortStints: make([]Stint, 0), Exempted: make([]Stint, 0)}
	intervals, err := ResolveIntervals(records, now)
	if err != nil {
		return report, err
	}

	for _, iv := range intervals {
		months := iv.Months()
		if months >= cfg.MinTenureMonths {
			continue
		}
		stint := Stint{Title: iv.Record.Title, Company: iv.Record.Company, Months: months}
		if isExemptTitle(iv.Record.Title, cfg.ExemptTitles) {
			report.Exempted = append(report.Exempted, stint)
			continue
		}
		report.ShortStints = append(report.ShortStints, stint)
	}

	count := len(report.ShortStints)
	if count > cfg.MaxPenalty {
		count = cfg.MaxPenalty
	}
	report.Penalty = -count
	return report, nil
}

func isExemptTitle(title string, exempt []string) bool {
	lower := strings.ToLower(title)
	for _, term := range exempt {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
