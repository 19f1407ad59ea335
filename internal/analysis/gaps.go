package analysis

import (
	"time"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// GapConfig tunes the employment gap detector.
type GapConfig struct {
	FloorMonths      int // gaps shorter than this are normal transition time
	MonthsPerPenalty int // one penalty point per this many gap months
	MaxPenalty       int // penalty magnitude cap
}

// DefaultGapConfig returns the standard gap calibration.
func DefaultGapConfig() GapConfig {
	return GapConfig{FloorMonths: 3, MonthsPerPenalty: 6, MaxPenalty: 5}
}

// Gap is one qualifying break between two roles.
type Gap struct {
	After  string `json:"after"`
	Before string `json:"before"`
	From   string `json:"from"`
	To     string `json:"to"`
	Months int    `json:"months"`
}

// GapReport summarizes employment gaps.
type GapReport struct {
	TotalGapMonths int   `json:"total_gap_months"`
	Penalty        int   `json:"penalty"`
	Gaps           []Gap `json:"gaps"`
}

// DetectGaps finds breaks between consecutive roles. The gap between a
// role ending in month E and the next starting in month S is the number
// of whole months strictly between them (S - E - 1). Roles are compared
// against the latest end seen so far, so a short role nested inside a
// long one never creates a phantom gap.
func DetectGaps(records []types.EmploymentRecord, now time.Time, cfg GapConfig) (GapReport, error) {
	report := GapReport{Gaps: make([]Gap, 0)}
	intervals, err := ResolveIntervals(records, now)
	if err != nil {
		return report, err
	}
	if len(intervals) < 2 {
		return report, nil
	}

	latest := intervals[0]
	for _, next := range intervals[1:] {
		months := next.Start.Index() - latest.End.Index() - 1
		if months >= cfg.FloorMonths && months > 0 {
			report.Gaps = append(report.Gaps, Gap{
				After:  latest.Record.Company,
				Before: next.Record.Company,
				From:   latest.End.String(),
				To:     next.Start.String(),
				Months: months,
			})
			report.TotalGapMonths += months
		}
		if next.End.Index() > latest.End.Index() {
			latest = next
		}
	}

	if cfg.MonthsPerPenalty > 0 {
		penalty := report.TotalGapMonths / cfg.MonthsPerPenalty
		if penalty > cfg.MaxPenalty {
			penalty = cfg.MaxPenalty
		}
		report.Penalty = -penalty
	}
	return report, nil
}
