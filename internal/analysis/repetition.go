package analysis

import "sort"

// RepetitionConfig tunes the repeated-verb detector. MaxPenalty is set by
// each caller independently.
type RepetitionConfig struct {
	Threshold      int
	PenaltyPerVerb int
	MaxPenalty     int
}

// RepeatedVerb is a leading verb used at or above the threshold.
type RepeatedVerb struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// RepetitionReport summarizes repeated leading verbs.
type RepetitionReport struct {
	Penalty  int            `json:"penalty"`
	Repeated []RepeatedVerb `json:"repeated"`
	Distinct int            `json:"distinct_verbs"`
}

// DetectRepetition counts the leading word of every bullet and penalizes
// each word that reaches the threshold.
func DetectRepetition(bullets []string, cfg RepetitionConfig) RepetitionReport {
	counts := make(map[string]int)
	for _, b := range bullets {
		if w := LeadingWord(b); w != "" {
			counts[w]++
		}
	}

	report := RepetitionReport{Repeated: make([]RepeatedVerb, 0), Distinct: len(counts)}
	for verb, n := range counts {
		if cfg.Threshold > 0 && n >= cfg.Threshold {
			report.Repeated = append(report.Repeated, RepeatedVerb{Verb: verb, Count: n})
		}
	}
	sort.Slice(report.Repeated, func(i, j int) bool {
		if report.Repeated[i].Count != report.Repeated[j].Count {
			return report.Repeated[i].Count > report.Repeated[j].Count
		}
		return report.Repeated[i].Verb < report.Repeated[j].Verb
	})

	penalty := len(report.Repeated) * cfg.PenaltyPerVerb
	if penalty > cfg.MaxPenalty {
		penalty = cfg.MaxPenalty
	}
	report.Penalty = -penalty
	return report
}
