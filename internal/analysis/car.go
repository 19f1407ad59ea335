package analysis

import (
	"regexp"
	"strings"
)

// CAR quality bands
const (
	BandPerfectCAR = "perfect_car"
	BandStrongAR   = "strong_ar"
	BandModerate   = "moderate"
	BandWeak       = "weak"
	BandVeryWeak   = "very_weak"
)

// CARMaxPoints is the best possible per-bullet structure score.
const CARMaxPoints = 10

var (
	contextRe = regexp.MustCompile(`(?i)\b(for|across|within|during|amid|while|despite|serving|as part of|in order to|in response to|under|throughout|to support|to enable|to improve|to reduce)\b`)
	resultRe  = regexp.MustCompile(`(?i)\b(resulting in|resulted in|leading to|led to|achieving|achieved|improving|increasing|reducing|saving|cutting|boosting|generating|enabling|growing|eliminating|lowering|raising)\b`)
	causalRe  = regexp.MustCompile(`(?i)\b(resulting in|resulted in|leading to|which led|which resulted|thereby|so that|enabling|driving|contributing to|to achieve|allowing|which (?:increased|reduced|improved|saved|cut))\b|,\s*(?:increasing|reducing|improving|saving|cutting|boosting|generating)\b|\bby\s+\w+ing\b`)
)

// CARBullet is the structure breakdown of one bullet.
type CARBullet struct {
	Context    bool       `json:"context"`
	Verb       string     `json:"verb"`
	ActionTier int        `json:"action_tier"`
	Result     MetricTier `json:"result"`
	ResultWord bool       `json:"result_phrase"`
	Causal     bool       `json:"causal"`
	Points     int        `json:"points"`
	Band       string     `json:"band"`
}

// ClassifyCAR detects Context, Action, Result and the causal link between
// them, and places the bullet in a quality band.
//
// Points: context 2, action 0-3 by verb tier, result 3/2/1 by metric tier
// (1 for a result phrase without a number), causal link 2.
func ClassifyCAR(bullet string) CARBullet {
	cb := CARBullet{}
	cb.Verb, cb.ActionTier = VerbTier(bullet)
	cb.Context = contextRe.MatchString(bullet)
	cb.Result = ClassifyMetric(bullet)
	cb.ResultWord = resultRe.MatchString(bullet)
	cb.Causal = causalRe.MatchString(bullet)

	points := 0
	if cb.Context {
		points += 2
	}
	switch {
	case cb.ActionTier >= TierStrong:
		points += 3
	case cb.ActionTier == TierSolid:
		points += 2
	case cb.ActionTier == TierNeutral:
		points++
	}
	switch {
	case cb.Result == MetricHigh:
		points += 3
	case cb.Result == MetricMedium:
		points += 2
	case cb.Result == MetricLow || cb.ResultWord:
		points++
	}
	if cb.Causal && (cb.Result != MetricNone || cb.ResultWord) {
		points += 2
	}

	cb.Points = points
	cb.Band = carBand(points)
	return cb
}

func carBand(points int) string {
	switch {
	case points >= 9:
		return BandPerfectCAR
	case points >= 7:
		return BandStrongAR
	case points >= 5:
		return BandModerate
	case points >= 3:
		return BandWeak
	}
	return BandVeryWeak
}

// CARAnalysis summarizes bullet structure quality.
type CARAnalysis struct {
	Bullets       int            `json:"bullets"`
	AveragePoints float64        `json:"average_points"`
	Bands         map[string]int `json:"bands"`
}

// AnalyzeCAR classifies every bullet and averages the structure points.
func AnalyzeCAR(bullets []string) CARAnalysis {
	ca := CARAnalysis{Bands: map[string]int{
		BandPerfectCAR: 0, BandStrongAR: 0, BandModerate: 0, BandWeak: 0, BandVeryWeak: 0,
	}}
	total := 0
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		cb := ClassifyCAR(b)
		ca.Bullets++
		ca.Bands[cb.Band]++
		total += cb.Points
	}
	if ca.Bullets > 0 {
		ca.AveragePoints = float64(total) / float64(ca.Bullets)
	}
	return ca
}
