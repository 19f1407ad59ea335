package analysis

import "strings"

// Verb strength tiers
const (
	TierWeak             = 0 // duty phrasing
	TierNeutral          = 1 // unseen or generic verb
	TierSolid            = 2
	TierStrong           = 3
	TierTransformational = 4
)

// weakPhrases are two-word openings that describe duties rather than achievements.
var weakPhrases = map[string]bool{
	"responsible for": true, "worked on": true, "worked with": true,
	"helped with": true, "helped to": true, "tasked with": true,
	"involved in": true, "duties included": true, "assisted with": true,
	"assisted in": true, "participated in": true,
}

// verbTiers maps a leading verb to its strength tier. Verbs not listed are neutral.
var verbTiers = map[string]int{
	// tier 4
	"spearheaded": 4, "pioneered": 4, "transformed": 4, "revolutionized": 4,
	"founded": 4, "architected": 4, "championed": 4, "orchestrated": 4,
	"overhauled": 4, "reinvented": 4, "instituted": 4, "originated": 4,
	"established": 4, "turned": 4,

	// tier 3
	"led": 3, "directed": 3, "built": 3, "designed": 3, "delivered": 3,
	"increased": 3, "reduced": 3, "optimized": 3, "negotiated": 3,
	"launched": 3, "drove": 3, "scaled": 3, "accelerated": 3, "generated": 3,
	"grew": 3, "secured": 3, "won": 3, "streamlined": 3, "mentored": 3,
	"headed": 3, "exceeded": 3, "achieved": 3, "cut": 3, "boosted": 3,
	"expanded": 3, "automated": 3, "saved": 3, "doubled": 3, "tripled": 3,
	"shipped": 3, "owned": 3, "devised": 3, "invented": 3, "restructured": 3,

	// tier 2
	"developed": 2, "implemented": 2, "created": 2, "managed": 2, "analyzed": 2,
	"improved": 2, "coordinated": 2, "organized": 2, "conducted": 2,
	"engineered": 2, "executed": 2, "produced": 2, "planned": 2, "trained": 2,
	"resolved": 2, "programmed": 2, "configured": 2, "deployed": 2,
	"tested": 2, "wrote": 2, "authored": 2, "researched": 2, "prepared": 2,
	"presented": 2, "migrated": 2, "integrated": 2, "refactored": 2,
	"evaluated": 2, "facilitated": 2, "supervised": 2, "oversaw": 2,
	"collaborated": 2, "partnered": 2, "enhanced": 2, "modernized": 2,
	"consolidated": 2, "standardized": 2, "identified": 2, "diagnosed": 2,

	// tier 0
	"responsible": 0, "helped": 0, "assisted": 0, "worked": 0,
	"participated": 0, "involved": 0, "handled": 0, "tasked": 0,
	"duties": 0, "supported": 0, "tried": 0, "attempted": 0,
	"did": 0, "was": 0, "were": 0, "had": 0,
}

// VerbTier returns the leading verb of a bullet and its strength tier.
// Two-word duty phrasing is checked before the single-word table.
func VerbTier(bullet string) (string, int) {
	words := leadingWords(bullet, 2)
	if len(words) == 0 {
		return "", TierWeak
	}
	if len(words) == 2 && weakPhrases[words[0]+" "+words[1]] {
		return words[0] + " " + words[1], TierWeak
	}
	verb := words[0]
	if tier, ok := verbTiers[verb]; ok {
		return verb, tier
	}
	return verb, TierNeutral
}

// VerbAnalysis summarizes action-verb strength over a set of bullets.
type VerbAnalysis struct {
	Bullets     int      `json:"bullets"`
	StrongCount int      `json:"strong_count"`
	Coverage    float64  `json:"coverage_pct"`
	AverageTier float64  `json:"average_tier"`
	TierCounts  [5]int   `json:"tier_counts"`
	WeakOpeners []string `json:"weak_openers,omitempty"`
}

// AnalyzeVerbs classifies every bullet. Coverage is the percentage of
// bullets opening with a tier 2+ verb.
func AnalyzeVerbs(bullets []string) VerbAnalysis {
	va := VerbAnalysis{}
	seenWeak := make(map[string]bool)
	total := 0
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		verb, tier := VerbTier(b)
		va.Bullets++
		va.TierCounts[tier]++
		total += tier
		if tier >= TierSolid {
			va.StrongCount++
		}
		if tier == TierWeak && verb != "" && !seenWeak[verb] && len(va.WeakOpeners) < 5 {
			seenWeak[verb] = true
			va.WeakOpeners = append(va.WeakOpeners, verb)
		}
	}
	if va.Bullets > 0 {
		va.Coverage = float64(va.StrongCount) / float64(va.Bullets) * 100
		va.AverageTier = float64(total) / float64(va.Bullets)
	}
	return va
}
