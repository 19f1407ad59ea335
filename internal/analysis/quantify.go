package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MetricTier grades a numeric claim by how much business impact it conveys.
type MetricTier int

// Metric tiers, weakest first
const (
	MetricNone MetricTier = iota
	MetricLow
	MetricMedium
	MetricHigh
)

// String returns the tier label.
func (t MetricTier) String() string {
	switch t {
	case MetricHigh:
		return "HIGH"
	case MetricMedium:
		return "MEDIUM"
	case MetricLow:
		return "LOW"
	}
	return "NONE"
}

// MarshalText encodes the tier as its label.
func (t MetricTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Weight returns the tier's contribution to the weighted quantification rate.
func (t MetricTier) Weight() float64 {
	switch t {
	case MetricHigh:
		return 1.0
	case MetricMedium:
		return 0.7
	case MetricLow:
		return 0.3
	}
	return 0
}

var (
	numberRe = regexp.MustCompile(`(?i)([$€£¥]\s?)?\b(\d[\d,]*(?:\.\d+)?)(\s?%|\s?percent\b|\s?(?:thousand|million|billion|mm|bn|k|m|b|x)\b)?`)
	deltaRe  = regexp.MustCompile(`(?i)\bfrom\s+[$€£¥]?\d[\d,.]*\s*[a-z%]*\s+(?:down\s+|up\s+)?to\s+[$€£¥]?\d`)
)

var scopeNouns = map[string]bool{
	"team": true, "teams": true, "engineers": true, "developers": true, "people": true,
	"employees": true, "staff": true, "members": true, "reports": true, "users": true,
	"customers": true, "clients": true, "subscribers": true, "students": true,
	"patients": true, "stakeholders": true, "partners": true, "vendors": true,
	"countries": true, "states": true, "cities": true, "regions": true, "offices": true,
	"locations": true, "stores": true, "sites": true, "markets": true, "languages": true,
	"months": true, "years": true, "weeks": true, "projects": true, "products": true,
	"applications": true, "services": true, "microservices": true, "servers": true,
	"repositories": true, "releases": true, "accounts": true, "departments": true,
	"hospitals": true, "schools": true, "branches": true, "direct": true, "person": true,
	"member": true, "engineer": true,
}

// MetricClaim is one numeric claim found in a bullet.
type MetricClaim struct {
	Text  string     `json:"text"`
	Value float64    `json:"value"`
	Tier  MetricTier `json:"tier"`
}

// ExtractMetrics finds the numeric claims in a bullet and grades each one.
// Claim text is returned lower-cased with any attached unit. Ordinals and bare
// four-digit years are not claims.
func ExtractMetrics(bullet string) []MetricClaim {
	lower := strings.ToLower(bullet)
	hasDelta := deltaRe.MatchString(lower)
	claims := make([]MetricClaim, 0)

	for _, m := range numberRe.FindAllStringSubmatchIndex(lower, -1) {
		end := m[1]
		unit := attachedUnit(lower[end:])
		if ordinals[unit] {
			continue
		}
		currency := m[2] >= 0
		digits := lower[m[4]:m[5]]
		suffix := ""
		if m[6] >= 0 {
			suffix = strings.TrimSpace(lower[m[6]:m[7]])
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
		if err != nil {
			continue
		}
		if !currency && suffix == "" && len(digits) == 4 && value >= 1900 && value <= 2099 {
			continue
		}
		value *= magnitude(suffix)

		claims = append(claims, MetricClaim{
			Text:  strings.TrimSpace(lower[m[0] : end+len(unit)]),
			Value: value,
			Tier:  gradeClaim(lower, m[0], end, currency, suffix, hasDelta),
		})
	}
	return claims
}

var ordinals = map[string]bool{"st": true, "nd": true, "rd": true, "th": true}

// attachedUnit returns the letters glued to the end of a number, as in
// "200ms" or "2gb".
func attachedUnit(rest string) string {
	n := 0
	for n < len(rest) {
		r := rune(rest[n])
		if r >= 0x80 || !unicode.IsLetter(r) {
			break
		}
		n++
	}
	return rest[:n]
}

func magnitude(suffix string) float64 {
	switch suffix {
	case "k", "thousand":
		return 1e3
	case "m", "mm", "million":
		return 1e6
	case "b", "bn", "billion":
		return 1e9
	}
	return 1
}

func gradeClaim(lower string, start, end int, currency bool, suffix string, hasDelta bool) MetricTier {
	switch {
	case currency, suffix == "%", suffix == "percent", suffix == "x", hasDelta:
		return MetricHigh
	case magnitude(suffix) > 1:
		return MetricMedium
	}

	if strings.HasSuffix(strings.TrimSpace(lower[:start]), "team of") {
		return MetricMedium
	}
	after := Words(lower[end:])
	for i := 0; i < len(after) && i < 3; i++ {
		if scopeNouns[after[i]] {
			return MetricMedium
		}
	}
	return MetricLow
}

// ClassifyMetric returns the strongest claim tier in a bullet, or MetricNone
// when it carries no numeric claim.
func ClassifyMetric(bullet string) MetricTier {
	best := MetricNone
	for _, c := range ExtractMetrics(bullet) {
		if c.Tier > best {
			best = c.Tier
		}
	}
	return best
}

// QuantAnalysis summarizes quantification across bullets.
type QuantAnalysis struct {
	Bullets      int     `json:"bullets"`
	Quantified   int     `json:"quantified_bullets"`
	High         int     `json:"high"`
	Medium       int     `json:"medium"`
	Low          int     `json:"low"`
	WeightedRate float64 `json:"weighted_rate"`
}

// Quantify grades every bullet by its strongest claim and computes the
// weighted quantification rate: sum of tier weights / bullets * 100.
func Quantify(bullets []string) QuantAnalysis {
	qa := QuantAnalysis{}
	weight := 0.0
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		qa.Bullets++
		tier := ClassifyMetric(b)
		switch tier {
		case MetricHigh:
			qa.High++
		case MetricMedium:
			qa.Medium++
		case MetricLow:
			qa.Low++
		default:
			continue
		}
		qa.Quantified++
		weight += tier.Weight()
	}
	if qa.Bullets > 0 {
		qa.WeightedRate = weight / float64(qa.Bullets) * 100
	}
	return qa
}
