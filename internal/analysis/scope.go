package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Geographic reach tiers, lowest first.
const (
	GeoNone     = ""
	GeoLocal    = "local"
	GeoRegional = "regional"
	GeoNational = "national"
	GeoGlobal   = "global"
)

var (
	teamSizeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bteams? of (?:over |up to |more than )?(\d[\d,]*)\+?`),
		regexp.MustCompile(`(?i)\b(\d[\d,]*)\+?[- ](?:person|member|people|engineer|strong)\s+(?:team|org|organization|department)`),
		regexp.MustCompile(`(?i)\b(?:managed|led|supervised|mentored|hired|oversaw|directed|coached|grew a team of)\s+(?:a team of |over |up to )?(\d[\d,]*)\+?\s+(?:engineers|developers|people|employees|staff|direct reports|reports|members|analysts|designers|managers|associates|professionals|contractors|nurses|agents|representatives)`),
		regexp.MustCompile(`(?i)\b(\d[\d,]*)\+?\s+direct reports`),
	}
	budgetRe = regexp.MustCompile(`(?i)(?:[$€£¥]\s?(\d[\d,]*(?:\.\d+)?)\s?(thousand|million|billion|mm|bn|k|m|b)?\b)|(?:\b(\d[\d,]*(?:\.\d+)?)\s?(thousand|million|billion|mm|bn|k|m|b)?\s+(?:usd|dollars|eur|euros|gbp)\b)`)
	usersRe  = regexp.MustCompile(`(?i)\b(\d[\d,]*(?:\.\d+)?)\s?(thousand|million|billion|k|m|b)?\+?\s+(?:(?:daily|monthly|weekly|active|global|paying|registered|unique|end)\s+)*(?:users|customers|clients|subscribers|members|patients|students|visitors|downloads|accounts|merchants|players|listeners|readers|learners|consumers|households|riders|drivers)\b`)
)

// geoTiers are checked from the highest tier down; the first tier with a match wins.
var geoTiers = []struct {
	tier   string
	points int
	re     *regexp.Regexp
}{
	{GeoGlobal, 5, regexp.MustCompile(`(?i)\b(global|globally|worldwide|world-wide|international|internationally|multinational|multi-national|across \d+ countries|in \d+ countries|cross-border)\b`)},
	{GeoNational, 4, regexp.MustCompile(`(?i)\b(national|nationwide|nation-wide|countrywide|country-wide|federal|across the (?:us|u\.s|uk|country)|coast[- ]to[- ]coast|emea|apac|latam)\b`)},
	{GeoRegional, 2, regexp.MustCompile(`(?i)\b(regional|region|multi-state|statewide|state-wide|tri-state|across the state|district-wide|multi-site)\b`)},
	{GeoLocal, 1, regexp.MustCompile(`(?i)\b(local|locally|citywide|city-wide|community|on-site|in-store|branch)\b`)},
}

// ScopeAnalysis is the maximum scope signal per dimension across all bullets.
type ScopeAnalysis struct {
	TeamSize     int     `json:"team_size"`
	TeamPoints   int     `json:"team_points"`
	Budget       float64 `json:"budget"`
	BudgetPoints int     `json:"budget_points"`
	Users        float64 `json:"users"`
	UserPoints   int     `json:"user_points"`
	Geography    string  `json:"geography,omitempty"`
	GeoPoints    int     `json:"geo_points"`
	Points       int     `json:"points"`
	Dimension    string  `json:"dimension,omitempty"`
}

// AnalyzeScope extracts team size, budget, user scale and geographic reach
// from the bullets. The overall points are the maximum across dimensions,
// not their sum.
func AnalyzeScope(bullets []string) ScopeAnalysis {
	sa := ScopeAnalysis{}
	geoRank := 0
	for _, b := range bullets {
		for _, re := range teamSizeRes {
			for _, m := range re.FindAllStringSubmatch(b, -1) {
				if n := parseCount(m[1]); n > sa.TeamSize {
					sa.TeamSize = n
				}
			}
		}
		for _, m := range budgetRe.FindAllStringSubmatch(b, -1) {
			amount, unit := m[1], m[2]
			if amount == "" {
				amount, unit = m[3], m[4]
			}
			if v := parseAmount(amount, unit); v > sa.Budget {
				sa.Budget = v
			}
		}
		for _, m := range usersRe.FindAllStringSubmatch(b, -1) {
			if v := parseAmount(m[1], m[2]); v > sa.Users {
				sa.Users = v
			}
		}
		for i, g := range geoTiers {
			rank := len(geoTiers) - i
			if rank <= geoRank {
				break
			}
			if g.re.MatchString(b) {
				geoRank = rank
				sa.Geography = g.tier
				sa.GeoPoints = g.points
				break
			}
		}
	}

	sa.TeamPoints = ladder(float64(sa.TeamSize), []float64{50, 20, 10, 5, 2})
	sa.BudgetPoints = ladder(sa.Budget, []float64{10e6, 1e6, 250e3, 50e3, 1})
	sa.UserPoints = ladder(sa.Users, []float64{10e6, 1e6, 100e3, 10e3, 1})

	for _, d := range []struct {
		name   string
		points int
	}{
		{"team_size", sa.TeamPoints},
		{"budget", sa.BudgetPoints},
		{"users", sa.UserPoints},
		{"geography", sa.GeoPoints},
	} {
		if d.points > sa.Points {
			sa.Points = d.points
			sa.Dimension = d.name
		}
	}
	return sa
}

// ladder maps a magnitude onto 5..1 points using descending thresholds;
// below the last threshold scores 0.
func ladder(v float64, thresholds []float64) int {
	for i, t := range thresholds {
		if v >= t {
			return len(thresholds) - i
		}
	}
	return 0
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func parseAmount(amount, unit string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v * magnitude(strings.ToLower(unit))
}
