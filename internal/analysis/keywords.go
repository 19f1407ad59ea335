package analysis

import (
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/parsing"
)

// KeywordMatch is the outcome of matching a keyword list against text.
type KeywordMatch struct {
	Total   int      `json:"total"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Ratio   float64  `json:"ratio"`
}

// MatchKeywords normalizes the keywords and checks each one, by any of its
// known surface forms, for a word-boundary occurrence in text.
func MatchKeywords(text string, keywords []string) KeywordMatch {
	km := KeywordMatch{Matched: make([]string, 0), Missing: make([]string, 0)}
	lower := strings.ToLower(text)
	for _, kw := range parsing.NormalizeKeywords(keywords) {
		km.Total++
		if HasKeyword(lower, kw) {
			km.Matched = append(km.Matched, kw)
		} else {
			km.Missing = append(km.Missing, kw)
		}
	}
	if km.Total > 0 {
		km.Ratio = float64(len(km.Matched)) / float64(km.Total)
	}
	return km
}

// HasKeyword reports whether lower-cased text mentions keyword in any of
// its forms.
func HasKeyword(lower, keyword string) bool {
	for _, form := range parsing.KeywordForms(keyword) {
		if containsTerm(lower, form) {
			return true
		}
	}
	return false
}
