package parameters

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// KeywordDetails is reported by the keyword coverage parameters.
type KeywordDetails struct {
	Source  types.KeywordSource `json:"source"`
	Matched []string            `json:"matched"`
	Missing []string            `json:"missing"`
	Ratio   float64             `json:"ratio"`
	Target  float64             `json:"target"`
}

// PlacementDetails is reported by keyword_placement.
type PlacementDetails struct {
	Matched    []string `json:"matched"`
	InBullets  []string `json:"in_bullets"`
	OnlyListed []string `json:"only_listed"`
	Share      float64  `json:"share"`
}

func newRequiredKeywords(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		target := cfg.RequiredKeywordTargets[v.Level]
		return keywordCoverage(v, v.Required, target, maxScore, "required"), nil
	})
}

func newPreferredKeywords(cfg Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		return keywordCoverage(v, v.Preferred, cfg.PreferredKeywordTarget, maxScore, "preferred"), nil
	})
}

// keywordCoverage scores min(1, ratio/target) of max.
func keywordCoverage(v *View, keywords []string, target, maxScore float64, kind string) Result {
	km := analysis.MatchKeywords(v.Resume.Text, keywords)
	score := 0.0
	if target > 0 {
		score = math.Min(1, km.Ratio/target) * maxScore
	}
	return Result{
		Score:   score,
		Message: fmt.Sprintf("%d of %d %s keywords found", len(km.Matched), km.Total, kind),
		Details: KeywordDetails{
			Source:  v.KeywordSource,
			Matched: km.Matched,
			Missing: km.Missing,
			Ratio:   km.Ratio,
			Target:  target,
		},
	}
}

// newKeywordPlacement rewards required keywords backed by an experience
// bullet rather than only listed in a skills block.
func newKeywordPlacement(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		bullets := v.Resume.NonBlankBullets()
		corpus := v.Resume.Text + "\n" + strings.Join(bullets, "\n")
		km := analysis.MatchKeywords(corpus, v.Required)

		details := PlacementDetails{
			Matched:    km.Matched,
			InBullets:  make([]string, 0),
			OnlyListed: make([]string, 0),
		}
		if len(km.Matched) == 0 {
			return Result{Score: 0, Message: "no required keywords found", Details: details}, nil
		}

		bulletText := strings.ToLower(strings.Join(bullets, "\n"))
		for _, kw := range km.Matched {
			if analysis.HasKeyword(bulletText, kw) {
				details.InBullets = append(details.InBullets, kw)
			} else {
				details.OnlyListed = append(details.OnlyListed, kw)
			}
		}
		details.Share = float64(len(details.InBullets)) / float64(len(km.Matched))
		return Result{
			Score:   details.Share * maxScore,
			Message: fmt.Sprintf("%d of %d matched keywords appear in experience bullets", len(details.InBullets), len(km.Matched)),
			Details: details,
		}, nil
	})
}
