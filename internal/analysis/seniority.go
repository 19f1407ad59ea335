package analysis

import "strings"

// Title seniority ranks, lowest first.
const (
	RankIntern    = 1
	RankJunior    = 2
	RankMid       = 3
	RankSenior    = 4
	RankLead      = 5
	RankManager   = 6
	RankDirector  = 7
	RankExecutive = 8
)

// individual-contributor titles that contain "manager" but do not manage people
var icManagerTitles = []string{"product manager", "project manager", "program manager", "account manager", "community manager"}

// TitleRank estimates the seniority of a job title.
func TitleRank(title string) int {
	t := " " + strings.ToLower(title) + " "
	has := func(terms ...string) bool {
		for _, term := range terms {
			if containsTerm(t, term) {
				return true
			}
		}
		return false
	}

	switch {
	case has("chief", "ceo", "cto", "cfo", "coo", "cio", "vp", "vice president", "president", "founder", "co-founder", "partner"):
		return RankExecutive
	case has("director", "head of"):
		return RankDirector
	case has("manager") && !isICManager(t):
		return RankManager
	case has("principal", "staff", "lead", "architect"):
		return RankLead
	case has("senior", "sr"):
		return RankSenior
	case has("intern", "internship", "trainee", "apprentice"):
		return RankIntern
	case has("junior", "jr", "associate", "assistant", "graduate", "entry"):
		return RankJunior
	}
	return RankMid
}

func isICManager(t string) bool {
	for _, title := range icManagerTitles {
		if strings.Contains(t, title) && !strings.Contains(t, "senior "+title) {
			return true
		}
	}
	return false
}

// Progression describes how title seniority moves over a career.
type Progression struct {
	Ranks       []int `json:"ranks"`
	Promotions  int   `json:"promotions"`
	Regressions int   `json:"regressions"`
}

// AnalyzeProgression walks intervals in start order and counts rank changes.
// Moving out of an internship is never a regression.
func AnalyzeProgression(intervals []Interval) Progression {
	p := Progression{Ranks: make([]int, 0, len(intervals))}
	for i, iv := range intervals {
		rank := TitleRank(iv.Record.Title)
		p.Ranks = append(p.Ranks, rank)
		if i == 0 {
			continue
		}
		prev := p.Ranks[i-1]
		switch {
		case rank > prev:
			p.Promotions++
		case rank < prev && prev != RankIntern:
			p.Regressions++
		}
	}
	return p
}
