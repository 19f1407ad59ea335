package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/parameters"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// maxHintItems caps how many names a hint lists
const maxHintItems = 5

type messagePair struct {
	improve string
	praise  string
}

var messages = map[types.ParameterID]messagePair{
	parameters.RequiredKeywords: {
		"Work the job's required skills into your résumé where you genuinely have them.",
		"Your résumé covers the job's required skills well.",
	},
	parameters.PreferredKeywords: {
		"Mention the nice-to-have skills from the posting that you can back up.",
		"You cover many of the posting's nice-to-have skills.",
	},
	parameters.KeywordPlacement: {
		"Show key skills in action inside experience bullets, not only in a skills list.",
		"Your key skills are backed by concrete experience bullets.",
	},
	parameters.ActionVerbs: {
		"Open bullets with strong action verbs instead of duty phrasing like \"responsible for\".",
		"Your bullets open with strong, specific action verbs.",
	},
	parameters.Quantification: {
		"Add numbers to your achievements: percentages, money, time saved or scale.",
		"Your achievements are well quantified.",
	},
	parameters.CARStructure: {
		"Frame bullets as context, action and result, and link the action to the outcome.",
		"Your bullets clearly connect actions to results.",
	},
	parameters.ImpactScope: {
		"State the scope of your work: team size, budget, user base or reach.",
		"You make the scale of your impact clear.",
	},
	parameters.VerbDiversity: {
		"Vary your opening verbs so bullets do not read the same.",
		"You use a varied set of opening verbs.",
	},
	parameters.PageCount: {
		"Trim the résumé to the expected length for your level.",
		"Your résumé is an appropriate length.",
	},
	parameters.SectionPresence: {
		"Include experience, education, skills and summary sections.",
		"All core sections are present.",
	},
	parameters.ContactInfo: {
		"Complete your contact details: a valid email, phone, profile link and location.",
		"Your contact details are complete.",
	},
	parameters.BulletLength: {
		"Keep bullets between 8 and 35 words.",
		"Your bullets are a readable length.",
	},
	parameters.BulletsPerRole: {
		"Aim for three to six bullets per role.",
		"Each role has a balanced number of bullets.",
	},
	parameters.PronounUsage: {
		"Drop first-person pronouns like \"I\" and \"my\" from bullets.",
		"Bullets are free of first-person pronouns.",
	},
	parameters.Buzzwords: {
		"Replace clichés with concrete evidence of the same quality.",
		"Your language is concrete and cliché-free.",
	},
	parameters.DateConsistency: {
		"Use a single date format throughout your employment history.",
		"Dates are formatted consistently.",
	},
	parameters.ExperienceFit: {
		"Check that the level you are targeting matches your years of experience.",
		"Your experience matches the level you are targeting.",
	},
	parameters.CareerProgression: {
		"Make growth in responsibility visible in titles or bullets.",
		"Your career shows clear progression.",
	},
	parameters.Recency: {
		"Account for recent time away, for example with projects or study.",
		"Your experience is current.",
	},
	parameters.EmploymentGaps: {
		"Explain longer gaps between roles.",
		"Your employment history has no significant gaps.",
	},
	parameters.JobHopping: {
		"Give context for short stints, such as contract or acquisition.",
		"You show solid tenure in your roles.",
	},
	parameters.VerbRepetition: {
		"Stop repeating the same opening verb across many bullets.",
		"No opening verb is overused.",
	},
	parameters.SectionBalance: {
		"Rebalance sections so experience carries most of the words.",
		"Section lengths are well balanced.",
	},
	parameters.SentenceReadability: {
		"Shorten long bullets and prefer plain words.",
		"Your bullets are easy to read.",
	},
}

// ImprovementMessage returns the canned advice for a weak parameter.
func ImprovementMessage(id types.ParameterID) string {
	if m, ok := messages[id]; ok {
		return m.improve
	}
	return "Review this area of your résumé."
}

// PraiseMessage returns the canned praise for a strong parameter.
func PraiseMessage(id types.ParameterID) string {
	if m, ok := messages[id]; ok {
		return m.praise
	}
	return "This area of your résumé is strong."
}

// Hint derives a rule-specific pointer from a result's details, falling
// back to the result message.
func Hint(r types.ParameterResult) string {
	switch d := r.Details.(type) {
	case parameters.KeywordDetails:
		if len(d.Missing) > 0 {
			return "missing: " + joinFirst(d.Missing)
		}
	case parameters.PlacementDetails:
		if len(d.OnlyListed) > 0 {
			return "not shown in any bullet: " + joinFirst(d.OnlyListed)
		}
	case parameters.VerbDetails:
		if len(d.WeakOpeners) > 0 {
			return "weak openers: " + joinFirst(d.WeakOpeners)
		}
	case parameters.QuantificationDetails:
		return fmt.Sprintf("%d of %d bullets carry a number", d.Quantified, d.Bullets)
	case parameters.CARDetails:
		weak := d.Bands[analysis.BandWeak] + d.Bands[analysis.BandVeryWeak]
		if weak > 0 {
			return fmt.Sprintf("%d bullet(s) lack a clear result", weak)
		}
	case analysis.RepetitionReport:
		if len(d.Repeated) > 0 {
			parts := make([]string, 0, len(d.Repeated))
			for _, rv := range d.Repeated {
				parts = append(parts, fmt.Sprintf("%s (%d)", rv.Verb, rv.Count))
			}
			return "repeated: " + joinFirst(parts)
		}
	case parameters.SectionPresenceDetails:
		if len(d.Missing) > 0 {
			return "add: " + joinFirst(d.Missing)
		}
	case parameters.BulletLengthDetails:
		return fmt.Sprintf("%d too short, %d too long", d.TooShort, d.TooLong)
	case parameters.BuzzwordDetails:
		if len(d.Found) > 0 {
			return "found: " + joinFirst(d.Found)
		}
	case analysis.GapReport:
		if len(d.Gaps) > 0 {
			g := d.Gaps[0]
			return fmt.Sprintf("%d months between %s and %s", g.Months, g.From, g.To)
		}
	case analysis.JobHoppingReport:
		if len(d.ShortStints) > 0 {
			parts := make([]string, 0, len(d.ShortStints))
			for _, s := range d.ShortStints {
				parts = append(parts, fmt.Sprintf("%s (%d months)", s.Company, s.Months))
			}
			return "short stints: " + joinFirst(parts)
		}
	case analysis.BalanceReport:
		if len(d.Violations) > 0 {
			parts := make([]string, 0, len(d.Violations))
			for _, v := range d.Violations {
				parts = append(parts, fmt.Sprintf("%s at %.0f%% (limit %.0f%%)", v.Section, v.Share*100, v.Limit*100))
			}
			return strings.Join(parts, "; ")
		}
	}
	return r.Message
}

func joinFirst(list []string) string {
	if len(list) > maxHintItems {
		return strings.Join(list[:maxHintItems], ", ") + fmt.Sprintf(" and %d more", len(list)-maxHintItems)
	}
	return strings.Join(list, ", ")
}
