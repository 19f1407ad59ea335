package parameters

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// PageDetails is reported by page_count.
type PageDetails struct {
	Pages    int `json:"pages"`
	MaxIdeal int `json:"max_ideal"`
}

// newPageCount expects one page at beginner level and at most two otherwise.
// One page over the ideal keeps a third of the points.
func newPageCount(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		ideal := 2
		if v.Level == types.LevelBeginner {
			ideal = 1
		}
		pages := v.Resume.PageCount
		details := PageDetails{Pages: pages, MaxIdeal: ideal}
		switch {
		case pages <= ideal:
			return Result{Score: maxScore, Message: fmt.Sprintf("%d page(s) is within the ideal length", pages), Details: details}, nil
		case pages == ideal+1:
			return Result{Score: maxScore / 3, Message: fmt.Sprintf("%d pages is one longer than ideal", pages), Details: details}, nil
		}
		return Result{Score: 0, Message: fmt.Sprintf("%d pages is far longer than the ideal %d", pages, ideal), Details: details}, nil
	})
}

// coreSections each earn an equal share of section_presence.
var coreSections = []string{types.SectionExperience, types.SectionEducation, types.SectionSkills, types.SectionSummary}

// SectionPresenceDetails is reported by section_presence.
type SectionPresenceDetails struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

func newSectionPresence(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		details := SectionPresenceDetails{Present: make([]string, 0), Missing: make([]string, 0)}
		for _, name := range coreSections {
			s, ok := v.Resume.Section(name)
			if ok && (s.WordCount > 0 || strings.TrimSpace(s.Content) != "") {
				details.Present = append(details.Present, name)
			} else {
				details.Missing = append(details.Missing, name)
			}
		}
		share := float64(len(details.Present)) / float64(len(coreSections))
		msg := "all core sections present"
		if len(details.Missing) > 0 {
			msg = "missing sections: " + strings.Join(details.Missing, ", ")
		}
		return Result{Score: share * maxScore, Message: msg, Details: details}, nil
	})
}

// ContactDetails is reported by contact_info.
type ContactDetails struct {
	Email    bool    `json:"email"`
	Phone    bool    `json:"phone"`
	Profile  bool    `json:"profile"`
	Location bool    `json:"location"`
	Points   float64 `json:"points"`
}

// contactMaxPoints is email 1 + phone 1 + profile 0.5 + location 0.5.
const contactMaxPoints = 3.0

var profileKeys = []string{"linkedin", "portfolio", "website", "github", "url"}

func newContactInfo(_ Config, maxScore float64) Scorer {
	validate := validator.New()
	return ScorerFunc(func(v *View) (Result, error) {
		r := v.Resume
		details := ContactDetails{}
		if email := r.ContactField("email"); email != "" && validate.Var(email, "email") == nil {
			details.Email = true
			details.Points++
		}
		if digits := countDigits(r.ContactField("phone")); digits >= 7 && digits <= 15 {
			details.Phone = true
			details.Points++
		}
		for _, key := range profileKeys {
			if r.ContactField(key) != "" {
				details.Profile = true
				details.Points += 0.5
				break
			}
		}
		if r.ContactField("location") != "" {
			details.Location = true
			details.Points += 0.5
		}

		missing := make([]string, 0)
		for _, f := range []struct {
			ok   bool
			name string
		}{{details.Email, "valid email"}, {details.Phone, "phone"}, {details.Profile, "profile link"}, {details.Location, "location"}} {
			if !f.ok {
				missing = append(missing, f.name)
			}
		}
		msg := "contact details complete"
		if len(missing) > 0 {
			msg = "missing " + strings.Join(missing, ", ")
		}
		return Result{Score: details.Points / contactMaxPoints * maxScore, Message: msg, Details: details}, nil
	})
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Bullet word-count band considered readable.
const (
	minBulletWords = 8
	maxBulletWords = 35
)

// BulletLengthDetails is reported by bullet_length.
type BulletLengthDetails struct {
	Bullets  int     `json:"bullets"`
	InRange  int     `json:"in_range"`
	TooShort int     `json:"too_short"`
	TooLong  int     `json:"too_long"`
	Share    float64 `json:"share"`
}

func newBulletLength(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		details := BulletLengthDetails{}
		for _, b := range v.Resume.NonBlankBullets() {
			details.Bullets++
			switch n := analysis.WordCount(b); {
			case n < minBulletWords:
				details.TooShort++
			case n > maxBulletWords:
				details.TooLong++
			default:
				details.InRange++
			}
		}
		if details.Bullets > 0 {
			details.Share = float64(details.InRange) / float64(details.Bullets)
		}

		var share float64
		switch {
		case details.Share >= 0.8:
			share = 1
		case details.Share >= 0.6:
			share = 2.0 / 3
		case details.Share >= 0.4:
			share = 1.0 / 3
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("%d of %d bullets are %d-%d words", details.InRange, details.Bullets, minBulletWords, maxBulletWords),
			Details: details,
		}, nil
	})
}

// BulletsPerRoleDetails is reported by bullets_per_role.
type BulletsPerRoleDetails struct {
	Bullets int     `json:"bullets"`
	Roles   int     `json:"roles"`
	Average float64 `json:"average"`
}

// newBulletsPerRole rewards three to six bullets per role on average.
func newBulletsPerRole(_ Config, maxScore float64) Scorer {
	return ScorerFunc(func(v *View) (Result, error) {
		details := BulletsPerRoleDetails{
			Bullets: len(v.Resume.NonBlankBullets()),
			Roles:   len(v.Resume.Employment),
		}
		details.Average = float64(details.Bullets) / float64(details.Roles)

		share := 1.0 / 3
		switch avg := details.Average; {
		case avg >= 3 && avg <= 6:
			share = 1
		case avg >= 2 && avg <= 8:
			share = 2.0 / 3
		}
		return Result{
			Score:   share * maxScore,
			Message: fmt.Sprintf("%.1f bullets per role on average", details.Average),
			Details: details,
		}, nil
	})
}
