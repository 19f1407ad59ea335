// Package types provides type definitions for structured data used throughout the resume scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Canonical section names used by the scorer. Parsers may emit other
// headings; lookups are case-insensitive.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionSummary    = "summary"
	SectionProjects   = "projects"
)

// Section is one résumé section as produced by the external parser.
type Section struct {
	Content   string `json:"content"`
	WordCount int    `json:"word_count" validate:"gte=0"`
}

// EmploymentRecord is one role in the candidate's employment history.
// Dates are free-form strings ("2021-06", "Jun 2021", "present").
type EmploymentRecord struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date,omitempty"`
}

// ResumeSignal is the parsed résumé handed to the scoring engine.
// It is treated as read-only for the lifetime of a scoring call.
type ResumeSignal struct {
	Text       string             `json:"text"`
	Bullets    []string           `json:"bullets,omitempty"`
	Sections   map[string]Section `json:"sections,omitempty" validate:"omitempty,dive"`
	PageCount  int                `json:"page_count,omitempty" validate:"gte=0"`
	Employment []EmploymentRecord `json:"employment,omitempty" validate:"omitempty,dive"`
	Contact    map[string]string  `json:"contact,omitempty"`
}

// Validate checks struct-level constraints on the signal.
func (r *ResumeSignal) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// HasText reports whether the full résumé text is present.
func (r *ResumeSignal) HasText() bool {
	return strings.TrimSpace(r.Text) != ""
}

// HasBullets reports whether at least one non-blank bullet is present.
func (r *ResumeSignal) HasBullets() bool {
	for _, b := range r.Bullets {
		if strings.TrimSpace(b) != "" {
			return true
		}
	}
	return false
}

// HasSections reports whether any section carries words.
func (r *ResumeSignal) HasSections() bool {
	return r.TotalSectionWords() > 0
}

// HasEmployment reports whether the employment history is non-empty.
func (r *ResumeSignal) HasEmployment() bool {
	return len(r.Employment) > 0
}

// HasContact reports whether any contact field carries a value.
func (r *ResumeSignal) HasContact() bool {
	for _, v := range r.Contact {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// HasPageCount reports whether the parser supplied a page count.
func (r *ResumeSignal) HasPageCount() bool {
	return r.PageCount > 0
}

// NonBlankBullets returns the bullets with surrounding whitespace trimmed,
// dropping blank entries.
func (r *ResumeSignal) NonBlankBullets() []string {
	out := make([]string, 0, len(r.Bullets))
	for _, b := range r.Bullets {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Section looks up a section by name, ignoring case and surrounding space.
func (r *ResumeSignal) Section(name string) (Section, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if s, ok := r.Sections[want]; ok {
		return s, true
	}
	for k, s := range r.Sections {
		if strings.ToLower(strings.TrimSpace(k)) == want {
			return s, true
		}
	}
	return Section{}, false
}

// TotalSectionWords sums word counts across all sections.
func (r *ResumeSignal) TotalSectionWords() int {
	total := 0
	for _, s := range r.Sections {
		if s.WordCount > 0 {
			total += s.WordCount
		}
	}
	return total
}

// ContactField returns a trimmed contact value by key, ignoring case.
func (r *ResumeSignal) ContactField(key string) string {
	want := strings.ToLower(key)
	for k, v := range r.Contact {
		if strings.ToLower(strings.TrimSpace(k)) == want {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// JobRequirement lists the keywords a job posting asks for.
type JobRequirement struct {
	RequiredKeywords  []string `json:"required_keywords" validate:"omitempty,dive,required"`
	PreferredKeywords []string `json:"preferred_keywords,omitempty" validate:"omitempty,dive,required"`
}

// IsEmpty reports whether the requirement carries no keywords at all.
func (j *JobRequirement) IsEmpty() bool {
	return j == nil || (len(j.RequiredKeywords) == 0 && len(j.PreferredKeywords) == 0)
}

// Validate checks struct-level constraints on the requirement.
func (j *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
