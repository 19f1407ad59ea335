package parameters

import (
	"fmt"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// Parameter ids, in catalog order
const (
	RequiredKeywords    types.ParameterID = "required_keywords"
	PreferredKeywords   types.ParameterID = "preferred_keywords"
	KeywordPlacement    types.ParameterID = "keyword_placement"
	ActionVerbs         types.ParameterID = "action_verbs"
	Quantification      types.ParameterID = "quantification"
	CARStructure        types.ParameterID = "car_structure"
	ImpactScope         types.ParameterID = "impact_scope"
	VerbDiversity       types.ParameterID = "verb_diversity"
	PageCount           types.ParameterID = "page_count"
	SectionPresence     types.ParameterID = "section_presence"
	ContactInfo         types.ParameterID = "contact_info"
	BulletLength        types.ParameterID = "bullet_length"
	BulletsPerRole      types.ParameterID = "bullets_per_role"
	PronounUsage        types.ParameterID = "pronoun_usage"
	Buzzwords           types.ParameterID = "buzzwords"
	DateConsistency     types.ParameterID = "date_consistency"
	ExperienceFit       types.ParameterID = "experience_fit"
	CareerProgression   types.ParameterID = "career_progression"
	Recency             types.ParameterID = "recency"
	EmploymentGaps      types.ParameterID = "employment_gaps"
	JobHopping          types.ParameterID = "job_hopping"
	VerbRepetition      types.ParameterID = "verb_repetition"
	SectionBalance      types.ParameterID = "section_balance"
	SentenceReadability types.ParameterID = "sentence_readability"
)

// Config carries the calibration the scorers read.
type Config struct {
	RequiredKeywordTargets map[types.ExperienceLevel]float64
	PreferredKeywordTarget float64
	RepetitionThreshold    int
	Gaps                   analysis.GapConfig
	JobHopping             analysis.JobHoppingConfig
	Balance                analysis.BalanceConfig
	Disabled               []types.ParameterID
}

// DefaultConfig returns the standard calibration.
func DefaultConfig() Config {
	return Config{
		RequiredKeywordTargets: map[types.ExperienceLevel]float64{
			types.LevelBeginner:     0.6,
			types.LevelIntermediary: 0.7,
			types.LevelSenior:       0.8,
		},
		PreferredKeywordTarget: 0.5,
		RepetitionThreshold:    3,
		Gaps:                   analysis.DefaultGapConfig(),
		JobHopping:             analysis.DefaultJobHoppingConfig(),
		Balance:                analysis.DefaultBalanceConfig(),
	}
}

// manifestEntry declares a parameter; build receives the catalog config
// and the parameter's maximum.
type manifestEntry struct {
	id       types.ParameterID
	name     string
	category types.Category
	max      int
	requires []Input
	build    func(cfg Config, maxScore float64) Scorer
}

var manifest = []manifestEntry{
	{RequiredKeywords, "Required keyword coverage", types.CategoryKeywordMatching, 15, []Input{InputText, InputKeywords}, newRequiredKeywords},
	{PreferredKeywords, "Preferred keyword coverage", types.CategoryKeywordMatching, 5, []Input{InputText, InputPreferredKeywords}, newPreferredKeywords},
	{KeywordPlacement, "Keywords evidenced in experience", types.CategoryKeywordMatching, 5, []Input{InputBullets, InputKeywords}, newKeywordPlacement},
	{ActionVerbs, "Action verb strength", types.CategoryContentQuality, 8, []Input{InputBullets}, newActionVerbs},
	{Quantification, "Quantified achievements", types.CategoryContentQuality, 10, []Input{InputBullets}, newQuantification},
	{CARStructure, "Context-action-result structure", types.CategoryContentQuality, 6, []Input{InputBullets}, newCARStructure},
	{ImpactScope, "Impact scope", types.CategoryContentQuality, 5, []Input{InputBullets}, newImpactScope},
	{VerbDiversity, "Verb diversity", types.CategoryContentQuality, 5, []Input{InputBullets}, newVerbDiversity},
	{PageCount, "Page count", types.CategoryFormatStructure, 3, []Input{InputPageCount}, newPageCount},
	{SectionPresence, "Core sections", types.CategoryFormatStructure, 4, []Input{InputSections}, newSectionPresence},
	{ContactInfo, "Contact information", types.CategoryFormatStructure, 3, []Input{InputContact}, newContactInfo},
	{BulletLength, "Bullet length", types.CategoryFormatStructure, 3, []Input{InputBullets}, newBulletLength},
	{BulletsPerRole, "Bullets per role", types.CategoryFormatStructure, 3, []Input{InputBullets, InputEmployment}, newBulletsPerRole},
	{PronounUsage, "First-person pronouns", types.CategoryPolish, 2, []Input{InputBullets}, newPronounUsage},
	{Buzzwords, "Buzzwords", types.CategoryPolish, 2, []Input{InputText}, newBuzzwords},
	{DateConsistency, "Date formatting", types.CategoryPolish, 2, []Input{InputEmployment}, newDateConsistency},
	{ExperienceFit, "Experience fits level", types.CategoryExperienceValidation, 4, []Input{InputEmployment}, newExperienceFit},
	{CareerProgression, "Career progression", types.CategoryExperienceValidation, 3, []Input{InputEmployment}, newCareerProgression},
	{Recency, "Recent experience", types.CategoryExperienceValidation, 2, []Input{InputEmployment}, newRecency},
	{EmploymentGaps, "Employment gaps", types.CategoryRedFlags, 5, []Input{InputEmployment}, newEmploymentGaps},
	{JobHopping, "Job hopping", types.CategoryRedFlags, 3, []Input{InputEmployment}, newJobHopping},
	{VerbRepetition, "Repeated verbs", types.CategoryRedFlags, 3, []Input{InputBullets}, newVerbRepetition},
	{SectionBalance, "Section balance", types.CategoryReadability, 4, []Input{InputSections}, newSectionBalance},
	{SentenceReadability, "Sentence readability", types.CategoryReadability, 3, []Input{InputBullets}, newSentenceReadability},
}

// Registry is the closed, validated parameter catalog. It is read-only
// after construction and safe for concurrent use.
type Registry struct {
	order []types.ParameterID
	defs  map[types.ParameterID]Definition
}

// NewRegistry builds the catalog from the manifest, leaving out disabled
// parameters.
func NewRegistry(cfg Config) (*Registry, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	disabled := make(map[types.ParameterID]bool, len(cfg.Disabled))
	known := make(map[types.ParameterID]bool, len(manifest))
	for _, e := range manifest {
		known[e.id] = true
	}
	for _, id := range cfg.Disabled {
		if !known[id] {
			return nil, &ConfigurationError{Message: fmt.Sprintf("cannot disable unknown parameter %q", id)}
		}
		disabled[id] = true
	}

	defs := make([]Definition, 0, len(manifest))
	for _, e := range manifest {
		if disabled[e.id] {
			continue
		}
		defs = append(defs, Definition{
			ID:       e.id,
			Name:     e.name,
			Category: e.category,
			MaxScore: e.max,
			Requires: e.requires,
			Scorer:   e.build(cfg, float64(e.max)),
		})
	}
	return NewRegistryFromDefinitions(defs)
}

// NewRegistryFromDefinitions validates an explicit catalog. Order is kept.
func NewRegistryFromDefinitions(defs []Definition) (*Registry, error) {
	categories := make(map[types.Category]bool)
	for _, c := range types.Categories() {
		categories[c] = true
	}

	r := &Registry{
		order: make([]types.ParameterID, 0, len(defs)),
		defs:  make(map[types.ParameterID]Definition, len(defs)),
	}
	for i, d := range defs {
		switch {
		case d.ID == "":
			return nil, &ConfigurationError{Message: fmt.Sprintf("definition %d has no id", i)}
		case d.MaxScore <= 0:
			return nil, &ConfigurationError{Message: fmt.Sprintf("parameter %q has non-positive max score %d", d.ID, d.MaxScore)}
		case !categories[d.Category]:
			return nil, &ConfigurationError{Message: fmt.Sprintf("parameter %q has unknown category %q", d.ID, d.Category)}
		case d.Scorer == nil:
			return nil, &ConfigurationError{Message: fmt.Sprintf("parameter %q has no scorer", d.ID)}
		}
		if _, dup := r.defs[d.ID]; dup {
			return nil, &ConfigurationError{Message: fmt.Sprintf("duplicate parameter id %q", d.ID)}
		}
		if d.Name == "" {
			d.Name = string(d.ID)
		}
		r.order = append(r.order, d.ID)
		r.defs[d.ID] = d
	}
	return r, nil
}

// Get returns the definition for id.
func (r *Registry) Get(id types.ParameterID) (Definition, error) {
	d, ok := r.defs[id]
	if !ok {
		return Definition{}, &ConfigurationError{Message: fmt.Sprintf("unknown parameter %q", id)}
	}
	return d, nil
}

// All returns a copy of the catalog keyed by id.
func (r *Registry) All() map[types.ParameterID]Definition {
	out := make(map[types.ParameterID]Definition, len(r.defs))
	for id, d := range r.defs {
		out[id] = d
	}
	return out
}

// IDs returns the parameter ids in catalog order.
func (r *Registry) IDs() []types.ParameterID {
	out := make([]types.ParameterID, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns the definitions in catalog order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.order))
	for i, id := range r.order {
		out[i] = r.defs[id]
	}
	return out
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.order)
}

func (c Config) validate() error {
	for _, level := range types.Levels() {
		t, ok := c.RequiredKeywordTargets[level]
		if !ok || t <= 0 || t > 1 {
			return &ConfigurationError{Message: fmt.Sprintf("required keyword target for %s must be in (0, 1]", level)}
		}
	}
	switch {
	case c.PreferredKeywordTarget <= 0 || c.PreferredKeywordTarget > 1:
		return &ConfigurationError{Message: "preferred keyword target must be in (0, 1]"}
	case c.RepetitionThreshold < 2:
		return &ConfigurationError{Message: "repetition threshold must be at least 2"}
	case c.Gaps.MonthsPerPenalty <= 0 || c.Gaps.FloorMonths < 1 || c.Gaps.MaxPenalty < 0:
		return &ConfigurationError{Message: "gap calibration is invalid"}
	case c.JobHopping.MinTenureMonths <= 0 || c.JobHopping.MaxPenalty < 0:
		return &ConfigurationError{Message: "job hopping calibration is invalid"}
	case c.Balance.MaxPenalty < 0 || c.Balance.ViolationPenalty < 0:
		return &ConfigurationError{Message: "section balance calibration is invalid"}
	}
	return nil
}
