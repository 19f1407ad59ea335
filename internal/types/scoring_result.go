package types

// ExperienceLevel is the closed set of seniority levels the engine calibrates against.
type ExperienceLevel string

// Supported experience levels
const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediary ExperienceLevel = "intermediary"
	LevelSenior       ExperienceLevel = "senior"
)

// Levels lists the supported levels in ascending order.
func Levels() []ExperienceLevel {
	return []ExperienceLevel{LevelBeginner, LevelIntermediary, LevelSenior}
}

// Valid reports whether the level is one of the supported levels.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediary, LevelSenior:
		return true
	}
	return false
}

// ParameterID identifies a scoring parameter.
type ParameterID string

// Category groups parameters in the score breakdown.
type Category string

// Fixed scoring categories, in report order
const (
	CategoryKeywordMatching      Category = "keyword_matching"
	CategoryContentQuality       Category = "content_quality"
	CategoryFormatStructure      Category = "format_structure"
	CategoryPolish               Category = "polish"
	CategoryExperienceValidation Category = "experience_validation"
	CategoryRedFlags             Category = "red_flags"
	CategoryReadability          Category = "readability"
)

// Categories returns the fixed categories in report order.
func Categories() []Category {
	return []Category{
		CategoryKeywordMatching,
		CategoryContentQuality,
		CategoryFormatStructure,
		CategoryPolish,
		CategoryExperienceValidation,
		CategoryRedFlags,
		CategoryReadability,
	}
}

// Status is the outcome of evaluating one parameter.
type Status string

// Parameter statuses
const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Rating is the label attached to a normalized score.
type Rating string

// Ratings from best to worst
const (
	RatingExcellent        Rating = "excellent"
	RatingGood             Rating = "good"
	RatingFair             Rating = "fair"
	RatingNeedsImprovement Rating = "needs_improvement"
	RatingPoor             Rating = "poor"
)

// KeywordSource records where the keyword lists used for matching came from.
type KeywordSource string

// Keyword sources
const (
	KeywordSourceJob         KeywordSource = "job"
	KeywordSourceRoleDefault KeywordSource = "role_default"
	KeywordSourceNone        KeywordSource = "none"
)

// ParameterResult is the outcome of a single parameter evaluation.
// Score is always within [0, MaxScore].
type ParameterResult struct {
	ID       ParameterID `json:"id"`
	Name     string      `json:"name"`
	Category Category    `json:"category"`
	Score    float64     `json:"score"`
	MaxScore int         `json:"max_score"`
	Status   Status      `json:"status"`
	Message  string      `json:"message,omitempty"`
	Details  any         `json:"details,omitempty"`
}

// Percentage returns the score as a percentage of the maximum.
func (p ParameterResult) Percentage() float64 {
	if p.MaxScore <= 0 {
		return 0
	}
	return p.Score / float64(p.MaxScore) * 100
}

// CategoryAggregate sums the parameters belonging to one category.
type CategoryAggregate struct {
	Category  Category `json:"category"`
	Score     float64  `json:"score"`
	Max       int      `json:"max"`
	Available int      `json:"available"`
}

// FeedbackItem is one strength or weakness surfaced to the user.
type FeedbackItem struct {
	ParameterID ParameterID `json:"parameter_id"`
	Name        string      `json:"name"`
	Category    Category    `json:"category"`
	Score       float64     `json:"score"`
	MaxScore    int         `json:"max_score"`
	Percentage  float64     `json:"percentage"`
	Message     string      `json:"message"`
	Hint        string      `json:"hint,omitempty"`
}

// Feedback lists the top strengths and weaknesses of a scored résumé.
type Feedback struct {
	Strengths  []FeedbackItem `json:"strengths"`
	Weaknesses []FeedbackItem `json:"weaknesses"`
}

// ScoringResult is the full output of one scoring call.
type ScoringResult struct {
	RawScore        float64             `json:"raw_score"`
	MaxAvailable    int                 `json:"max_available"`
	NormalizedScore float64             `json:"normalized_score"`
	Rating          Rating              `json:"rating"`
	Level           ExperienceLevel     `json:"level"`
	Role            string              `json:"role,omitempty"`
	KeywordSource   KeywordSource       `json:"keyword_source"`
	Categories      []CategoryAggregate `json:"categories"`
	Parameters      []ParameterResult   `json:"parameters"`
	Feedback        Feedback            `json:"feedback"`
}

// Parameter returns the result for a parameter id.
func (s *ScoringResult) Parameter(id ParameterID) (ParameterResult, bool) {
	for _, p := range s.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return ParameterResult{}, false
}

// Category returns the aggregate for a category.
func (s *ScoringResult) Category(c Category) (CategoryAggregate, bool) {
	for _, agg := range s.Categories {
		if agg.Category == c {
			return agg, true
		}
	}
	return CategoryAggregate{}, false
}
