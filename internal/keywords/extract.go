package keywords

import (
	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/parsing"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// ExtractRequirement builds a JobRequirement from a parsed posting by
// looking for the role's vocabulary in each section. A keyword found in
// both sections is required.
func (d *Dictionary) ExtractRequirement(posting *parsing.Posting, role string) *types.JobRequirement {
	vocabulary := d.Vocabulary(role)
	required := analysis.MatchKeywords(posting.Required, vocabulary).Matched
	preferred := analysis.MatchKeywords(posting.Preferred, vocabulary).Matched
	return parsing.NormalizeJobRequirement(&types.JobRequirement{
		RequiredKeywords:  required,
		PreferredKeywords: preferred,
	})
}
