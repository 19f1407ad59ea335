// Package parameters defines the scoring rules the engine evaluates and the
// registry that holds them.
package parameters

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// Input names a piece of résumé or job data a parameter needs.
type Input string

// Inputs a parameter can declare
const (
	InputText              Input = "text"
	InputBullets           Input = "bullets"
	InputSections          Input = "sections"
	InputEmployment        Input = "employment"
	InputContact           Input = "contact"
	InputPageCount         Input = "page_count"
	InputKeywords          Input = "keywords"
	InputPreferredKeywords Input = "preferred_keywords"
)

// ErrMissingInput marks a parameter that could not run because the résumé
// lacks data it declared as required.
var ErrMissingInput = errors.New("missing input")

// View is the read-only data a scorer evaluates. Keyword lists are
// normalized before the view is built.
type View struct {
	Resume        *types.ResumeSignal
	Level         types.ExperienceLevel
	Role          string
	Required      []string
	Preferred     []string
	KeywordSource types.KeywordSource
	Now           time.Time
}

// Has reports whether the view carries the given input.
func (v *View) Has(in Input) bool {
	switch in {
	case InputText:
		return v.Resume.HasText()
	case InputBullets:
		return v.Resume.HasBullets()
	case InputSections:
		return v.Resume.HasSections()
	case InputEmployment:
		return v.Resume.HasEmployment()
	case InputContact:
		return v.Resume.HasContact()
	case InputPageCount:
		return v.Resume.HasPageCount()
	case InputKeywords:
		return len(v.Required) > 0
	case InputPreferredKeywords:
		return len(v.Preferred) > 0
	}
	return false
}

// Result is what a scorer reports. Score is clamped by the engine.
type Result struct {
	Score   float64
	Message string
	Details any
}

// Scorer evaluates one rule against a view.
type Scorer interface {
	Evaluate(v *View) (Result, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(v *View) (Result, error)

// Evaluate calls f(v).
func (f ScorerFunc) Evaluate(v *View) (Result, error) {
	return f(v)
}

// Definition is one entry of the parameter catalog.
type Definition struct {
	ID       types.ParameterID
	Name     string
	Category types.Category
	MaxScore int
	Requires []Input
	Scorer   Scorer
}

// MissingInputs lists the declared inputs the view does not carry.
func (d Definition) MissingInputs(v *View) []Input {
	missing := make([]Input, 0)
	for _, in := range d.Requires {
		if !v.Has(in) {
			missing = append(missing, in)
		}
	}
	return missing
}

// MissingInputError describes the inputs a parameter was skipped for.
func MissingInputError(missing []Input) error {
	names := make([]string, len(missing))
	for i, in := range missing {
		names[i] = string(in)
	}
	return errors.Wrap(ErrMissingInput, strings.Join(names, ", "))
}
