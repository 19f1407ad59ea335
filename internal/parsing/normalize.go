// Package parsing normalizes caller-supplied vocabulary (experience levels,
// keywords, job postings) into the forms the scoring engine expects.
package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// keywordAliases maps common keyword variants to canonical lower-case names
var keywordAliases = map[string]string{
	"golang":                     "go",
	"go lang":                    "go",
	"js":                         "javascript",
	"ecmascript":                 "javascript",
	"ts":                         "typescript",
	"k8s":                        "kubernetes",
	"react.js":                   "react",
	"reactjs":                    "react",
	"vue.js":                     "vue",
	"vuejs":                      "vue",
	"nodejs":                     "node.js",
	"node":                       "node.js",
	"postgres":                   "postgresql",
	"psql":                       "postgresql",
	"amazon web services":        "aws",
	"google cloud":               "gcp",
	"google cloud platform":      "gcp",
	"microsoft azure":            "azure",
	"c sharp":                    "c#",
	"cpp":                        "c++",
	"ml":                         "machine learning",
	"dl":                         "deep learning",
	"nlp":                        "natural language processing",
	"ci cd":                      "ci/cd",
	"continuous integration":     "ci/cd",
	"restful":                    "rest",
	"rest api":                   "rest",
	"restful apis":               "rest",
	"sklearn":                    "scikit-learn",
	"tf":                         "tensorflow",
	"a/b test":                   "a/b testing",
	"ab testing":                 "a/b testing",
	"seo optimization":           "seo",
	"search engine optimization": "seo",
	"crm software":               "crm",
	"ux design":                  "ux",
	"user experience":            "ux",
	"ui design":                  "ui",
	"user interface":             "ui",
}

// NormalizeKeyword lower-cases a keyword, collapses inner whitespace and
// maps known aliases to their canonical form.
func NormalizeKeyword(keyword string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(keyword)), " ")
	if normalized == "" {
		return ""
	}
	if canonical, ok := keywordAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// KeywordForms returns every surface form that should match a canonical
// keyword: the canonical name followed by its aliases in sorted order.
func KeywordForms(keyword string) []string {
	canonical := NormalizeKeyword(keyword)
	if canonical == "" {
		return nil
	}
	aliases := make([]string, 0)
	for alias, target := range keywordAliases {
		if target == canonical {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return append([]string{canonical}, aliases...)
}

// NormalizeKeywords normalizes and deduplicates a keyword list, keeping
// the first occurrence's position.
func NormalizeKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return []string{}
	}

	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		n := NormalizeKeyword(kw)
		if n == "" {
			continue // Skip empty keywords
		}
		if _, exists := seen[n]; exists {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	return normalized
}

// NormalizeJobRequirement returns a copy of the requirement with both
// keyword lists normalized. A preferred keyword that is also required is
// dropped from the preferred list.
func NormalizeJobRequirement(req *types.JobRequirement) *types.JobRequirement {
	if req == nil {
		return nil
	}
	required := NormalizeKeywords(req.RequiredKeywords)
	requiredSet := make(map[string]bool, len(required))
	for _, kw := range required {
		requiredSet[kw] = true
	}
	preferred := make([]string, 0, len(req.PreferredKeywords))
	for _, kw := range NormalizeKeywords(req.PreferredKeywords) {
		if !requiredSet[kw] {
			preferred = append(preferred, kw)
		}
	}
	return &types.JobRequirement{RequiredKeywords: required, PreferredKeywords: preferred}
}

// levelAliases maps looser seniority vocabularies onto the engine's closed set
var levelAliases = map[string]types.ExperienceLevel{
	"beginner":      types.LevelBeginner,
	"entry":         types.LevelBeginner,
	"entry-level":   types.LevelBeginner,
	"entry level":   types.LevelBeginner,
	"junior":        types.LevelBeginner,
	"jr":            types.LevelBeginner,
	"intern":        types.LevelBeginner,
	"graduate":      types.LevelBeginner,
	"student":       types.LevelBeginner,
	"fresher":       types.LevelBeginner,
	"intermediary":  types.LevelIntermediary,
	"intermediate":  types.LevelIntermediary,
	"mid":           types.LevelIntermediary,
	"mid-level":     types.LevelIntermediary,
	"mid level":     types.LevelIntermediary,
	"associate":     types.LevelIntermediary,
	"experienced":   types.LevelIntermediary,
	"senior":        types.LevelSenior,
	"sr":            types.LevelSenior,
	"lead":          types.LevelSenior,
	"staff":         types.LevelSenior,
	"principal":     types.LevelSenior,
	"manager":       types.LevelSenior,
	"director":      types.LevelSenior,
	"executive":     types.LevelSenior,
	"expert":        types.LevelSenior,
}

// NormalizeLevel maps a caller-supplied level onto the supported set.
func NormalizeLevel(level string) (types.ExperienceLevel, error) {
	key := strings.Join(strings.Fields(strings.ToLower(strings.Trim(level, " ."))), " ")
	if key == "" {
		return "", &ValidationError{Field: "level", Message: "experience level is required"}
	}
	if l, ok := levelAliases[key]; ok {
		return l, nil
	}
	return "", &ValidationError{Field: "level", Message: "unknown experience level " + level}
}
