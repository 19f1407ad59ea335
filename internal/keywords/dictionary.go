// Package keywords provides the default keyword lists used when a résumé is
// scored without a job description.
package keywords

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/parsing"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// GeneralRole is the fallback for roles the dictionary does not know.
const GeneralRole = "general"

//go:embed roles.json
var embeddedRoles []byte

// Entry is the keyword set for one role at one level.
type Entry struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

type roleEntry struct {
	Aliases []string         `json:"aliases"`
	Levels  map[string]Entry `json:"levels"`
}

type document struct {
	Version string               `json:"version"`
	Roles   map[string]roleEntry `json:"roles"`
}

// Dictionary maps role and level to default keyword lists. It is read-only
// after construction and safe for concurrent use.
type Dictionary struct {
	version string
	roles   map[string]roleEntry
	aliases map[string]string
}

// LoadEmbedded builds the dictionary shipped with the binary.
func LoadEmbedded() (*Dictionary, error) {
	return NewDictionary(embeddedRoles)
}

// NewDictionary parses and validates a dictionary document. Every role must
// define every level with at least one required keyword, and the general
// role must exist.
func NewDictionary(data []byte) (*Dictionary, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigurationError{
			Message: "failed to parse keyword dictionary",
			Cause:   err,
		}
	}

	if _, ok := doc.Roles[GeneralRole]; !ok {
		return nil, &ConfigurationError{Message: fmt.Sprintf("keyword dictionary has no %q role", GeneralRole)}
	}

	d := &Dictionary{
		version: doc.Version,
		roles:   make(map[string]roleEntry, len(doc.Roles)),
		aliases: make(map[string]string),
	}
	for _, name := range sortedKeys(doc.Roles) {
		role := doc.Roles[name]
		key := roleKey(name)
		if key == "" {
			return nil, &ConfigurationError{Message: "keyword dictionary has a role with an empty name"}
		}
		for _, level := range types.Levels() {
			entry, ok := role.Levels[string(level)]
			if !ok {
				return nil, &ConfigurationError{Message: fmt.Sprintf("role %q is missing level %q", name, level)}
			}
			if len(parsing.NormalizeKeywords(entry.Required)) == 0 {
				return nil, &ConfigurationError{Message: fmt.Sprintf("role %q level %q has no required keywords", name, level)}
			}
		}
		for level := range role.Levels {
			if !types.ExperienceLevel(level).Valid() {
				return nil, &ConfigurationError{Message: fmt.Sprintf("role %q has unknown level %q", name, level)}
			}
		}
		d.roles[key] = role
		for _, alias := range role.Aliases {
			if a := roleKey(alias); a != "" {
				if _, taken := d.aliases[a]; !taken {
					d.aliases[a] = key
				}
			}
		}
	}
	return d, nil
}

// Version returns the dictionary document version.
func (d *Dictionary) Version() string {
	return d.version
}

// Roles returns the known role names, sorted.
func (d *Dictionary) Roles() []string {
	return sortedKeys(d.roles)
}

// ResolveRole maps a free-form role name to a dictionary role, falling
// back to the general role.
func (d *Dictionary) ResolveRole(role string) string {
	key := roleKey(role)
	if _, ok := d.roles[key]; ok {
		return key
	}
	if target, ok := d.aliases[key]; ok {
		return target
	}
	return GeneralRole
}

// Lookup returns a normalized copy of the keyword lists for role and
// level together with the role that was actually used.
func (d *Dictionary) Lookup(role string, level types.ExperienceLevel) (*types.JobRequirement, string) {
	resolved := d.ResolveRole(role)
	entry := d.roles[resolved].Levels[string(level)]
	req := parsing.NormalizeJobRequirement(&types.JobRequirement{
		RequiredKeywords:  entry.Required,
		PreferredKeywords: entry.Preferred,
	})
	return req, resolved
}

// Vocabulary returns every keyword the role knows across all levels,
// normalized and in level order.
func (d *Dictionary) Vocabulary(role string) []string {
	entry := d.roles[d.ResolveRole(role)]
	all := make([]string, 0)
	for _, level := range types.Levels() {
		e := entry.Levels[string(level)]
		all = append(all, e.Required...)
		all = append(all, e.Preferred...)
	}
	return parsing.NormalizeKeywords(all)
}

func roleKey(role string) string {
	fields := strings.FieldsFunc(strings.ToLower(role), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\t'
	})
	return strings.Join(fields, "_")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
