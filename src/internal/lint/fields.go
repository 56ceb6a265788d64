package lint

import (
	"strings"

	"bibtool/src/internal/citekey"
	"bibtool/src/internal/schema"
)

// DirectiveField is the in-entry field listing suppressed checks.
const DirectiveField = "biblint"

// Spec is a required-field specification: a field name or an alternation "a|b".
type Spec string

// Alternatives returns the names any of which satisfies the spec.
func (s Spec) Alternatives() []string { return strings.Split(string(s), "|") }

// SatisfiedBy reports whether any alternative is present on e as a field or person role.
func (s Spec) SatisfiedBy(e *schema.Entry) bool {
	for _, name := range s.Alternatives() {
		if e.Has(name) {
			return true
		}
	}
	return false
}

// Rules drives the completeness check.
type Rules struct {
	// Directive is the field holding "no<spec>" suppression tokens.
	Directive string
	// Required maps an entry type to its specs; types not listed require nothing.
	Required map[string][]Spec
	// Exempt maps a venue token to specs never required for that venue.
	Exempt map[string][]string
}

// DefaultRules returns the built-in required sets and venue exemptions.
func DefaultRules() Rules {
	return Rules{
		Directive: DirectiveField,
		Required: map[string][]Spec{
			"inproceedings": ParseSpecs("title author booktitle year location pages doi"),
			"article":       ParseSpecs("title author journal year volume number pages doi"),
			"book":          ParseSpecs("title author|editor publisher year"),
			"misc":          ParseSpecs("title author|key howpublished"),
		},
		Exempt: map[string][]string{
			"icwsm":  {"pages", "doi"},
			"scirep": {"pages", "number"},
			"aaai":   {"doi"},
			"emnlp":  {"doi"},
			"acl":    {"doi"},
		},
	}
}

// ParseSpecs splits a whitespace separated list of specs.
func ParseSpecs(s string) []Spec {
	fs := strings.Fields(s)
	out := make([]Spec, 0, len(fs))
	for _, f := range fs {
		out = append(out, Spec(f))
	}
	return out
}

// Directives returns the suppression tokens of e, e.g. {"nopages", "nodoi"}.
func (r Rules) Directives(e *schema.Entry) map[string]bool {
	name := r.Directive
	if name == "" {
		name = DirectiveField
	}
	v, ok := e.Field(name)
	if !ok {
		return nil
	}
	out := map[string]bool{}
	for _, tok := range strings.Split(v, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out[tok] = true
		}
	}
	return out
}

// Missing returns the required specs e lacks, in required-set order, after
// directive suppression and venue exemptions.
func (r Rules) Missing(e *schema.Entry) []string {
	specs, ok := r.Required[e.Type]
	if !ok {
		return nil
	}
	directives := r.Directives(e)
	var missing []string
	for _, s := range specs {
		if directives["no"+string(s)] {
			continue
		}
		if !s.SatisfiedBy(e) {
			missing = append(missing, string(s))
		}
	}
	return r.dropExempt(e, missing)
}

func (r Rules) dropExempt(e *schema.Entry, missing []string) []string {
	k, err := citekey.Parse(e.Key)
	if err != nil {
		return missing
	}
	exempt := map[string]bool{}
	for _, f := range r.Exempt[k.Venue] {
		exempt[f] = true
	}
	out := missing[:0]
	for _, m := range missing {
		if !exempt[m] {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
