// Package lint holds the heuristic checks run over a parsed bibliography.
// Every check degrades to "not applicable" on malformed input and never fails.
package lint

import (
	"bibtool/src/internal/citekey"
	"bibtool/src/internal/schema"
)

// Category labels a finding.
type Category string

const (
	BadKey         Category = "Bad key"
	BadPages       Category = "Bad pages"
	EmptyFields    Category = "Empty fields"
	MissingFields  Category = "Missing fields"
	DuplicateTitle Category = "Duplicate title"
	VenueNames     Category = "Different vn names"
)

// Finding is a single problem with one entry.
type Finding struct {
	Category Category
	Key      string
	Type     string   // entry type, set for MissingFields
	Values   []string // offending pages value, field names or specs
}

// Member is one entry of a group finding.
type Member struct {
	Key  string
	Text string
}

// Group is a set of entries that collide (duplicate titles) or disagree (venue names).
type Group struct {
	Category Category
	Label    string
	Members  []Member
}

// Options tune Check.
type Options struct {
	SkipKeyCheck bool
}

// Check runs the per-entry checks over c, in entry order. For each entry the
// order is: key, pages, empty fields, missing fields.
func Check(c *schema.Collection, rules Rules, opts Options) []Finding {
	var out []Finding
	for _, e := range c.Entries {
		if !opts.SkipKeyCheck && !citekey.Valid(e.Key) {
			out = append(out, Finding{Category: BadKey, Key: e.Key})
		}
		if !ValidPages(e) {
			p, _ := e.Field("pages")
			out = append(out, Finding{Category: BadPages, Key: e.Key, Values: []string{p}})
		}
		if empty := EmptyFieldNames(e); len(empty) > 0 {
			out = append(out, Finding{Category: EmptyFields, Key: e.Key, Values: empty})
		}
		if missing := rules.Missing(e); len(missing) > 0 {
			out = append(out, Finding{Category: MissingFields, Key: e.Key, Type: e.Type, Values: missing})
		}
	}
	return out
}
