package lint

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"bibtool/src/internal/citekey"
	"bibtool/src/internal/schema"
	"bibtool/src/internal/stringsx"
)

// grouper collects members under labels, remembering first-seen label order.
type grouper struct {
	order   []string
	members map[string][]Member
}

func newGrouper() *grouper { return &grouper{members: map[string][]Member{}} }

func (g *grouper) add(label string, m Member) {
	if _, ok := g.members[label]; !ok {
		g.order = append(g.order, label)
	}
	g.members[label] = append(g.members[label], m)
}

// NormalizeTitle lower-cases a title, keeps only letters, digits and spaces,
// and collapses whitespace.
func NormalizeTitle(title string) string {
	title = strings.ToLower(norm.NFC.String(title))
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return stringsx.CollapseSpace(b.String())
}

// DuplicateTitles groups entries whose normalized titles coincide.
// Entries without a title are ignored.
func DuplicateTitles(c *schema.Collection) []Group {
	g := newGrouper()
	for _, e := range c.Entries {
		title, ok := e.Field("title")
		if !ok {
			continue
		}
		g.add(NormalizeTitle(title), Member{Key: e.Key, Text: title})
	}
	var out []Group
	for _, label := range g.order {
		if ms := g.members[label]; len(ms) > 1 {
			out = append(out, Group{Category: DuplicateTitle, Label: label, Members: ms})
		}
	}
	return out
}

var (
	yearPattern    = regexp.MustCompile(`(20|19)\p{Nd}{2}`)
	ordinalPattern = regexp.MustCompile(`\p{Nd}?(1st|2nd|3rd|\p{Nd}th)`)
)

// venueFields maps an entry type to the field holding its venue display name.
var venueFields = map[string]string{
	"article":       "journal",
	"inproceedings": "booktitle",
}

// NormalizeVenueName collapses whitespace and masks years and ordinals so
// "Proc. of the 5th ACL 2020" and "Proc. of the 6th ACL 2021" compare equal.
func NormalizeVenueName(name string) string {
	name = stringsx.CollapseSpace(name)
	name = yearPattern.ReplaceAllString(name, "YYYY")
	return ordinalPattern.ReplaceAllString(name, "Nth")
}

// VenueDisplayName returns the venue name field appropriate to the entry type.
func VenueDisplayName(e *schema.Entry) (string, bool) {
	field, ok := venueFields[e.Type]
	if !ok {
		return "", false
	}
	return e.Field(field)
}

// VenueVariants groups entries with a parsable key by venue token and returns
// the groups whose normalized display names differ.
func VenueVariants(c *schema.Collection) []Group {
	g := newGrouper()
	for _, e := range c.Entries {
		k, err := citekey.Parse(e.Key)
		if err != nil {
			continue
		}
		name, ok := VenueDisplayName(e)
		if !ok {
			continue
		}
		g.add(k.Venue, Member{Key: e.Key, Text: NormalizeVenueName(name)})
	}
	var out []Group
	for _, venue := range g.order {
		ms := g.members[venue]
		if !allSame(ms) {
			out = append(out, Group{Category: VenueNames, Label: venue, Members: ms})
		}
	}
	return out
}

func allSame(ms []Member) bool {
	for _, m := range ms[1:] {
		if m.Text != ms[0].Text {
			return false
		}
	}
	return true
}
