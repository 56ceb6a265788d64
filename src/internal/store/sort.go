package store

import (
	"sort"

	"bibtool/src/internal/citekey"
	"bibtool/src/internal/dates"
	"bibtool/src/internal/schema"
)

// Sort ranks for the three groups of entries.
const (
	rankParsed = iota
	rankDated
	rankUndated
)

// sortKey orders entries: parsable keys by descending year, venue, author;
// then unparsable keys with a numeric year field by ascending year; then the rest.
type sortKey struct {
	rank   int
	year   int
	venue  string
	author string
	key    string
}

func keyFor(e *schema.Entry) sortKey {
	if k, err := citekey.Parse(e.Key); err == nil {
		return sortKey{rank: rankParsed, year: -k.Year, venue: k.Venue, author: k.Author, key: e.Key}
	}
	if v, ok := e.Field("year"); ok {
		if y, ok := dates.ParseYear(v); ok {
			return sortKey{rank: rankDated, year: y, key: e.Key}
		}
	}
	return sortKey{rank: rankUndated, key: e.Key}
}

func (a sortKey) less(b sortKey) bool {
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	if a.year != b.year {
		return a.year < b.year
	}
	if a.venue != b.venue {
		return a.venue < b.venue
	}
	if a.author != b.author {
		return a.author < b.author
	}
	return a.key < b.key
}

// Sort returns the entries in canonical output order. The input slice is not modified.
func Sort(entries []*schema.Entry) []*schema.Entry {
	out := append([]*schema.Entry(nil), entries...)
	keys := make(map[*schema.Entry]sortKey, len(out))
	for _, e := range out {
		keys[e] = keyFor(e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return keys[out[i]].less(keys[out[j]])
	})
	return out
}
