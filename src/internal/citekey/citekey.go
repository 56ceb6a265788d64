// Package citekey parses citation keys of the form <author>-<venue><yy>.
package citekey

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadKey is returned for keys that do not follow the naming convention.
var ErrBadKey = errors.New("bad citation key")

// Two-digit years above this value belong to the 1900s, the rest to the 2000s.
const centuryCutover = 70

// Key is a parsed citation key.
type Key struct {
	Author string
	Venue  string
	Year   int
}

// Parse splits key into author, venue and a four digit year.
// The last two characters must be digits and the remainder must contain a hyphen;
// the author is everything before the first hyphen and the venue everything after it.
func Parse(key string) (Key, error) {
	if len(key) < 2 {
		return Key{}, fmt.Errorf("%w: %s", ErrBadKey, key)
	}
	head, yy := key[:len(key)-2], key[len(key)-2:]
	if !isDigit(yy[0]) || !isDigit(yy[1]) {
		return Key{}, fmt.Errorf("%w: %s", ErrBadKey, key)
	}
	author, venue, ok := strings.Cut(head, "-")
	if !ok {
		return Key{}, fmt.Errorf("%w: %s", ErrBadKey, key)
	}
	year := int(yy[0]-'0')*10 + int(yy[1]-'0')
	if year > centuryCutover {
		year += 1900
	} else {
		year += 2000
	}
	return Key{Author: author, Venue: venue, Year: year}, nil
}

// Valid reports whether key parses.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
