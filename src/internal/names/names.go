package names

import (
	"strings"
)

// SplitPersons splits a BibTeX name list on the word "and" at brace depth zero.
// "Doe, Jane and {Barnes and Noble}" yields ["Doe, Jane", "{Barnes and Noble}"].
func SplitPersons(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ' ', '\t', '\n', '\r':
			if depth != 0 {
				continue
			}
			if n := andSeparator(s[i:]); n > 0 {
				out = appendName(out, s[start:i])
				i += n - 1
				start = i + 1
			}
		}
	}
	return appendName(out, s[start:])
}

// JoinPersons renders a name list back into a single BibTeX value.
func JoinPersons(ps []string) string { return strings.Join(ps, " and ") }

// andSeparator returns the length of a whitespace-delimited "and" at the start of s.
func andSeparator(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i+3 >= len(s) || !strings.EqualFold(s[i:i+3], "and") || !isSpace(s[i+3]) {
		return 0
	}
	j := i + 3
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	return j
}

func appendName(out []string, name string) []string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return out
	}
	return append(out, name)
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
