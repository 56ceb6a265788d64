package lint

import (
	"strings"

	"bibtool/src/internal/schema"
	"bibtool/src/internal/stringsx"
)

// ValidPages reports whether the pages field of e is a well formed range.
// An entry without pages is valid.
func ValidPages(e *schema.Entry) bool {
	p, ok := e.Field("pages")
	if !ok {
		return true
	}
	return ValidPageRange(p)
}

// ValidPageRange accepts "start--end" where each side is N or N:M and start != end.
func ValidPageRange(s string) bool {
	parts := strings.Split(s, "--")
	if len(parts) != 2 {
		return false
	}
	return validPage(parts[0]) && validPage(parts[1]) && parts[0] != parts[1]
}

// validPage accepts a page number or a chapter:page pair.
func validPage(p string) bool {
	parts := strings.Split(p, ":")
	switch len(parts) {
	case 1:
		return stringsx.IsDigits(parts[0])
	case 2:
		return stringsx.IsDigits(parts[0]) && stringsx.IsDigits(parts[1])
	}
	return false
}

// EmptyFieldNames returns the names of fields whose value is blank, in field order.
func EmptyFieldNames(e *schema.Entry) []string {
	var out []string
	for _, f := range e.Fields {
		if stringsx.IsBlank(f.Value) {
			out = append(out, f.Name)
		}
	}
	return out
}
