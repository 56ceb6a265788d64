package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Person roles carried as name lists rather than plain fields.
const (
	RoleAuthor = "author"
	RoleEditor = "editor"
)

// PersonRoles lists the fields that are split into person lists on read.
var PersonRoles = []string{RoleAuthor, RoleEditor}

// IsPersonRole reports whether a field name holds a list of persons.
func IsPersonRole(name string) bool {
	for _, r := range PersonRoles {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}

// Field is a single name = value pair of a BibTeX record.
type Field struct {
	Name  string
	Value string
}

// Entry is one bibliographic record.
type Entry struct {
	Key          string
	Type         string // lower-cased, used for rule lookup
	OriginalType string // as spelled in the source, used when writing
	Fields       []Field
	Persons      map[string][]string
}

// Collection is an ordered set of entries as read from one file.
type Collection struct {
	Preambles []string // @preamble values in BibTeX syntax, delimiters included
	Entries   []*Entry
}

// Field returns the value of the named field.
func (e *Entry) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// SetField replaces the named field or appends it.
func (e *Entry) SetField(name, value string) {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			e.Fields[i].Value = value
			return
		}
	}
	e.Fields = append(e.Fields, Field{Name: name, Value: value})
}

// Has reports whether name is present either as a field or as a person role.
// Both namespaces are answered here so rule checks never look at them separately.
func (e *Entry) Has(name string) bool {
	if _, ok := e.Field(name); ok {
		return true
	}
	_, ok := e.Persons[name]
	return ok
}

// Roles returns the person roles of the entry: author, editor, then the rest sorted.
func (e *Entry) Roles() []string {
	out := make([]string, 0, len(e.Persons))
	seen := map[string]bool{}
	for _, r := range PersonRoles {
		if _, ok := e.Persons[r]; ok {
			out = append(out, r)
			seen[r] = true
		}
	}
	var extra []string
	for r := range e.Persons {
		if !seen[r] {
			extra = append(extra, r)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Validate applies the minimal structural rules every record must satisfy.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Key) == "" {
		return errors.New("citation key is required")
	}
	if strings.TrimSpace(e.Type) == "" {
		return fmt.Errorf("entry %s: type is required", e.Key)
	}
	return nil
}

// Lower returns a copy of e with key, type, field names and roles lower-cased.
func (e *Entry) Lower() *Entry {
	out := &Entry{
		Key:          strings.ToLower(e.Key),
		Type:         strings.ToLower(e.Type),
		OriginalType: e.OriginalType,
		Fields:       make([]Field, 0, len(e.Fields)),
		Persons:      make(map[string][]string, len(e.Persons)),
	}
	for _, f := range e.Fields {
		out.SetField(strings.ToLower(f.Name), f.Value)
	}
	for r, ps := range e.Persons {
		out.Persons[strings.ToLower(r)] = append([]string(nil), ps...)
	}
	return out
}

// Lower returns a copy of the collection with every entry lower-cased.
func (c *Collection) Lower() *Collection {
	out := &Collection{Preambles: append([]string(nil), c.Preambles...)}
	out.Entries = make([]*Entry, 0, len(c.Entries))
	for _, e := range c.Entries {
		out.Entries = append(out.Entries, e.Lower())
	}
	return out
}
