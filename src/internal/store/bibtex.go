package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nickng/bibtex"

	"bibtool/src/internal/names"
	"bibtool/src/internal/schema"
)

// Stdio is the path that stands for standard input or output.
const Stdio = "-"

var (
	// ErrParse wraps every failure of the underlying BibTeX parser.
	ErrParse = errors.New("invalid bib")
	// ErrDuplicateKey is returned when two records share a citation key.
	ErrDuplicateKey = errors.New("repeated bibliography entry")
)

// Read parses a BibTeX stream into a collection, keeping records in file order.
// Name fields (author, editor) are split into person lists. Concatenated
// values are joined with their macros expanded; an undefined macro is ErrParse.
func Read(r io.Reader) (*schema.Collection, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src, err := prepare(raw)
	if err != nil {
		return nil, err
	}
	bib, err := parse(src.text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	coll := &schema.Collection{Preambles: src.preambles}
	seen := map[string]bool{}
	for i, be := range bib.Entries {
		typ := be.Type
		if len(src.types) == len(bib.Entries) {
			typ = src.types[i]
		}
		e := fromBibEntry(be, typ)
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		lk := strings.ToLower(e.Key)
		if seen[lk] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key)
		}
		seen[lk] = true
		coll.Entries = append(coll.Entries, e)
	}
	return coll, nil
}

// ReadFile reads a collection from path; "-" reads stdin.
func ReadFile(path string, stdin io.Reader) (*schema.Collection, error) {
	if path == "" || path == Stdio {
		return Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	coll, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coll, nil
}

// fromBibEntry converts a parsed record; typ is its type as spelled in the input.
func fromBibEntry(be *bibtex.BibEntry, typ string) *schema.Entry {
	typ = strings.TrimSpace(typ)
	e := &schema.Entry{
		Key:          strings.TrimSpace(be.CiteName),
		Type:         strings.ToLower(typ),
		OriginalType: typ,
		Persons:      map[string][]string{},
	}
	// The parser keeps fields in a map; canonicalOrder gives them a stable order.
	fieldNames := make([]string, 0, len(be.Fields))
	for name := range be.Fields {
		fieldNames = append(fieldNames, name)
	}
	for _, name := range canonicalOrder(fieldNames) {
		v := be.Fields[name]
		if v == nil {
			continue
		}
		value := v.String()
		if schema.IsPersonRole(name) {
			e.Persons[name] = names.SplitPersons(value)
			continue
		}
		e.Fields = append(e.Fields, schema.Field{Name: name, Value: value})
	}
	return e
}
