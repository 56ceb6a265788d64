package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nickng/bibtex"

	"bibtool/src/internal/names"
	"bibtool/src/internal/schema"
)

// fieldOrder is the stable order in which known fields are written; any other
// field follows in lexical order.
var fieldOrder = []string{
	"title", "booktitle", "journal", "howpublished", "publisher", "school",
	"institution", "organization", "address", "location", "edition", "series",
	"volume", "number", "chapter", "pages", "month", "year", "doi", "isbn",
	"issn", "url", "urldate", "note", "abstract", "keywords", "key", "biblint",
}

var fieldRank = func() map[string]int {
	m := make(map[string]int, len(fieldOrder))
	for i, f := range fieldOrder {
		m[f] = i
	}
	return m
}()

// canonicalOrder sorts field names: known fields first in fieldOrder, then the rest.
func canonicalOrder(fs []string) []string {
	out := append([]string(nil), fs...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := fieldRank[strings.ToLower(out[i])]
		rj, jok := fieldRank[strings.ToLower(out[j])]
		switch {
		case iok && jok:
			if ri != rj {
				return ri < rj
			}
		case iok != jok:
			return iok
		}
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

// Writer renders collections as canonical BibTeX.
type Writer struct {
	// Width folds long values at this column; 0 writes every value on one line.
	Width int
}

// Format renders the sorted collection into a byte slice.
func (w Writer) Format(c *schema.Collection) []byte {
	var buf bytes.Buffer
	for _, p := range c.Preambles {
		fmt.Fprintf(&buf, "@preamble{%s}\n\n", p)
	}
	for i, e := range Sort(c.Entries) {
		if i > 0 {
			buf.WriteString("\n")
		}
		w.writeEntry(&buf, e)
	}
	return buf.Bytes()
}

// Write renders c fully in memory, then hands it to out in a single write.
func (w Writer) Write(out io.Writer, c *schema.Collection) error {
	_, err := out.Write(w.Format(c))
	return err
}

// WriteFile renders c to path; "-" writes to stdout.
func (w Writer) WriteFile(path string, stdout io.Writer, c *schema.Collection) error {
	if path == "" || path == Stdio {
		return w.Write(stdout, c)
	}
	return os.WriteFile(path, w.Format(c), 0o644)
}

func (w Writer) writeEntry(buf *bytes.Buffer, e *schema.Entry) {
	typ := e.OriginalType
	if typ == "" {
		typ = e.Type
	}
	var body bytes.Buffer
	for _, role := range e.Roles() {
		writeWrappedField(&body, role, names.JoinPersons(e.Persons[role]), w.Width)
	}
	for _, f := range e.Fields {
		writeWrappedField(&body, f.Name, f.Value, w.Width)
	}
	fmt.Fprintf(buf, "@%s{%s,\n", typ, e.Key)
	out := strings.TrimRight(body.String(), "\n")
	out = strings.TrimSuffix(out, ",")
	if out != "" {
		buf.WriteString(out)
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
}

// delimit renders a value literal the way the parser reads it back: braced
// as bibtex.BibConst prints it, or quoted when the value holds an '@' and no
// braces, since the parser rejects a bare '@' inside braces.
func delimit(value string) string {
	if strings.Contains(value, "@") && !strings.ContainsAny(value, `{}"`) {
		return `"` + value + `"`
	}
	return bibtex.NewBibConst(value).RawString()
}

// writeWrappedField writes "  name = {value},\n", folding the value on
// whitespace with a four-space continuation indent when width > 0.
func writeWrappedField(buf *bytes.Buffer, name, value string, width int) {
	lit := delimit(value)
	if width <= 0 {
		buf.WriteString("  " + name + " = " + lit + ",\n")
		return
	}
	prefix := "  " + name + " = " + lit[:1]
	closing := lit[len(lit)-1:]
	const indent = "    "
	words := strings.Fields(value)
	line := prefix
	lineHasWord := false
	for _, word := range words {
		if lineHasWord && len(line)+1+len(word) > width {
			buf.WriteString(line + "\n")
			line = indent + word
			continue
		}
		if lineHasWord {
			line += " "
		}
		line += word
		lineHasWord = true
	}
	buf.WriteString(line + closing + ",\n")
}
