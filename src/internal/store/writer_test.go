package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bibtool/src/internal/schema"
)

func TestFormatLayout(t *testing.T) {
	c := &schema.Collection{Entries: []*schema.Entry{{
		Key:          "smith-acl19",
		Type:         "inproceedings",
		OriginalType: "inproceedings",
		Fields:       []schema.Field{{Name: "title", Value: "T"}, {Name: "year", Value: "2019"}},
		Persons:      map[string][]string{"editor": {"E"}, "author": {"A", "B"}},
	}}}
	got := string(Writer{}.Format(c))
	want := "@inproceedings{smith-acl19,\n" +
		"  author = {A and B},\n" +
		"  editor = {E},\n" +
		"  title = {T},\n" +
		"  year = {2019}\n" +
		"}\n"
	if got != want {
		t.Fatalf("format:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatEmptyEntry(t *testing.T) {
	c := &schema.Collection{Entries: []*schema.Entry{{Key: "k", Type: "misc"}}}
	if got := string(Writer{}.Format(c)); got != "@misc{k,\n}\n" {
		t.Fatalf("format: %q", got)
	}
}

func TestFormatIsFixedPoint(t *testing.T) {
	bib := `@preamble{"\newcommand{\noopsort}[1]{}"}
@preamble{{\def\bibtool{bibtool}}}
@string{site = "Web"}
` + sampleBib + `
@misc{unparsable,
  title = {No Convention},
  howpublished = site # { page},
  url = "mailto:someone@example.org",
  note = {A rather long note that will need to be wrapped when a width is set for output},
  year = {2001}
}

@book{nokey,
  title = {Undated}
}
`
	for _, width := range []int{0, 40} {
		w := Writer{Width: width}
		c, err := Read(strings.NewReader(bib))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		first := w.Format(c)
		c2, err := Read(bytes.NewReader(first))
		if err != nil {
			t.Fatalf("re-read: %v\n%s", err, first)
		}
		second := w.Format(c2)
		if !bytes.Equal(first, second) {
			t.Fatalf("width %d: not a fixed point:\n%s\n---\n%s", width, first, second)
		}
		for _, want := range []string{
			"@preamble{\"\\newcommand{\\noopsort}[1]{}\"}\n\n@preamble{{\\def\\bibtool{bibtool}}}\n\n@InProceedings{smith-acl19,",
			"howpublished = {Web page}",
			"url = \"mailto:someone@example.org\"",
		} {
			if !bytes.Contains(first, []byte(want)) {
				t.Fatalf("width %d: missing %q in:\n%s", width, want, first)
			}
		}
	}
}

func TestWriteWrappedField(t *testing.T) {
	var buf bytes.Buffer
	writeWrappedField(&buf, "abstract", strings.Repeat("word ", 30), 50)
	out := buf.String()
	if !strings.Contains(out, "\n    ") {
		t.Fatalf("expected wrapped continuation, got: %q", out)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) > 50 {
			t.Fatalf("line longer than width: %q", line)
		}
	}
	buf.Reset()
	writeWrappedField(&buf, "title", "  keep   spacing ", 0)
	if buf.String() != "  title = {  keep   spacing },\n" {
		t.Fatalf("unwrapped field changed: %q", buf.String())
	}
}

func TestCanonicalOrder(t *testing.T) {
	got := canonicalOrder([]string{"zeta", "year", "Title", "alpha", "doi"})
	want := []string{"Title", "year", "doi", "alpha", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("canonicalOrder=%v want %v", got, want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	c := &schema.Collection{Entries: []*schema.Entry{{Key: "k", Type: "misc"}}}
	path := filepath.Join(t.TempDir(), "out.bib")
	if err := (Writer{}).WriteFile(path, nil, c); err != nil {
		t.Fatalf("write file: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "@misc{k,\n}\n" {
		t.Fatalf("file content: %q", b)
	}
	var buf bytes.Buffer
	if err := (Writer{}).WriteFile(Stdio, &buf, c); err != nil || buf.String() != string(b) {
		t.Fatalf("stdout write: %v %q", err, buf.String())
	}
}
