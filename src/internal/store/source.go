package store

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nickng/bibtex"
)

// monthMacros are the macros the parser predefines.
var monthMacros = map[string]string{
	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"may": "May", "jun": "June", "jul": "July", "aug": "August",
	"sep": "September", "oct": "October", "nov": "November", "dec": "December",
}

// parseMu serialises bibtex.Parse, which keeps its lexer state in package globals.
var parseMu sync.Mutex

// parse runs the parser on prepared input. A lone closing brace is parsed
// first to clear the field mode a previously failed parse leaves set.
func parse(text []byte) (*bibtex.BibTex, error) {
	parseMu.Lock()
	defer parseMu.Unlock()
	_, _ = bibtex.Parse(strings.NewReader("}"))
	return bibtex.Parse(bytes.NewReader(text))
}

// source is BibTeX input made safe for the parser.
type source struct {
	text      []byte   // preambles blanked, mangled values flattened
	preambles []string // preamble values in input syntax
	types     []string // entry types in input order and spelling
}

// errStop ends the walk at input the parser rejects on its own.
var errStop = errors.New("unreadable input")

// prepare walks src record by record. The parser keeps only the first operand
// of a '#' concatenation, drops braces nested in quoted values, cannot read a
// braced preamble and exits the process on an undefined macro. So prepare
// joins concatenations and brace-carrying quoted values into one braced
// literal, lifts preambles out, and returns ErrParse for undefined macros.
// From the first construct it cannot follow, input goes to the parser as is.
func prepare(src []byte) (*source, error) {
	p := &preparer{src: src, macros: map[string]string{}}
	if err := p.run(); err != nil {
		return nil, err
	}
	p.out.Write(src[p.copied:])
	return &source{text: p.out.Bytes(), preambles: p.preambles, types: p.types}, nil
}

type preparer struct {
	src       []byte
	pos       int
	copied    int // src before this offset is already in out
	out       bytes.Buffer
	macros    map[string]string
	preambles []string
	types     []string
}

// value is one field value: its operands joined with macros expanded.
type value struct {
	text        string
	start, end  int
	operands    int
	bare        bool // a single macro name or number
	quotedBrace bool
}

func (v value) mangled() bool { return v.operands > 1 || v.quotedBrace }

func (p *preparer) run() error {
	for {
		i := bytes.IndexByte(p.src[p.pos:], '@')
		if i < 0 {
			return nil
		}
		start := p.pos + i
		p.pos = start + 1
		p.skipSpace()
		kind := p.ident()
		if strings.EqualFold(kind, "comment") {
			continue
		}
		p.skipSpace()
		if kind == "" || p.peek() != '{' {
			return nil
		}
		p.pos++
		var err error
		switch strings.ToLower(kind) {
		case "preamble":
			err = p.preamble(start)
		case "string":
			err = p.macro()
		default:
			err = p.entry(kind)
		}
		if errors.Is(err, errStop) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (p *preparer) entry(kind string) error {
	p.skipSpace()
	if p.ident() == "" {
		return errStop
	}
	p.skipSpace()
	if p.peek() != ',' {
		return errStop
	}
	p.pos++
	for {
		p.skipSpace()
		switch p.peek() {
		case '}':
			p.pos++
			p.types = append(p.types, kind)
			return nil
		case ',':
			p.pos++
			continue
		}
		if p.ident() == "" {
			return errStop
		}
		if _, err := p.assignment(); err != nil {
			return err
		}
		p.skipSpace()
		if c := p.peek(); c != ',' && c != '}' {
			return errStop
		}
	}
}

func (p *preparer) macro() error {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return errStop
	}
	v, err := p.assignment()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.peek() != '}' {
		return errStop
	}
	p.pos++
	p.macros[name] = v.text
	return nil
}

// assignment reads "= value" after a field or macro name and flattens the
// value when the parser would mangle it.
func (p *preparer) assignment() (value, error) {
	p.skipSpace()
	if p.peek() != '=' {
		return value{}, errStop
	}
	p.pos++
	v, err := p.value()
	if err != nil {
		return value{}, err
	}
	if v.mangled() {
		p.replace(v.start, v.end, delimit(v.text))
	}
	return v, nil
}

func (p *preparer) preamble(start int) error {
	v, err := p.value()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.peek() != '}' {
		return errStop
	}
	p.pos++
	raw := string(p.src[v.start:v.end])
	if v.operands > 1 || v.bare {
		raw = delimit(v.text)
	}
	p.preambles = append(p.preambles, raw)
	p.replace(start, p.pos, strings.Repeat("\n", bytes.Count(p.src[start:p.pos], []byte("\n"))))
	return nil
}

// value reads operands joined by '#'.
func (p *preparer) value() (value, error) {
	p.skipSpace()
	v := value{start: p.pos}
	var text strings.Builder
	for {
		s, bare, quoted, err := p.operand()
		if err != nil {
			return value{}, err
		}
		text.WriteString(s)
		v.operands++
		v.bare = bare
		if quoted && strings.ContainsAny(s, "{}") {
			v.quotedBrace = true
		}
		v.end = p.pos
		p.skipSpace()
		if p.peek() != '#' {
			p.pos = v.end
			break
		}
		p.pos++
		p.skipSpace()
	}
	v.bare = v.bare && v.operands == 1
	v.text = text.String()
	return v, nil
}

// operand reads one braced, quoted or bare operand and returns its text.
func (p *preparer) operand() (text string, bare, quoted bool, err error) {
	switch p.peek() {
	case '{':
		start := p.pos + 1
		depth := 0
		for ; p.pos < len(p.src); p.pos++ {
			switch p.src[p.pos] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					p.pos++
					return string(p.src[start : p.pos-1]), false, false, nil
				}
			}
		}
		return "", false, false, errStop
	case '"':
		p.pos++
		start := p.pos
		depth := 0
		for ; p.pos < len(p.src); p.pos++ {
			switch p.src[p.pos] {
			case '{':
				depth++
			case '}':
				depth--
			case '"':
				if depth == 0 {
					p.pos++
					return string(p.src[start : p.pos-1]), false, true, nil
				}
			}
		}
		return "", false, false, errStop
	}
	name := p.ident()
	if name == "" {
		return "", false, false, errStop
	}
	if _, err := strconv.Atoi(name); err == nil {
		return name, true, false, nil
	}
	if s, ok := p.macros[name]; ok {
		return s, true, false, nil
	}
	if s, ok := monthMacros[name]; ok {
		return s, true, false, nil
	}
	return "", false, false, fmt.Errorf("%w: unknown string variable: %s", ErrParse, name)
}

// replace emits src up to from, then with, and skips src up to to.
func (p *preparer) replace(from, to int, with string) {
	p.out.Write(p.src[p.copied:from])
	p.out.WriteString(with)
	p.copied = to
}

func (p *preparer) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *preparer) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// ident reads a bare word as the parser lexes one.
func (p *preparer) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || strings.IndexByte("-_:./+", c) >= 0 {
			p.pos++
			continue
		}
		break
	}
	return string(p.src[start:p.pos])
}
