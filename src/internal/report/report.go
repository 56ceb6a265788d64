// Package report renders lint findings as one line per finding.
package report

import (
	"fmt"
	"io"
	"strings"

	"bibtool/src/internal/config"
	"bibtool/src/internal/lint"
)

// Printer writes findings to an output with a Styler.
type Printer struct {
	w io.Writer
	s Styler
}

// NewPrinter returns a printer; a nil styler means Plain.
func NewPrinter(w io.Writer, s Styler) *Printer {
	if s == nil {
		s = Plain{}
	}
	return &Printer{w: w, s: s}
}

// StylerFor picks the styler for a color mode (auto, always, never).
func StylerFor(w io.Writer, mode string) Styler {
	switch mode {
	case config.ColorNever:
		return Plain{}
	case config.ColorAlways:
		return NewLipgloss(w, true)
	default:
		return NewLipgloss(w, false)
	}
}

// Finding writes one per-entry finding.
func (p *Printer) Finding(f lint.Finding) error {
	code := p.s.Label(f.Category, string(f.Category))
	key := p.s.Key(f.Key)
	var err error
	switch f.Category {
	case lint.BadKey:
		_, err = fmt.Fprintf(p.w, "%s: %s\n", code, key)
	case lint.MissingFields:
		_, err = fmt.Fprintf(p.w, "%s for %s: %s | %s\n", code, key, strings.Join(f.Values, " "), p.s.Type(f.Type))
	default:
		_, err = fmt.Fprintf(p.w, "%s for %s: %s\n", code, key, strings.Join(f.Values, " "))
	}
	return err
}

// Findings writes every finding in order.
func (p *Printer) Findings(fs []lint.Finding) error {
	for _, f := range fs {
		if err := p.Finding(f); err != nil {
			return err
		}
	}
	return nil
}

// Group writes a header line followed by one indented line per member, keys
// padded to the longest key of the group.
func (p *Printer) Group(g lint.Group) error {
	code := p.s.Label(g.Category, string(g.Category))
	if _, err := fmt.Fprintf(p.w, "%s: %s\n", code, p.s.Accent(g.Label)); err != nil {
		return err
	}
	width := 0
	for _, m := range g.Members {
		if len(m.Key) > width {
			width = len(m.Key)
		}
	}
	for _, m := range g.Members {
		pad := strings.Repeat(" ", width-len(m.Key))
		if _, err := fmt.Fprintf(p.w, "    (%s%s) |- %s\n", p.s.Key(m.Key), pad, m.Text); err != nil {
			return err
		}
	}
	return nil
}

// Groups writes every group in order.
func (p *Printer) Groups(gs []lint.Group) error {
	for _, g := range gs {
		if err := p.Group(g); err != nil {
			return err
		}
	}
	return nil
}
