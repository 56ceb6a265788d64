package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"bibtool/src/internal/lint"
)

// Styler decorates the parts of a report line. Checks never see it.
type Styler interface {
	Label(c lint.Category, s string) string
	Key(s string) string
	Accent(s string) string
	Type(s string) string
}

// Plain leaves text untouched.
type Plain struct{}

func (Plain) Label(_ lint.Category, s string) string { return s }
func (Plain) Key(s string) string                    { return s }
func (Plain) Accent(s string) string                 { return s }
func (Plain) Type(s string) string                   { return s }

// ANSI colors per category.
var labelColors = map[lint.Category]lipgloss.Color{
	lint.BadKey:         lipgloss.Color("1"),
	lint.BadPages:       lipgloss.Color("3"),
	lint.EmptyFields:    lipgloss.Color("4"),
	lint.MissingFields:  lipgloss.Color("5"),
	lint.DuplicateTitle: lipgloss.Color("1"),
	lint.VenueNames:     lipgloss.Color("1"),
}

// Lipgloss styles report text with a lipgloss renderer bound to the output.
type Lipgloss struct {
	labels map[lint.Category]lipgloss.Style
	key    lipgloss.Style
	accent lipgloss.Style
	typ    lipgloss.Style
}

// NewLipgloss builds a styler for w. Unless force is set the renderer decides
// from w whether colors are supported, so pipes and files stay plain.
func NewLipgloss(w io.Writer, force bool) *Lipgloss {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI)
	}
	l := &Lipgloss{
		labels: make(map[lint.Category]lipgloss.Style, len(labelColors)),
		key:    r.NewStyle().Bold(true),
		accent: r.NewStyle().Foreground(lipgloss.Color("3")),
		typ:    r.NewStyle().Foreground(lipgloss.Color("2")),
	}
	for c, color := range labelColors {
		l.labels[c] = r.NewStyle().Foreground(color)
	}
	return l
}

func (l *Lipgloss) Label(c lint.Category, s string) string {
	st, ok := l.labels[c]
	if !ok {
		return s
	}
	return st.Render(s)
}

func (l *Lipgloss) Key(s string) string    { return l.key.Render(s) }
func (l *Lipgloss) Accent(s string) string { return l.accent.Render(s) }
func (l *Lipgloss) Type(s string) string   { return l.typ.Render(s) }
