package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Slate  = lipgloss.Color("#667085")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// ColorProfile returns Ascii when NO_COLOR is set, otherwise the profile detected from the environment.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Styles renders status badges for one output stream.
type Styles struct {
	ok    lipgloss.Style
	fail  lipgloss.Style
	warn  lipgloss.Style
	muted lipgloss.Style
	bold  lipgloss.Style
}

// NewStyles returns styles rendering for w with the given color profile.
func NewStyles(w io.Writer, profile termenv.Profile) *Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Styles{
		ok:    r.NewStyle().Foreground(Green),
		fail:  r.NewStyle().Foreground(Red).Bold(true),
		warn:  r.NewStyle().Foreground(Yellow),
		muted: r.NewStyle().Foreground(Slate),
		bold:  r.NewStyle().Bold(true),
	}
}

func (s *Styles) OK(text string) string {
	return s.ok.Render(Check + " " + text)
}

func (s *Styles) Fail(text string) string {
	return s.fail.Render(Cross + " " + text)
}

func (s *Styles) Warn(text string) string {
	return s.warn.Render(Warning + " " + text)
}

func (s *Styles) Muted(text string) string {
	return s.muted.Render(text)
}

func (s *Styles) Title(text string) string {
	return s.bold.Render(text)
}
