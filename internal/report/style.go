package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when reports are highlighted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Style decides how highlighted report fragments are rendered.
type Style struct {
	enabled  bool
	negative lipgloss.Style
	account  lipgloss.Style
}

// PlainStyle renders every fragment unchanged.
func PlainStyle() Style {
	return Style{}
}

// NewStyle returns the style for reports written to w.
func NewStyle(w io.Writer, mode ColorMode) Style {
	renderer := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		return PlainStyle()
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI)
	default:
		f, ok := w.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			return PlainStyle()
		}
	}
	return Style{
		enabled:  true,
		negative: renderer.NewStyle().Foreground(lipgloss.Color("9")),  // Red
		account:  renderer.NewStyle().Foreground(lipgloss.Color("12")), // Blue
	}
}

// Negative renders s when it holds a negative amount.
func (s Style) Negative(text string) string {
	if !s.enabled {
		return text
	}
	return s.negative.Render(text)
}

// Account renders an account label.
func (s Style) Account(text string) string {
	if !s.enabled {
		return text
	}
	return s.account.Render(text)
}
