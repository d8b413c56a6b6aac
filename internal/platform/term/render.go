// Package term turns rendered screens into terminal output: tile styling
// with lipgloss and screen clearing.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/term2048/internal/core"
)

type rgb struct{ r, g, b uint8 }

func (c rgb) color() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
}

// tilePalette maps tile tones to background and text colours.
var tilePalette = map[core.Color]struct{ bg, fg rgb }{
	core.ColorTile2:     {rgb{240, 230, 220}, rgb{120, 110, 100}},
	core.ColorTile4:     {rgb{240, 225, 200}, rgb{120, 110, 100}},
	core.ColorTile8:     {rgb{240, 180, 120}, rgb{250, 245, 240}},
	core.ColorTile16:    {rgb{245, 150, 100}, rgb{250, 245, 240}},
	core.ColorTile32:    {rgb{245, 125, 95}, rgb{250, 245, 240}},
	core.ColorTile64:    {rgb{245, 95, 55}, rgb{250, 245, 240}},
	core.ColorTile128:   {rgb{240, 210, 115}, rgb{250, 245, 240}},
	core.ColorTile256:   {rgb{240, 205, 100}, rgb{250, 245, 240}},
	core.ColorTile512:   {rgb{240, 200, 80}, rgb{250, 245, 240}},
	core.ColorTile1024:  {rgb{240, 200, 60}, rgb{250, 245, 240}},
	core.ColorTile2048:  {rgb{240, 195, 40}, rgb{250, 245, 240}},
	core.ColorTileOther: {rgb{60, 55, 50}, rgb{120, 110, 100}},
}

// Presenter converts screen buffers to styled strings.
type Presenter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
	color    bool
}

// NewPresenter creates a presenter for output written to w. With color
// false, or when w cannot display colour, output is plain text.
func NewPresenter(w io.Writer, color bool) *Presenter {
	p := &Presenter{
		renderer: lipgloss.NewRenderer(w),
		color:    color,
	}
	if !color {
		p.renderer.SetColorProfile(termenv.Ascii)
	}
	p.buildStyles()
	return p
}

// SetColorProfile overrides the detected colour profile.
func (p *Presenter) SetColorProfile(profile termenv.Profile) {
	p.renderer.SetColorProfile(profile)
	p.color = profile != termenv.Ascii
	p.buildStyles()
}

// Color reports whether the presenter emits colour.
func (p *Presenter) Color() bool {
	return p.color && p.renderer.ColorProfile() != termenv.Ascii
}

// Renderer returns the underlying lipgloss renderer.
func (p *Presenter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

func (p *Presenter) buildStyles() {
	p.styles = map[core.Color]lipgloss.Style{
		core.ColorDefault: p.renderer.NewStyle(),
	}
	for tone, c := range tilePalette {
		p.styles[tone] = p.renderer.NewStyle().
			Background(c.bg.color()).
			Foreground(c.fg.color())
	}
}

// Render converts a screen to a string, one styled span per run of equally
// toned cells.
func (p *Presenter) Render(s *core.Screen) string {
	if !p.Color() {
		return s.String()
	}

	var sb strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for tone, text := range s.Runs(y) {
			style, ok := p.styles[tone]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(text))
		}
	}
	return sb.String()
}
