package main

import (
	"github.com/dpinela/lineinput/internal/config"
	"github.com/dpinela/lineinput/internal/termdraw"
)

func drawStyle(s config.Style) termdraw.Style {
	return termdraw.Style{
		Foreground: s.Foreground,
		Background: s.Background,
		Bold:       s.Bold,
		Italic:     s.Italic,
		Underline:  s.Underline,
	}
}

// redraw renders the transcript and the input field onto the screen.
// The input field occupies the bottom row; the transcript fills the rows above it,
// most recent line last.
func (app *application) redraw() error {
	s := app.screen
	s.Clear()
	size := s.Size()
	if size.X == 0 || size.Y == 0 {
		return s.Flip()
	}
	title := "lineinput"
	if app.composing {
		title += " [compose]"
	}
	s.SetTitle(title)
	y := size.Y - 1
	lines := app.transcript.Last(y)
	for i, line := range lines {
		s.PutText(termdraw.Point{Y: y - len(lines) + i}, line, termdraw.Style{})
	}
	x := s.PutText(termdraw.Point{Y: y}, app.config.Prompt, drawStyle(app.config.TextStyle.Prompt))
	app.drawField(termdraw.Point{X: x, Y: y}, size.X-x)
	return s.Flip()
}

// drawField draws the input field's display text at p, in a space width cells wide,
// scrolling it horizontally so that the caret stays in view.
func (app *application) drawField(p termdraw.Point, width int) {
	s := app.screen
	if width <= 0 {
		s.SetCursorVisible(false)
		return
	}
	text := app.field.Display()
	caret := app.field.DisplayCursor()
	// The composition, if any, is the part of the display text that isn't committed.
	compStart, compEnd := 0, 0
	if app.field.IsEditing() {
		compStart = app.field.Cursor()
		compEnd = compStart + len(text) - app.field.Len()
	}
	start := 0
	for start < caret && termdraw.StringWidth(text[start:caret]) >= width {
		start += termdraw.NextCharBoundary(text[start:])
	}
	plain := termdraw.Style{}
	comp := drawStyle(app.config.TextStyle.Composition)
	x := p.X
	for i := start; i < len(text); {
		n := termdraw.NextCharBoundary(text[i:])
		style := plain
		if i >= compStart && i < compEnd {
			style = comp
		}
		next := s.PutText(termdraw.Point{X: x, Y: p.Y}, text[i:i+n], style)
		if next == x {
			break
		}
		x = next
		i += n
	}
	caretX := p.X
	if start < caret {
		caretX += termdraw.StringWidth(text[start:caret])
	}
	s.SetCursorPos(termdraw.Point{X: caretX, Y: p.Y})
	s.SetCursorVisible(true)
}
