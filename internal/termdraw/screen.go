// Package termdraw draws text onto a terminal through an in-memory copy of its contents.
package termdraw

import (
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/dpinela/lineinput/internal/color"
	"github.com/dpinela/lineinput/internal/termesc"
)

// A Style describes the appearance of a chunk of text.
//
// The zero Style means non-bold, non-underline text with the default colors
// for the output device.
type Style struct {
	Foreground, Background  *color.Color
	Bold, Italic, Underline bool
	Inverted                bool
}

// A Cell represents a single character along with the style it should be displayed with.
// The zero Cell acts as an empty space.
type Cell struct {
	Content string
	Style   Style
}

// Screen represents a buffered terminal screen.
//
// Changes made to the contents by Resize, Put, PutText, Clear, SetCursorPos, SetCursorVisible
// or SetTitle are not reflected on the terminal until Flip is called.
type Screen struct {
	console io.Writer
	width   int

	current           []Cell
	cursorPos         Point
	cursorVisible     bool
	prevCursorVisible bool
	title             string

	titleNeedsRedraw bool
	buf              []byte
}

// Point is a point in the coordinate system of the terminal, in which X increases from left to right
// and Y from top to bottom.
// The zero Point, (0, 0), represents the top-left corner of the screen.
type Point struct {
	X, Y int
}

// NewScreen creates a new, blank Screen connected to a terminal with the given dimensions.
func NewScreen(out io.Writer, size Point) *Screen {
	s := &Screen{console: out}
	s.Resize(size)
	return s
}

// Size returns the current dimensions of the Screen.
func (s *Screen) Size() Point {
	if s.width == 0 {
		return Point{}
	}
	return Point{X: s.width, Y: len(s.current) / s.width}
}

// Resize updates the dimensions of the Screen, then clears it.
func (s *Screen) Resize(size Point) {
	if size.X < 0 || size.Y < 0 {
		size = Point{}
	}
	s.width = size.X
	n := size.X * size.Y
	if n <= cap(s.current) {
		s.current = s.current[:n]
		s.Clear()
	} else {
		s.current = make([]Cell, n)
	}
}

// Clear sets all cells in the Screen to blank spaces.
func (s *Screen) Clear() {
	for i := range s.current {
		s.current[i] = Cell{}
	}
}

// Put replaces the content of the cell at position p. Points outside the screen are ignored.
func (s *Screen) Put(p Point, c Cell) {
	if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y*s.width+p.X >= len(s.current) {
		return
	}
	s.current[p.Y*s.width+p.X] = c
}

// PutText writes text on row p.Y starting at column p.X, one character per cell (two for
// wide characters), and returns the column just past the last character written.
// Text that would extend past the right edge of the screen is cut off.
func (s *Screen) PutText(p Point, text string, style Style) int {
	x := p.X
	for len(text) > 0 {
		n := NextCharBoundary(text)
		w := CharWidth(text[:n])
		if x+w > s.width {
			break
		}
		s.Put(Point{X: x, Y: p.Y}, Cell{Content: text[:n], Style: style})
		if w > 1 {
			s.Put(Point{X: x + 1, Y: p.Y}, Cell{Style: style})
		}
		x += w
		text = text[n:]
	}
	return x
}

// NextCharBoundary returns the length of the first character in s, as it is displayed:
// a base character together with any combining marks that follow it.
func NextCharBoundary(s string) int {
	if len(s) == 0 {
		return 0
	}
	if len(s) == 1 || (s[0] < 0x80 && s[1] < 0x80) {
		return 1
	}
	return norm.NFC.NextBoundaryInString(s, true)
}

// CharWidth returns the number of cells taken by the character c.
// Control characters are shown as a single placeholder cell.
func CharWidth(c string) int {
	if len(c) == 1 && (c[0] < ' ' || c[0] == 0x7F) {
		return 1
	}
	return max(runewidth.StringWidth(c), 1)
}

// StringWidth returns the number of cells taken by s when written with PutText.
func StringWidth(s string) int {
	w := 0
	for len(s) > 0 {
		n := NextCharBoundary(s)
		w += CharWidth(s[:n])
		s = s[n:]
	}
	return w
}

// SetTitle sets the terminal's title.
func (s *Screen) SetTitle(t string) {
	if t != s.title {
		s.title = t
		s.titleNeedsRedraw = true
	}
}

// SetCursorPos sets the cursor position.
func (s *Screen) SetCursorPos(p Point) { s.cursorPos = p }

// CursorPos returns the cursor position set by SetCursorPos.
func (s *Screen) CursorPos() Point { return s.cursorPos }

// Row returns the text on row y, with blank cells as spaces and trailing blanks removed.
func (s *Screen) Row(y int) string {
	if y < 0 || (y+1)*s.width > len(s.current) {
		return ""
	}
	var b []byte
	row := trimTrailingBlanks(s.current[y*s.width : (y+1)*s.width])
	for x := 0; x < len(row); x++ {
		if row[x].Content == "" {
			b = append(b, ' ')
			continue
		}
		b = append(b, row[x].Content...)
		if CharWidth(row[x].Content) > 1 {
			x++
		}
	}
	return string(b)
}

// SetCursorVisible sets whether the cursor is visible.
func (s *Screen) SetCursorVisible(visible bool) { s.cursorVisible = visible }

var styleReset = termesc.SetGraphicAttributes(termesc.StyleNone)

// Flip replaces the contents of the screen with the current contents of the Screen's buffer.
// It also updates the title and cursor, if necessary.
//
// It assumes that nothing else has written to the terminal since the last call to Flip, unless
// this is the first such call for that Screen.
func (s *Screen) Flip() error {
	buf := s.buf[:0]
	if s.titleNeedsRedraw {
		buf = append(buf, termesc.SetTitle(s.title)...)
		s.titleNeedsRedraw = false
	}
	buf = append(buf, termesc.SetCursorPos(1, 1)...)
	buf = append(buf, termesc.ClearScreenForward...)
	curStyle := Style{}
	for i := 0; i < len(s.current); i += s.width {
		row := trimTrailingBlanks(s.current[i : i+s.width])
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c.Style != curStyle {
				buf = append(buf, styleReset...)
				buf = append(buf, makeSGRString(&c.Style)...)
				curStyle = c.Style
			}
			switch {
			case c.Content == "":
				buf = append(buf, ' ')
			case len(c.Content) == 1 && c.Content[0] < ' ':
				buf = append(buf, string('␀'+rune(c.Content[0]))...)
			case c.Content == "\x7f":
				buf = append(buf, "␡"...)
			default:
				buf = append(buf, c.Content...)
				if CharWidth(c.Content) > 1 {
					x++ // skip next cell
				}
			}
		}
		if curStyle != (Style{}) {
			buf = append(buf, styleReset...)
			curStyle = Style{}
		}
		if i+s.width < len(s.current) {
			buf = append(buf, '\r', '\n')
		}
	}
	if s.cursorVisible != s.prevCursorVisible {
		code := termesc.HideCursor
		if s.cursorVisible {
			code = termesc.ShowCursor
		}
		buf = append(buf, code...)
	}
	s.prevCursorVisible = s.cursorVisible
	if s.cursorVisible {
		buf = append(buf, termesc.SetCursorPos(s.cursorPos.Y+1, s.cursorPos.X+1)...)
	}
	s.buf = buf
	_, err := s.console.Write(buf)
	return err
}

func trimTrailingBlanks(cs []Cell) []Cell {
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].Content != "" || cs[i].Style != (Style{}) {
			return cs[:i+1]
		}
	}
	return cs[:0]
}

func makeSGRString(s *Style) string {
	var params []termesc.GraphicAttribute
	// Flip resets the style before each change, so only the attributes that are on need
	// to be set here.
	if fg := s.Foreground; fg != nil {
		params = append(params, termesc.OutputColor(*fg))
	}
	if bg := s.Background; bg != nil {
		params = append(params, termesc.OutputColorBackground(*bg))
	}
	if s.Bold {
		params = append(params, termesc.StyleBold)
	}
	if s.Italic {
		params = append(params, termesc.StyleItalic)
	}
	if s.Underline {
		params = append(params, termesc.StyleUnderline)
	}
	if s.Inverted {
		params = append(params, termesc.StyleInverted)
	}
	return termesc.SetGraphicAttributes(params...)
}
