package termesc

import (
	"strconv"

	"github.com/dpinela/lineinput/internal/color"
)

type GraphicFlag int

// Constants for non-color graphic attributes.
const (
	StyleNone         GraphicFlag = 0
	StyleBold         GraphicFlag = 1
	StyleItalic       GraphicFlag = 3
	StyleUnderline    GraphicFlag = 4
	StyleInverted     GraphicFlag = 7
	StyleNotBold      GraphicFlag = 22
	StyleNotItalic    GraphicFlag = 23
	StyleNotUnderline GraphicFlag = 24
	StyleNotInverted  GraphicFlag = 27
)

// Constants for the 3-bit ANSI color palette.
const (
	ColorBlack GraphicFlag = 30 + iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Constants that restore the output device's default colors.
const (
	ColorDefault           GraphicFlag = 39
	ColorDefaultBackground GraphicFlag = 49
)

func (c GraphicFlag) forEachSGRCode(f func(int)) { f(int(c)) }

// OutputColor sets the foreground to a 24-bit color.
type OutputColor color.Color

func (c OutputColor) forEachSGRCode(f func(int)) {
	f(38)
	f(2)
	f(int(c.R))
	f(int(c.G))
	f(int(c.B))
}

// OutputColorBackground sets the background to a 24-bit color.
type OutputColorBackground color.Color

func (c OutputColorBackground) forEachSGRCode(f func(int)) {
	f(48)
	f(2)
	f(int(c.R))
	f(int(c.G))
	f(int(c.B))
}

type GraphicAttribute interface {
	forEachSGRCode(func(int))
}

// SetGraphicAttributes returns an SGR code that applies all of the given attributes, in order.
func SetGraphicAttributes(attrs ...GraphicAttribute) string {
	b := make([]byte, len(csi), 64)
	copy(b, csi)
	for _, attr := range attrs {
		attr.forEachSGRCode(func(x int) {
			if len(b) > len(csi) {
				b = append(b, ';')
			}
			b = strconv.AppendInt(b, int64(x), 10)
		})
	}
	return string(append(b, 'm'))
}
