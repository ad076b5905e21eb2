// Package color parses the colors used in configuration files.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Color is a 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// String returns the hex color code for c.
func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

var named = map[string]Color{
	"black":   {0, 0, 0},
	"red":     {205, 0, 0},
	"green":   {0, 205, 0},
	"yellow":  {205, 205, 0},
	"blue":    {0, 0, 238},
	"magenta": {205, 0, 205},
	"cyan":    {0, 205, 205},
	"white":   {229, 229, 229},
	"grey":    {127, 127, 127},
}

// Parse returns the RGB values corresponding to the color described by s.
// The string may be a CSS-style hex code (#ABCDEF or #ABC) or the name of one of the
// basic terminal colors.
func Parse(s string) (Color, error) {
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !((len(s) == 7 || len(s) == 4) && s[0] == '#') {
		return Color{}, fmt.Errorf("color: parse %q: not a valid hex string or color name", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, errors.WithMessage(err, fmt.Sprintf("color: parse %q", s))
	}
	if len(s) == 4 {
		// Each digit stands for a whole channel: #ABC == #AABBCC.
		r, g, b := uint8(n>>8&0xF), uint8(n>>4&0xF), uint8(n&0xF)
		return Color{r<<4 | r, g<<4 | g, b<<4 | b}, nil
	}
	return Color{uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

func (c *Color) UnmarshalText(b []byte) (err error) {
	in, err := Parse(string(b))
	if err == nil {
		*c = in
	}
	return
}
