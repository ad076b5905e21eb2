package color

import (
	"testing"
)

var badColors = []string{"EFCA39", "#89ACB", "#", "", "#GG8000", "xtup", "#-12", "#+1234"}

var goodColors = []struct {
	in  string
	out Color
}{
	{"#ABCDEF", Color{0xAB, 0xCD, 0xEF}},
	{"#8950BE", Color{0x89, 0x50, 0xBE}},
	{"#000000", Color{}},
	{"#FFFFFF", Color{255, 255, 255}},
	{"#F80", Color{0xFF, 0x88, 0x00}},
	{"Cyan", Color{0, 205, 205}},
}

func TestBadColors(t *testing.T) {
	for _, s := range badColors {
		if c, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) = %+v; want error", s, c)
		}
	}
}

func TestGoodColors(t *testing.T) {
	for _, tt := range goodColors {
		if c, err := Parse(tt.in); err != nil {
			t.Errorf("Parse(%q) got error, want %+v", tt.in, tt.out)
		} else if c != tt.out {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, c, tt.out)
		}
	}
}

func TestUnmarshalKeepsOldValue(t *testing.T) {
	c := Color{1, 2, 3}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(\"nope\") succeeded")
	}
	if c != (Color{1, 2, 3}) {
		t.Errorf("after failed UnmarshalText, got %+v", c)
	}
}
