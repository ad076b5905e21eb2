package termesc

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/dpinela/lineinput/internal/color"
)

var tokenTests = []struct {
	name, in string
	want     []string
}{
	{name: "Mixed", in: "\x1B[M#U7Á €50.0\x1B+25c, \x1B[Afoo\x1B[32;10;15M\x1B[Cπ",
		want: []string{"\x1B[M#U7", "Á", " ", "€", "5", "0", ".", "0", "\x1B", "+", "2", "5", "c",
			",", " ", "\x1B[A", "f", "o", "o", "\x1B[32;10;15M", "\x1B[C", "π"}},
	{name: "EditingKeys", in: "a\x1B[3~\x1B[H\x1B[F\x1BOH\x1BOF\x1B[1~\x1B[4~\x7f",
		want: []string{"a", DeleteKey, HomeKey, EndKey, AltHomeKey, AltEndKey, VTHomeKey, VTEndKey, "\x7f"}},
	{name: "TrailingEscape", in: "日\x1B", want: []string{"日", EscapeKey}},
	{name: "Wide", in: "🇦🇶x", want: []string{"🇦", "🇶", "x"}},
	{name: "InvalidBytes", in: "\xff\xe2\x82z", want: []string{"\xff", "\xe2\x82", "z"}},
}

func readAllTokens(t *testing.T, in string) []string {
	t.Helper()
	c := NewConsoleReader(strings.NewReader(in))
	var output []string
	for {
		token, err := c.ReadToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		output = append(output, token)
	}
	return output
}

func TestInputParsing(t *testing.T) {
	for _, tt := range tokenTests {
		t.Run(tt.name, func(t *testing.T) {
			if output := readAllTokens(t, tt.in); !reflect.DeepEqual(output, tt.want) {
				t.Errorf("got %q, want %q", output, tt.want)
			}
		})
	}
}

func TestSetGraphicAttributes(t *testing.T) {
	got := SetGraphicAttributes(StyleNone, StyleBold, OutputColor(color.Color{R: 1, G: 2, B: 3}))
	if want := "\x1B[0;1;38;2;1;2;3m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
