package termdraw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dpinela/lineinput/internal/termesc"
)

var widthTests = []struct {
	in   string
	want int
}{
	{in: "", want: 0},
	{in: "abc", want: 3},
	{in: "日本", want: 4},
	{in: "éx", want: 2},
	{in: "\x01\x7f", want: 2},
}

func TestStringWidth(t *testing.T) {
	for _, tt := range widthTests {
		if w := StringWidth(tt.in); w != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, w, tt.want)
		}
	}
}

func TestPutTextClipsAtEdge(t *testing.T) {
	s := NewScreen(&bytes.Buffer{}, Point{X: 5, Y: 1})
	if x := s.PutText(Point{X: 1, Y: 0}, "ab日本", Style{}); x != 5 {
		t.Errorf("PutText ended at column %d, want 5", x)
	}
	want := []string{"", "a", "b", "日", ""}
	for i, c := range s.current {
		if c.Content != want[i] {
			t.Errorf("cell %d: got %q, want %q", i, c.Content, want[i])
		}
	}
}

func TestFlip(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, Point{X: 4, Y: 2})
	s.PutText(Point{X: 0, Y: 1}, "hi", Style{Bold: true})
	s.SetCursorPos(Point{X: 2, Y: 1})
	s.SetCursorVisible(true)
	s.SetTitle("chat")
	if err := s.Flip(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{termesc.SetTitle("chat"), "\r\n", "hi", termesc.ShowCursor, termesc.SetCursorPos(2, 3)} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q doesn't contain %q", got, want)
		}
	}

	out.Reset()
	if err := s.Flip(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); strings.Contains(got, termesc.SetTitle("chat")) || strings.Contains(got, termesc.ShowCursor) {
		t.Errorf("second Flip repeated title or cursor visibility: %q", got)
	}
}

func TestResize(t *testing.T) {
	s := NewScreen(&bytes.Buffer{}, Point{X: 10, Y: 3})
	s.PutText(Point{}, "lorem", Style{})
	s.Resize(Point{X: 4, Y: 2})
	if sz := s.Size(); sz != (Point{X: 4, Y: 2}) {
		t.Errorf("after Resize, size is %v", sz)
	}
	for i, c := range s.current {
		if c != (Cell{}) {
			t.Errorf("after Resize, cell %d = %+v, want blank", i, c)
		}
	}
}

func TestRow(t *testing.T) {
	s := NewScreen(&bytes.Buffer{}, Point{X: 8, Y: 2})
	s.PutText(Point{X: 1, Y: 1}, "日x", Style{})
	if r := s.Row(1); r != " 日x" {
		t.Errorf("Row(1) = %q, want %q", r, " 日x")
	}
	if r := s.Row(0); r != "" {
		t.Errorf("Row(0) = %q, want empty", r)
	}
	if r := s.Row(5); r != "" {
		t.Errorf("Row(5) = %q, want empty", r)
	}
}
