package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var composeTests = []struct {
	name       string
	capacity   int
	committed  string
	cursor     int
	text       string
	textCursor int
	want       string
	wantCursor int
}{
	{name: "AtEnd", capacity: 64, committed: "ab", cursor: 2, text: "xy", textCursor: 2, want: "ab[xy]", wantCursor: 5},
	{name: "InMiddle", capacity: 64, committed: "abc", cursor: 1, text: "xy", textCursor: 1, want: "a[xy]bc", wantCursor: 3},
	{name: "Empty", capacity: 64, committed: "", cursor: 0, text: "", textCursor: 0, want: "[]", wantCursor: 1},
	{name: "MultiByte", capacity: 64, committed: "añ", cursor: 1, text: "日本", textCursor: 3, want: "a[日本]ñ", wantCursor: 5},
	{name: "TextCursorClamped", capacity: 64, committed: "a", cursor: 1, text: "xy", textCursor: 9, want: "a[xy]", wantCursor: 4},
	{name: "CursorClamped", capacity: 64, committed: "a", cursor: 7, text: "x", textCursor: 0, want: "a[x]", wantCursor: 2},
	{name: "NoRoomForClose", capacity: 8, committed: "abcde", cursor: 5, text: "xyz", textCursor: 0, want: "abcde[x", wantCursor: 6},
	{name: "NoRoomForCodepoint", capacity: 8, committed: "abcd", cursor: 2, text: "日本", textCursor: 0, want: "ab[]cd", wantCursor: 3},
	{name: "Full", capacity: 8, committed: "abcdefg", cursor: 3, text: "xyz", textCursor: 1, want: "abcdefg", wantCursor: 5},
	{name: "LongComposition", capacity: 128, committed: "a", cursor: 0, text: strings.Repeat("x", 40), textCursor: 0,
		want: "[" + strings.Repeat("x", InputTextSize) + "a", wantCursor: 1},
}

func TestCompose(t *testing.T) {
	for _, tt := range composeTests {
		t.Run(tt.name, func(t *testing.T) {
			committed := []byte(tt.committed)
			display, cursor := Compose(make([]byte, 0, tt.capacity), committed, tt.cursor, tt.text, tt.textCursor)
			assert.Equal(t, tt.want, string(display))
			assert.Equal(t, tt.wantCursor, cursor)
			assert.Less(t, len(display), tt.capacity)
			assert.Equal(t, tt.committed, string(committed), "committed text was modified")
		})
	}
}

func TestEditingLeavesBufferAlone(t *testing.T) {
	b := New(16, 16)
	b.Set("héllo")
	b.SetCursorOffset(3)
	before := *b
	beforeText := b.String()

	b.Editing("日本語", 3)
	assert.True(t, b.IsEditing())
	assert.Equal(t, "hé[日本語]llo", b.Display())
	assert.Equal(t, 7, b.DisplayCursor())

	assert.Equal(t, beforeText, b.String())
	assert.Equal(t, before.Len(), b.Len())
	assert.Equal(t, before.NumChars(), b.NumChars())
	assert.Equal(t, before.Cursor(), b.Cursor())
}

func TestEditingFollowsBuffer(t *testing.T) {
	b := New(16, 16)
	b.Set("ab")
	b.Editing("x", 1)
	require.Equal(t, "ab[x]", b.Display())

	b.ProcessInput(KeyEvent(KeyLeft))
	assert.Equal(t, "a[x]b", b.Display())
	assert.Equal(t, 3, b.DisplayCursor())

	b.ProcessInput(TextEvent("c"))
	assert.Equal(t, "ac[x]b", b.Display())

	b.StopEditing()
	assert.False(t, b.IsEditing())
	assert.Equal(t, "acb", b.Display())
	assert.Equal(t, b.Cursor(), b.DisplayCursor())
}

func TestClearStopsEditing(t *testing.T) {
	b := New(16, 16)
	b.Set("ab")
	b.Editing("x", 0)
	b.Clear()
	assert.False(t, b.IsEditing())
	assert.Equal(t, "", b.Display())
}

func TestEditingFitsLargestBuffer(t *testing.T) {
	b := New(8, 8)
	b.Set("abcdefg")
	b.Editing(strings.Repeat("y", InputTextSize-1), 0)
	want := "abcdefg[" + strings.Repeat("y", InputTextSize-1) + "]"
	assert.Equal(t, want, b.Display())
	assert.Equal(t, "abcdefg", b.String())
}
