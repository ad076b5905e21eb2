package buffer

import "math"

// Markers placed around composition text in the display string.
const (
	CompositionOpen  = '['
	CompositionClose = ']'
)

// Compose computes what an input field shows while an input method is composing text:
// the committed text with the composition text spliced in at the cursor, between
// CompositionOpen and CompositionClose. textCursor is the caret position within the
// composition text, in bytes.
//
// The result is built in dst[:0] and never grows beyond cap(dst) - 1 bytes. If the
// composition doesn't fit, it is truncated (at a codepoint boundary); the committed text
// is kept intact. Compose returns the display string and the byte offset of the caret in it.
func Compose(dst, committed []byte, cursor int, text string, textCursor int) ([]byte, int) {
	capacity := cap(dst)
	base := committed
	if len(base) > capacity-1 {
		base = base[:max(capacity-1, 0)]
	}
	dst = append(dst[:0], base...)
	cursor = clamp(cursor, 0, len(dst))
	text = cstring(text)
	textCursor = clamp(textCursor, 0, len(text))

	// A single composition never takes more than InputTextSize+1 bytes with its markers.
	room := min(InputTextSize+1, capacity-len(dst)-1)
	if room > 0 {
		textLen, _ := fitPrefix(text, room-1, math.MaxInt)
		fragLen := 1 + textLen
		closed := fragLen < room
		if closed {
			fragLen++
		}
		n := len(dst)
		dst = dst[:n+fragLen]
		copy(dst[cursor+fragLen:], dst[cursor:n])
		dst[cursor] = CompositionOpen
		copy(dst[cursor+1:], text[:textLen])
		if closed {
			dst[cursor+fragLen-1] = CompositionClose
		}
	}
	return dst, clamp(cursor+textCursor+1, 0, len(dst))
}

func clamp(x, lo, hi int) int {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// Editing shows text as an input method's composition at the cursor, with the caret at byte
// offset textCursor within it. The committed text is not modified; the result is available
// from Display and DisplayCursor, and is kept up to date as the buffer changes until
// StopEditing is called.
func (b *Buffer) Editing(text string, textCursor int) {
	b.editing = true
	b.editText = text
	b.editCursor = textCursor
	b.refreshDisplay()
}

// StopEditing removes the composition overlay.
func (b *Buffer) StopEditing() {
	b.editing = false
	b.editText = ""
	b.editCursor = 0
	b.display = b.display[:0]
	b.displayCursor = 0
}

// IsEditing reports whether a composition overlay is active.
func (b *Buffer) IsEditing() bool { return b.editing }

func (b *Buffer) refreshDisplay() {
	if b.editing {
		b.display, b.displayCursor = Compose(b.display, b.content, b.cursor, b.editText, b.editCursor)
	}
}

// Display returns the text to show for the input field: the committed text, with the
// composition overlay if one is active.
func (b *Buffer) Display() string {
	if b.editing {
		return string(b.display)
	}
	return string(b.content)
}

// DisplayCursor returns the byte offset of the caret within Display.
func (b *Buffer) DisplayCursor() int {
	if b.editing {
		return b.displayCursor
	}
	return b.cursor
}
