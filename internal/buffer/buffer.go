// Package buffer implements the editing buffer behind a single-line input field.
//
// A Buffer holds UTF-8 text in fixed-capacity storage along with a cursor, measured in bytes,
// and the number of codepoints in the text. All three are updated together by the Buffer's
// methods; the cursor never points inside a multi-byte sequence.
//
// Input that doesn't fit is not an error: insertions that would overflow the buffer are
// rejected whole, and text given to Set is truncated.
package buffer

import (
	"fmt"
	"math"
)

// Default capacities for an input field.
const (
	DefaultMaxBytes = 512
	DefaultMaxChars = DefaultMaxBytes / 4
)

// Buffer is the text of a single-line input field. The zero Buffer has no capacity;
// use New to create one.
type Buffer struct {
	content  []byte // len(content) < maxBytes == cap(content)
	numChars int
	cursor   int // Byte offset into content

	maxBytes, maxChars int

	// Composition overlay; see Editing.
	editing       bool
	editText      string
	editCursor    int
	display       []byte
	displayCursor int
}

// New returns an empty Buffer that holds fewer than maxBytes bytes. Typed text is also
// limited to fewer than maxChars codepoints; Set and Append are limited by bytes only.
// The storage for the text is allocated once, here.
func New(maxBytes, maxChars int) *Buffer {
	if maxBytes < 1 || maxChars < 1 {
		panic(fmt.Sprintf("buffer.New: invalid capacity (%d bytes, %d chars)", maxBytes, maxChars))
	}
	return &Buffer{
		content:  make([]byte, 0, maxBytes),
		maxBytes: maxBytes,
		maxChars: maxChars,
		display:  make([]byte, 0, maxBytes+InputTextSize+2),
	}
}

// Clear empties the buffer and ends any composition in progress.
func (b *Buffer) Clear() {
	b.content = b.content[:0]
	b.numChars = 0
	b.cursor = 0
	b.StopEditing()
}

// Set replaces the buffer's content with s and moves the cursor to the end.
// The text is cut at its first NUL byte, if any, and then truncated to fewer than MaxBytes
// bytes without splitting a codepoint.
func (b *Buffer) Set(s string) {
	s = cstring(s)
	n, chars := fitPrefix(s, b.maxBytes-1, math.MaxInt)
	b.content = append(b.content[:0], s[:n]...)
	b.numChars = chars
	b.cursor = len(b.content)
	b.refreshDisplay()
}

// fitPrefix returns the length of the longest prefix of s that holds at most maxBytes bytes
// and at most maxChars codepoints, without splitting a codepoint, along with the number of
// codepoints in it.
func fitPrefix(s string, maxBytes, maxChars int) (n, chars int) {
	for n < len(s) && chars < maxChars {
		next := ForwardBoundaryInString(s, n)
		if next > maxBytes {
			break
		}
		n = next
		chars++
	}
	return n, chars
}

// Append adds s to the end of the buffer and moves the cursor to the end.
// If the result wouldn't fit, the buffer is left unchanged.
func (b *Buffer) Append(s string) {
	s = cstring(s)
	if len(b.content)+len(s) >= b.maxBytes {
		return
	}
	b.content = append(b.content, s...)
	// Count from scratch: s may complete a sequence left unfinished at the end of the buffer.
	b.numChars = countChars(b.content)
	b.cursor = len(b.content)
	b.refreshDisplay()
}

// DeleteUntilCursor deletes everything before the cursor, leaving it at the start of the buffer.
func (b *Buffer) DeleteUntilCursor() {
	b.Set(string(b.content[b.cursor:]))
	b.SetCursorOffset(0)
}

// DeleteFromCursor deletes everything from the cursor onwards.
func (b *Buffer) DeleteFromCursor() {
	b.Set(string(b.content[:b.cursor]))
}

// ProcessInput applies an input event to the buffer. It reports whether the text changed;
// cursor movement alone doesn't count as a change.
func (b *Buffer) ProcessInput(ev Event) bool {
	changed := b.manipulate(ev)
	b.refreshDisplay()
	return changed
}

// SetCursorOffset moves the cursor to byte offset off, clamped to the bounds of the text.
// If off is in the middle of a codepoint, the cursor is placed at its start.
func (b *Buffer) SetCursorOffset(off int) {
	switch {
	case off < 0:
		off = 0
	case off > len(b.content):
		off = len(b.content)
	}
	p := 0
	for p < off {
		next := ForwardBoundary(b.content, p)
		if next > off {
			break
		}
		p = next
	}
	b.cursor = p
	b.refreshDisplay()
}

// String returns the buffer's committed text.
func (b *Buffer) String() string { return string(b.content) }

// Bytes returns the buffer's committed text. The slice is only valid until the next
// modification of the buffer and must not be modified.
func (b *Buffer) Bytes() []byte { return b.content }

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int { return len(b.content) }

// NumChars returns the number of codepoints in the text.
func (b *Buffer) NumChars() int { return b.numChars }

// Cursor returns the cursor position as a byte offset into the text.
func (b *Buffer) Cursor() int { return b.cursor }

// MaxBytes returns the buffer's byte capacity. The text is always shorter than this.
func (b *Buffer) MaxBytes() int { return b.maxBytes }

// MaxChars returns the buffer's codepoint capacity for typed text.
func (b *Buffer) MaxChars() int { return b.maxChars }
