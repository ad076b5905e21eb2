package buffer

// manipulate applies ev to the buffer's text, cursor and codepoint count, which are kept
// consistent with each other. It reports whether the text changed.
//
// Text that doesn't fit within the buffer's limits is rejected in full.
func (b *Buffer) manipulate(ev Event) bool {
	changed := false
	if b.cursor > len(b.content) {
		b.cursor = len(b.content)
	}

	if ev.Flags&FlagText != 0 {
		text := cstring(ev.Text)
		charDelta := 0
		byteDelta := 0
		for byteDelta < len(text) {
			next := ForwardBoundaryInString(text, byteDelta)
			if next == byteDelta {
				break
			}
			charDelta++
			byteDelta = next
		}
		if charDelta > 0 &&
			len(b.content)+byteDelta < b.maxBytes &&
			b.cursor+byteDelta < b.maxBytes &&
			b.numChars+charDelta < b.maxChars {
			n := len(b.content)
			b.content = b.content[:n+byteDelta]
			copy(b.content[b.cursor+byteDelta:], b.content[b.cursor:n])
			copy(b.content[b.cursor:], text[:byteDelta])
			b.cursor += byteDelta
			b.numChars += charDelta
			changed = true
		}
	}

	if ev.Flags&FlagPress != 0 {
		switch {
		case ev.Key == KeyBackspace && b.cursor > 0:
			p := BackwardBoundary(b.content, b.cursor)
			b.remove(p, b.cursor)
			b.cursor = p
			changed = true
		case ev.Key == KeyDelete && b.cursor < len(b.content):
			b.remove(b.cursor, ForwardBoundary(b.content, b.cursor))
			changed = true
		case ev.Key == KeyLeft && b.cursor > 0:
			b.cursor = BackwardBoundary(b.content, b.cursor)
		case ev.Key == KeyRight && b.cursor < len(b.content):
			b.cursor = ForwardBoundary(b.content, b.cursor)
		case ev.Key == KeyHome:
			b.cursor = 0
		case ev.Key == KeyEnd:
			b.cursor = len(b.content)
		}
	}
	return changed
}

// remove deletes the bytes in content[i:j], which must hold at most one codepoint.
func (b *Buffer) remove(i, j int) {
	if j <= i {
		return
	}
	n := copy(b.content[i:], b.content[j:])
	b.content = b.content[:i+n]
	if b.numChars > 0 {
		b.numChars--
	}
}
