package main

import (
	"github.com/dpinela/lineinput/internal/buffer"
	"github.com/dpinela/lineinput/internal/termesc"
)

// A command is what the application does in response to a console token.
type command int

const (
	cmdNone command = iota
	cmdEdit          // Pass the accompanying event to the input field
	cmdSubmit
	cmdCancel
	cmdQuit
	cmdDeleteUntilCursor
	cmdDeleteFromCursor
	cmdToggleComposition
)

// translateToken maps a token read from the console to a command, and for cmdEdit,
// the input event to apply.
func translateToken(tok string) (command, buffer.Event) {
	switch tok {
	case "\x7f", "\b":
		return cmdEdit, buffer.KeyEvent(buffer.KeyBackspace)
	case termesc.DeleteKey, "\x04":
		return cmdEdit, buffer.KeyEvent(buffer.KeyDelete)
	case termesc.LeftKey, "\x02":
		return cmdEdit, buffer.KeyEvent(buffer.KeyLeft)
	case termesc.RightKey, "\x06":
		return cmdEdit, buffer.KeyEvent(buffer.KeyRight)
	case termesc.HomeKey, termesc.AltHomeKey, termesc.VTHomeKey, "\x01":
		return cmdEdit, buffer.KeyEvent(buffer.KeyHome)
	case termesc.EndKey, termesc.AltEndKey, termesc.VTEndKey, "\x05":
		return cmdEdit, buffer.KeyEvent(buffer.KeyEnd)
	case "\r", "\n":
		return cmdSubmit, buffer.KeyEvent(buffer.KeyReturn)
	case termesc.EscapeKey:
		return cmdCancel, buffer.KeyEvent(buffer.KeyEscape)
	case "\x11", "\x03":
		return cmdQuit, buffer.Event{}
	case "\x15":
		return cmdDeleteUntilCursor, buffer.Event{}
	case "\x0b":
		return cmdDeleteFromCursor, buffer.Event{}
	case "\x0f":
		return cmdToggleComposition, buffer.Event{}
	}
	// Escape sequences and other control characters start below the space character.
	if len(tok) > 0 && tok[0] >= ' ' && tok != "\x7f" {
		return cmdEdit, buffer.TextEvent(tok)
	}
	return cmdNone, buffer.Event{}
}
