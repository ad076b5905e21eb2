package buffer

// InputTextSize is the size of the text payload carried by a single input event,
// including room for a terminator. Text events are expected to carry fewer bytes than this.
const InputTextSize = 32

// Flags describes what an Event carries. A single event may carry both text and a key press.
type Flags uint8

// Event flags.
const (
	FlagPress Flags = 1 << iota
	FlagRelease
	FlagText
)

// Key identifies a key on the keyboard. Only keys that affect line editing are listed.
type Key int

// Keys recognized by the buffer and its hosts.
const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyReturn
	KeyEscape
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyReturn:    "return",
	KeyEscape:    "escape",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// An Event is a single unit of input: typed text, a key press, or both.
type Event struct {
	Flags Flags
	Key   Key    // Valid if Flags has FlagPress or FlagRelease set
	Text  string // Valid if Flags has FlagText set; already-decoded UTF-8
}

// TextEvent returns an event that inserts s.
func TextEvent(s string) Event { return Event{Flags: FlagText, Text: s} }

// KeyEvent returns an event for a press of k.
func KeyEvent(k Key) Event { return Event{Flags: FlagPress, Key: k} }
