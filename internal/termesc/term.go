// Package termesc abstracts terminal ANSI escape codes.
package termesc

import "fmt"

const (
	esc = "\x1B"
	csi = esc + "["
	ss3 = esc + "O"
)

const (
	ClearScreen          = csi + "2J"     // Clears the entire visible area of the console
	ClearScreenForward   = csi + "J"      // Clears the console from the cursor onwards
	ClearLine            = csi + "2K"     // Clears the line the cursor is on
	EnterAlternateScreen = csi + "?1049h" // Switches to the alternate screen
	ExitAlternateScreen  = csi + "?1049l" // Switches from the alternate screen to the regular one
	ShowCursor           = csi + "?25h"
	HideCursor           = csi + "?25l"
)

// Tokens produced by ConsoleReader for special keys.
const (
	EscapeKey = esc

	UpKey    = csi + "A"
	DownKey  = csi + "B"
	LeftKey  = csi + "D"
	RightKey = csi + "C"

	HomeKey    = csi + "H"
	EndKey     = csi + "F"
	AltHomeKey = ss3 + "H" // Sent instead of HomeKey in application cursor mode
	AltEndKey  = ss3 + "F" // Sent instead of EndKey in application cursor mode
	VTHomeKey  = csi + "1~"
	VTEndKey   = csi + "4~"
	DeleteKey  = csi + "3~"
)

// SetCursorPos returns a code that sets the cursor's position to (y, x).
// Coordinates are 1-based.
func SetCursorPos(y, x int) string { return fmt.Sprintf(csi+"%d;%dH", y, x) }

// SetTitle returns a code that sets the terminal window's title.
func SetTitle(title string) string { return esc + "]2;" + title + "\a" }
