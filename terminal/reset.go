package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Release cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(seqCursorShow)
	w.Write(seqDrawOff)
	w.Write(seqSGR0)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
