package terminal

// Console control sequences
var (
	seqHome        = []byte("\x1b[H")
	seqClear       = []byte("\x1b[H\x1b[2J")
	seqDefaultFg   = []byte("\x1b[0;37m")
	seqDrawOn      = []byte("\x1b[12m")
	seqDrawOff     = []byte("\x1b[10;0m")
	seqCursorShow  = []byte("\x1b[?25h")
	seqCursorHide  = []byte("\x1b[?25l")
	seqSGR0        = []byte("\x1b[0m")
	seqSetupScreen = concat(seqClear, seqDefaultFg, seqDrawOn, seqCursorHide)
	seqRestore     = concat(seqCursorShow, seqDrawOff, seqDrawOff)
)

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
