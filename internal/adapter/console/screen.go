package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

const clearSequence = "\033[H\033[2J"

// Screen clears the terminal between views. It is a no-op unless enabled
// and attached to a terminal.
type Screen struct {
	out     io.Writer
	enabled bool
}

// NewScreen returns a Screen drawing on f.
func NewScreen(f *os.File, enabled bool) *Screen {
	return &Screen{
		out:     f,
		enabled: enabled && term.IsTerminal(int(f.Fd())),
	}
}

func (s *Screen) Clear() {
	if s.enabled {
		io.WriteString(s.out, clearSequence)
	}
}

// NopScreen never clears.
type NopScreen struct{}

func (NopScreen) Clear() {}
