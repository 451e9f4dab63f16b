package output

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	escClear      = "\033[2J\033[H"
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
)

// Screen redraws a full-screen view for watch mode
type Screen struct {
	w io.Writer
}

// NewScreen creates a screen writing to w
func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

// Begin hides the cursor; pair with End
func (s *Screen) Begin() {
	_, _ = fmt.Fprint(s.w, escHideCursor)
}

// Redraw clears the screen and prints a status line
func (s *Screen) Redraw(status string) {
	_, _ = fmt.Fprint(s.w, escClear)
	if status != "" {
		_, _ = fmt.Fprintf(s.w, "%s\n\n", status)
	}
}

// End clears the screen and restores the cursor
func (s *Screen) End() {
	_, _ = fmt.Fprint(s.w, escClear)
	_, _ = fmt.Fprint(s.w, escShowCursor)
}

// SetupSignalHandler returns a channel that receives interrupt signals
func SetupSignalHandler() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan
}
