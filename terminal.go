package cascade

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal abstracts the output stream and mode switching the engine needs.
// The terminal and the raw-input-mode flag are process-wide resources: only
// one active App may own a Terminal at a time.
type Terminal interface {
	// Size returns the terminal dimensions in columns and rows.
	Size() (width, height int)

	// WriteDirect writes raw bytes (content and escape sequences) to the
	// output stream.
	WriteDirect(b []byte) (int, error)

	// EnterRawMode puts the terminal into raw mode, saving the prior state.
	EnterRawMode() error

	// ExitRawMode restores the state saved by EnterRawMode.
	ExitRawMode() error
}

// ANSITerminal implements Terminal over a real tty using ANSI escape
// sequences. The output writer is typically os.Stdout and the input file
// os.Stdin.
type ANSITerminal struct {
	out      io.Writer
	inFd     int
	outFd    int
	oldState *term.State
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal bound to the given streams.
// Returns an error if the input is not a tty.
func NewANSITerminal(out *os.File, in *os.File) (*ANSITerminal, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, fmt.Errorf("input is not a terminal")
	}
	return &ANSITerminal{
		out:   out,
		inFd:  inFd,
		outFd: int(out.Fd()),
	}, nil
}

// Size returns the terminal dimensions, defaulting to 80x24 when the size
// cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := getTerminalSize(t.outFd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

// WriteDirect writes raw bytes to the output stream.
func (t *ANSITerminal) WriteDirect(b []byte) (int, error) {
	return t.out.Write(b)
}

// EnterRawMode puts the terminal into raw mode. Raw mode disables ISIG, so
// Ctrl+C arrives on the input stream as byte 0x03 instead of a signal.
func (t *ANSITerminal) EnterRawMode() error {
	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.oldState = old
	return nil
}

// ExitRawMode restores the terminal mode saved by EnterRawMode.
// Safe to call when raw mode was never entered.
func (t *ANSITerminal) ExitRawMode() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.oldState)
	t.oldState = nil
	return err
}

// InputFd returns the file descriptor input chunks are read from.
func (t *ANSITerminal) InputFd() int {
	return t.inFd
}
