package cascade

import "fmt"

// WithTerminal substitutes the output terminal. Pair it with WithReader
// unless the terminal is an *ANSITerminal.
func WithTerminal(t Terminal) AppOption {
	return func(a *App) error {
		if t == nil {
			return fmt.Errorf("terminal cannot be nil")
		}
		a.terminal = t
		return nil
	}
}

// WithReader substitutes the raw input source.
func WithReader(r ChunkReader) AppOption {
	return func(a *App) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		a.reader = r
		return nil
	}
}

// WithOnInterrupt replaces the default interrupt handler. The default
// handler stops the app, which makes Run restore the terminal and return.
func WithOnInterrupt(fn func()) AppOption {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("interrupt handler cannot be nil")
		}
		a.onInterrupt = fn
		return nil
	}
}
