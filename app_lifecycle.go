package cascade

import (
	"fmt"

	"github.com/petrellis/go-cascade/internal/logging"
)

// Start puts the terminal into raw mode and runs the first paint. Run
// calls Start automatically; call it directly only when driving the loop
// by hand (tests, embedding). Calling Start twice is a no-op.
func (a *App) Start() error {
	if a.started {
		return nil
	}
	if err := a.terminal.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	a.rawMode = true
	a.started = true

	w, _ := a.terminal.Size()
	a.width = w

	a.checkAndClearDirty()
	if err := a.paint(); err != nil {
		a.terminal.ExitRawMode() //nolint:errcheck
		a.rawMode = false
		return err
	}
	logging.Debug("app started")
	return nil
}

// Stop signals the UI loop and the background goroutines to exit.
// Idempotent and safe from any goroutine. Stop does not restore the
// terminal; Close does.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}

// Close restores the terminal to its pre-Start state and releases the
// input reader. Run calls Close on the way out; call it yourself only when
// driving the loop by hand.
func (a *App) Close() error {
	var firstErr error
	if a.rawMode {
		// Drop to a fresh row first so the shell prompt does not land in
		// the middle of the painted region.
		if a.totalLines > 0 {
			a.terminal.WriteDirect([]byte("\r\n")) //nolint:errcheck
		}
		if err := a.terminal.ExitRawMode(); err != nil {
			firstErr = fmt.Errorf("restoring terminal: %w", err)
		}
		a.rawMode = false
	}
	if err := a.reader.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing reader: %w", err)
	}
	logging.Sync()
	return firstErr
}
