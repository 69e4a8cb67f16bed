//go:build unix

package cascade

import (
	"os"
	"os/signal"
	"syscall"
)

// watchResize forwards SIGWINCH to the UI goroutine. Signals that arrive
// while one is already buffered coalesce, which is fine: handleResize
// always reads the current size.
func (a *App) watchResize() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-a.stopCh:
			return nil
		case <-sigCh:
			a.QueueUpdate(a.handleResize)
		}
	}
}
