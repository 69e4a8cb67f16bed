package cascade

import (
	"golang.org/x/sync/errgroup"

	"github.com/petrellis/go-cascade/internal/logging"
)

// Run starts the app if necessary and blocks until Stop is called or a
// fatal error occurs. Input reading and resize watching run on background
// goroutines; everything else happens here, on what becomes the UI
// goroutine. The terminal is restored before Run returns.
func (a *App) Run() error {
	if err := a.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(a.readLoop)
	g.Go(a.watchResize)

	loopErr := a.loop()
	a.Stop()
	waitErr := g.Wait()
	closeErr := a.Close()

	if loopErr != nil {
		return loopErr
	}
	if waitErr != nil {
		return waitErr
	}
	return closeErr
}

// loop is the UI goroutine's event loop. Each turn drains every queued
// update before deciding whether to paint, so a burst of mutations costs
// one diff pass and at most one terminal write.
func (a *App) loop() error {
	for {
		select {
		case <-a.stopCh:
			return nil
		case fn := <-a.queue:
			fn()
		case <-a.renderCh:
		}

	drain:
		for {
			select {
			case <-a.stopCh:
				return nil
			case fn := <-a.queue:
				fn()
			default:
				break drain
			}
		}

		if a.checkAndClearDirty() {
			if err := a.paint(); err != nil {
				logging.Error("paint failed", err)
				return err
			}
		}
	}
}

// readLoop pulls raw chunks off the input source and hands them to the UI
// goroutine. The short poll timeout keeps the goroutine responsive to
// Stop without a self-pipe.
func (a *App) readLoop() error {
	for {
		select {
		case <-a.stopCh:
			return nil
		default:
		}
		chunk, err := a.reader.ReadChunk(pollInterval)
		if err != nil {
			logging.Error("input read failed", err)
			a.Stop()
			return err
		}
		if len(chunk) == 0 {
			continue
		}
		a.QueueUpdate(func() { a.dispatch(chunk) })
	}
}
