package cascade

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/petrellis/go-cascade/internal/logging"
)

// interruptByte is ETX, what Ctrl+C produces once raw mode disables ISIG.
// It is intercepted at the root regardless of focus and never forwarded.
const interruptByte = 0x03

// dispatch routes one raw input chunk on the UI goroutine. Chunks are
// forwarded verbatim to the focused node; the engine never parses escape
// sequences or splits key events, so a chunk may carry several keystrokes
// or a partial multi-byte rune.
func (a *App) dispatch(chunk []byte) {
	if bytes.IndexByte(chunk, interruptByte) >= 0 {
		logging.Debug("interrupt byte received")
		if a.onInterrupt != nil {
			a.onInterrupt()
		}
		return
	}
	if a.focused != nil {
		logging.Debug("dispatching input", zap.Int("bytes", len(chunk)))
		a.focused.HandleInput(chunk)
	}
	a.MarkDirty()
}

// SetFocus routes subsequent input to n. At most one node holds focus.
// Focusing a node that does not accept input or is not reachable in the
// current tree is a silent no-op.
func (a *App) SetFocus(n Node) {
	h, ok := n.(InputHandler)
	if !ok {
		return
	}
	if !a.Container.contains(n) {
		return
	}
	a.focused = h
	a.MarkDirty()
}

// Focused returns the node currently holding focus, or nil.
func (a *App) Focused() Node {
	if a.focused == nil {
		return nil
	}
	return a.focused
}
