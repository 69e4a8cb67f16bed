package cascade

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/petrellis/go-cascade/internal/logging"
)

// paint runs one diff pass over the tree and writes the resulting escape
// sequence in a single terminal write. The cursor convention is that it
// rests at the end of the last painted row between paints.
//
// Render panics from application nodes are deliberately not recovered: a
// node that cannot render leaves the screen in an unknown state, and
// swallowing the panic would hide the bug.
func (a *App) paint() error {
	res := a.Container.Render(a.width)
	if !res.Changed {
		return nil
	}

	appendOnly := a.firstPaint || a.totalLines == 0
	a.firstPaint = false
	erase := a.totalLines - res.KeepLines

	var seq strings.Builder
	switch {
	case appendOnly:
		// Nothing on screen below the cursor yet.
	case erase > 0:
		seq.WriteString("\r")
		seq.WriteString(cursorUp(erase - 1))
		seq.WriteString(escEraseDown)
	default:
		// Every painted row is kept; the new lines open below them.
		seq.WriteString("\r\n")
	}
	appendLines(&seq, res.Lines)

	logging.Debug("paint",
		zap.Int("keep", res.KeepLines),
		zap.Int("erase", erase),
		zap.Int("lines", len(res.Lines)))

	a.totalLines = res.KeepLines + len(res.Lines)
	if _, err := a.terminal.WriteDirect([]byte(seq.String())); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// eraseRegion clears every row the engine believes it has painted and
// leaves the cursor at the top-left corner of the freed region. A failing
// write is ignored here; the same failure surfaces on the next paint.
func (a *App) eraseRegion() {
	if a.totalLines == 0 {
		return
	}
	var seq strings.Builder
	seq.WriteString("\r")
	seq.WriteString(cursorUp(a.totalLines - 1))
	seq.WriteString(escEraseDown)
	a.terminal.WriteDirect([]byte(seq.String())) //nolint:errcheck
	a.totalLines = 0
}

// repaintAll abandons incremental bookkeeping: the painted region is
// erased and the next pass retransmits the whole tree from row zero.
func (a *App) repaintAll() {
	a.eraseRegion()
	a.Container.Invalidate()
	a.MarkDirty()
}

// handleResize reacts to a terminal size change. Line counts cached before
// the resize are meaningless at the new width, so the only safe move is a
// full structural repaint.
func (a *App) handleResize() {
	w, h := a.terminal.Size()
	logging.Debug("terminal resized", zap.Int("width", w), zap.Int("height", h))
	a.width = w
	a.repaintAll()
}
