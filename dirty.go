package cascade

// MarkDirty schedules a repaint. Safe to call from any goroutine. Multiple
// mutations between loop turns coalesce into a single paint that reads the
// final node state.
func (a *App) MarkDirty() {
	a.dirty.Store(true)
	select {
	case a.renderCh <- struct{}{}:
	default:
	}
}

func (a *App) checkAndClearDirty() bool {
	return a.dirty.Swap(false)
}
