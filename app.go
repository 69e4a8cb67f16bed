package cascade

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

const defaultQueueSize = 256

// App is the root renderer. It owns the terminal output stream, runs the
// same cascade bookkeeping as a Container across its top-level slots, and
// translates diff results into cursor-movement and erase sequences.
//
// All node mutation, rendering, and terminal output happen on the UI
// goroutine (the one running Run). Other goroutines interact with the app
// only through QueueUpdate, Stop, and MarkDirty.
type App struct {
	Container // top-level slots and cascade bookkeeping

	terminal Terminal
	reader   ChunkReader

	width      int  // terminal columns as of the last size query
	totalLines int  // rows currently believed painted on the terminal
	firstPaint bool // nothing emitted yet; first output is append-only

	focused InputHandler

	dirty    atomic.Bool
	queue    chan func()
	renderCh chan struct{} // capacity 1: "a repaint is pending"
	stopCh   chan struct{}
	stopOnce sync.Once
	started  bool
	rawMode  bool

	onInterrupt func()
}

// AppOption configures an App during construction.
type AppOption func(*App) error

// NewApp creates an app bound to the process terminal (stdout/stdin) unless
// WithTerminal/WithReader override it. The terminal is not touched until
// Start.
func NewApp(opts ...AppOption) (*App, error) {
	a := &App{
		firstPaint: true,
		queue:      make(chan func(), defaultQueueSize),
		renderCh:   make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
	a.onInterrupt = a.Stop

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.terminal == nil {
		term, err := NewANSITerminal(os.Stdout, os.Stdin)
		if err != nil {
			return nil, err
		}
		a.terminal = term
	}
	if a.reader == nil {
		ansi, ok := a.terminal.(*ANSITerminal)
		if !ok {
			return nil, fmt.Errorf("a ChunkReader is required when using a custom terminal")
		}
		a.reader = NewChunkReader(ansi.InputFd())
	}

	w, _ := a.terminal.Size()
	a.width = w
	return a, nil
}

// Terminal returns the underlying terminal.
// Use with caution for advanced use cases.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// Width returns the terminal column count used for the current paint cycle.
func (a *App) Width() int {
	return a.width
}

// Add registers a leaf node at the root and schedules a repaint.
func (a *App) Add(n Node) {
	a.Container.Add(n)
	a.MarkDirty()
}

// AddContainer registers a nested container at the root and schedules a
// repaint.
func (a *App) AddContainer(c *Container) {
	a.Container.AddContainer(c)
	a.MarkDirty()
}

// Remove retires n from the tree. A node held directly in a top-level slot
// is tombstoned and repainted incrementally. A node found inside a nested
// container is tombstoned there and forces a full structural repaint: the
// nested container's bookkeeping for siblings below the removal point can
// no longer be reconciled row by row with what is on screen. Removing a
// node that is nowhere in the tree is a silent no-op.
func (a *App) Remove(n Node) {
	if a.focused == n {
		a.focused = nil
	}
	if a.Container.Remove(n) {
		a.MarkDirty()
		return
	}
	if a.Container.removeNested(n) {
		a.repaintAll()
	}
}

// RemoveContainer retires a container registered at the root.
// Removing an unregistered container is a silent no-op.
func (a *App) RemoveContainer(c *Container) {
	if a.Container.RemoveContainer(c) {
		a.MarkDirty()
	}
}

// QueueUpdate runs fn on the UI goroutine. This is the only safe way to
// mutate node state from another goroutine. Updates queued after Stop are
// dropped.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.queue <- fn:
	case <-a.stopCh:
	}
}
