package cascade

import (
	"strings"
	"testing"
	"time"
)

func TestStartEntersRawModeAndPaints(t *testing.T) {
	app, term := newTestApp(t, 80)
	app.Add(NewText("hello"))

	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !term.InRawMode() {
		t.Error("Start did not enter raw mode")
	}
	if got, want := term.Output(), "hello"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := app.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if term.InRawMode() {
		t.Error("Close did not restore the terminal")
	}
}

func TestRunStopsOnInterrupt(t *testing.T) {
	term := NewMockTerminal(80, 24)
	reader := NewMockChunkReader()
	app, err := NewApp(WithTerminal(term), WithReader(reader))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	status := NewText("running")
	app.Add(status)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	app.QueueUpdate(func() {
		status.SetText("updated")
		app.MarkDirty()
	})
	reader.Push([]byte{interruptByte})

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after interrupt")
	}

	if term.InRawMode() {
		t.Error("terminal left in raw mode after Run")
	}
	if out := term.Output(); !strings.Contains(out, "running") {
		t.Errorf("first paint missing from output: %q", out)
	}
}

func TestQueueUpdateAfterStopDoesNotBlock(t *testing.T) {
	app, _ := newTestApp(t, 80)
	app.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < defaultQueueSize*2; i++ {
			app.QueueUpdate(func() {})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("QueueUpdate blocked after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t, 80)
	app.Stop()
	app.Stop()
}
