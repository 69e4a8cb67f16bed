package cascade

import "fmt"

// MockTerminal is a Terminal double for tests. It records the exact byte
// stream the engine writes, so assertions can cover escape sequences and
// not just visible text.
type MockTerminal struct {
	width     int
	height    int
	writes    []string
	rawMode   bool
	failWrite error
}

// NewMockTerminal creates a mock reporting the given size.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{width: width, height: height}
}

func (m *MockTerminal) Size() (int, int) {
	return m.width, m.height
}

func (m *MockTerminal) WriteDirect(p []byte) (int, error) {
	if m.failWrite != nil {
		return 0, m.failWrite
	}
	m.writes = append(m.writes, string(p))
	return len(p), nil
}

func (m *MockTerminal) EnterRawMode() error {
	if m.rawMode {
		return fmt.Errorf("already in raw mode")
	}
	m.rawMode = true
	return nil
}

func (m *MockTerminal) ExitRawMode() error {
	m.rawMode = false
	return nil
}

// InRawMode reports whether EnterRawMode has been called without a
// matching ExitRawMode.
func (m *MockTerminal) InRawMode() bool {
	return m.rawMode
}

// SetSize changes the reported size. It does not deliver a resize signal;
// tests drive handleResize through the app.
func (m *MockTerminal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FailWrites makes every subsequent WriteDirect return err.
func (m *MockTerminal) FailWrites(err error) {
	m.failWrite = err
}

// Writes returns each WriteDirect payload in order.
func (m *MockTerminal) Writes() []string {
	return m.writes
}

// Output returns everything written so far as one string.
func (m *MockTerminal) Output() string {
	var out string
	for _, w := range m.writes {
		out += w
	}
	return out
}

// Reset discards recorded writes.
func (m *MockTerminal) Reset() {
	m.writes = nil
}
