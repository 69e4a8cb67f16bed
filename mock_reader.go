package cascade

import (
	"sync"
	"time"
)

// MockChunkReader feeds scripted input chunks to the app. ReadChunk
// behaves like the real poll-based reader: it returns a pushed chunk,
// or an empty read once the timeout lapses.
type MockChunkReader struct {
	chunks    chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

// NewMockChunkReader creates an empty reader.
func NewMockChunkReader() *MockChunkReader {
	return &MockChunkReader{
		chunks: make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

// Push queues one chunk for delivery.
func (m *MockChunkReader) Push(chunk []byte) {
	select {
	case m.chunks <- chunk:
	case <-m.closed:
	}
}

// PushString queues the bytes of s as one chunk.
func (m *MockChunkReader) PushString(s string) {
	m.Push([]byte(s))
}

func (m *MockChunkReader) ReadChunk(timeout time.Duration) ([]byte, error) {
	select {
	case chunk := <-m.chunks:
		return chunk, nil
	case <-m.closed:
		return nil, nil
	case <-time.After(timeout):
		return nil, nil
	}
}

func (m *MockChunkReader) Close() error {
	m.closeOnce.Do(func() {
		close(m.closed)
	})
	return nil
}
