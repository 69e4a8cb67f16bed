package cascade

import "time"

// ChunkReader reads raw input bytes from the terminal. Chunks are opaque:
// the reader does no decoding, and a multi-byte escape sequence may arrive
// split across chunks.
type ChunkReader interface {
	// ReadChunk waits up to timeout for input. Returns (nil, nil) on
	// timeout and a non-empty chunk when input was available. A negative
	// timeout blocks indefinitely.
	ReadChunk(timeout time.Duration) ([]byte, error)

	// Close releases resources. Must be called when done.
	Close() error
}

// pollInterval is how long the reader goroutine waits for input before
// rechecking whether the app has stopped.
const pollInterval = 50 * time.Millisecond
