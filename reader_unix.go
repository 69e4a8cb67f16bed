//go:build unix

package cascade

import (
	"time"

	"golang.org/x/sys/unix"
)

// fdChunkReader reads input chunks from a file descriptor using poll(2),
// so a timeout can be honored without a dedicated blocking read goroutine.
type fdChunkReader struct {
	fd  int
	buf []byte
}

var _ ChunkReader = (*fdChunkReader)(nil)

// NewChunkReader creates a ChunkReader for the given input file descriptor
// (typically the terminal's stdin fd).
func NewChunkReader(fd int) ChunkReader {
	return &fdChunkReader{
		fd:  fd,
		buf: make([]byte, 256),
	}
}

// ReadChunk polls the fd for readability, then performs a single read.
// EINTR and EAGAIN surface as an empty chunk so the caller's loop retries.
func (r *fdChunkReader) ReadChunk(timeout time.Duration) ([]byte, error) {
	ms := int(timeout / time.Millisecond)
	if timeout < 0 {
		ms = -1
	}

	fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	rn, err := unix.Read(r.fd, r.buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, nil
		}
		return nil, err
	}
	if rn == 0 {
		return nil, nil
	}

	chunk := make([]byte, rn)
	copy(chunk, r.buf[:rn])
	return chunk, nil
}

// Close is a no-op: the fd (stdin) is not owned by the reader.
func (r *fdChunkReader) Close() error {
	return nil
}
