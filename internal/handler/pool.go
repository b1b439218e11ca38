package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 512

	// summaries of large lines can grow a buffer well past the usual
	// response size; those are not kept
	maxPooledBufferSize = 64 << 10
)

// bufferPool holds the buffers respondJSON encodes line and summary payloads into
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool unless it grew too large
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
