package httpsvc

import "github.com/valyala/bytebufferpool"

// Pooled buffers back the transport's body accumulation so each request
// does not allocate a fresh growth buffer.
var bufferPool bytebufferpool.Pool

func getBuffer() *bytebufferpool.ByteBuffer {
	return bufferPool.Get()
}

func putBuffer(b *bytebufferpool.ByteBuffer) {
	bufferPool.Put(b)
}
