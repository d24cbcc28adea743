package httpsvc

import "strings"

// Media types and header names shared by the encoder and decoder.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeText = "text/plain"

	HeaderContentType   = "content-type"
	HeaderContentLength = "content-length"
)

// Encoder is the interface that wraps the Encode method.
type Encoder interface {
	Encode(v any) ([]byte, error)
	ContentType() string
}

// Decoder is the interface that wraps the Decode method.
type Decoder interface {
	Decode(data []byte, v any) error
}

// logicalContentType strips any ;-delimited parameter suffix from a
// content-type header value. The remainder is not trimmed or case-folded;
// comparisons are made against the lower-case constants above.
func logicalContentType(v string) string {
	if i := strings.IndexByte(v, ';'); i >= 0 {
		return v[:i]
	}
	return v
}
