package httpsvc

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// JSONEncoder handles encoding of JSON data.
type JSONEncoder struct {
	MarshalFunc func(v any) ([]byte, error)
}

// Encode marshals the provided value into JSON text.
func (e *JSONEncoder) Encode(v any) ([]byte, error) {
	marshal := e.MarshalFunc
	if marshal == nil {
		marshal = jsonMarshal
	}
	data, err := marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	return data, nil
}

// ContentType returns the content type for JSON data.
func (e *JSONEncoder) ContentType() string {
	return ContentTypeJSON
}

// JSONDecoder handles decoding of JSON data.
type JSONDecoder struct {
	UnmarshalFunc func(data []byte, v any) error
}

// Decode unmarshals JSON text into the provided value.
func (d *JSONDecoder) Decode(data []byte, v any) error {
	unmarshal := d.UnmarshalFunc
	if unmarshal == nil {
		unmarshal = jsonUnmarshal
	}
	if err := unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

// jsonMarshal wraps the sonic std-compatible config (sorted map keys,
// numbers decoded as float64) to match the expected signature.
func jsonMarshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

// jsonUnmarshal wraps the sonic std-compatible unmarshal.
func jsonUnmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// DefaultJSONEncoder is the default JSONEncoder instance.
var DefaultJSONEncoder = &JSONEncoder{MarshalFunc: jsonMarshal}

// DefaultJSONDecoder is the default JSONDecoder instance.
var DefaultJSONDecoder = &JSONDecoder{UnmarshalFunc: jsonUnmarshal}
