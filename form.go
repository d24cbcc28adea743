package httpsvc

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// stringMapToValues converts a map[string]string to url.Values.
func stringMapToValues(data map[string]string) url.Values {
	values := make(url.Values, len(data))
	for key, value := range data {
		values.Set(key, value)
	}
	return values
}

// formValues flattens the given value into url.Values. Supported shapes are
// url.Values, string maps, flat map[string]any with scalar values, and
// structs tagged with url tags. Nested structures are not supported.
func formValues(v any) (url.Values, error) {
	switch data := v.(type) {
	case url.Values:
		return data, nil
	case map[string][]string:
		return url.Values(data), nil
	case map[string]string:
		return stringMapToValues(data), nil
	case map[string]any:
		values := make(url.Values, len(data))
		for key, value := range data {
			switch s := value.(type) {
			case string:
				values.Set(key, s)
			case []string:
				for _, item := range s {
					values.Add(key, item)
				}
			case bool, int, int8, int16, int32, int64,
				uint, uint8, uint16, uint32, uint64,
				float32, float64:
				values.Set(key, fmt.Sprint(s))
			default:
				return nil, fmt.Errorf("%w: %T for field %q", ErrUnsupportedFormValue, value, key)
			}
		}
		return values, nil
	default:
		values, err := query.Values(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormValue, err)
		}
		return values, nil
	}
}

// FormEncoder handles encoding of application/x-www-form-urlencoded data.
type FormEncoder struct{}

// Encode flattens the given value and URL-encodes it.
func (e *FormEncoder) Encode(v any) ([]byte, error) {
	values, err := formValues(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	return []byte(values.Encode()), nil
}

// ContentType returns the content type for form data.
func (e *FormEncoder) ContentType() string {
	return ContentTypeForm
}

// DefaultFormEncoder is the default FormEncoder instance.
var DefaultFormEncoder = &FormEncoder{}
