package httpsvc

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// EncodedRequest is the fully resolved request unit handed to the
// transport. Body == nil means the request carries no body, in which case
// no content-type or content-length header is present.
type EncodedRequest struct {
	Method  string
	Path    string
	Headers *HeaderSet
	Body    []byte
}

// EncodeRequest resolves a payload into wire bytes and the headers they
// imply. The caller's headers are cloned, never mutated.
//
// Rules, in precedence order:
//  1. The method is upper-cased. No verb list is enforced.
//  2. An absent payload strips any stale content-type/content-length
//     headers; POST, PUT, and PATCH require a body and fail without one.
//  3. Raw bytes require a caller-supplied content-type.
//  4. Text defaults the content-type to text/plain; its content-length is
//     always recomputed from the UTF-8 byte length.
//  5. Structured values serialize per the logical content type: JSON,
//     form-urlencoded, or JSON by default when no content-type is set.
//     Any other content type is an encoding failure.
func EncodeRequest(method, path string, headers *HeaderSet, payload Payload) (*EncodedRequest, error) {
	method = strings.ToUpper(method)
	h := headers.Clone()
	req := &EncodedRequest{Method: method, Path: path, Headers: h}

	switch payload.kind {
	case payloadAbsent:
		h.Del(HeaderContentType)
		h.Del(HeaderContentLength)
		switch method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			return nil, fmt.Errorf("%w: %s requires a request body", ErrInvalidPayload, method)
		}

	case payloadRaw:
		if !h.Has(HeaderContentType) {
			return nil, fmt.Errorf("%w: raw bytes require an explicit content-type", ErrInvalidPayload)
		}
		req.Body = payload.raw
		h.Set(HeaderContentLength, strconv.Itoa(len(payload.raw)))

	case payloadText:
		if !h.Has(HeaderContentType) {
			h.Set(HeaderContentType, ContentTypeText)
		}
		req.Body = []byte(payload.text)
		// Always recomputed; a caller-supplied length for text is overwritten.
		h.Set(HeaderContentLength, strconv.Itoa(len(req.Body)))

	case payloadStructured:
		if err := checkStructured(payload.value); err != nil {
			return nil, err
		}
		var enc Encoder
		switch ct := logicalContentType(h.Get(HeaderContentType)); ct {
		case ContentTypeJSON:
			enc = DefaultJSONEncoder
		case ContentTypeForm:
			enc = DefaultFormEncoder
		case "":
			enc = DefaultJSONEncoder
			h.Set(HeaderContentType, ContentTypeJSON)
		default:
			return nil, fmt.Errorf("%w: cannot serialize value for content-type %q", ErrInvalidPayload, ct)
		}
		data, err := enc.Encode(payload.value)
		if err != nil {
			return nil, err
		}
		req.Body = data
		h.Set(HeaderContentLength, strconv.Itoa(len(data)))
	}

	return req, nil
}

// checkStructured rejects structured payloads over bare primitives. The
// serializable shapes are objects, maps, arrays, and slices; a number,
// boolean, or string belongs in TextPayload or RawPayload instead.
func checkStructured(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil structured value", ErrInvalidPayload)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil structured value", ErrInvalidPayload)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return nil
	default:
		return fmt.Errorf("%w: cannot serialize %T as a request body", ErrInvalidPayload, v)
	}
}

// appendQuery appends a query value to path. A string is taken as already
// encoded; anything else is flattened like a form payload. A value that
// encodes to the empty string leaves the path unchanged. The separator is
// & when the path already has a query component, ? otherwise.
func appendQuery(path string, query any) (string, error) {
	if query == nil {
		return path, nil
	}
	var encoded string
	switch q := query.(type) {
	case string:
		encoded = q
	default:
		values, err := formValues(q)
		if err != nil {
			return "", err
		}
		encoded = values.Encode()
	}
	if encoded == "" {
		return path, nil
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + encoded, nil
}
