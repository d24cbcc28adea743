package httpsvc

import (
	"fmt"
	"net/http"
	"strings"
)

// Response is a decoded HTTP response. Type is the logical content type
// ("" when the header is absent or the status is 204). Data is nil for
// 204 responses and HEAD requests, the parsed value for JSON bodies, a
// string for text/* and *+xml bodies, and raw bytes for everything else.
type Response struct {
	StatusCode int
	Headers    *HeaderSet
	Type       string
	Data       any
}

// Text returns the decoded body when it is textual, "" otherwise.
func (r *Response) Text() string {
	s, _ := r.Data.(string)
	return s
}

// Bytes returns the body when it was kept as raw bytes, nil otherwise.
func (r *Response) Bytes() []byte {
	b, _ := r.Data.([]byte)
	return b
}

// JSON returns the parsed body value. It is nil unless the response
// declared application/json.
func (r *Response) JSON() any {
	switch r.Data.(type) {
	case nil, string, []byte:
		return nil
	default:
		return r.Data
	}
}

// Scan re-serializes a parsed JSON body into v. It is a convenience for
// callers that want a typed view of Data.
func (r *Response) Scan(v any) error {
	data, err := DefaultJSONEncoder.Encode(r.Data)
	if err != nil {
		return err
	}
	return DefaultJSONDecoder.Decode(data, v)
}

// DecodeResponse turns raw status/headers/body into a Response, or into a
// ServiceError (status >= 400) or DecodeError (empty or malformed JSON).
//
// A 204 never examines the body and reports no logical type. A HEAD
// request never carries data but its logical type is still computed. An
// empty or malformed JSON body is a DecodeError even on a 2xx status.
func DecodeResponse(statusCode int, headers *HeaderSet, body []byte, requestMethod string) (*Response, error) {
	resp := &Response{
		StatusCode: statusCode,
		Headers:    headers,
		Type:       logicalContentType(headers.Get(HeaderContentType)),
	}

	switch {
	case statusCode == http.StatusNoContent:
		resp.Type = ""
	case strings.ToUpper(requestMethod) == http.MethodHead:
		// Status alone decides success below.
	case resp.Type == ContentTypeJSON:
		if len(body) == 0 {
			return nil, &DecodeError{StatusCode: decodeStatus(statusCode), Message: "empty response"}
		}
		var v any
		if err := DefaultJSONDecoder.Decode(body, &v); err != nil {
			return nil, &DecodeError{StatusCode: decodeStatus(statusCode), Message: err.Error()}
		}
		resp.Data = v
	case strings.HasPrefix(resp.Type, "text/") || strings.HasSuffix(resp.Type, "+xml"):
		resp.Data = string(body)
	default:
		resp.Data = body
	}

	if statusCode >= 400 {
		return nil, newServiceError(statusCode, resp.Type, resp.Data)
	}
	return resp, nil
}

// decodeStatus keeps an upstream failure status on a DecodeError and
// substitutes the zero sentinel when the broken body arrived on an
// otherwise-successful status.
func decodeStatus(statusCode int) int {
	if statusCode >= 400 {
		return statusCode
	}
	return 0
}

// newServiceError renders "<status> (<reason>)", appending the message
// extracted from the body when one of the known error shapes matches.
func newServiceError(statusCode int, logicalType string, data any) *ServiceError {
	msg := fmt.Sprintf("%d (%s)", statusCode, http.StatusText(statusCode))
	if extracted, ok := extractMessage(logicalType, data); ok {
		msg += " " + extracted
	}
	return &ServiceError{StatusCode: statusCode, Message: msg}
}
