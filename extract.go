package httpsvc

import "strings"

// Upstream services disagree on where the human-readable message lives in
// an error body. Each strategy probes one known shape; they are applied in
// a fixed priority order and the first match wins. The order is part of
// the contract: a body carrying both error_description and error.message
// reports the error_description.
type messageStrategy func(v any) (string, bool)

var messageStrategies = []messageStrategy{
	errorDescriptionMessage,
	nestedErrorMessage,
	odataErrorMessage,
	topLevelMessage,
}

// extractMessage returns the best-effort message for an error body. After
// the JSON shapes, a text/plain body is used verbatim. A false return
// means no known shape matched.
func extractMessage(logicalType string, data any) (string, bool) {
	for _, strategy := range messageStrategies {
		if msg, ok := strategy(data); ok {
			return msg, true
		}
	}
	if logicalType == ContentTypeText {
		if s, ok := data.(string); ok {
			return s, true
		}
	}
	return "", false
}

// errorDescriptionMessage matches {"error_description": "..."} and keeps
// only the first line of the value.
func errorDescriptionMessage(v any) (string, bool) {
	s, ok := stringField(v, "error_description")
	if !ok {
		return "", false
	}
	return firstLine(s), true
}

// nestedErrorMessage matches {"error": {"message": "..."}}.
func nestedErrorMessage(v any) (string, bool) {
	inner, ok := objectField(v, "error")
	if !ok {
		return "", false
	}
	return stringField(inner, "message")
}

// odataErrorMessage matches the OData convention
// {"odata.error": {"message": {"value": "..."}}}.
func odataErrorMessage(v any) (string, bool) {
	inner, ok := objectField(v, "odata.error")
	if !ok {
		return "", false
	}
	msg, ok := objectField(inner, "message")
	if !ok {
		return "", false
	}
	return stringField(msg, "value")
}

// topLevelMessage matches {"message": "..."}.
func topLevelMessage(v any) (string, bool) {
	return stringField(v, "message")
}

func stringField(v any, name string) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := obj[name].(string)
	return s, ok
}

func objectField(v any, name string) (any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	inner, ok := obj[name]
	return inner, ok
}

// firstLine truncates s at the first line break, either \r\n or \n.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "\r")
}
