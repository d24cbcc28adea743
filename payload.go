package httpsvc

// Payload is the application-level request body, decided once at the API
// boundary. The pipeline dispatches on the tag and never re-inspects the
// carried value's dynamic type to classify it.
type Payload struct {
	kind  payloadKind
	raw   []byte
	text  string
	value any
}

type payloadKind int

const (
	payloadAbsent payloadKind = iota
	payloadRaw
	payloadText
	payloadStructured
)

// NoPayload returns the absent payload: the request carries no body.
func NoPayload() Payload {
	return Payload{kind: payloadAbsent}
}

// RawPayload returns a payload of opaque bytes. The caller must supply a
// content-type header; raw bytes cannot be assigned a default type safely.
func RawPayload(b []byte) Payload {
	return Payload{kind: payloadRaw, raw: b}
}

// TextPayload returns a textual payload. The content type defaults to
// text/plain when the caller sets none.
func TextPayload(s string) Payload {
	return Payload{kind: payloadText, text: s}
}

// StructuredPayload returns a payload serialized according to the request's
// content type: application/json (the default) or
// application/x-www-form-urlencoded.
func StructuredPayload(v any) Payload {
	return Payload{kind: payloadStructured, value: v}
}

// IsAbsent reports whether the payload carries no body.
func (p Payload) IsAbsent() bool {
	return p.kind == payloadAbsent
}
