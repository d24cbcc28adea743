package httpsvc

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"slices"
)

// TransportRequest is the wire-level request unit handed to a Transport.
// Path may already carry a query string.
type TransportRequest struct {
	Method  string
	Host    string
	Port    int
	Path    string
	Headers *HeaderSet
	Body    []byte
}

// TransportResponse is what a Transport yields once the full body has
// arrived. Partial bodies are never surfaced.
type TransportResponse struct {
	StatusCode int
	Headers    *HeaderSet
	Body       []byte
}

// Transport performs a single HTTPS exchange. Connection-level failures
// (DNS, TCP, TLS, reset) are returned unchanged; the caller's context is
// the only source of deadlines and cancellation.
type Transport interface {
	RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error)
}

// TLSTransport is the default Transport over net/http. It applies no
// client timeout: a request without a context deadline waits for the full
// response or a connection fault, which is the documented contract.
type TLSTransport struct {
	client *http.Client
}

// NewTLSTransport creates a transport with the given TLS configuration.
// A nil config uses the host's default roots.
func NewTLSTransport(cfg *tls.Config) *TLSTransport {
	return &TLSTransport{
		client: &http.Client{
			Transport: &http.Transport{TLSClientConfig: cfg},
		},
	}
}

// RoundTrip writes the request and accumulates the complete response body.
func (t *TLSTransport) RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
	port := req.Port
	if port <= 0 {
		port = DefaultPort
	}
	rawURL := fmt.Sprintf("https://%s:%d%s", req.Host, port, req.Path)

	var body *bytes.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	var httpReq *http.Request
	var err error
	if body != nil {
		httpReq, err = http.NewRequestWithContext(ctx, req.Method, rawURL, body)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, req.Method, rawURL, nil)
	}
	if err != nil {
		return nil, err
	}
	for _, name := range req.Headers.Names() {
		httpReq.Header.Set(name, req.Headers.Get(name))
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf := getBuffer()
	defer putBuffer(buf)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	headers := NewHeaderSet(nil)
	for name := range resp.Header {
		headers.Set(name, resp.Header.Get(name))
	}

	// Copy out before the buffer returns to the pool.
	return &TransportResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       slices.Clone(buf.B),
	}, nil
}
