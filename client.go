package httpsvc

import (
	"context"
	"net/http"
)

// Client issues requests against a single HTTPS endpoint. The endpoint
// and default headers are fixed at construction; concurrent requests on
// one Client share no mutable state.
type Client struct {
	endpoint  *Endpoint
	headers   *HeaderSet
	transport Transport
	logger    Logger
}

// New creates a client for the given endpoint.
func New(endpoint *Endpoint, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  endpoint,
		headers:   NewHeaderSet(nil),
		transport: NewTLSTransport(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewURL creates a client from a full https URI.
func NewURL(uri string, opts ...ClientOption) (*Client, error) {
	endpoint, err := ParseEndpoint(uri)
	if err != nil {
		return nil, err
	}
	return New(endpoint, opts...), nil
}

// Endpoint returns the endpoint this client targets.
func (c *Client) Endpoint() *Endpoint {
	return c.endpoint
}

// Request is the single underlying operation: encode the payload, round
// trip through the transport, decode the result. Request headers override
// the client's defaults name by name. Every verb method is sugar over it.
func (c *Client) Request(ctx context.Context, method, path string, headers *HeaderSet, payload Payload) (*Response, error) {
	merged := c.headers.Clone()
	for _, name := range headers.Names() {
		merged.Set(name, headers.Get(name))
	}

	encoded, err := EncodeRequest(method, path, merged, payload)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Debugf("%s %s%s", encoded.Method, c.endpoint.Addr(), encoded.Path)
	}

	result, err := c.transport.RoundTrip(ctx, &TransportRequest{
		Method:  encoded.Method,
		Host:    c.endpoint.Host(),
		Port:    c.endpoint.Port(),
		Path:    encoded.Path,
		Headers: encoded.Headers,
		Body:    encoded.Body,
	})
	if err != nil {
		if c.logger != nil {
			c.logger.Errorf("%s %s: %v", encoded.Method, c.endpoint.Addr(), err)
		}
		return nil, err
	}

	return DecodeResponse(result.StatusCode, result.Headers, result.Body, encoded.Method)
}

// Get issues a GET request. A non-nil query is appended to the path.
func (c *Client) Get(ctx context.Context, path string, query any) (*Response, error) {
	p, err := appendQuery(path, query)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, http.MethodGet, p, nil, NoPayload())
}

// Head issues a HEAD request. A non-nil query is appended to the path.
func (c *Client) Head(ctx context.Context, path string, query any) (*Response, error) {
	p, err := appendQuery(path, query)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, http.MethodHead, p, nil, NoPayload())
}

// Post issues a POST request. A non-empty contentType overrides the
// encoder's default for the payload.
func (c *Client) Post(ctx context.Context, path string, payload Payload, contentType string) (*Response, error) {
	return c.Request(ctx, http.MethodPost, path, contentTypeHeader(contentType), payload)
}

// Put issues a PUT request. A non-empty contentType overrides the
// encoder's default for the payload.
func (c *Client) Put(ctx context.Context, path string, payload Payload, contentType string) (*Response, error) {
	return c.Request(ctx, http.MethodPut, path, contentTypeHeader(contentType), payload)
}

// Patch issues a PATCH request. A non-empty contentType overrides the
// encoder's default for the payload.
func (c *Client) Patch(ctx context.Context, path string, payload Payload, contentType string) (*Response, error) {
	return c.Request(ctx, http.MethodPatch, path, contentTypeHeader(contentType), payload)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, NoPayload())
}

func contentTypeHeader(contentType string) *HeaderSet {
	if contentType == "" {
		return nil
	}
	return NewHeaderSet(map[string]string{HeaderContentType: contentType})
}
