package httpsvc

import "crypto/tls"

// ClientOption configures a Client. Use with New or NewURL.
type ClientOption func(*Client)

// WithHeader sets a default header sent with every request.
func WithHeader(name, value string) ClientOption {
	return func(c *Client) { c.headers.Set(name, value) }
}

// WithHeaders replaces the client's default headers.
func WithHeaders(headers *HeaderSet) ClientOption {
	return func(c *Client) { c.headers = headers.Clone() }
}

// WithUserAgent sets the default User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return WithHeader("user-agent", userAgent)
}

// WithAccept sets the default Accept header.
func WithAccept(accept string) ClientOption {
	return WithHeader("accept", accept)
}

// WithTransport replaces the transport collaborator.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) { c.transport = t }
}

// WithTLSConfig installs a default transport using cfg.
func WithTLSConfig(cfg *tls.Config) ClientOption {
	return func(c *Client) { c.transport = NewTLSTransport(cfg) }
}

// WithLogger installs a logger for transport fault reporting.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}
