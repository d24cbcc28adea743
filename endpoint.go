package httpsvc

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// DefaultPort is the port used when an endpoint does not name one.
const DefaultPort = 443

// Endpoint is the fixed host/port pair a client targets. It is immutable
// once constructed and safe to share across concurrent requests.
type Endpoint struct {
	host string
	port int
}

// NewEndpoint creates an endpoint for host. A port <= 0 selects DefaultPort.
func NewEndpoint(host string, port int) *Endpoint {
	if port <= 0 {
		port = DefaultPort
	}
	return &Endpoint{host: host, port: port}
}

// ParseEndpoint creates an endpoint from a full URI. The scheme must be
// https; the port defaults to 443 when the URI names none.
func ParseEndpoint(uri string) (*Endpoint, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q (https required)", ErrInvalidScheme, u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidEndpoint, uri)
	}
	port := DefaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: bad port %q", ErrInvalidEndpoint, p)
		}
	}
	return &Endpoint{host: host, port: port}, nil
}

// Host returns the endpoint's host name.
func (e *Endpoint) Host() string {
	return e.host
}

// Port returns the endpoint's port.
func (e *Endpoint) Port() int {
	return e.port
}

// Addr returns the host:port address the transport dials.
func (e *Endpoint) Addr() string {
	return net.JoinHostPort(e.host, strconv.Itoa(e.port))
}

func (e *Endpoint) String() string {
	return "https://" + e.Addr()
}
