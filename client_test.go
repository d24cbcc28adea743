package httpsvc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestClient builds a client trusting the test server's certificate.
func newTestClient(t *testing.T, server *httptest.Server, opts ...ClientOption) *Client {
	t.Helper()

	endpoint, err := ParseEndpoint(server.URL)
	assert.NoError(t, err)

	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())
	opts = append([]ClientOption{WithTLSConfig(&tls.Config{RootCAs: pool})}, opts...)

	return New(endpoint, opts...)
}

func TestClientJSONEchoRoundTrip(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, int64(len(body)), r.ContentLength)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	sent := map[string]any{"a": float64(1), "b": "two", "c": []any{true, nil}}

	resp, err := client.Post(context.Background(), "/echo", StructuredPayload(sent), "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Type)
	assert.Equal(t, sent, resp.Data)
}

func TestClientGetWithQuery(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, r.URL.RequestURI())
	}))
	defer server.Close()

	client := newTestClient(t, server)

	resp, err := client.Get(context.Background(), "/things", map[string]string{"page": "2"})
	assert.NoError(t, err)
	assert.Equal(t, "/things?page=2", resp.Text())

	// An empty query leaves the path untouched.
	resp, err = client.Get(context.Background(), "/things", map[string]string{})
	assert.NoError(t, err)
	assert.Equal(t, "/things", resp.Text())
}

func TestClientFormPost(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, r.PostForm.Get("grant_type"))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Post(context.Background(), "/token",
		StructuredPayload(map[string]string{"grant_type": "client_credentials"}),
		ContentTypeForm)
	assert.NoError(t, err)
	assert.Equal(t, "client_credentials", resp.Text())
}

func TestClientServiceFailure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"message":"no such thing"}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Get(context.Background(), "/things/42", nil)

	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "404 (Not Found) no such thing", svcErr.Message)
}

func TestClientNoContent(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Delete(context.Background(), "/things/42")
	assert.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, "", resp.Type)
	assert.Nil(t, resp.Data)
}

func TestClientHead(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "2")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Head(context.Background(), "/things", nil)
	assert.NoError(t, err)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "application/json", resp.Type)
}

func TestClientDefaultHeadersMergeAndOverride(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"accept":"`+r.Header.Get("Accept")+`","agent":"`+r.Header.Get("User-Agent")+`"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server,
		WithUserAgent("https-service-test"),
		WithAccept("text/html"),
	)

	// Per-request headers win over client defaults, name by name.
	resp, err := client.Request(context.Background(), "GET", "/",
		NewHeaderSet(map[string]string{"Accept": "application/json"}), NoPayload())
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{
		"accept": "application/json",
		"agent":  "https-service-test",
	}, resp.Data)
}

func TestClientPostWithoutBodyFailsBeforeTransport(t *testing.T) {
	// The encoder rejects the request; no connection is attempted, so a
	// client pointed at an unroutable endpoint still fails fast.
	client := New(NewEndpoint("localhost", 1))
	_, err := client.Post(context.Background(), "/post", NoPayload(), "")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestClientTransportFaultPropagates(t *testing.T) {
	client := New(NewEndpoint("127.0.0.1", 1))
	_, err := client.Get(context.Background(), "/", nil)
	assert.Error(t, err)
	assert.True(t, IsConnectionError(err), "expected a connection-level failure, got %v", err)
}

func TestClientContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Get(ctx, "/slow", nil)
	assert.Error(t, err)
}

func TestNewURLRejectsHTTP(t *testing.T) {
	_, err := NewURL("http://example.com")
	assert.ErrorIs(t, err, ErrInvalidScheme)
}
