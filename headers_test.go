package httpsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderSetCaseInsensitivity(t *testing.T) {
	h := NewHeaderSet(nil)
	h.Set("Content-Type", "application/json")

	assert.Equal(t, "application/json", h.Get("content-type"))
	assert.Equal(t, "application/json", h.Get("CONTENT-TYPE"))
	assert.True(t, h.Has("Content-type"))

	// Setting under a different casing replaces, never duplicates.
	h.Set("CONTENT-TYPE", "text/plain")
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "text/plain", h.Get("Content-Type"))

	h.Del("content-TYPE")
	assert.False(t, h.Has("Content-Type"))
	assert.Equal(t, 0, h.Len())
}

func TestHeaderSetSeed(t *testing.T) {
	h := NewHeaderSet(map[string]string{"Accept": "application/json", "X-Trace": "abc"})
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "application/json", h.Get("accept"))
	assert.Equal(t, []string{"accept", "x-trace"}, h.Names())
}

func TestHeaderSetClone(t *testing.T) {
	h := NewHeaderSet(map[string]string{"Accept": "text/html"})
	clone := h.Clone()
	clone.Set("Accept", "application/json")
	clone.Set("X-New", "1")

	assert.Equal(t, "text/html", h.Get("accept"))
	assert.False(t, h.Has("x-new"))
	assert.Equal(t, "application/json", clone.Get("accept"))
}

func TestHeaderSetNilSafety(t *testing.T) {
	var h *HeaderSet
	assert.Equal(t, "", h.Get("anything"))
	assert.False(t, h.Has("anything"))
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Names())

	clone := h.Clone()
	clone.Set("a", "b")
	assert.Equal(t, "b", clone.Get("A"))
}
