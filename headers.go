package httpsvc

import (
	"sort"
	"strings"
)

// HeaderSet is a case-insensitive header map holding at most one effective
// value per name. Keys are folded to lower case on every insert, lookup,
// and delete, so "Content-Type", "content-type", and "CONTENT-TYPE" all
// address the same entry. Insertion order is not preserved.
type HeaderSet struct {
	m map[string]string
}

// NewHeaderSet creates a HeaderSet, optionally seeded from init.
func NewHeaderSet(init map[string]string) *HeaderSet {
	h := &HeaderSet{m: make(map[string]string, len(init))}
	for name, value := range init {
		h.Set(name, value)
	}
	return h
}

// Set stores value under the case-folded name, replacing any existing value.
func (h *HeaderSet) Set(name, value string) {
	if h.m == nil {
		h.m = make(map[string]string)
	}
	h.m[strings.ToLower(name)] = value
}

// Get returns the value for name, or "" when absent.
func (h *HeaderSet) Get(name string) string {
	if h == nil {
		return ""
	}
	return h.m[strings.ToLower(name)]
}

// Has reports whether a value is present for name.
func (h *HeaderSet) Has(name string) bool {
	if h == nil {
		return false
	}
	_, ok := h.m[strings.ToLower(name)]
	return ok
}

// Del removes the value for name, if any.
func (h *HeaderSet) Del(name string) {
	if h == nil {
		return
	}
	delete(h.m, strings.ToLower(name))
}

// Len returns the number of stored headers.
func (h *HeaderSet) Len() int {
	if h == nil {
		return 0
	}
	return len(h.m)
}

// Names returns the stored header names, lower-cased and sorted.
func (h *HeaderSet) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.m))
	for name := range h.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy. Cloning a nil HeaderSet yields an
// empty one, so callers can clone defaults unconditionally.
func (h *HeaderSet) Clone() *HeaderSet {
	clone := &HeaderSet{m: make(map[string]string, h.Len())}
	if h != nil {
		for name, value := range h.m {
			clone.m[name] = value
		}
	}
	return clone
}
