package frontmatter

import "github.com/goliatone/go-formnote/pkg/model"

// Metadata is an insertion-ordered map of decoded frontmatter scalars. A
// repeated key keeps its first position and takes the latest value.
type Metadata struct {
	keys   []string
	values map[string]any
}

// NewMetadata returns an empty Metadata ready for use.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]any)}
}

// Set stores value under key.
func (m *Metadata) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present, including keys with empty values.
func (m *Metadata) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// String returns the textual form of key's value, or "" when absent.
func (m *Metadata) String(key string) string {
	value, _ := m.Get(key)
	return model.ScalarString(value)
}

// Keys returns the keys in first-seen order.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len reports the number of distinct keys.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Map returns an unordered copy of the values.
func (m *Metadata) Map() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.values))
	for key, value := range m.values {
		out[key] = value
	}
	return out
}
