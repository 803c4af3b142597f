package form

import "github.com/goliatone/go-formnote/pkg/model"

// KeepLocalCopyKey is the preferred key for the photo flag in Submission.Map.
const KeepLocalCopyKey = "_keepLocalCopy"

// Submission is the snapshot produced by Engine.Submit. Values holds exactly
// one entry per schema field. KeepLocalCopy is the out-of-band photo flag and
// is nil when the schema has no photo field; it never appears in Values, so
// callers iterating schema fields to apply Values never see it.
type Submission struct {
	SchemaID      string
	Values        map[string]any
	KeepLocalCopy *bool
}

// Map flattens the submission into a single map. When KeepLocalCopy is set it
// is stored under LocalCopyKey, which is guaranteed not to collide with a
// field key.
func (s Submission) Map() map[string]any {
	out := cloneValues(s.Values)
	if s.KeepLocalCopy != nil {
		out[s.LocalCopyKey()] = *s.KeepLocalCopy
	}
	return out
}

// LocalCopyKey returns KeepLocalCopyKey, prefixed with further underscores
// until it no longer clashes with a field key.
func (s Submission) LocalCopyKey() string {
	key := KeepLocalCopyKey
	for {
		if _, taken := s.Values[key]; !taken {
			return key
		}
		key = "_" + key
	}
}

// String returns the value of key as text, or "" when absent.
func (s Submission) String(key string) string {
	value, ok := s.Values[key]
	if !ok {
		return ""
	}
	return model.ScalarString(value)
}
