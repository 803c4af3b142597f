package form

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formnote/pkg/frontmatter"
	"github.com/goliatone/go-formnote/pkg/model"
)

// ErrUnknownField is returned by SetStrict for keys outside the schema.
var ErrUnknownField = errors.New("form: unknown field")

var externalURLPattern = regexp.MustCompile(`(?i)^https?://\S+$`)

// Resolver turns a photo field's raw value into something a host can display,
// such as a vault resource URL. It is supplied by the host.
type Resolver interface {
	Resolve(raw string) string
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(raw string) string

// Resolve calls fn.
func (fn ResolverFunc) Resolve(raw string) string {
	return fn(raw)
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver sets the photo resolver used by PhotoPreview.
func WithResolver(resolver Resolver) Option {
	return func(e *Engine) {
		if resolver != nil {
			e.resolver = resolver
		}
	}
}

// Engine owns the mutable state of one form session. It never fails on
// malformed or missing data and never blocks a submission; "required" is
// advisory and left to the host. An Engine is not safe for concurrent edits.
type Engine struct {
	schema        model.Schema
	fields        map[string]model.Field
	values        map[string]any
	keepLocalCopy bool
	resolver      Resolver
}

// New opens a form session for schema, seeded from defaults and initial.
func New(schema model.Schema, initial map[string]any, options ...Option) *Engine {
	e := &Engine{
		schema:   schema,
		fields:   make(map[string]model.Field, len(schema.Fields)),
		values:   BuildInitialState(schema.Fields, initial),
		resolver: ResolverFunc(func(raw string) string { return raw }),
	}
	for _, field := range schema.Fields {
		if _, exists := e.fields[field.Key]; !exists {
			e.fields[field.Key] = field
		}
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Schema returns the schema driving the session.
func (e *Engine) Schema() model.Schema {
	return e.schema
}

// Value returns the current value of key.
func (e *Engine) Value(key string) (any, bool) {
	value, ok := e.values[key]
	return value, ok
}

// Values returns a copy of the current state.
func (e *Engine) Values() map[string]any {
	return cloneValues(e.values)
}

// OnFieldChange replaces the value of key. Number fields coerce string input:
// an empty control value stays "" and anything else is parsed with the same
// strict number rule notes use, keeping the raw text when it does not parse. Unknown keys are ignored and
// reported with false.
func (e *Engine) OnFieldChange(key string, value any) bool {
	field, ok := e.fields[key]
	if !ok {
		return false
	}
	if field.Type == model.FieldTypeNumber {
		value = coerceNumber(value)
	}
	e.values[key] = value
	return true
}

// SetStrict behaves like OnFieldChange but returns ErrUnknownField for keys
// outside the schema.
func (e *Engine) SetStrict(key string, value any) error {
	if !e.OnFieldChange(key, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return nil
}

func coerceNumber(value any) any {
	raw, ok := value.(string)
	if !ok {
		return value
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	parsed, ok := frontmatter.ParseNumber(trimmed)
	if !ok {
		return raw
	}
	return parsed
}

// DropdownOptions returns the options a dropdown should offer. A current
// value outside the declared options is appended so it stays visible and is
// never discarded silently.
func (e *Engine) DropdownOptions(key string) []string {
	field, ok := e.fields[key]
	if !ok || field.Type != model.FieldTypeDropdown {
		return nil
	}
	options := append([]string(nil), field.Options...)
	current := model.ScalarString(e.values[key])
	if current == "" {
		return options
	}
	for _, option := range options {
		if option == current {
			return options
		}
	}
	return append(options, current)
}

// PhotoPreview resolves the current value of a photo field for display.
func (e *Engine) PhotoPreview(key string) (string, bool) {
	field, ok := e.fields[key]
	if !ok || field.Type != model.FieldTypePhoto {
		return "", false
	}
	raw := strings.TrimSpace(model.ScalarString(e.values[key]))
	if raw == "" {
		return "", false
	}
	return e.resolver.Resolve(raw), true
}

// IsExternalURL reports whether value looks like an http(s) URL.
func IsExternalURL(value string) bool {
	return externalURLPattern.MatchString(strings.TrimSpace(value))
}

// ShowKeepLocalCopy reports whether the host should offer the "keep a local
// copy" toggle: some photo field currently holds an external URL.
func (e *Engine) ShowKeepLocalCopy() bool {
	for _, field := range e.schema.Fields {
		if field.Type != model.FieldTypePhoto {
			continue
		}
		if IsExternalURL(model.ScalarString(e.values[field.Key])) {
			return true
		}
	}
	return false
}

// SetKeepLocalCopy sets the out-of-band photo flag.
func (e *Engine) SetKeepLocalCopy(keep bool) {
	e.keepLocalCopy = keep
}

// KeepLocalCopy returns the out-of-band photo flag.
func (e *Engine) KeepLocalCopy() bool {
	return e.keepLocalCopy
}

// MissingRequired lists required fields whose value is empty, in schema
// order. It is informational only.
func (e *Engine) MissingRequired() []string {
	var missing []string
	for _, field := range e.schema.Fields {
		if !field.Required {
			continue
		}
		value := e.values[field.Key]
		if model.IsEmptyScalar(value) {
			missing = append(missing, field.Key)
			continue
		}
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			missing = append(missing, field.Key)
		}
	}
	return missing
}

// Submit returns a snapshot of the state. KeepLocalCopy is set only when
// the schema has a photo field.
func (e *Engine) Submit() Submission {
	submission := Submission{
		SchemaID: e.schema.ID,
		Values:   cloneValues(e.values),
	}
	if e.schema.HasFieldType(model.FieldTypePhoto) {
		keep := e.keepLocalCopy
		submission.KeepLocalCopy = &keep
	}
	return submission
}
