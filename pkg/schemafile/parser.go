package schemafile

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formnote/pkg/diagnostics"
	"github.com/goliatone/go-formnote/pkg/fieldsblock"
	"github.com/goliatone/go-formnote/pkg/frontmatter"
	"github.com/goliatone/go-formnote/pkg/model"
)

// Reserved frontmatter keys consumed as schema metadata.
const (
	KeySchemaID    = "schema_id"
	KeySchemaTitle = "schema_title"
	KeyOutputPath  = "output_path"
	KeySubmitLabel = "submit_label"
	KeyCSSClass    = "cssClass"
)

var reservedKeys = map[string]struct{}{
	KeySchemaID:    {},
	KeySchemaTitle: {},
	KeyOutputPath:  {},
	KeySubmitLabel: {},
	KeyCSSClass:    {},
}

// IsReservedKey reports whether key is consumed as schema metadata rather
// than turned into a flat field.
func IsReservedKey(key string) bool {
	_, ok := reservedKeys[key]
	return ok
}

// Option configures a Parser.
type Option func(*Parser)

// WithDiagnostics routes user-facing diagnostics to sink.
func WithDiagnostics(sink diagnostics.Sink) Option {
	return func(p *Parser) {
		if sink != nil {
			p.sink = sink
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithLabeler overrides the label derivation used for flat fields.
func WithLabeler(labeler func(string) string) Option {
	return func(p *Parser) {
		if labeler != nil {
			p.labeler = labeler
		}
	}
}

// Parser turns hybrid schema notes into schemas. It holds no per-file state
// and is safe for concurrent use when its sink is.
type Parser struct {
	sink    diagnostics.Sink
	logger  zerolog.Logger
	labeler func(string) string
}

// New constructs a Parser.
func New(options ...Option) *Parser {
	p := &Parser{
		sink:    diagnostics.Nop,
		logger:  zerolog.Nop(),
		labeler: model.Labeler,
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// ParseSchemaFile is a convenience wrapper returning only valid schemas.
func ParseSchemaFile(content, fallbackName string, options ...Option) (model.Schema, bool) {
	return New(options...).Parse(content, fallbackName).Schema()
}

// Parse classifies content and, when it is a usable schema, assembles it.
// name identifies the file in diagnostics. Invalid results are reported to
// the configured sink exactly once before being returned.
func (p *Parser) Parse(content, name string) Result {
	doc, ok := frontmatter.Parse(content)
	if !ok {
		return notApplicable(name, "no frontmatter")
	}
	meta := doc.Metadata

	id := meta.String(KeySchemaID)
	if id == "" {
		return notApplicable(name, "no schema_id")
	}

	title := meta.String(KeySchemaTitle)
	if title == "" {
		reason := fmt.Sprintf("Form schema %q (%s) is missing schema_title and was skipped", name, id)
		p.sink.Notify(reason)
		return invalid(name, reason)
	}

	extraction := fieldsblock.Extract(doc.Body)
	var advanced []model.Field
	if extraction.Found {
		advanced = fieldsblock.Parse(extraction.FieldsText)
	}

	fields := MergeFields(p.flatFields(meta), advanced)
	if len(fields) == 0 {
		p.logger.Debug().Str("file", name).Str("schema_id", id).Msg("schema declares no fields, skipping")
		return notApplicable(name, "no fields")
	}

	schema := model.Schema{
		ID:           id,
		Title:        title,
		CSSClass:     meta.String(KeyCSSClass),
		SubmitLabel:  meta.String(KeySubmitLabel),
		Fields:       fields,
		BodyTemplate: extraction.RemainingBody,
	}
	if path := meta.String(KeyOutputPath); path != "" {
		schema.Output = &model.Output{Path: path}
	}
	return valid(name, schema)
}

// flatFields turns every unreserved metadata key into a text field.
func (p *Parser) flatFields(meta *frontmatter.Metadata) []model.Field {
	var fields []model.Field
	for _, key := range meta.Keys() {
		if IsReservedKey(key) {
			continue
		}
		field := model.Field{
			Key:   key,
			Type:  model.FieldTypeText,
			Label: p.labeler(key),
		}
		if value, _ := meta.Get(key); !model.IsEmptyScalar(value) {
			field.Default = value
		}
		fields = append(fields, field)
	}
	return fields
}

// MergeFields combines flat and advanced fields by key. An advanced field
// replaces a flat field with the same key wholesale and keeps the flat
// field's position; advanced-only keys follow in declaration order.
func MergeFields(flat, advanced []model.Field) []model.Field {
	order := make([]string, 0, len(flat)+len(advanced))
	byKey := make(map[string]model.Field, len(flat)+len(advanced))
	put := func(field model.Field) {
		if _, exists := byKey[field.Key]; !exists {
			order = append(order, field.Key)
		}
		byKey[field.Key] = field
	}
	for _, field := range flat {
		put(field)
	}
	for _, field := range advanced {
		put(field)
	}

	if len(order) == 0 {
		return nil
	}
	merged := make([]model.Field, 0, len(order))
	for _, key := range order {
		merged = append(merged, byKey[key])
	}
	return merged
}
