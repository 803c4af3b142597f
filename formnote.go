package formnote

import (
	"context"

	"github.com/goliatone/go-formnote/pkg/builtin"
	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/output"
	"github.com/goliatone/go-formnote/pkg/registry"
	"github.com/goliatone/go-formnote/pkg/schemafile"
	"github.com/goliatone/go-formnote/pkg/vault"
)

// Schema aliases model.Schema for callers that only import the root package.
type Schema = model.Schema

// Field aliases model.Field.
type Field = model.Field

// Submission aliases form.Submission.
type Submission = form.Submission

// Note aliases output.Note.
type Note = output.Note

// ParseSchemaFile classifies a single note and returns its schema when the
// note is a complete form schema.
func ParseSchemaFile(content, fallbackName string, options ...schemafile.Option) (Schema, bool) {
	return schemafile.ParseSchemaFile(content, fallbackName, options...)
}

// LoadSchemas merges the embedded built-in schemas with candidate notes. It
// is the one-shot counterpart of OpenVault.
func LoadSchemas(candidates []registry.Candidate, options ...registry.Option) []Schema {
	return registry.Load(builtin.Schemas(), candidates, options...)
}

// OpenVault builds a registry over the notes under dir, seeded with the
// built-in schemas, and performs the first scan. Later options override the
// built-ins, e.g. registry.WithBuiltins(nil) disables them.
func OpenVault(ctx context.Context, dir string, options ...registry.Option) (*registry.Registry, error) {
	opts := append([]registry.Option{registry.WithBuiltins(builtin.Schemas())}, options...)
	reg := registry.New(vault.Dir(dir), opts...)
	if err := reg.Rescan(ctx); err != nil {
		return nil, err
	}
	return reg, nil
}

// NewForm opens a form session for schema.
func NewForm(schema Schema, initial map[string]any, options ...form.Option) *form.Engine {
	return form.New(schema, initial, options...)
}

// RenderNote turns a submission into the note it describes.
func RenderNote(schema Schema, submission Submission, options ...output.Option) (Note, error) {
	return output.New(options...).Render(schema, submission)
}
