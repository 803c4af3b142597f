package builtin

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formnote/pkg/model"
)

//go:embed schemas/*.yaml
var embedded embed.FS

var (
	defaultsOnce sync.Once
	defaults     []model.Schema
	defaultsErr  error
)

// Schemas returns the built-in schemas shipped with the module, ordered by
// file name. The embedded files are validated once; a broken file is a
// programming error and panics.
func Schemas() []model.Schema {
	defaultsOnce.Do(func() {
		defaults, defaultsErr = LoadFS(embedded)
	})
	if defaultsErr != nil {
		panic(defaultsErr)
	}
	out := make([]model.Schema, len(defaults))
	for i, schema := range defaults {
		out[i] = cloneSchema(schema)
	}
	return out
}

// cloneSchema copies everything a caller could mutate in place so the cached
// built-ins stay pristine.
func cloneSchema(schema model.Schema) model.Schema {
	out := schema
	if schema.Fields != nil {
		out.Fields = make([]model.Field, len(schema.Fields))
		for i, field := range schema.Fields {
			cloned := field
			if field.Options != nil {
				cloned.Options = append([]string(nil), field.Options...)
			}
			out.Fields[i] = cloned
		}
	}
	if schema.Output != nil {
		output := *schema.Output
		out.Output = &output
	}
	return out
}

// LoadFS decodes every .yaml/.yml file under fsys into a schema. Files are
// processed in lexical order; duplicate ids and invalid schemas are errors.
func LoadFS(fsys fs.FS) ([]model.Schema, error) {
	if fsys == nil {
		return nil, nil
	}

	var names []string
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(name) {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("builtin: walk: %w", err)
	}
	sort.Strings(names)

	seen := make(map[string]string, len(names))
	schemas := make([]model.Schema, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("builtin: read %s: %w", name, err)
		}
		schema, err := Decode(data, name)
		if err != nil {
			return nil, err
		}
		if previous, dup := seen[schema.ID]; dup {
			return nil, fmt.Errorf("builtin: duplicate schema %q (files %s and %s)", schema.ID, previous, name)
		}
		seen[schema.ID] = name
		schemas = append(schemas, schema)
	}
	return schemas, nil
}

// Decode parses a single YAML schema document.
func Decode(data []byte, source string) (model.Schema, error) {
	if strings.TrimSpace(string(data)) == "" {
		return model.Schema{}, fmt.Errorf("builtin: file %s is empty", source)
	}
	var schema model.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return model.Schema{}, fmt.Errorf("builtin: parse %s: %w", source, err)
	}
	for i := range schema.Fields {
		schema.Fields[i].Default = normaliseScalar(schema.Fields[i].Default)
	}
	if !schema.Valid() {
		return model.Schema{}, fmt.Errorf("builtin: file %s does not describe a valid schema", source)
	}
	return schema, nil
}

// normaliseScalar maps YAML integers onto float64 so built-in defaults match
// the scalars produced by the note parser.
func normaliseScalar(value any) any {
	switch typed := value.(type) {
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case uint64:
		return float64(typed)
	default:
		return value
	}
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
