package registry

import (
	"fmt"

	"github.com/goliatone/go-formnote/pkg/model"
)

// Load parses every candidate and merges the results behind builtins. The
// built-in list is kept verbatim and in order; a user schema whose id is
// already taken, by a built-in or an earlier user schema, is dropped with a
// diagnostic.
func Load(builtins []model.Schema, candidates []Candidate, options ...Option) []model.Schema {
	r := New(nil, options...)
	return r.build(builtins, candidates).list()
}

func (r *Registry) build(builtins []model.Schema, candidates []Candidate) *catalog {
	cat := newCatalog(len(builtins) + len(candidates))
	origin := make(map[string]string, len(builtins)+len(candidates))
	for _, schema := range builtins {
		cat.add(cloneSchema(schema))
		origin[schema.ID] = ""
	}

	for _, candidate := range candidates {
		schema, ok := r.parser.Parse(candidate.Content, candidate.Name).Schema()
		if !ok {
			continue
		}
		if previous, taken := origin[schema.ID]; taken {
			r.sink.Notify(conflictMessage(schema.ID, candidate.Name, previous))
			r.logger.Debug().
				Str("schema_id", schema.ID).
				Str("file", candidate.Name).
				Msg("dropping schema with duplicate id")
			continue
		}
		cat.add(schema)
		origin[schema.ID] = candidate.Name
	}
	return cat
}

func conflictMessage(id, file, previous string) string {
	if previous == "" {
		return fmt.Sprintf("Form schema %q in %s conflicts with a built-in schema and was ignored", id, file)
	}
	return fmt.Sprintf("Form schema %q in %s duplicates the schema in %s and was ignored", id, file, previous)
}

type catalog struct {
	schemas []model.Schema
	index   map[string]int
}

func newCatalog(capacity int) *catalog {
	return &catalog{
		schemas: make([]model.Schema, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

func (c *catalog) add(schema model.Schema) {
	if _, exists := c.index[schema.ID]; !exists {
		c.index[schema.ID] = len(c.schemas)
	}
	c.schemas = append(c.schemas, schema)
}

func (c *catalog) get(id string) (model.Schema, bool) {
	if c == nil {
		return model.Schema{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return model.Schema{}, false
	}
	return cloneSchema(c.schemas[idx]), true
}

func (c *catalog) list() []model.Schema {
	if c == nil || len(c.schemas) == 0 {
		return nil
	}
	out := make([]model.Schema, len(c.schemas))
	for i, schema := range c.schemas {
		out[i] = cloneSchema(schema)
	}
	return out
}

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
