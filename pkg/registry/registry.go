package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formnote/pkg/diagnostics"
	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/schemafile"
)

// ErrNoSource is returned by Rescan when the registry has no candidate source.
var ErrNoSource = errors.New("registry: candidate source is required")

// Option configures a Registry.
type Option func(*Registry)

// WithBuiltins sets the built-in schemas that always take precedence.
func WithBuiltins(schemas []model.Schema) Option {
	return func(r *Registry) {
		r.builtins = append([]model.Schema(nil), schemas...)
	}
}

// WithDiagnostics routes user-facing diagnostics to sink. The same sink is
// handed to the schema file parser.
func WithDiagnostics(sink diagnostics.Sink) Option {
	return func(r *Registry) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithParserOptions forwards extra options to the schema file parser.
func WithParserOptions(options ...schemafile.Option) Option {
	return func(r *Registry) {
		r.parserOptions = append(r.parserOptions, options...)
	}
}

// Registry holds the merged set of built-in and user schemas. Readers see an
// immutable catalog; Rescan builds a replacement off to the side and swaps it
// in with a single atomic store.
type Registry struct {
	current atomic.Pointer[catalog]

	source        Source
	builtins      []model.Schema
	sink          diagnostics.Sink
	logger        zerolog.Logger
	parserOptions []schemafile.Option
	parser        *schemafile.Parser

	rescanMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []func([]model.Schema)
}

// New constructs a Registry. The catalog starts with the built-ins only;
// call Rescan to include user schemas from source.
func New(source Source, options ...Option) *Registry {
	r := &Registry{
		source: source,
		sink:   diagnostics.Nop,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	parserOptions := append([]schemafile.Option{
		schemafile.WithDiagnostics(r.sink),
		schemafile.WithLogger(r.logger),
	}, r.parserOptions...)
	r.parser = schemafile.New(parserOptions...)

	r.current.Store(r.build(r.builtins, nil))
	return r
}

// Rescan rebuilds the catalog from the built-ins and a fresh read of the
// source. On error the previous catalog stays in place.
func (r *Registry) Rescan(ctx context.Context) error {
	if r.source == nil {
		return ErrNoSource
	}
	r.rescanMu.Lock()
	defer r.rescanMu.Unlock()

	candidates, err := r.source.Candidates(ctx)
	if err != nil {
		return fmt.Errorf("registry: read candidates: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	next := r.build(r.builtins, candidates)
	r.current.Store(next)

	r.logger.Info().
		Int("candidates", len(candidates)).
		Int("schemas", len(next.schemas)).
		Int("builtins", len(r.builtins)).
		Msg("schema registry rebuilt")

	r.notify(next)
	return nil
}

// Get returns a copy of the schema registered under id.
func (r *Registry) Get(id string) (model.Schema, bool) {
	return r.current.Load().get(id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.current.Load().index[id]
	return ok
}

// List returns copies of every schema: built-ins first, then user schemas in
// source order.
func (r *Registry) List() []model.Schema {
	return r.current.Load().list()
}

// IDs returns the registered ids in catalog order.
func (r *Registry) IDs() []string {
	cat := r.current.Load()
	ids := make([]string, 0, len(cat.schemas))
	for _, schema := range cat.schemas {
		ids = append(ids, schema.ID)
	}
	return ids
}

// Len reports the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.current.Load().schemas)
}

// OnChange registers fn to receive the new schema list after every
// successful Rescan.
func (r *Registry) OnChange(fn func([]model.Schema)) {
	if fn == nil {
		return
	}
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.listeners = append(r.listeners, fn)
}

func (r *Registry) notify(cat *catalog) {
	r.listenersMu.RLock()
	listeners := append(([]func([]model.Schema))(nil), r.listeners...)
	r.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(cat.list())
	}
}
