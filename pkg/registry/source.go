package registry

import "context"

// Candidate is the text of a file that may hold a schema. Name identifies the
// file in diagnostics and orders duplicate resolution.
type Candidate struct {
	Name    string
	Content string
}

// Source supplies candidate files. Reading is the source's concern; the
// registry only parses the text it is handed.
type Source interface {
	Candidates(ctx context.Context) ([]Candidate, error)
}

// SourceFunc adapts a function into a Source.
type SourceFunc func(ctx context.Context) ([]Candidate, error)

// Candidates calls fn.
func (fn SourceFunc) Candidates(ctx context.Context) ([]Candidate, error) {
	return fn(ctx)
}

// StaticSource serves a fixed candidate list.
type StaticSource []Candidate

// Candidates returns a copy of the list.
func (s StaticSource) Candidates(context.Context) ([]Candidate, error) {
	return append([]Candidate(nil), s...), nil
}
