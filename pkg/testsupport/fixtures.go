package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/schemafile"
)

// MustReadNote reads a note fixture as text.
func MustReadNote(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// MustParseSchema reads a note fixture and parses it, failing the test unless
// the note is a valid schema.
func MustParseSchema(t *testing.T, path string, options ...schemafile.Option) pkgmodel.Schema {
	t.Helper()

	content := MustReadNote(t, path)
	result := schemafile.New(options...).Parse(content, filepath.Base(path))
	schema, ok := result.Schema()
	if !ok {
		t.Fatalf("parse %s: %s (%s)", path, result.Status, result.Reason)
	}
	return schema
}

// MustLoadSchema loads a JSON golden file into a Schema.
func MustLoadSchema(t *testing.T, path string) pkgmodel.Schema {
	t.Helper()

	schema, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return schema
}

// LoadSchema reads a JSON fixture into a Schema, returning an error for
// callers managing setup outside of *testing.T.
func LoadSchema(path string) (pkgmodel.Schema, error) {
	if path == "" {
		return pkgmodel.Schema{}, errors.New("testsupport: schema path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.Schema{}, fmt.Errorf("testsupport: read schema: %w", err)
	}
	var out pkgmodel.Schema
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.Schema{}, fmt.Errorf("testsupport: unmarshal schema: %w", err)
	}
	return out, nil
}

// NoteFS builds an in-memory vault from name/content pairs.
func NoteFS(notes map[string]string) fstest.MapFS {
	fsys := make(fstest.MapFS, len(notes))
	for name, content := range notes {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}
