package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-formnote/pkg/registry"
)

// Option configures a Source.
type Option func(*Source)

// WithRoot limits the scan to a sub-directory of the filesystem.
func WithRoot(root string) Option {
	return func(s *Source) {
		root = strings.Trim(path.Clean(strings.TrimSpace(root)), "/")
		if root == "" {
			root = "."
		}
		s.root = root
	}
}

// WithExtensions overrides the default ".md" candidate extension.
func WithExtensions(exts ...string) Option {
	return func(s *Source) {
		if len(exts) == 0 {
			return
		}
		s.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[ext] = struct{}{}
		}
	}
}

// Source reads candidate schema notes from an fs.FS. Hidden directories are
// skipped and candidates are returned sorted by path so duplicate-id
// resolution is deterministic.
type Source struct {
	fsys       fs.FS
	root       string
	extensions map[string]struct{}
}

var _ registry.Source = (*Source)(nil)

// New returns a Source over fsys.
func New(fsys fs.FS, options ...Option) *Source {
	s := &Source{
		fsys:       fsys,
		root:       ".",
		extensions: map[string]struct{}{".md": {}},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Dir returns a Source over a directory on disk.
func Dir(dir string, options ...Option) *Source {
	return New(os.DirFS(dir), options...)
}

// Candidates walks the filesystem and reads every matching file.
func (s *Source) Candidates(ctx context.Context) ([]registry.Candidate, error) {
	if s == nil || s.fsys == nil {
		return nil, fmt.Errorf("vault: filesystem is required")
	}

	var names []string
	err := fs.WalkDir(s.fsys, s.root, func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			if name != s.root && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if _, ok := s.extensions[strings.ToLower(path.Ext(name))]; ok {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault: walk %s: %w", s.root, err)
	}
	sort.Strings(names)

	candidates := make([]registry.Candidate, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("vault: read %s: %w", name, err)
		}
		candidates = append(candidates, registry.Candidate{Name: name, Content: string(data)})
	}
	return candidates, nil
}

// ReadText implements the file-text-read capability: it returns the content
// of name, or false when the file does not exist.
func (s *Source) ReadText(name string) (string, bool, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("vault: read %s: %w", name, err)
	}
	return string(data), true, nil
}
