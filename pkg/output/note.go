package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/model"
)

// ErrNoteExists is returned by Write when the target file already exists.
var ErrNoteExists = errors.New("output: note already exists")

// Note is a rendered markdown file ready to be written into a vault.
type Note struct {
	Path    string
	Content string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDefaultDir sets the folder used when a schema declares no output path.
func WithDefaultDir(dir string) Option {
	return func(r *Renderer) {
		r.defaultDir = strings.Trim(path.Clean("/"+filepath.ToSlash(strings.TrimSpace(dir))), "/")
	}
}

// Renderer turns submissions into notes.
type Renderer struct {
	defaultDir string
}

// New constructs a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render builds the note path and content for submission.
func (r *Renderer) Render(schema model.Schema, submission form.Submission) (Note, error) {
	notePath, err := r.Path(schema, submission)
	if err != nil {
		return Note{}, err
	}
	header, err := Frontmatter(schema, submission)
	if err != nil {
		return Note{}, err
	}
	body, err := Body(schema, submission)
	if err != nil {
		return Note{}, err
	}

	var content strings.Builder
	content.WriteString(header)
	if body != "" {
		content.WriteString("\n")
		content.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			content.WriteString("\n")
		}
	}
	return Note{Path: notePath, Content: content.String()}, nil
}

// Path renders the schema's output path. Values are sanitized per segment so
// user input cannot introduce directories. Without an output path the note
// is named after the schema title and the first non-empty value.
func (r *Renderer) Path(schema model.Schema, submission form.Submission) (string, error) {
	source := schema.OutputPath()
	if strings.TrimSpace(source) == "" {
		return r.fallbackPath(schema, submission), nil
	}

	rendered, err := renderTemplate(source, schema.Fields, submission.Values, SanitizeSegment)
	if err != nil {
		return "", err
	}

	var segments []string
	for _, segment := range strings.Split(filepath.ToSlash(rendered), "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" || segment == "." || segment == ".." {
			continue
		}
		segments = append(segments, segment)
	}
	if len(segments) == 0 {
		return r.fallbackPath(schema, submission), nil
	}
	last := len(segments) - 1
	if strings.TrimSuffix(segments[last], ".md") == "" {
		segments[last] = SanitizeSegment(schema.Title) + ".md"
	}
	return ensureExtension(path.Join(segments...)), nil
}

func (r *Renderer) fallbackPath(schema model.Schema, submission form.Submission) string {
	name := SanitizeSegment(schema.Title)
	for _, field := range schema.Fields {
		if field.Type == model.FieldTypeToggle {
			continue
		}
		if value := SanitizeSegment(model.ScalarString(submission.Values[field.Key])); value != "" {
			name = strings.TrimSpace(name + " " + value)
			break
		}
	}
	if name == "" {
		name = SanitizeSegment(schema.ID)
	}
	return ensureExtension(path.Join(r.defaultDir, name))
}

func ensureExtension(name string) string {
	if strings.EqualFold(path.Ext(name), ".md") {
		return name
	}
	return name + ".md"
}

// Body renders the schema's body template.
func Body(schema model.Schema, submission form.Submission) (string, error) {
	return renderTemplate(schema.BodyTemplate, schema.Fields, submission.Values, nil)
}

// Frontmatter encodes the submission values as a "---" delimited YAML block
// in schema field order. Empty values are kept so the note records every
// field.
func Frontmatter(schema model.Schema, submission form.Submission) (string, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range schema.Fields {
		value, ok := submission.Values[field.Key]
		if !ok {
			continue
		}
		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return "", fmt.Errorf("output: encode %s: %w", field.Key, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key},
			&valueNode,
		)
	}

	var builder strings.Builder
	builder.WriteString("---\n")
	if len(mapping.Content) > 0 {
		data, err := yaml.Marshal(mapping)
		if err != nil {
			return "", fmt.Errorf("output: marshal frontmatter: %w", err)
		}
		builder.Write(data)
	}
	builder.WriteString("---\n")
	return builder.String(), nil
}

type jsonSubmission struct {
	Schema        string         `json:"schema"`
	Values        map[string]any `json:"values"`
	KeepLocalCopy *bool          `json:"keepLocalCopy,omitempty"`
}

// JSON encodes the submission for machine consumers.
func JSON(submission form.Submission) ([]byte, error) {
	payload := jsonSubmission{
		Schema:        submission.SchemaID,
		Values:        submission.Values,
		KeepLocalCopy: submission.KeepLocalCopy,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("output: marshal json: %w", err)
	}
	return data, nil
}

// Write creates the note under root, creating parent folders. Existing notes
// are never overwritten.
func (n Note) Write(root string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(n.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("output: create folder: %w", err)
	}
	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrNoteExists, n.Path)
		}
		return "", fmt.Errorf("output: create note: %w", err)
	}
	if _, err := file.WriteString(n.Content); err != nil {
		file.Close()
		return "", fmt.Errorf("output: write note: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("output: close note: %w", err)
	}
	return target, nil
}
