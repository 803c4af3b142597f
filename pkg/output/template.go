package output

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formnote/pkg/model"
)

var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*([\w-]+)((?:\s*\|[^{}]*)?)\s*\}\}`)
	pipePattern        = regexp.MustCompile(`\s*\|\s*`)
)

// maxCachedTemplates bounds the compile cache. A watch session that keeps
// editing templates starts over once the bound is reached.
const maxCachedTemplates = 256

var defaultTemplates = newTemplateEngine()

// templateEngine compiles note templates once per placeholder layout. Note
// templates never include other files, so the set gets an empty loader.
type templateEngine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func newTemplateEngine() *templateEngine {
	registerDefaultFilters()
	return &templateEngine{
		set:       pongo2.NewSet("formnote", pongo2.NewFSLoader(embed.FS{})),
		templates: make(map[string]*pongo2.Template),
	}
}

// render expands {{field}} placeholders with submission values. Only the
// placeholders are handed to pongo2: every span of text around them is passed
// in as a context value, so markdown that happens to look like template
// syntax ("{#id}", "{%", a lone "{{") is copied through untouched.
// Placeholders are mapped onto generated identifiers so field keys that are
// not valid template identifiers (for example "first-name") still resolve.
// Unknown placeholders render empty. Escaping is disabled because the output
// is markdown, not HTML.
func (e *templateEngine) render(source string, fields []model.Field, values map[string]any, transform func(string) string) (string, error) {
	if source == "" {
		return "", nil
	}

	idents := make(map[string]string, len(fields))
	ctx := pongo2.Context{}
	for i, field := range fields {
		ident := fmt.Sprintf("formnote_field_%d", i)
		idents[field.Key] = ident
		text := model.ScalarString(values[field.Key])
		if transform != nil {
			text = transform(text)
		}
		ctx[ident] = text
	}

	var layout strings.Builder
	layout.WriteString("{% autoescape off %}")
	literals := 0
	literal := func(text string) {
		if text == "" {
			return
		}
		name := fmt.Sprintf("formnote_text_%d", literals)
		literals++
		ctx[name] = text
		layout.WriteString("{{ " + name + " }}")
	}

	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(source, -1) {
		literal(source[last:loc[0]])
		last = loc[1]
		ident, ok := idents[source[loc[2]:loc[3]]]
		if !ok {
			continue
		}
		filters := strings.TrimSpace(source[loc[4]:loc[5]])
		layout.WriteString("{{ " + ident + pipePattern.ReplaceAllString(filters, "|") + " }}")
	}
	literal(source[last:])
	layout.WriteString("{% endautoescape %}")

	tpl, err := e.compile(layout.String())
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("output: execute template: %w", err)
	}
	return buf.String(), nil
}

func (e *templateEngine) compile(source string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tpl, ok := e.templates[source]; ok {
		e.mu.RUnlock()
		return tpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.templates[source]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("output: parse template: %w", err)
	}
	if len(e.templates) >= maxCachedTemplates {
		e.templates = make(map[string]*pongo2.Template)
	}
	e.templates[source] = tpl
	return tpl, nil
}

func (e *templateEngine) cached() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.templates)
}

func renderTemplate(source string, fields []model.Field, values map[string]any, transform func(string) string) (string, error) {
	return defaultTemplates.render(source, fields, values, transform)
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("segment") {
		_ = pongo2.RegisterFilter("segment", filterSegment)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterSegment makes a value safe to use as a single path segment.
func filterSegment(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(SanitizeSegment(in.String())), nil
}
