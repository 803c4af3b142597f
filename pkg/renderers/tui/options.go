package tui

import (
	"io"

	"github.com/goliatone/go-formnote/pkg/form"
)

// Theme captures optional prefixes the renderer applies to informational and
// error messages.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	RequiredMark  string
	PageSize      int
	KeepCopyLabel string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput directs the default survey driver's informational output.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithEngineOptions forwards options to the form engine of each session,
// e.g. a photo resolver.
func WithEngineOptions(opts ...form.Option) Option {
	return func(r *Renderer) {
		r.engineOptions = append(r.engineOptions, opts...)
	}
}
