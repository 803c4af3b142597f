package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formnote/internal/config"
	"github.com/goliatone/go-formnote/pkg/builtin"
	"github.com/goliatone/go-formnote/pkg/diagnostics"
	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/registry"
	"github.com/goliatone/go-formnote/pkg/renderers/tui"
	"github.com/goliatone/go-formnote/pkg/vault"
)

// app carries the state shared by every sub-command.
type app struct {
	configFile string
	vaultDir   string
	verbose    bool

	cfg    *config.Config
	logger zerolog.Logger

	// driver replaces the terminal prompts; nil means survey.
	driver tui.PromptDriver
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formnote",
		Short: "Fill notes from form schemas declared in a vault",
		Long: `formnote discovers form schemas declared in the frontmatter of vault notes,
merges them with the built-in schemas and fills them interactively.

A schema note carries schema_id and schema_title in its frontmatter. Other
frontmatter keys become text fields; a fenced "fields" block in the body
declares typed fields.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is ./formnote.yaml)")
	root.PersistentFlags().StringVar(&a.vaultDir, "vault", "", "vault directory (overrides vault.dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newLintCommand(a),
		newFillCommand(a),
		newWatchCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.vaultDir != "" {
		cfg.Vault.Dir = a.vaultDir
	}
	a.cfg = cfg

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("formnote: logging level %q: %w", cfg.Logging.Level, err)
	}
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func (a *app) source() *vault.Source {
	return vault.Dir(a.cfg.SchemasRoot(), vault.WithExtensions(a.cfg.Vault.Extensions...))
}

func (a *app) builtins() []model.Schema {
	if !a.cfg.Builtins.Enabled {
		return nil
	}
	return builtin.Schemas()
}

// registry builds and loads a registry over the configured vault. Diagnostics
// go to the log and, when given, to extra.
func (a *app) registry(cmd *cobra.Command, extra diagnostics.Sink) (*registry.Registry, error) {
	sink := diagnostics.Sink(diagnostics.NewLogSink(a.logger))
	if extra != nil {
		sink = diagnostics.Fanout(sink, extra)
	}
	reg := registry.New(a.source(),
		registry.WithBuiltins(a.builtins()),
		registry.WithDiagnostics(sink),
		registry.WithLogger(a.logger),
	)
	if err := reg.Rescan(cmd.Context()); err != nil {
		return nil, err
	}
	return reg, nil
}

// lookup resolves a schema id or reports the known ids.
func (a *app) lookup(reg *registry.Registry, id string) (model.Schema, error) {
	schema, ok := reg.Get(id)
	if !ok {
		return model.Schema{}, fmt.Errorf("formnote: unknown schema %q (known: %v)", id, reg.IDs())
	}
	return schema, nil
}

// photoResolver maps vault-relative photo paths to files on disk.
func (a *app) photoResolver() form.Resolver {
	return form.ResolverFunc(func(raw string) string {
		if form.IsExternalURL(raw) || filepath.IsAbs(raw) {
			return raw
		}
		return filepath.Join(a.cfg.Vault.Dir, filepath.FromSlash(raw))
	})
}
