package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/registry"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload schemas whenever vault notes change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry(cmd, nil)
			if err != nil {
				return err
			}
			reg.OnChange(func(schemas []model.Schema) {
				ids := make([]string, 0, len(schemas))
				for _, schema := range schemas {
					ids = append(ids, schema.ID)
				}
				a.logger.Info().Strs("ids", ids).Msg("schemas reloaded")
			})

			watcher, err := reg.Watch([]string{a.cfg.SchemasRoot()},
				registry.WithDebounce(a.cfg.Watch.Debounce),
				registry.WithExtensions(a.cfg.Vault.Extensions...),
			)
			if err != nil {
				return err
			}
			defer watcher.Stop()

			a.logger.Info().Str("root", a.cfg.SchemasRoot()).Int("schemas", reg.Len()).Msg("watching for schema changes")
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
}
