package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newShowCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <schema-id>",
		Short: "Print a resolved schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(cmd, nil)
			if err != nil {
				return err
			}
			schema, err := a.lookup(reg, args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "yaml", "":
				data, err = yaml.Marshal(schema)
			case "json":
				data, err = json.MarshalIndent(schema, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("formnote: unsupported format %q", format)
			}
			if err != nil {
				return fmt.Errorf("formnote: encode schema: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}
