package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formnote/pkg/diagnostics"
	"github.com/goliatone/go-formnote/pkg/schemafile"
)

var errLintProblems = errors.New("formnote: lint found problems")

func newLintCommand(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check schema notes and report skipped or conflicting schemas",
		Long: `lint classifies every candidate note in the vault and prints the
diagnostics the registry would emit: schemas missing a title and schema ids
that collide with a built-in or an earlier note. It exits non-zero when any
problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			candidates, err := a.source().Candidates(cmd.Context())
			if err != nil {
				return err
			}

			parser := schemafile.New(schemafile.WithLogger(a.logger))
			for _, candidate := range candidates {
				result := parser.Parse(candidate.Content, candidate.Name)
				switch result.Status {
				case schemafile.StatusValid:
					schema, _ := result.Schema()
					fmt.Fprintf(out, "%s: %s %q (%d fields)\n", candidate.Name, result.Status, schema.ID, len(schema.Fields))
				case schemafile.StatusNotApplicable:
					if all {
						fmt.Fprintf(out, "%s: %s (%s)\n", candidate.Name, result.Status, result.Reason)
					}
				}
			}

			var problems diagnostics.Collector
			reg, err := a.registry(cmd, &problems)
			if err != nil {
				return err
			}
			for _, message := range problems.Messages() {
				fmt.Fprintf(out, "problem: %s\n", message)
			}
			fmt.Fprintf(out, "%d schemas, %d problems\n", reg.Len(), len(problems.Messages()))
			if len(problems.Messages()) > 0 {
				return fmt.Errorf("%w: %d", errLintProblems, len(problems.Messages()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also list notes that are not schemas")
	return cmd
}
