package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/output"
	"github.com/goliatone/go-formnote/pkg/renderers/tui"
	"github.com/goliatone/go-formnote/pkg/validation"
)

type fillOptions struct {
	set    []string
	json   bool
	dryRun bool
}

func newFillCommand(a *app) *cobra.Command {
	var opts fillOptions
	cmd := &cobra.Command{
		Use:   "fill <schema-id>",
		Short: "Fill a form interactively and write the resulting note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFill(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "prefill a field, key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the submission as JSON instead of writing a note")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the note instead of writing it")
	return cmd
}

func (a *app) runFill(cmd *cobra.Command, id string, opts fillOptions) error {
	reg, err := a.registry(cmd, nil)
	if err != nil {
		return err
	}
	schema, err := a.lookup(reg, id)
	if err != nil {
		return err
	}
	initial, err := parseAssignments(opts.set)
	if err != nil {
		return err
	}

	renderer := tui.New(
		tui.WithPromptDriver(a.driver),
		tui.WithOutput(cmd.OutOrStdout()),
		tui.WithEngineOptions(form.WithResolver(a.photoResolver())),
	)
	submission, err := renderer.Fill(cmd.Context(), schema, initial)
	if err != nil {
		return err
	}

	for _, issue := range validation.ValidateSubmission(schema, submission.Values).Issues {
		a.logger.Warn().Str("field", issue.Field).Msg(issue.Message)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		data, err := output.JSON(submission)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	note, err := output.New(output.WithDefaultDir(a.cfg.Output.Dir)).Render(schema, submission)
	if err != nil {
		return err
	}
	if opts.dryRun {
		_, err = fmt.Fprintf(out, "# %s\n%s", note.Path, note.Content)
		return err
	}
	written, err := note.Write(a.cfg.Vault.Dir)
	if err != nil {
		return err
	}
	a.logger.Info().Str("schema", schema.ID).Str("path", written).Msg("note created")
	_, err = fmt.Fprintf(out, "created %s\n", note.Path)
	return err
}

// parseAssignments turns key=value flags into initial values.
func parseAssignments(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("formnote: --set expects key=value, got %q", pair)
		}
		values[key] = value
	}
	return values, nil
}
