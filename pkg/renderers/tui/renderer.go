package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/frontmatter"
	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/output"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Renderer fills a form schema interactively, one prompt per field, feeding
// every answer through a form.Engine.
type Renderer struct {
	driver        PromptDriver
	out           io.Writer
	theme         Theme
	engineOptions []form.Option
}

// New constructs a TUI renderer with defaults (survey driver).
func New(options ...Option) *Renderer {
	r := &Renderer{
		theme: Theme{
			ErrorPrefix:   "!",
			RequiredMark:  "*",
			KeepCopyLabel: "Keep a local copy of the photo?",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Fill prompts for every field of schema, starting from initial, and returns
// the submission once all prompts were answered. Required fields are
// re-prompted until they hold a value.
func (r *Renderer) Fill(ctx context.Context, schema model.Schema, initial map[string]any) (form.Submission, error) {
	if ctx == nil {
		return form.Submission{}, errors.New("tui: context is required")
	}
	if !schema.Valid() {
		return form.Submission{}, fmt.Errorf("tui: schema %q is not fillable", schema.ID)
	}

	engine := form.New(schema, initial, r.engineOptions...)
	if schema.Title != "" {
		if err := r.driver.Info(ctx, r.info(output.PlainText(schema.Title))); err != nil {
			return form.Submission{}, err
		}
	}

	for _, field := range schema.Fields {
		if err := r.promptField(ctx, engine, field); err != nil {
			return form.Submission{}, fmt.Errorf("tui: field %q: %w", field.Key, err)
		}
	}

	if engine.ShowKeepLocalCopy() {
		keep, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.KeepCopyLabel,
			Default: engine.KeepLocalCopy(),
		})
		if err != nil {
			return form.Submission{}, fmt.Errorf("tui: keep local copy: %w", err)
		}
		engine.SetKeepLocalCopy(keep)
	}

	return engine.Submit(), nil
}

func (r *Renderer) promptField(ctx context.Context, engine *form.Engine, field model.Field) error {
	switch field.Type {
	case model.FieldTypeToggle:
		return r.promptToggle(ctx, engine, field)
	case model.FieldTypeDropdown:
		return r.promptDropdown(ctx, engine, field)
	case model.FieldTypeTextarea:
		return r.promptTextArea(ctx, engine, field)
	case model.FieldTypeNumber:
		return r.promptNumber(ctx, engine, field)
	case model.FieldTypeDate:
		return r.promptText(ctx, engine, field, validateDate)
	case model.FieldTypePhoto:
		if err := r.promptText(ctx, engine, field, nil); err != nil {
			return err
		}
		if preview, ok := engine.PhotoPreview(field.Key); ok {
			return r.driver.Info(ctx, r.info("Preview: "+preview))
		}
		return nil
	default:
		return r.promptText(ctx, engine, field, nil)
	}
}

func (r *Renderer) promptText(ctx context.Context, engine *form.Engine, field model.Field, check func(string) error) error {
	for {
		validate := answerValidator(field, check)
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   r.displayLabel(field),
			Default:   currentText(engine, field.Key),
			Help:      r.displayHelp(field),
			Validator: validate,
		})
		if err != nil {
			return err
		}
		if err := validate(response); err != nil {
			r.invalid(ctx, field, err.Error())
			continue
		}
		engine.OnFieldChange(field.Key, strings.TrimSpace(response))
		return nil
	}
}

func (r *Renderer) promptTextArea(ctx context.Context, engine *form.Engine, field model.Field) error {
	for {
		response, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: r.displayLabel(field),
			Default: currentText(engine, field.Key),
			Help:    r.displayHelp(field),
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(response) == "" && field.Required {
			r.invalid(ctx, field, "required")
			continue
		}
		engine.OnFieldChange(field.Key, response)
		return nil
	}
}

// promptNumber only hands the engine answers it will store as numbers, so a
// filled number field never ends up holding raw text.
func (r *Renderer) promptNumber(ctx context.Context, engine *form.Engine, field model.Field) error {
	return r.promptText(ctx, engine, field, validateNumber)
}

func (r *Renderer) promptToggle(ctx context.Context, engine *form.Engine, field model.Field) error {
	current, _ := engine.Value(field.Key)
	value, _ := current.(bool)
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.displayLabel(field),
		Default: value,
		Help:    r.displayHelp(field),
	})
	if err != nil {
		return err
	}
	engine.OnFieldChange(field.Key, answer)
	return nil
}

func (r *Renderer) promptDropdown(ctx context.Context, engine *form.Engine, field model.Field) error {
	options := engine.DropdownOptions(field.Key)
	if len(options) == 0 {
		return r.promptText(ctx, engine, field, nil)
	}
	current := currentText(engine, field.Key)
	defaultIndex := 0
	for i, option := range options {
		if option == current {
			defaultIndex = i
			break
		}
	}
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      r.displayLabel(field),
			Options:      options,
			DefaultIndex: defaultIndex,
			Help:         r.displayHelp(field),
			PageSize:     r.theme.PageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			r.invalid(ctx, field, "selection out of range")
			continue
		}
		engine.OnFieldChange(field.Key, options[idx])
		return nil
	}
}

func (r *Renderer) invalid(ctx context.Context, field model.Field, reason string) {
	msg := fmt.Sprintf("Invalid %s: %s", output.PlainText(field.Label), reason)
	if r.theme.ErrorPrefix != "" {
		msg = r.theme.ErrorPrefix + " " + msg
	}
	_ = r.driver.Info(ctx, msg)
}

func (r *Renderer) info(msg string) string {
	if r.theme.InfoPrefix == "" {
		return msg
	}
	return r.theme.InfoPrefix + " " + msg
}

func (r *Renderer) displayLabel(field model.Field) string {
	label := output.PlainText(field.Label)
	if label == "" {
		label = field.Key
	}
	if field.Required && r.theme.RequiredMark != "" {
		label += " " + r.theme.RequiredMark
	}
	return label
}

func (r *Renderer) displayHelp(field model.Field) string {
	if field.Description != "" {
		return output.PlainText(field.Description)
	}
	return output.PlainText(field.Placeholder)
}

func currentText(engine *form.Engine, key string) string {
	value, _ := engine.Value(key)
	return model.ScalarString(value)
}

func answerValidator(field model.Field, check func(string) error) func(string) error {
	return func(response string) error {
		trimmed := strings.TrimSpace(response)
		if trimmed == "" {
			if field.Required {
				return errors.New("required")
			}
			return nil
		}
		if check != nil {
			return check(trimmed)
		}
		return nil
	}
}

func validateNumber(value string) error {
	if _, ok := frontmatter.ParseNumber(value); !ok {
		return errors.New("not a number")
	}
	return nil
}

func validateDate(value string) error {
	if !datePattern.MatchString(value) {
		return errors.New("expected YYYY-MM-DD")
	}
	return nil
}
