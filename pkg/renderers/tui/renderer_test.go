package tui_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/renderers/tui"
)

// scriptedDriver answers prompts from a queue, keyed by prompt kind.
type scriptedDriver struct {
	inputs    []string
	texts     []string
	confirms  []bool
	selects   []int
	infos     []string
	messages  []string
	defaults  map[string]string
	selectOpt map[string][]string
	checks    map[string]func(string) error
	fail      error
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.record(cfg.Message, cfg.Default)
	if d.checks == nil {
		d.checks = map[string]func(string) error{}
	}
	d.checks[cfg.Message] = cfg.Validator
	if d.fail != nil {
		return "", d.fail
	}
	if len(d.inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	d.record(cfg.Message, fmt.Sprint(cfg.Default))
	if len(d.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", cfg.Message)
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.record(cfg.Message, fmt.Sprint(cfg.DefaultIndex))
	if d.selectOpt == nil {
		d.selectOpt = map[string][]string{}
	}
	d.selectOpt[cfg.Message] = cfg.Options
	if len(d.selects) == 0 {
		return 0, fmt.Errorf("unexpected select prompt %q", cfg.Message)
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	d.record(cfg.Message, cfg.Default)
	if len(d.texts) == 0 {
		return "", fmt.Errorf("unexpected textarea prompt %q", cfg.Message)
	}
	answer := d.texts[0]
	d.texts = d.texts[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func (d *scriptedDriver) record(message, def string) {
	if d.defaults == nil {
		d.defaults = map[string]string{}
	}
	d.messages = append(d.messages, message)
	d.defaults[message] = def
}

var contactSchema = model.Schema{
	ID:    "contact",
	Title: "Contact",
	Fields: []model.Field{
		{Key: "name", Type: model.FieldTypeText, Label: "Name", Required: true},
		{Key: "notes", Type: model.FieldTypeTextarea, Label: "Notes"},
		{Key: "frequency", Type: model.FieldTypeDropdown, Label: "Frequency", Options: []string{"Weekly", "Monthly"}, Default: "Monthly"},
		{Key: "met_on", Type: model.FieldTypeDate, Label: "Met on"},
		{Key: "favourite", Type: model.FieldTypeToggle, Label: "Favourite"},
		{Key: "age", Type: model.FieldTypeNumber, Label: "Age"},
		{Key: "photo", Type: model.FieldTypePhoto, Label: "Photo"},
	},
}

func TestRenderer_FillCollectsEveryFieldType(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"Ada", "2024-03-01", "36", "https://example.com/ada.png"},
		texts:    []string{"Met at the conference"},
		selects:  []int{0},
		confirms: []bool{true, true},
	}
	renderer := tui.New(tui.WithPromptDriver(driver))

	got, err := renderer.Fill(context.Background(), contactSchema, nil)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	keep := true
	want := form.Submission{
		SchemaID: "contact",
		Values: map[string]any{
			"name":      "Ada",
			"notes":     "Met at the conference",
			"frequency": "Weekly",
			"met_on":    "2024-03-01",
			"favourite": true,
			"age":       float64(36),
			"photo":     "https://example.com/ada.png",
		},
		KeepLocalCopy: &keep,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}
	if driver.defaults["Frequency"] != "1" {
		t.Fatalf("expected dropdown default index 1 (Monthly), got %q", driver.defaults["Frequency"])
	}
	if driver.defaults["Name *"] != "" {
		t.Fatalf("expected empty default for name, got %q", driver.defaults["Name *"])
	}
}

func TestRenderer_RequiredFieldIsReprompted(t *testing.T) {
	schema := model.Schema{
		ID:    "req",
		Title: "Required",
		Fields: []model.Field{
			{Key: "name", Type: model.FieldTypeText, Label: "Name", Required: true},
		},
	}
	driver := &scriptedDriver{inputs: []string{"   ", "Grace"}}
	renderer := tui.New(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{ErrorPrefix: "!"}))

	got, err := renderer.Fill(context.Background(), schema, nil)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got.Values["name"] != "Grace" {
		t.Fatalf("expected Grace, got %v", got.Values["name"])
	}
	wantInfos := []string{"Required", "! Invalid Name: required"}
	if diff := cmp.Diff(wantInfos, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
	if got.KeepLocalCopy != nil {
		t.Fatalf("expected no keep-local-copy flag without photo fields")
	}
}

func TestRenderer_NumberAndDateValidation(t *testing.T) {
	schema := model.Schema{
		ID:    "checks",
		Title: "Checks",
		Fields: []model.Field{
			{Key: "age", Type: model.FieldTypeNumber, Label: "Age"},
			{Key: "when", Type: model.FieldTypeDate, Label: "When"},
		},
	}
	driver := &scriptedDriver{inputs: []string{"abc", "", "tomorrow", "2024-01-31"}}
	renderer := tui.New(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{}))

	got, err := renderer.Fill(context.Background(), schema, nil)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := map[string]any{"age": "", "when": "2024-01-31"}
	if diff := cmp.Diff(want, got.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantInfos := []string{"Checks", "Invalid Age: not a number", "Invalid When: expected YYYY-MM-DD"}
	if diff := cmp.Diff(wantInfos, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_NumberRejectsNonDecimalInput(t *testing.T) {
	schema := model.Schema{
		ID:     "checks",
		Title:  "Checks",
		Fields: []model.Field{{Key: "age", Type: model.FieldTypeNumber, Label: "Age", Required: true}},
	}
	driver := &scriptedDriver{inputs: []string{"NaN", "Inf", "0x1p4", "42"}}
	renderer := tui.New(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{}))

	got, err := renderer.Fill(context.Background(), schema, nil)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"age": float64(42)}, got.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantInfos := []string{
		"Checks",
		"Invalid Age: not a number",
		"Invalid Age: not a number",
		"Invalid Age: not a number",
	}
	if diff := cmp.Diff(wantInfos, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}

	check := driver.checks["Age"]
	if check == nil {
		t.Fatalf("expected the number prompt to carry a validator")
	}
	for _, answer := range []string{"NaN", "-Inf", "0x1p4", ""} {
		if check(answer) == nil {
			t.Fatalf("validator accepted %q", answer)
		}
	}
	if err := check(" 1.5e2 "); err != nil {
		t.Fatalf("validator rejected a decimal: %v", err)
	}
}

func TestRenderer_DateValidatorIsWired(t *testing.T) {
	schema := model.Schema{
		ID:     "checks",
		Title:  "Checks",
		Fields: []model.Field{{Key: "when", Type: model.FieldTypeDate, Label: "When"}},
	}
	driver := &scriptedDriver{inputs: []string{""}}
	renderer := tui.New(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{}))

	if _, err := renderer.Fill(context.Background(), schema, nil); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	check := driver.checks["When"]
	if check == nil {
		t.Fatalf("expected the date prompt to carry a validator")
	}
	if check("31/01/2024") == nil {
		t.Fatalf("validator accepted a non ISO date")
	}
	if err := check(""); err != nil {
		t.Fatalf("optional date rejected empty answer: %v", err)
	}
}

func TestRenderer_DropdownKeepsOutOfBandValue(t *testing.T) {
	schema := model.Schema{
		ID:    "dd",
		Title: "Dropdown",
		Fields: []model.Field{
			{Key: "channel", Type: model.FieldTypeDropdown, Label: "Channel", Options: []string{"Email", "Phone"}},
		},
	}
	driver := &scriptedDriver{selects: []int{2}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	got, err := renderer.Fill(context.Background(), schema, map[string]any{"channel": "Carrier pigeon"})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if diff := cmp.Diff([]string{"Email", "Phone", "Carrier pigeon"}, driver.selectOpt["Channel"]); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if got.Values["channel"] != "Carrier pigeon" {
		t.Fatalf("expected out-of-band value to survive, got %v", got.Values["channel"])
	}
}

func TestRenderer_PhotoPreviewUsesResolver(t *testing.T) {
	schema := model.Schema{
		ID:    "pic",
		Title: "Picture",
		Fields: []model.Field{
			{Key: "photo", Type: model.FieldTypePhoto, Label: "Photo"},
		},
	}
	driver := &scriptedDriver{inputs: []string{"attachments/ada.png"}}
	resolver := form.ResolverFunc(func(raw string) string { return "vault://" + raw })
	renderer := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithEngineOptions(form.WithResolver(resolver)),
	)

	got, err := renderer.Fill(context.Background(), schema, nil)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	wantInfos := []string{"Picture", "Preview: vault://attachments/ada.png"}
	if diff := cmp.Diff(wantInfos, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
	if got.KeepLocalCopy == nil || *got.KeepLocalCopy {
		t.Fatalf("expected keep-local-copy false for a local photo, got %v", got.KeepLocalCopy)
	}
}

func TestRenderer_AbortPropagates(t *testing.T) {
	driver := &scriptedDriver{fail: tui.ErrAborted}
	renderer := tui.New(tui.WithPromptDriver(driver))

	_, err := renderer.Fill(context.Background(), contactSchema, nil)
	if !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRenderer_RejectsInvalidSchema(t *testing.T) {
	renderer := tui.New(tui.WithPromptDriver(&scriptedDriver{}))
	if _, err := renderer.Fill(context.Background(), model.Schema{ID: "x"}, nil); err == nil {
		t.Fatalf("expected error for schema without title and fields")
	}
}
