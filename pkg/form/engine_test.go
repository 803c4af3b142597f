package form_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formnote/pkg/form"
	"github.com/goliatone/go-formnote/pkg/model"
	"github.com/goliatone/go-formnote/pkg/output"
)

var personSchema = model.Schema{
	ID:    "new-person",
	Title: "New Person",
	Fields: []model.Field{
		{Key: "name", Type: model.FieldTypeText, Label: "Name", Required: true},
		{Key: "bio", Type: model.FieldTypeTextarea, Label: "Bio"},
		{Key: "frequency", Type: model.FieldTypeDropdown, Label: "Frequency", Options: []string{"Weekly", "Monthly"}, Default: "Monthly"},
		{Key: "met_on", Type: model.FieldTypeDate, Label: "Met on"},
		{Key: "favourite", Type: model.FieldTypeToggle, Label: "Favourite"},
		{Key: "age", Type: model.FieldTypeNumber, Label: "Age"},
		{Key: "photo", Type: model.FieldTypePhoto, Label: "Photo"},
	},
}

func TestBuildInitialState_Defaults(t *testing.T) {
	got := form.BuildInitialState(personSchema.Fields, nil)
	want := map[string]any{
		"name":      "",
		"bio":       "",
		"frequency": "Monthly",
		"met_on":    "",
		"favourite": false,
		"age":       "",
		"photo":     "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInitialState_InitialValuesOverride(t *testing.T) {
	got := form.BuildInitialState(personSchema.Fields, map[string]any{
		"frequency": "Weekly",
		"favourite": true,
		"unknown":   "ignored",
	})
	if got["frequency"] != "Weekly" || got["favourite"] != true {
		t.Fatalf("initial values not applied: %#v", got)
	}
	if _, ok := got["unknown"]; ok {
		t.Fatalf("unknown initial keys must not enter state")
	}
	if len(got) != len(personSchema.Fields) {
		t.Fatalf("expected one entry per field, got %d", len(got))
	}
}

func TestEngine_OnFieldChange(t *testing.T) {
	engine := form.New(personSchema, nil)

	if !engine.OnFieldChange("name", "Ada") {
		t.Fatalf("expected known key to be accepted")
	}
	if engine.OnFieldChange("nope", "x") {
		t.Fatalf("expected unknown key to be rejected")
	}

	cases := []struct {
		input any
		want  any
	}{
		{input: "", want: ""},
		{input: "  ", want: ""},
		{input: "36", want: float64(36)},
		{input: "2.5", want: 2.5},
		{input: "abc", want: "abc"},
		{input: "-1.5e3", want: -1500.0},
		{input: "NaN", want: "NaN"},
		{input: "Inf", want: "Inf"},
		{input: "-Infinity", want: "-Infinity"},
		{input: "0x1p4", want: "0x1p4"},
		{input: "1e999", want: "1e999"},
		{input: float64(7), want: float64(7)},
	}
	for _, tc := range cases {
		engine.OnFieldChange("age", tc.input)
		got, _ := engine.Value("age")
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("number coercion for %#v mismatch (-want +got):\n%s", tc.input, diff)
		}
	}

	engine.OnFieldChange("name", "42")
	if got, _ := engine.Value("name"); got != "42" {
		t.Fatalf("text fields must not be coerced, got %#v", got)
	}
}

func TestEngine_NonDecimalNumbersStayExportable(t *testing.T) {
	for _, input := range []string{"NaN", "Inf", "0x1p4"} {
		engine := form.New(personSchema, nil)
		engine.OnFieldChange("age", input)

		data, err := output.JSON(engine.Submit())
		if err != nil {
			t.Fatalf("JSON after age=%q: %v", input, err)
		}
		if !strings.Contains(string(data), `"age": "`+input+`"`) {
			t.Fatalf("expected raw text for age=%q, got %s", input, data)
		}
	}
}

func TestEngine_SetStrict(t *testing.T) {
	engine := form.New(personSchema, nil)
	if err := engine.SetStrict("missing", 1); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := engine.SetStrict("favourite", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEngine_DropdownKeepsOutOfBandValue(t *testing.T) {
	engine := form.New(personSchema, map[string]any{"frequency": "Yearly"})
	want := []string{"Weekly", "Monthly", "Yearly"}
	if diff := cmp.Diff(want, engine.DropdownOptions("frequency")); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	engine.OnFieldChange("frequency", "Weekly")
	if diff := cmp.Diff([]string{"Weekly", "Monthly"}, engine.DropdownOptions("frequency")); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if engine.DropdownOptions("name") != nil {
		t.Fatalf("non-dropdown fields have no options")
	}
}

func TestEngine_PhotoAndKeepLocalCopy(t *testing.T) {
	resolver := form.ResolverFunc(func(raw string) string { return "app://vault/" + raw })
	engine := form.New(personSchema, nil, form.WithResolver(resolver))

	if _, ok := engine.PhotoPreview("photo"); ok {
		t.Fatalf("empty photo should have no preview")
	}
	if engine.ShowKeepLocalCopy() {
		t.Fatalf("toggle must be hidden without an external URL")
	}

	engine.OnFieldChange("photo", "attachments/ada.png")
	if got, _ := engine.PhotoPreview("photo"); got != "app://vault/attachments/ada.png" {
		t.Fatalf("preview mismatch: %q", got)
	}
	if engine.ShowKeepLocalCopy() {
		t.Fatalf("toggle must be hidden for local paths")
	}

	engine.OnFieldChange("photo", "https://example.com/ada.png")
	if !engine.ShowKeepLocalCopy() {
		t.Fatalf("toggle should show for external URLs")
	}
	engine.SetKeepLocalCopy(true)

	submission := engine.Submit()
	if submission.KeepLocalCopy == nil || !*submission.KeepLocalCopy {
		t.Fatalf("expected keep-local-copy flag in submission")
	}
	if _, ok := submission.Values[form.KeepLocalCopyKey]; ok {
		t.Fatalf("flag must not be mixed into field values")
	}
	if len(submission.Values) != len(personSchema.Fields) {
		t.Fatalf("expected one value per field, got %d", len(submission.Values))
	}
	flat := submission.Map()
	if flat[form.KeepLocalCopyKey] != true {
		t.Fatalf("expected flag under %q in flattened map: %#v", form.KeepLocalCopyKey, flat)
	}
}

func TestSubmission_LocalCopyKeyAvoidsCollisions(t *testing.T) {
	keep := false
	submission := form.Submission{
		Values:        map[string]any{form.KeepLocalCopyKey: "field value"},
		KeepLocalCopy: &keep,
	}
	key := submission.LocalCopyKey()
	if key == form.KeepLocalCopyKey {
		t.Fatalf("expected a different key when the default collides")
	}
	flat := submission.Map()
	if flat[form.KeepLocalCopyKey] != "field value" || flat[key] != false {
		t.Fatalf("unexpected flattened map: %#v", flat)
	}
}

func TestEngine_SubmitWithoutPhoto(t *testing.T) {
	schema := model.Schema{ID: "s", Title: "S", Fields: []model.Field{{Key: "a", Type: model.FieldTypeText, Label: "A"}}}
	engine := form.New(schema, map[string]any{"a": "x"})
	submission := engine.Submit()
	if submission.KeepLocalCopy != nil {
		t.Fatalf("flag must be absent without photo fields")
	}
	if _, ok := submission.Map()[form.KeepLocalCopyKey]; ok {
		t.Fatalf("flattened map must not carry the flag")
	}
	if submission.SchemaID != "s" || submission.String("a") != "x" || submission.String("zzz") != "" {
		t.Fatalf("unexpected submission: %#v", submission)
	}
}

func TestEngine_SubmitIsSnapshot(t *testing.T) {
	engine := form.New(personSchema, nil)
	engine.OnFieldChange("name", "Ada")
	submission := engine.Submit()
	engine.OnFieldChange("name", "Grace")
	if submission.Values["name"] != "Ada" {
		t.Fatalf("submission must not track later edits: %#v", submission.Values["name"])
	}
}

func TestEngine_MissingRequiredIsAdvisory(t *testing.T) {
	engine := form.New(personSchema, nil)
	if diff := cmp.Diff([]string{"name"}, engine.MissingRequired()); diff != "" {
		t.Fatalf("missing required mismatch (-want +got):\n%s", diff)
	}
	submission := engine.Submit()
	if submission.Values["name"] != "" {
		t.Fatalf("submit should still succeed with empty required values")
	}
	engine.OnFieldChange("name", "Ada")
	if got := engine.MissingRequired(); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}
}

func TestIsExternalURL(t *testing.T) {
	for value, want := range map[string]bool{
		"https://example.com/a.png": true,
		"HTTP://EXAMPLE.COM":        true,
		"ftp://example.com":         false,
		"attachments/a.png":         false,
		"https://":                  false,
		"":                          false,
	} {
		if got := form.IsExternalURL(value); got != want {
			t.Errorf("IsExternalURL(%q) = %v, want %v", value, got, want)
		}
	}
}
