package model

// FieldType is the closed set of input kinds a schema field can declare.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeDate     FieldType = "date"
	FieldTypeToggle   FieldType = "toggle"
	FieldTypeNumber   FieldType = "number"
	FieldTypePhoto    FieldType = "photo"
)

// Layout hints how a host UI should size a field.
type Layout string

const (
	LayoutFullWidth Layout = "full-width"
	LayoutHalfWidth Layout = "half-width"
	LayoutInline    Layout = "inline"
)

// Field describes a single form input. Default holds a scalar: string, bool or
// float64. Options is only meaningful for dropdown fields.
type Field struct {
	Key         string    `json:"key" yaml:"key"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Layout      Layout    `json:"layout,omitempty" yaml:"layout,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Output carries note emission settings.
type Output struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Schema is the complete form definition consumed by the form engine.
type Schema struct {
	ID           string  `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	CSSClass     string  `json:"cssClass,omitempty" yaml:"cssClass,omitempty"`
	Fields       []Field `json:"fields" yaml:"fields"`
	SubmitLabel  string  `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	Output       *Output `json:"output,omitempty" yaml:"output,omitempty"`
	BodyTemplate string  `json:"bodyTemplate,omitempty" yaml:"bodyTemplate,omitempty"`
}

// OutputPath returns the declared output path template, if any.
func (s Schema) OutputPath() string {
	if s.Output == nil {
		return ""
	}
	return s.Output.Path
}

// Field looks up a field by key.
func (s Schema) Field(key string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// HasFieldType reports whether any field uses the supplied type.
func (s Schema) HasFieldType(kind FieldType) bool {
	for _, field := range s.Fields {
		if field.Type == kind {
			return true
		}
	}
	return false
}
