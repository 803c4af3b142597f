package model

import internalmodel "github.com/goliatone/go-formnote/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeDropdown = internalmodel.FieldTypeDropdown
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeToggle   = internalmodel.FieldTypeToggle
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypePhoto    = internalmodel.FieldTypePhoto
)

// Layout re-exports the internal Layout enumeration.
type Layout = internalmodel.Layout

const (
	LayoutFullWidth = internalmodel.LayoutFullWidth
	LayoutHalfWidth = internalmodel.LayoutHalfWidth
	LayoutInline    = internalmodel.LayoutInline
)

type Field = internalmodel.Field
type Schema = internalmodel.Schema
type Output = internalmodel.Output

// FieldTypes returns every supported field type.
func FieldTypes() []FieldType {
	return internalmodel.FieldTypes()
}

// Labeler converts a key into a human label.
func Labeler(key string) string {
	return internalmodel.DefaultLabeler(key)
}

// ScalarString renders a scalar value as text.
func ScalarString(value any) string {
	return internalmodel.ScalarString(value)
}

// IsEmptyScalar reports whether value is nil or "".
func IsEmptyScalar(value any) bool {
	return internalmodel.IsEmptyScalar(value)
}
