package model

import "strings"

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeTextarea,
	FieldTypeDropdown,
	FieldTypeDate,
	FieldTypeToggle,
	FieldTypeNumber,
	FieldTypePhoto,
}

// FieldTypes returns the closed set of field types in declaration order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// Valid reports whether t belongs to the closed field type set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeDropdown, FieldTypeDate,
		FieldTypeToggle, FieldTypeNumber, FieldTypePhoto:
		return true
	default:
		return false
	}
}

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool {
	switch l {
	case LayoutFullWidth, LayoutHalfWidth, LayoutInline:
		return true
	default:
		return false
	}
}

// Valid reports whether the field carries the minimum metadata a form needs.
func (f Field) Valid() bool {
	return strings.TrimSpace(f.Key) != "" && f.Type.Valid() && strings.TrimSpace(f.Label) != ""
}

// Valid reports whether the schema can enter a registry: it needs an id, a
// title, at least one field, valid fields, and unique field keys.
func (s Schema) Valid() bool {
	if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Title) == "" {
		return false
	}
	if len(s.Fields) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, field := range s.Fields {
		if !field.Valid() {
			return false
		}
		if _, dup := seen[field.Key]; dup {
			return false
		}
		seen[field.Key] = struct{}{}
	}
	return true
}
