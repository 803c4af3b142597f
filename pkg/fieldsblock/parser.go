package fieldsblock

import (
	"strings"

	"github.com/goliatone/go-formnote/pkg/frontmatter"
	"github.com/goliatone/go-formnote/pkg/model"
)

const itemMarker = "- key:"

// Parse decodes the body of a fields block into field definitions, in
// declaration order. Items missing key, type or label, or declaring a type
// outside the supported set, are dropped without affecting their siblings.
func Parse(fieldsText string) []model.Field {
	var fields []model.Field
	for _, item := range splitItems(fieldsText) {
		field, ok := decodeItem(item)
		if !ok {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// splitItems groups lines into items. A new item starts at every line whose
// first non-blank text is "- key:"; lines before the first item are ignored.
func splitItems(text string) [][]string {
	var (
		items   [][]string
		current []string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), itemMarker) {
			if current != nil {
				items = append(items, current)
			}
			current = []string{strings.TrimPrefix(strings.TrimLeft(line, " \t"), "- ")}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		items = append(items, current)
	}
	return items
}

func decodeItem(lines []string) (model.Field, bool) {
	attrs := make(map[string]any, len(lines))
	for _, line := range lines {
		key, raw, ok := frontmatter.SplitLine(line)
		if !ok {
			continue
		}
		attrs[key] = decodeValue(raw)
	}

	field := model.Field{
		Key:   stringAttr(attrs, "key"),
		Type:  model.FieldType(stringAttr(attrs, "type")),
		Label: stringAttr(attrs, "label"),
	}
	if !field.Valid() {
		return model.Field{}, false
	}

	field.Placeholder = stringAttr(attrs, "placeholder")
	field.Description = stringAttr(attrs, "description")
	if required, ok := attrs["required"].(bool); ok {
		field.Required = required
	}
	if value, ok := attrs["default"]; ok {
		if _, isList := value.([]string); !isList {
			field.Default = value
		}
	}
	if layout := model.Layout(stringAttr(attrs, "layout")); layout.Valid() {
		field.Layout = layout
	}
	switch options := attrs["options"].(type) {
	case []string:
		field.Options = options
	case string:
		if options != "" {
			field.Options = []string{options}
		}
	}
	return field, true
}

// decodeValue extends the frontmatter scalar rules with bracketed lists.
func decodeValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return splitList(trimmed[1 : len(trimmed)-1])
	}
	return frontmatter.DecodeScalar(trimmed)
}

func splitList(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return []string{}
	}
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if unquoted, ok := frontmatter.Unquote(part); ok {
			part = unquoted
		}
		out = append(out, part)
	}
	return out
}

func stringAttr(attrs map[string]any, key string) string {
	value, ok := attrs[key]
	if !ok {
		return ""
	}
	if _, isList := value.([]string); isList {
		return ""
	}
	return strings.TrimSpace(model.ScalarString(value))
}
