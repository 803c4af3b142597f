package validation

import (
	"errors"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formnote/pkg/model"
)

const datePattern = `^\d{4}-\d{2}-\d{2}$`

// SchemaIssue represents a validation finding with optional location metadata.
type SchemaIssue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// SchemaValidationResult captures advisory validation outcomes. Hosts may
// display the issues; nothing in this module refuses a submission because of
// them.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// OpenAPISchema describes the submission shape of schema as an OpenAPI
// object schema: one property per field, typed by field kind, with required
// fields listed and dropdown options as an enum.
func OpenAPISchema(schema model.Schema) *openapi3.Schema {
	object := openapi3.NewObjectSchema()
	object.Title = schema.Title
	for _, field := range schema.Fields {
		property := propertySchema(field)
		property.Title = field.Label
		property.Description = field.Description
		object.WithProperty(field.Key, property)
		if field.Required {
			object.Required = append(object.Required, field.Key)
		}
	}
	return object
}

func propertySchema(field model.Field) *openapi3.Schema {
	switch field.Type {
	case model.FieldTypeToggle:
		return openapi3.NewBoolSchema()
	case model.FieldTypeNumber:
		return openapi3.NewFloat64Schema()
	case model.FieldTypeDate:
		return openapi3.NewStringSchema().WithPattern(datePattern)
	case model.FieldTypeDropdown:
		property := openapi3.NewStringSchema()
		if len(field.Options) > 0 {
			enum := make([]any, 0, len(field.Options))
			for _, option := range field.Options {
				enum = append(enum, option)
			}
			property.WithEnum(enum...)
		}
		return property
	case model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypePhoto:
		return openapi3.NewStringSchema()
	default:
		return openapi3.NewStringSchema()
	}
}

// ValidateSubmission checks values against schema. Empty strings count as
// missing, so an empty required field is reported and an empty optional
// number is accepted.
func ValidateSubmission(schema model.Schema, values map[string]any) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}

	payload := make(map[string]any, len(values))
	for key, value := range values {
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			continue
		}
		if value == nil {
			continue
		}
		payload[key] = value
	}

	err := OpenAPISchema(schema).VisitJSON(payload, openapi3.MultiErrors())
	if err == nil {
		return result
	}

	result.Valid = false
	result.Issues = issuesFromError(err)
	sort.SliceStable(result.Issues, func(i, j int) bool {
		if result.Issues[i].Field != result.Issues[j].Field {
			return result.Issues[i].Field < result.Issues[j].Field
		}
		return result.Issues[i].Message < result.Issues[j].Message
	})
	return result
}

func issuesFromError(err error) []SchemaIssue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var issues []SchemaIssue
		for _, inner := range multi {
			issues = append(issues, issuesFromError(inner)...)
		}
		return issues
	}
	return []SchemaIssue{issueFromError(err)}
}

func issueFromError(err error) SchemaIssue {
	if err == nil {
		return SchemaIssue{Message: "unknown error"}
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		pointer := schemaErr.JSONPointer()
		issue := SchemaIssue{
			Path:    "/" + strings.Join(pointer, "/"),
			Message: strings.TrimSpace(schemaErr.Reason),
		}
		if len(pointer) > 0 {
			issue.Field = pointer[0]
		}
		return issue
	}
	return SchemaIssue{Message: strings.TrimSpace(err.Error())}
}
