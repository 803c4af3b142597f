package form

import (
	"github.com/goliatone/go-formnote/pkg/model"
)

// BuildInitialState seeds one value per field: the initial value when
// supplied, else the field default, else false for toggles and "" for
// everything else. Initial values for unknown keys are ignored.
func BuildInitialState(fields []model.Field, initial map[string]any) map[string]any {
	state := make(map[string]any, len(fields))
	for _, field := range fields {
		if value, ok := initial[field.Key]; ok {
			state[field.Key] = cloneValue(value)
			continue
		}
		if field.Default != nil {
			state[field.Key] = field.Default
			continue
		}
		state[field.Key] = zeroValue(field.Type)
	}
	return state
}

func zeroValue(kind model.FieldType) any {
	if kind == model.FieldTypeToggle {
		return false
	}
	return ""
}

func cloneValues(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneValues(typed)
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = cloneValue(v)
		}
		return clone
	case []string:
		return append([]string(nil), typed...)
	default:
		return typed
	}
}
