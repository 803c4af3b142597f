package schemafile

import "github.com/goliatone/go-formnote/pkg/model"

// Status classifies the outcome of parsing a candidate file.
type Status int

const (
	// StatusNotApplicable marks an ordinary note: no frontmatter, no
	// schema_id, or a schema that declares no fields. Never reported.
	StatusNotApplicable Status = iota
	// StatusInvalid marks a file that declares itself a schema but cannot be
	// used. Reason explains why and is surfaced to the user.
	StatusInvalid
	// StatusValid marks a usable schema.
	StatusValid
)

func (s Status) String() string {
	switch s {
	case StatusNotApplicable:
		return "not-applicable"
	case StatusInvalid:
		return "invalid"
	case StatusValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Result is the three-state outcome of Parse.
type Result struct {
	Status Status
	Name   string
	Reason string
	schema model.Schema
}

// Schema returns the parsed schema when Status is StatusValid.
func (r Result) Schema() (model.Schema, bool) {
	if r.Status != StatusValid {
		return model.Schema{}, false
	}
	return r.schema, true
}

func notApplicable(name, reason string) Result {
	return Result{Status: StatusNotApplicable, Name: name, Reason: reason}
}

func invalid(name, reason string) Result {
	return Result{Status: StatusInvalid, Name: name, Reason: reason}
}

func valid(name string, schema model.Schema) Result {
	return Result{Status: StatusValid, Name: name, schema: schema}
}
