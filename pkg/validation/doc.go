// Package validation produces advisory checks for form submissions by
// describing a schema as an OpenAPI object schema and validating the values
// against it. Results are informational; the form engine never blocks a
// submission on them.
package validation
