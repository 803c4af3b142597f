// Package builtin ships the schemas supplied by the host. They are embedded
// YAML files and always take precedence over user schemas with the same id.
package builtin
