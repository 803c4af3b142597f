// Package model defines the typed schema vocabulary shared by the parsers,
// the registry and the form engine. A Schema is an ordered list of Fields
// plus note emission metadata (output path, body template, submit label).
// FieldType is a closed set: text, textarea, dropdown, date, toggle, number
// and photo. Renderers are expected to switch over it exhaustively. Field
// defaults are scalars decoded by the frontmatter dialect, so they are always
// one of string, bool or float64.
package model
