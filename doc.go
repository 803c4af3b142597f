// Package formnote turns form schemas declared in notes into fillable forms.
//
// A schema note carries schema_id and schema_title in its YAML-like
// frontmatter. Every other non-reserved frontmatter key becomes a text
// field, and an optional fenced "fields" block in the body declares typed
// fields that replace flat ones with the same key. Vault schemas are merged
// with embedded built-ins into a registry; built-ins win id conflicts.
//
// Quick start:
//
//	reg, err := formnote.OpenVault(ctx, "/path/to/vault")
//	schema, _ := reg.Get("new-person")
//	engine := formnote.NewForm(schema, nil)
//	engine.OnFieldChange("name", "Ada Lovelace")
//	note, err := formnote.RenderNote(schema, engine.Submit())
//
// The sub-packages expose each stage on its own: frontmatter and fieldsblock
// parse the note dialect, schemafile classifies notes, registry merges and
// watches them, form holds session state and output renders notes.
package formnote
