// Package schemafile parses hybrid schema notes: a frontmatter block whose
// reserved keys (schema_id, schema_title, output_path, submit_label,
// cssClass) describe the form, whose remaining keys become flat text fields,
// followed by an optional ```fields block of advanced definitions and a free
// markdown body used as the output template.
//
// Outcomes follow a three-state taxonomy. Ordinary notes and schemas with no
// fields are StatusNotApplicable and stay silent so whole vaults can be
// scanned. A note that sets schema_id without schema_title is StatusInvalid
// and produces one diagnostic naming the file.
package schemafile
