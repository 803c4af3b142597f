// Package fieldsblock extracts and decodes the ```fields fenced block that
// declares advanced form fields inside a schema note body. Each item starts
// with "- key:" and continues with indented "attribute: value" lines using the
// frontmatter scalar rules, plus "[a, b, c]" lists for dropdown options.
package fieldsblock
