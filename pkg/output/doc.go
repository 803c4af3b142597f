// Package output renders a form submission into a markdown note: the path
// comes from the schema's output path template, the frontmatter records every
// field value, and the body comes from the schema's body template. Templates
// use {{field}} placeholders and support pongo2 filters such as
// {{name|upper}}.
package output
