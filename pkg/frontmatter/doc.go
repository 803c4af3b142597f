// Package frontmatter implements the restricted key/value dialect used at the
// top of schema notes. It is deliberately not YAML: there are no nested
// structures, anchors or multi-line scalars, and malformed lines are skipped
// rather than reported.
package frontmatter
