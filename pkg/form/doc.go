// Package form implements the form engine: it opens a session for a schema,
// seeds state from defaults and initial values, applies field edits and
// produces a Submission snapshot.
//
// Per-type contract: text, textarea, date and number hold one scalar; number
// edits coerce "" to "" and other text to float64; dropdown values may fall
// outside their options and are kept; toggle holds a bool; photo holds a
// locator resolved for display by a host Resolver. Photo sessions carry an
// extra "keep a local copy" flag outside the field values.
package form
