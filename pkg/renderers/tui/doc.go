// Package tui fills form schemas from the terminal. Each field type maps to a
// survey prompt and every answer flows through a form.Engine, so dropdowns
// keep out-of-band values, numbers are coerced and photo fields offer the
// keep-a-local-copy toggle when they point at an external URL.
package tui
