// Package vault provides the file-text-read collaborator for the registry: a
// Source that walks an fs.FS (or a directory on disk) and hands every note's
// text to the schema parser.
package vault
