// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldBytes  = "bytes"

	// Generation fields.
	FieldSymbol  = "symbol"
	FieldSymbols = "symbols"
	FieldPages   = "pages"
	FieldSection = "section"
	FieldName    = "name"

	// Scanner fields.
	FieldOffset = "offset"
	FieldMode   = "mode"
	FieldRule   = "rule"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
