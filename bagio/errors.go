package bagio

import "errors"

// Sentinel errors for bag serialization and deserialization.
var (
	// ErrMissingHeader indicates the input did not begin with the
	// literal "node_id|path|weights" header line.
	ErrMissingHeader = errors.New("bagio: missing or malformed header line")

	// ErrMalformedLine indicates a label line did not split into exactly
	// three '|'-separated fields.
	ErrMalformedLine = errors.New("bagio: malformed label line")

	// ErrMalformedInt indicates a field that should parse as a decimal
	// integer did not.
	ErrMalformedInt = errors.New("bagio: malformed integer field")
)
