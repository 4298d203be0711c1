// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService = "service"
	FieldVersion = "version"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldOp        = "op"

	// Path fields
	FieldPath = "path"

	// Verification fields
	FieldKey             = "key"
	FieldRequiredPresent = "required_present"
	FieldOptionalPresent = "optional_present"
	FieldMissing         = "missing"
	FieldEntries         = "entries"
)
