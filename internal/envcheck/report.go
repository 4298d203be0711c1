// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package envcheck

import (
	"fmt"
)

// Status labels used in the text report.
const (
	StatusOK              = "OK"
	StatusMissing         = "MISSING"
	StatusMissingOptional = "MISSING (optional)"
)

// KeyStatus records whether a key has a non-empty value.
type KeyStatus struct {
	Name    string   `json:"name" yaml:"name"`
	Class   KeyClass `json:"-" yaml:"-"`
	Present bool     `json:"present" yaml:"present"`
}

// Label returns the text report label for the status.
func (s KeyStatus) Label() string {
	switch {
	case s.Present:
		return StatusOK
	case s.Class == ClassOptional:
		return StatusMissingOptional
	default:
		return StatusMissing
	}
}

// Summary counts present keys out of a list.
type Summary struct {
	Present int `json:"present" yaml:"present"`
	Total   int `json:"total" yaml:"total"`
}

// String formats the summary as "present/total".
func (s Summary) String() string {
	return fmt.Sprintf("%d/%d", s.Present, s.Total)
}

// Report is the outcome of one verification run.
type Report struct {
	Path     string
	Required []KeyStatus
	Optional []KeyStatus
}

// RequiredSummary counts present required keys.
func (r *Report) RequiredSummary() Summary {
	return summarize(r.Required)
}

// OptionalSummary counts present optional keys.
func (r *Report) OptionalSummary() Summary {
	return summarize(r.Optional)
}

// MissingRequired returns the missing required keys in report order.
func (r *Report) MissingRequired() []string {
	var missing []string
	for _, s := range r.Required {
		if !s.Present {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

// OK reports whether every required key is present.
func (r *Report) OK() bool {
	return len(r.MissingRequired()) == 0
}

func summarize(statuses []KeyStatus) Summary {
	sum := Summary{Total: len(statuses)}
	for _, s := range statuses {
		if s.Present {
			sum.Present++
		}
	}
	return sum
}
