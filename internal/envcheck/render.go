// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package envcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// IsValid checks if the format is supported
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// SuccessMessage confirms that no required key is missing.
const SuccessMessage = "✓ All required environment variables are set"

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.document())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q (allowed: %s)", format, strings.Join(Formats(), ", "))
	}
}

// WriteText writes the line-oriented report: header, both summaries, then
// the required and optional key statuses in declaration order.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Checking environment file: %s\n\n", r.Path)
	fmt.Fprintf(&b, "Required: %s\n", r.RequiredSummary())
	fmt.Fprintf(&b, "Optional: %s\n\n", r.OptionalSummary())

	b.WriteString("Required keys:\n")
	for _, s := range r.Required {
		fmt.Fprintf(&b, "  %s: %s\n", s.Name, s.Label())
	}
	b.WriteString("Optional keys:\n")
	for _, s := range r.Optional {
		fmt.Fprintf(&b, "  %s: %s\n", s.Name, s.Label())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteOutcome writes the success confirmation when err is nil and nothing otherwise.
func WriteOutcome(w io.Writer, err error) error {
	if err != nil {
		return nil
	}
	_, werr := fmt.Fprintf(w, "\n%s\n", SuccessMessage)
	return werr
}

type reportSection struct {
	Present int         `json:"present" yaml:"present"`
	Total   int         `json:"total" yaml:"total"`
	Keys    []KeyStatus `json:"keys" yaml:"keys"`
}

type reportDocument struct {
	Path            string        `json:"path" yaml:"path"`
	OK              bool          `json:"ok" yaml:"ok"`
	Required        reportSection `json:"required" yaml:"required"`
	Optional        reportSection `json:"optional" yaml:"optional"`
	MissingRequired []string      `json:"missing_required" yaml:"missing_required"`
}

func (r *Report) document() reportDocument {
	missing := r.MissingRequired()
	if missing == nil {
		missing = []string{}
	}
	req, opt := r.RequiredSummary(), r.OptionalSummary()
	return reportDocument{
		Path:            r.Path,
		OK:              len(missing) == 0,
		Required:        reportSection{Present: req.Present, Total: req.Total, Keys: nonNil(r.Required)},
		Optional:        reportSection{Present: opt.Present, Total: opt.Total, Keys: nonNil(r.Optional)},
		MissingRequired: missing,
	}
}

func nonNil(s []KeyStatus) []KeyStatus {
	if s == nil {
		return []KeyStatus{}
	}
	return s
}
