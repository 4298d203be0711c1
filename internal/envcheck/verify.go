// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package envcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ManuGH/envcheck/internal/dotenv"
	xglog "github.com/ManuGH/envcheck/internal/log"
	"github.com/rs/zerolog"
)

// DefaultFile is the conventional file name, resolved against the working directory.
const DefaultFile = ".env"

// Verifier checks dotenv files against a fixed key set.
type Verifier struct {
	keys KeySet
}

// NewVerifier creates a verifier for keys. A nil set means DefaultKeySet.
func NewVerifier(keys KeySet) *Verifier {
	if keys == nil {
		keys = DefaultKeySet()
	}
	return &Verifier{keys: keys}
}

// Verify reads the file at path and classifies every key.
//
// A missing file yields (nil, *FileNotFoundError) without parsing anything.
// Missing required keys yield the full report together with a
// *MissingRequiredKeysError, so callers can print the report first.
func (v *Verifier) Verify(path string) (*Report, error) {
	resolved := ResolvePath(path)
	logger := xglog.Derive(func(c *zerolog.Context) {
		*c = c.Str(xglog.FieldComponent, "verifier").Str(xglog.FieldPath, resolved)
	})

	logger.Debug().Str(xglog.FieldEvent, "verify.start").Msg("verifying environment file")

	// #nosec G304 -- the file path is provided by the operator via CLI/ENV
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info().Str(xglog.FieldEvent, "verify.file_not_found").Msg("environment file not found")
			return nil, &FileNotFoundError{Path: resolved}
		}
		return nil, fmt.Errorf("read %s: %w", resolved, err)
	}

	entries := dotenv.ParseString(string(data))
	logger.Debug().
		Str(xglog.FieldEvent, "verify.parsed").
		Int(xglog.FieldEntries, len(entries)).
		Msg("parsed environment file")

	report := Evaluate(resolved, entries, v.keys)
	required, optional := report.RequiredSummary(), report.OptionalSummary()

	if missing := report.MissingRequired(); len(missing) > 0 {
		logger.Info().
			Str(xglog.FieldEvent, "verify.missing_required").
			Strs(xglog.FieldMissing, missing).
			Str(xglog.FieldRequiredPresent, required.String()).
			Str(xglog.FieldOptionalPresent, optional.String()).
			Msg("required environment variables missing")
		return report, &MissingRequiredKeysError{Keys: missing}
	}

	logger.Info().
		Str(xglog.FieldEvent, "verify.ok").
		Str(xglog.FieldRequiredPresent, required.String()).
		Str(xglog.FieldOptionalPresent, optional.String()).
		Msg("environment file verified")
	return report, nil
}

// Evaluate classifies keys against parsed entries. It does not touch the filesystem.
func Evaluate(path string, entries dotenv.Entries, keys KeySet) *Report {
	report := &Report{Path: path}
	for _, spec := range keys {
		status := KeyStatus{
			Name:    spec.Name,
			Class:   spec.Class,
			Present: entries.Has(spec.Name),
		}
		switch spec.Class {
		case ClassRequired:
			report.Required = append(report.Required, status)
		case ClassOptional:
			report.Optional = append(report.Optional, status)
		}
	}
	return report
}

// ResolvePath makes path absolute against the working directory.
// An empty path resolves DefaultFile.
func ResolvePath(path string) string {
	if path == "" {
		path = DefaultFile
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
