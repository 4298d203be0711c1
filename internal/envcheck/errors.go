// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package envcheck

import (
	"errors"
	"fmt"
	"strings"
)

// missingKeysDelimiter joins missing key names in error messages.
const missingKeysDelimiter = ", "

var (
	// ErrFileNotFound classifies verification failures caused by an absent file.
	// Use errors.Is(err, ErrFileNotFound) instead of string matching.
	ErrFileNotFound = errors.New("environment file not found")

	// ErrMissingRequiredKeys classifies verification failures caused by
	// required keys without a non-empty value.
	ErrMissingRequiredKeys = errors.New("missing required environment variables")
)

// FileNotFoundError reports that no file exists at the resolved path.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFileNotFound, e.Path)
}

// Is matches ErrFileNotFound.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// MissingRequiredKeysError lists every required key that is absent or empty.
type MissingRequiredKeysError struct {
	Keys []string
}

func (e *MissingRequiredKeysError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredKeys, strings.Join(e.Keys, missingKeysDelimiter))
}

// Is matches ErrMissingRequiredKeys.
func (e *MissingRequiredKeysError) Is(target error) bool {
	return target == ErrMissingRequiredKeys
}
