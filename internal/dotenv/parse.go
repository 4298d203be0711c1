// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package dotenv

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	commentPrefix = "#"
	separator     = "="
	byteOrderMark = "\ufeff"
)

// lineBreaks normalises every line-ending style to "\n".
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Entries maps keys to their trimmed raw values.
type Entries map[string]string

// Lookup returns the value recorded for key and whether the key was seen.
func (e Entries) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Has reports whether key was recorded with a non-empty value.
func (e Entries) Has(key string) bool {
	return e[key] != ""
}

// Keys returns the recorded keys in lexical order.
func (e Entries) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse reads r to EOF and parses its content.
// The only error source is the reader itself.
func Parse(r io.Reader) (Entries, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dotenv content: %w", err)
	}
	return ParseString(string(data)), nil
}

// ParseString parses dotenv content held in memory.
func ParseString(content string) Entries {
	content = strings.TrimPrefix(content, byteOrderMark)

	entries := make(Entries)
	for _, line := range strings.Split(lineBreaks.Replace(content), "\n") {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		entries[key] = value
	}
	return entries
}

// parseLine splits a single line at its first '='.
// ok is false for blank lines, comments and malformed lines.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return "", "", false
	}

	rawKey, rawValue, found := strings.Cut(line, separator)
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(rawKey)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(rawValue), true
}
