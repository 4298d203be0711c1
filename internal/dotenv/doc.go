// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package dotenv parses dotenv-style KEY=VALUE files.
//
// Parsing is lenient: blank lines, '#' comments, lines without '=' and lines
// with an empty key are skipped without error. Values are trimmed but
// otherwise kept verbatim (no quote stripping, no interpolation, no
// "export" prefix handling). When a key repeats, the last occurrence wins.
package dotenv
