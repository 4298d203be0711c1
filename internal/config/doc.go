// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config provides envcheck's own runtime settings.
//
// Settings come from ENVCHECK_* environment variables with defaults and are
// then overridden by command-line flags. The verified key sets are not part
// of the settings; they are compiled into package envcheck.
package config
