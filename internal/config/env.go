// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ManuGH/envcheck/internal/log"
	"github.com/rs/zerolog"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseEnv(key, defaultValue,
		func(v string) (string, error) { return v, nil },
		(*zerolog.Event).Str)
}

// ParseDuration reads a duration from environment variable in Go duration format (e.g. "5s").
// It falls back to default on parse errors or empty variables and logs the choice.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, time.ParseDuration, (*zerolog.Event).Dur)
}

// ParseBool reads a boolean from environment variable or returns default value.
// It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, parseBool, (*zerolog.Event).Bool)
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", v)
	}
}

// parseEnv looks up key, converts it with parse and falls back to
// defaultValue when the variable is unset, empty or invalid.
func parseEnv[T any](
	key string,
	defaultValue T,
	parse func(string) (T, error),
	field func(*zerolog.Event, string, T) *zerolog.Event,
) T {
	logger := log.WithComponent("config")

	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		msg := "using default value"
		if ok {
			msg = "using default value (environment variable is empty)"
		}
		field(logger.Debug().Str(log.FieldKey, key), "default", defaultValue).
			Str("source", "default").
			Msg(msg)
		return defaultValue
	}

	parsed, err := parse(v)
	if err != nil {
		field(logger.Warn().Str(log.FieldKey, key).Str("value", v), "default", defaultValue).
			Err(err).
			Msg("invalid value in environment variable, using default")
		return defaultValue
	}

	ev := logger.Debug().Str(log.FieldKey, key).Str("source", "environment")
	if isSensitiveKey(key) {
		ev = ev.Bool("sensitive", true)
	} else {
		ev = field(ev, "value", parsed)
	}
	ev.Msg("using environment variable")
	return parsed
}

// isSensitiveKey reports whether a variable's value must stay out of logs.
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "token") ||
		strings.Contains(lower, "secret") ||
		strings.Contains(lower, "password")
}
