// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/ManuGH/envcheck/internal/envcheck"
	"github.com/ManuGH/envcheck/internal/validate"
)

// Environment variables read by LoadSettings.
const (
	EnvFile     = "ENVCHECK_FILE"
	EnvFormat   = "ENVCHECK_FORMAT"
	EnvLogLevel = "ENVCHECK_LOG_LEVEL"
	EnvWatch    = "ENVCHECK_WATCH"
	EnvDebounce = "ENVCHECK_DEBOUNCE"
)

const (
	defaultFormat   = string(envcheck.FormatText)
	defaultLogLevel = string(validate.LogLevelWarn)
	defaultDebounce = 250 * time.Millisecond
)

// Settings controls a single envcheck invocation.
type Settings struct {
	File     string        // dotenv file, relative to the working directory
	Format   string        // report format: text, json or yaml
	LogLevel string        // debug, info, warn or error
	Watch    bool          // keep running and re-verify on file changes
	Debounce time.Duration // quiet period before re-verifying in watch mode
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		File:     envcheck.DefaultFile,
		Format:   defaultFormat,
		LogLevel: defaultLogLevel,
		Debounce: defaultDebounce,
	}
}

// LoadSettings applies ENVCHECK_* environment variables on top of Defaults.
// Empty or unparsable values keep the default.
func LoadSettings() Settings {
	d := Defaults()
	s := Settings{
		File:     ParseString(EnvFile, d.File),
		Format:   ParseString(EnvFormat, d.Format),
		LogLevel: ParseString(EnvLogLevel, d.LogLevel),
		Watch:    ParseBool(EnvWatch, d.Watch),
		Debounce: ParseDuration(EnvDebounce, d.Debounce),
	}
	s.Normalize()
	return s
}

// Normalize lowercases the case-insensitive settings. Call it again after
// flags have been parsed, since flag values bypass LoadSettings.
func (s *Settings) Normalize() {
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
}

// BindFlags registers command-line flags that override s.
// Current values of s become the flag defaults.
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.File, "file", s.File, "path to the dotenv file")
	fs.StringVar(&s.File, "f", s.File, "path to the dotenv file (shorthand)")
	fs.StringVar(&s.Format, "format", s.Format,
		fmt.Sprintf("report format (%s)", strings.Join(envcheck.Formats(), "|")))
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel,
		fmt.Sprintf("log level (%s)", strings.Join(validate.LogLevels(), "|")))
	fs.BoolVar(&s.Watch, "watch", s.Watch, "re-verify whenever the file changes")
	fs.DurationVar(&s.Debounce, "debounce", s.Debounce, "quiet period before re-verifying in watch mode")
}

// ReportFormat returns the validated format as an envcheck.Format.
func (s Settings) ReportFormat() envcheck.Format {
	return envcheck.Format(s.Format)
}

// Validate checks every setting and reports all violations at once.
func Validate(s Settings) error {
	v := validate.New()
	v.NotEmpty("file", s.File)
	v.OneOf("format", s.Format, envcheck.Formats())
	v.LogLevel("logLevel", s.LogLevel)
	if s.Watch {
		v.PositiveDuration("debounce", s.Debounce)
	}
	return v.Err()
}
