// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package watch re-runs environment verification whenever the dotenv file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ManuGH/envcheck/internal/envcheck"
	xglog "github.com/ManuGH/envcheck/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// VerifyFunc produces a verification result for path.
type VerifyFunc func(path string) (*envcheck.Report, error)

// ResultFunc receives every verification result, including the initial one.
type ResultFunc func(report *envcheck.Report, err error)

// Watcher re-verifies a single file on change.
type Watcher struct {
	path     string
	debounce time.Duration
	verify   VerifyFunc
	onResult ResultFunc
	logger   zerolog.Logger
}

// New creates a watcher for path. The path is resolved like envcheck.Verifier does.
func New(path string, debounce time.Duration, verify VerifyFunc, onResult ResultFunc) *Watcher {
	return &Watcher{
		path:     envcheck.ResolvePath(path),
		debounce: debounce,
		verify:   verify,
		onResult: onResult,
		logger:   xglog.WithComponent("watch"),
	}
}

// Path returns the resolved file path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run verifies once, then again after every debounced change to the file,
// until ctx is cancelled. The parent directory is watched so that editors
// that replace the file, and files created after start, are both seen.
// Results are delivered on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close() // Ignore close error on shutdown
	}()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	w.logger.Info().
		Str(xglog.FieldEvent, "watch.started").
		Str(xglog.FieldPath, w.path).
		Msg("watching environment file for changes")

	w.runOnce()

	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str(xglog.FieldEvent, "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher event channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().
				Str(xglog.FieldEvent, "watch.file_changed").
				Str(xglog.FieldOp, event.Op.String()).
				Msg("environment file changed")

			if debounce == nil {
				debounce = time.NewTimer(w.debounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.debounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			w.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "watch.error").
				Msg("file watcher error")
		}
	}
}

// relevant filters events down to the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}

func (w *Watcher) runOnce() {
	report, err := w.verify(w.path)
	w.onResult(report, err)
}
