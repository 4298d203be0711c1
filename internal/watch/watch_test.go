// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ManuGH/envcheck/internal/envcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type result struct {
	report *envcheck.Report
	err    error
}

var allRequired = []string{
	"VITE_FIREBASE_API_KEY=k",
	"VITE_FIREBASE_AUTH_DOMAIN=d",
	"VITE_FIREBASE_PROJECT_ID=p",
	"VITE_FIREBASE_STORAGE_BUCKET=b",
	"VITE_FIREBASE_MESSAGING_SENDER_ID=s",
	"VITE_FIREBASE_APP_ID=a",
	"VITE_R2_WORKER_URL=u",
}

func writeFile(t *testing.T, path string, lines []string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
}

// startWatcher runs a watcher in the background and returns its result stream,
// a cancel func and a channel carrying Run's return value.
func startWatcher(t *testing.T, path string) (<-chan result, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	results := make(chan result, 32)
	verifier := envcheck.NewVerifier(nil)
	w := New(path, 20*time.Millisecond, verifier.Verify, func(r *envcheck.Report, err error) {
		select {
		case results <- result{report: r, err: err}:
		case <-ctx.Done():
		}
	})

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()
	return results, cancel, done
}

func next(t *testing.T, results <-chan result) result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for verification result")
		return result{}
	}
}

// waitFor drains results until match returns true.
func waitFor(t *testing.T, results <-chan result, match func(result) bool) result {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-results:
			if match(r) {
				return r
			}
		case <-deadline:
			t.Fatal("timed out waiting for matching verification result")
			return result{}
		}
	}
}

func stop(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run() didn't return after cancel")
	}
}

func TestWatcher_ReverifiesOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, allRequired[:6])

	results, cancel, done := startWatcher(t, path)

	first := next(t, results)
	require.ErrorIs(t, first.err, envcheck.ErrMissingRequiredKeys)
	assert.Equal(t, "6/7", first.report.RequiredSummary().String())

	writeFile(t, path, allRequired)

	fixed := waitFor(t, results, func(r result) bool { return r.err == nil })
	assert.Equal(t, "7/7", fixed.report.RequiredSummary().String())

	stop(t, cancel, done)
}

func TestWatcher_FileCreatedAfterStart(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), ".env")
	results, cancel, done := startWatcher(t, path)

	first := next(t, results)
	assert.Nil(t, first.report)
	require.ErrorIs(t, first.err, envcheck.ErrFileNotFound)

	writeFile(t, path, allRequired)
	created := waitFor(t, results, func(r result) bool { return r.err == nil })
	assert.True(t, created.report.OK())

	stop(t, cancel, done)
}

func TestWatcher_FileRemoved(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, allRequired)
	results, cancel, done := startWatcher(t, path)

	require.NoError(t, next(t, results).err)

	require.NoError(t, os.Remove(path))
	waitFor(t, results, func(r result) bool { return errors.Is(r.err, envcheck.ErrFileNotFound) })

	stop(t, cancel, done)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeFile(t, path, allRequired)
	results, cancel, done := startWatcher(t, path)

	require.NoError(t, next(t, results).err)

	writeFile(t, filepath.Join(dir, ".env.local"), []string{"OTHER=1"})
	select {
	case r := <-results:
		t.Fatalf("unexpected re-verification after sibling change: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}

	stop(t, cancel, done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", ".env")
	w := New(path, time.Millisecond, envcheck.NewVerifier(nil).Verify, func(*envcheck.Report, error) {
		t.Fatal("no verification expected when the directory cannot be watched")
	})

	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch directory")
}

func TestNew_ResolvesPath(t *testing.T) {
	w := New("", time.Second, nil, nil)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, envcheck.DefaultFile, filepath.Base(w.Path()))
}
