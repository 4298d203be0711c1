// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package envcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	requiredLines = []string{
		"VITE_FIREBASE_API_KEY=AIzaSyExample",
		"VITE_FIREBASE_AUTH_DOMAIN=example.firebaseapp.com",
		"VITE_FIREBASE_PROJECT_ID=example",
		"VITE_FIREBASE_STORAGE_BUCKET=example.appspot.com",
		"VITE_FIREBASE_MESSAGING_SENDER_ID=1234567890",
		"VITE_FIREBASE_APP_ID=1:1234567890:web:abcdef",
		"VITE_R2_WORKER_URL=https://r2.example.workers.dev",
	}
	optionalLines = []string{
		"VITE_STRIPE_PUBLISHABLE_KEY=pk_test_example",
		"VITE_STRIPE_PRICE_PRO=price_pro",
		"VITE_STRIPE_PRICE_UNLIMITED=price_unlimited",
		"VITE_FIREBASE_MEASUREMENT_ID=G-EXAMPLE",
	}
)

// writeEnvFile writes lines to a .env file in a fresh temp dir and returns its path.
func writeEnvFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

// without returns lines minus any line that starts with key + "=".
func without(lines []string, key string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.HasPrefix(l, key+"=") {
			continue
		}
		out = append(out, l)
	}
	return out
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
