// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package envcheck verifies that a dotenv file provides the keys the web
// shell needs before it starts.
//
// The key sets are compiled in (see RequiredKeys and OptionalKeys). A missing
// file or any missing required key fails verification; missing optional keys
// are reported only. Values are never reported, only their presence.
package envcheck
