// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ManuGH/envcheck/internal/envcheck"
)

// runKeys prints the compiled-in key table.
func runKeys(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("envcheck keys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		return exitUsage
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tKEY")
	for _, spec := range envcheck.DefaultKeySet() {
		fmt.Fprintf(tw, "%s\t%s\n", strings.ToUpper(spec.Class.String()), spec.Name)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(stderr, "Error: write key table: %v\n", err)
		return exitFailure
	}
	return exitOK
}
