// Command validate checks a published artifact pair for internal
// consistency: matching identifier sets, non-empty names, and metadata
// counts that agree with the maps. Intended for CI over the export
// directory; exits non-zero on any violation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JamesExley95/sleeper-player-database/internal/exports"
)

func main() {
	dir := flag.String("dir", "json_data", "directory holding the artifact pair")
	flag.Parse()

	report, err := exports.VerifyDir(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "validate:", err)
		os.Exit(2)
	}

	if !report.OK() {
		for _, issue := range report.Issues {
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", issue.Check, issue.Detail)
		}
		fmt.Fprintf(os.Stderr, "%d check(s) failed\n", len(report.Issues))
		os.Exit(1)
	}

	fmt.Printf("ok: artifacts in %s are consistent\n", *dir)
}
