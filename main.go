// =============================================================================
// sepagen - Main Entry Point
// =============================================================================
//
// sepagen generates ISO 20022 pain.008 direct-debit initiation files from
// CSV or XLSX transaction records.
//
// USAGE:
//   sepagen generate    - Process all record files in the input directory
//   sepagen validate    - Check configuration and creditor identity
//   sepagen version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : core business logic (not for external import)
//   - pkg/        : shared utilities
//
// =============================================================================

package main

import (
	"github.com/treasuryops/sepagen/cmd"
)

func main() {
	cmd.Execute()
}
