// =============================================================================
// sepagen - Root Command
// =============================================================================
//
// The root command is the base all subcommands (generate, validate, version)
// attach to. It carries the global --config flag.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file, overridable with
// --config.
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sepagen",
	Short: "Generate ISO 20022 pain.008 direct-debit initiation files",
	Long: `sepagen turns direct-debit transaction records (CSV or XLSX) into
schema-valid ISO 20022 pain.008 XML files ready for bank submission.

Transactions are grouped into payment-information blocks by sequence type
and collection date, control totals are computed at block and document
level, and the creditor identity is validated before any file is written.

Example Usage:
  sepagen generate                     # Process all files in the input directory
  sepagen generate --config ./my.yaml  # Use a custom configuration file
  sepagen validate                     # Check configuration without generating`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)
}
