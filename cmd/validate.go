// =============================================================================
// sepagen - Validate Command
// =============================================================================
//
// The 'validate' command checks a deployment without generating anything: it
// loads the configuration, builds the creditor identity, and runs the
// document-level mandatory-data check. Misconfigured creditor accounts are
// caught here instead of at the first real generation run.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treasuryops/sepagen/internal/config"
	"github.com/treasuryops/sepagen/internal/generator"
	"github.com/treasuryops/sepagen/internal/logging"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and creditor identity",
	Long: `Validate loads the configuration file, validates the creditor identity
(structural IBAN check and BIC presence), and verifies that all data
mandatory for document generation is present. No files are read or written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		gen := generator.New(cfg, logging.Setup(cfg.LogLevel))
		doc, err := gen.BuildDocument(nil)
		if err != nil {
			return err
		}
		if err := doc.CheckMandatoryData(); err != nil {
			return err
		}
		if err := doc.CheckSchema(); err != nil {
			return err
		}

		fmt.Println("Configuration is valid.")
		fmt.Printf("Schema:          %s\n", cfg.Schema)
		fmt.Printf("Initiating party: %s\n", cfg.InitiatingParty.Name)
		fmt.Printf("Creditor:        %s (%s)\n", cfg.Creditor.Name, cfg.Creditor.IBAN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
