// =============================================================================
// sepagen - Generate Command
// =============================================================================
//
// The 'generate' command is the main pipeline: it discovers CSV/XLSX record
// files in the input directory and produces one pain.008 document per file.
//
// PIPELINE:
//   1. Load and validate the configuration
//   2. Discover record files in the input directory
//   3. For each file (concurrently):
//      a. Load the transaction records
//      b. Assemble the direct-debit document
//      c. Generate and write the XML
//      d. Archive the input file
//   4. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/treasuryops/sepagen/internal/config"
	"github.com/treasuryops/sepagen/internal/generator"
	"github.com/treasuryops/sepagen/internal/logging"
	"github.com/treasuryops/sepagen/pkg/fileutil"
)

// dryRun simulates processing without writing output files.
var dryRun bool

// singleFile limits processing to one specific input file.
var singleFile string

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate pain.008 files from transaction record files",
	Long: `The generate command scans the input directory for CSV and XLSX record
files and converts each one into a pain.008 direct-debit initiation XML file.

Files are processed concurrently and independently; an error in one file
does not affect the others.

On successful processing:
  - The generated XML is placed in the output directory
  - The original record file is moved to the archive directory

On error:
  - The original record file remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Simulate processing without writing output files",
	)

	generateCmd.Flags().StringVar(
		&singleFile,
		"file",
		"",
		"Process only the given record file",
	)
}

// runGenerate orchestrates the generation pipeline.
func runGenerate() error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.Setup(cfg.LogLevel)

	var inputFiles []string
	if singleFile != "" {
		inputFiles = []string{singleFile}
	} else {
		if err := fileutil.EnsureDirectories(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir); err != nil {
			return err
		}
		inputFiles, err = fileutil.DiscoverInputFiles(cfg.InputDir, ".csv", ".xlsx")
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No record files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// Each file is an independent document, so files fan out to goroutines
	// while every document stays single-threaded.
	var wg sync.WaitGroup
	results := make(chan generator.Result, len(inputFiles))

	for _, file := range inputFiles {
		wg.Add(1)

		go func(path string) {
			defer wg.Done()

			gen := generator.New(cfg, log)
			gen.DryRun = dryRun
			results <- gen.Run(path)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var successCount, errorCount, transactionCount int
	for result := range results {
		if result.Success {
			successCount++
			transactionCount += result.TransactionCount
			fmt.Printf("  ok %s -> %s\n", filepath.Base(result.InputFile), result.OutputFile)
		} else {
			errorCount++
			fmt.Printf("  FAILED %s: %v\n", filepath.Base(result.InputFile), result.Err)
		}
	}

	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Transactions:    %d\n", transactionCount)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) failed", errorCount)
	}
	return nil
}
