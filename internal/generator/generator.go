// =============================================================================
// sepagen - Generation Pipeline
// =============================================================================
//
// This module orchestrates the per-file pipeline: load transaction records,
// assemble a pain.008 document from them, write the XML output, and archive
// the input file. Each input file becomes exactly one document; files are
// independent units of work, so the caller may run several pipelines
// concurrently while each document stays single-threaded.
//
// =============================================================================

package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/treasuryops/sepagen/internal/config"
	"github.com/treasuryops/sepagen/internal/loader"
	"github.com/treasuryops/sepagen/internal/sepa"
	"github.com/treasuryops/sepagen/pkg/fileutil"
)

// Result describes the outcome of processing one input file.
type Result struct {
	// InputFile is the processed input path.
	InputFile string

	// OutputFile is the generated XML path, empty on failure or dry run.
	OutputFile string

	// TransactionCount is the number of collections in the document.
	TransactionCount int

	// Success is true when the document was generated.
	Success bool

	// Err holds the failure, nil on success.
	Err error
}

// Generator runs the pipeline for one configuration.
type Generator struct {
	cfg *config.Config
	log *logrus.Logger

	// DryRun skips output writing and input archival.
	DryRun bool
}

// New creates a generator for the given configuration and logger.
func New(cfg *config.Config, log *logrus.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Run processes a single input file end to end.
func (g *Generator) Run(inputPath string) Result {
	result := Result{InputFile: inputPath}

	transactions, err := loadRecords(inputPath)
	if err != nil {
		result.Err = fmt.Errorf("failed to load records: %w", err)
		return result
	}
	if len(transactions) == 0 {
		result.Err = fmt.Errorf("%s: no transaction records found", inputPath)
		return result
	}

	doc, err := g.BuildDocument(transactions)
	if err != nil {
		result.Err = err
		return result
	}

	xmlBytes, err := doc.GenerateXML()
	if err != nil {
		result.Err = fmt.Errorf("failed to generate document: %w", err)
		return result
	}

	result.TransactionCount = len(transactions)

	if g.DryRun {
		g.log.WithFields(logrus.Fields{
			"input":        inputPath,
			"transactions": result.TransactionCount,
		}).Info("dry run, skipping output")
		result.Success = true
		return result
	}

	outputName := fileutil.GenerateOutputFileName(g.cfg.OutputName, g.cfg.FilePrefix)
	outputPath := filepath.Join(g.cfg.OutputDir, outputName)
	if err := fileutil.WriteFile(outputPath, xmlBytes); err != nil {
		result.Err = err
		return result
	}
	result.OutputFile = outputPath

	if _, err := fileutil.ArchiveFile(inputPath, g.cfg.ArchiveDir); err != nil {
		// The document exists at this point; a failed archival is worth a
		// warning but does not fail the run.
		g.log.WithError(err).WithField("input", inputPath).Warn("failed to archive input file")
	}

	g.log.WithFields(logrus.Fields{
		"input":        inputPath,
		"output":       outputPath,
		"transactions": result.TransactionCount,
	}).Info("document generated")

	result.Success = true
	return result
}

// BuildDocument assembles a direct-debit document from the configuration and
// the given transactions. The creditor identity is validated as part of
// assignment.
func (g *Generator) BuildDocument(transactions []sepa.Transaction) (*sepa.DirectDebitDocument, error) {
	header := sepa.NewHeader(g.cfg.InitiatingParty.Name)
	header.InitiatingPartyID = g.cfg.InitiatingParty.ID

	doc := sepa.NewDirectDebitDocument(sepa.Schema(g.cfg.Schema), header)
	doc.DefaultCollectionDate = g.cfg.DefaultCollectionDate(time.Now())
	doc.CreditorSchemeID = g.cfg.CreditorSchemeID
	doc.AccountCurrency = g.cfg.AccountCurrency
	doc.LocalInstrument = g.cfg.LocalInstrument
	doc.CategoryPurpose = g.cfg.CategoryPurpose
	doc.PaymentInfoID = g.cfg.PaymentInfoID

	err := doc.SetCreditor(sepa.AccountIdentity{
		Name: g.cfg.Creditor.Name,
		IBAN: g.cfg.Creditor.IBAN,
		BIC:  g.cfg.Creditor.BIC,
	})
	if err != nil {
		return nil, err
	}

	for _, tx := range transactions {
		doc.AddTransaction(tx)
	}

	return doc, nil
}

// loadRecords dispatches to the loader matching the file extension.
func loadRecords(path string) ([]sepa.Transaction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loader.FromCSV(path)
	case ".xlsx":
		return loader.FromXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format '%s'", filepath.Ext(path))
	}
}
