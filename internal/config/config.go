// =============================================================================
// sepagen - Configuration Module
// =============================================================================
//
// This module loads and validates the run configuration: the initiating
// party, the creditor identity and scheme identification, the schema variant
// to generate against, collection-date defaults, and the input/output
// directories of the file pipeline.
//
// Loading follows read -> unmarshal -> apply defaults -> validate; a config
// that loads without error is complete enough to drive a generation run.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PartyConfig identifies the initiating party of every generated document.
type PartyConfig struct {
	// Name is the initiating party's name. Required.
	Name string `yaml:"name"`

	// ID is an optional organisation identification.
	ID string `yaml:"id,omitempty"`
}

// CreditorConfig is the creditor account the collections are credited to.
type CreditorConfig struct {
	// Name is the creditor's display name. Required.
	Name string `yaml:"name"`

	// IBAN is the creditor account identifier. Required.
	IBAN string `yaml:"iban"`

	// BIC is the creditor bank identifier. Required.
	BIC string `yaml:"bic"`
}

// Config holds the full run configuration. This is loaded from a single
// YAML file.
type Config struct {
	// Schema is the pain.008 variant to generate against.
	// Default: "pain.008.001.02"
	Schema string `yaml:"schema"`

	// InitiatingParty identifies the party submitting the file.
	InitiatingParty PartyConfig `yaml:"initiating_party"`

	// Creditor is the collecting account identity.
	Creditor CreditorConfig `yaml:"creditor"`

	// CreditorSchemeID is the creditor's scheme identification,
	// e.g. "DE98ZZZ09999999999". Required.
	CreditorSchemeID string `yaml:"creditor_scheme_id"`

	// AccountCurrency is the creditor account currency.
	// Default: "EUR"
	AccountCurrency string `yaml:"account_currency"`

	// LocalInstrument is the scheme local instrument code.
	// Default: "CORE"
	LocalInstrument string `yaml:"local_instrument"`

	// CategoryPurpose is an optional category-purpose code applied to
	// every payment block.
	CategoryPurpose string `yaml:"category_purpose,omitempty"`

	// PaymentInfoID is an optional fixed payment-information identifier.
	// When empty, each document's message identification is used.
	PaymentInfoID string `yaml:"payment_info_id,omitempty"`

	// CollectionDate is the default requested collection date in ISO form
	// (YYYY-MM-DD). When empty, today plus CollectionLeadDays is used at
	// generation time.
	CollectionDate string `yaml:"collection_date,omitempty"`

	// CollectionLeadDays is the offset from today used when CollectionDate
	// is not set. SEPA core requires lead time before presentment.
	// Default: 2
	CollectionLeadDays int `yaml:"collection_lead_days"`

	// InputDir is the directory scanned for transaction record files
	// (CSV or XLSX).
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory generated XML files are written to.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory processed input files are moved to.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// OutputName is the template for output file names. Placeholders:
	//   {prefix}    - the configured file prefix
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	// Default: "{prefix}_{timestamp}_{uuid}.xml"
	OutputName string `yaml:"output_name"`

	// FilePrefix is substituted for {prefix} in OutputName.
	// Default: "pain008"
	FilePrefix string `yaml:"file_prefix"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Load reads, parses, defaults, and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.Schema == "" {
		cfg.Schema = "pain.008.001.02"
	}
	if cfg.AccountCurrency == "" {
		cfg.AccountCurrency = "EUR"
	}
	if cfg.LocalInstrument == "" {
		cfg.LocalInstrument = "CORE"
	}
	if cfg.CollectionLeadDays == 0 {
		cfg.CollectionLeadDays = 2
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "{prefix}_{timestamp}_{uuid}.xml"
	}
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = "pain008"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks fields the generator cannot default.
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.InitiatingParty.Name) == "" {
		return fmt.Errorf("initiating_party.name is required")
	}
	if strings.TrimSpace(cfg.Creditor.Name) == "" {
		return fmt.Errorf("creditor.name is required")
	}
	if strings.TrimSpace(cfg.Creditor.IBAN) == "" {
		return fmt.Errorf("creditor.iban is required")
	}
	if strings.TrimSpace(cfg.CreditorSchemeID) == "" {
		return fmt.Errorf("creditor_scheme_id is required")
	}
	if cfg.CollectionDate != "" {
		if _, err := time.Parse("2006-01-02", cfg.CollectionDate); err != nil {
			return fmt.Errorf("collection_date must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

// DefaultCollectionDate resolves the document default collection date: the
// configured fixed date when set, otherwise now plus the configured lead
// days.
func (c *Config) DefaultCollectionDate(now time.Time) time.Time {
	if c.CollectionDate != "" {
		d, err := time.Parse("2006-01-02", c.CollectionDate)
		if err == nil {
			return d
		}
	}
	return now.AddDate(0, 0, c.CollectionLeadDays)
}
