// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"loanledger/pkg/constants"
	"loanledger/pkg/loans"
	"loanledger/pkg/validation"
)

// Configuration holds all configuration for loanledger.
type Configuration struct {
	Loan    LoanConfig    `yaml:"loan,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
}

// LoanConfig describes the loan the session is seeded with at startup.
type LoanConfig struct {
	ID           string  `yaml:"id"`
	LenderName   string  `yaml:"lenderName"`
	Principal    float64 `yaml:"principal"`
	InterestRate float64 `yaml:"interestRate"`
	TermMonths   int     `yaml:"termMonths"`
	StartDate    string  `yaml:"startDate"` // YYYY-MM-DD; empty means first of the current month
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// CacheConfig holds quote-cache options. When disabled the application uses a
// process-local cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled,omitempty"`
	Address string        `yaml:"address,omitempty"`
	TTL     time.Duration `yaml:"ttl,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := viper.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if conf.Cache.TTL == 0 {
		conf.Cache.TTL = 5 * time.Minute
	}
}

// Validate checks the configuration for values that would fail at runtime.
func (conf *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		return err
	}
	if conf.Cache.Enabled && conf.Cache.Address == "" {
		return fmt.Errorf("cache enabled but no address configured")
	}
	if conf.Loan.Principal != 0 {
		if err := loans.ValidateLoanParams(conf.Loan.Principal, conf.Loan.InterestRate, conf.Loan.TermMonths); err != nil {
			return fmt.Errorf("loan config: %w", err)
		}
	}
	return nil
}

// HasLoan reports whether the configuration seeds an initial loan.
func (conf *Configuration) HasLoan() bool {
	return conf.Loan.Principal != 0
}

// LoanParams converts the configured loan block into engine parameters. An
// empty start date defaults to the first day of the current month, matching
// how a newly originated loan is dated.
func (conf *Configuration) LoanParams(now time.Time) (loans.LoanParams, error) {
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if conf.Loan.StartDate != "" {
		parsed, err := time.Parse(constants.DateLayout, conf.Loan.StartDate)
		if err != nil {
			return loans.LoanParams{}, fmt.Errorf("loan startDate %q: %w", conf.Loan.StartDate, err)
		}
		startDate = parsed
	}

	return loans.LoanParams{
		ID:           conf.Loan.ID,
		LenderName:   conf.Loan.LenderName,
		Principal:    conf.Loan.Principal,
		InterestRate: conf.Loan.InterestRate,
		TermMonths:   conf.Loan.TermMonths,
		StartDate:    startDate,
	}, nil
}
