// Package constants provides shared constants for the loanledger application.
package constants

// DateLayout is the calendar-date format used in config files and API payloads.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Loan parameter bounds enforced at quote and creation time.
const (
	// MaxPrincipal is the largest principal accepted for a loan
	MaxPrincipal = 100000000.0

	// MaxInterestRate is the largest annual rate (percent) accepted
	MaxInterestRate = 100.0

	// MaxTermMonths is the longest loan term accepted
	MaxTermMonths = 600
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)
