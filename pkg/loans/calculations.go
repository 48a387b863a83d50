package loans

import (
	"fmt"
	"math"

	"loanledger/pkg/constants"
	"loanledger/pkg/mathutil"
)

// ValidateLoanParams checks the numeric loan parameters shared by quoting and
// loan creation. Violations are reported as InvalidInput errors.
func ValidateLoanParams(principal, annualRatePercent float64, termMonths int) error {
	if !mathutil.IsFinite(principal) || !mathutil.IsFinite(annualRatePercent) {
		return fmt.Errorf("non-finite loan parameters: %w", ErrInvalidInput)
	}
	if principal <= 0 {
		return fmt.Errorf("principal must be positive, got %.2f: %w", principal, ErrInvalidInput)
	}
	if principal > constants.MaxPrincipal {
		return fmt.Errorf("principal %.2f exceeds maximum %.2f: %w", principal, constants.MaxPrincipal, ErrInvalidInput)
	}
	if annualRatePercent < 0 {
		return fmt.Errorf("interest rate must not be negative, got %.2f: %w", annualRatePercent, ErrInvalidInput)
	}
	if annualRatePercent > constants.MaxInterestRate {
		return fmt.Errorf("interest rate %.2f exceeds maximum %.2f: %w", annualRatePercent, constants.MaxInterestRate, ErrInvalidInput)
	}
	if termMonths < 1 {
		return fmt.Errorf("term must be at least one month, got %d: %w", termMonths, ErrInvalidInput)
	}
	if termMonths > constants.MaxTermMonths {
		return fmt.Errorf("term %d exceeds maximum %d months: %w", termMonths, constants.MaxTermMonths, ErrInvalidInput)
	}
	return nil
}

// CalculateMonthlyPayment returns the level monthly payment that fully
// amortizes the principal over the term at the given nominal annual rate,
// compounded monthly. The result is rounded to currency precision before any
// other use.
func CalculateMonthlyPayment(principal, annualRatePercent float64, termMonths int) (float64, error) {
	if err := ValidateLoanParams(principal, annualRatePercent, termMonths); err != nil {
		return 0, err
	}

	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term.
		return mathutil.Round(principal / float64(termMonths)), nil
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.0+periodicRate, float64(termMonths))
	payment := principal * periodicRate * power / (power - 1.0)
	return mathutil.Round(payment), nil
}

// CalculateInterestPayment returns the interest accrued on the remaining
// balance for one month. Callers round at the point of use.
func CalculateInterestPayment(remainingBalance, annualRatePercent float64) float64 {
	return remainingBalance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateQuote computes the cost summary of a prospective loan without
// creating it.
func CalculateQuote(principal, annualRatePercent float64, termMonths int) (Quote, error) {
	monthly, err := CalculateMonthlyPayment(principal, annualRatePercent, termMonths)
	if err != nil {
		return Quote{}, err
	}

	total := monthly * float64(termMonths)
	return Quote{
		MonthlyPayment: monthly,
		TotalPayment:   mathutil.Round(total),
		TotalInterest:  mathutil.Round(total - principal),
	}, nil
}
