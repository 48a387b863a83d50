// Package format provides presentation formatting for currency, rates, and dates.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"loanledger/pkg/constants"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := groupThousands(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + groupThousands(math.Abs(amount))
}

// Rate returns an annual percentage rate string (e.g., "5.25%").
func Rate(annualRatePercent float64) string {
	return fmt.Sprintf("%.2f%%", annualRatePercent)
}

// Date returns the calendar-date representation used at API and output boundaries.
func Date(t time.Time) string {
	return t.Format(constants.DateLayout)
}

func groupThousands(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	intPart, decPart, found := strings.Cut(formatted, ".")
	if !found {
		decPart = "00"
	}

	if len(intPart) <= 3 {
		return intPart + "." + decPart
	}

	var builder strings.Builder
	offset := len(intPart) % 3
	if offset > 0 {
		builder.WriteString(intPart[:offset])
	}
	for i := offset; i < len(intPart); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(intPart[i : i+3])
	}
	return builder.String() + "." + decPart
}
