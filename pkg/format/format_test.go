package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small amount", 12.3, "$12.30"},
		{"Thousands", 1234.56, "$1,234.56"},
		{"Millions", 3000000, "$3,000,000.00"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Exactly three digits", 999.99, "$999.99"},
		{"Four digits", 1000, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.amount); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive", 2950000, "2,950,000.00"},
		{"Negative", -50.5, "-50.50"},
		{"Zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := NumericCurrency(tt.amount); result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestRate(t *testing.T) {
	if result := Rate(5.25); result != "5.25%" {
		t.Errorf("Rate(5.25) = %q, expected %q", result, "5.25%")
	}
	if result := Rate(0); result != "0.00%" {
		t.Errorf("Rate(0) = %q, expected %q", result, "0.00%")
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if result := Date(d); result != "2024-02-01" {
		t.Errorf("Date() = %q, expected %q", result, "2024-02-01")
	}
}
