package loans

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termMonths        int
		expected          float64
	}{
		{
			name:              "Zero interest splits principal evenly",
			principal:         3000000,
			annualRatePercent: 0,
			termMonths:        60,
			expected:          50000.00,
		},
		{
			name:              "Standard 30-year mortgage",
			principal:         250000,
			annualRatePercent: 5.5,
			termMonths:        360,
			expected:          1419.47,
		},
		{
			name:              "5-year car loan",
			principal:         25000,
			annualRatePercent: 4.0,
			termMonths:        60,
			expected:          460.41,
		},
		{
			name:              "High interest loan",
			principal:         10000,
			annualRatePercent: 18.0,
			termMonths:        36,
			expected:          361.52,
		},
		{
			name:              "Single month term",
			principal:         5000,
			annualRatePercent: 3.0,
			termMonths:        1,
			expected:          5012.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateMonthlyPayment(tt.principal, tt.annualRatePercent, tt.termMonths)
			if err != nil {
				t.Fatalf("CalculateMonthlyPayment() unexpected error: %v", err)
			}
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CalculateMonthlyPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestCalculateMonthlyPaymentZeroRateProperty(t *testing.T) {
	tests := []struct {
		principal  float64
		termMonths int
	}{
		{3000000, 60},
		{1200, 12},
		{999.99, 3},
		{100, 1},
	}

	for _, tt := range tests {
		result, err := CalculateMonthlyPayment(tt.principal, 0, tt.termMonths)
		if err != nil {
			t.Fatalf("CalculateMonthlyPayment(%v, 0, %d) unexpected error: %v", tt.principal, tt.termMonths, err)
		}
		expected := math.Round(tt.principal/float64(tt.termMonths)*100) / 100
		if result != expected {
			t.Errorf("CalculateMonthlyPayment(%v, 0, %d) = %v, expected %v",
				tt.principal, tt.termMonths, result, expected)
		}
	}
}

func TestCalculateMonthlyPaymentInvalidInput(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termMonths        int
	}{
		{"Zero principal", 0, 5.0, 60},
		{"Negative principal", -1000, 5.0, 60},
		{"Principal over maximum", 200000000, 5.0, 60},
		{"Negative rate", 1000, -1.0, 60},
		{"Rate over maximum", 1000, 150.0, 60},
		{"Zero term", 1000, 5.0, 0},
		{"Negative term", 1000, 5.0, -12},
		{"Term over maximum", 1000, 5.0, 1200},
		{"NaN principal", math.NaN(), 5.0, 60},
		{"Infinite rate", 1000, math.Inf(1), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateMonthlyPayment(tt.principal, tt.annualRatePercent, tt.termMonths)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("CalculateMonthlyPayment() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name              string
		remainingBalance  float64
		annualRatePercent float64
		expected          float64
	}{
		{"Standard mortgage interest", 200000, 6.0, 1000.0},
		{"Car loan interest", 15000, 4.5, 56.25},
		{"Zero rate", 3000000, 0, 0},
		{"Zero balance", 0, 6.0, 0},
		{"Small balance", 1200, 12.0, 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(tt.remainingBalance, tt.annualRatePercent)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CalculateInterestPayment() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestCalculateQuote(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termMonths        int
		expected          Quote
	}{
		{
			name:              "Zero interest",
			principal:         3000000,
			annualRatePercent: 0,
			termMonths:        60,
			expected:          Quote{MonthlyPayment: 50000, TotalPayment: 3000000, TotalInterest: 0},
		},
		{
			name:              "Car loan",
			principal:         25000,
			annualRatePercent: 4.0,
			termMonths:        60,
			expected:          Quote{MonthlyPayment: 460.41, TotalPayment: 27624.60, TotalInterest: 2624.60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateQuote(tt.principal, tt.annualRatePercent, tt.termMonths)
			if err != nil {
				t.Fatalf("CalculateQuote() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CalculateQuote() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestCalculateQuoteInvalidInput(t *testing.T) {
	if _, err := CalculateQuote(-1, 5.0, 60); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("CalculateQuote() error = %v, expected ErrInvalidInput", err)
	}
}
