// Package loans implements the amortization engine: payment math, schedule
// generation, and payment application for a single fixed-rate loan.
package loans

import "time"

// PaymentStatus describes the state of one scheduled installment.
type PaymentStatus string

const (
	// StatusUpcoming marks an installment that has not been paid yet.
	StatusUpcoming PaymentStatus = "Upcoming"

	// StatusPaid marks an installment covered by a completed payment.
	StatusPaid PaymentStatus = "Paid"

	// StatusOverdue is reserved; no engine code path assigns it.
	StatusOverdue PaymentStatus = "Overdue"
)

// LoanParams holds the caller-supplied parameters for creating a loan.
type LoanParams struct {
	ID           string    `json:"id"`
	LenderName   string    `json:"lenderName"`
	Principal    float64   `json:"principal"`
	InterestRate float64   `json:"interestRate"` // annual percentage rate
	TermMonths   int       `json:"termMonths"`
	StartDate    time.Time `json:"startDate"`
}

// Loan is the aggregate summary of a single loan. Principal, InterestRate,
// TermMonths, StartDate, and MonthlyPayment are fixed at creation; the
// remaining fields advance as payments are applied.
type Loan struct {
	ID                string    `json:"id"`
	LenderName        string    `json:"lenderName"`
	Principal         float64   `json:"principal"`
	InterestRate      float64   `json:"interestRate"`
	TermMonths        int       `json:"termMonths"`
	StartDate         time.Time `json:"startDate"`
	MonthlyPayment    float64   `json:"monthlyPayment"`
	RemainingBalance  float64   `json:"remainingBalance"`
	TotalInterestPaid float64   `json:"totalInterestPaid"`
	NextPaymentDate   time.Time `json:"nextPaymentDate"`
	NextPaymentAmount float64   `json:"nextPaymentAmount"`
	PaidMonths        int       `json:"paidMonths"`
}

// ScheduledPayment is one entry in the amortization table, numbered 1..TermMonths.
// Its monetary fields represent the plan; they are not rewritten when the actual
// payment differs from the scheduled amount.
type ScheduledPayment struct {
	PaymentNumber    int           `json:"paymentNumber"`
	DueDate          time.Time     `json:"dueDate"`
	PaymentAmount    float64       `json:"paymentAmount"`
	Interest         float64       `json:"interest"`
	Principal        float64       `json:"principal"`
	RemainingBalance float64       `json:"remainingBalance"`
	Status           PaymentStatus `json:"status"`
}

// Payment is an immutable record of a completed transaction. NewBalance keeps
// the signed value; the loan's displayed balance is clamped at zero separately.
type Payment struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	PrincipalPaid float64   `json:"principalPaid"`
	InterestPaid  float64   `json:"interestPaid"`
	NewBalance    float64   `json:"newBalance"`
}

// Quote summarizes the cost of a prospective loan without creating one.
type Quote struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}
