// Package output provides utilities for formatting and displaying loan
// schedules and payment history.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"loanledger/pkg/format"
	"loanledger/pkg/loans"
)

// PrettySchedule writes a human-readable amortization table.
func PrettySchedule(w io.Writer, loan loans.Loan, schedule []loans.ScheduledPayment) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "--- Amortization schedule for loan %s (%s) ---\n", loan.ID, loan.LenderName)
	_, _ = p.Fprintf(w, "Principal %s at %s over %d months, monthly payment %s\n",
		format.Currency(loan.Principal), format.Rate(loan.InterestRate), loan.TermMonths,
		format.Currency(loan.MonthlyPayment))
	_, _ = fmt.Fprintf(w, "#    | Due date   | Payment        | Interest       | Principal      | Balance        | Status\n")
	_, _ = fmt.Fprintf(w, "____ | __________ | ______________ | ______________ | ______________ | ______________ | ______\n")
	for _, entry := range schedule {
		_, _ = fmt.Fprintf(w, "%-4d | %s | %14s | %14s | %14s | %14s | %s\n",
			entry.PaymentNumber,
			format.Date(entry.DueDate),
			format.NumericCurrency(entry.PaymentAmount),
			format.NumericCurrency(entry.Interest),
			format.NumericCurrency(entry.Principal),
			format.NumericCurrency(entry.RemainingBalance),
			entry.Status,
		)
	}
}

// CsvSchedule writes the schedule in comma-separated value format.
func CsvSchedule(w io.Writer, schedule []loans.ScheduledPayment) {
	_, _ = fmt.Fprintf(w, `"number","dueDate","paymentAmount","interest","principal","remainingBalance","status"`)
	_, _ = fmt.Fprintf(w, "\n")
	for _, entry := range schedule {
		_, _ = fmt.Fprintf(w, `"%d","%s","%.2f","%.2f","%.2f","%.2f","%s"`,
			entry.PaymentNumber,
			format.Date(entry.DueDate),
			entry.PaymentAmount,
			entry.Interest,
			entry.Principal,
			entry.RemainingBalance,
			entry.Status,
		)
		_, _ = fmt.Fprintf(w, "\n")
	}
}

// PrettyHistory writes the payment history as a human-readable table.
func PrettyHistory(w io.Writer, history []loans.Payment) {
	if len(history) == 0 {
		_, _ = fmt.Fprintf(w, "No payments recorded.\n")
		return
	}
	_, _ = fmt.Fprintf(w, "Date       | Amount         | Principal      | Interest       | New balance\n")
	_, _ = fmt.Fprintf(w, "__________ | ______________ | ______________ | ______________ | ___________\n")
	for _, payment := range history {
		_, _ = fmt.Fprintf(w, "%s | %14s | %14s | %14s | %s\n",
			format.Date(payment.Date),
			format.NumericCurrency(payment.Amount),
			format.NumericCurrency(payment.PrincipalPaid),
			format.NumericCurrency(payment.InterestPaid),
			format.NumericCurrency(payment.NewBalance),
		)
	}
}
