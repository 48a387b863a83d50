package loans

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"loanledger/pkg/mathutil"
)

// ApplyPayment applies a payment amount against the loan and its schedule,
// returning the next loan state, the next schedule, and the resulting payment
// record. Inputs are never mutated; on error the caller's state is unchanged.
//
// The interest charged is derived from the loan's current balance, not from
// the matched schedule entry, so over- and underpayments are tolerated. Exactly
// one installment, the earliest Upcoming one, transitions to Paid per call.
func ApplyPayment(loan Loan, schedule []ScheduledPayment, amount float64, now time.Time) (Loan, []ScheduledPayment, Payment, error) {
	if loan.TermMonths == 0 || len(schedule) == 0 {
		return loan, schedule, Payment{}, ErrNoLoanLoaded
	}
	if !mathutil.IsFinite(amount) || amount <= 0 {
		return loan, schedule, Payment{}, fmt.Errorf("payment of %v rejected: %w", amount, ErrInvalidAmount)
	}

	next := -1
	for i := range schedule {
		if schedule[i].Status == StatusUpcoming {
			next = i
			break
		}
	}
	if next == -1 {
		return loan, schedule, Payment{}, ErrLoanFullyPaid
	}

	interest := mathutil.Round(CalculateInterestPayment(loan.RemainingBalance, loan.InterestRate))
	principalPaid := amount - interest
	newBalance := loan.RemainingBalance - principalPaid

	updated := make([]ScheduledPayment, len(schedule))
	copy(updated, schedule)
	updated[next].Status = StatusPaid

	record := Payment{
		ID:            uuid.NewString(),
		Date:          now,
		Amount:        amount,
		PrincipalPaid: mathutil.Round(principalPaid),
		InterestPaid:  interest,
		NewBalance:    mathutil.Round(newBalance),
	}

	loan.RemainingBalance = mathutil.Round(mathutil.Clamp(newBalance, 0, loan.Principal))
	loan.TotalInterestPaid = mathutil.Round(loan.TotalInterestPaid + interest)
	loan.PaidMonths++

	if upcoming, ok := nextUpcoming(updated); ok {
		loan.NextPaymentDate = upcoming.DueDate
		loan.NextPaymentAmount = upcoming.PaymentAmount
	} else {
		// Terminal state: nothing left to pay, the date stays put.
		loan.NextPaymentAmount = 0
	}

	return loan, updated, record, nil
}

func nextUpcoming(schedule []ScheduledPayment) (ScheduledPayment, bool) {
	for i := range schedule {
		if schedule[i].Status == StatusUpcoming {
			return schedule[i], true
		}
	}
	return ScheduledPayment{}, false
}
