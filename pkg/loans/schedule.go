package loans

import (
	"time"

	"go.uber.org/zap"

	"loanledger/pkg/datetime"
	"loanledger/pkg/mathutil"
)

// ScheduleGenerator builds amortization schedules for new loans.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the complete ordered amortization schedule for the
// given loan parameters. The running balance is kept at full precision between
// periods; stored fields are rounded to currency precision. Identical inputs
// always yield an identical schedule.
func (g *ScheduleGenerator) GenerateSchedule(principal, annualRatePercent float64, termMonths int, monthlyPayment float64, startDate time.Time) ([]ScheduledPayment, error) {
	if err := ValidateLoanParams(principal, annualRatePercent, termMonths); err != nil {
		return nil, err
	}

	schedule := make([]ScheduledPayment, 0, termMonths)
	balance := principal

	for i := 0; i < termMonths; i++ {
		interest := CalculateInterestPayment(balance, annualRatePercent)
		principalPortion := monthlyPayment - interest
		balance -= principalPortion

		paymentAmount := monthlyPayment
		if i == termMonths-1 {
			// The rounded level payment leaves a small residual after the
			// final period. Fold it into the last payment and its principal
			// portion so the schedule terminates at exactly zero.
			paymentAmount += balance
			principalPortion += balance
			balance = 0
		}

		schedule = append(schedule, ScheduledPayment{
			PaymentNumber:    i + 1,
			DueDate:          datetime.AddMonths(startDate, i+1),
			PaymentAmount:    mathutil.Round(paymentAmount),
			Interest:         mathutil.Round(interest),
			Principal:        mathutil.Round(principalPortion),
			RemainingBalance: mathutil.Round(balance),
			Status:           StatusUpcoming,
		})
	}

	g.logger.Debug("generated amortization schedule",
		zap.String("op", "loans.GenerateSchedule"),
		zap.Int("termMonths", termMonths),
		zap.Float64("monthlyPayment", monthlyPayment),
		zap.Float64("terminalBalance", schedule[len(schedule)-1].RemainingBalance),
	)

	return schedule, nil
}

// NewLoan derives the monthly payment for the given parameters, materializes
// the full schedule, and returns the initial loan summary pointing at the
// first installment.
func (g *ScheduleGenerator) NewLoan(params LoanParams) (Loan, []ScheduledPayment, error) {
	monthlyPayment, err := CalculateMonthlyPayment(params.Principal, params.InterestRate, params.TermMonths)
	if err != nil {
		return Loan{}, nil, err
	}

	schedule, err := g.GenerateSchedule(params.Principal, params.InterestRate, params.TermMonths, monthlyPayment, params.StartDate)
	if err != nil {
		return Loan{}, nil, err
	}

	first := schedule[0]
	loan := Loan{
		ID:                params.ID,
		LenderName:        params.LenderName,
		Principal:         params.Principal,
		InterestRate:      params.InterestRate,
		TermMonths:        params.TermMonths,
		StartDate:         params.StartDate,
		MonthlyPayment:    monthlyPayment,
		RemainingBalance:  params.Principal,
		TotalInterestPaid: 0,
		NextPaymentDate:   first.DueDate,
		NextPaymentAmount: first.PaymentAmount,
		PaidMonths:        0,
	}

	g.logger.Info("created loan",
		zap.String("op", "loans.NewLoan"),
		zap.String("loan", loan.ID),
		zap.Float64("principal", loan.Principal),
		zap.Float64("rate", loan.InterestRate),
		zap.Int("termMonths", loan.TermMonths),
	)

	return loan, schedule, nil
}
