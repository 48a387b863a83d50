// Package session owns the current loan snapshot for a single servicing
// session and serializes all mutating engine calls.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"loanledger/internal/cache"
	"loanledger/pkg/loans"
)

// Snapshot is a consistent, caller-owned view of the session state. Mutating
// the returned slices never affects the session.
type Snapshot struct {
	Loan     loans.Loan               `json:"loan"`
	Schedule []loans.ScheduledPayment `json:"schedule"`
	History  []loans.Payment          `json:"history"`
}

// Session holds one loan, its schedule, and its payment history. Mutations
// happen under an exclusive lock and swap in whole new state produced by the
// engine, so readers always observe loan and schedule in agreement.
type Session struct {
	mu        sync.RWMutex
	logger    *zap.Logger
	generator *loans.ScheduleGenerator
	quotes    cache.Cache
	quoteTTL  time.Duration

	loaded   bool
	loan     loans.Loan
	schedule []loans.ScheduledPayment
	history  []loans.Payment
}

// New creates an empty session. A nil cache disables quote caching.
func New(logger *zap.Logger, quotes cache.Cache, quoteTTL time.Duration) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger:    logger,
		generator: loans.NewScheduleGenerator(logger),
		quotes:    quotes,
		quoteTTL:  quoteTTL,
	}
}

// CreateLoan initializes the session with a new loan and its derived schedule,
// replacing any previous loan and clearing the payment history.
func (s *Session) CreateLoan(params loans.LoanParams) (Snapshot, error) {
	loan, schedule, err := s.generator.NewLoan(params)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.loaded = true
	s.loan = loan
	s.schedule = schedule
	s.history = nil
	s.mu.Unlock()

	return s.State()
}

// State returns a read-only snapshot of the current loan, schedule, and
// history. Calls with no intervening mutation return identical values.
func (s *Session) State() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return Snapshot{}, loans.ErrNoLoanLoaded
	}

	schedule := make([]loans.ScheduledPayment, len(s.schedule))
	copy(schedule, s.schedule)
	history := make([]loans.Payment, len(s.history))
	copy(history, s.history)

	return Snapshot{Loan: s.loan, Schedule: schedule, History: history}, nil
}

// ApplyPayment applies a payment dated now.
func (s *Session) ApplyPayment(amount float64) (loans.Payment, error) {
	return s.ApplyPaymentAt(amount, time.Now())
}

// ApplyPaymentAt applies a payment with an explicit transaction time. The
// loan, schedule, and history all advance together or not at all.
func (s *Session) ApplyPaymentAt(amount float64, now time.Time) (loans.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return loans.Payment{}, loans.ErrNoLoanLoaded
	}

	loan, schedule, record, err := loans.ApplyPayment(s.loan, s.schedule, amount, now)
	if err != nil {
		s.logger.Warn("payment rejected",
			zap.String("op", "session.ApplyPayment"),
			zap.String("loan", s.loan.ID),
			zap.Float64("amount", amount),
			zap.String("kind", string(loans.ErrorKind(err))),
		)
		return loans.Payment{}, err
	}

	s.loan = loan
	s.schedule = schedule
	s.history = append(s.history, record)

	s.logger.Info("payment applied",
		zap.String("op", "session.ApplyPayment"),
		zap.String("loan", loan.ID),
		zap.String("payment", record.ID),
		zap.Float64("amount", record.Amount),
		zap.Float64("remainingBalance", loan.RemainingBalance),
		zap.Int("paidMonths", loan.PaidMonths),
	)

	return record, nil
}

// Quote computes the cost summary for prospective loan parameters, consulting
// the quote cache first. Cache failures fall back to recomputation.
func (s *Session) Quote(ctx context.Context, principal, annualRatePercent float64, termMonths int) (loans.Quote, error) {
	key := fmt.Sprintf("quote:%.2f:%.4f:%d", principal, annualRatePercent, termMonths)

	if s.quotes != nil {
		if raw, ok := s.quotes.Get(ctx, key); ok {
			var quote loans.Quote
			if err := json.Unmarshal([]byte(raw), &quote); err == nil {
				return quote, nil
			}
			s.logger.Warn("discarding malformed cached quote",
				zap.String("op", "session.Quote"),
				zap.String("key", key),
			)
		}
	}

	quote, err := loans.CalculateQuote(principal, annualRatePercent, termMonths)
	if err != nil {
		return loans.Quote{}, err
	}

	if s.quotes != nil {
		raw, err := json.Marshal(quote)
		if err == nil {
			if err := s.quotes.Set(ctx, key, string(raw), s.quoteTTL); err != nil {
				// Not critical; the next call recomputes.
				s.logger.Warn("failed to cache quote",
					zap.String("op", "session.Quote"),
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}
	}

	return quote, nil
}
