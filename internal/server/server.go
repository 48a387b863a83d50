// Package server exposes the loan session over an HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"loanledger/internal/session"
	"loanledger/pkg/constants"
	"loanledger/pkg/loans"
)

type handler struct {
	logger  *zap.Logger
	session *session.Session
	version string
}

// NewHandler constructs the HTTP handler serving the loan API.
func NewHandler(logger *zap.Logger, sess *session.Session, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, session: sess, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/loan", h.handleCreateLoan)
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/payment", h.handlePayment)
	mux.HandleFunc("/api/quote", h.handleQuote)
	mux.HandleFunc("/api/export", h.handleExport)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type createLoanRequest struct {
	ID           string  `json:"id"`
	LenderName   string  `json:"lenderName"`
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interestRate"`
	TermMonths   int     `json:"termMonths"`
	StartDate    string  `json:"startDate"` // YYYY-MM-DD
}

type paymentRequest struct {
	Amount float64 `json:"amount"`
}

type quoteRequest struct {
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interestRate"`
	TermMonths   int     `json:"termMonths"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *handler) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var req createLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return
	}

	startDate, err := time.Parse(constants.DateLayout, req.StartDate)
	if err != nil {
		h.writeJSONError(w, http.StatusBadRequest, fmt.Errorf("startDate must be YYYY-MM-DD: %w", err))
		return
	}

	snap, err := h.session.CreateLoan(loans.LoanParams{
		ID:           req.ID,
		LenderName:   req.LenderName,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
		StartDate:    startDate,
	})
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, snap)
}

func (h *handler) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	snap, err := h.session.State()
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, snap)
}

func (h *handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return
	}

	record, err := h.session.ApplyPayment(req.Amount)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return
	}

	quote, err := h.session.Quote(r.Context(), req.Principal, req.InterestRate, req.TermMonths)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, quote)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	snap, err := h.session.State()
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		h.writeJSONError(w, http.StatusInternalServerError, fmt.Errorf("failed to serialize state: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="loan-state.yaml"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

// writeEngineError maps engine error kinds onto HTTP statuses.
func (h *handler) writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, loans.ErrInvalidInput), errors.Is(err, loans.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, loans.ErrNoLoanLoaded):
		status = http.StatusNotFound
	case errors.Is(err, loans.ErrLoanFullyPaid):
		status = http.StatusConflict
	}

	h.logger.Debug("request rejected",
		zap.String("op", "server.writeEngineError"),
		zap.Int("status", status),
		zap.String("kind", string(loans.ErrorKind(err))),
		zap.Error(err),
	)

	h.writeJSON(w, status, errorResponse{Error: err.Error(), Kind: string(loans.ErrorKind(err))})
}

func (h *handler) writeJSONError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *handler) writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
