// Package fincalc implements the standalone financial calculators: loan and
// mortgage annuity schedules, deposit interest, and currency conversion.
// All functions are pure and closed-form.
package fincalc

import (
	"errors"
	"math"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidTerm   = errors.New("term must be a positive number of months")
	ErrInvalidRate   = errors.New("rate must be positive")
)

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// LoanResult holds the annuity calculation output.
type LoanResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Schedule       []ScheduleRow
}

// Loan computes an annuity loan: fixed monthly payment
// P·r·(1+r)^n / ((1+r)^n − 1) with the monthly rate r derived from the
// annual percentage rate, plus the full amortization schedule.
func Loan(principal float64, months int, annualRatePct float64) (*LoanResult, error) {
	if principal <= 0 {
		return nil, ErrInvalidAmount
	}
	if months <= 0 {
		return nil, ErrInvalidTerm
	}
	if annualRatePct <= 0 {
		return nil, ErrInvalidRate
	}

	rate := annualRatePct / 100 / 12
	factor := math.Pow(1+rate, float64(months))
	monthly := principal * rate * factor / (factor - 1)
	total := monthly * float64(months)

	schedule := make([]ScheduleRow, 0, months)
	balance := principal
	for month := 1; month <= months; month++ {
		interest := balance * rate
		principalPart := monthly - interest
		balance = math.Max(0, balance-principalPart)
		schedule = append(schedule, ScheduleRow{
			Month:     month,
			Payment:   monthly,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return &LoanResult{
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		Schedule:       schedule,
	}, nil
}

// Mortgage computes an annuity mortgage over the financed part of the
// property price (price minus down payment).
func Mortgage(price, downPayment float64, months int, annualRatePct float64) (*LoanResult, error) {
	if price <= 0 || downPayment < 0 || downPayment >= price {
		return nil, ErrInvalidAmount
	}
	return Loan(price-downPayment, months, annualRatePct)
}
