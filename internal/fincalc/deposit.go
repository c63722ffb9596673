package fincalc

import "math"

// DepositResult compares simple and monthly-compound interest for a term
// deposit, plus the compound yield at the refinancing rate for reference.
type DepositResult struct {
	SimpleInterest      float64
	CompoundInterest    float64
	RefinancingInterest float64
}

// Deposit computes the interest earned on principal over months at the given
// annual percentage rate: simple interest P·r·(m/12) and monthly-compound
// P·((1+r/12)^m − 1). The refinancing rate feeds the same compound formula
// for comparison.
func Deposit(principal float64, months int, ratePct, refinancingRatePct float64) (*DepositResult, error) {
	if principal <= 0 {
		return nil, ErrInvalidAmount
	}
	if months <= 0 {
		return nil, ErrInvalidTerm
	}
	if ratePct <= 0 || refinancingRatePct <= 0 {
		return nil, ErrInvalidRate
	}

	rate := ratePct / 100
	refRate := refinancingRatePct / 100
	term := float64(months)

	return &DepositResult{
		SimpleInterest:      principal * rate * (term / 12),
		CompoundInterest:    principal * (math.Pow(1+rate/12, term) - 1),
		RefinancingInterest: principal * (math.Pow(1+refRate/12, term) - 1),
	}, nil
}
