package fincalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoan_Annuity(t *testing.T) {
	// 10000 over 12 months at 12% p.a. -> classic annuity payment 888.49.
	result, err := Loan(10000, 12, 12)
	require.NoError(t, err)

	assert.InDelta(t, 888.49, result.MonthlyPayment, 0.01)
	assert.InDelta(t, 10661.85, result.TotalPayment, 0.05)
	assert.InDelta(t, 661.85, result.TotalInterest, 0.05)
}

func TestLoan_Schedule(t *testing.T) {
	result, err := Loan(10000, 12, 12)
	require.NoError(t, err)
	require.Len(t, result.Schedule, 12)

	first := result.Schedule[0]
	assert.Equal(t, 1, first.Month)
	// First month interest is 1% of the full principal.
	assert.InDelta(t, 100.0, first.Interest, 0.01)
	assert.InDelta(t, first.Payment-first.Interest, first.Principal, 1e-9)

	last := result.Schedule[len(result.Schedule)-1]
	assert.InDelta(t, 0, last.Balance, 0.01, "balance amortizes to zero")

	// Principal portion grows, interest portion shrinks.
	for i := 1; i < len(result.Schedule); i++ {
		assert.Greater(t, result.Schedule[i].Principal, result.Schedule[i-1].Principal)
		assert.Less(t, result.Schedule[i].Interest, result.Schedule[i-1].Interest)
	}
}

func TestLoan_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		months    int
		rate      float64
		want      error
	}{
		{"zero principal", 0, 12, 12, ErrInvalidAmount},
		{"negative principal", -1, 12, 12, ErrInvalidAmount},
		{"zero term", 1000, 0, 12, ErrInvalidTerm},
		{"zero rate", 1000, 12, 0, ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Loan(tt.principal, tt.months, tt.rate)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMortgage_FinancesPriceMinusDownPayment(t *testing.T) {
	mortgage, err := Mortgage(120000, 20000, 240, 9.5)
	require.NoError(t, err)

	loan, err := Loan(100000, 240, 9.5)
	require.NoError(t, err)

	assert.InDelta(t, loan.MonthlyPayment, mortgage.MonthlyPayment, 1e-9)
}

func TestMortgage_InvalidDownPayment(t *testing.T) {
	_, err := Mortgage(100000, 100000, 240, 9.5)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Mortgage(100000, -1, 240, 9.5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
