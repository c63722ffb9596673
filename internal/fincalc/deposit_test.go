package fincalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_SimpleAndCompound(t *testing.T) {
	// 10000 for 12 months at 10% p.a., refinancing 8%.
	result, err := Deposit(10000, 12, 10, 8)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, result.SimpleInterest, 1e-9)

	wantCompound := 10000 * (math.Pow(1+0.10/12, 12) - 1)
	assert.InDelta(t, wantCompound, result.CompoundInterest, 1e-9)
	assert.Greater(t, result.CompoundInterest, result.SimpleInterest)

	wantRef := 10000 * (math.Pow(1+0.08/12, 12) - 1)
	assert.InDelta(t, wantRef, result.RefinancingInterest, 1e-9)
}

func TestDeposit_HalfYearSimple(t *testing.T) {
	result, err := Deposit(5000, 6, 12, 10)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, result.SimpleInterest, 1e-9)
}

func TestDeposit_InvalidInputs(t *testing.T) {
	_, err := Deposit(0, 12, 10, 8)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Deposit(1000, -3, 10, 8)
	assert.ErrorIs(t, err, ErrInvalidTerm)

	_, err = Deposit(1000, 12, 0, 8)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = Deposit(1000, 12, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidRate)
}
