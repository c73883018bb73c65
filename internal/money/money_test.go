package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarsToCentsRoundTrip(t *testing.T) {
	// Every amount with at most two decimal digits must survive
	// dollars -> cents -> dollars unchanged.
	cases := []float64{0.01, 0.07, 0.10, 0.99, 1, 6.66, 12.34, 15.99, 99.99, 157.95, 666, 448.00, 15795.95}
	for _, dollars := range cases {
		cents, err := DollarsToCents(dollars)
		require.NoError(t, err)
		assert.Equal(t, dollars, CentsToDollars(cents), "amount %v", dollars)
	}
}

func TestDollarsToCentsRounds(t *testing.T) {
	cents, err := DollarsToCents(10.005)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), cents)
}

func TestDollarsToCentsRejectsInvalid(t *testing.T) {
	for _, dollars := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1), 1e17} {
		_, err := DollarsToCents(dollars)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", dollars)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.34", FormatCents(1234))
	assert.Equal(t, "$6.66", FormatCents(666))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$1000.00", FormatCents(100000))
	assert.Equal(t, "-$0.50", FormatCents(-50))
}
