package estable

import (
	"testing"

	"estable/core"
	"estable/pkg/number"

	"github.com/bmizerany/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMint(t *testing.T) {
	minted, required, err := ComputeMint(number.Decimal("100"), number.Decimal("150"), 100, 15000)
	require.Nil(t, err)
	assert.Equal(t, "100", minted.String())
	assert.Equal(t, "150", required.String())

	// exactly at the requirement passes, one below fails
	_, _, err = ComputeMint(number.Decimal("100"), number.Decimal("149"), 100, 15000)
	assert.Equal(t, core.ErrInsufficientCollateral, err)

	_, _, err = ComputeMint(number.Decimal("0"), number.Decimal("150"), 100, 15000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, _, err = ComputeMint(number.Decimal("-1"), number.Decimal("150"), 100, 15000)
	assert.Equal(t, core.ErrInvalidAmount, err)
}

func TestComputeMintPegged(t *testing.T) {
	// BRL pegged at 5.5 to the base currency
	minted, required, err := ComputeMint(number.Decimal("100"), number.Decimal("825"), 550, 15000)
	require.Nil(t, err)
	assert.Equal(t, "550", minted.String())
	assert.Equal(t, "825", required.String())

	// ARS pegged at 950
	minted, required, err = ComputeMint(number.Decimal("1"), number.Decimal("1425"), 95000, 15000)
	require.Nil(t, err)
	assert.Equal(t, "950", minted.String())
	assert.Equal(t, "1425", required.String())
}

func TestComputeMintOverflow(t *testing.T) {
	huge := number.Decimal("1000000000000000000000000")
	_, _, err := ComputeMint(huge, huge.Mul(number.Decimal("100000")), 95000, 15000)
	assert.Equal(t, core.ErrArithmeticOverflow, err)
}

func TestComputeRedeem(t *testing.T) {
	balance, err := ComputeRedeem(number.Decimal("150"), number.Decimal("100"))
	require.Nil(t, err)
	assert.Equal(t, "50", balance.String())

	balance, err = ComputeRedeem(number.Decimal("100"), number.Decimal("100"))
	require.Nil(t, err)
	assert.Equal(t, true, balance.IsZero())

	_, err = ComputeRedeem(number.Decimal("100"), number.Decimal("100.00000001"))
	assert.Equal(t, core.ErrInsufficientFunds, err)

	_, err = ComputeRedeem(number.Decimal("100"), number.Decimal("0"))
	assert.Equal(t, core.ErrInvalidAmount, err)
}
