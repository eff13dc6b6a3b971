package estable

import (
	"testing"
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/bmizerany/assert"
	"github.com/stretchr/testify/require"
)

var lendingCfg = core.LendingConfig{
	MinCollateralRatioBps: 15000,
	LiquidationPenaltyBps: 500,
}

func TestOpenPosition(t *testing.T) {
	now := time.Now()

	p, err := OpenPosition("u1", "t1", number.Decimal("100"), number.Decimal("150"), lendingCfg, now)
	require.Nil(t, err)
	assert.Equal(t, "1", p.HealthFactor.String())
	assert.Equal(t, core.PositionStatusActive, p.Status)
	assert.Equal(t, false, IsLiquidatable(p))

	p, err = OpenPosition("u1", "t2", number.Decimal("100"), number.Decimal("200"), lendingCfg, now)
	require.Nil(t, err)
	assert.Equal(t, "1.33333333", p.HealthFactor.String())
	assert.Equal(t, false, IsLiquidatable(p))

	_, err = OpenPosition("u1", "t3", number.Decimal("100"), number.Decimal("149.99999999"), lendingCfg, now)
	assert.Equal(t, core.ErrInsufficientCollateral, err)

	_, err = OpenPosition("u1", "t4", number.Decimal("0"), number.Decimal("150"), lendingCfg, now)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = OpenPosition("u1", "t5", number.Decimal("100"), number.Decimal("-1"), lendingCfg, now)
	assert.Equal(t, core.ErrInvalidAmount, err)
}

func TestLiquidate(t *testing.T) {
	now := time.Now()

	p, err := OpenPosition("u1", "t1", number.Decimal("100"), number.Decimal("150"), lendingCfg, now)
	require.Nil(t, err)

	// health factor exactly 1.0 sits on the cutoff and is not liquidatable
	_, _, err = Liquidate(p, lendingCfg, now)
	assert.Equal(t, core.ErrNotLiquidatable, err)

	p.HealthFactor = number.Decimal("0.9")
	penalty, seized, err := Liquidate(p, lendingCfg, now)
	require.Nil(t, err)
	assert.Equal(t, "5", penalty.String())
	assert.Equal(t, "150", seized.String())
	assert.Equal(t, core.PositionStatusLiquidated, p.Status)

	// terminal, a second call fails
	_, _, err = Liquidate(p, lendingCfg, now)
	assert.Equal(t, core.ErrNotLiquidatable, err)
}

func TestRepay(t *testing.T) {
	now := time.Now()

	p, err := OpenPosition("u1", "t1", number.Decimal("100"), number.Decimal("160"), lendingCfg, now)
	require.Nil(t, err)

	returned, err := Repay(p, now)
	require.Nil(t, err)
	assert.Equal(t, "160", returned.String())
	assert.Equal(t, core.PositionStatusClosed, p.Status)

	_, err = Repay(p, now)
	assert.Equal(t, core.ErrNotFound, err)
}
