package estable

import (
	"testing"
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/bmizerany/assert"
	"github.com/stretchr/testify/require"
)

var vaultCfg = core.VaultConfig{
	BaseAPYBps:        1000,
	BoostedAPYBps:     1500,
	EstStakeThreshold: number.Decimal("1000"),
	SecondsPerYear:    365 * 24 * 60 * 60,
}

func TestDeposit(t *testing.T) {
	now := time.Now()
	v := &core.Vault{Name: "main"}

	// first deposit mints 1:1
	a1 := &core.VaultAccount{UserID: "u1", LastAccruedAt: now}
	shares, err := Deposit(v, a1, number.Decimal("1000"), now)
	require.Nil(t, err)
	assert.Equal(t, "1000", shares.String())
	assert.Equal(t, "1000", v.TotalAssets.String())
	assert.Equal(t, "1000", v.TotalShares.String())

	// second depositor at an unchanged share price
	a2 := &core.VaultAccount{UserID: "u2", LastAccruedAt: now}
	shares, err = Deposit(v, a2, number.Decimal("500"), now)
	require.Nil(t, err)
	assert.Equal(t, "500", shares.String())
	assert.Equal(t, "1500", v.TotalAssets.String())
	assert.Equal(t, "1500", v.TotalShares.String())

	_, err = Deposit(v, a2, number.Decimal("0"), now)
	assert.Equal(t, core.ErrInvalidAmount, err)
}

func TestWithdrawRoundTrip(t *testing.T) {
	now := time.Now()
	v := &core.Vault{Name: "main"}
	a := &core.VaultAccount{UserID: "u1", LastAccruedAt: now}

	shares, err := Deposit(v, a, number.Decimal("123.45678901"), now)
	require.Nil(t, err)

	amount, err := Withdraw(v, a, shares, now)
	require.Nil(t, err)
	assert.Equal(t, "123.45678901", amount.String())
	assert.Equal(t, true, a.Shares.IsZero())
	assert.Equal(t, true, a.Principal.IsZero())
	assert.Equal(t, true, v.TotalShares.IsZero())
	assert.Equal(t, true, v.TotalAssets.IsZero())
}

func TestWithdrawPartial(t *testing.T) {
	now := time.Now()
	v := &core.Vault{Name: "main"}
	a := &core.VaultAccount{UserID: "u1", LastAccruedAt: now}

	_, err := Deposit(v, a, number.Decimal("1000"), now)
	require.Nil(t, err)

	amount, err := Withdraw(v, a, number.Decimal("400"), now)
	require.Nil(t, err)
	assert.Equal(t, "400", amount.String())
	assert.Equal(t, "600", a.Shares.String())
	assert.Equal(t, "600", a.Principal.String())

	_, err = Withdraw(v, a, number.Decimal("600.00000001"), now)
	assert.Equal(t, core.ErrInsufficientShares, err)
}

func TestCurrentAPY(t *testing.T) {
	a := &core.VaultAccount{EstStaked: number.Decimal("999.99999999")}
	assert.Equal(t, int64(1000), CurrentAPY(a, vaultCfg))

	a.EstStaked = number.Decimal("1000")
	assert.Equal(t, int64(1500), CurrentAPY(a, vaultCfg))

	assert.Equal(t, int64(1000), CurrentAPY(nil, vaultCfg))
}

func TestAccrue(t *testing.T) {
	now := time.Now()
	v := &core.Vault{Name: "main"}
	a := &core.VaultAccount{UserID: "u1", LastAccruedAt: now}

	_, err := Deposit(v, a, number.Decimal("1000"), now)
	require.Nil(t, err)

	// zero elapsed, nothing accrues
	accrued := Accrue(v, a, vaultCfg, now)
	assert.Equal(t, true, accrued.IsZero())

	// one year at the base rate grows the vault by 10%
	accrued = Accrue(v, a, vaultCfg, now.Add(365*24*time.Hour))
	assert.Equal(t, "100", accrued.String())
	assert.Equal(t, "1100", v.TotalAssets.String())
	assert.Equal(t, "1000", v.TotalShares.String())
	assert.Equal(t, "1100", AccountValue(v, a).String())
}

func TestAccrueBoosted(t *testing.T) {
	now := time.Now()
	v := &core.Vault{Name: "main"}
	a := &core.VaultAccount{UserID: "u1", LastAccruedAt: now, EstStaked: number.Decimal("1000")}

	_, err := Deposit(v, a, number.Decimal("1000"), now)
	require.Nil(t, err)

	accrued := Accrue(v, a, vaultCfg, now.Add(365*24*time.Hour))
	assert.Equal(t, "150", accrued.String())
	assert.Equal(t, "1150", v.TotalAssets.String())
}

func TestMoveEstStake(t *testing.T) {
	now := time.Now()
	a := &core.VaultAccount{UserID: "u1"}

	require.Nil(t, MoveEstStake(a, number.Decimal("1000"), false, now))
	assert.Equal(t, "1000", a.EstStaked.String())

	err := MoveEstStake(a, number.Decimal("1000.00000001"), true, now)
	assert.Equal(t, core.ErrInsufficientFunds, err)

	require.Nil(t, MoveEstStake(a, number.Decimal("1000"), true, now))
	assert.Equal(t, true, a.EstStaked.IsZero())

	err = MoveEstStake(a, number.Decimal("0"), false, now)
	assert.Equal(t, core.ErrInvalidAmount, err)
}
