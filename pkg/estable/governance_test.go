package estable

import (
	"testing"
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/bmizerany/assert"
	"github.com/stretchr/testify/require"
)

var govCfg = core.GovernanceConfig{
	EarlyExitFeeBps: 1000,
	MinVotePower:    number.Decimal("100"),
	MinLockMonths:   3,
	MaxLockMonths:   12,
}

func TestVePower(t *testing.T) {
	for months, expect := range map[int64]string{
		3:  "125",
		6:  "150",
		12: "200",
	} {
		assert.Equal(t, expect, VePower(number.Decimal("100"), months).String())
	}
}

func TestNewGovernanceStake(t *testing.T) {
	now := time.Now()

	s, err := NewGovernanceStake("u1", number.Decimal("100"), 6, govCfg, now)
	require.Nil(t, err)
	assert.Equal(t, "150", s.VePower.String())
	assert.Equal(t, now.AddDate(0, 6, 0), s.LockedUntil)

	_, err = NewGovernanceStake("u1", number.Decimal("0"), 6, govCfg, now)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = NewGovernanceStake("u1", number.Decimal("100"), 2, govCfg, now)
	assert.Equal(t, core.ErrInvalidLockPeriod, err)

	_, err = NewGovernanceStake("u1", number.Decimal("100"), 13, govCfg, now)
	assert.Equal(t, core.ErrInvalidLockPeriod, err)
}

func TestUnstakeGovernance(t *testing.T) {
	now := time.Now()

	s, err := NewGovernanceStake("u1", number.Decimal("100"), 6, govCfg, now)
	require.Nil(t, err)

	// early exit pays the fee
	returned, fee := UnstakeGovernance(s, govCfg.EarlyExitFeeBps, now.Add(time.Hour))
	assert.Equal(t, "90", returned.String())
	assert.Equal(t, "10", fee.String())

	// at expiry the full principal comes back
	returned, fee = UnstakeGovernance(s, govCfg.EarlyExitFeeBps, s.LockedUntil)
	assert.Equal(t, "100", returned.String())
	assert.Equal(t, true, fee.IsZero())
}

func TestCastVote(t *testing.T) {
	now := time.Now()

	p := &core.Proposal{
		ID:       1,
		Title:    "raise the reward rate",
		Status:   core.ProposalStatusOpen,
		Deadline: now.Add(72 * time.Hour),
	}

	_, err := CastVote(p, "u1", core.VoteChoiceFor, number.Decimal("99"), govCfg, now)
	assert.Equal(t, core.ErrMinimumStakeRequired, err)

	vote, err := CastVote(p, "u1", core.VoteChoiceFor, number.Decimal("100"), govCfg, now)
	require.Nil(t, err)
	assert.Equal(t, "100", vote.Weight.String())
	assert.Equal(t, "100", p.VotesFor.String())

	_, err = CastVote(p, "u1", core.VoteChoiceAgainst, number.Decimal("100"), govCfg, now)
	assert.Equal(t, core.ErrAlreadyVoted, err)

	// fractional power is floored before it hits the tally
	vote, err = CastVote(p, "u2", core.VoteChoiceAgainst, number.Decimal("150.75"), govCfg, now)
	require.Nil(t, err)
	assert.Equal(t, "150", vote.Weight.String())
	assert.Equal(t, "150", p.VotesAgainst.String())
	assert.Equal(t, 2, len(p.Voters))
}

func TestTotalVePower(t *testing.T) {
	now := time.Now()

	s1, err := NewGovernanceStake("u1", number.Decimal("100"), 6, govCfg, now)
	require.Nil(t, err)
	s2, err := NewGovernanceStake("u1", number.Decimal("40"), 3, govCfg, now)
	require.Nil(t, err)

	total := TotalVePower([]*core.GovernanceStake{s1, s2})
	assert.Equal(t, "200", total.String())
}