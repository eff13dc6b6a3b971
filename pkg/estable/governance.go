package estable

import (
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// VePower vote escrowed power, frozen at creation
// ve = amount * (1 + lock_months/12)
func VePower(amount decimal.Decimal, lockMonths int64) decimal.Decimal {
	factor := twelve.Add(decimal.NewFromInt(lockMonths))
	return amount.Mul(factor).Div(twelve).Truncate(number.MaxPrecision)
}

// NewGovernanceStake validate and build a governance stake
func NewGovernanceStake(userID string, amount decimal.Decimal, lockMonths int64, cfg core.GovernanceConfig, now time.Time) (*core.GovernanceStake, error) {
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	if err := number.CheckRange(amount); err != nil {
		return nil, err
	}

	if lockMonths < cfg.MinLockMonths || lockMonths > cfg.MaxLockMonths {
		return nil, core.ErrInvalidLockPeriod
	}

	return &core.GovernanceStake{
		UserID:      userID,
		Amount:      amount,
		LockMonths:  lockMonths,
		VePower:     VePower(amount, lockMonths),
		LockedUntil: now.AddDate(0, int(lockMonths), 0),
		CreatedAt:   now,
	}, nil
}

// UnstakeGovernance principal return with an early exit fee while the
// lock is still running. The record itself is deleted by the caller.
func UnstakeGovernance(s *core.GovernanceStake, feeBps int64, now time.Time) (returned, fee decimal.Decimal) {
	if now.Before(s.LockedUntil) {
		fee = number.MulRate(s.Amount, feeBps)
	}

	return s.Amount.Sub(fee), fee
}

// TotalVePower sum of a voter's active governance stakes
func TotalVePower(stakes []*core.GovernanceStake) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stakes {
		total = total.Add(s.VePower)
	}

	return total
}

// CastVote validate and apply a vote to the proposal tally. Weight is the
// voter's total ve power floored to an integer.
func CastVote(p *core.Proposal, userID string, choice core.VoteChoice, power decimal.Decimal, cfg core.GovernanceConfig, now time.Time) (*core.Vote, error) {
	if power.LessThan(cfg.MinVotePower) {
		return nil, core.ErrMinimumStakeRequired
	}

	if govalidator.IsIn(userID, p.Voters...) {
		return nil, core.ErrAlreadyVoted
	}

	weight := power.Floor()

	switch choice {
	case core.VoteChoiceFor:
		p.VotesFor = p.VotesFor.Add(weight)
	case core.VoteChoiceAgainst:
		p.VotesAgainst = p.VotesAgainst.Add(weight)
	default:
		return nil, core.ErrInvalidAmount
	}

	p.Voters = append(p.Voters, userID)
	p.UpdatedAt = now

	return &core.Vote{
		UserID:     userID,
		ProposalID: p.ID,
		Choice:     choice,
		Weight:     weight,
		CreatedAt:  now,
	}, nil
}
