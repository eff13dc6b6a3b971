package governance

import (
	"context"
	"fmt"
	"time"

	"estable/core"
	"estable/pkg/estable"
	"estable/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type governanceService struct {
	db           *db.DB
	stakes       core.IGovernanceStakeStore
	proposals    core.IProposalStore
	votes        core.IVoteStore
	revenues     core.IRevenueStore
	transactions core.ITransactionStore
	cfg          core.GovernanceConfig
}

// New new governance service
func New(
	db *db.DB,
	stakes core.IGovernanceStakeStore,
	proposals core.IProposalStore,
	votes core.IVoteStore,
	revenues core.IRevenueStore,
	transactions core.ITransactionStore,
	cfg core.GovernanceConfig,
) core.IGovernanceService {
	return &governanceService{
		db:           db,
		stakes:       stakes,
		proposals:    proposals,
		votes:        votes,
		revenues:     revenues,
		transactions: transactions,
		cfg:          cfg,
	}
}

func (s *governanceService) Stake(ctx context.Context, actor string, amount decimal.Decimal, lockMonths int64, now time.Time) (*core.GovernanceStake, error) {
	log := logger.FromContext(ctx).WithField("service", "governance")

	stake, err := estable.NewGovernanceStake(actor, amount, lockMonths, s.cfg, now)
	if err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.stakes.Create(ctx, tx, stake); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("lock_months", lockMonths)
		extra.Put("ve_power", stake.VePower)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeGovStake, id.GenTraceID(), actor, "", amount, extra))
	}); err != nil {
		log.WithError(err).Errorln("governance stake failed")
		return nil, err
	}

	return stake, nil
}

func (s *governanceService) Unstake(ctx context.Context, actor string, stakeID uint64, now time.Time) (*core.GovUnstakeResult, error) {
	log := logger.FromContext(ctx).WithField("service", "governance")

	stake, err := s.stakes.Find(ctx, stakeID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	if stake.UserID != actor {
		return nil, core.ErrUnauthorized
	}

	returned, fee := estable.UnstakeGovernance(stake, s.cfg.EarlyExitFeeBps, now)

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.stakes.Delete(ctx, tx, stake); err != nil {
			return err
		}

		if fee.IsPositive() {
			if err := s.revenues.Create(ctx, tx, &core.Revenue{
				Type:      core.RevenueTypeEarlyUnstakeFee,
				Amount:    fee,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}

		extra := core.NewTransactionExtra()
		extra.Put("stake_id", stake.ID)
		extra.Put("fee", fee)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeGovUnstake, id.GenTraceID(), actor, "", returned, extra))
	}); err != nil {
		log.WithError(err).Errorln("governance unstake failed")
		return nil, err
	}

	return &core.GovUnstakeResult{
		StakeID:  stake.ID,
		Returned: returned,
		Fee:      fee,
	}, nil
}

func (s *governanceService) Vote(ctx context.Context, actor string, proposalID uint64, choice core.VoteChoice, now time.Time) (*core.Vote, error) {
	log := logger.FromContext(ctx).WithField("service", "governance")

	proposal, err := s.proposals.Find(ctx, proposalID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	power, err := s.VotingPower(ctx, actor)
	if err != nil {
		return nil, err
	}

	version := proposal.Version
	vote, err := estable.CastVote(proposal, actor, choice, power, s.cfg, now)
	if err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.proposals.Update(ctx, tx, proposal, version); err != nil {
			return err
		}

		if err := s.votes.Create(ctx, tx, vote); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("proposal_id", proposal.ID)
		extra.Put("choice", choice)

		// one vote per (user, proposal), so the trace is deterministic
		trace := id.TraceIDFrom(fmt.Sprintf("vote:%d:%s", proposal.ID, actor))
		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeVote, trace, actor, "", vote.Weight, extra))
	}); err != nil {
		log.WithError(err).Errorln("vote failed")
		return nil, err
	}

	return vote, nil
}

func (s *governanceService) VotingPower(ctx context.Context, actor string) (decimal.Decimal, error) {
	stakes, err := s.stakes.FindByUser(ctx, actor)
	if err != nil {
		return decimal.Zero, err
	}

	return estable.TotalVePower(stakes), nil
}

func (s *governanceService) Proposals(ctx context.Context, limit int) ([]*core.Proposal, error) {
	return s.proposals.List(ctx, limit)
}
