package staking

import (
	"context"
	"time"

	"estable/core"
	"estable/pkg/estable"
	"estable/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// rewardRateKey property key holding the admin mutable reward rate
const rewardRateKey = "staking_reward_rate"

type stakingService struct {
	db           *db.DB
	stakes       core.IStakeStore
	transactions core.ITransactionStore
	properties   property.Store
	cfg          core.StakingConfig
	system       *core.Config
}

// New new staking service
func New(
	db *db.DB,
	stakes core.IStakeStore,
	transactions core.ITransactionStore,
	properties property.Store,
	system *core.Config,
) core.IStakingService {
	return &stakingService{
		db:           db,
		stakes:       stakes,
		transactions: transactions,
		properties:   properties,
		cfg:          system.Staking,
		system:       system,
	}
}

func (s *stakingService) Stake(ctx context.Context, actor string, amount decimal.Decimal, lockPeriod int64, now time.Time) (*core.Stake, error) {
	log := logger.FromContext(ctx).WithField("service", "staking")

	index, err := s.stakes.CountByUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	stake, err := estable.NewStake(actor, index, amount, lockPeriod, now)
	if err != nil {
		return nil, err
	}

	pool, err := s.stakes.Pool(ctx)
	if err != nil {
		return nil, err
	}

	poolVersion := pool.Version
	pool.TotalStaked = pool.TotalStaked.Add(amount)
	pool.UpdatedAt = now

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.stakes.Create(ctx, tx, stake); err != nil {
			return err
		}

		if err := s.stakes.UpdatePool(ctx, tx, pool, poolVersion); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("stake_index", stake.StakeIndex)
		extra.Put("boost", stake.Boost)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeStake, id.GenTraceID(), actor, "", amount, extra))
	}); err != nil {
		log.WithError(err).Errorln("stake failed")
		return nil, err
	}

	return stake, nil
}

func (s *stakingService) Unstake(ctx context.Context, actor string, index int64, now time.Time) (*core.UnstakeResult, error) {
	log := logger.FromContext(ctx).WithField("service", "staking")

	stake, pool, err := s.loadStake(ctx, actor, index)
	if err != nil {
		return nil, err
	}

	stakeVersion, poolVersion := stake.Version, pool.Version
	payout, err := estable.Unstake(stake, pool, now)
	if err != nil {
		return nil, err
	}

	pool.UpdatedAt = now

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.stakes.Update(ctx, tx, stake, stakeVersion); err != nil {
			return err
		}

		if err := s.stakes.UpdatePool(ctx, tx, pool, poolVersion); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("stake_index", stake.StakeIndex)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeUnstake, id.GenTraceID(), actor, "", payout, extra))
	}); err != nil {
		log.WithError(err).Errorln("unstake failed")
		return nil, err
	}

	return &core.UnstakeResult{
		StakeIndex: stake.StakeIndex,
		Payout:     payout,
	}, nil
}

func (s *stakingService) EmergencyUnstake(ctx context.Context, actor string, index int64, now time.Time) (*core.UnstakeResult, error) {
	log := logger.FromContext(ctx).WithField("service", "staking")

	stake, pool, err := s.loadStake(ctx, actor, index)
	if err != nil {
		return nil, err
	}

	stakeVersion, poolVersion := stake.Version, pool.Version
	payout, penalty, err := estable.EmergencyUnstake(stake, pool, s.cfg.EmergencyFeeBps, now)
	if err != nil {
		return nil, err
	}

	pool.UpdatedAt = now

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.stakes.Update(ctx, tx, stake, stakeVersion); err != nil {
			return err
		}

		if err := s.stakes.UpdatePool(ctx, tx, pool, poolVersion); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("stake_index", stake.StakeIndex)
		extra.Put("penalty", penalty)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeEmergencyUnstake, id.GenTraceID(), actor, "", payout, extra))
	}); err != nil {
		log.WithError(err).Errorln("emergency unstake failed")
		return nil, err
	}

	return &core.UnstakeResult{
		StakeIndex: stake.StakeIndex,
		Payout:     payout,
		Penalty:    penalty,
	}, nil
}

func (s *stakingService) PendingRewards(ctx context.Context, actor string, index int64, now time.Time) (decimal.Decimal, error) {
	stake, err := s.stakes.Find(ctx, actor, index)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, core.ErrNotFound
		}
		return decimal.Zero, err
	}

	rate, err := s.RewardRate(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return estable.PendingReward(stake, rate, s.cfg.RewardScale, now), nil
}

func (s *stakingService) ClaimRewards(ctx context.Context, actor string, index int64, now time.Time) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("service", "staking")

	stake, pool, err := s.loadStake(ctx, actor, index)
	if err != nil {
		return decimal.Zero, err
	}

	rate, err := s.RewardRate(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	stakeVersion, poolVersion := stake.Version, pool.Version
	claimed, err := estable.Claim(stake, pool, rate, s.cfg.RewardScale, now)
	if err != nil {
		return decimal.Zero, err
	}

	pool.UpdatedAt = now

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.stakes.Update(ctx, tx, stake, stakeVersion); err != nil {
			return err
		}

		if err := s.stakes.UpdatePool(ctx, tx, pool, poolVersion); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("stake_index", stake.StakeIndex)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeClaimRewards, id.GenTraceID(), actor, "", claimed, extra))
	}); err != nil {
		log.WithError(err).Errorln("claim failed")
		return decimal.Zero, err
	}

	return claimed, nil
}

func (s *stakingService) Rewards(ctx context.Context, actor string, now time.Time) ([]*core.StakeReward, error) {
	stakes, err := s.stakes.FindByUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	rate, err := s.RewardRate(ctx)
	if err != nil {
		return nil, err
	}

	rewards := make([]*core.StakeReward, 0, len(stakes))
	for _, stake := range stakes {
		rewards = append(rewards, &core.StakeReward{
			StakeIndex: stake.StakeIndex,
			Amount:     stake.Amount,
			Boost:      stake.Boost,
			Pending:    estable.PendingReward(stake, rate, s.cfg.RewardScale, now),
		})
	}

	return rewards, nil
}

func (s *stakingService) SetRewardRate(ctx context.Context, actor string, rate decimal.Decimal) (decimal.Decimal, error) {
	if !s.system.IsAdmin(actor) {
		return decimal.Zero, core.ErrUnauthorized
	}

	if rate.IsNegative() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	previous, err := s.RewardRate(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.properties.Save(ctx, rewardRateKey, rate.String()); err != nil {
		return decimal.Zero, err
	}

	logger.FromContext(ctx).WithField("service", "staking").
		Infof("reward rate %s -> %s by %s", previous, rate, actor)

	return previous, nil
}

func (s *stakingService) RewardRate(ctx context.Context) (decimal.Decimal, error) {
	v, err := s.properties.Get(ctx, rewardRateKey)
	if err != nil {
		return decimal.Zero, err
	}

	if raw := v.String(); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil {
			return rate, nil
		}
	}

	return s.cfg.DefaultRewardRate, nil
}

func (s *stakingService) loadStake(ctx context.Context, actor string, index int64) (*core.Stake, *core.StakingPool, error) {
	stake, err := s.stakes.Find(ctx, actor, index)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, core.ErrNotFound
		}
		return nil, nil, err
	}

	pool, err := s.stakes.Pool(ctx)
	if err != nil {
		return nil, nil, err
	}

	return stake, pool, nil
}
