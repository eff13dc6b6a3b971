package lending

import (
	"context"
	"time"

	"estable/core"
	"estable/pkg/estable"
	"estable/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type lendingService struct {
	db           *db.DB
	positions    core.IPositionStore
	revenues     core.IRevenueStore
	treasury     core.ITreasuryStore
	transactions core.ITransactionStore
	cfg          core.LendingConfig
}

// New new lending service
func New(
	db *db.DB,
	positions core.IPositionStore,
	revenues core.IRevenueStore,
	treasury core.ITreasuryStore,
	transactions core.ITransactionStore,
	cfg core.LendingConfig,
) core.ILendingService {
	return &lendingService{
		db:           db,
		positions:    positions,
		revenues:     revenues,
		treasury:     treasury,
		transactions: transactions,
		cfg:          cfg,
	}
}

func (s *lendingService) OpenBorrow(ctx context.Context, actor string, borrow, collateral decimal.Decimal, now time.Time) (*core.Position, error) {
	log := logger.FromContext(ctx).WithField("service", "lending")

	traceID := id.GenTraceID()

	position, err := estable.OpenPosition(actor, traceID, borrow, collateral, s.cfg, now)
	if err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.positions.Create(ctx, tx, position); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("collateral", collateral)
		extra.Put("health_factor", position.HealthFactor)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeOpenBorrow, traceID, actor, "", borrow, extra))
	}); err != nil {
		log.WithError(err).Errorln("open borrow failed")
		return nil, err
	}

	return position, nil
}

func (s *lendingService) Repay(ctx context.Context, actor string, positionID uint64, now time.Time) (*core.RepayResult, error) {
	log := logger.FromContext(ctx).WithField("service", "lending")

	position, err := s.positions.Find(ctx, positionID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	if position.UserID != actor {
		return nil, core.ErrUnauthorized
	}

	version := position.Version
	returned, err := estable.Repay(position, now)
	if err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.positions.Update(ctx, tx, position, version); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("position_id", position.ID)
		extra.Put("returned", returned)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeRepay, id.GenTraceID(), actor, "", position.Borrowed, extra))
	}); err != nil {
		log.WithError(err).Errorln("repay failed")
		return nil, err
	}

	return &core.RepayResult{
		PositionID: position.ID,
		Repaid:     position.Borrowed,
		Returned:   returned,
	}, nil
}

// Liquidate may be called by any actor; eligibility is decided purely by
// the health factor. Seized collateral moves to the treasury and the
// penalty lands in the revenue ledger.
func (s *lendingService) Liquidate(ctx context.Context, actor string, positionID uint64, now time.Time) (*core.LiquidationResult, error) {
	log := logger.FromContext(ctx).WithField("service", "lending")

	position, err := s.positions.Find(ctx, positionID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	version := position.Version
	penalty, seized, err := estable.Liquidate(position, s.cfg, now)
	if err != nil {
		return nil, err
	}

	treasury, err := s.treasury.Get(ctx)
	if err != nil {
		return nil, err
	}

	treasuryVersion := treasury.Version
	treasury.Collateral = treasury.Collateral.Add(seized)
	treasury.UpdatedAt = now

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.positions.Update(ctx, tx, position, version); err != nil {
			return err
		}

		if err := s.revenues.Create(ctx, tx, &core.Revenue{
			Type:      core.RevenueTypeLiquidationPenalty,
			Amount:    penalty,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		if err := s.treasury.Update(ctx, tx, treasury, treasuryVersion); err != nil {
			return err
		}

		trace := id.GenTraceID()

		extra := core.NewTransactionExtra()
		extra.Put("position_id", position.ID)
		extra.Put("penalty", penalty)

		if err := s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeLiquidate, trace, actor, "", position.Borrowed, extra)); err != nil {
			return err
		}

		seizeExtra := core.NewTransactionExtra()
		seizeExtra.Put("position_id", position.ID)

		// seize record derives its trace from the liquidation
		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeSeizeCollateral, id.Modify(trace, "seize"), actor, "", seized, seizeExtra))
	}); err != nil {
		log.WithError(err).Errorln("liquidate failed")
		return nil, err
	}

	return &core.LiquidationResult{
		PositionID: position.ID,
		Penalty:    penalty,
		Seized:     seized,
	}, nil
}

func (s *lendingService) Positions(ctx context.Context, actor string) ([]*core.Position, error) {
	return s.positions.FindByUser(ctx, actor)
}
