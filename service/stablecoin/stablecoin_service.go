package stablecoin

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

type stablecoinService struct {
	db           *db.DB
	balances     core.IStablecoinStore
	transactions core.ITransactionStore
	cfg          core.StablecoinConfig
}

// New new stablecoin service
func New(
	db *db.DB,
	balances core.IStablecoinStore,
	transactions core.ITransactionStore,
	cfg core.StablecoinConfig,
) core.IStablecoinService {
	return &stablecoinService{
		db:           db,
		balances:     balances,
		transactions: transactions,
		cfg:          cfg,
	}
}

func (s *stablecoinService) Mint(ctx context.Context, actor, symbol string, amount, collateral decimal.Decimal, now time.Time) (*core.MintResult, error) {
	log := logger.FromContext(ctx).WithField("service", "stablecoin")

	pegRate := s.cfg.PegRate(symbol)
	if pegRate <= 0 {
		return nil, core.ErrUnsupportedAsset
	}

	minted, required, err := estable.ComputeMint(amount, collateral, pegRate, s.cfg.CollateralRatioBps)
	if err != nil {
		return nil, err
	}

	balance, err := s.balances.Find(ctx, actor, symbol)
	if err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			return nil, err
		}
		balance = &core.StablecoinBalance{
			UserID:    actor,
			Symbol:    symbol,
			CreatedAt: now,
		}
	}

	version := balance.Version
	balance.Balance = balance.Balance.Add(minted)
	balance.UpdatedAt = now

	traceID := id.GenTraceID()

	if err := s.db.Tx(func(tx *db.DB) error {
		if balance.ID == 0 {
			if err := s.balances.Create(ctx, tx, balance); err != nil {
				return err
			}
		} else if err := s.balances.Update(ctx, tx, balance, version); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("collateral", required)
		extra.Put("peg_rate", pegRate)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeMint, traceID, actor, symbol, minted, extra))
	}); err != nil {
		log.WithError(err).Errorln("mint failed")
		return nil, err
	}

	return &core.MintResult{
		TraceID:    traceID,
		Symbol:     symbol,
		Minted:     minted,
		Collateral: required,
		NewBalance: balance.Balance,
	}, nil
}

func (s *stablecoinService) Redeem(ctx context.Context, actor, symbol string, amount decimal.Decimal, now time.Time) (*core.RedeemResult, error) {
	log := logger.FromContext(ctx).WithField("service", "stablecoin")

	if s.cfg.PegRate(symbol) <= 0 {
		return nil, core.ErrUnsupportedAsset
	}

	balance, err := s.balances.Find(ctx, actor, symbol)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrInsufficientFunds
		}
		return nil, err
	}

	newBalance, err := estable.ComputeRedeem(balance.Balance, amount)
	if err != nil {
		return nil, err
	}

	version := balance.Version
	balance.Balance = newBalance
	balance.UpdatedAt = now

	traceID := id.GenTraceID()

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.balances.Update(ctx, tx, balance, version); err != nil {
			return err
		}

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeRedeem, traceID, actor, symbol, amount, nil))
	}); err != nil {
		log.WithError(err).Errorln("redeem failed")
		return nil, err
	}

	return &core.RedeemResult{
		TraceID:    traceID,
		Symbol:     symbol,
		Redeemed:   amount,
		NewBalance: newBalance,
	}, nil
}

func (s *stablecoinService) Balances(ctx context.Context, actor string) ([]*core.StablecoinBalance, error) {
	return s.balances.FindByUser(ctx, actor)
}
