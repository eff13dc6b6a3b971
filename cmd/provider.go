package cmd

import (
	"estable/core"
	"estable/service/dispatcher"
	governanceservice "estable/service/governance"
	lendingservice "estable/service/lending"
	stablecoinservice "estable/service/stablecoin"
	stakingservice "estable/service/staking"
	vaultservice "estable/service/vault"
	"estable/store/governance"
	"estable/store/position"
	"estable/store/revenue"
	"estable/store/stablecoin"
	"estable/store/stake"
	"estable/store/transaction"
	"estable/store/treasury"
	"estable/store/vault"
	"time"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideStablecoinStore(db *db.DB) core.IStablecoinStore {
	return stablecoin.New(db)
}

func providePositionStore(db *db.DB) core.IPositionStore {
	return position.New(db)
}

func provideStakeStore(db *db.DB) core.IStakeStore {
	return stake.New(db)
}

func provideVaultStore(db *db.DB) core.IVaultStore {
	return vault.New(db)
}

func provideYieldStore(db *db.DB) core.IYieldStore {
	return vault.NewYield(db)
}

func provideGovernanceStakeStore(db *db.DB) core.IGovernanceStakeStore {
	return governance.NewStake(db)
}

func provideProposalStore(db *db.DB) core.IProposalStore {
	return governance.CacheProposal(governance.NewProposal(db), time.Minute)
}

func provideVoteStore(db *db.DB) core.IVoteStore {
	return governance.NewVote(db)
}

func provideRevenueStore(db *db.DB) core.IRevenueStore {
	return revenue.New(db)
}

func provideTreasuryStore(db *db.DB) core.ITreasuryStore {
	return treasury.New(db)
}

func provideTransactionStore(db *db.DB) core.ITransactionStore {
	return transaction.New(db)
}

// ------------------service------------------------------------

func provideStablecoinService(db *db.DB) core.IStablecoinService {
	return stablecoinservice.New(db, provideStablecoinStore(db), provideTransactionStore(db), cfg.Stablecoin)
}

func provideLendingService(db *db.DB) core.ILendingService {
	return lendingservice.New(
		db,
		providePositionStore(db),
		provideRevenueStore(db),
		provideTreasuryStore(db),
		provideTransactionStore(db),
		cfg.Lending,
	)
}

func provideStakingService(db *db.DB) core.IStakingService {
	return stakingservice.New(
		db,
		provideStakeStore(db),
		provideTransactionStore(db),
		providePropertyStore(db),
		provideConfig(),
	)
}

func provideVaultService(db *db.DB) core.IVaultService {
	return vaultservice.New(
		db,
		provideVaultStore(db),
		provideYieldStore(db),
		provideTransactionStore(db),
		provideConfig(),
	)
}

func provideGovernanceService(db *db.DB) core.IGovernanceService {
	return governanceservice.New(
		db,
		provideGovernanceStakeStore(db),
		provideProposalStore(db),
		provideVoteStore(db),
		provideRevenueStore(db),
		provideTransactionStore(db),
		cfg.Governance,
	)
}

func provideDispatcher(db *db.DB) *dispatcher.Dispatcher {
	return dispatcher.New(
		provideStablecoinService(db),
		provideLendingService(db),
		provideStakingService(db),
		provideVaultService(db),
		provideGovernanceService(db),
	)
}
