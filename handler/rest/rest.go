package rest

import (
	"errors"
	"net/http"

	"estable/core"
	"estable/handler/render"
	"estable/handler/request"
	"estable/service/dispatcher"

	"github.com/go-chi/chi"
)

// Deps everything the rest surface needs
type Deps struct {
	System       *core.Config
	Dispatcher   *dispatcher.Dispatcher
	Stablecoins  core.IStablecoinService
	Lending      core.ILendingService
	Staking      core.IStakingService
	Vaults       core.IVaultService
	Governance   core.IGovernanceService
	Positions    core.IPositionStore
	Balances     core.IStablecoinStore
	Revenues     core.IRevenueStore
	Treasury     core.ITreasuryStore
	Yields       core.IYieldStore
	Transactions core.ITransactionStore
}

// Handle handle rest api request
func Handle(deps Deps) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/transactions", transactionsHandler(deps.Transactions))
	router.Get("/transactions/{trace_id}", transactionHandler(deps.Transactions))

	router.Group(func(r chi.Router) {
		r.Use(request.WithActor)

		r.Get("/me/transactions", userTransactionsHandler(deps.Transactions))

		r.Post("/stablecoins/mint", mintHandler(deps.Dispatcher))
		r.Post("/stablecoins/redeem", redeemHandler(deps.Dispatcher))
		r.Get("/stablecoins/balances", balancesHandler(deps.Stablecoins))

		r.Post("/lending/borrow", borrowHandler(deps.Dispatcher))
		r.Post("/lending/repay", repayHandler(deps.Dispatcher))
		r.Post("/lending/liquidate", liquidateHandler(deps.Dispatcher))
		r.Get("/lending/positions", positionsHandler(deps.Lending))

		r.Post("/staking/stake", stakeHandler(deps.Dispatcher))
		r.Post("/staking/unstake", unstakeHandler(deps.Dispatcher))
		r.Post("/staking/emergency-unstake", emergencyUnstakeHandler(deps.Dispatcher))
		r.Post("/staking/claim", claimHandler(deps.Dispatcher))
		r.Get("/staking/rewards", rewardsHandler(deps.Staking))

		r.Post("/vaults/deposit", vaultDepositHandler(deps.Dispatcher))
		r.Post("/vaults/withdraw", vaultWithdrawHandler(deps.Dispatcher))
		r.Post("/vaults/stake-est", stakeEstHandler(deps.Dispatcher))
		r.Post("/vaults/unstake-est", unstakeEstHandler(deps.Dispatcher))
		r.Get("/vaults/{vault_id}/apy", vaultAPYHandler(deps.Vaults))
		r.Get("/vaults/{vault_id}/assets", vaultAssetsHandler(deps.Vaults))

		r.Post("/governance/stakes", govStakeHandler(deps.Dispatcher))
		r.Post("/governance/unstake", govUnstakeHandler(deps.Dispatcher))
		r.Post("/governance/votes", voteHandler(deps.Dispatcher))
		r.Get("/governance/power", votingPowerHandler(deps.Governance))
		r.Get("/governance/proposals", proposalsHandler(deps.Governance))

		r.Get("/admin/metrics", metricsHandler(deps))
		r.Get("/admin/revenue", revenueHandler(deps))
		r.Put("/admin/reward-rate", rewardRateHandler(deps))
		r.Post("/admin/vaults/{vault_id}/assets", addAssetHandler(deps))
	})

	return router
}
