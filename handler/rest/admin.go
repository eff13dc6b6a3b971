package rest

import (
	"net/http"

	"estable/core"
	"estable/handler/param"
	"estable/handler/render"
	"estable/handler/request"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

func adminOnly(system *core.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !system.IsAdmin(request.Actor(r)) {
			render.Err(w, core.ErrUnauthorized)
			return
		}

		next(w, r)
	}
}

// metricsHandler protocol wide aggregates for the admin dashboard
func metricsHandler(deps Deps) http.HandlerFunc {
	return adminOnly(deps.System, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		balances, err := deps.Balances.All(ctx)
		if err != nil {
			render.Err(w, err)
			return
		}

		tvl := decimal.Zero
		for _, b := range balances {
			tvl = tvl.Add(b.Balance)
		}

		sums, err := deps.Revenues.SumByType(ctx)
		if err != nil {
			render.Err(w, err)
			return
		}

		totalRevenue := decimal.Zero
		for _, amount := range sums {
			totalRevenue = totalRevenue.Add(amount)
		}

		activePositions, err := deps.Positions.CountActive(ctx)
		if err != nil {
			render.Err(w, err)
			return
		}

		totalYield, err := deps.Yields.Sum(ctx)
		if err != nil {
			render.Err(w, err)
			return
		}

		treasury, err := deps.Treasury.Get(ctx)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{
			"tvl":                 tvl,
			"total_revenue":       totalRevenue,
			"revenue_by_type":     sums,
			"active_positions":    activePositions,
			"total_yield":         totalYield,
			"treasury_collateral": treasury.Collateral,
		})
	})
}

func revenueHandler(deps Deps) http.HandlerFunc {
	return adminOnly(deps.System, func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Limit int `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		limit := params.Limit
		if limit <= 0 {
			limit = 500
		}

		revenues, err := deps.Revenues.List(r.Context(), limit)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, revenues)
	})
}

func rewardRateHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Rate decimal.Decimal `json:"rate"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		previous, err := deps.Staking.SetRewardRate(r.Context(), request.Actor(r), params.Rate)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"rate": params.Rate, "previous": previous})
	}
}

func addAssetHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol      string `json:"symbol"`
			ExternalAPY int64  `json:"external_apy"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		vaultID := cast.ToUint64(param.String(r, "vault_id"))

		asset, err := deps.Vaults.AddAsset(r.Context(), request.Actor(r), vaultID, params.Symbol, params.ExternalAPY)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, asset)
	}
}
