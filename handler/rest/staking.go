package rest

import (
	"net/http"
	"time"

	"estable/core"
	"estable/handler/param"
	"estable/handler/render"
	"estable/handler/request"
	"estable/service/dispatcher"

	"github.com/shopspring/decimal"
)

func stakeHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Amount     decimal.Decimal `json:"amount"`
			LockPeriod int64           `json:"lock_period"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.StakeCommand{
			Actor:      request.Actor(r),
			Amount:     params.Amount,
			LockPeriod: params.LockPeriod,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func unstakeHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			StakeIndex int64 `json:"stake_index"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.UnstakeCommand{
			Actor:      request.Actor(r),
			StakeIndex: params.StakeIndex,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func emergencyUnstakeHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			StakeIndex int64 `json:"stake_index"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.EmergencyUnstakeCommand{
			Actor:      request.Actor(r),
			StakeIndex: params.StakeIndex,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func claimHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			StakeIndex int64 `json:"stake_index"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.ClaimRewardsCommand{
			Actor:      request.Actor(r),
			StakeIndex: params.StakeIndex,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"claimed": result})
	}
}

func rewardsHandler(svc core.IStakingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewards, err := svc.Rewards(r.Context(), request.Actor(r), time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, rewards)
	}
}
