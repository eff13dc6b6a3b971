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

func govStakeHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Amount     decimal.Decimal `json:"amount"`
			LockMonths int64           `json:"lock_months"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.GovStakeCommand{
			Actor:      request.Actor(r),
			Amount:     params.Amount,
			LockMonths: params.LockMonths,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func govUnstakeHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			StakeID uint64 `json:"stake_id"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.GovUnstakeCommand{
			Actor:   request.Actor(r),
			StakeID: params.StakeID,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func voteHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			ProposalID uint64 `json:"proposal_id"`
			Choice     string `json:"choice"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.VoteCommand{
			Actor:      request.Actor(r),
			ProposalID: params.ProposalID,
			Choice:     core.VoteChoice(params.Choice),
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func votingPowerHandler(svc core.IGovernanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		power, err := svc.VotingPower(r.Context(), request.Actor(r))
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"ve_power": power})
	}
}

func proposalsHandler(svc core.IGovernanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Limit int `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		limit := params.Limit
		if limit <= 0 {
			limit = 100
		}

		proposals, err := svc.Proposals(r.Context(), limit)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, proposals)
	}
}
