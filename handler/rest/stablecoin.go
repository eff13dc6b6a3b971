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

func mintHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol     string          `json:"symbol"`
			Amount     decimal.Decimal `json:"amount"`
			Collateral decimal.Decimal `json:"collateral"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.MintCommand{
			Actor:      request.Actor(r),
			Symbol:     params.Symbol,
			Amount:     params.Amount,
			Collateral: params.Collateral,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func redeemHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol string          `json:"symbol"`
			Amount decimal.Decimal `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.RedeemCommand{
			Actor:  request.Actor(r),
			Symbol: params.Symbol,
			Amount: params.Amount,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func balancesHandler(svc core.IStablecoinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balances, err := svc.Balances(r.Context(), request.Actor(r))
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, balances)
	}
}
