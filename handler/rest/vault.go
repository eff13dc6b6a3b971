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
	"github.com/spf13/cast"
)

func vaultDepositHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			VaultID uint64          `json:"vault_id"`
			Symbol  string          `json:"symbol"`
			Amount  decimal.Decimal `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.VaultDepositCommand{
			Actor:   request.Actor(r),
			VaultID: params.VaultID,
			Symbol:  params.Symbol,
			Amount:  params.Amount,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func vaultWithdrawHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			VaultID uint64          `json:"vault_id"`
			Shares  decimal.Decimal `json:"shares"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.VaultWithdrawCommand{
			Actor:   request.Actor(r),
			VaultID: params.VaultID,
			Shares:  params.Shares,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func stakeEstHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			VaultID uint64          `json:"vault_id"`
			Amount  decimal.Decimal `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.StakeEstCommand{
			Actor:   request.Actor(r),
			VaultID: params.VaultID,
			Amount:  params.Amount,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func unstakeEstHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			VaultID uint64          `json:"vault_id"`
			Amount  decimal.Decimal `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.UnstakeEstCommand{
			Actor:   request.Actor(r),
			VaultID: params.VaultID,
			Amount:  params.Amount,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func vaultAPYHandler(svc core.IVaultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vaultID := cast.ToUint64(param.String(r, "vault_id"))

		apy, err := svc.CurrentAPY(r.Context(), vaultID, request.Actor(r))
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"apy_bps": apy})
	}
}

func vaultAssetsHandler(svc core.IVaultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vaultID := cast.ToUint64(param.String(r, "vault_id"))

		assets, err := svc.SupportedAssets(r.Context(), vaultID)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, assets)
	}
}
