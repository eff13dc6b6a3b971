package rest

import (
	"net/http"
	"time"

	"estable/core"
	"estable/handler/param"
	"estable/handler/render"
	"estable/handler/request"
	"estable/handler/views"
	"estable/service/dispatcher"

	"github.com/shopspring/decimal"
)

func borrowHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Amount     decimal.Decimal `json:"amount"`
			Collateral decimal.Decimal `json:"collateral"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.OpenBorrowCommand{
			Actor:      request.Actor(r),
			Amount:     params.Amount,
			Collateral: params.Collateral,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, views.NewPosition(result.(*core.Position)))
	}
}

func repayHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			PositionID uint64 `json:"position_id"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.RepayCommand{
			Actor:      request.Actor(r),
			PositionID: params.PositionID,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func liquidateHandler(d *dispatcher.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			PositionID uint64 `json:"position_id"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := d.Dispatch(r.Context(), core.LiquidateCommand{
			Actor:      request.Actor(r),
			PositionID: params.PositionID,
		}, time.Now())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func positionsHandler(svc core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := svc.Positions(r.Context(), request.Actor(r))
		if err != nil {
			render.Err(w, err)
			return
		}

		items := make([]views.Position, 0, len(positions))
		for _, p := range positions {
			items = append(items, views.NewPosition(p))
		}

		render.JSON(w, items)
	}
}
