package rest

import (
	"net/http"
	"time"

	"estable/core"
	"estable/handler/param"
	"estable/handler/render"
	"estable/handler/request"

	"github.com/jinzhu/gorm"
)

func transactionsHandler(transactions core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Offset string `json:"offset"`
			Limit  int    `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		limit := params.Limit
		if limit <= 0 {
			limit = 500
		}

		offsetTime, err := time.Parse(time.RFC3339Nano, params.Offset)
		if err != nil {
			offsetTime = time.Time{}
		}

		items, err := transactions.List(r.Context(), offsetTime, limit)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, items)
	}
}

func transactionHandler(transactions core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := transactions.FindByTraceID(r.Context(), param.String(r, "trace_id"))
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				render.Err(w, core.ErrNotFound)
				return
			}

			render.Err(w, err)
			return
		}

		render.JSON(w, item)
	}
}

func userTransactionsHandler(transactions core.ITransactionStore) http.HandlerFunc {
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
			limit = 500
		}

		items, err := transactions.ListByUser(r.Context(), request.Actor(r), limit)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, items)
	}
}
