package getBalance

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BalanceResponse struct {
	response.Response
	Holder  string `json:"holder"`
	Balance int64  `json:"balance"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BalanceGetter
type BalanceGetter interface {
	BalanceOf(eventID int, holder string) (int64, error)
}

func New(log *slog.Logger, balances BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getBalance.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		holder := chi.URLParam(r, "address")
		if holder == "" {
			log.Error("holder address is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("holder address is required"))
			return
		}

		log = log.With(slog.Int("event_id", eventID), slog.String("holder", holder))

		balance, err := balances.BalanceOf(eventID, holder)
		if err != nil {
			log.Error("failed to get holder balance", sl.Err(err))

			if errors.Is(err, registry.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get holder balance"))
			return
		}

		log.Info("holder balance successfully received", slog.Int64("balance", balance))

		render.JSON(w, r, BalanceResponse{
			Response: response.OK(),
			Holder:   holder,
			Balance:  balance,
		})
	}
}
