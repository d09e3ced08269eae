package withdrawFunds

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type WithdrawRequest struct {
	Caller string `json:"caller" validate:"required"`
}

type WithdrawResponse struct {
	response.Response
	Outcome   string          `json:"outcome"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FundsWithdrawer
type FundsWithdrawer interface {
	WithdrawFunds(eventID int, caller string) (ledger.SettlementResult, error)
}

func New(log *slog.Logger, withdrawer FundsWithdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.withdrawFunds.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req WithdrawRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		result, err := withdrawer.WithdrawFunds(eventID, req.Caller)
		if err != nil {
			log.Error("failed to settle funds", sl.Err(err))

			var notClosed *ledger.VotingNotClosedError

			switch {
			case errors.Is(err, registry.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, ledger.ErrFundsAlreadyProcessed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("funds already processed"))
			case errors.As(err, &notClosed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to settle funds"))
			}

			return
		}

		log.Info("funds settled",
			slog.String("outcome", string(result.Outcome)),
			slog.String("amount", result.Amount.String()),
		)

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result ledger.SettlementResult) {
	render.JSON(w, r, WithdrawResponse{
		Response:  response.OK(),
		Outcome:   string(result.Outcome),
		Amount:    result.Amount,
		Recipient: result.Recipient,
	})
}
