package mintTicket

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

type MintRequest struct {
	Buyer   string          `json:"buyer" validate:"required"`
	Payment decimal.Decimal `json:"payment"`
}

type MintResponse struct {
	response.Response
	TokenId int64 `json:"token_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketMinter
type TicketMinter interface {
	MintTicket(eventID int, buyer string, payment decimal.Decimal) (int64, error)
}

func New(log *slog.Logger, minter TicketMinter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.mintTicket.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req MintRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		tokenID, err := minter.MintTicket(eventID, req.Buyer, req.Payment)
		if err != nil {
			log.Error("failed to mint ticket", sl.Err(err))

			var mismatch *ledger.PaymentMismatchError
			var limit *ledger.WalletLimitExceededError

			switch {
			case errors.Is(err, registry.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.As(err, &mismatch):
				render.Status(r, http.StatusPaymentRequired)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.As(err, &limit):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, ledger.ErrSupplyExhausted):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("supply exhausted"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to mint ticket"))
			}

			return
		}

		log.Info("ticket minted", slog.Int64("token_id", tokenID))

		responseOK(w, r, tokenID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, tokenID int64) {
	render.JSON(w, r, MintResponse{
		Response: response.OK(),
		TokenId:  tokenID,
	})
}
