package requestRefund

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
)

type RefundRequest struct {
	Caller string `json:"caller" validate:"required"`
}

type RefundResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RefundRequester
type RefundRequester interface {
	RequestRefund(eventID int, tokenID int64, caller string) error
}

func New(log *slog.Logger, refunder RefundRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.requestRefund.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		tokenID, err := strconv.ParseInt(chi.URLParam(r, "tokenId"), 10, 64)
		if err != nil {
			log.Error("invalid token id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid token id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID), slog.Int64("token_id", tokenID))

		var req RefundRequest

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

		err = refunder.RequestRefund(eventID, tokenID, req.Caller)
		if err != nil {
			log.Error("failed to refund ticket", sl.Err(err))

			var expired *ledger.RefundPeriodExpiredError
			var invalidStatus *ledger.InvalidTicketStatusError
			var notFound *ledger.TicketNotFoundError

			switch {
			case errors.Is(err, registry.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.As(err, &notFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, ledger.ErrUnauthorizedAccess):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("caller does not own this ticket"))
			case errors.As(err, &expired):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.As(err, &invalidStatus):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to refund ticket"))
			}

			return
		}

		log.Info("ticket refunded", slog.String("caller", req.Caller))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RefundResponse{
		Response: response.OK(),
	})
}
