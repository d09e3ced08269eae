package scanTicket

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

type ScanRequest struct {
	Operator string `json:"operator" validate:"required"`
}

// ScanResponse reports whether the gate should admit the holder.
type ScanResponse struct {
	response.Response
	Valid bool `json:"valid"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketScanner
type TicketScanner interface {
	ScanTicket(eventID int, tokenID int64, operator string) error
}

func New(log *slog.Logger, scanner TicketScanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.scanTicket.New"

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

		var req ScanRequest

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

		err = scanner.ScanTicket(eventID, tokenID, req.Operator)
		if err != nil {
			log.Error("failed to scan ticket", sl.Err(err))

			var used *ledger.TicketAlreadyUsedError
			var notFound *ledger.TicketNotFoundError

			switch {
			case errors.Is(err, registry.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.As(err, &notFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, invalidScan(err.Error()))
			case errors.Is(err, ledger.ErrUnauthorizedAccess):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the organizer may scan tickets"))
			case errors.Is(err, ledger.ErrEntryPeriodExpired):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, invalidScan("entry period expired"))
			case errors.As(err, &used):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, invalidScan(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to scan ticket"))
			}

			return
		}

		log.Info("ticket admitted at the gate")

		render.JSON(w, r, ScanResponse{
			Response: response.OK(),
			Valid:    true,
		})
	}
}

func invalidScan(msg string) ScanResponse {
	return ScanResponse{
		Response: response.Error(msg),
		Valid:    false,
	}
}
