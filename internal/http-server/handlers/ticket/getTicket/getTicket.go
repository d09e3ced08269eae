package getTicket

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/models"
	"ticketledger/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TicketResponse struct {
	response.Response
	Ticket models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketGetter
type TicketGetter interface {
	TicketInfo(eventID int, tokenID int64) (models.Ticket, error)
}

func New(log *slog.Logger, tickets TicketGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTicket.New"

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

		ticket, err := tickets.TicketInfo(eventID, tokenID)
		if err != nil {
			log.Error("failed to get ticket", sl.Err(err))

			if errors.Is(err, registry.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			var notFound *ledger.TicketNotFoundError
			if errors.As(err, &notFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ticket"))
			return
		}

		log.Info("ticket info successfully received")

		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   ticket,
		})
	}
}
