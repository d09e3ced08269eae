package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type EventRequest struct {
	Name             string          `json:"name" validate:"required"`
	Description      string          `json:"description"`
	Organizer        string          `json:"organizer" validate:"required"`
	MaxSupply        int64           `json:"max_supply" validate:"required,gt=0"`
	TicketPrice      decimal.Decimal `json:"ticket_price"`
	EventStart       time.Time       `json:"event_start" validate:"required"`
	EntryDurationSec int64           `json:"entry_duration_sec" validate:"required,gt=0"`
}

type EventResponse struct {
	response.Response
	EventId int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(params models.EventParams) (int, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventId, err := event.CreateEvent(models.EventParams{
			Name:          req.Name,
			Description:   req.Description,
			Organizer:     req.Organizer,
			MaxSupply:     req.MaxSupply,
			TicketPrice:   req.TicketPrice,
			EventStart:    req.EventStart,
			EntryDuration: time.Duration(req.EntryDurationSec) * time.Second,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.Int("id", eventId))

		responseOK(w, r, eventId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
