package getOrganizerEvents

import (
	"log/slog"
	"net/http"

	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.EventParams `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizerEventsGetter
type OrganizerEventsGetter interface {
	GetOrganizerEvents(organizer string) ([]models.EventParams, error)
}

func New(log *slog.Logger, eventsGetter OrganizerEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getOrganizerEvents.New"

		log = log.With(slog.String("op", op))

		organizer := chi.URLParam(r, "address")
		if organizer == "" {
			log.Error("organizer address is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("organizer address is required"))
			return
		}

		events, err := eventsGetter.GetOrganizerEvents(organizer)
		if err != nil {
			log.Error("failed to get organizer events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get organizer events"))
			return
		}

		log.Info("organizer events retrieved",
			slog.String("organizer", organizer),
			slog.Int("count", len(events)),
		)

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.EventParams) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
