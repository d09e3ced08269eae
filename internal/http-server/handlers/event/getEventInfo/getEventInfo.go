package getEventInfo

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/models"
	"ticketledger/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventView struct {
	models.EventParams
	RefundCutoff   time.Time `json:"refund_cutoff"`
	EntryDeadline  time.Time `json:"entry_deadline"`
	VotingDeadline time.Time `json:"voting_deadline"`
}

type EventInfoResponse struct {
	response.Response
	Event EventView          `json:"event"`
	Stats models.LedgerStats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventInfoGetter
type EventInfoGetter interface {
	EventInfo(eventID int) (models.EventParams, models.LedgerStats, error)
}

func New(log *slog.Logger, info EventInfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		params, stats, err := info.EventInfo(eventID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))

			if errors.Is(err, registry.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, params, stats)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, params models.EventParams, stats models.LedgerStats) {
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event: EventView{
			EventParams:    params,
			RefundCutoff:   params.RefundCutoff(),
			EntryDeadline:  params.EntryDeadline(),
			VotingDeadline: params.VotingDeadline(),
		},
		Stats: stats,
	})
}
