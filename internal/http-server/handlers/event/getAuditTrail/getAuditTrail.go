package getAuditTrail

import (
	"log/slog"
	"net/http"
	"strconv"

	"ticketledger/internal/lib/api/response"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type AuditTrailResponse struct {
	response.Response
	Entries []models.AuditEntry `json:"entries"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuditTrailGetter
type AuditTrailGetter interface {
	AuditTrail(eventID int) ([]models.AuditEntry, error)
}

func New(log *slog.Logger, trail AuditTrailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAuditTrail.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		entries, err := trail.AuditTrail(eventID)
		if err != nil {
			log.Error("failed to get audit trail", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get audit trail"))
			return
		}

		if entries == nil {
			entries = []models.AuditEntry{}
		}

		log.Info("audit trail received", slog.Int("entries", len(entries)))

		render.JSON(w, r, AuditTrailResponse{
			Response: response.OK(),
			Entries:  entries,
		})
	}
}
