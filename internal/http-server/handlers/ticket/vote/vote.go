package vote

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

type VoteRequest struct {
	Caller     string `json:"caller" validate:"required"`
	IsPositive bool   `json:"is_positive"`
}

type VoteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VoteRecorder
type VoteRecorder interface {
	Vote(eventID int, tokenID int64, caller string, isPositive bool) error
}

func New(log *slog.Logger, recorder VoteRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.vote.New"

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

		var req VoteRequest

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

		err = recorder.Vote(eventID, tokenID, req.Caller, req.IsPositive)
		if err != nil {
			log.Error("failed to record vote", sl.Err(err))

			var already *ledger.AlreadyVotedError
			var ineligible *ledger.VoteEligibilityFailedError

			switch {
			case errors.Is(err, registry.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.As(err, &already):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.As(err, &ineligible):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to record vote"))
			}

			return
		}

		log.Info("vote recorded", slog.Bool("positive", req.IsPositive))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, VoteResponse{
		Response: response.OK(),
	})
}
