package getEventInfo

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketledger/internal/http-server/handlers/event/getEventInfo/mocks"
	"ticketledger/internal/lib/logger/handlers/slogdiscard"
	"ticketledger/internal/models"
	"ticketledger/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testStart := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	testParams := models.EventParams{
		ID:            1,
		Name:          "Test Event",
		Description:   "A test",
		Organizer:     "org-a",
		MaxSupply:     100,
		TicketPrice:   decimal.NewFromInt(25),
		EventStart:    testStart,
		EntryDuration: 2 * time.Hour,
	}
	testStats := models.LedgerStats{
		TotalMinted:  10,
		TotalSold:    8,
		TotalEntered: 3,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventInfoGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "1",
			mockSetup: func(mock *mocks.EventInfoGetter) {
				mock.On("EventInfo", 1).Return(testParams, testStats, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventInfoResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 1, resp.Event.ID)
				assert.Equal(t, "Test Event", resp.Event.Name)
				assert.Equal(t, testStart.Add(-6*time.Hour), resp.Event.RefundCutoff)
				assert.Equal(t, testStart.Add(2*time.Hour), resp.Event.EntryDeadline)
				assert.Equal(t, testStart.Add(24*time.Hour), resp.Event.VotingDeadline)
				assert.Equal(t, int64(8), resp.Stats.TotalSold)
			},
		},
		{
			name:    "Event not found",
			eventID: "99",
			mockSetup: func(mock *mocks.EventInfoGetter) {
				mock.On("EventInfo", 99).Return(models.EventParams{}, models.LedgerStats{}, registry.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid event id",
			eventID:        "abc",
			mockSetup:      func(mock *mocks.EventInfoGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Internal error",
			eventID: "1",
			mockSetup: func(mock *mocks.EventInfoGetter) {
				mock.On("EventInfo", 1).Return(models.EventParams{}, models.LedgerStats{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event information"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventInfoGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/events/{id}", handler)

			req, err := http.NewRequest("GET", "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
