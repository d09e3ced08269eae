package getTicket

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketledger/internal/http-server/handlers/ticket/getTicket/mocks"
	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/logger/handlers/slogdiscard"
	"ticketledger/internal/models"
	"ticketledger/internal/registry"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.TicketGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Active ticket",
			url:  "/events/1/tickets/3",
			mockSetup: func(mock *mocks.TicketGetter) {
				mock.On("TicketInfo", 1, int64(3)).Return(models.Ticket{
					EventID:  1,
					TokenID:  3,
					Owner:    "wallet-a",
					Status:   models.StatusActive,
					HasVoted: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","ticket":{"event_id":1,"token_id":3,"owner":"wallet-a","status":"active","has_voted":true}}`,
		},
		{
			name: "Pooled ticket keeps sentinel owner",
			url:  "/events/1/tickets/2",
			mockSetup: func(mock *mocks.TicketGetter) {
				mock.On("TicketInfo", 1, int64(2)).Return(models.Ticket{
					EventID: 1,
					TokenID: 2,
					Owner:   models.LedgerOwner,
					Status:  models.StatusForSale,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","ticket":{"event_id":1,"token_id":2,"owner":"@ledger","status":"for_sale","has_voted":false}}`,
		},
		{
			name: "Unknown ticket",
			url:  "/events/1/tickets/99",
			mockSetup: func(mock *mocks.TicketGetter) {
				mock.On("TicketInfo", 1, int64(99)).
					Return(models.Ticket{}, &ledger.TicketNotFoundError{TokenID: 99})
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "99")
			},
		},
		{
			name: "Unknown event",
			url:  "/events/7/tickets/1",
			mockSetup: func(mock *mocks.TicketGetter) {
				mock.On("TicketInfo", 7, int64(1)).
					Return(models.Ticket{}, registry.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid token id",
			url:            "/events/1/tickets/abc",
			mockSetup:      func(mock *mocks.TicketGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid token id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewTicketGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/events/{id}/tickets/{tokenId}", handler)

			req, err := http.NewRequest("GET", tc.url, nil)
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
