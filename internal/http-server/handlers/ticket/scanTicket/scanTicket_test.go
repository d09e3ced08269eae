package scanTicket

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketledger/internal/http-server/handlers/ticket/scanTicket/mocks"
	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(mock *mocks.TicketScanner)
		expectedStatus int
		expectedValid  bool
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Valid ticket admitted",
			url:         "/events/1/tickets/5/scan",
			requestBody: `{"operator": "org-a"}`,
			mockSetup: func(mock *mocks.TicketScanner) {
				mock.On("ScanTicket", 1, int64(5), "org-a").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedValid:  true,
		},
		{
			name:        "Already used",
			url:         "/events/1/tickets/5/scan",
			requestBody: `{"operator": "org-a"}`,
			mockSetup: func(mock *mocks.TicketScanner) {
				mock.On("ScanTicket", 1, int64(5), "org-a").
					Return(&ledger.TicketAlreadyUsedError{TokenID: 5})
			},
			expectedStatus: http.StatusConflict,
			expectedValid:  false,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "already used for entry")
			},
		},
		{
			name:        "Entry window closed",
			url:         "/events/1/tickets/5/scan",
			requestBody: `{"operator": "org-a"}`,
			mockSetup: func(mock *mocks.TicketScanner) {
				mock.On("ScanTicket", 1, int64(5), "org-a").Return(ledger.ErrEntryPeriodExpired)
			},
			expectedStatus: http.StatusConflict,
			expectedValid:  false,
		},
		{
			name:        "Not the organizer",
			url:         "/events/1/tickets/5/scan",
			requestBody: `{"operator": "stranger"}`,
			mockSetup: func(mock *mocks.TicketScanner) {
				mock.On("ScanTicket", 1, int64(5), "stranger").Return(ledger.ErrUnauthorizedAccess)
			},
			expectedStatus: http.StatusForbidden,
			expectedValid:  false,
		},
		{
			name:        "Unknown ticket",
			url:         "/events/1/tickets/77/scan",
			requestBody: `{"operator": "org-a"}`,
			mockSetup: func(mock *mocks.TicketScanner) {
				mock.On("ScanTicket", 1, int64(77), "org-a").
					Return(&ledger.TicketNotFoundError{TokenID: 77})
			},
			expectedStatus: http.StatusNotFound,
			expectedValid:  false,
		},
		{
			name:           "Missing operator",
			url:            "/events/1/tickets/5/scan",
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.TicketScanner) {},
			expectedStatus: http.StatusBadRequest,
			expectedValid:  false,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Operator")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockScanner := mocks.NewTicketScanner(t)
			tc.mockSetup(mockScanner)

			handler := New(logger, mockScanner)

			router := chi.NewRouter()
			router.Post("/events/{id}/tickets/{tokenId}/scan", handler)

			req, err := http.NewRequest("POST", tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			var resp ScanResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedValid, resp.Valid)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
