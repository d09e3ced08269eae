package withdrawFunds

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketledger/internal/http-server/handlers/ticket/withdrawFunds/mocks"
	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawFundsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(mock *mocks.FundsWithdrawer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Withdrawn to organizer",
			url:         "/events/1/withdraw",
			requestBody: `{"caller": "org-a"}`,
			mockSetup: func(mock *mocks.FundsWithdrawer) {
				mock.On("WithdrawFunds", 1, "org-a").Return(ledger.SettlementResult{
					Outcome:   ledger.OutcomeWithdrawn,
					Amount:    decimal.NewFromInt(500),
					Recipient: "org-a",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","outcome":"withdrawn","amount":"500","recipient":"org-a"}`,
		},
		{
			name:        "Burned",
			url:         "/events/1/withdraw",
			requestBody: `{"caller": "anyone"}`,
			mockSetup: func(mock *mocks.FundsWithdrawer) {
				mock.On("WithdrawFunds", 1, "anyone").Return(ledger.SettlementResult{
					Outcome:   ledger.OutcomeBurned,
					Amount:    decimal.NewFromInt(500),
					Recipient: ledger.BurnSink,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","outcome":"burned","amount":"500","recipient":"@burn"}`,
		},
		{
			name:        "Already processed",
			url:         "/events/1/withdraw",
			requestBody: `{"caller": "org-a"}`,
			mockSetup: func(mock *mocks.FundsWithdrawer) {
				mock.On("WithdrawFunds", 1, "org-a").
					Return(ledger.SettlementResult{}, ledger.ErrFundsAlreadyProcessed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"funds already processed"}`,
		},
		{
			name:        "Voting still open",
			url:         "/events/1/withdraw",
			requestBody: `{"caller": "org-a"}`,
			mockSetup: func(mock *mocks.FundsWithdrawer) {
				deadline := time.Date(2026, 10, 2, 20, 0, 0, 0, time.UTC)
				mock.On("WithdrawFunds", 1, "org-a").
					Return(ledger.SettlementResult{}, &ledger.VotingNotClosedError{
						Current:  deadline.Add(-time.Hour),
						Deadline: deadline,
					})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "voting not closed")
			},
		},
		{
			name:           "Missing caller",
			url:            "/events/1/withdraw",
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.FundsWithdrawer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Caller")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockWithdrawer := mocks.NewFundsWithdrawer(t)
			tc.mockSetup(mockWithdrawer)

			handler := New(logger, mockWithdrawer)

			router := chi.NewRouter()
			router.Post("/events/{id}/withdraw", handler)

			req, err := http.NewRequest("POST", tc.url, bytes.NewBufferString(tc.requestBody))
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
