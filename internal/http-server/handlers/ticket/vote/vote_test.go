package vote

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketledger/internal/http-server/handlers/ticket/vote/mocks"
	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(mock *mocks.VoteRecorder)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Positive vote",
			url:         "/events/1/tickets/2/vote",
			requestBody: `{"caller": "alice", "is_positive": true}`,
			mockSetup: func(mock *mocks.VoteRecorder) {
				mock.On("Vote", 1, int64(2), "alice", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Negative vote",
			url:         "/events/1/tickets/2/vote",
			requestBody: `{"caller": "alice", "is_positive": false}`,
			mockSetup: func(mock *mocks.VoteRecorder) {
				mock.On("Vote", 1, int64(2), "alice", false).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Already voted",
			url:         "/events/1/tickets/2/vote",
			requestBody: `{"caller": "alice", "is_positive": true}`,
			mockSetup: func(mock *mocks.VoteRecorder) {
				mock.On("Vote", 1, int64(2), "alice", true).
					Return(&ledger.AlreadyVotedError{TokenID: 2})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "already voted")
			},
		},
		{
			name:        "Not eligible",
			url:         "/events/1/tickets/2/vote",
			requestBody: `{"caller": "mallory", "is_positive": true}`,
			mockSetup: func(mock *mocks.VoteRecorder) {
				mock.On("Vote", 1, int64(2), "mallory", true).
					Return(&ledger.VoteEligibilityFailedError{TokenID: 2})
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "not eligible to vote")
			},
		},
		{
			name:           "Missing caller",
			url:            "/events/1/tickets/2/vote",
			requestBody:    `{"is_positive": true}`,
			mockSetup:      func(mock *mocks.VoteRecorder) {},
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

			mockRecorder := mocks.NewVoteRecorder(t)
			tc.mockSetup(mockRecorder)

			handler := New(logger, mockRecorder)

			router := chi.NewRouter()
			router.Post("/events/{id}/tickets/{tokenId}/vote", handler)

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
