package ledger

import (
	"errors"
	"fmt"
	"time"

	"ticketledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrSupplyExhausted       = errors.New("supply exhausted")
	ErrUnauthorizedAccess    = errors.New("unauthorized access")
	ErrEntryPeriodExpired    = errors.New("entry period expired")
	ErrFundsAlreadyProcessed = errors.New("funds already processed")
)

// PaymentMismatchError rejects any payment that is not exactly the ticket price.
type PaymentMismatchError struct {
	Got  decimal.Decimal
	Want decimal.Decimal
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("payment mismatch: got %s, want %s", e.Got, e.Want)
}

// WalletLimitExceededError is returned when a buyer already holds the maximum
// number of tickets. Held carries the current count for the caller to render.
type WalletLimitExceededError struct {
	Held int64
}

func (e *WalletLimitExceededError) Error() string {
	return fmt.Sprintf("wallet limit exceeded: already holding %d tickets", e.Held)
}

// RefundPeriodExpiredError carries both sides of the failed deadline check.
type RefundPeriodExpiredError struct {
	Current  time.Time
	Deadline time.Time
}

func (e *RefundPeriodExpiredError) Error() string {
	return fmt.Sprintf("refund period expired: now %s, deadline was %s",
		e.Current.Format(time.RFC3339), e.Deadline.Format(time.RFC3339))
}

type TicketNotFoundError struct {
	TokenID int64
}

func (e *TicketNotFoundError) Error() string {
	return fmt.Sprintf("ticket %d not found", e.TokenID)
}

// InvalidTicketStatusError rejects an operation that requires a different
// ticket status, e.g. refunding a ticket that is already in the resale pool.
type InvalidTicketStatusError struct {
	TokenID int64
	Status  models.TicketStatus
}

func (e *InvalidTicketStatusError) Error() string {
	return fmt.Sprintf("ticket %d has status %s", e.TokenID, e.Status)
}

type TicketAlreadyUsedError struct {
	TokenID int64
}

func (e *TicketAlreadyUsedError) Error() string {
	return fmt.Sprintf("ticket %d already used for entry", e.TokenID)
}

type AlreadyVotedError struct {
	TokenID int64
}

func (e *AlreadyVotedError) Error() string {
	return fmt.Sprintf("ticket %d already voted", e.TokenID)
}

// VoteEligibilityFailedError covers both ineligibility causes: the caller does
// not own the ticket, or the ticket was never used for entry.
type VoteEligibilityFailedError struct {
	TokenID int64
}

func (e *VoteEligibilityFailedError) Error() string {
	return fmt.Sprintf("ticket %d is not eligible to vote", e.TokenID)
}

// VotingNotClosedError rejects settlement attempted before the voting deadline.
type VotingNotClosedError struct {
	Current  time.Time
	Deadline time.Time
}

func (e *VotingNotClosedError) Error() string {
	return fmt.Sprintf("voting not closed: now %s, deadline is %s",
		e.Current.Format(time.RFC3339), e.Deadline.Format(time.RFC3339))
}
