package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deadline offsets relative to the event start, fixed for every event.
const (
	RefundCutoffOffset = 6 * time.Hour
	VotingWindow       = 24 * time.Hour
)

// EventParams is the write-once parameter set of a single event ledger.
type EventParams struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Organizer     string          `json:"organizer"`
	MaxSupply     int64           `json:"max_supply"`
	TicketPrice   decimal.Decimal `json:"ticket_price"`
	EventStart    time.Time       `json:"event_start"`
	EntryDuration time.Duration   `json:"entry_duration"`
}

// RefundCutoff is the last instant at which a refund is accepted.
func (p EventParams) RefundCutoff() time.Time {
	return p.EventStart.Add(-RefundCutoffOffset)
}

// EntryDeadline is the last instant at which a ticket can be scanned at the gate.
func (p EventParams) EntryDeadline() time.Time {
	return p.EventStart.Add(p.EntryDuration)
}

// VotingDeadline is the instant after which settlement may run.
func (p EventParams) VotingDeadline() time.Time {
	return p.EventStart.Add(VotingWindow)
}

// LedgerStats are the incrementally maintained counters of one ledger.
type LedgerStats struct {
	TotalMinted    int64 `json:"total_minted"`
	TotalSold      int64 `json:"total_sold"`
	TotalEntered   int64 `json:"total_entered"`
	TotalVoted     int64 `json:"total_voted"`
	PositiveVotes  int64 `json:"positive_votes"`
	FundsWithdrawn bool  `json:"funds_withdrawn"`
}
