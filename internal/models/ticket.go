package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	StatusForSale TicketStatus = "for_sale"
	StatusActive  TicketStatus = "active"
	StatusBurned  TicketStatus = "burned"
)

// LedgerOwner is the sentinel holder for refunded tickets sitting in the
// resale pool. It is distinct from every real participant address so that
// ownership lookups stay total.
const LedgerOwner = "@ledger"

// Ticket is one ownership record. Token ids are sequential per event,
// 1-based, and never reused for a different physical ticket.
type Ticket struct {
	EventID  int          `json:"event_id"`
	TokenID  int64        `json:"token_id"`
	Owner    string       `json:"owner"`
	Status   TicketStatus `json:"status"`
	HasVoted bool         `json:"has_voted"`
}

// AuditEntry is one line of the append-only trail written alongside every
// committed ledger mutation.
type AuditEntry struct {
	ID        int64           `json:"id"`
	EventID   int             `json:"event_id"`
	Operation string          `json:"operation"`
	TokenID   int64           `json:"token_id,omitempty"`
	Actor     string          `json:"actor"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
