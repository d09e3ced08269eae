package ledger

import (
	"ticketledger/internal/models"

	"github.com/shopspring/decimal"
)

// Change is the full effect of one committed ledger operation. The store must
// apply all of it in a single transaction or none of it; the ledger only
// updates its in-memory state after Apply returns nil.
type Change struct {
	EventID int

	// Ticket row after the operation. Zero TokenID means no ticket changed
	// (settlement is the only such operation).
	Ticket models.Ticket

	// Resale pool mutation. At most one of the two is set; the affected
	// token id is Ticket.TokenID.
	PoolPush bool
	PoolPop  bool

	// Holder balance adjustment for HolderAddr; zero delta means untouched.
	HolderAddr  string
	HolderDelta int64

	// Stats and escrow balance after the operation.
	Stats  models.LedgerStats
	Escrow decimal.Decimal

	// Set only by settlement.
	Settlement *SettlementResult

	Audit models.AuditEntry
}

// SettlementOutcome is the irreversible withdraw-or-burn decision.
type SettlementOutcome string

const (
	OutcomeWithdrawn SettlementOutcome = "withdrawn"
	OutcomeBurned    SettlementOutcome = "burned"
)

// SettlementResult records where the escrowed balance went.
type SettlementResult struct {
	Outcome   SettlementOutcome `json:"outcome"`
	Amount    decimal.Decimal   `json:"amount"`
	Recipient string            `json:"recipient"`
}

// Store persists committed ledger changes durably.
type Store interface {
	Apply(change Change) error
}

// Snapshot is the persisted state of one ledger, loaded at startup.
type Snapshot struct {
	Params   models.EventParams
	Tickets  []models.Ticket
	Pool     []int64 // resale pool, bottom of the stack first
	Balances map[string]int64
	Stats    models.LedgerStats
	Escrow   decimal.Decimal
}
