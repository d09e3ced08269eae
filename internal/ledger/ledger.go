package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"ticketledger/internal/models"

	"github.com/shopspring/decimal"
)

// MaxPerWallet is the hard cap of tickets attributed to one holder. Burned
// tickets still count, so a used entry slot cannot be recycled into a new mint.
const MaxPerWallet = 2

// BurnSink is the recipient recorded when settlement forfeits the escrow.
const BurnSink = "@burn"

const (
	opMint   = "mint"
	opRefund = "refund"
	opScan   = "scan"
	opVote   = "vote"
	opSettle = "settle"
)

// Ledger is the authoritative state machine of one event: ticket records, the
// resale pool, holder balances, counters and the escrowed balance. Every
// mutating operation is serialized behind a single lock, validated against the
// injected clock, persisted through the store, and only then committed to
// memory, so a failed write never leaves memory and storage disagreeing.
type Ledger struct {
	mu     sync.Mutex
	params models.EventParams
	clock  Clock
	store  Store
	log    *slog.Logger

	tickets  map[int64]*models.Ticket
	pool     []int64 // LIFO: last refunded is first resold
	balances map[string]int64
	stats    models.LedgerStats
	escrow   decimal.Decimal
}

// New creates an empty ledger for a freshly registered event.
func New(params models.EventParams, clock Clock, store Store, log *slog.Logger) *Ledger {
	return &Ledger{
		params:   params,
		clock:    clock,
		store:    store,
		log:      log.With(slog.Int("event_id", params.ID)),
		tickets:  make(map[int64]*models.Ticket),
		balances: make(map[string]int64),
		escrow:   decimal.Zero,
	}
}

// FromSnapshot rebuilds a ledger from persisted state after a restart.
func FromSnapshot(snap Snapshot, clock Clock, store Store, log *slog.Logger) *Ledger {
	l := New(snap.Params, clock, store, log)

	for _, t := range snap.Tickets {
		ticket := t
		l.tickets[ticket.TokenID] = &ticket
	}
	l.pool = append(l.pool, snap.Pool...)
	for holder, held := range snap.Balances {
		l.balances[holder] = held
	}
	l.stats = snap.Stats
	l.escrow = snap.Escrow

	return l
}

// MintTicket sells one ticket to buyer for exactly the ticket price. Refunded
// tickets are resold before any new id is allocated, most recently refunded
// first. Returns the assigned token id.
func (l *Ledger) MintTicket(buyer string, payment decimal.Decimal) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !payment.Equal(l.params.TicketPrice) {
		return 0, &PaymentMismatchError{Got: payment, Want: l.params.TicketPrice}
	}

	held := l.balances[buyer]
	if held >= MaxPerWallet {
		return 0, &WalletLimitExceededError{Held: held}
	}

	var tokenID int64
	fromPool := len(l.pool) > 0
	switch {
	case fromPool:
		tokenID = l.pool[len(l.pool)-1]
	case l.stats.TotalMinted < l.params.MaxSupply:
		tokenID = l.stats.TotalMinted + 1
	default:
		return 0, ErrSupplyExhausted
	}

	ticket := models.Ticket{
		EventID: l.params.ID,
		TokenID: tokenID,
		Owner:   buyer,
		Status:  models.StatusActive,
	}

	stats := l.stats
	if !fromPool {
		stats.TotalMinted++
	}
	stats.TotalSold++
	escrow := l.escrow.Add(payment)

	err := l.store.Apply(Change{
		EventID:     l.params.ID,
		Ticket:      ticket,
		PoolPop:     fromPool,
		HolderAddr:  buyer,
		HolderDelta: 1,
		Stats:       stats,
		Escrow:      escrow,
		Audit:       l.audit(opMint, tokenID, buyer, payment),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to persist mint: %w", err)
	}

	if fromPool {
		l.pool = l.pool[:len(l.pool)-1]
	}
	l.tickets[tokenID] = &ticket
	l.balances[buyer]++
	l.stats = stats
	l.escrow = escrow

	l.log.Info("ticket minted",
		slog.Int64("token_id", tokenID),
		slog.String("buyer", buyer),
		slog.Bool("resale", fromPool),
	)

	return tokenID, nil
}

// RequestRefund returns an active ticket to the resale pool and its price to
// the caller. Allowed until six hours before the event starts.
func (l *Ledger) RequestRefund(tokenID int64, caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[tokenID]
	if !ok {
		return &TicketNotFoundError{TokenID: tokenID}
	}
	if ticket.Owner != caller {
		return ErrUnauthorizedAccess
	}
	if ticket.Status != models.StatusActive {
		return &InvalidTicketStatusError{TokenID: tokenID, Status: ticket.Status}
	}

	now := l.clock.Now()
	if cutoff := l.params.RefundCutoff(); now.After(cutoff) {
		return &RefundPeriodExpiredError{Current: now, Deadline: cutoff}
	}

	updated := *ticket
	updated.Owner = models.LedgerOwner
	updated.Status = models.StatusForSale

	stats := l.stats
	stats.TotalSold--
	escrow := l.escrow.Sub(l.params.TicketPrice)

	err := l.store.Apply(Change{
		EventID:     l.params.ID,
		Ticket:      updated,
		PoolPush:    true,
		HolderAddr:  caller,
		HolderDelta: -1,
		Stats:       stats,
		Escrow:      escrow,
		Audit:       l.audit(opRefund, tokenID, caller, l.params.TicketPrice),
	})
	if err != nil {
		return fmt.Errorf("failed to persist refund: %w", err)
	}

	*ticket = updated
	l.pool = append(l.pool, tokenID)
	l.balances[caller]--
	l.stats = stats
	l.escrow = escrow

	l.log.Info("ticket refunded",
		slog.Int64("token_id", tokenID),
		slog.String("holder", caller),
	)

	return nil
}

// ScanTicket burns an active ticket at the gate. Only the organizer may scan.
// The holder keeps the burned record: it is their proof of attendance for
// voting, and it still counts against the wallet cap.
func (l *Ledger) ScanTicket(tokenID int64, operator string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if operator != l.params.Organizer {
		return ErrUnauthorizedAccess
	}

	ticket, ok := l.tickets[tokenID]
	if !ok || ticket.Status == models.StatusForSale {
		return &TicketNotFoundError{TokenID: tokenID}
	}
	if ticket.Status == models.StatusBurned {
		return &TicketAlreadyUsedError{TokenID: tokenID}
	}

	if now := l.clock.Now(); now.After(l.params.EntryDeadline()) {
		return ErrEntryPeriodExpired
	}

	updated := *ticket
	updated.Status = models.StatusBurned

	stats := l.stats
	stats.TotalEntered++

	err := l.store.Apply(Change{
		EventID: l.params.ID,
		Ticket:  updated,
		Stats:   stats,
		Escrow:  l.escrow,
		Audit:   l.audit(opScan, tokenID, operator, decimal.Zero),
	})
	if err != nil {
		return fmt.Errorf("failed to persist scan: %w", err)
	}

	*ticket = updated
	l.stats = stats

	l.log.Info("ticket scanned", slog.Int64("token_id", tokenID))

	return nil
}

// Vote records the holder's verdict on the event. Only burned tickets vote:
// attendance was verified at the gate. Each ticket votes once.
func (l *Ledger) Vote(tokenID int64, caller string, isPositive bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[tokenID]
	if !ok || ticket.Owner != caller || ticket.Status != models.StatusBurned {
		return &VoteEligibilityFailedError{TokenID: tokenID}
	}
	if ticket.HasVoted {
		return &AlreadyVotedError{TokenID: tokenID}
	}

	updated := *ticket
	updated.HasVoted = true

	stats := l.stats
	stats.TotalVoted++
	if isPositive {
		stats.PositiveVotes++
	}

	err := l.store.Apply(Change{
		EventID: l.params.ID,
		Ticket:  updated,
		Stats:   stats,
		Escrow:  l.escrow,
		Audit:   l.audit(opVote, tokenID, caller, decimal.Zero),
	})
	if err != nil {
		return fmt.Errorf("failed to persist vote: %w", err)
	}

	*ticket = updated
	l.stats = stats

	l.log.Info("vote recorded",
		slog.Int64("token_id", tokenID),
		slog.Bool("positive", isPositive),
	)

	return nil
}

// WithdrawFunds runs the one-shot settlement after the voting deadline: the
// escrow goes to the organizer if at least 30% of sold tickets entered and the
// recorded votes are not majority-negative, otherwise to the burn sink.
// Callable by anyone; the decision depends only on ledger state.
func (l *Ledger) WithdrawFunds(caller string) (SettlementResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stats.FundsWithdrawn {
		return SettlementResult{}, ErrFundsAlreadyProcessed
	}

	now := l.clock.Now()
	if deadline := l.params.VotingDeadline(); !now.After(deadline) {
		return SettlementResult{}, &VotingNotClosedError{Current: now, Deadline: deadline}
	}

	result := SettlementResult{
		Outcome:   l.decideOutcome(),
		Amount:    l.escrow,
		Recipient: BurnSink,
	}
	if result.Outcome == OutcomeWithdrawn {
		result.Recipient = l.params.Organizer
	}

	stats := l.stats
	stats.FundsWithdrawn = true

	err := l.store.Apply(Change{
		EventID:    l.params.ID,
		Stats:      stats,
		Escrow:     decimal.Zero,
		Settlement: &result,
		Audit:      l.audit(opSettle, 0, caller, result.Amount),
	})
	if err != nil {
		return SettlementResult{}, fmt.Errorf("failed to persist settlement: %w", err)
	}

	l.stats = stats
	l.escrow = decimal.Zero

	l.log.Info("funds settled",
		slog.String("outcome", string(result.Outcome)),
		slog.String("amount", result.Amount.String()),
		slog.String("recipient", result.Recipient),
	)

	return result, nil
}

// decideOutcome evaluates the quorum thresholds in order. Integer arithmetic
// only: entered/sold < 30% is entered*10 < sold*3, positive/voted <= 50% is
// positive*2 <= voted. Nothing sold burns; zero voters alone never burns.
func (l *Ledger) decideOutcome() SettlementOutcome {
	if l.stats.TotalSold == 0 {
		return OutcomeBurned
	}
	if l.stats.TotalEntered*10 < l.stats.TotalSold*3 {
		return OutcomeBurned
	}
	if l.stats.TotalVoted > 0 && l.stats.PositiveVotes*2 <= l.stats.TotalVoted {
		return OutcomeBurned
	}
	return OutcomeWithdrawn
}

func (l *Ledger) audit(operation string, tokenID int64, actor string, amount decimal.Decimal) models.AuditEntry {
	return models.AuditEntry{
		EventID:   l.params.ID,
		Operation: operation,
		TokenID:   tokenID,
		Actor:     actor,
		Amount:    amount,
		CreatedAt: l.clock.Now(),
	}
}

// Params returns the write-once event parameters.
func (l *Ledger) Params() models.EventParams {
	return l.params
}

// Ticket returns the current record for tokenID.
func (l *Ledger) Ticket(tokenID int64) (models.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[tokenID]
	if !ok {
		return models.Ticket{}, &TicketNotFoundError{TokenID: tokenID}
	}

	return *ticket, nil
}

// OwnerOf returns the holder of tokenID; refunded tickets belong to the
// ledger sentinel, never to a null owner.
func (l *Ledger) OwnerOf(tokenID int64) (string, error) {
	ticket, err := l.Ticket(tokenID)
	if err != nil {
		return "", err
	}

	return ticket.Owner, nil
}

// BalanceOf returns the number of active and burned tickets held by addr.
func (l *Ledger) BalanceOf(addr string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[addr]
}

// Stats returns a copy of the current counters.
func (l *Ledger) Stats() models.LedgerStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.stats
}

// Escrow returns the balance currently held for this event.
func (l *Ledger) Escrow() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.escrow
}

// ResalePoolSize returns the number of tickets awaiting resale.
func (l *Ledger) ResalePoolSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.pool)
}
