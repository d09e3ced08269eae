package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"ticketledger/internal/ledger"
	"ticketledger/internal/models"
	"ticketledger/internal/monitoring"

	"github.com/shopspring/decimal"
)

var ErrEventNotFound = errors.New("event not found")

// Storage is the durable backing shared by the registry and every ledger it
// creates.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	ledger.Store
	CreateEvent(params models.EventParams) (int, error)
	LoadSnapshots() ([]ledger.Snapshot, error)
}

// Registry creates and indexes event ledgers. Each ledger serializes its own
// operations; the registry lock only guards the index.
type Registry struct {
	mu      sync.RWMutex
	log     *slog.Logger
	clock   ledger.Clock
	storage Storage
	ledgers map[int]*ledger.Ledger
}

func New(storage Storage, clock ledger.Clock, log *slog.Logger) *Registry {
	return &Registry{
		log:     log,
		clock:   clock,
		storage: storage,
		ledgers: make(map[int]*ledger.Ledger),
	}
}

// Restore rebuilds every persisted ledger. Called once at startup, before the
// registry serves any request.
func (r *Registry) Restore() error {
	snapshots, err := r.storage.LoadSnapshots()
	if err != nil {
		return fmt.Errorf("failed to restore ledgers: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, snap := range snapshots {
		l := ledger.FromSnapshot(snap, r.clock, r.storage, r.log)
		r.ledgers[snap.Params.ID] = l

		monitoring.SetTicketsSold(snap.Params.ID, snap.Stats.TotalSold)
		monitoring.SetEscrow(snap.Params.ID, snap.Escrow)
	}

	r.log.Info("ledgers restored", slog.Int("count", len(snapshots)))

	return nil
}

// CreateEvent registers a new event and returns its id. Parameters are
// write-once: there is no update path.
func (r *Registry) CreateEvent(params models.EventParams) (int, error) {
	if params.MaxSupply <= 0 {
		return 0, fmt.Errorf("max supply must be positive")
	}
	if params.TicketPrice.IsNegative() {
		return 0, fmt.Errorf("ticket price must not be negative")
	}
	if params.EntryDuration <= 0 {
		return 0, fmt.Errorf("entry duration must be positive")
	}
	if params.Organizer == "" || params.Organizer == models.LedgerOwner {
		return 0, fmt.Errorf("invalid organizer address")
	}

	id, err := r.storage.CreateEvent(params)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	params.ID = id

	r.mu.Lock()
	r.ledgers[id] = ledger.New(params, r.clock, r.storage, r.log)
	r.mu.Unlock()

	monitoring.TrackEventCreated()

	r.log.Info("event created",
		slog.Int("event_id", id),
		slog.String("name", params.Name),
		slog.String("organizer", params.Organizer),
	)

	return id, nil
}

// GetAllEvents lists every registered event, oldest first.
func (r *Registry) GetAllEvents() ([]models.EventParams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]models.EventParams, 0, len(r.ledgers))
	for _, l := range r.ledgers {
		events = append(events, l.Params())
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })

	return events, nil
}

// GetOrganizerEvents lists the events created by one organizer.
func (r *Registry) GetOrganizerEvents(organizer string) ([]models.EventParams, error) {
	all, err := r.GetAllEvents()
	if err != nil {
		return nil, err
	}

	events := make([]models.EventParams, 0)
	for _, params := range all {
		if params.Organizer == organizer {
			events = append(events, params)
		}
	}

	return events, nil
}

func (r *Registry) lookup(eventID int) (*ledger.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.ledgers[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}

	return l, nil
}

// MintTicket sells one ticket on the event's ledger.
func (r *Registry) MintTicket(eventID int, buyer string, payment decimal.Decimal) (int64, error) {
	l, err := r.lookup(eventID)
	if err != nil {
		return 0, err
	}

	tokenID, err := l.MintTicket(buyer, payment)
	monitoring.TrackOperation("mint", err)
	if err != nil {
		return 0, err
	}

	monitoring.SetTicketsSold(eventID, l.Stats().TotalSold)
	monitoring.SetEscrow(eventID, l.Escrow())

	return tokenID, nil
}

// RequestRefund returns a ticket to the event's resale pool.
func (r *Registry) RequestRefund(eventID int, tokenID int64, caller string) error {
	l, err := r.lookup(eventID)
	if err != nil {
		return err
	}

	err = l.RequestRefund(tokenID, caller)
	monitoring.TrackOperation("refund", err)
	if err != nil {
		return err
	}

	monitoring.SetTicketsSold(eventID, l.Stats().TotalSold)
	monitoring.SetEscrow(eventID, l.Escrow())

	return nil
}

// ScanTicket burns a ticket at the gate.
func (r *Registry) ScanTicket(eventID int, tokenID int64, operator string) error {
	l, err := r.lookup(eventID)
	if err != nil {
		return err
	}

	err = l.ScanTicket(tokenID, operator)
	monitoring.TrackOperation("scan", err)

	return err
}

// Vote records an attendee's verdict.
func (r *Registry) Vote(eventID int, tokenID int64, caller string, isPositive bool) error {
	l, err := r.lookup(eventID)
	if err != nil {
		return err
	}

	err = l.Vote(tokenID, caller, isPositive)
	monitoring.TrackOperation("vote", err)

	return err
}

// WithdrawFunds settles the event's escrow.
func (r *Registry) WithdrawFunds(eventID int, caller string) (ledger.SettlementResult, error) {
	l, err := r.lookup(eventID)
	if err != nil {
		return ledger.SettlementResult{}, err
	}

	result, err := l.WithdrawFunds(caller)
	monitoring.TrackOperation("settle", err)
	if err != nil {
		return ledger.SettlementResult{}, err
	}

	monitoring.SetEscrow(eventID, decimal.Zero)

	return result, nil
}

// EventInfo returns the parameters and current counters of one event.
func (r *Registry) EventInfo(eventID int) (models.EventParams, models.LedgerStats, error) {
	l, err := r.lookup(eventID)
	if err != nil {
		return models.EventParams{}, models.LedgerStats{}, err
	}

	return l.Params(), l.Stats(), nil
}

// TicketInfo returns the current record of one ticket.
func (r *Registry) TicketInfo(eventID int, tokenID int64) (models.Ticket, error) {
	l, err := r.lookup(eventID)
	if err != nil {
		return models.Ticket{}, err
	}

	return l.Ticket(tokenID)
}

// BalanceOf returns the holder's ticket count on one event.
func (r *Registry) BalanceOf(eventID int, holder string) (int64, error) {
	l, err := r.lookup(eventID)
	if err != nil {
		return 0, err
	}

	return l.BalanceOf(holder), nil
}
