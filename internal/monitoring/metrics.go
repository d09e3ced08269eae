package monitoring

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	ledgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketledger_operations_total",
			Help: "Total ledger operations by outcome",
		},
		[]string{"operation", "status"},
	)

	ticketsSold = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ticketledger_tickets_sold",
			Help: "Tickets currently sold (active or burned) per event",
		},
		[]string{"event_id"},
	)

	escrowBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ticketledger_escrow_balance",
			Help: "Escrowed balance per event",
		},
		[]string{"event_id"},
	)

	eventsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketledger_events_registered_total",
			Help: "Total events created through the registry",
		},
	)
)

// TrackOperation counts one ledger operation and its outcome.
func TrackOperation(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ledgerOperations.WithLabelValues(operation, status).Inc()
}

// TrackEventCreated counts a newly registered event.
func TrackEventCreated() {
	eventsRegistered.Inc()
}

// SetTicketsSold updates the sold-tickets gauge for one event.
func SetTicketsSold(eventID int, sold int64) {
	ticketsSold.WithLabelValues(strconv.Itoa(eventID)).Set(float64(sold))
}

// SetEscrow updates the escrow gauge for one event.
func SetEscrow(eventID int, amount decimal.Decimal) {
	escrowBalance.WithLabelValues(strconv.Itoa(eventID)).Set(amount.InexactFloat64())
}
