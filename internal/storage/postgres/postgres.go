package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"ticketledger/internal/config"
	"ticketledger/internal/ledger"
	"ticketledger/internal/models"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return s, nil
}

func (s *Storage) ensureSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			organizer TEXT NOT NULL,
			max_supply BIGINT NOT NULL,
			ticket_price NUMERIC(20, 8) NOT NULL,
			event_start TIMESTAMPTZ NOT NULL,
			entry_duration_sec BIGINT NOT NULL,
			escrow NUMERIC(20, 8) NOT NULL DEFAULT 0,
			total_minted BIGINT NOT NULL DEFAULT 0,
			total_sold BIGINT NOT NULL DEFAULT 0,
			total_entered BIGINT NOT NULL DEFAULT 0,
			total_voted BIGINT NOT NULL DEFAULT 0,
			positive_votes BIGINT NOT NULL DEFAULT 0,
			funds_withdrawn BOOLEAN NOT NULL DEFAULT false,
			settlement_outcome TEXT,
			settlement_amount NUMERIC(20, 8),
			settlement_recipient TEXT,
			settled_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS tickets (
			event_id INT NOT NULL REFERENCES events (id),
			token_id BIGINT NOT NULL,
			owner TEXT NOT NULL,
			status TEXT NOT NULL,
			has_voted BOOLEAN NOT NULL DEFAULT false,
			PRIMARY KEY (event_id, token_id)
		)`,
		`CREATE TABLE IF NOT EXISTS resale_pool (
			position BIGSERIAL,
			event_id INT NOT NULL REFERENCES events (id),
			token_id BIGINT NOT NULL,
			PRIMARY KEY (event_id, token_id)
		)`,
		`CREATE TABLE IF NOT EXISTS holder_balances (
			event_id INT NOT NULL REFERENCES events (id),
			holder TEXT NOT NULL,
			held BIGINT NOT NULL,
			PRIMARY KEY (event_id, holder)
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id BIGSERIAL PRIMARY KEY,
			event_id INT NOT NULL,
			operation TEXT NOT NULL,
			token_id BIGINT NOT NULL DEFAULT 0,
			actor TEXT NOT NULL,
			amount NUMERIC(20, 8) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range schema {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping() error {
	return s.DB.Ping()
}

// CreateEvent persists the write-once parameters of a new event and returns
// its assigned id.
func (s *Storage) CreateEvent(params models.EventParams) (int, error) {
	query := `
		INSERT INTO events (name, description, organizer, max_supply, ticket_price, event_start, entry_duration_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		params.Name,
		params.Description,
		params.Organizer,
		params.MaxSupply,
		params.TicketPrice,
		params.EventStart,
		int64(params.EntryDuration/time.Second),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

// Apply commits one ledger change in a single transaction. A failed write is
// rolled back wholesale, so durable state always matches a committed operation.
func (s *Storage) Apply(change ledger.Change) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if change.Ticket.TokenID != 0 {
		upsertQuery := `
			INSERT INTO tickets (event_id, token_id, owner, status, has_voted)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (event_id, token_id)
			DO UPDATE SET owner = $3, status = $4, has_voted = $5`

		_, err = tx.Exec(upsertQuery,
			change.EventID,
			change.Ticket.TokenID,
			change.Ticket.Owner,
			string(change.Ticket.Status),
			change.Ticket.HasVoted,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert ticket: %w", err)
		}
	}

	if change.PoolPush {
		_, err = tx.Exec(`INSERT INTO resale_pool (event_id, token_id) VALUES ($1, $2)`,
			change.EventID, change.Ticket.TokenID)
		if err != nil {
			return fmt.Errorf("failed to push resale pool: %w", err)
		}
	}

	if change.PoolPop {
		_, err = tx.Exec(`DELETE FROM resale_pool WHERE event_id = $1 AND token_id = $2`,
			change.EventID, change.Ticket.TokenID)
		if err != nil {
			return fmt.Errorf("failed to pop resale pool: %w", err)
		}
	}

	if change.HolderDelta != 0 {
		balanceQuery := `
			INSERT INTO holder_balances (event_id, holder, held)
			VALUES ($1, $2, $3)
			ON CONFLICT (event_id, holder)
			DO UPDATE SET held = holder_balances.held + $3`

		_, err = tx.Exec(balanceQuery, change.EventID, change.HolderAddr, change.HolderDelta)
		if err != nil {
			return fmt.Errorf("failed to update holder balance: %w", err)
		}
	}

	statsQuery := `
		UPDATE events
		SET escrow = $2,
		    total_minted = $3,
		    total_sold = $4,
		    total_entered = $5,
		    total_voted = $6,
		    positive_votes = $7,
		    funds_withdrawn = $8
		WHERE id = $1`

	_, err = tx.Exec(statsQuery,
		change.EventID,
		change.Escrow,
		change.Stats.TotalMinted,
		change.Stats.TotalSold,
		change.Stats.TotalEntered,
		change.Stats.TotalVoted,
		change.Stats.PositiveVotes,
		change.Stats.FundsWithdrawn,
	)
	if err != nil {
		return fmt.Errorf("failed to update event stats: %w", err)
	}

	if change.Settlement != nil {
		settlementQuery := `
			UPDATE events
			SET settlement_outcome = $2,
			    settlement_amount = $3,
			    settlement_recipient = $4,
			    settled_at = $5
			WHERE id = $1`

		_, err = tx.Exec(settlementQuery,
			change.EventID,
			string(change.Settlement.Outcome),
			change.Settlement.Amount,
			change.Settlement.Recipient,
			change.Audit.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to record settlement: %w", err)
		}
	}

	auditQuery := `
		INSERT INTO audit_log (event_id, operation, token_id, actor, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.Exec(auditQuery,
		change.Audit.EventID,
		change.Audit.Operation,
		change.Audit.TokenID,
		change.Audit.Actor,
		change.Audit.Amount,
		change.Audit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}

	return tx.Commit()
}

// LoadSnapshots reads every persisted ledger back into memory form. Called
// once at startup so the registry can rebuild its ledgers.
func (s *Storage) LoadSnapshots() ([]ledger.Snapshot, error) {
	eventsQuery := `
		SELECT id, name, description, organizer, max_supply, ticket_price, event_start, entry_duration_sec,
		       escrow, total_minted, total_sold, total_entered, total_voted, positive_votes, funds_withdrawn
		FROM events
		ORDER BY id ASC`

	rows, err := s.DB.Query(eventsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	defer rows.Close()

	var snapshots []ledger.Snapshot
	for rows.Next() {
		var snap ledger.Snapshot
		var entrySec int64

		err = rows.Scan(
			&snap.Params.ID,
			&snap.Params.Name,
			&snap.Params.Description,
			&snap.Params.Organizer,
			&snap.Params.MaxSupply,
			&snap.Params.TicketPrice,
			&snap.Params.EventStart,
			&entrySec,
			&snap.Escrow,
			&snap.Stats.TotalMinted,
			&snap.Stats.TotalSold,
			&snap.Stats.TotalEntered,
			&snap.Stats.TotalVoted,
			&snap.Stats.PositiveVotes,
			&snap.Stats.FundsWithdrawn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		snap.Params.EntryDuration = time.Duration(entrySec) * time.Second

		snapshots = append(snapshots, snap)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	for i := range snapshots {
		if err = s.loadLedgerState(&snapshots[i]); err != nil {
			return nil, err
		}
	}

	return snapshots, nil
}

func (s *Storage) loadLedgerState(snap *ledger.Snapshot) error {
	eventID := snap.Params.ID

	ticketRows, err := s.DB.Query(
		`SELECT token_id, owner, status, has_voted FROM tickets WHERE event_id = $1 ORDER BY token_id ASC`,
		eventID)
	if err != nil {
		return fmt.Errorf("failed to load tickets: %w", err)
	}
	defer ticketRows.Close()

	for ticketRows.Next() {
		ticket := models.Ticket{EventID: eventID}
		var status string

		if err = ticketRows.Scan(&ticket.TokenID, &ticket.Owner, &status, &ticket.HasVoted); err != nil {
			return fmt.Errorf("failed to scan ticket: %w", err)
		}
		ticket.Status = models.TicketStatus(status)

		snap.Tickets = append(snap.Tickets, ticket)
	}
	if err = ticketRows.Err(); err != nil {
		return fmt.Errorf("error iterating tickets: %w", err)
	}

	poolRows, err := s.DB.Query(
		`SELECT token_id FROM resale_pool WHERE event_id = $1 ORDER BY position ASC`,
		eventID)
	if err != nil {
		return fmt.Errorf("failed to load resale pool: %w", err)
	}
	defer poolRows.Close()

	for poolRows.Next() {
		var tokenID int64
		if err = poolRows.Scan(&tokenID); err != nil {
			return fmt.Errorf("failed to scan resale pool entry: %w", err)
		}
		snap.Pool = append(snap.Pool, tokenID)
	}
	if err = poolRows.Err(); err != nil {
		return fmt.Errorf("error iterating resale pool: %w", err)
	}

	balanceRows, err := s.DB.Query(
		`SELECT holder, held FROM holder_balances WHERE event_id = $1`,
		eventID)
	if err != nil {
		return fmt.Errorf("failed to load holder balances: %w", err)
	}
	defer balanceRows.Close()

	snap.Balances = make(map[string]int64)
	for balanceRows.Next() {
		var holder string
		var held int64
		if err = balanceRows.Scan(&holder, &held); err != nil {
			return fmt.Errorf("failed to scan holder balance: %w", err)
		}
		snap.Balances[holder] = held
	}
	if err = balanceRows.Err(); err != nil {
		return fmt.Errorf("error iterating holder balances: %w", err)
	}

	return nil
}

// AuditTrail returns the append-only log of one event, oldest first.
func (s *Storage) AuditTrail(eventID int) ([]models.AuditEntry, error) {
	query := `
		SELECT id, event_id, operation, token_id, actor, amount, created_at
		FROM audit_log
		WHERE event_id = $1
		ORDER BY id ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		err = rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.Operation,
			&entry.TokenID,
			&entry.Actor,
			&entry.Amount,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit trail: %w", err)
	}

	return entries, nil
}
