package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/store"
)

const (
	kindUser   = "user"
	kindTicket = "ticket"
)

// SnapshotStore persists full store snapshots into Postgres. Entities are
// stored as JSONB documents keyed by (kind, id); sequence positions live in
// their own table so identifier allocation survives restarts and deleted IDs
// are never reissued.
type SnapshotStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewSnapshotStore returns a store bound to the pool. A nil pool disables
// durability; Save becomes a no-op and Load reports no prior state.
func NewSnapshotStore(pool *pgxpool.Pool, logger *zap.Logger) *SnapshotStore {
	return &SnapshotStore{pool: pool, logger: logger}
}

// Save replaces the persisted state with snap inside one transaction.
func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	if s.pool == nil {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("clear entities: %w", err)
	}

	for i := range snap.Users {
		doc, err := json.Marshal(&snap.Users[i])
		if err != nil {
			return fmt.Errorf("encode user %d: %w", snap.Users[i].ID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO entities (kind, id, doc) VALUES ($1, $2, $3)`,
			kindUser, snap.Users[i].ID, doc,
		); err != nil {
			return fmt.Errorf("persist user %d: %w", snap.Users[i].ID, err)
		}
	}
	for i := range snap.Tickets {
		doc, err := json.Marshal(&snap.Tickets[i])
		if err != nil {
			return fmt.Errorf("encode ticket %d: %w", snap.Tickets[i].ID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO entities (kind, id, doc) VALUES ($1, $2, $3)`,
			kindTicket, snap.Tickets[i].ID, doc,
		); err != nil {
			return fmt.Errorf("persist ticket %d: %w", snap.Tickets[i].ID, err)
		}
	}

	const seqQuery = `
        INSERT INTO sequences (kind, value) VALUES ($1, $2)
        ON CONFLICT (kind) DO UPDATE SET value = EXCLUDED.value`
	if _, err := tx.Exec(ctx, seqQuery, kindUser, snap.UserSeq); err != nil {
		return fmt.Errorf("persist user sequence: %w", err)
	}
	if _, err := tx.Exec(ctx, seqQuery, kindTicket, snap.TicketSeq); err != nil {
		return fmt.Errorf("persist ticket sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted state. It returns nil when no pool is configured,
// so callers fall back to an empty store.
func (s *SnapshotStore) Load(ctx context.Context) (*store.Snapshot, error) {
	if s.pool == nil {
		return nil, nil
	}

	snap := &store.Snapshot{}

	rows, err := s.pool.Query(ctx, `SELECT doc FROM entities WHERE kind=$1 ORDER BY id`, kindUser)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var user domain.User
		if err := json.Unmarshal(doc, &user); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		snap.Users = append(snap.Users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT doc FROM entities WHERE kind=$1 ORDER BY id`, kindTicket)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var ticket domain.Ticket
		if err := json.Unmarshal(doc, &ticket); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		snap.Tickets = append(snap.Tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	seqRows, err := s.pool.Query(ctx, `SELECT kind, value FROM sequences`)
	if err != nil {
		return nil, fmt.Errorf("load sequences: %w", err)
	}
	defer seqRows.Close()
	for seqRows.Next() {
		var kind string
		var value uint64
		if err := seqRows.Scan(&kind, &value); err != nil {
			return nil, err
		}
		switch kind {
		case kindUser:
			snap.UserSeq = value
		case kindTicket:
			snap.TicketSeq = value
		}
	}
	if err := seqRows.Err(); err != nil {
		return nil, err
	}

	s.logger.Info("snapshot loaded",
		zap.Int("users", len(snap.Users)),
		zap.Int("tickets", len(snap.Tickets)))
	return snap, nil
}
