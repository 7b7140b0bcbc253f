package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelbooker/internal/domain"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Store is a keyed record store for a single entity kind. Each kind gets
// its own table holding the id and the record as a JSONB blob; the store
// never looks inside the record.
type Store[T any] struct {
	db       *dbpg.DB
	table    string
	strategy retry.Strategy
}

func New[T any](db *dbpg.DB, table string) *Store[T] {
	return &Store[T]{
		db:    db,
		table: table,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert writes the record under id. An existing record at the same id is
// overwritten: last write wins, per key.
func (s *Store[T]) Insert(ctx context.Context, id string, rec *T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, record) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record`,
		s.table,
	)
	if _, err = s.db.ExecWithRetry(ctx, s.strategy, query, id, data); err != nil {
		return fmt.Errorf("insert into %s: %w", s.table, err)
	}

	return nil
}

func (s *Store[T]) Get(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT record FROM %s WHERE id = $1`, s.table)

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get from %s: %w", s.table, err)
	}

	var data []byte
	if err = row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan record from %s: %w", s.table, err)
	}

	var rec T
	if err = json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record from %s: %w", s.table, err)
	}

	return &rec, nil
}

// List returns every stored record. Callers must not depend on the order.
func (s *Store[T]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT record FROM %s ORDER BY id`, s.table)

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	defer rows.Close()

	var res []*T
	for rows.Next() {
		var data []byte
		if err = rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan record from %s: %w", s.table, err)
		}

		var rec T
		if err = json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record from %s: %w", s.table, err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}
