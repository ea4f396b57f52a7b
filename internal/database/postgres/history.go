package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/history"
)

// HistoryRepository implements history.Repository for PostgreSQL
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert stores one entry
func (r *HistoryRepository) Insert(ctx context.Context, e *history.Entry) error {
	before, err := json.Marshal(e.ItemBefore)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeItem, err)
	}
	var after []byte
	if e.ItemAfter != nil {
		if after, err = json.Marshal(e.ItemAfter); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgEncodeItem, err)
		}
	}

	_, err = r.db.Exec(ctx, insertHistorySQL,
		e.ID, e.Currency, e.Omens, seedToDB(e.Seed), e.Success, e.Message, before, after, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertHistory, err)
	}
	return nil
}

// Recent returns the newest entries first
func (r *HistoryRepository) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	rows, err := r.db.Query(ctx, recentHistorySQL, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryHistory, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (history.Entry, error) {
	var (
		e      history.Entry
		seed   *int64
		before []byte
		after  []byte
	)
	if err := row.Scan(&e.ID, &e.Currency, &e.Omens, &seed, &e.Success, &e.Message, &before, &after, &e.CreatedAt); err != nil {
		return e, fmt.Errorf("%s: %w", ErrMsgScanHistory, err)
	}
	e.Seed = seedFromDB(seed)

	e.ItemBefore = &domain.Item{}
	if err := json.Unmarshal(before, e.ItemBefore); err != nil {
		return e, fmt.Errorf("%s: %w", ErrMsgDecodeItem, err)
	}
	if len(after) > 0 {
		e.ItemAfter = &domain.Item{}
		if err := json.Unmarshal(after, e.ItemAfter); err != nil {
			return e, fmt.Errorf("%s: %w", ErrMsgDecodeItem, err)
		}
	}
	return e, nil
}

// Seeds are unsigned; BIGINT keeps the same 64 bits
func seedToDB(seed *uint64) *int64 {
	if seed == nil {
		return nil
	}
	v := int64(*seed) //nolint:gosec // bit-preserving conversion
	return &v
}

func seedFromDB(seed *int64) *uint64 {
	if seed == nil {
		return nil
	}
	v := uint64(*seed) //nolint:gosec // bit-preserving conversion
	return &v
}
