// Package history records applied crafts so past sessions can be reviewed.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PoE2Craft_Go/internal/crafting"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// Entry is one applied currency, successful or not
type Entry struct {
	ID         uuid.UUID    `json:"id"`
	Currency   string       `json:"currency"`
	Omens      []string     `json:"omens"`
	Seed       *uint64      `json:"seed,omitempty"`
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	ItemBefore *domain.Item `json:"item_before"`
	ItemAfter  *domain.Item `json:"item_after,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Repository persists history entries
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Recorder accepts entries from the request path. Implementations must not
// block the caller on storage.
type Recorder interface {
	Record(ctx context.Context, e *Entry)
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close()
}

// NewEntry builds an entry for an apply request and its result
func NewEntry(req crafting.ApplyRequest, result *domain.CraftResult) *Entry {
	omens := req.Omens
	if omens == nil {
		omens = []string{}
	}
	return &Entry{
		ID:         uuid.New(),
		Currency:   req.Currency,
		Omens:      omens,
		Seed:       req.Seed,
		Success:    result.Success,
		Message:    result.Message,
		ItemBefore: req.Item,
		ItemAfter:  result.ResultItem,
		CreatedAt:  time.Now().UTC(),
	}
}

// ClampLimit bounds a requested page size
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}

// NopRecorder discards entries. It is used when no database is configured.
type NopRecorder struct{}

// Record does nothing
func (NopRecorder) Record(context.Context, *Entry) {}

// Recent always returns an empty list
func (NopRecorder) Recent(context.Context, int) ([]Entry, error) { return []Entry{}, nil }

// Close does nothing
func (NopRecorder) Close() {}
