package history

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PoE2Craft_Go/internal/crafting"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/testing/leaktest"
)

// memoryRepo is an in-memory Repository
type memoryRepo struct {
	mu      sync.Mutex
	entries []Entry
	err     error
	limits  []int
}

func (r *memoryRepo) Insert(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memoryRepo) Recent(_ context.Context, limit int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limits = append(r.limits, limit)
	return append([]Entry(nil), r.entries...), nil
}

func testItem() *domain.Item {
	return &domain.Item{BaseName: "Ring", Category: "ring", Rarity: domain.RarityNormal, ItemLevel: 10}
}

func TestNewEntry(t *testing.T) {
	seed := uint64(5)
	out := testItem()
	out.Rarity = domain.RarityMagic
	req := crafting.ApplyRequest{Item: testItem(), Currency: "Orb of Transmutation", Seed: &seed}

	e := NewEntry(req, domain.Succeeded("Upgraded to Magic", out))

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "Orb of Transmutation", e.Currency)
	assert.Equal(t, []string{}, e.Omens, "nil omens are stored as an empty list")
	assert.Same(t, &seed, e.Seed)
	assert.True(t, e.Success)
	assert.Equal(t, domain.RarityMagic, e.ItemAfter.Rarity)
	assert.False(t, e.CreatedAt.IsZero())

	failed := NewEntry(crafting.ApplyRequest{Item: testItem(), Currency: "Regal Orb", Omens: []string{"Omen of Homogenising Coronation"}},
		domain.Failure("Regal Orb requires a Magic item"))
	assert.False(t, failed.Success)
	assert.Nil(t, failed.ItemAfter)
	assert.Equal(t, []string{"Omen of Homogenising Coronation"}, failed.Omens)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultRecentLimit},
		{-3, DefaultRecentLimit},
		{5, 5},
		{MaxRecentLimit, MaxRecentLimit},
		{MaxRecentLimit + 1, MaxRecentLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "limit %d", tt.in)
	}
}

func TestAsyncRecorder_WritesOnClose(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	repo := &memoryRepo{}
	rec := NewAsyncRecorder(repo, AsyncConfig{Workers: 2, QueueSize: 16})

	for i := 0; i < 10; i++ {
		rec.Record(context.Background(), NewEntry(crafting.ApplyRequest{Item: testItem(), Currency: "Chaos Orb"}, domain.Failure("no")))
	}
	rec.Close()

	assert.Len(t, repo.entries, 10)
}

func TestAsyncRecorder_RecentClampsLimit(t *testing.T) {
	repo := &memoryRepo{}
	rec := NewAsyncRecorder(repo, AsyncConfig{})
	defer rec.Close()

	_, err := rec.Recent(context.Background(), 10_000)
	require.NoError(t, err)
	_, err = rec.Recent(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{MaxRecentLimit, DefaultRecentLimit}, repo.limits)
}

func TestAsyncRecorder_WriteErrorsDoNotReachCaller(t *testing.T) {
	repo := &memoryRepo{err: errors.New("connection refused")}
	rec := NewAsyncRecorder(repo, AsyncConfig{Workers: 1})

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), NewEntry(crafting.ApplyRequest{Item: testItem(), Currency: "Chaos Orb"}, domain.Failure("no")))
		rec.Close()
	})
	assert.Equal(t, int64(1), rec.pool.Failed())
}

func TestAsyncRecorder_RecordAfterCloseIsDropped(t *testing.T) {
	repo := &memoryRepo{}
	rec := NewAsyncRecorder(repo, AsyncConfig{})
	rec.Close()

	rec.Record(context.Background(), NewEntry(crafting.ApplyRequest{Item: testItem(), Currency: "Chaos Orb"}, domain.Failure("no")))

	assert.Empty(t, repo.entries)
}

func TestNopRecorder(t *testing.T) {
	var rec Recorder = NopRecorder{}
	rec.Record(context.Background(), &Entry{})
	entries, err := rec.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
	rec.Close()
}
