package postgres

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/PoE2Craft_Go/internal/database"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/history"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (*pgxpool.Pool, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}
	pool, err := database.NewPool(ctx, database.PoolConfig{URL: connStr, MaxConns: 4})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}
	if _, err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func sampleItem() *domain.Item {
	return &domain.Item{
		BaseName:  "Garment",
		Category:  "body_armour",
		Rarity:    domain.RarityMagic,
		ItemLevel: 60,
		Prefixes: []domain.ItemModifier{{
			Modifier: domain.Modifier{Name: "Stalwart", Type: domain.ModTypePrefix, Tier: 2, StatText: "+{} to maximum Life", Min: 50, Max: 69, Group: "life"},
			Value:    55,
		}},
	}
}

func TestHistoryRepository_Integration(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	repo := NewHistoryRepository(testPool)

	_, err := testPool.Exec(ctx, "TRUNCATE craft_history")
	require.NoError(t, err)

	bigSeed := uint64(math.MaxUint64 - 7)
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	failed := &history.Entry{
		ID:         uuid.New(),
		Currency:   "Regal Orb",
		Omens:      []string{},
		Success:    false,
		Message:    "Regal Orb requires a Magic item",
		ItemBefore: sampleItem(),
		CreatedAt:  base,
	}
	after := sampleItem()
	after.Rarity = domain.RarityRare
	succeeded := &history.Entry{
		ID:         uuid.New(),
		Currency:   "Exalted Orb",
		Omens:      []string{"Omen of Sinistral Exaltation"},
		Seed:       &bigSeed,
		Success:    true,
		Message:    "Added a modifier",
		ItemBefore: sampleItem(),
		ItemAfter:  after,
		CreatedAt:  base.Add(time.Minute),
	}

	require.NoError(t, repo.Insert(ctx, failed))
	require.NoError(t, repo.Insert(ctx, succeeded))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	newest := entries[0]
	assert.Equal(t, succeeded.ID, newest.ID)
	assert.Equal(t, succeeded.Omens, newest.Omens)
	require.NotNil(t, newest.Seed)
	assert.Equal(t, bigSeed, *newest.Seed, "seeds above MaxInt64 survive the round trip")
	assert.Equal(t, domain.RarityRare, newest.ItemAfter.Rarity)
	assert.Equal(t, 55, newest.ItemBefore.Prefixes[0].Value)
	assert.True(t, newest.CreatedAt.Equal(succeeded.CreatedAt))

	oldest := entries[1]
	assert.False(t, oldest.Success)
	assert.Nil(t, oldest.Seed)
	assert.Nil(t, oldest.ItemAfter)
	assert.Empty(t, oldest.Omens)

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSeedConversion(t *testing.T) {
	for _, v := range []uint64{0, 1, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64} {
		got := seedFromDB(seedToDB(&v))
		require.NotNil(t, got)
		assert.Equal(t, v, *got)
	}
	assert.Nil(t, seedToDB(nil))
	assert.Nil(t, seedFromDB(nil))
}
