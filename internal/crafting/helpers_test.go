package crafting

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

const shippedDataDir = "../../configs/data"

var (
	shippedOnce sync.Once
	shipped     *catalog.Catalog
	shippedErr  error
)

// shippedCatalog loads configs/data once per test binary; the catalog is read-only
func shippedCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	shippedOnce.Do(func() {
		shipped, shippedErr = catalog.NewLoader("").Load(context.Background(), shippedDataDir)
	})
	require.NoError(t, shippedErr)
	return shipped
}

func newEngine(t testing.TB) Service {
	t.Helper()
	svc, err := NewService(shippedCatalog(t), Config{})
	require.NoError(t, err)
	return svc
}

func newRegistry(t testing.TB) *Registry {
	t.Helper()
	reg, err := NewRegistry(shippedCatalog(t))
	require.NoError(t, err)
	return reg
}

func seeded(t testing.TB, v uint64) *Roll {
	t.Helper()
	cat := shippedCatalog(t)
	return &Roll{Pool: cat.Pool, Exclusions: cat.Exclusions, Rand: rng.NewSeeded(v)}
}

func seed(v uint64) *uint64 { return &v }

// mod builds an instance of a catalog modifier
func mod(t testing.TB, name string, value int) domain.ItemModifier {
	t.Helper()
	def := shippedCatalog(t).Pool.FindModByName(name)
	require.NotNil(t, def, "catalog modifier %q", name)
	return domain.NewItemModifier(def, value)
}

func newItem(category string, rarity domain.Rarity, ilvl int, mods ...domain.ItemModifier) *domain.Item {
	item := &domain.Item{BaseName: "Test " + category, Category: category, Rarity: rarity, ItemLevel: ilvl}
	for _, m := range mods {
		item.AddMod(m)
	}
	return item
}

// fullRareBodyArmour is a Rare with three prefixes and three suffixes
func fullRareBodyArmour(t testing.TB) *domain.Item {
	return newItem("body_armour", domain.RarityRare, 70,
		mod(t, "Stalwart", 60),
		mod(t, "Ribbed", 50),
		mod(t, "Glittering", 30),
		mod(t, "of the Drake", 18),
		mod(t, "of the Penguin", 17),
		mod(t, "of the Storm", 19),
	)
}

func currency(t testing.TB, reg *Registry, name string) *Currency {
	t.Helper()
	c, ok := reg.Currency(name)
	require.True(t, ok, "currency %q", name)
	return c
}

func omens(t testing.TB, reg *Registry, names ...string) []domain.OmenDef {
	t.Helper()
	out := make([]domain.OmenDef, 0, len(names))
	for _, n := range names {
		o, ok := reg.Omen(n)
		require.True(t, ok, "omen %q", n)
		out = append(out, o)
	}
	return out
}

// requireItemInvariants checks caps, groups and value ranges on a result item
func requireItemInvariants(t testing.TB, item *domain.Item) {
	t.Helper()
	require.NoError(t, item.Validate())
	require.LessOrEqual(t, item.ExplicitCount(), item.Rarity.MaxExplicitMods())
	for _, m := range item.AllMods() {
		require.True(t, m.InRange(), "%s value %d outside [%d, %d]", m.Name, m.Value, m.Min, m.Max)
	}
}

func names(mods []domain.ItemModifier) []string {
	out := make([]string, len(mods))
	for i := range mods {
		out[i] = mods[i].Name
	}
	return out
}
