package crafting

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/exclusion"
	"github.com/osse101/PoE2Craft_Go/internal/metrics"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

func TestApply_InvariantsHoldAcrossSequences(t *testing.T) {
	svc := newEngine(t)
	sequence := []string{
		"Orb of Transmutation", "Orb of Augmentation", "Regal Orb", "Exalted Orb",
		"Exalted Orb", "Greater Exalted Orb", "Chaos Orb", "Orb of Annulment",
		"Exalted Orb", "Divine Orb", "Perfect Essence of Flames", "Preserved Rib",
		"Armourer's Scrap", "Vaal Orb", "Chaos Orb",
	}

	for base := uint64(0); base < 40; base++ {
		item := newItem("body_armour", domain.RarityNormal, 82)
		for step, name := range sequence {
			result, err := svc.Apply(context.Background(), ApplyRequest{Item: item, Currency: name, Seed: seed(rng.DeriveSeed(base, step))})
			require.NoError(t, err, "%s at step %d", name, step)
			if !result.Success {
				assert.Nil(t, result.ResultItem)
				continue
			}
			out := result.ResultItem
			requireItemInvariants(t, out)
			assert.GreaterOrEqual(t, out.Rarity, item.Rarity, name)
			assert.True(t, out.Corrupted || !item.Corrupted, name)
			assert.Equal(t, item.ItemLevel, out.ItemLevel)
			item = out
		}
		assert.True(t, item.Corrupted, "the Vaal Orb step always succeeds on an uncorrupted item")
	}
}

func TestApply_DeterministicWithSeed(t *testing.T) {
	svc := newEngine(t)
	req := ApplyRequest{Item: fullRareBodyArmour(t), Currency: "Chaos Orb", Omens: []string{"Omen of Dextral Erasure"}, Seed: seed(42)}

	first, err := svc.Apply(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Apply(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApply_FailuresNeverMutateInput(t *testing.T) {
	svc := newEngine(t)
	item := fullRareBodyArmour(t)
	snapshot := item.Clone()

	requests := []ApplyRequest{
		{Item: item, Currency: "Orb of Transmutation"},
		{Item: item, Currency: "Exalted Orb"},
		{Item: item, Currency: "Mirror of Kalandra"},
		{Item: item, Currency: "Chaos Orb", Omens: []string{"Omen of Greater Exaltation"}},
		{Item: item, Currency: "Chaos Orb", Omens: []string{"Omen of Fate"}},
	}
	for _, req := range requests {
		result, err := svc.Apply(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, result.Success, req.Currency)
		assert.NotEmpty(t, result.Message)
		assert.Nil(t, result.ResultItem)
		assert.Equal(t, snapshot, item)
	}
}

func TestApply_RequestErrors(t *testing.T) {
	svc := newEngine(t)

	tests := []struct {
		name string
		req  ApplyRequest
		want string
	}{
		{"no item", ApplyRequest{Currency: "Chaos Orb"}, MsgItemRequired},
		{"unknown currency", ApplyRequest{Item: fullRareBodyArmour(t), Currency: "Mirror of Kalandra"}, `Unknown currency "Mirror of Kalandra"`},
		{"unknown omen", ApplyRequest{Item: fullRareBodyArmour(t), Currency: "Chaos Orb", Omens: []string{"Omen of Fate"}}, `Unknown omen "Omen of Fate"`},
		{"incompatible omen", ApplyRequest{Item: fullRareBodyArmour(t), Currency: "Chaos Orb", Omens: []string{"Omen of Greater Exaltation"}}, "Omen of Greater Exaltation cannot be used with Chaos Orb"},
		{"currency names are exact", ApplyRequest{Item: fullRareBodyArmour(t), Currency: "chaos orb"}, `Unknown currency "chaos orb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Apply(context.Background(), tt.req)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.want, result.Message)
		})
	}
}

func TestApply_UnknownOmenIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc := newEngine(t)
	_, err := svc.Apply(context.Background(), ApplyRequest{Item: fullRareBodyArmour(t), Currency: "Chaos Orb", Omens: []string{"Omen of Fate"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, LogMsgUnknownOmen)
	assert.Contains(t, out, LogFieldOmen+`="Omen of Fate"`)
	assert.NotContains(t, out, LogMsgOmenRejected)
}

func TestApply_CraftMetrics(t *testing.T) {
	svc := newEngine(t)

	tests := []struct {
		name      string
		simulated bool
		want      float64
	}{
		{"interactive craft is counted", false, 1},
		{"simulated craft is not counted", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.CraftApplications.WithLabelValues("Orb of Transmutation", OutcomeSuccess)
			before := testutil.ToFloat64(counter)

			result, err := svc.Apply(context.Background(), ApplyRequest{
				Item:      newItem("body_armour", domain.RarityNormal, 70),
				Currency:  "Orb of Transmutation",
				Seed:      seed(5),
				Simulated: tt.simulated,
			})
			require.NoError(t, err)
			require.True(t, result.Success, result.Message)

			assert.Equal(t, before+tt.want, testutil.ToFloat64(counter))
		})
	}
}

func TestApply_InvalidItem(t *testing.T) {
	svc := newEngine(t)
	item := fullRareBodyArmour(t)
	item.AddMod(mod(t, "of the Whelpling", 8))

	result, err := svc.Apply(context.Background(), ApplyRequest{Item: item, Currency: "Divine Orb"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Invalid item:")
}

// syntheticCatalog is a tiny catalog whose only essence names a modifier that does not exist
func syntheticCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	categories := modpool.Categories{"armour": {"helmet"}}
	pool, err := modpool.New([]domain.Modifier{
		{Name: "Hale", Type: domain.ModTypePrefix, Tier: 1, StatText: "+{} to maximum Life", Min: 10, Max: 19,
			RequiredILvl: 1, Weight: 100, Group: "life", Tags: []string{"life"}, Categories: []string{"armour"}},
	}, categories)
	require.NoError(t, err)
	excl, err := exclusion.NewService(nil, categories)
	require.NoError(t, err)

	return &catalog.Catalog{
		Version:    "test",
		Checksum:   "synthetic",
		Pool:       pool,
		Exclusions: excl,
		Currencies: []domain.CurrencyDef{{Name: "Exalted Orb", Mechanic: domain.MechanicExalted, Tier: domain.TierBasic}},
		Essences: []domain.EssenceDef{{
			Name:    "Essence of Nothing",
			Tier:    domain.TierNormal,
			Effects: []domain.EssenceEffect{{Categories: []string{"helmet"}, ModName: "Missing Modifier"}},
		}},
	}
}

func TestApply_MissingEssenceModifierIsIntegrityError(t *testing.T) {
	svc, err := NewService(syntheticCatalog(t), Config{})
	require.NoError(t, err)

	result, err := svc.Apply(context.Background(), ApplyRequest{
		Item:     newItem("helmet", domain.RarityMagic, 10),
		Currency: "Essence of Nothing",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogIntegrity))
	assert.Contains(t, err.Error(), "Missing Modifier")
}

func TestNewRegistry_Errors(t *testing.T) {
	t.Run("unknown mechanic", func(t *testing.T) {
		cat := syntheticCatalog(t)
		cat.Currencies = append(cat.Currencies, domain.CurrencyDef{Name: "Mirror of Kalandra", Mechanic: "mirror"})
		_, err := NewRegistry(cat)
		assert.ErrorIs(t, err, domain.ErrUnknownMechanic)
	})

	t.Run("omen effect the currency ignores", func(t *testing.T) {
		cat := syntheticCatalog(t)
		cat.Omens = []domain.OmenDef{{Name: "Omen of Whittling", Currencies: []string{"Exalted Orb"}, Effects: []domain.OmenEffect{domain.EffectWhittle}}}
		_, err := NewRegistry(cat)
		assert.ErrorIs(t, err, domain.ErrCatalogIntegrity)
	})

	t.Run("duplicate name across currencies and essences", func(t *testing.T) {
		cat := syntheticCatalog(t)
		cat.Essences[0].Name = "Exalted Orb"
		_, err := NewRegistry(cat)
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("quality currency without steps", func(t *testing.T) {
		cat := syntheticCatalog(t)
		cat.Currencies = append(cat.Currencies, domain.CurrencyDef{Name: "Armourer's Scrap", Mechanic: domain.MechanicQuality})
		_, err := NewRegistry(cat)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestVerifyOutput(t *testing.T) {
	before := fullRareBodyArmour(t)

	tests := []struct {
		name   string
		mutate func(*domain.Item)
	}{
		{"rarity lowered", func(i *domain.Item) {
			i.Rarity = domain.RarityMagic
			i.Prefixes = i.Prefixes[:1]
			i.Suffixes = i.Suffixes[:1]
		}},
		{"level changed", func(i *domain.Item) { i.ItemLevel++ }},
		{"value out of range", func(i *domain.Item) { i.Prefixes[0].Value = 1000 }},
		{"duplicate group", func(i *domain.Item) { i.Prefixes[1] = i.Prefixes[0] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after := before.Clone()
			tt.mutate(after)
			assert.ErrorIs(t, verifyOutput("Test Orb", before, after), domain.ErrCatalogIntegrity)
		})
	}

	corrupted := before.Clone()
	corrupted.Corrupted = true
	assert.ErrorIs(t, verifyOutput("Test Orb", corrupted, before), domain.ErrCatalogIntegrity)
	assert.NoError(t, verifyOutput("Test Orb", before, before.Clone()))
}

func TestListCurrencies(t *testing.T) {
	svc := newEngine(t)
	cat := shippedCatalog(t)

	list := svc.ListCurrencies()

	assert.Len(t, list, len(cat.Currencies)+len(cat.Essences))
	assert.Equal(t, "Orb of Transmutation", list[0])
	assert.Contains(t, list, "Perfect Essence of the Body")
}

func TestApplicableCurrencies(t *testing.T) {
	svc := newEngine(t)

	names, err := svc.ApplicableCurrencies(context.Background(), newItem("body_armour", domain.RarityNormal, 80))

	require.NoError(t, err)
	assert.Subset(t, names, []string{"Orb of Transmutation", "Perfect Orb of Transmutation", "Orb of Alchemy", "Vaal Orb", "Armourer's Scrap"})
	assert.NotContains(t, names, "Chaos Orb")
	assert.NotContains(t, names, "Regal Orb")
	assert.NotContains(t, names, "Blacksmith's Whetstone")

	_, err = svc.ApplicableCurrencies(context.Background(), &domain.Item{})
	assert.ErrorIs(t, err, domain.ErrInvalidItem)
}

func TestCompatibleOmens(t *testing.T) {
	svc := newEngine(t)

	got, err := svc.CompatibleOmens("Greater Chaos Orb")
	require.NoError(t, err)
	assert.Equal(t, []string{"Omen of Sinistral Erasure", "Omen of Dextral Erasure", "Omen of Whittling"}, got)

	got, err = svc.CompatibleOmens("Divine Orb")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.CompatibleOmens("Mirror of Kalandra")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestAvailableMods(t *testing.T) {
	svc := newEngine(t)
	item := newItem("body_armour", domain.RarityRare, 80, mod(t, "Stalwart", 60))

	breakdown, err := svc.AvailableMods(context.Background(), item)
	require.NoError(t, err)

	groups := func(mods []AvailableMod) map[string]bool {
		out := make(map[string]bool)
		for _, m := range mods {
			out[m.Group] = true
		}
		return out
	}

	prefixGroups := groups(breakdown.Prefixes)
	assert.False(t, prefixGroups["life"], "the item already has a life modifier")
	assert.False(t, prefixGroups["life_percent"], "flat and percentage life are exclusive on body armour")
	assert.True(t, prefixGroups["armour"])
	assert.NotEmpty(t, breakdown.Suffixes)

	total := 0.0
	for _, m := range breakdown.Prefixes {
		total += m.Probability
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	assert.Equal(t, []string{"Essence of Insanity"}, namesOf(breakdown.Essence.Prefixes))
	assert.Contains(t, namesOf(breakdown.Essence.Suffixes), "Perfect Essence of Flames")
	assert.Contains(t, namesOf(breakdown.Desecrated.Prefixes), "Amanamu's Mantle")
	for _, m := range breakdown.Desecrated.Suffixes {
		assert.NotEqual(t, "of Ulaman's Resolve", m.Name, "weapon-only desecrated modifiers do not roll on body armour")
	}

	again, err := svc.AvailableMods(context.Background(), item.Clone())
	require.NoError(t, err)
	assert.Same(t, breakdown, again)

	_, err = svc.AvailableMods(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidItem)
}

func TestAvailableMods_FollowsCategoryPreview(t *testing.T) {
	svc := newEngine(t)
	cat := shippedCatalog(t)
	item := newItem("body_armour", domain.RarityRare, 80, mod(t, "Stalwart", 60), mod(t, "of the Drake", 18))

	breakdown, err := svc.AvailableMods(context.Background(), item)
	require.NoError(t, err)

	expected := func(typ domain.ModType, source modpool.Source) []string {
		mods := cat.Pool.AllModsForCategory(item.Category, item.ItemLevel, typ, source, item.Groups())
		mods = cat.Exclusions.FilterAvailableMods(mods, item.Explicits(), item.Category)
		out := make([]string, len(mods))
		for i, m := range mods {
			out[i] = m.Name
		}
		return out
	}

	tests := []struct {
		name   string
		got    []AvailableMod
		typ    domain.ModType
		source modpool.Source
	}{
		{"regular prefixes", breakdown.Prefixes, domain.ModTypePrefix, modpool.SourceRegular},
		{"regular suffixes", breakdown.Suffixes, domain.ModTypeSuffix, modpool.SourceRegular},
		{"essence prefixes", breakdown.Essence.Prefixes, domain.ModTypePrefix, modpool.SourceEssence},
		{"essence suffixes", breakdown.Essence.Suffixes, domain.ModTypeSuffix, modpool.SourceEssence},
		{"desecrated prefixes", breakdown.Desecrated.Prefixes, domain.ModTypePrefix, modpool.SourceDesecrated},
		{"desecrated suffixes", breakdown.Desecrated.Suffixes, domain.ModTypeSuffix, modpool.SourceDesecrated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, expected(tt.typ, tt.source), namesOf(tt.got))
			for _, m := range tt.got {
				def := cat.Pool.FindModByName(m.Name)
				require.NotNil(t, def)
				assert.Equal(t, tt.source == modpool.SourceEssence, def.EssenceOnly, m.Name)
				assert.Equal(t, tt.source == modpool.SourceDesecrated, def.DesecratedOnly, m.Name)
				ok, reason := cat.Exclusions.CanAddMod(def, item.Explicits(), item.Category)
				assert.True(t, ok, reason)
			}
		})
	}
}

func namesOf(mods []AvailableMod) []string {
	out := make([]string, len(mods))
	for i := range mods {
		out[i] = mods[i].Name
	}
	return out
}

func TestBreakdownKey(t *testing.T) {
	a := newItem("body_armour", domain.RarityRare, 80, mod(t, "Stalwart", 60), mod(t, "of the Kiln", 22))
	b := newItem("body_armour", domain.RarityMagic, 80, mod(t, "of the Kiln", 22), mod(t, "Stalwart", 60))
	c := newItem("body_armour", domain.RarityRare, 80, mod(t, "Stalwart", 61), mod(t, "of the Kiln", 22))

	assert.Equal(t, breakdownKey(a), breakdownKey(b), "mod order and rarity do not change what can roll")
	assert.NotEqual(t, breakdownKey(a), breakdownKey(c), "values feed exclusion matching")
}

func TestCatalogVersion(t *testing.T) {
	svc, err := NewService(syntheticCatalog(t), Config{})
	require.NoError(t, err)
	assert.Equal(t, "test+synthetic", svc.CatalogVersion())
}
