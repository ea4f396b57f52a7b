package crafting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

func TestScenario_TransmuteNormalItem(t *testing.T) {
	svc := newEngine(t)
	item := newItem("body_armour", domain.RarityNormal, 65)

	result, err := svc.Apply(context.Background(), ApplyRequest{Item: item, Currency: "Orb of Transmutation", Seed: seed(1)})

	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, domain.RarityMagic, result.ResultItem.Rarity)
	assert.Equal(t, 1, result.ResultItem.ExplicitCount())
	assert.Equal(t, 65, result.ResultItem.ItemLevel)
	assert.Equal(t, domain.RarityNormal, item.Rarity, "input item must not change")
}

func TestScenario_AugmentFillsTheOpenType(t *testing.T) {
	svc := newEngine(t)

	for s := uint64(0); s < 20; s++ {
		item := newItem("helmet", domain.RarityMagic, 50, mod(t, "Healthy", 25))

		result, err := svc.Apply(context.Background(), ApplyRequest{Item: item, Currency: "Orb of Augmentation", Seed: seed(s)})

		require.NoError(t, err)
		require.True(t, result.Success, result.Message)
		out := result.ResultItem
		assert.Equal(t, domain.RarityMagic, out.Rarity)
		assert.Equal(t, 2, out.ExplicitCount())
		assert.Len(t, out.Prefixes, 1, "the only open slot on a Magic item with a prefix is a suffix")
		assert.Len(t, out.Suffixes, 1)
	}
}

func TestScenario_ChaosKeepsModifierCount(t *testing.T) {
	svc := newEngine(t)
	input := fullRareBodyArmour(t)
	before := names(input.Explicits())

	changed := false
	for s := uint64(0); s < 50; s++ {
		result, err := svc.Apply(context.Background(), ApplyRequest{Item: input, Currency: "Chaos Orb", Seed: seed(s)})
		require.NoError(t, err)
		require.True(t, result.Success, result.Message)

		out := result.ResultItem
		assert.Equal(t, 6, out.ExplicitCount())
		requireItemInvariants(t, out)
		if !assert.ObjectsAreEqual(before, names(out.Explicits())) {
			changed = true
		}
	}
	assert.True(t, changed, "50 chaos rolls never changed the modifier set")
	assert.Equal(t, before, names(input.Explicits()))
}

func TestScenario_GreaterExaltationNeedsTwoOpenSlots(t *testing.T) {
	svc := newEngine(t)
	item := fullRareBodyArmour(t)
	item.RemoveMod(domain.ModTypeSuffix, 2)
	snapshot := item.Clone()

	result, err := svc.Apply(context.Background(), ApplyRequest{
		Item:     item,
		Currency: "Exalted Orb",
		Omens:    []string{"Omen of Greater Exaltation"},
		Seed:     seed(7),
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Omen of Greater Exaltation requires 2 open affix slots", result.Message)
	assert.Nil(t, result.ResultItem)
	assert.Equal(t, snapshot, item)
}

func TestScenario_GreaterExaltationAddsTwo(t *testing.T) {
	svc := newEngine(t)
	item := fullRareBodyArmour(t)
	item.RemoveMod(domain.ModTypeSuffix, 2)
	item.RemoveMod(domain.ModTypePrefix, 2)

	result, err := svc.Apply(context.Background(), ApplyRequest{
		Item:     item,
		Currency: "Exalted Orb",
		Omens:    []string{"Omen of Greater Exaltation"},
		Seed:     seed(7),
	})

	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 6, result.ResultItem.ExplicitCount())
	requireItemInvariants(t, result.ResultItem)
}

func TestScenario_PerfectEssenceReplacesOneModifier(t *testing.T) {
	svc := newEngine(t)
	item := fullRareBodyArmour(t)

	result, err := svc.Apply(context.Background(), ApplyRequest{Item: item, Currency: "Perfect Essence of the Body", Seed: seed(3)})

	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	out := result.ResultItem
	assert.Equal(t, 6, out.ExplicitCount())
	assert.NotContains(t, names(out.Prefixes), "Stalwart", "the life modifier shares the essence group and must make way")

	var found *domain.ItemModifier
	for i := range out.Prefixes {
		if out.Prefixes[i].Name == "Perfect Essence of the Body" {
			found = &out.Prefixes[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "life", found.Group)
	assert.True(t, found.InRange())
	assert.True(t, strings.HasPrefix(result.Message, "Removed +60 to maximum Life"), result.Message)
}

func TestScenario_PerfectExaltedOnLowLevelItem(t *testing.T) {
	svc := newEngine(t)
	item := newItem("body_armour", domain.RarityRare, 30)

	result, err := svc.Apply(context.Background(), ApplyRequest{Item: item, Currency: "Perfect Exalted Orb", Seed: seed(1)})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.ResultItem)
	assert.Equal(t, "No eligible modifiers can be added by Perfect Exalted Orb: it needs modifier level 50 but the item is level 30", result.Message)
}

// Omen of Whittling removes the modifier with the lowest required item level.
// The three suffixes tie at level 24 and the first one goes; the open suffix
// slot is the only place the replacement can land.
func TestScenario_ChaosWithWhittlingRemovesWeakest(t *testing.T) {
	require.Equal(t, WhittleLowestModLevel, WhittlingTarget)
	svc := newEngine(t)
	input := fullRareBodyArmour(t)

	for s := uint64(0); s < 20; s++ {
		result, err := svc.Apply(context.Background(), ApplyRequest{
			Item:     input,
			Currency: "Chaos Orb",
			Omens:    []string{"Omen of Whittling"},
			Seed:     seed(s),
		})

		require.NoError(t, err)
		require.True(t, result.Success, result.Message)
		out := result.ResultItem
		assert.Equal(t, names(input.Prefixes), names(out.Prefixes), "prefixes outrank every suffix")
		assert.Contains(t, result.Message, input.Suffixes[0].Text(), "of the Drake is removed")
		suffixes := names(out.Suffixes)
		assert.Contains(t, suffixes, "of the Penguin")
		assert.Contains(t, suffixes, "of the Storm")
		requireItemInvariants(t, out)
	}
}
