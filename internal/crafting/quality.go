package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// quality raises item quality by a rarity-dependent step up to the cap
type quality struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *quality) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Quality >= domain.MaxQuality {
		return false, fmt.Sprintf(MsgFmtQualityCapped, m.def.Name, domain.MaxQuality)
	}
	return true, ""
}

func (m *quality) apply(item *domain.Item, _ *Roll, _ *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	out.Quality += m.step(item.Rarity)
	if out.Quality > domain.MaxQuality {
		out.Quality = domain.MaxQuality
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtQuality, out.Quality), out), nil
}

// step picks the Normal, Magic or Rare-and-above quality increment
func (m *quality) step(r domain.Rarity) int {
	idx := int(r)
	if idx >= len(m.def.QualityStep) {
		idx = len(m.def.QualityStep) - 1
	}
	return m.def.QualityStep[idx]
}
