package handler

import (
	"net/http"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// ItemBuilder resolves an item spec into a validated item
type ItemBuilder interface {
	BuildItem(spec *catalog.ItemSpec) (*domain.Item, error)
}

// ModView is a modifier as returned to clients.
// Name, Value and Fractured match catalog.ModSpec so a result can be sent back as input.
type ModView struct {
	Name       string         `json:"name"`
	Type       domain.ModType `json:"type"`
	Tier       int            `json:"tier"`
	Text       string         `json:"text"`
	Value      int            `json:"value"`
	Fractured  bool           `json:"fractured,omitempty"`
	Desecrated bool           `json:"desecrated,omitempty"`
}

// ItemView is an item as returned to clients. Its JSON is accepted wherever an item spec is.
type ItemView struct {
	BaseName  string    `json:"base_name"`
	Category  string    `json:"category"`
	Rarity    string    `json:"rarity"`
	ItemLevel int       `json:"item_level"`
	Quality   int       `json:"quality"`
	Corrupted bool      `json:"corrupted,omitempty"`
	Prefixes  []ModView `json:"prefixes"`
	Suffixes  []ModView `json:"suffixes"`
	Implicits []ModView `json:"implicits"`
}

// NewItemView renders an item for a response
func NewItemView(item *domain.Item) *ItemView {
	if item == nil {
		return nil
	}
	return &ItemView{
		BaseName:  item.BaseName,
		Category:  item.Category,
		Rarity:    item.Rarity.String(),
		ItemLevel: item.ItemLevel,
		Quality:   item.Quality,
		Corrupted: item.Corrupted,
		Prefixes:  modViews(item.Prefixes),
		Suffixes:  modViews(item.Suffixes),
		Implicits: modViews(item.Implicits),
	}
}

func modViews(mods []domain.ItemModifier) []ModView {
	out := make([]ModView, len(mods))
	for i := range mods {
		out[i] = ModView{
			Name:       mods[i].Name,
			Type:       mods[i].Type,
			Tier:       mods[i].Tier,
			Text:       mods[i].Text(),
			Value:      mods[i].Value,
			Fractured:  mods[i].Fractured,
			Desecrated: mods[i].DesecratedOnly,
		}
	}
	return out
}

// ItemRequest carries a single item
type ItemRequest struct {
	Item catalog.ItemSpec `json:"item"`
}

// decodeItem decodes an ItemRequest and builds the item.
// A nil item means the response has already been written.
func decodeItem(w http.ResponseWriter, r *http.Request, builder ItemBuilder, action string) *domain.Item {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
		return nil
	}
	return buildItem(w, r, builder, &req.Item, action)
}

// buildItem resolves spec, answering 400 on failure
func buildItem(w http.ResponseWriter, r *http.Request, builder ItemBuilder, spec *catalog.ItemSpec, action string) *domain.Item {
	item, err := builder.BuildItem(spec)
	if err != nil {
		respondServiceError(w, r, action, err)
		return nil
	}
	return item
}
