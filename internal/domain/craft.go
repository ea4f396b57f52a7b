package domain

// CurrencyDef describes a currency and the mechanic that handles it
type CurrencyDef struct {
	Name         string       `json:"name" validate:"required"`
	Mechanic     Mechanic     `json:"mechanic" validate:"required"`
	Tier         CurrencyTier `json:"tier,omitempty"`
	MinModLevel  int          `json:"min_mod_level,omitempty" validate:"min=0,max=100"`
	Categories   []string     `json:"categories,omitempty"`
	MaxItemLevel int          `json:"max_item_level,omitempty" validate:"min=0,max=100"`
	QualityStep  []int        `json:"quality_step,omitempty"`
}

// AppliesTo reports whether the currency is restricted away from category.
// An empty restriction list means every category is allowed.
func (c *CurrencyDef) AppliesTo(category string) bool {
	if len(c.Categories) == 0 {
		return true
	}
	for _, cat := range c.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

// EssenceEffect maps item categories to the guaranteed essence modifier
type EssenceEffect struct {
	Categories []string `json:"categories" validate:"required,min=1"`
	ModName    string   `json:"mod_name" validate:"required"`
}

// EssenceDef describes an essence and its guaranteed modifiers
type EssenceDef struct {
	Name    string          `json:"name" validate:"required"`
	Tier    CurrencyTier    `json:"tier" validate:"required"`
	Effects []EssenceEffect `json:"effects" validate:"required,min=1,dive"`
}

// ModNameFor returns the guaranteed modifier name for the category
func (e *EssenceDef) ModNameFor(category string) (string, bool) {
	for _, eff := range e.Effects {
		for _, c := range eff.Categories {
			if c == category {
				return eff.ModName, true
			}
		}
	}
	return "", false
}

// RemovesBeforeAdding reports whether the essence tier replaces a mod on a Rare
// item instead of upgrading a Magic item
func (e *EssenceDef) RemovesBeforeAdding() bool {
	return e.Tier == TierPerfect || e.Tier == TierCorrupted
}

// OmenDef describes an omen and the currencies it modifies
type OmenDef struct {
	Name       string       `json:"name" validate:"required"`
	Currencies []string     `json:"currencies" validate:"required,min=1"`
	Effects    []OmenEffect `json:"effects" validate:"required,min=1"`
	Tags       []string     `json:"tags,omitempty"`
}

// ExclusionRule marks stat patterns that cannot coexist on one item
type ExclusionRule struct {
	Description     string    `json:"description" yaml:"description" validate:"required"`
	ApplicableItems []string  `json:"applicable_items,omitempty" yaml:"applicable_items"`
	ModTypes        []ModType `json:"mod_types,omitempty" yaml:"mod_types"`
	Patterns        []string  `json:"patterns" yaml:"patterns" validate:"required,min=2"`
}

// CraftResult is the outcome of applying a currency to an item.
// ResultItem is nil whenever Success is false.
type CraftResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResultItem *Item  `json:"result_item"`
}

// Failure builds an unsuccessful CraftResult
func Failure(message string) *CraftResult {
	return &CraftResult{Success: false, Message: message}
}

// Succeeded builds a successful CraftResult
func Succeeded(message string, item *Item) *CraftResult {
	return &CraftResult{Success: true, Message: message, ResultItem: item}
}
