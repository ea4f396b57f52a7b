package catalog

import "github.com/osse101/PoE2Craft_Go/internal/domain"

// ModifiersFile is the decoded modifiers.json
type ModifiersFile struct {
	Version        string              `json:"version" validate:"required"`
	Description    string              `json:"description"`
	CategoryGroups map[string][]string `json:"category_groups"`
	Modifiers      []domain.Modifier   `json:"modifiers" validate:"required,min=1"`
}

// CurrenciesFile is the decoded currencies.json
type CurrenciesFile struct {
	Version     string               `json:"version" validate:"required"`
	Description string               `json:"description"`
	Currencies  []domain.CurrencyDef `json:"currencies" validate:"required,min=1,dive"`
}

// EssencesFile is the decoded essences.json
type EssencesFile struct {
	Version     string              `json:"version" validate:"required"`
	Description string              `json:"description"`
	Essences    []domain.EssenceDef `json:"essences" validate:"dive"`
}

// OmensFile is the decoded omens.json
type OmensFile struct {
	Version     string           `json:"version" validate:"required"`
	Description string           `json:"description"`
	Omens       []domain.OmenDef `json:"omens" validate:"dive"`
}

// ExclusionsFile is the decoded exclusions.yaml
type ExclusionsFile struct {
	Version     string                 `yaml:"version" validate:"required"`
	Description string                 `yaml:"description"`
	Rules       []domain.ExclusionRule `yaml:"rules" validate:"dive"`
}
