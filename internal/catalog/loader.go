// Package catalog loads the static crafting data files at startup and builds
// the read-only modifier pool, exclusion rules and currency definitions.
package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/exclusion"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/validation"
)

// Catalog is everything the crafting engine reads. Nothing in it changes after Load.
type Catalog struct {
	Version    string
	Checksum   string
	Pool       *modpool.Pool
	Exclusions exclusion.Service
	Currencies []domain.CurrencyDef
	Essences   []domain.EssenceDef
	Omens      []domain.OmenDef
}

// Loader reads and validates a catalog directory
type Loader interface {
	Load(ctx context.Context, dataDir string) (*Catalog, error)
}

type loader struct {
	schemaDir       string
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a Loader validating against the schemas in schemaDir.
// An empty schemaDir means DefaultSchemaDir.
func NewLoader(schemaDir string) Loader {
	if schemaDir == "" {
		schemaDir = DefaultSchemaDir
	}
	return &loader{
		schemaDir:       schemaDir,
		schemaValidator: validation.NewSchemaValidator(),
		structValidator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load runs every file through schema, decode, struct-tag and semantic
// validation, then builds the catalog. Any problem aborts the load.
func (l *loader) Load(ctx context.Context, dataDir string) (*Catalog, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoadingCatalog, "data_dir", dataDir)

	cat, err := l.load(dataDir)
	if err != nil {
		log.Error(LogMsgCatalogInvalid, "data_dir", dataDir, "error", err)
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"version", cat.Version,
		"checksum", cat.Checksum,
		"modifiers", cat.Pool.Len(),
		"currencies", len(cat.Currencies),
		"essences", len(cat.Essences),
		"omens", len(cat.Omens),
		"exclusion_rules", cat.Exclusions.RuleCount())
	return cat, nil
}

func (l *loader) load(dataDir string) (*Catalog, error) {
	digest := sha256.New()

	var mods ModifiersFile
	if err := l.readJSON(dataDir, ModifiersFileName, ModifiersSchemaName, &mods, digest); err != nil {
		return nil, err
	}
	var currencies CurrenciesFile
	if err := l.readJSON(dataDir, CurrenciesFileName, CurrenciesSchemaName, &currencies, digest); err != nil {
		return nil, err
	}
	var essences EssencesFile
	if err := l.readJSON(dataDir, EssencesFileName, EssencesSchemaName, &essences, digest); err != nil {
		return nil, err
	}
	var omens OmensFile
	if err := l.readJSON(dataDir, OmensFileName, OmensSchemaName, &omens, digest); err != nil {
		return nil, err
	}
	var rules ExclusionsFile
	if err := l.readYAML(dataDir, ExclusionsFileName, ExclusionsSchemaName, &rules, digest); err != nil {
		return nil, err
	}

	categories := modpool.Categories(mods.CategoryGroups)
	pool, err := modpool.New(mods.Modifiers, categories)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildPoolFailed, err)
	}
	excl, err := exclusion.NewService(rules.Rules, categories)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRulesFailed, err)
	}

	names := make(map[string]bool)
	if err := validateCurrencies(currencies.Currencies, pool, names); err != nil {
		return nil, err
	}
	if err := validateEssences(essences.Essences, pool, names); err != nil {
		return nil, err
	}
	if err := validateOmens(omens.Omens, currencies.Currencies, essences.Essences); err != nil {
		return nil, err
	}

	return &Catalog{
		Version:    mods.Version,
		Checksum:   hex.EncodeToString(digest.Sum(nil))[:checksumLength],
		Pool:       pool,
		Exclusions: excl,
		Currencies: currencies.Currencies,
		Essences:   essences.Essences,
		Omens:      omens.Omens,
	}, nil
}

func (l *loader) read(dataDir, fileName, schemaName string, digest io.Writer, validate func([]byte, string) error) ([]byte, error) {
	path := filepath.Join(dataDir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	if err := validate(data, filepath.Join(l.schemaDir, schemaName)); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, fileName, err)
	}
	_, _ = digest.Write(data)
	return data, nil
}

func (l *loader) readJSON(dataDir, fileName, schemaName string, out interface{}, digest io.Writer) error {
	data, err := l.read(dataDir, fileName, schemaName, digest, l.schemaValidator.ValidateBytes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseFileFailed, fileName, err)
	}
	return l.validateStruct(fileName, out)
}

func (l *loader) readYAML(dataDir, fileName, schemaName string, out interface{}, digest io.Writer) error {
	data, err := l.read(dataDir, fileName, schemaName, digest, l.schemaValidator.ValidateYAML)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseFileFailed, fileName, err)
	}
	return l.validateStruct(fileName, out)
}

func (l *loader) validateStruct(fileName string, v interface{}) error {
	if err := l.structValidator.Struct(v); err != nil {
		return fmt.Errorf(ErrMsgStructValidation, domain.ErrInvalidConfig, fileName, err)
	}
	return nil
}
