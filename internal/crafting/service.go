package crafting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
	"github.com/osse101/PoE2Craft_Go/internal/metrics"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// ApplyRequest is one currency application.
// Seed, when set, makes the result reproducible.
type ApplyRequest struct {
	Item     *domain.Item
	Currency string
	Omens    []string
	Seed     *uint64
	// Simulated applications are counted by the simulation metrics, not the craft ones
	Simulated bool
}

// AvailableMod is a modifier that could currently roll on an item
type AvailableMod struct {
	Name         string         `json:"name"`
	Type         domain.ModType `json:"type"`
	Tier         int            `json:"tier"`
	Text         string         `json:"text"`
	Group        string         `json:"group"`
	Tags         []string       `json:"tags,omitempty"`
	RequiredILvl int            `json:"required_ilvl"`
	Weight       int            `json:"weight"`
	Probability  float64        `json:"probability"`
}

// ModSplit holds prefix and suffix candidates of one provenance
type ModSplit struct {
	Prefixes []AvailableMod `json:"prefixes"`
	Suffixes []AvailableMod `json:"suffixes"`
}

// ModBreakdown lists what can roll on an item, split by provenance.
// Probability is relative to the other entries of the same list.
type ModBreakdown struct {
	ModSplit
	Essence    ModSplit `json:"essence"`
	Desecrated ModSplit `json:"desecrated"`
}

// Service is the crafting engine
type Service interface {
	Apply(ctx context.Context, req ApplyRequest) (*domain.CraftResult, error)
	ListCurrencies() []string
	ApplicableCurrencies(ctx context.Context, item *domain.Item) ([]string, error)
	CompatibleOmens(currency string) ([]string, error)
	AvailableMods(ctx context.Context, item *domain.Item) (*ModBreakdown, error)
	CatalogVersion() string
}

// Config tunes the engine. The zero value is usable.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	Rand      rng.Source // used when a request has no seed; nil means the process source
}

type service struct {
	catalog  *catalog.Catalog
	registry *Registry
	rand     rng.Source
	cache    *breakdownCache
}

// NewService binds the catalog to its mechanics
func NewService(cat *catalog.Catalog, cfg Config) (Service, error) {
	registry, err := NewRegistry(cat)
	if err != nil {
		return nil, err
	}

	src := cfg.Rand
	if src == nil {
		src = rng.Default()
	}

	metrics.CatalogModifiers.Set(float64(cat.Pool.Len()))
	slog.Info(LogMsgRegistryBuilt, "currencies", len(registry.order), "omens", len(registry.omens), "checksum", cat.Checksum)

	return &service{
		catalog:  cat,
		registry: registry,
		rand:     src,
		cache:    newBreakdownCache(cfg.CacheSize, cfg.CacheTTL, cat.Checksum),
	}, nil
}

// Apply applies a currency, with optional omens, to a copy of the item.
// Gameplay refusals come back as unsuccessful results; the error return is
// reserved for catalog integrity violations.
func (s *service) Apply(ctx context.Context, req ApplyRequest) (*domain.CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgApply, LogFieldCurrency, req.Currency, LogFieldOmens, req.Omens, LogFieldSeeded, req.Seed != nil)
	start := time.Now()

	mech, result := s.resolve(ctx, req)
	if result != nil {
		s.record(req, OutcomeFailure, start)
		return result, nil
	}

	src := s.rand
	if req.Seed != nil {
		src = rng.NewSeeded(*req.Seed)
	}
	roll := &Roll{Pool: s.catalog.Pool, Exclusions: s.catalog.Exclusions, Rand: src}

	result, err := mech.Apply(req.Item, roll)
	if err == nil && result.Success {
		err = verifyOutput(mech.Name(), req.Item, result.ResultItem)
	}
	if err != nil {
		log.Error(LogMsgIntegrityViolation, LogFieldCurrency, mech.Name(), LogFieldError, err)
		s.record(req, OutcomeError, start)
		return nil, err
	}

	outcome := OutcomeSuccess
	if !result.Success {
		outcome = OutcomeFailure
		log.Debug(LogMsgApplyFailed, LogFieldCurrency, mech.Name(), LogFieldMessage, result.Message)
	} else {
		log.Debug(LogMsgApplySucceeded, LogFieldCurrency, mech.Name(), LogFieldMessage, result.Message)
	}
	s.record(req, outcome, start)
	return result, nil
}

func (s *service) record(req ApplyRequest, outcome string, start time.Time) {
	if req.Simulated {
		return
	}
	metrics.RecordCraft(req.Currency, outcome, time.Since(start))
}

// resolve turns a request into a mechanic, or a failure result explaining why it cannot
func (s *service) resolve(ctx context.Context, req ApplyRequest) (Mechanic, *domain.CraftResult) {
	log := logger.FromContext(ctx)

	if req.Item == nil {
		return nil, domain.Failure(MsgItemRequired)
	}
	if err := req.Item.Validate(); err != nil {
		return nil, domain.Failure(fmt.Sprintf(MsgFmtInvalidItem, err))
	}

	currency, ok := s.registry.Currency(req.Currency)
	if !ok {
		log.Warn(LogMsgUnknownCurrency, LogFieldCurrency, req.Currency)
		return nil, domain.Failure(fmt.Sprintf(MsgFmtUnknownCurrency, req.Currency))
	}

	omens := make([]domain.OmenDef, 0, len(req.Omens))
	for _, name := range req.Omens {
		omen, ok := s.registry.Omen(name)
		if !ok {
			log.Warn(LogMsgUnknownOmen, LogFieldCurrency, req.Currency, LogFieldOmen, name)
			return nil, domain.Failure(fmt.Sprintf(MsgFmtUnknownOmen, name))
		}
		omens = append(omens, omen)
	}

	mech, reason := WithOmens(currency, omens)
	if reason != "" {
		log.Warn(LogMsgOmenRejected, LogFieldCurrency, req.Currency, LogFieldOmens, req.Omens, LogFieldMessage, reason)
		return nil, domain.Failure(reason)
	}
	return mech, nil
}

// verifyOutput checks the item invariants every successful application must keep
func verifyOutput(name string, before, after *domain.Item) error {
	if err := after.Validate(); err != nil {
		return fmt.Errorf(ErrFmtOutputInvalid, domain.ErrCatalogIntegrity, name, err)
	}
	if after.Rarity < before.Rarity {
		return fmt.Errorf(ErrFmtRarityDecreased, domain.ErrCatalogIntegrity, name, before.Rarity, after.Rarity)
	}
	if before.Corrupted && !after.Corrupted {
		return fmt.Errorf(ErrFmtCorruptionCleared, domain.ErrCatalogIntegrity, name)
	}
	if before.ItemLevel != after.ItemLevel {
		return fmt.Errorf(ErrFmtItemLevelChanged, domain.ErrCatalogIntegrity, name, before.ItemLevel, after.ItemLevel)
	}
	for _, m := range after.AllMods() {
		if !m.InRange() {
			return fmt.Errorf(ErrFmtValueOutOfRange, domain.ErrCatalogIntegrity, name, m.Name, m.Value, m.Min, m.Max)
		}
	}
	return nil
}

// ListCurrencies returns every registered currency and essence name
func (s *service) ListCurrencies() []string {
	return s.registry.CurrencyNames()
}

// ApplicableCurrencies returns the currencies that can be used on the item without omens
func (s *service) ApplicableCurrencies(ctx context.Context, item *domain.Item) ([]string, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidItem, MsgItemRequired)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	var out []string
	for _, name := range s.registry.order {
		if ok, _ := s.registry.currencies[name].CanApply(item); ok {
			out = append(out, name)
		}
	}
	logger.FromContext(ctx).Debug("Applicable currencies resolved", LogFieldCategory, item.Category, "count", len(out))
	return out, nil
}

// CompatibleOmens lists the omens that may be used with the currency
func (s *service) CompatibleOmens(currency string) ([]string, error) {
	if _, ok := s.registry.Currency(currency); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, currency)
	}
	return s.registry.CompatibleOmens(currency), nil
}

// AvailableMods returns what could roll on the item given its category, item
// level, occupied groups and exclusion rules. Open slots are not considered.
func (s *service) AvailableMods(ctx context.Context, item *domain.Item) (*ModBreakdown, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidItem, MsgItemRequired)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(item); ok {
		metrics.BreakdownCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgBreakdownCacheHit, LogFieldCategory, item.Category)
		return cached, nil
	}
	metrics.BreakdownCacheMisses.Inc()

	breakdown := &ModBreakdown{
		ModSplit:   s.split(item, modpool.SourceRegular),
		Essence:    s.split(item, modpool.SourceEssence),
		Desecrated: s.split(item, modpool.SourceDesecrated),
	}
	s.cache.Set(item, breakdown)
	return breakdown, nil
}

func (s *service) split(item *domain.Item, source modpool.Source) ModSplit {
	return ModSplit{
		Prefixes: s.available(item, domain.ModTypePrefix, source),
		Suffixes: s.available(item, domain.ModTypeSuffix, source),
	}
}

func (s *service) available(item *domain.Item, t domain.ModType, source modpool.Source) []AvailableMod {
	eligible := s.catalog.Pool.AllModsForCategory(item.Category, item.ItemLevel, t, source, item.Groups())
	eligible = s.catalog.Exclusions.FilterAvailableMods(eligible, item.Explicits(), item.Category)

	probs := modpool.Probabilities(eligible)
	out := make([]AvailableMod, 0, len(eligible))
	for _, m := range eligible {
		out = append(out, AvailableMod{
			Name:         m.Name,
			Type:         m.Type,
			Tier:         m.Tier,
			Text:         m.RangeText(),
			Group:        m.Group,
			Tags:         m.Tags,
			RequiredILvl: m.RequiredILvl,
			Weight:       m.Weight,
			Probability:  probs[m.Name],
		})
	}
	return out
}

// CatalogVersion identifies the loaded catalog
func (s *service) CatalogVersion() string {
	return s.catalog.Version + "+" + s.catalog.Checksum
}
