// Package simulate estimates crafting outcome probabilities by applying a
// currency many times with independent seeds.
package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PoE2Craft_Go/internal/crafting"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
	"github.com/osse101/PoE2Craft_Go/internal/metrics"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// Request is one Monte Carlo run. Without a Seed a random one is drawn and
// reported back in the Summary so the run can be repeated.
type Request struct {
	Item     *domain.Item
	Currency string
	Omens    []string
	Trials   int
	Seed     *uint64
}

// Summary aggregates the outcomes of every trial
type Summary struct {
	Currency            string             `json:"currency"`
	Omens               []string           `json:"omens,omitempty"`
	Trials              int                `json:"trials"`
	Seed                uint64             `json:"seed"`
	Successes           int                `json:"successes"`
	SuccessRate         float64            `json:"success_rate"`
	RarityCounts        map[string]int     `json:"rarity_counts"`
	ModifierFrequency   map[string]float64 `json:"modifier_frequency"`
	AverageExplicitMods float64            `json:"average_explicit_mods"`
	Failures            map[string]int     `json:"failures,omitempty"`
}

// Runner runs simulations against the crafting engine
type Runner interface {
	Run(ctx context.Context, req Request) (*Summary, error)
}

// Config bounds the work a single run may do
type Config struct {
	MaxTrials int
	Workers   int
}

type runner struct {
	engine    crafting.Service
	maxTrials int
	workers   int
}

// NewRunner creates a Runner. Non-positive limits fall back to the defaults.
func NewRunner(engine crafting.Service, cfg Config) Runner {
	if cfg.MaxTrials <= 0 {
		cfg.MaxTrials = DefaultMaxTrials
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &runner{engine: engine, maxTrials: cfg.MaxTrials, workers: cfg.Workers}
}

// tally is the partial result of a chunk of trials. Every field is a sum, so
// merging in any order gives the same totals.
type tally struct {
	successes    int
	explicitMods int
	rarities     map[domain.Rarity]int
	modifiers    map[string]int
	failures     map[string]int
}

func newTally() *tally {
	return &tally{
		rarities:  make(map[domain.Rarity]int),
		modifiers: make(map[string]int),
		failures:  make(map[string]int),
	}
}

func (t *tally) add(result *domain.CraftResult) {
	if !result.Success {
		t.failures[result.Message]++
		return
	}
	t.successes++
	item := result.ResultItem
	t.rarities[item.Rarity]++
	t.explicitMods += item.ExplicitCount()
	for _, m := range item.AllMods() {
		t.modifiers[m.Name]++
	}
}

func (t *tally) merge(o *tally) {
	t.successes += o.successes
	t.explicitMods += o.explicitMods
	for k, v := range o.rarities {
		t.rarities[k] += v
	}
	for k, v := range o.modifiers {
		t.modifiers[k] += v
	}
	for k, v := range o.failures {
		t.failures[k] += v
	}
}

// Run applies the currency Trials times. Trial i always uses
// rng.DeriveSeed(seed, i), so the summary does not depend on the worker count.
func (r *runner) Run(ctx context.Context, req Request) (*Summary, error) {
	if req.Trials < 1 || req.Trials > r.maxTrials {
		return nil, fmt.Errorf(ErrFmtTrialsOutOfRange, domain.ErrInvalidInput, r.maxTrials, req.Trials)
	}
	seed := rand.Uint64() //nolint:gosec // Seed for a game simulation, not security critical
	if req.Seed != nil {
		seed = *req.Seed
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarted, LogFieldCurrency, req.Currency, LogFieldTrials, req.Trials, LogFieldWorkers, r.workers, LogFieldSeed, seed)
	metrics.SimulationRuns.WithLabelValues(req.Currency).Inc()

	chunks := chunkBounds(req.Trials, r.workers*chunksPerWorker)
	partials := make([]*tally, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for ci, bounds := range chunks {
		g.Go(func() error {
			part, err := r.runChunk(gctx, req, seed, bounds[0], bounds[1])
			if err != nil {
				return err
			}
			partials[ci] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn(LogMsgSimulationAborted, LogFieldCurrency, req.Currency, LogFieldError, err)
		return nil, err
	}

	total := newTally()
	for _, p := range partials {
		total.merge(p)
	}
	metrics.SimulationTrials.Add(float64(req.Trials))

	summary := summarize(req, seed, total)
	log.Info(LogMsgSimulationFinished, LogFieldCurrency, req.Currency, LogFieldTrials, req.Trials, LogFieldSuccess, summary.SuccessRate)
	return summary, nil
}

func (r *runner) runChunk(ctx context.Context, req Request, seed uint64, from, to int) (*tally, error) {
	part := newTally()
	for i := from; i < to; i++ {
		if (i-from)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		trialSeed := rng.DeriveSeed(seed, i)
		result, err := r.engine.Apply(ctx, crafting.ApplyRequest{
			Item:      req.Item,
			Currency:  req.Currency,
			Omens:     req.Omens,
			Seed:      &trialSeed,
			Simulated: true,
		})
		if err != nil {
			return nil, fmt.Errorf(ErrFmtTrialFailed, i, err)
		}
		part.add(result)
	}
	return part, nil
}

// chunkBounds splits [0, n) into at most parts contiguous half-open ranges
func chunkBounds(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	out := make([][2]int, 0, parts)
	for from := 0; from < n; from += size {
		to := from + size
		if to > n {
			to = n
		}
		out = append(out, [2]int{from, to})
	}
	return out
}

func summarize(req Request, seed uint64, total *tally) *Summary {
	s := &Summary{
		Currency:          req.Currency,
		Omens:             req.Omens,
		Trials:            req.Trials,
		Seed:              seed,
		Successes:         total.successes,
		SuccessRate:       float64(total.successes) / float64(req.Trials),
		RarityCounts:      make(map[string]int, len(total.rarities)),
		ModifierFrequency: make(map[string]float64, len(total.modifiers)),
		Failures:          total.failures,
	}
	for rarity, n := range total.rarities {
		s.RarityCounts[rarity.String()] = n
	}
	if total.successes > 0 {
		s.AverageExplicitMods = float64(total.explicitMods) / float64(total.successes)
		for name, n := range total.modifiers {
			s.ModifierFrequency[name] = float64(n) / float64(total.successes)
		}
	}
	if len(s.Failures) == 0 {
		s.Failures = nil
	}
	return s
}
