package qaoa

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/optimize"
)

// Optimizer modes.
const (
	ModeNelderMead   = "neldermead"
	ModeRandomSearch = "random"
)

// OptimizerConfig controls the multi-start parameter search.
type OptimizerConfig struct {
	Starts         int    // independent restarts (default 5)
	MaxEvaluations int    // objective evaluation cap per start (default 250)
	RandomSamples  int    // theta draws for random-search mode (default 100)
	Mode           string // ModeNelderMead or ModeRandomSearch
}

// DefaultOptimizerConfig mirrors the light multi-start policy: 5 restarts of
// a derivative-free local method, 250 evaluations each.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Starts:         5,
		MaxEvaluations: 250,
		RandomSamples:  100,
		Mode:           ModeNelderMead,
	}
}

// OptimizationOutcome is the best point found across all starts, together
// with the append-only evaluation trace. The trace belongs to this outcome;
// no process-wide state is involved, so concurrent solves cannot contaminate
// each other.
type OptimizationOutcome struct {
	Theta       []float64
	Value       float64
	Trace       []float64
	Evaluations int
	Degraded    bool // true when any start fell back to random search
}

// Objective is a pure function of the parameter vector. Errors are treated
// as fatal and abort the whole optimization (the evaluator is deterministic,
// so there is nothing transient to retry).
type Objective func(theta []float64) (float64, error)

// Optimizer performs multi-start derivative-free minimization of the
// expectation objective over [0, 2*pi)^2P.
type Optimizer struct {
	cfg OptimizerConfig
	log zerolog.Logger
}

// NewOptimizer creates an optimizer with the given configuration.
func NewOptimizer(cfg OptimizerConfig, log zerolog.Logger) *Optimizer {
	if cfg.Starts <= 0 {
		cfg.Starts = 5
	}
	if cfg.MaxEvaluations <= 0 {
		cfg.MaxEvaluations = 250
	}
	if cfg.RandomSamples <= 0 {
		cfg.RandomSamples = 100
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeNelderMead
	}
	return &Optimizer{
		cfg: cfg,
		log: log.With().Str("component", "qaoa_optimizer").Logger(),
	}
}

// startResult is the outcome of one independent restart.
type startResult struct {
	theta    []float64
	value    float64
	trace    []float64
	degraded bool
	err      error
}

// Optimize runs the configured number of independent restarts concurrently
// and returns the global minimum. Each start owns its random source (derived
// from seed) and its trace slice, so the starts share no mutable state; the
// final selection is a minimum-reduction over their results.
func (o *Optimizer) Optimize(objective Objective, depth int, seed int64) (*OptimizationOutcome, error) {
	results := make([]startResult, o.cfg.Starts)

	var wg sync.WaitGroup
	for start := 0; start < o.cfg.Starts; start++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			//nolint:gosec // G404: variational parameter search doesn't require crypto-grade randomness
			rng := rand.New(rand.NewSource(seed + int64(start)))
			results[start] = o.runStart(objective, depth, rng)
		}(start)
	}
	wg.Wait()

	outcome := &OptimizationOutcome{Value: math.Inf(1)}
	for start, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("optimization start %d failed: %w", start, res.err)
		}
		outcome.Trace = append(outcome.Trace, res.trace...)
		if res.degraded {
			outcome.Degraded = true
		}
		if res.value < outcome.Value {
			outcome.Value = res.value
			outcome.Theta = res.theta
		}
	}
	outcome.Evaluations = len(outcome.Trace)

	if outcome.Theta == nil {
		return nil, fmt.Errorf("no optimization start produced a finite value")
	}

	o.log.Debug().
		Float64("best_value", outcome.Value).
		Int("evaluations", outcome.Evaluations).
		Bool("degraded", outcome.Degraded).
		Msg("Parameter optimization completed")

	return outcome, nil
}

// runStart executes one restart: Nelder-Mead from a random point, with a
// random-search fallback when the local method cannot produce a usable
// result. Evaluator errors are never retried.
func (o *Optimizer) runStart(objective Objective, depth int, rng *rand.Rand) startResult {
	if o.cfg.Mode == ModeRandomSearch {
		return o.randomSearch(objective, depth, rng)
	}

	var trace []float64
	var evalErr error

	wrapped := func(theta []float64) float64 {
		if evalErr != nil {
			return math.NaN()
		}
		value, err := objective(theta)
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		trace = append(trace, value)
		return value
	}

	x0 := randomTheta(depth, rng)
	problem := optimize.Problem{Func: wrapped}
	settings := &optimize.Settings{FuncEvaluations: o.cfg.MaxEvaluations}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if evalErr != nil {
		return startResult{err: evalErr}
	}

	acceptable := map[optimize.Status]bool{
		optimize.Success:                 true,
		optimize.FunctionConvergence:     true,
		optimize.GradientThreshold:       true,
		optimize.FunctionEvaluationLimit: true,
		optimize.IterationLimit:          true,
	}
	if err != nil || result == nil || !acceptable[result.Status] || math.IsNaN(result.F) {
		// Degraded mode, not an error: fall back to pure random search.
		o.log.Warn().
			Err(err).
			Msg("Nelder-Mead unavailable for this start, falling back to random search")
		fallback := o.randomSearch(objective, depth, rng)
		fallback.trace = append(trace, fallback.trace...)
		fallback.degraded = true
		return fallback
	}

	return startResult{theta: result.X, value: result.F, trace: trace}
}

// randomSearch samples uniform theta vectors in [0, 2*pi) per angle and
// keeps the minimum observed value.
func (o *Optimizer) randomSearch(objective Objective, depth int, rng *rand.Rand) startResult {
	res := startResult{value: math.Inf(1)}
	for i := 0; i < o.cfg.RandomSamples; i++ {
		theta := randomTheta(depth, rng)
		value, err := objective(theta)
		if err != nil {
			res.err = err
			return res
		}
		res.trace = append(res.trace, value)
		if value < res.value {
			res.value = value
			res.theta = theta
		}
	}
	return res
}

// randomTheta draws 2*depth angles uniformly from [0, 2*pi): depth gammas
// followed by depth betas.
func randomTheta(depth int, rng *rand.Rand) []float64 {
	theta := make([]float64, 2*depth)
	for i := range theta {
		theta[i] = rng.Float64() * 2.0 * math.Pi
	}
	return theta
}
