package qaoa

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/quantum-portfolio/internal/modules/circuit"
	"github.com/aristath/quantum-portfolio/internal/modules/qubo"
)

// ServiceConfig holds solve defaults and capacity bounds.
type ServiceConfig struct {
	MaxQubits    int   // hard cap on n: statevector cost is O(2^n)
	DefaultDepth int   // QAOA layers P when the request doesn't specify
	DefaultShots int   // finite-shot sample size
	DefaultSeed  int64 // used when the request carries no seed
	Optimizer    OptimizerConfig
}

// DefaultServiceConfig returns sensible solve defaults for small instances.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxQubits:    20,
		DefaultDepth: 3,
		DefaultShots: 4096,
		DefaultSeed:  42,
		Optimizer:    DefaultOptimizerConfig(),
	}
}

// Service orchestrates the complete QAOA pipeline: QUBO validation, Ising
// conversion, ansatz construction, parameter optimization, finite-shot
// sampling with cardinality post-selection, and portfolio metrics.
type Service struct {
	cfg ServiceConfig
	log zerolog.Logger
}

// NewService creates a new solver service.
func NewService(cfg ServiceConfig, log zerolog.Logger) *Service {
	if cfg.MaxQubits <= 0 {
		cfg.MaxQubits = 20
	}
	if cfg.DefaultDepth <= 0 {
		cfg.DefaultDepth = 3
	}
	if cfg.DefaultShots <= 0 {
		cfg.DefaultShots = 4096
	}
	return &Service{
		cfg: cfg,
		log: log.With().Str("component", "qaoa_service").Logger(),
	}
}

// Solve runs the full pipeline for one problem instance. The single seed
// drives initial-bitstring choice, optimizer start points, and shot
// sampling, so identical requests produce identical results.
func (s *Service) Solve(req SolveRequest) (*Result, error) {
	problem, err := qubo.NewProblem(req.Q, req.LinearQ, req.Mu, req.Sigma, req.B, req.Tickers)
	if err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}
	if problem.Symmetrized {
		s.log.Warn().Msg("QUBO matrix was not symmetric; symmetrized")
	}

	n := problem.Size()
	if n > s.cfg.MaxQubits {
		return nil, fmt.Errorf("problem has %d assets, statevector simulation is capped at %d", n, s.cfg.MaxQubits)
	}

	depth := req.Depth
	if depth <= 0 {
		depth = s.cfg.DefaultDepth
	}
	shots := req.Shots
	if shots <= 0 {
		shots = s.cfg.DefaultShots
	}
	seed := s.cfg.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	//nolint:gosec // G404: simulated shot sampling doesn't require crypto-grade randomness
	rng := rand.New(rand.NewSource(seed))

	initBits, err := s.initialBits(req, problem, rng)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("num_assets", n).
		Int("cardinality", problem.B).
		Int("depth", depth).
		Int("shots", shots).
		Int64("seed", seed).
		Str("initial_bits", circuit.FormatBits(initBits)).
		Msg("Starting QAOA solve")

	ham := qubo.ToIsing(problem.Quadratic, problem.Linear, n)
	ansatz, err := circuit.BuildXYAnsatz(n, depth, ham.J, ham.H, initBits)
	if err != nil {
		return nil, fmt.Errorf("failed to build ansatz: %w", err)
	}

	evaluator := NewEvaluator(problem, ansatz)

	optCfg := s.cfg.Optimizer
	if req.OptimizerMode != "" {
		optCfg.Mode = req.OptimizerMode
	}
	optimizer := NewOptimizer(optCfg, s.log)

	optStart := time.Now()
	outcome, err := optimizer.Optimize(evaluator.Expectation, depth, seed)
	if err != nil {
		return nil, fmt.Errorf("parameter optimization failed: %w", err)
	}
	optimizeMillis := time.Since(optStart).Milliseconds()

	s.log.Info().
		Float64("best_expectation", outcome.Value).
		Int("evaluations", outcome.Evaluations).
		Bool("degraded", outcome.Degraded).
		Int64("millis", optimizeMillis).
		Msg("Parameter optimization finished")

	bound, err := ansatz.Bind(outcome.Theta)
	if err != nil {
		return nil, fmt.Errorf("failed to bind optimized parameters: %w", err)
	}

	sampleStart := time.Now()
	counts := circuit.Sample(bound.Simulate(), n, shots, rng)
	sampleMillis := time.Since(sampleStart).Milliseconds()

	selection, err := SelectBest(counts, problem)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:           uuid.New().String(),
		NumAssets:       n,
		Cardinality:     problem.B,
		Depth:           depth,
		Shots:           shots,
		Seed:            seed,
		InitialBits:     circuit.FormatBits(initBits),
		Tickers:         problem.Tickers,
		BestExpectation: outcome.Value,
		BestTheta:       outcome.Theta,
		Selection:       *selection,
		Degraded:        outcome.Degraded,
		Evaluations:     outcome.Evaluations,
		OptimizeMillis:  optimizeMillis,
		SampleMillis:    sampleMillis,
		Trace:           outcome.Trace,
	}

	if len(problem.Tickers) > 0 {
		result.SelectedTickers = make([]string, 0, len(selection.Indices))
		for _, idx := range selection.Indices {
			result.SelectedTickers = append(result.SelectedTickers, problem.Tickers[idx])
		}
	}

	if len(problem.Mu) > 0 && len(problem.Sigma) > 0 {
		metrics, err := ComputeMetrics(problem.Mu, problem.Sigma, selection.Indices)
		if err != nil {
			return nil, fmt.Errorf("failed to compute portfolio metrics: %w", err)
		}
		result.Metrics = metrics
	}

	s.log.Info().
		Str("run_id", result.RunID).
		Str("bitstring", selection.Bitstring).
		Int("frequency", selection.Count).
		Float64("objective", selection.Objective).
		Strs("selected", result.SelectedTickers).
		Msg("QAOA solve completed")

	return result, nil
}

// initialBits returns the weight-B starting bitstring: the one pinned by the
// request, or B distinct indices drawn from the run's generator.
func (s *Service) initialBits(req SolveRequest, problem *qubo.Problem, rng *rand.Rand) ([]int, error) {
	n := problem.Size()

	if req.InitialBits != "" {
		bits, err := circuit.ParseBits(req.InitialBits)
		if err != nil {
			return nil, fmt.Errorf("invalid initial bitstring: %w", err)
		}
		if len(bits) != n {
			return nil, fmt.Errorf("initial bitstring has %d bits, problem has %d assets", len(bits), n)
		}
		weight := 0
		for _, bit := range bits {
			weight += bit
		}
		if weight != problem.B {
			return nil, fmt.Errorf("initial bitstring has weight %d, cardinality is %d", weight, problem.B)
		}
		return bits, nil
	}

	bits := make([]int, n)
	for _, idx := range rng.Perm(n)[:problem.B] {
		bits[idx] = 1
	}
	return bits, nil
}
