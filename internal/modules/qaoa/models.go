package qaoa

// SolveRequest is the validated problem record supplied by the data-prep
// collaborator, plus optional solver overrides. Field names mirror the
// upstream payload.
type SolveRequest struct {
	Q       [][]float64 `json:"Q"`
	LinearQ []float64   `json:"q"`
	Mu      []float64   `json:"mu"`
	Sigma   [][]float64 `json:"Sigma"`
	B       int         `json:"B"`
	Tickers []string    `json:"tickers"`

	// Solver overrides; zero values fall back to configured defaults.
	Depth         int    `json:"depth,omitempty"`
	Shots         int    `json:"shots,omitempty"`
	Seed          *int64 `json:"seed,omitempty"`
	InitialBits   string `json:"initial_bits,omitempty"` // asset-order bitstring of weight B
	OptimizerMode string `json:"optimizer_mode,omitempty"`
}

// Result is the outcome of one complete solve. Created once after sampling
// and immutable thereafter.
type Result struct {
	RunID       string   `json:"run_id"`
	NumAssets   int      `json:"num_assets"`
	Cardinality int      `json:"cardinality"`
	Depth       int      `json:"depth"`
	Shots       int      `json:"shots"`
	Seed        int64    `json:"seed"`
	InitialBits string   `json:"initial_bits"`
	Tickers     []string `json:"tickers,omitempty"`

	BestExpectation float64   `json:"best_expectation"`
	BestTheta       []float64 `json:"best_theta"`

	Selection       Selection        `json:"selection"`
	SelectedTickers []string         `json:"selected_tickers,omitempty"`
	Metrics         PortfolioMetrics `json:"metrics"`

	Degraded       bool  `json:"degraded"`
	Evaluations    int   `json:"evaluations"`
	OptimizeMillis int64 `json:"optimize_millis"`
	SampleMillis   int64 `json:"sample_millis"`

	// Trace is the append-only objective trace across all optimizer starts,
	// owned by this result.
	Trace []float64 `json:"trace,omitempty"`
}
